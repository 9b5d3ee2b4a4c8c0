// Copyright 2025 The dicthtml Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/mettae/dicthtml/parse"
	"github.com/mettae/dicthtml/resolve"
	"github.com/mettae/dicthtml/stardict"
)

var lookupCommand = &cli.Command{
	Name:      "lookup",
	Usage:     "Look up words and print their HTML definitions",
	ArgsUsage: "[WORD...]",
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("%w: no words given", errDicthtml)
		}

		logger := newLogger(c)
		resolver := resolve.NewResolver(
			buildSources(dataDirs(c)),
			resolve.WithLogger(logger),
		)

		for _, word := range c.Args().Slice() {
			def := resolver.Lookup(word)
			if def == "" {
				logger.Warn().Str("word", word).Msg("no definition found")
				continue
			}
			fmt.Println(def)
		}
		return nil
	},
}

// buildSources assembles lookup sources from the data directories. Parsed
// dictionaries whose markup dialect is recognized rank before the raw
// fallback over each directory.
func buildSources(dirs []string) []resolve.LazySource {
	var parsed []resolve.LazySource
	var fallbacks []resolve.LazySource

	for _, dir := range dirs {
		dir := dir
		paths, names := probeDictionaries(dir)
		for i, path := range paths {
			path := path
			parser := parserFor(names[i])
			if parser == nil {
				continue
			}
			parsed = append(parsed, resolve.LazySource{
				Name: names[i],
				Open: func() (resolve.Source, error) {
					d, err := stardict.Open(path)
					if err != nil {
						return nil, err
					}
					return resolve.NewDictSource(d, parser), nil
				},
			})
		}

		fallbacks = append(fallbacks, resolve.LazySource{
			Name: "raw:" + dir,
			Open: func() (resolve.Source, error) {
				return resolve.NewRawSource("raw:"+dir, dir)
			},
		})
	}

	return append(parsed, fallbacks...)
}

// probeDictionaries reads dictionary metadata without loading indexes.
func probeDictionaries(dir string) (paths, names []string) {
	dicts, _ := stardict.OpenAll(dir)
	for _, d := range dicts {
		paths = append(paths, d.IfoPath())
		names = append(names, d.Bookname())
		d.Close()
	}
	return paths, names
}

// parserFor picks the markup parser for a dictionary by its book name, or
// nil when the dialect is unknown.
func parserFor(bookname string) parse.Parser {
	name := strings.ToLower(bookname)
	switch {
	case strings.Contains(name, "advanced learner"):
		return &parse.Learner{}
	case strings.Contains(name, "concise"):
		return &parse.Concise{}
	}
	return nil
}
