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
	"os"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/mettae/dicthtml/stardict"
)

var listCommand = &cli.Command{
	Name:  "list",
	Usage: "List available dictionaries",
	Action: func(c *cli.Context) error {
		var dicts []*stardict.Stardict
		var errs []error
		for _, dir := range dataDirs(c) {
			openDicts, openErrs := stardict.OpenAll(dir)
			dicts = append(dicts, openDicts...)
			errs = append(errs, openErrs...)
		}
		defer func() {
			for _, d := range dicts {
				d.Close()
			}
		}()

		logger := newLogger(c)
		for _, err := range errs {
			logger.Warn().Err(err).Msg("opening dictionary")
		}

		tbl := table.New("Name", "Version", "Words", "Author")
		for _, d := range dicts {
			tbl.AddRow(d.Bookname(), d.Version(), d.WordCount(), d.Author())
		}
		tbl.Print()

		if len(dicts) == 0 {
			fmt.Fprintln(os.Stderr, "no dictionaries found")
		}
		return nil
	},
}
