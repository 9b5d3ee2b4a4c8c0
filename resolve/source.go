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

package resolve

import (
	"fmt"

	"github.com/mettae/dicthtml/parse"
	"github.com/mettae/dicthtml/render"
	"github.com/mettae/dicthtml/stardict"
)

// DictSource serves lookups from a single StarDict dictionary whose
// markup dialect is understood by the given parser. Raw entries are
// parsed into the normalized entry model and rendered back out as clean
// HTML.
type DictSource struct {
	dict   *stardict.Stardict
	parser parse.Parser
	name   string
}

// NewDictSource returns a source over the dictionary using the parser for
// its markup dialect.
func NewDictSource(dict *stardict.Stardict, parser parse.Parser) *DictSource {
	return &DictSource{
		dict:   dict,
		parser: parser,
		name:   dict.Bookname(),
	}
}

// Name returns the dictionary's book name.
func (s *DictSource) Name() string {
	return s.name
}

// Lookup returns the rendered definition for the word.
func (s *DictSource) Lookup(word string) (string, error) {
	raw, err := s.dict.RawEntry(word)
	if err != nil {
		return "", err
	}
	entry, err := s.parser.Parse(word, raw)
	if err != nil {
		return "", fmt.Errorf("parsing %q: %w", word, err)
	}
	return render.Entry(entry), nil
}

// Close closes the underlying dictionary.
func (s *DictSource) Close() error {
	return s.dict.Close()
}
