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
	"errors"
	"fmt"
	"strings"

	"github.com/mettae/dicthtml"
	"github.com/mettae/dicthtml/markup"
	"github.com/mettae/dicthtml/stardict"
)

// RawSource serves lookups from every dictionary found under a directory
// without interpreting their markup dialects. Each dictionary's raw entry
// is lightly cleaned up (headword tags become headings, hostile styles
// are dropped) and the results are concatenated.
type RawSource struct {
	dicts []*stardict.Stardict
	name  string
}

// NewRawSource opens all dictionaries under dir. It fails only when no
// dictionary at all could be opened.
func NewRawSource(name, dir string) (*RawSource, error) {
	dicts, errs := stardict.OpenAll(dir)
	if len(dicts) == 0 {
		if len(errs) > 0 {
			return nil, fmt.Errorf("opening dictionaries in %q: %w", dir, errors.Join(errs...))
		}
		return nil, fmt.Errorf("no dictionaries found in %q", dir)
	}
	return &RawSource{
		dicts: dicts,
		name:  name,
	}, nil
}

// Name returns the source name.
func (s *RawSource) Name() string {
	return s.name
}

// Lookup returns the cleaned raw entries for the word across all
// dictionaries, separated by dividers.
func (s *RawSource) Lookup(word string) (string, error) {
	var blocks []string
	for _, d := range s.dicts {
		raw := ""
		for _, key := range candidateKeys(word) {
			entry, err := d.RawEntry(key)
			if err == nil {
				raw = entry
				break
			}
			if !errors.Is(err, dicthtml.ErrEntryNotFound) {
				return "", err
			}
		}
		if raw == "" {
			continue
		}
		blocks = append(blocks, fmt.Sprintf("<div class=\"dict-block\">%s</div>", cleanRaw(raw)))
	}
	if len(blocks) == 0 {
		return "", fmt.Errorf("%w: %q", dicthtml.ErrEntryNotFound, word)
	}
	return strings.Join(blocks, "\n<hr/>\n"), nil
}

// Close closes all underlying dictionaries.
func (s *RawSource) Close() error {
	var errs []error
	for _, d := range s.dicts {
		if err := d.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// candidateKeys returns lookup keys to try in order: the lowercased word,
// the word as given, and singular forms derived from common plural
// suffixes.
func candidateKeys(word string) []string {
	var keys []string
	add := func(k string) {
		if k == "" {
			return
		}
		for _, existing := range keys {
			if existing == k {
				return
			}
		}
		keys = append(keys, k)
	}

	lower := strings.ToLower(word)
	add(lower)
	add(word)
	if strings.HasSuffix(lower, "ies") {
		add(strings.TrimSuffix(lower, "ies") + "y")
	}
	if strings.HasSuffix(lower, "es") {
		add(strings.TrimSuffix(lower, "es"))
	}
	if strings.HasSuffix(lower, "s") {
		add(strings.TrimSuffix(lower, "s"))
	}
	return keys
}

// cleanRaw rewrites headword tags to headings and drops hostile inline
// styles. Unparseable markup is passed through unchanged.
func cleanRaw(raw string) string {
	root, err := markup.Fragment(raw)
	if err != nil {
		return raw
	}
	markup.Rename(root, "k", "h3")
	markup.ScrubStyles(root)
	return markup.InnerHTML(root)
}
