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

package resolve_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/mettae/dicthtml"
	"github.com/mettae/dicthtml/resolve"
)

// fakeSource is an in-memory lookup source that counts calls.
type fakeSource struct {
	name    string
	entries map[string]string
	lookups int
}

func (s *fakeSource) Name() string {
	return s.name
}

func (s *fakeSource) Lookup(word string) (string, error) {
	s.lookups++
	def, ok := s.entries[strings.ToLower(word)]
	if !ok {
		return "", fmt.Errorf("%w: %q", dicthtml.ErrEntryNotFound, word)
	}
	return def, nil
}

func lazy(s resolve.Source) resolve.LazySource {
	return resolve.LazySource{
		Name: s.Name(),
		Open: func() (resolve.Source, error) {
			return s, nil
		},
	}
}

// TestResolver_Lookup tests lookups across ranked sources.
func TestResolver_Lookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sources []map[string]string
		word    string

		expected string
	}{
		{
			name: "first source wins",
			sources: []map[string]string{
				{"run": "<p>move fast</p>"},
				{"run": "<p>second definition</p>"},
			},
			word:     "run",
			expected: "<p>move fast</p>",
		},
		{
			name: "fallback to second source",
			sources: []map[string]string{
				{},
				{"run": "<p>move fast</p>"},
			},
			word:     "run",
			expected: "<p>move fast</p>",
		},
		{
			name: "redirect followed within source",
			sources: []map[string]string{
				{
					"ran": "<p>see run</p>",
					"run": "<p>move fast</p>",
				},
			},
			word:     "ran",
			expected: "<p>move fast</p>",
		},
		{
			name: "arrow redirect followed",
			sources: []map[string]string{
				{
					"orts": "<p>none. → ort</p>",
					"ort":  "<p>a scrap of food</p>",
				},
			},
			word:     "orts",
			expected: "<p>a scrap of food</p>",
		},
		{
			name: "long redirect chain resolves",
			sources: []map[string]string{
				{
					"alpha": "<p>see beta</p>",
					"beta":  "<p>see gamma</p>",
					"gamma": "<p>see delta</p>",
					"delta": "<p>the real definition</p>",
				},
			},
			word:     "alpha",
			expected: "<p>the real definition</p>",
		},
		{
			name: "redirect cycle terminates empty",
			sources: []map[string]string{
				{
					"a": "<p>see b</p>",
					"b": "<p>see a</p>",
				},
			},
			word:     "a",
			expected: "",
		},
		{
			name: "redirect-only entry falls through to next source",
			sources: []map[string]string{
				{"run": "<p>see sprint</p>"},
				{"run": "<p>move fast</p>"},
			},
			word:     "run",
			expected: "<p>move fast</p>",
		},
		{
			name:     "unknown word",
			sources:  []map[string]string{{}},
			word:     "xyzzy",
			expected: "",
		},
		{
			name:     "blank input",
			sources:  []map[string]string{{"run": "<p>move fast</p>"}},
			word:     "   ",
			expected: "",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var sources []resolve.LazySource
			for i, entries := range tc.sources {
				sources = append(sources, lazy(&fakeSource{
					name:    fmt.Sprintf("source-%d", i),
					entries: entries,
				}))
			}

			r := resolve.NewResolver(sources)
			if got, want := r.Lookup(tc.word), tc.expected; got != want {
				t.Errorf("Lookup(%q): got %q, want %q", tc.word, got, want)
			}
		})
	}
}

// TestResolver_cache checks that repeated lookups hit the cache.
func TestResolver_cache(t *testing.T) {
	t.Parallel()

	source := &fakeSource{
		name:    "dict",
		entries: map[string]string{"run": "<p>move fast</p>"},
	}
	r := resolve.NewResolver([]resolve.LazySource{lazy(source)})

	first := r.Lookup("run")
	callsAfterFirst := source.lookups
	second := r.Lookup("RUN")

	if first != second {
		t.Errorf("cached lookup differs: %q vs %q", first, second)
	}
	if source.lookups != callsAfterFirst {
		t.Errorf("cache miss: source called %d times after first lookup", source.lookups-callsAfterFirst)
	}
}

// TestResolver_cachesMisses checks that misses are cached too.
func TestResolver_cachesMisses(t *testing.T) {
	t.Parallel()

	source := &fakeSource{name: "dict", entries: map[string]string{}}
	r := resolve.NewResolver([]resolve.LazySource{lazy(source)})

	if got := r.Lookup("xyzzy"); got != "" {
		t.Errorf("Lookup: got %q, want empty", got)
	}
	callsAfterFirst := source.lookups
	if got := r.Lookup("xyzzy"); got != "" {
		t.Errorf("Lookup: got %q, want empty", got)
	}
	if source.lookups != callsAfterFirst {
		t.Errorf("miss was not cached: source called %d more times", source.lookups-callsAfterFirst)
	}
}

// TestResolver_failedSource checks that an unopenable source is skipped.
func TestResolver_failedSource(t *testing.T) {
	t.Parallel()

	opens := 0
	broken := resolve.LazySource{
		Name: "broken",
		Open: func() (resolve.Source, error) {
			opens++
			return nil, errors.New("corrupt dictionary")
		},
	}
	working := lazy(&fakeSource{
		name:    "working",
		entries: map[string]string{"run": "<p>move fast</p>"},
	})

	r := resolve.NewResolver([]resolve.LazySource{broken, working})

	if got, want := r.Lookup("run"), "<p>move fast</p>"; got != want {
		t.Errorf("Lookup: got %q, want %q", got, want)
	}
	r.Lookup("walk")
	if opens != 1 {
		t.Errorf("broken source opened %d times, want 1", opens)
	}
}

// TestResolver_sanitizesResults checks that winners are sanitized.
func TestResolver_sanitizesResults(t *testing.T) {
	t.Parallel()

	source := &fakeSource{
		name: "dict",
		entries: map[string]string{
			"run": "<p><i>BrE</i></p><p>move fast</p>",
		},
	}
	r := resolve.NewResolver([]resolve.LazySource{lazy(source)})

	if got, want := r.Lookup("run"), "<p>move fast</p>"; got != want {
		t.Errorf("Lookup: got %q, want %q", got, want)
	}
}
