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

package render_test

import (
	"strings"
	"testing"

	"github.com/mettae/dicthtml"
	"github.com/mettae/dicthtml/render"
)

func testEntry() *dicthtml.Entry {
	entry := &dicthtml.Entry{
		Headword: "run",
		POSBlocks: []*dicthtml.PartOfSpeechBlock{
			{
				Label: "verb",
				Senses: []*dicthtml.Sense{
					{Text: "move fast", Marker: "1", HTML: "move <b>fast</b>"},
					{Text: "operate", Marker: "2"},
				},
			},
			{
				Label: "noun",
				Senses: []*dicthtml.Sense{
					{Text: "an act of running", Marker: "1"},
				},
			},
		},
	}
	entry.AppendSection(dicthtml.SectionPhrases, dicthtml.SectionEntry{
		Label: "run out",
		Text:  "become used up",
	})
	return entry
}

// TestHTML tests structural properties of the rendered fragment.
func TestHTML(t *testing.T) {
	t.Parallel()

	got := render.HTML(testEntry(), 2)

	for _, want := range []string{
		`<article class="dict-entry">`,
		`<h2 class="entry-headword">run</h2>`,
		`<h3 class="pos-label">verb</h3>`,
		`<span class="sense-marker">1.</span> move <b>fast</b>`,
		`<h3 class="pos-label">noun</h3>`,
		`entry-section-phrases`,
		`<strong class="section-label">run out</strong> become used up`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HTML output missing %q:\n%s", want, got)
		}
	}

	// The verb block appears before the noun block.
	if strings.Index(got, `>verb<`) > strings.Index(got, `>noun<`) {
		t.Errorf("part-of-speech blocks out of order:\n%s", got)
	}
}

// TestHTML_pure checks that rendering does not mutate the entry.
func TestHTML_pure(t *testing.T) {
	t.Parallel()

	entry := testEntry()
	first := render.HTML(entry, 2)
	second := render.HTML(entry, 2)
	if first != second {
		t.Errorf("rendering is not stable:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

// TestHTML_headingLevel tests heading level clamping.
func TestHTML_headingLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level int

		expected string
	}{
		{
			name:     "clamped low",
			level:    0,
			expected: `<h1 class="entry-headword">`,
		},
		{
			name:     "clamped high",
			level:    9,
			expected: `<h6 class="entry-headword">`,
		},
		{
			name:     "default",
			level:    render.DefaultHeadingLevel,
			expected: `<h2 class="entry-headword">`,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := render.HTML(testEntry(), tc.level)
			if !strings.Contains(got, tc.expected) {
				t.Errorf("HTML output missing %q:\n%s", tc.expected, got)
			}
		})
	}
}

// TestHTML_noneLabel checks that placeholder labels are suppressed.
func TestHTML_noneLabel(t *testing.T) {
	t.Parallel()

	entry := &dicthtml.Entry{Headword: "ort"}
	entry.AppendSection(dicthtml.SectionDerivatives, dicthtml.SectionEntry{
		Label: "none.",
		Text:  "→ orts",
	})

	got := render.HTML(entry, 2)
	if strings.Contains(got, "section-label") {
		t.Errorf("placeholder label was rendered:\n%s", got)
	}
	if !strings.Contains(got, "→ orts") {
		t.Errorf("section body missing:\n%s", got)
	}
}

// TestHTML_escaping checks that plain-text fields are escaped.
func TestHTML_escaping(t *testing.T) {
	t.Parallel()

	entry := &dicthtml.Entry{
		Headword: "<script>",
		POSBlocks: []*dicthtml.PartOfSpeechBlock{
			{
				Senses: []*dicthtml.Sense{
					{Text: "a < b"},
				},
			},
		},
	}

	got := render.HTML(entry, 2)
	if strings.Contains(got, "<script>") {
		t.Errorf("headword was not escaped:\n%s", got)
	}
	if !strings.Contains(got, "a &lt; b") {
		t.Errorf("sense text was not escaped:\n%s", got)
	}
}
