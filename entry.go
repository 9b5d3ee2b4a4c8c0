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

package dicthtml

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SectionKind identifies a non-sense section of a dictionary entry.
type SectionKind string

// The recognized section kinds. Markup blocks that match one of these
// section names open the corresponding section; anything else that cannot
// be attributed to a sense falls into SectionNotes.
const (
	SectionHeadnote      SectionKind = "headnote"
	SectionPhrases       SectionKind = "phrases"
	SectionDerivatives   SectionKind = "derivatives"
	SectionOrigin        SectionKind = "origin"
	SectionUsage         SectionKind = "usage"
	SectionGrammar       SectionKind = "grammar"
	SectionVerbForms     SectionKind = "verb_forms"
	SectionThesaurus     SectionKind = "thesaurus"
	SectionExtraExamples SectionKind = "extra_examples"
	SectionMoreAbout     SectionKind = "more_about"
	SectionNotes         SectionKind = "notes"
)

var sectionDisplayNames = map[SectionKind]string{
	SectionHeadnote:      "Headnote",
	SectionPhrases:       "Phrases",
	SectionDerivatives:   "Derivatives",
	SectionOrigin:        "Origin",
	SectionUsage:         "Usage",
	SectionGrammar:       "Grammar",
	SectionVerbForms:     "Verb forms",
	SectionThesaurus:     "Thesaurus",
	SectionExtraExamples: "Extra examples",
	SectionMoreAbout:     "More about",
	SectionNotes:         "Notes",
}

var titleCaser = cases.Title(language.English)

// DisplayName returns the section's human readable title.
func (k SectionKind) DisplayName() string {
	if name, ok := sectionDisplayNames[k]; ok {
		return name
	}
	return titleCaser.String(strings.ReplaceAll(string(k), "_", " "))
}

// Sense is one numbered definition within a part-of-speech block.
type Sense struct {
	// Text is the normalized plain-text definition.
	Text string

	// Marker is the original numeral string ("1", "2", ...). It is empty
	// for inline and unnumbered senses.
	Marker string

	// HTML is the cleaned markup to render for the sense. Renderers fall
	// back to the escaped Text when it is empty.
	HTML string
}

// PartOfSpeechBlock is one grammatical-role grouping of senses.
type PartOfSpeechBlock struct {
	// Label is the short tag text (e.g. "noun", "verb transitive"). It may
	// be empty.
	Label string

	// HTML is the raw markup span the block was derived from. It is kept
	// for diagnostics and rendered as-is when the block has no senses.
	HTML string

	// Senses in definition numbering order.
	Senses []*Sense
}

// SectionEntry is one item inside a non-sense section.
type SectionEntry struct {
	// Text is the normalized plain text of the item.
	Text string

	// Label is an optional bold lead-in term extracted from the item, e.g.
	// a derivative headword.
	Label string

	// HTML is the cleaned markup for the item body with the lead-in label
	// already removed.
	HTML string
}

// Entry is one dictionary headword's full parsed content. An Entry is
// constructed once per (source, headword) parse and never mutated after it
// leaves the parser.
type Entry struct {
	// Headword is the display string, taken from an explicit marker in the
	// markup or the lookup key as a fallback.
	Headword string

	// POSBlocks in order of appearance in the source markup. The order is
	// semantically meaningful: the primary sense comes first.
	POSBlocks []*PartOfSpeechBlock

	// RawMarkup is the untouched source text, retained for diagnostics.
	RawMarkup string

	sections map[SectionKind][]SectionEntry
	order    []SectionKind
}

// AppendSection appends an item to the given section. The first append of a
// kind fixes its position in SectionKinds.
func (e *Entry) AppendSection(kind SectionKind, item SectionEntry) {
	if e.sections == nil {
		e.sections = map[SectionKind][]SectionEntry{}
	}
	if _, ok := e.sections[kind]; !ok {
		e.order = append(e.order, kind)
	}
	e.sections[kind] = append(e.sections[kind], item)
}

// Section returns the items of the given section in insertion order.
func (e *Entry) Section(kind SectionKind) []SectionEntry {
	return e.sections[kind]
}

// SectionKinds returns the entry's section kinds in first-seen order.
func (e *Entry) SectionKinds() []SectionKind {
	return e.order
}

// PruneEmptyBlocks drops part-of-speech blocks that ended up with no
// senses. Parsers call this once parsing completes.
func (e *Entry) PruneEmptyBlocks() {
	blocks := e.POSBlocks[:0]
	for _, b := range e.POSBlocks {
		if len(b.Senses) > 0 {
			blocks = append(blocks, b)
		}
	}
	e.POSBlocks = blocks
}
