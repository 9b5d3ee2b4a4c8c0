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

package parse

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/mettae/dicthtml"
	"github.com/mettae/dicthtml/markup"
)

// conciseSenseMarkerRe matches a numeric sense marker at the start of a
// block's text: digits followed by a right-pointing delimiter glyph.
var conciseSenseMarkerRe = regexp.MustCompile(`^(\d+)[》〉]\s*(.*)$`)

// conciseMarkerPrefixRe strips the same marker from the block's rendered
// markup form.
func conciseMarkerPrefixRe(marker string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(marker) + `[》〉]\s*`)
}

// conciseSections are the section header names of the dialect. A block
// whose whole text equals one of these opens the section; the following
// blocks are its content.
var conciseSections = map[string]dicthtml.SectionKind{
	"phrases":     dicthtml.SectionPhrases,
	"derivatives": dicthtml.SectionDerivatives,
	"origin":      dicthtml.SectionOrigin,
	"usage":       dicthtml.SectionUsage,
	"grammar":     dicthtml.SectionGrammar,
}

// Concise parses the compact dictionary dialect: part-of-speech headers
// are green classification spans (optionally carrying the block's first,
// unnumbered sense inline), numbered senses use a digits-plus-delimiter
// prefix, and section headers occupy a whole block on their own.
type Concise struct{}

// Parse implements [Parser].
func (p *Concise) Parse(headword, rawMarkup string) (*dicthtml.Entry, error) {
	root, entry, err := parseRoot(headword, rawMarkup)
	if err != nil {
		return nil, err
	}

	// The zero kind means we are in sense position rather than inside a
	// named section.
	var section dicthtml.SectionKind
	var current *dicthtml.PartOfSpeechBlock
	seenHeader := false

	for _, block := range markup.ChildElements(root, "blockquote") {
		text := markup.Text(block)
		if text == "" {
			continue
		}

		if kind, ok := conciseSections[strings.ToLower(text)]; ok {
			section = kind
			seenHeader = true
			continue
		}

		if section == "" && p.isPOSHeader(block) {
			seenHeader = true
			current = &dicthtml.PartOfSpeechBlock{
				Label: p.posLabel(block),
				HTML:  markup.InnerHTML(block),
			}
			entry.POSBlocks = append(entry.POSBlocks, current)
			if inline, ok := p.inlineSense(block); ok {
				current.Senses = append(current.Senses, inline)
			}
			continue
		}

		if section != "" {
			entry.AppendSection(section, p.sectionEntry(block))
			continue
		}

		sense, ok := p.sense(block)
		if !ok {
			entry.AppendSection(dicthtml.SectionNotes, p.sectionEntry(block))
			continue
		}
		if current == nil {
			if !seenHeader && sense.Marker == "" {
				// Prose ahead of the first header belongs to the headnote,
				// not to any block.
				entry.AppendSection(dicthtml.SectionHeadnote, dicthtml.SectionEntry{
					Text: markup.TidyPunct(text),
					HTML: markup.InnerHTML(block),
				})
				continue
			}
			current = &dicthtml.PartOfSpeechBlock{Label: "general"}
			entry.POSBlocks = append(entry.POSBlocks, current)
		}
		current.Senses = append(current.Senses, sense)
	}

	entry.PruneEmptyBlocks()
	return entry, nil
}

// isPOSHeader reports whether the block is a part-of-speech header: a
// green classification span plus some label text.
func (p *Concise) isPOSHeader(block *html.Node) bool {
	return markup.StripBullet(markup.Text(block)) != "" && classSpan(block, "green") != nil
}

// posLabel extracts the header's label text, dropping the bullet glyph and
// any inline first sense that shares the block.
func (p *Concise) posLabel(block *html.Node) string {
	text := markup.StripBullet(markup.Text(block))
	if inline := p.inlineSenseText(block); inline != "" && strings.HasSuffix(text, inline) {
		text = strings.TrimRight(strings.TrimSuffix(text, inline), " \t")
	}
	return markup.TidyPunct(text)
}

// inlineSenseText returns the text of the header block with the
// classification span, the bullet and any leading parenthetical annotation
// removed. The remainder, if any, is the block's first sense.
func (p *Concise) inlineSenseText(block *html.Node) string {
	text := markup.TextExcept(block, classSpan(block, "green"))
	text = markup.StripBullet(text)
	text = markup.StripLeadingParens(text)
	return markup.TidyPunct(text)
}

func (p *Concise) inlineSense(block *html.Node) (*dicthtml.Sense, bool) {
	// A quote nested inside the header carries the first sense with its
	// own marker and markup.
	if markup.Find(block, "blockquote") != nil {
		return p.sense(block)
	}

	text := p.inlineSenseText(block)
	if text == "" {
		return nil, false
	}
	sense := &dicthtml.Sense{Text: text, HTML: text}
	if m := conciseSenseMarkerRe.FindStringSubmatch(text); m != nil {
		sense.Marker = m[1]
		sense.Text = m[2]
		sense.HTML = m[2]
	}
	return sense, true
}

// sense builds a Sense from a block, using the nested quote as the sense
// body when one is present. It reports false for blocks with no
// recognizable text.
func (p *Concise) sense(block *html.Node) (*dicthtml.Sense, bool) {
	target := block
	if inner := markup.Find(block, "blockquote"); inner != nil {
		target = inner
	}
	text := markup.Text(target)
	if text == "" {
		return nil, false
	}

	var marker string
	htmlContent := markup.InnerHTML(target)
	if m := conciseSenseMarkerRe.FindStringSubmatch(text); m != nil {
		marker = m[1]
		text = m[2]
		htmlContent = conciseMarkerPrefixRe(marker).ReplaceAllString(htmlContent, "")
	}

	return &dicthtml.Sense{
		Text:   markup.TidyPunct(text),
		Marker: marker,
		HTML:   htmlContent,
	}, true
}

// sectionEntry builds a section item from a block, pulling a bold lead-in
// term out as the item's label.
func (p *Concise) sectionEntry(block *html.Node) dicthtml.SectionEntry {
	clone := markup.Clone(block)
	if clone == nil {
		return dicthtml.SectionEntry{
			Text: markup.Text(block),
			HTML: markup.InnerHTML(block),
		}
	}

	var label string
	if bold := markup.Find(clone, "b"); bold != nil {
		label = markup.Text(bold)
		parent := bold.Parent
		markup.Remove(bold)
		if parent != nil && parent != clone && markup.Text(parent) == "" {
			markup.Remove(parent)
		}
	}

	return dicthtml.SectionEntry{
		Text:  markup.TidyPunct(markup.Text(clone)),
		Label: label,
		HTML:  markup.InnerHTML(clone),
	}
}
