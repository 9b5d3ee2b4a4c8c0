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

// Package render converts parsed dictionary entries into standalone HTML
// fragments suitable for flashcards, e-books and other HTML surfaces.
package render

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/mettae/dicthtml"
)

// DefaultHeadingLevel is the heading level used for the headword when the
// caller does not choose one.
const DefaultHeadingLevel = 2

var sectionClassRe = regexp.MustCompile(`[^0-9a-zA-Z_-]+`)

// Entry renders an entry with the default heading level.
func Entry(entry *dicthtml.Entry) string {
	return HTML(entry, DefaultHeadingLevel)
}

// HTML converts a parsed dictionary entry into a standalone HTML fragment.
// headingLevel is clamped to [1, 6]; subsection headings use the next
// level down. Rendering is a pure function of the entry: calling it twice
// yields byte-identical output.
//
// Output order is fixed regardless of how sections were stored: the
// headword heading, the headnote, each part-of-speech block in original
// order, then the remaining sections in first-seen order.
func HTML(entry *dicthtml.Entry, headingLevel int) string {
	headingLevel = min(6, max(1, headingLevel))
	hTag := fmt.Sprintf("h%d", headingLevel)
	subTag := fmt.Sprintf("h%d", min(6, headingLevel+1))

	headword := strings.TrimSpace(entry.Headword)
	if headword == "" {
		headword = "Entry"
	}

	parts := []string{
		`<article class="dict-entry">`,
		fmt.Sprintf(`<%s class="entry-headword">%s</%s>`, hTag, html.EscapeString(headword), hTag),
	}

	if items := entry.Section(dicthtml.SectionHeadnote); len(items) > 0 {
		parts = appendSection(parts, subTag, dicthtml.SectionHeadnote, items)
	}

	for _, block := range entry.POSBlocks {
		parts = append(parts, `<section class="pos-block">`)
		if label := strings.TrimSpace(block.Label); label != "" {
			parts = append(parts, fmt.Sprintf(`<%s class="pos-label">%s</%s>`, subTag, html.EscapeString(label), subTag))
		}

		switch {
		case len(block.Senses) > 0:
			parts = append(parts, `<ol class="sense-list">`)
			for _, sense := range block.Senses {
				var marker string
				if m := strings.TrimSpace(sense.Marker); m != "" {
					marker = fmt.Sprintf(`<span class="sense-marker">%s.</span> `, html.EscapeString(m))
				}
				parts = append(parts, "<li>"+marker+htmlOrText(sense.HTML, sense.Text)+"</li>")
			}
			parts = append(parts, "</ol>")
		case block.HTML != "":
			parts = append(parts, "<p>"+block.HTML+"</p>")
		}

		parts = append(parts, "</section>")
	}

	for _, kind := range entry.SectionKinds() {
		if kind == dicthtml.SectionHeadnote {
			continue
		}
		parts = appendSection(parts, subTag, kind, entry.Section(kind))
	}

	parts = append(parts, "</article>")
	return strings.Join(parts, "\n")
}

func appendSection(parts []string, subTag string, kind dicthtml.SectionKind, items []dicthtml.SectionEntry) []string {
	if len(items) == 0 {
		return parts
	}

	parts = append(parts,
		fmt.Sprintf(`<section class="entry-section entry-section-%s">`, sectionClass(kind)),
		fmt.Sprintf(`<%s>%s</%s>`, subTag, html.EscapeString(kind.DisplayName()), subTag),
		"<ul>",
	)
	for _, item := range items {
		label := strings.TrimSpace(item.Label)
		// A "none" lead-in is a placeholder in the source data, not a
		// real label.
		if label != "" && strings.Trim(strings.ToLower(label), ".:") == "none" {
			label = ""
		}
		var labelHTML string
		if label != "" {
			labelHTML = fmt.Sprintf(`<strong class="section-label">%s</strong> `, html.EscapeString(label))
		}
		parts = append(parts, "<li>"+labelHTML+htmlOrText(item.HTML, item.Text)+"</li>")
	}
	return append(parts, "</ul></section>")
}

// htmlOrText returns the pre-cleaned markup fragment when present and the
// escaped plain text otherwise.
func htmlOrText(htmlValue, textValue string) string {
	if htmlValue != "" {
		return htmlValue
	}
	return html.EscapeString(textValue)
}

func sectionClass(kind dicthtml.SectionKind) string {
	safe := sectionClassRe.ReplaceAllString(string(kind), "-")
	safe = strings.ToLower(strings.Trim(safe, "-"))
	if safe == "" {
		return "section"
	}
	return safe
}
