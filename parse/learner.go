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

// learnerMarkerRe matches the text of a bold sense marker: a bare integer,
// optionally followed by a period.
var learnerMarkerRe = regexp.MustCompile(`^(\d+)\.?$`)

// learnerSections maps section keyword prefixes to section kinds. A block
// that consists of the bare keyword announces that the next block is the
// section's content; a block where the keyword prefixes inline content is
// the content itself.
var learnerSections = []struct {
	keyword string
	kind    dicthtml.SectionKind
}{
	{"word origin", dicthtml.SectionOrigin},
	{"verb forms", dicthtml.SectionVerbForms},
	{"thesaurus", dicthtml.SectionThesaurus},
	{"extra examples", dicthtml.SectionExtraExamples},
	{"more about", dicthtml.SectionMoreAbout},
}

// learnerAlwaysCollect holds section kinds that keep collecting subsequent
// blocks even when those blocks look like senses.
var learnerAlwaysCollect = map[dicthtml.SectionKind]bool{
	dicthtml.SectionThesaurus: true,
}

// Learner parses the learner's dictionary dialect: part-of-speech headers
// are orange classification spans appearing as top-level tags, senses are
// blocks carrying a bold integer marker, section keywords may prefix their
// content inline, and unmarked blocks continue the previous sense.
type Learner struct{}

// Parse implements [Parser].
func (p *Learner) Parse(headword, rawMarkup string) (*dicthtml.Entry, error) {
	root, entry, err := parseRoot(headword, rawMarkup)
	if err != nil {
		return nil, err
	}

	var headnote []string
	beforeFirstSense := true
	var current *dicthtml.PartOfSpeechBlock
	var lastSense *dicthtml.Sense
	var pending dicthtml.SectionKind
	var active dicthtml.SectionKind

	for child := root.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.TextNode {
			if beforeFirstSense && strings.TrimSpace(child.Data) != "" {
				headnote = append(headnote, child.Data)
			}
			continue
		}
		if child.Type != html.ElementNode {
			continue
		}

		switch {
		case child.Data == "k":
			continue

		case child.Data == "c" && strings.EqualFold(markup.Attr(child, "c"), "orange"):
			if beforeFirstSense {
				p.flushHeadnote(entry, &headnote)
				beforeFirstSense = false
			}
			active = ""
			current = &dicthtml.PartOfSpeechBlock{
				Label: markup.Text(child),
				HTML:  markup.OuterHTML(child),
			}
			entry.POSBlocks = append(entry.POSBlocks, current)
			lastSense = nil

		case child.Data == "blockquote":
			if beforeFirstSense {
				p.flushHeadnote(entry, &headnote)
				beforeFirstSense = false
			}

			textLower := strings.ToLower(markup.Text(child))
			if keyword, kind, ok := p.section(textLower); ok {
				active = kind
				if strings.TrimRight(textLower, ":") == keyword {
					// A bare keyword block: the next block carries the
					// section's content.
					pending = kind
					continue
				}
				p.appendSection(entry, kind, child)
				pending = ""
				continue
			}

			if pending != "" {
				p.appendSection(entry, pending, child)
				pending = ""
				continue
			}

			if active != "" && (learnerAlwaysCollect[active] || !p.looksLikeSense(child)) {
				p.appendSection(entry, active, child)
				continue
			}

			if p.looksLikeSense(child) {
				active = ""
				if current == nil {
					current = &dicthtml.PartOfSpeechBlock{Label: "entry"}
					entry.POSBlocks = append(entry.POSBlocks, current)
				}
				sense := p.sense(child)
				current.Senses = append(current.Senses, sense)
				lastSense = sense
				continue
			}

			if lastSense != nil {
				p.appendToSense(lastSense, child)
			} else {
				p.appendSection(entry, dicthtml.SectionNotes, child)
			}

		default:
			// Any other tag is headnote material before the first sense and
			// a note afterwards.
			if beforeFirstSense {
				headnote = append(headnote, markup.OuterHTML(child))
			} else {
				active = ""
				p.appendSection(entry, dicthtml.SectionNotes, child)
			}
		}
	}

	p.flushHeadnote(entry, &headnote)
	entry.PruneEmptyBlocks()
	return entry, nil
}

func (p *Learner) section(textLower string) (string, dicthtml.SectionKind, bool) {
	for _, s := range learnerSections {
		if strings.HasPrefix(textLower, s.keyword) {
			return s.keyword, s.kind, true
		}
	}
	return "", "", false
}

// flushHeadnote turns accumulated leading fragments into a headnote
// section item.
func (p *Learner) flushHeadnote(entry *dicthtml.Entry, fragments *[]string) {
	if len(*fragments) == 0 {
		return
	}
	joined := strings.TrimSpace(strings.Join(*fragments, ""))
	*fragments = nil
	if joined == "" {
		return
	}

	text := markup.NormalizeSpace(joined)
	if root, err := markup.Fragment(joined); err == nil {
		text = markup.Text(root)
	}
	entry.AppendSection(dicthtml.SectionHeadnote, dicthtml.SectionEntry{
		Text: text,
		HTML: joined,
	})
}

// looksLikeSense reports whether the block carries a bold numeric sense
// marker.
func (p *Learner) looksLikeSense(block *html.Node) bool {
	return p.markerTag(block) != nil
}

func (p *Learner) markerTag(block *html.Node) *html.Node {
	return markup.FindFunc(block, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "b" &&
			learnerMarkerRe.MatchString(markup.Text(n))
	})
}

// sense builds a Sense from a marker-carrying block. The marker tag is
// removed from the rendered form, along with its enclosing element if that
// leaves it without visible text.
func (p *Learner) sense(block *html.Node) *dicthtml.Sense {
	clone := markup.Clone(block)
	if clone == nil {
		return &dicthtml.Sense{
			Text: markup.Text(block),
			HTML: markup.InnerHTML(block),
		}
	}

	var marker string
	if tag := p.markerTag(clone); tag != nil {
		if m := learnerMarkerRe.FindStringSubmatch(strings.TrimSuffix(markup.Text(tag), ".")); m != nil {
			marker = m[1]
		}
		parent := tag.Parent
		markup.Remove(tag)
		if parent != nil && parent != clone && markup.Text(parent) == "" {
			markup.Remove(parent)
		}
	}

	return &dicthtml.Sense{
		Text:   markup.Text(clone),
		Marker: marker,
		HTML:   markup.InnerHTML(clone),
	}
}

// appendToSense appends continuation markup to the most recent sense.
func (p *Learner) appendToSense(sense *dicthtml.Sense, block *html.Node) {
	body := markup.InnerHTML(block)
	if body == "" {
		return
	}
	sense.HTML += `<div class="sense-note">` + body + `</div>`
}

func (p *Learner) appendSection(entry *dicthtml.Entry, kind dicthtml.SectionKind, block *html.Node) {
	body := markup.InnerHTML(block)
	if body == "" {
		return
	}
	entry.AppendSection(kind, dicthtml.SectionEntry{
		Text: markup.Text(block),
		HTML: body,
	})
}
