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

// Package parse converts raw dictionary markup into the normalized entry
// model. Two structurally different markup dialects are supported; both
// produce the same model so that rendering and resolution stay
// dialect-agnostic.
package parse

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/mettae/dicthtml"
	"github.com/mettae/dicthtml/markup"
)

// Parser converts one source's raw markup string into an Entry.
//
// Parse fails with [dicthtml.ErrEntryNotFound] when rawMarkup is empty and
// with [dicthtml.ErrMalformedMarkup] when the markup cannot be interpreted
// as a nested tag tree at all. Unexpected but parseable structure never
// fails; it degrades into the notes section.
type Parser interface {
	Parse(headword, rawMarkup string) (*dicthtml.Entry, error)
}

// parseRoot wraps rawMarkup in the synthetic root tag and returns the root
// node together with a new Entry. The headword is taken from the markup's
// <k> element when present, otherwise the lookup key is kept.
func parseRoot(headword, rawMarkup string) (*html.Node, *dicthtml.Entry, error) {
	if strings.TrimSpace(rawMarkup) == "" {
		return nil, nil, fmt.Errorf("%w: %q", dicthtml.ErrEntryNotFound, headword)
	}

	root, err := markup.Fragment(rawMarkup)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", dicthtml.ErrMalformedMarkup, err)
	}

	entry := &dicthtml.Entry{
		Headword:  headword,
		RawMarkup: rawMarkup,
	}
	if k := markup.Find(root, "k"); k != nil {
		if t := markup.Text(k); t != "" {
			entry.Headword = t
		}
	}
	return root, entry, nil
}

// classSpan returns the first descendant classification span of n with the
// given color, or nil.
func classSpan(n *html.Node, color string) *html.Node {
	return markup.FindFunc(n, func(m *html.Node) bool {
		return m.Type == html.ElementNode && m.Data == "c" &&
			strings.EqualFold(markup.Attr(m, "c"), color)
	})
}
