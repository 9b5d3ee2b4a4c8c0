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

package markup

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/mettae/dicthtml/internal/folding"
)

// Text returns the whitespace-normalized text content of n. Text from
// separate nodes is joined with a single space.
func Text(n *html.Node) string {
	return TextExcept(n, nil)
}

// TextExcept returns the text content of n, skipping the subtree rooted at
// skip.
func TextExcept(n, skip *html.Node) string {
	var pieces []string
	collectText(n, skip, &pieces)
	return folding.WhitespaceOnly(strings.Join(pieces, " "))
}

func collectText(n, skip *html.Node, pieces *[]string) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c == skip {
			continue
		}
		if c.Type == html.TextNode {
			if t := strings.TrimSpace(c.Data); t != "" {
				*pieces = append(*pieces, t)
			}
			continue
		}
		collectText(c, skip, pieces)
	}
}

// NormalizeSpace collapses whitespace runs in s to single spaces and trims
// the result.
func NormalizeSpace(s string) string {
	return folding.WhitespaceOnly(s)
}
