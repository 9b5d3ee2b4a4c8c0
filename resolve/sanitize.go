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
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"

	"github.com/mettae/dicthtml/markup"
)

// removedElements are element names whose subtrees never carry definition
// content, such as embedded resource references and audio controls.
var removedElements = map[string]bool{
	"rref":  true,
	"audio": true,
}

var bracketedRe = regexp.MustCompile(`^\[[^\]]+\]$`)

// boilerplateTokens are region and usage labels matched against the
// letters-only lowercased form of a text node.
var boilerplateTokens = map[string]bool{
	"bre":  true,
	"name": true,
}

func lettersOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Sanitize removes presentation noise from a rendered HTML fragment:
// resource reference and audio elements, British/American pronunciation
// labels, bracketed phonetics and media file names. Elements left empty
// by a removal are pruned as well. Sanitize returns the fragment
// unchanged if it cannot be parsed.
func Sanitize(fragment string) string {
	root, err := markup.Fragment(fragment)
	if err != nil {
		return fragment
	}

	var doomed []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch {
			case c.Type == html.ElementNode && removedElements[c.Data]:
				doomed = append(doomed, c)
				continue
			case c.Type == html.TextNode && isBoilerplate(c.Data):
				doomed = append(doomed, c)
				continue
			}
			walk(c)
		}
	}
	walk(root)

	for _, n := range doomed {
		parent := n.Parent
		markup.Remove(n)
		pruneEmpty(parent, root)
	}

	return markup.InnerHTML(root)
}

// pruneEmpty removes elements that no longer hold any text, walking up
// from n until a non-empty ancestor or the fragment root is reached.
func pruneEmpty(n, root *html.Node) {
	for n != nil && n != root {
		if n.Type != html.ElementNode || markup.Text(n) != "" {
			return
		}
		parent := n.Parent
		markup.Remove(n)
		n = parent
	}
}

// isBoilerplate reports whether a text node carries pronunciation
// boilerplate rather than definition content.
func isBoilerplate(text string) bool {
	t := strings.TrimSpace(text)
	if t == "" {
		return false
	}
	lower := strings.ToLower(t)
	if boilerplateTokens[lettersOnly(t)] {
		return true
	}
	if bracketedRe.MatchString(t) {
		return true
	}
	if strings.HasSuffix(lower, ".wav") {
		return true
	}
	if strings.Contains(lower, "pronunciation") && len(strings.Fields(t)) <= 3 {
		return true
	}
	return false
}
