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
	"regexp"
	"strings"
)

// posBullets are the filled and square bullet glyphs that decorate
// part-of-speech headers in dictionary markup.
const posBullets = "■▪•▸"

var (
	spaceBeforePunctRe = regexp.MustCompile(`\s+([,.;:)\]])`)
	spaceAfterParenRe  = regexp.MustCompile(`([(])\s+`)
)

// StripBullet removes a single leading part-of-speech bullet glyph from s.
func StripBullet(s string) string {
	s = strings.TrimLeft(s, " \t")
	if s != "" && strings.ContainsRune(posBullets, []rune(s)[0]) {
		s = string([]rune(s)[1:])
	}
	return strings.TrimSpace(s)
}

// StripLeadingParens removes a fully-balanced run of leading parenthetical
// annotations from s. An unbalanced parenthesis aborts stripping and the
// remaining text is returned as-is.
func StripLeadingParens(s string) string {
	remaining := strings.TrimLeft(s, " \t")
	for strings.HasPrefix(remaining, "(") {
		depth := 0
		closed := false
		for i, r := range remaining {
			switch r {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					remaining = strings.TrimLeft(remaining[i+1:], " \t")
					closed = true
				}
			}
			if closed {
				break
			}
		}
		if !closed {
			// Unbalanced parentheses, stop trimming.
			return strings.TrimSpace(remaining)
		}
	}
	return strings.TrimSpace(remaining)
}

// TidyPunct tightens spacing around punctuation: no space before closing
// punctuation and none after an opening parenthesis.
func TidyPunct(s string) string {
	s = spaceBeforePunctRe.ReplaceAllString(s, "$1")
	s = spaceAfterParenRe.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}
