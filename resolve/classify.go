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

	"github.com/k3a/html2text"

	"github.com/mettae/dicthtml/markup"
)

// invalidPrefixes mark definitions that are pure redirections rather than
// self-contained definitions. Matching is case-insensitive on the plain
// text of the rendered fragment.
var invalidPrefixes = []string{
	"see ",
	"see also ",
	"→",       // →
	"none. →", // none. →
}

var (
	arrowRefRe = regexp.MustCompile(`\x{2192}\s*([A-Za-z][A-Za-z'_-]*)`)
	seeRefRe   = regexp.MustCompile(`(?i)^see(?:\s+also)?\s+([A-Za-z][A-Za-z'_-]*)`)
)

// plainText extracts the visible text of an HTML fragment with whitespace
// collapsed.
func plainText(fragment string) string {
	return markup.NormalizeSpace(html2text.HTML2Text(fragment))
}

// IsValidDefinition reports whether the HTML fragment contains a
// self-contained definition. Fragments that merely redirect to another
// headword ("see ...", "see also ...", or an arrow reference) are not
// valid.
func IsValidDefinition(fragment string) bool {
	text := strings.ToLower(plainText(fragment))
	if text == "" {
		return false
	}
	for _, p := range invalidPrefixes {
		if strings.HasPrefix(text, p) {
			return false
		}
	}
	return true
}

// CrossReference extracts the redirection target from an invalid
// definition. Arrow references take precedence over "see" phrasing. It
// returns the empty string when no target can be found.
func CrossReference(fragment string) string {
	text := plainText(fragment)
	if m := arrowRefRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := seeRefRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}
