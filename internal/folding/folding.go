// Copyright 2025 The dicthtml Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package folding implements text folding transformers used for markup
// normalization and for building case-insensitive headword indexes.
package folding

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// New returns a transformer that lowercases its input and folds
// whitespace. Index keys are folded with it so that lookups are insensitive
// to casing and spacing differences.
func New() transform.Transformer {
	return transform.Chain(
		runes.Map(unicode.ToLower),
		&WhitespaceFolder{},
	)
}

// Fold applies New to s.
func Fold(s string) string {
	folded, _, err := transform.String(New(), s)
	if err != nil {
		// The transformers above never fail on valid UTF-8; fall back to a
		// cruder fold for garbage input.
		return strings.ToLower(strings.TrimSpace(s))
	}
	return folded
}

// WhitespaceOnly folds whitespace in s without changing case. Runs of
// whitespace collapse to a single ASCII space and leading and trailing
// whitespace is removed.
func WhitespaceOnly(s string) string {
	folded, _, err := transform.String(&WhitespaceFolder{}, s)
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	return folded
}
