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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStripBullet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "square bullet",
			input:    "■ noun",
			expected: "noun",
		},
		{
			name:     "no bullet",
			input:    "noun",
			expected: "noun",
		},
		{
			name:     "only first bullet stripped",
			input:    "▪▪ noun",
			expected: "▪ noun",
		},
		{
			name:     "empty",
			input:    "   ",
			expected: "",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, StripBullet(test.input)); diff != "" {
				t.Fatalf("StripBullet (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestStripLeadingParens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single parenthetical",
			input:    "(informal) to run",
			expected: "to run",
		},
		{
			name:     "nested parenthetical",
			input:    "((very) informal) to run",
			expected: "to run",
		},
		{
			name:     "run of parentheticals",
			input:    "(a) (b) to run",
			expected: "to run",
		},
		{
			name:     "unbalanced aborts",
			input:    "(informal to run",
			expected: "(informal to run",
		},
		{
			name:     "no parenthetical",
			input:    "to run",
			expected: "to run",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, StripLeadingParens(test.input)); diff != "" {
				t.Fatalf("StripLeadingParens (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestTidyPunct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "space before comma and period",
			input:    "fast , loose .",
			expected: "fast, loose.",
		},
		{
			name:     "space inside parens",
			input:    "run ( move fast )",
			expected: "run (move fast)",
		},
		{
			name:     "space before bracket and semicolon",
			input:    "a ] b ; c",
			expected: "a] b; c",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, TidyPunct(test.input)); diff != "" {
				t.Fatalf("TidyPunct (-want, +got):\n%s", diff)
			}
		})
	}
}
