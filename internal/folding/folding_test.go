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

package folding

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases",
			input:    "RunNing",
			expected: "running",
		},
		{
			name:     "trims and collapses whitespace",
			input:    "  verb \t　 transitive  ",
			expected: "verb transitive",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "all whitespace",
			input:    " \t\n",
			expected: "",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, Fold(test.input)); diff != "" {
				t.Fatalf("Fold (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestWhitespaceOnly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "preserves case",
			input:    "  Move \n Fast ",
			expected: "Move Fast",
		},
		{
			name:     "internal spans",
			input:    "a \t　 b \t c",
			expected: "a b c",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, WhitespaceOnly(test.input)); diff != "" {
				t.Fatalf("WhitespaceOnly (-want, +got):\n%s", diff)
			}
		})
	}
}
