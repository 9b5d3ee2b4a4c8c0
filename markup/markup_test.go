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

func TestFragment(t *testing.T) {
	t.Parallel()

	root, err := Fragment(`<k>run</k><blockquote>move <b>fast</b></blockquote>`)
	if err != nil {
		t.Fatalf("Fragment: %v", err)
	}

	if k := Find(root, "k"); k == nil {
		t.Fatal("expected a <k> element")
	}

	blocks := ChildElements(root, "blockquote")
	if got, want := len(blocks), 1; got != want {
		t.Fatalf("unexpected # of blocks; want: %d, got: %d", want, got)
	}
	if diff := cmp.Diff("move <b>fast</b>", InnerHTML(blocks[0])); diff != "" {
		t.Fatalf("InnerHTML (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff("move fast", Text(blocks[0])); diff != "" {
		t.Fatalf("Text (-want, +got):\n%s", diff)
	}
}

func TestFragment_empty(t *testing.T) {
	t.Parallel()

	root, err := Fragment("")
	if err != nil {
		t.Fatalf("Fragment: %v", err)
	}
	if got := len(ChildElements(root, "blockquote")); got != 0 {
		t.Fatalf("unexpected children: %d", got)
	}
}

func TestTextExcept(t *testing.T) {
	t.Parallel()

	root, err := Fragment(`<blockquote><c c="green">noun</c> a thing</blockquote>`)
	if err != nil {
		t.Fatalf("Fragment: %v", err)
	}
	block := ChildElements(root, "blockquote")[0]
	c := Find(block, "c")
	if c == nil {
		t.Fatal("expected a <c> element")
	}

	if diff := cmp.Diff("a thing", TextExcept(block, c)); diff != "" {
		t.Fatalf("TextExcept (-want, +got):\n%s", diff)
	}
}

func TestClone_detached(t *testing.T) {
	t.Parallel()

	root, err := Fragment(`<blockquote><b>1</b> move fast</blockquote>`)
	if err != nil {
		t.Fatalf("Fragment: %v", err)
	}
	block := ChildElements(root, "blockquote")[0]

	clone := Clone(block)
	if clone == nil {
		t.Fatal("Clone returned nil")
	}

	// Mutating the clone must not affect the original.
	Remove(Find(clone, "b"))
	if diff := cmp.Diff("move fast", Text(clone)); diff != "" {
		t.Fatalf("clone Text (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff("1 move fast", Text(block)); diff != "" {
		t.Fatalf("original Text (-want, +got):\n%s", diff)
	}
}

func TestRename(t *testing.T) {
	t.Parallel()

	root, err := Fragment(`<k>run</k><blockquote>body</blockquote>`)
	if err != nil {
		t.Fatalf("Fragment: %v", err)
	}
	Rename(root, "k", "h3")

	if diff := cmp.Diff("<h3>run</h3><blockquote>body</blockquote>", InnerHTML(root)); diff != "" {
		t.Fatalf("InnerHTML (-want, +got):\n%s", diff)
	}
}

func TestScrubStyles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "drops border and writing-mode",
			input:    `<div style="border-left:2px solid grey; writing-mode:vertical-rl; color:red">x</div>`,
			expected: `<div style="color:red">x</div>`,
		},
		{
			name:     "drops empty style attribute",
			input:    `<span style="border:1px">x</span>`,
			expected: `<span>x</span>`,
		},
		{
			name:     "keeps unrelated styles",
			input:    `<span style="margin:0">x</span>`,
			expected: `<span style="margin:0">x</span>`,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			root, err := Fragment(test.input)
			if err != nil {
				t.Fatalf("Fragment: %v", err)
			}
			ScrubStyles(root)
			if diff := cmp.Diff(test.expected, InnerHTML(root)); diff != "" {
				t.Fatalf("ScrubStyles (-want, +got):\n%s", diff)
			}
		})
	}
}
