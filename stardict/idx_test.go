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

package stardict_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mettae/dicthtml/stardict"
)

func makeIdx(t *testing.T, words []*stardict.IdxWord, offsetBits int) []byte {
	t.Helper()

	var b []byte
	for _, w := range words {
		b = append(b, []byte(w.Word)...)
		b = append(b, 0)
		switch offsetBits {
		case 32:
			var pos [8]byte
			//nolint:gosec // test offsets are small.
			binary.BigEndian.PutUint32(pos[:4], uint32(w.Offset))
			binary.BigEndian.PutUint32(pos[4:], w.Size)
			b = append(b, pos[:]...)
		case 64:
			var pos [12]byte
			binary.BigEndian.PutUint64(pos[:8], w.Offset)
			binary.BigEndian.PutUint32(pos[8:], w.Size)
			b = append(b, pos[:]...)
		default:
			t.Fatalf("unsupported offset bits: %d", offsetBits)
		}
	}
	return b
}

// TestIdx_Search tests folded index lookups.
func TestIdx_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		words      []*stardict.IdxWord
		offsetBits int
		query      string

		expected []*stardict.IdxWord
	}{
		{
			name:       "empty index",
			words:      nil,
			offsetBits: 32,
			query:      "foo",
			expected:   nil,
		},
		{
			name: "exact match",
			words: []*stardict.IdxWord{
				{Word: "bar", Offset: 0, Size: 3},
				{Word: "baz", Offset: 3, Size: 4},
				{Word: "foo", Offset: 7, Size: 5},
			},
			offsetBits: 32,
			query:      "baz",
			expected: []*stardict.IdxWord{
				{Word: "baz", Offset: 3, Size: 4},
			},
		},
		{
			name: "case folded match",
			words: []*stardict.IdxWord{
				{Word: "Foo", Offset: 0, Size: 3},
			},
			offsetBits: 32,
			query:      "fOO",
			expected: []*stardict.IdxWord{
				{Word: "Foo", Offset: 0, Size: 3},
			},
		},
		{
			name: "64 bit offsets",
			words: []*stardict.IdxWord{
				{Word: "foo", Offset: 1 << 33, Size: 5},
			},
			offsetBits: 64,
			query:      "foo",
			expected: []*stardict.IdxWord{
				{Word: "foo", Offset: 1 << 33, Size: 5},
			},
		},
		{
			name: "no match",
			words: []*stardict.IdxWord{
				{Word: "foo", Offset: 0, Size: 3},
			},
			offsetBits: 32,
			query:      "bar",
			expected:   nil,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			idx, err := stardict.NewIdx(bytes.NewReader(makeIdx(t, tc.words, tc.offsetBits)), tc.offsetBits)
			if err != nil {
				t.Fatalf("NewIdx: %v", err)
			}

			if diff := cmp.Diff(tc.expected, idx.Search(tc.query)); diff != "" {
				t.Errorf("Search(%q) (-want, +got):\n%s", tc.query, diff)
			}
		})
	}
}

// TestIdx_Word tests positional access used by the synonym index.
func TestIdx_Word(t *testing.T) {
	t.Parallel()

	words := []*stardict.IdxWord{
		{Word: "zebra", Offset: 0, Size: 3},
		{Word: "apple", Offset: 3, Size: 4},
	}
	idx, err := stardict.NewIdx(bytes.NewReader(makeIdx(t, words, 32)), 32)
	if err != nil {
		t.Fatalf("NewIdx: %v", err)
	}

	// Positional access follows file order, not sorted order.
	if got := idx.Word(0); got == nil || got.Word != "zebra" {
		t.Errorf("Word(0): got %v, want zebra", got)
	}
	if got := idx.Word(1); got == nil || got.Word != "apple" {
		t.Errorf("Word(1): got %v, want apple", got)
	}
	if got := idx.Word(2); got != nil {
		t.Errorf("Word(2): got %v, want nil", got)
	}
	if got, want := idx.Len(), 2; got != want {
		t.Errorf("Len: got %d, want %d", got, want)
	}
}
