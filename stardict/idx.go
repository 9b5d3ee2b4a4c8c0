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

package stardict

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mettae/dicthtml/internal/folding"
	"github.com/mettae/dicthtml/internal/index"
)

// ErrInvalidIdxOffset indicates an invalid idxoffsetbits value.
var ErrInvalidIdxOffset = errors.New("invalid idxoffsetbits")

// IdxWord is an .idx file entry.
type IdxWord struct {
	Word   string
	Offset uint64
	Size   uint32
}

type foldedIdxWord struct {
	folded string
	word   *IdxWord
}

func (w *foldedIdxWord) String() string {
	return w.folded
}

// IdxScanner scans an .idx file from start to end.
type IdxScanner struct {
	s             *bufio.Scanner
	idxoffsetbits int
}

// NewIdxScanner returns a scanner for index data with the given offset
// width. Valid values for offsetBits are 32 and 64.
func NewIdxScanner(r io.Reader, offsetBits int) (*IdxScanner, error) {
	if offsetBits != 32 && offsetBits != 64 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIdxOffset, offsetBits)
	}
	s := &IdxScanner{
		s:             bufio.NewScanner(bufio.NewReader(r)),
		idxoffsetbits: offsetBits,
	}
	s.s.Split(s.splitIndex)
	return s, nil
}

// Scan advances to the next index entry. It returns false when the scan
// stops, either at the end of the index or on error.
func (s *IdxScanner) Scan() bool {
	return s.s.Scan()
}

// Err returns the first error encountered.
func (s *IdxScanner) Err() error {
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// Word returns the current entry.
func (s *IdxScanner) Word() *IdxWord {
	var e IdxWord
	b := s.s.Bytes()
	if i := bytes.IndexByte(b, 0); i >= 0 {
		e.Word = string(b[0:i])
		if s.idxoffsetbits == 64 {
			e.Offset = binary.BigEndian.Uint64(b[i+1:])
		} else {
			e.Offset = uint64(binary.BigEndian.Uint32(b[i+1:]))
		}
		e.Size = binary.BigEndian.Uint32(b[i+1+s.idxoffsetbits/8:])
	}

	return &e
}

// splitIndex splits one index entry from the index file.
func (s *IdxScanner) splitIndex(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		// Found zero byte.
		tokenSize := i + 1 + s.idxoffsetbits/8 + 4
		if len(data) >= tokenSize {
			return tokenSize, data[:tokenSize], nil
		}
	}

	if atEOF {
		return len(data), data, nil
	}

	// Request more data.
	return 0, nil, nil
}

// Idx is an in-memory index over a dictionary's headwords. Lookups are
// folded (lowercased, whitespace collapsed) so that the casing of the
// query does not matter.
type Idx struct {
	words []*IdxWord
	index *index.Index[*foldedIdxWord]
}

// NewIdx reads the whole index from r into memory.
func NewIdx(r io.Reader, offsetBits int) (*Idx, error) {
	s, err := NewIdxScanner(r, offsetBits)
	if err != nil {
		return nil, err
	}

	idx := &Idx{}
	var folded []*foldedIdxWord
	for s.Scan() {
		w := s.Word()
		idx.words = append(idx.words, w)
		folded = append(folded, &foldedIdxWord{
			folded: folding.Fold(w.Word),
			word:   w,
		})
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scanning index: %w", err)
	}

	idx.index = index.NewIndex(folded, strings.Compare)
	return idx, nil
}

// Search returns the index entries whose folded form matches the folded
// query.
func (idx *Idx) Search(query string) []*IdxWord {
	var out []*IdxWord
	for _, m := range idx.index.Search(folding.Fold(query)) {
		out = append(out, m.word)
	}
	return out
}

// Word returns the i'th entry in original file order. Synonym entries
// reference headwords by this position.
func (idx *Idx) Word(i int) *IdxWord {
	if i < 0 || i >= len(idx.words) {
		return nil
	}
	return idx.words[i]
}

// Len returns the number of index entries.
func (idx *Idx) Len() int {
	return len(idx.words)
}
