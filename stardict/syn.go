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
	"fmt"
	"io"
	"strings"

	"github.com/mettae/dicthtml/internal/folding"
	"github.com/mettae/dicthtml/internal/index"
)

// SynWord is a .syn file entry linking a synonym to an index entry.
type SynWord struct {
	// Word is the synonym word.
	Word string

	// OriginalWordIndex is the position of the linked entry in the .idx
	// index.
	OriginalWordIndex uint32
}

type foldedSynWord struct {
	folded string
	word   *SynWord
}

func (w *foldedSynWord) String() string {
	return w.folded
}

// Syn is the in-memory synonym index.
type Syn struct {
	index *index.Index[*foldedSynWord]
}

// NewSyn reads the whole synonym index from r into memory.
func NewSyn(r io.Reader) (*Syn, error) {
	s := bufio.NewScanner(bufio.NewReader(r))
	s.Split(splitSyn)

	var words []*foldedSynWord
	for s.Scan() {
		b := s.Bytes()
		i := bytes.IndexByte(b, 0)
		if i < 0 || len(b) < i+5 {
			continue
		}
		w := &SynWord{
			Word:              string(b[:i]),
			OriginalWordIndex: binary.BigEndian.Uint32(b[i+1:]),
		}
		words = append(words, &foldedSynWord{
			folded: folding.Fold(w.Word),
			word:   w,
		})
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scanning synonym index: %w", err)
	}

	return &Syn{
		index: index.NewIndex(words, strings.Compare),
	}, nil
}

// Search returns the synonym entries whose folded form matches the folded
// query.
func (s *Syn) Search(query string) []*SynWord {
	var out []*SynWord
	for _, m := range s.index.Search(folding.Fold(query)) {
		out = append(out, m.word)
	}
	return out
}

// splitSyn splits one synonym entry: a null-terminated word followed by a
// 32-bit big-endian index position.
func splitSyn(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		tokenSize := i + 1 + 4
		if len(data) >= tokenSize {
			return tokenSize, data[:tokenSize], nil
		}
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
