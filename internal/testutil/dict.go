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

// Package testutil builds StarDict dictionary fixtures on disk for tests.
package testutil

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// WordEntry is a single dictionary entry written to a fixture.
type WordEntry struct {
	// Word is the headword stored in the index.
	Word string

	// Markup is the entry payload.
	Markup string
}

// DictOptions configure a fixture dictionary.
type DictOptions struct {
	// Bookname is the dictionary name. Defaults to "Test Dictionary".
	Bookname string

	// DictZip compresses the payload file with dictzip.
	DictZip bool

	// SameTypeSequence is the sametypesequence .ifo value. Defaults to
	// "h".
	SameTypeSequence string

	// Synonyms maps alternate spellings to the index position of their
	// canonical word.
	Synonyms map[string]uint32
}

func (o *DictOptions) bookname() string {
	if o != nil && o.Bookname != "" {
		return o.Bookname
	}
	return "Test Dictionary"
}

func (o *DictOptions) sameTypeSequence() string {
	if o != nil && o.SameTypeSequence != "" {
		return o.SameTypeSequence
	}
	return "h"
}

// WriteDict writes a complete dictionary (.ifo, .idx, .dict and
// optionally .syn) into dir and returns the .ifo path.
func WriteDict(t *testing.T, dir string, words []WordEntry, opts *DictOptions) string {
	t.Helper()

	var dictData []byte
	var idxData []byte
	for _, w := range words {
		offset := len(dictData)
		dictData = append(dictData, []byte(w.Markup)...)

		idxData = append(idxData, []byte(w.Word)...)
		idxData = append(idxData, 0)
		var pos [8]byte
		//nolint:gosec // fixture data is far below uint32 limits.
		binary.BigEndian.PutUint32(pos[:4], uint32(offset))
		//nolint:gosec
		binary.BigEndian.PutUint32(pos[4:], uint32(len(w.Markup)))
		idxData = append(idxData, pos[:]...)
	}

	base := filepath.Join(dir, "test")

	if opts != nil && opts.DictZip {
		f, err := os.Create(base + ".dict.dz")
		if err != nil {
			t.Fatal(err)
		}
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write(dictData); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
		if err := f.Close(); err != nil {
			t.Fatal(err)
		}
	} else {
		if err := os.WriteFile(base+".dict", dictData, 0o600); err != nil {
			t.Fatal(err)
		}
	}

	if err := os.WriteFile(base+".idx", idxData, 0o600); err != nil {
		t.Fatal(err)
	}

	if opts != nil && len(opts.Synonyms) > 0 {
		var synData []byte
		for syn, i := range opts.Synonyms {
			synData = append(synData, []byte(syn)...)
			synData = append(synData, 0)
			var pos [4]byte
			binary.BigEndian.PutUint32(pos[:], i)
			synData = append(synData, pos[:]...)
		}
		if err := os.WriteFile(base+".syn", synData, 0o600); err != nil {
			t.Fatal(err)
		}
	}

	ifo := fmt.Sprintf(`StarDict's dict ifo file
version=2.4.2
bookname=%s
wordcount=%d
idxfilesize=%d
sametypesequence=%s
`, (opts).bookname(), len(words), len(idxData), (opts).sameTypeSequence())
	ifoPath := base + ".ifo"
	if err := os.WriteFile(ifoPath, []byte(ifo), 0o600); err != nil {
		t.Fatal(err)
	}
	return ifoPath
}
