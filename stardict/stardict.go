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

// Package stardict reads StarDict dictionaries: the .ifo metadata file,
// the .idx index (optionally gzipped), the .dict payload file (optionally
// dictzip-compressed) and the optional .syn synonym index. It implements
// the raw-entry side of dictionary lookups; parsing and rendering of the
// payload markup live elsewhere.
package stardict

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ianlewis/go-dictzip"

	"github.com/mettae/dicthtml"
)

// Stardict is a single StarDict dictionary.
type Stardict struct {
	ifo  *Ifo
	idx  *Idx
	dict *Dict
	syn  *Syn

	dictCloser io.Closer
	synLoaded  bool

	ifoPath string

	version          string
	bookname         string
	wordcount        int64
	synwordcount     int64
	idxfilesize      int64
	idxoffsetbits    int
	author           string
	email            string
	website          string
	description      string
	sametypesequence []DataType
}

// OpenAll opens all dictionaries under a directory. It returns all
// successfully opened dictionaries along with any errors that occurred.
func OpenAll(path string) ([]*Stardict, []error) {
	var dicts []*Stardict
	var errs []error
	if err := filepath.WalkDir(path, func(path string, info fs.DirEntry, err error) error {
		// Walking the file path will ignore errors.
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if !info.IsDir() && strings.EqualFold(filepath.Ext(info.Name()), ".ifo") {
			dict, err := Open(path)
			if err != nil {
				errs = append(errs, err)
				return nil
			}
			dicts = append(dicts, dict)
		}
		return nil
	}); err != nil {
		errs = append(errs, err)
		return nil, errs
	}
	return dicts, errs
}

// Open opens a StarDict dictionary from the given .ifo file path.
func Open(path string) (*Stardict, error) {
	s := &Stardict{
		ifoPath:       path,
		idxoffsetbits: 32,
	}

	if !strings.EqualFold(filepath.Ext(path), ".ifo") {
		return nil, fmt.Errorf("bad extension: %v", filepath.Ext(path))
	}

	ifoFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer ifoFile.Close()

	s.ifo, err = NewIfo(ifoFile)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	s.version = s.ifo.Value("version")
	switch s.version {
	case "2.4.2":
	case "3.0.0":
	default:
		return nil, fmt.Errorf("invalid version: %v", s.version)
	}

	s.bookname = s.ifo.Value("bookname")
	if s.bookname == "" {
		return nil, fmt.Errorf("missing bookname")
	}

	s.wordcount, err = strconv.ParseInt(s.ifo.Value("wordcount"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad wordcount: %w", err)
	}

	s.idxfilesize, err = strconv.ParseInt(s.ifo.Value("idxfilesize"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad idxfilesize: %w", err)
	}

	if v := s.ifo.Value("idxoffsetbits"); v != "" && s.version == "3.0.0" {
		bits, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid idxoffsetbits: %w", err)
		}
		s.idxoffsetbits = int(bits)
	}

	if v := s.ifo.Value("synwordcount"); v != "" {
		s.synwordcount, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad synwordcount: %w", err)
		}
	}

	for _, r := range s.ifo.Value("sametypesequence") {
		s.sametypesequence = append(s.sametypesequence, DataType(r))
	}

	s.author = s.ifo.Value("author")
	s.email = s.ifo.Value("email")
	s.description = s.ifo.Value("description")
	s.website = s.ifo.Value("website")

	return s, nil
}

// Bookname returns the dictionary name.
func (s *Stardict) Bookname() string {
	return s.bookname
}

// Description returns the dictionary description.
func (s *Stardict) Description() string {
	return s.description
}

// Author returns the dictionary author.
func (s *Stardict) Author() string {
	return s.author
}

// Email returns the dictionary contact email.
func (s *Stardict) Email() string {
	return s.email
}

// Website returns the dictionary website url.
func (s *Stardict) Website() string {
	return s.website
}

// WordCount returns the dictionary word count.
func (s *Stardict) WordCount() int64 {
	return s.wordcount
}

// Version returns the dictionary format version.
func (s *Stardict) Version() string {
	return s.version
}

// IfoPath returns the path of the dictionary's .ifo file.
func (s *Stardict) IfoPath() string {
	return s.ifoPath
}

// RawEntry returns the raw markup stored for the given headword. All
// textual payload segments are concatenated in file order. When the
// headword is absent from the index, the synonym index is consulted before
// giving up with [dicthtml.ErrEntryNotFound].
func (s *Stardict) RawEntry(word string) (string, error) {
	idx, err := s.Index()
	if err != nil {
		return "", err
	}

	entries := idx.Search(word)
	if len(entries) == 0 {
		for _, sw := range s.synonyms(word) {
			if w := idx.Word(int(sw.OriginalWordIndex)); w != nil {
				entries = append(entries, w)
			}
		}
	}
	if len(entries) == 0 {
		return "", fmt.Errorf("%w: %q", dicthtml.ErrEntryNotFound, word)
	}

	dict, err := s.Dict()
	if err != nil {
		return "", err
	}

	var pieces []string
	for _, e := range entries {
		w, err := dict.Word(e)
		if err != nil {
			return "", err
		}
		for _, d := range w.Data {
			if d.Type.IsText() && len(d.Data) > 0 {
				pieces = append(pieces, string(d.Data))
			}
		}
	}
	raw := strings.TrimSpace(strings.Join(pieces, "\n"))
	if raw == "" {
		return "", fmt.Errorf("%w: %q", dicthtml.ErrEntryNotFound, word)
	}
	return raw, nil
}

// Index returns an in-memory version of the dictionary's index.
func (s *Stardict) Index() (*Idx, error) {
	if s.idx != nil {
		return s.idx, nil
	}
	idx, err := openIdx(s.ifoPath, s.idxoffsetbits)
	if err != nil {
		return nil, err
	}
	s.idx = idx
	return s.idx, nil
}

// Dict returns the dictionary's payload reader.
func (s *Stardict) Dict() (*Dict, error) {
	if s.dict != nil {
		return s.dict, nil
	}
	dict, closer, err := openDict(s.ifoPath, s.sametypesequence)
	if err != nil {
		return nil, err
	}
	s.dict = dict
	s.dictCloser = closer
	return s.dict, nil
}

// synonyms returns synonym entries for the word, loading the optional
// .syn file on first use. A missing or unreadable .syn file simply yields
// no synonyms.
func (s *Stardict) synonyms(word string) []*SynWord {
	if !s.synLoaded {
		s.synLoaded = true
		s.syn = openSyn(s.ifoPath)
	}
	if s.syn == nil {
		return nil
	}
	return s.syn.Search(word)
}

// Close closes the dictionary's open files.
func (s *Stardict) Close() error {
	if s.dictCloser != nil {
		err := s.dictCloser.Close()
		s.dictCloser = nil
		if err != nil {
			return fmt.Errorf("closing dict file: %w", err)
		}
	}
	return nil
}

func findPath(ifoPath string, exts []string) string {
	baseName := strings.TrimSuffix(ifoPath, filepath.Ext(ifoPath))
	for _, ext := range exts {
		path := baseName + ext
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func openIdx(ifoPath string, idxoffsetbits int) (*Idx, error) {
	idxPath := findPath(ifoPath, []string{".idx", ".idx.gz", ".IDX", ".IDX.gz", ".IDX.GZ"})
	if idxPath == "" {
		return nil, errors.New("no index found")
	}

	f, err := os.Open(idxPath)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", idxPath, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.EqualFold(filepath.Ext(idxPath), ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", idxPath, err)
		}
		defer zr.Close()
		r = zr
	}

	idx, err := NewIdx(r, idxoffsetbits)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", idxPath, err)
	}
	return idx, nil
}

func openDict(ifoPath string, sametypesequence []DataType) (*Dict, io.Closer, error) {
	dictPath := findPath(ifoPath, []string{".dict.dz", ".dict", ".DICT", ".DICT.dz", ".DICT.DZ"})
	if dictPath == "" {
		return nil, nil, errors.New("no dict found")
	}

	f, err := os.Open(dictPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %q: %w", dictPath, err)
	}

	var r io.ReaderAt = f
	if strings.EqualFold(filepath.Ext(dictPath), ".dz") {
		z, err := dictzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, fmt.Errorf("reading %q: %w", dictPath, err)
		}
		r = z
	}

	dict, err := NewDict(r, sametypesequence)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("reading %q: %w", dictPath, err)
	}
	return dict, f, nil
}

func openSyn(ifoPath string) *Syn {
	synPath := findPath(ifoPath, []string{".syn", ".syn.gz", ".SYN", ".SYN.gz"})
	if synPath == "" {
		return nil
	}

	f, err := os.Open(synPath)
	if err != nil {
		return nil
	}
	defer f.Close()

	var r io.Reader = f
	if strings.EqualFold(filepath.Ext(synPath), ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil
		}
		defer zr.Close()
		r = zr
	}

	syn, err := NewSyn(r)
	if err != nil {
		return nil
	}
	return syn
}
