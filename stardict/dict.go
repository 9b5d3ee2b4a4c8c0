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
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

var (
	errInvalidType        = errors.New("invalid type")
	errWordOffsetTooLarge = errors.New("word offset too large")
	errTruncatedWord      = errors.New("truncated word data")
)

// DataType is a type of data segment in a word. Data types are specified
// by a single byte at the beginning of a segment. Lower case characters
// represent string-like data terminated by a null byte. Upper case
// characters represent file-like data that starts with a 32-bit size.
type DataType byte

const (
	// UTFTextType is utf-8 text.
	UTFTextType = DataType('m')

	// LocaleTextType is text in a locale encoding.
	LocaleTextType = DataType('l')

	// PangoTextType is utf-8 text in the Pango text format.
	PangoTextType = DataType('g')

	// PhoneticType is utf-8 text representing an English phonetic string.
	PhoneticType = DataType('t')

	// XDXFType is utf-8 encoded xml in XDXF format.
	XDXFType = DataType('x')

	// YinBiaoOrKataType is utf-8 encoded Yin Biao or Kana phonetic string.
	YinBiaoOrKataType = DataType('y')

	// PowerWordType is a utf-8 encoded KingSoft PowerWord XML format.
	PowerWordType = DataType('p')

	// MediaWikiType is utf-8 encoded text in MediaWiki format.
	MediaWikiType = DataType('w')

	// HTMLType is utf-8 encoded HTML text.
	HTMLType = DataType('h')

	// WordNetType is WordNet data.
	WordNetType = DataType('n')

	// ResourceFileListType is a list of files in resource storage.
	ResourceFileListType = DataType('r')

	// WavType is .wav sound file data.
	WavType = DataType('W')

	// PictureType is image file data.
	PictureType = DataType('P')

	// ExperimentalType is reserved for experimental features.
	ExperimentalType = DataType('X')
)

// IsText reports whether the data type holds renderable markup or text.
func (t DataType) IsText() bool {
	switch t {
	case UTFTextType, PangoTextType, PhoneticType, XDXFType,
		YinBiaoOrKataType, MediaWikiType, HTMLType:
		return true
	default:
		return false
	}
}

// Data is one typed segment of a word's payload.
type Data struct {
	Type DataType
	Data []byte
}

// Word is a full dictionary payload entry.
type Word struct {
	Data []*Data
}

// Dict reads .dict file payloads via an [io.ReaderAt], so it works over
// plain files and dictzip-compressed files alike.
type Dict struct {
	r                io.ReaderAt
	sametypesequence []DataType
}

// NewDict returns a new Dict reading from r. When sametypesequence is
// non-empty it determines the segment types and per-segment type bytes are
// omitted from the data.
func NewDict(r io.ReaderAt, sametypesequence []DataType) (*Dict, error) {
	for _, s := range sametypesequence {
		switch s {
		case UTFTextType,
			LocaleTextType,
			PangoTextType,
			PhoneticType,
			XDXFType,
			YinBiaoOrKataType,
			PowerWordType,
			MediaWikiType,
			HTMLType,
			WordNetType,
			ResourceFileListType,
			WavType,
			PictureType,
			ExperimentalType:
		default:
			return nil, fmt.Errorf("%w: %v", errInvalidType, s)
		}
	}

	return &Dict{
		r:                r,
		sametypesequence: sametypesequence,
	}, nil
}

// Word retrieves the payload for the given index entry.
func (d *Dict) Word(e *IdxWord) (*Word, error) {
	if e.Offset > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d", errWordOffsetTooLarge, e.Offset)
	}
	b := make([]byte, e.Size)
	//nolint:gosec // offset size is bounds checked above.
	if _, err := d.r.ReadAt(b, int64(e.Offset)); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}

	var segments []*Data
	if len(d.sametypesequence) > 0 {
		for i, t := range d.sametypesequence {
			var data []byte
			if 'a' <= t && t <= 'z' {
				j := bytes.IndexByte(b, 0)
				if j < 0 {
					// The final segment has no null terminator.
					j = len(b)
				}
				data = b[:j]
				if j < len(b) {
					b = b[j+1:]
				} else {
					b = nil
				}
			} else {
				if len(b) < 4 {
					return nil, fmt.Errorf("%w: segment %d", errTruncatedWord, i)
				}
				size := binary.BigEndian.Uint32(b)
				if uint32(len(b)-4) < size {
					return nil, fmt.Errorf("%w: segment %d", errTruncatedWord, i)
				}
				data = b[4 : 4+size]
				b = b[4+size:]
			}
			segments = append(segments, &Data{Type: t, Data: data})
		}
	} else {
		for len(b) > 0 {
			t := DataType(b[0])
			b = b[1:]

			var data []byte
			if 'a' <= t && t <= 'z' {
				j := bytes.IndexByte(b, 0)
				if j < 0 {
					j = len(b)
				}
				data = b[:j]
				if j < len(b) {
					b = b[j+1:]
				} else {
					b = nil
				}
			} else {
				if len(b) < 4 {
					return nil, errTruncatedWord
				}
				size := binary.BigEndian.Uint32(b)
				if uint32(len(b)-4) < size {
					return nil, errTruncatedWord
				}
				data = b[4 : 4+size]
				b = b[4+size:]
			}
			segments = append(segments, &Data{Type: t, Data: data})
		}
	}

	return &Word{Data: segments}, nil
}
