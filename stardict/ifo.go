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
	"fmt"
	"io"
	"regexp"
	"strings"
)

const ifoMagic = "StarDict's dict ifo file"

var ifoKeyRe = regexp.MustCompile(`^[a-zA-Z0-9-_]+$`)

// Ifo holds a dictionary's .ifo metadata.
type Ifo struct {
	metadata map[string]string
}

// NewIfo reads dictionary metadata from r.
func NewIfo(r io.Reader) (*Ifo, error) {
	metadata := map[string]string{}
	s := bufio.NewScanner(bufio.NewReader(r))
	if s.Scan() {
		if s.Text() != ifoMagic {
			return nil, fmt.Errorf("bad magic data")
		}
	}

	i := 0
	for s.Scan() {
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		kv := strings.SplitN(line, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid metadata line: %q", line)
		}
		key := strings.TrimRight(kv[0], " ")
		value := strings.TrimLeft(kv[1], " ")
		if !ifoKeyRe.MatchString(key) {
			return nil, fmt.Errorf("invalid key: %v", key)
		}
		if i == 0 && key != "version" {
			return nil, fmt.Errorf("missing version")
		}

		metadata[key] = value
		i++
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading metadata: %w", err)
	}

	return &Ifo{metadata: metadata}, nil
}

// Value returns the metadata value for key, or the empty string.
func (i *Ifo) Value(key string) string {
	return i.metadata[key]
}
