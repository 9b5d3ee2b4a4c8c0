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

package dicthtml

import "errors"

// ErrEntryNotFound indicates that a headword is absent from a source. It is
// expected and non-fatal: lookups fall through to the next source.
var ErrEntryNotFound = errors.New("entry not found")

// ErrMalformedMarkup indicates that raw markup could not be interpreted as
// a nested tag tree at all. Merely unexpected structure does not produce
// this error; it degrades into notes instead.
var ErrMalformedMarkup = errors.New("malformed markup")

// ErrSourceUnavailable indicates that a source's backing data could not be
// loaded at construction. The source is permanently disabled for the
// process lifetime.
var ErrSourceUnavailable = errors.New("source unavailable")
