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

// Package dicthtml turns raw StarDict-style dictionary markup into clean
// presentational HTML.
//
// Dictionary data files store each headword's definition as a nested
// pseudo-HTML blob with custom tags: colored classification spans that mark
// part-of-speech headers, bold numeric markers for individual senses, and
// nested quotation blocks denoting structure. This package defines the
// normalized in-memory model for one such entry. The subpackages do the
// work:
//
//  1. parse converts one source's raw markup into an Entry. Two markup
//     dialects are supported through the same model.
//  2. render converts an Entry into a standalone HTML fragment.
//  3. resolve looks a word up across several ranked sources, follows
//     "see also" cross-references, sanitizes the winning definition and
//     caches it.
//  4. stardict reads the backing dictionary files (.ifo, .idx, .dict and
//     optional .syn).
package dicthtml
