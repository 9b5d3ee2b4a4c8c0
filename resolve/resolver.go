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

// Package resolve looks words up across ranked dictionary sources. Sources
// are opened lazily, redirection entries are followed to their targets,
// and sanitized results are cached per resolver.
package resolve

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mettae/dicthtml"
)

// Source is a dictionary that can produce a rendered HTML fragment for a
// headword. Lookup returns an error wrapping [dicthtml.ErrEntryNotFound]
// when the headword is absent.
type Source interface {
	Name() string
	Lookup(word string) (string, error)
}

// LazySource defers opening a dictionary until the first lookup needs it.
// Open is invoked at most once; an Open failure disables the source for
// the lifetime of the resolver.
type LazySource struct {
	// Name identifies the source in logs.
	Name string

	// Open builds the underlying source.
	Open func() (Source, error)
}

type sourceState int

const (
	stateUninitialized sourceState = iota
	stateFailed
	stateReady
)

type sourceSlot struct {
	lazy   LazySource
	state  sourceState
	source Source
}

// Resolver answers word lookups from an ordered list of sources. Earlier
// sources win. Resolver is safe for concurrent use.
type Resolver struct {
	mu     sync.Mutex
	slots  []*sourceSlot
	cache  map[string]string
	logger zerolog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used to report source failures.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver returns a resolver over the given sources in priority
// order.
func NewResolver(sources []LazySource, opts ...Option) *Resolver {
	r := &Resolver{
		cache:  map[string]string{},
		logger: zerolog.Nop(),
	}
	for _, s := range sources {
		r.slots = append(r.slots, &sourceSlot{lazy: s})
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lookup returns a sanitized HTML definition for the word, or the empty
// string when no source has one. Redirection-only entries ("see ...",
// arrow references) are followed within the source that produced them.
func (r *Resolver) Lookup(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}
	key := strings.ToLower(word)

	r.mu.Lock()
	if cached, ok := r.cache[key]; ok {
		r.mu.Unlock()
		return cached
	}
	r.mu.Unlock()

	var result string
	for _, slot := range r.slots {
		source := r.open(slot)
		if source == nil {
			continue
		}
		if def := r.follow(source, word); def != "" {
			result = Sanitize(def)
			break
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Another goroutine may have resolved the word in the meantime. The
	// first writer wins so repeated lookups stay stable.
	if cached, ok := r.cache[key]; ok {
		return cached
	}
	r.cache[key] = result
	return result
}

// open returns the slot's source, initializing it on first use. It
// returns nil if the source failed to open.
func (r *Resolver) open(slot *sourceSlot) Source {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch slot.state {
	case stateReady:
		return slot.source
	case stateFailed:
		return nil
	}

	source, err := slot.lazy.Open()
	if err != nil {
		slot.state = stateFailed
		r.logger.Warn().
			Err(fmt.Errorf("%w: %w", dicthtml.ErrSourceUnavailable, err)).
			Str("source", slot.lazy.Name).
			Msg("disabling dictionary source")
		return nil
	}
	slot.state = stateReady
	slot.source = source
	return source
}

// follow looks a word up in a single source, chasing cross-references
// until a valid definition is found. It returns the empty string when the
// word is absent or every reachable entry is a redirection. The seen set
// only grows and the chain only continues to unseen words, so the loop
// terminates after at most one hop per distinct word.
func (r *Resolver) follow(source Source, word string) string {
	seen := map[string]bool{}
	for {
		key := strings.ToLower(word)
		if seen[key] {
			return ""
		}
		seen[key] = true

		def, err := source.Lookup(word)
		if err != nil {
			if !errors.Is(err, dicthtml.ErrEntryNotFound) {
				r.logger.Debug().
					Err(err).
					Str("source", source.Name()).
					Str("word", word).
					Msg("lookup failed")
			}
			return ""
		}
		if IsValidDefinition(def) {
			return def
		}

		target := CrossReference(def)
		if target == "" || strings.EqualFold(target, word) {
			return ""
		}
		word = target
	}
}

// Names returns the source names in priority order.
func (r *Resolver) Names() []string {
	names := make([]string, 0, len(r.slots))
	for _, slot := range r.slots {
		names = append(names, slot.lazy.Name)
	}
	return names
}
