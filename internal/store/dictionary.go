// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"maps"
	"strings"
)

// defaultEntries is the built-in seed served when no dictionary file is
// configured.
var defaultEntries = map[string]string{
	"asylo":      "sanctuary",
	"istio":      "sail",
	"kubernetes": "helmsman",
}

// DefaultEntries returns a fresh copy of the built-in seed entries.
func DefaultEntries() map[string]string {
	return maps.Clone(defaultEntries)
}

// memoryDictionary is an immutable in-memory [Dictionary]. Keys are stored
// lowercased so lookups only need to normalise the query.
type memoryDictionary struct {
	entries map[string]string
}

// NewDictionary builds an immutable [Dictionary] from entries. The input map
// is copied, so later changes to it are not observed.
//
// Returns [ErrEmptyWord] for an entry with an empty key or value and
// [ErrDuplicateWord] when two keys differ only by case.
func NewDictionary(entries map[string]string) (Dictionary, error) {
	normalized := make(map[string]string, len(entries))
	for word, translation := range entries {
		if word == "" || translation == "" {
			return nil, fmt.Errorf("%w: %q -> %q", ErrEmptyWord, word, translation)
		}

		key := strings.ToLower(word)
		if _, exists := normalized[key]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateWord, key)
		}
		normalized[key] = translation
	}

	return &memoryDictionary{entries: normalized}, nil
}

// NewDefaultDictionary returns a [Dictionary] over [DefaultEntries].
func NewDefaultDictionary() Dictionary {
	return &memoryDictionary{entries: DefaultEntries()}
}

func (d *memoryDictionary) Lookup(word string) (string, bool) {
	translation, ok := d.entries[strings.ToLower(word)]
	return translation, ok
}

func (d *memoryDictionary) Len() int {
	return len(d.entries)
}
