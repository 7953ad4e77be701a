package store

import "errors"

// Sentinel errors returned while building a [Dictionary]. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrEmptyWord is returned when a dictionary entry has an empty key or an
	// empty translation.
	ErrEmptyWord = errors.New("dictionary entry has an empty word")

	// ErrDuplicateWord is returned when two keys collapse to the same word
	// after case normalisation (e.g. "Istio" and "istio").
	ErrDuplicateWord = errors.New("dictionary word is defined more than once")

	// ErrReadingDictionaryFile is returned when the dictionary file cannot be
	// opened or read.
	ErrReadingDictionaryFile = errors.New("error reading dictionary file")

	// ErrDecodingDictionaryFile is returned when the dictionary file is not a
	// flat word -> translation mapping in YAML or JSON.
	ErrDecodingDictionaryFile = errors.New("error decoding dictionary file")
)
