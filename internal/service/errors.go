package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNoInputWord is returned by Translate when the request carries no word.
	ErrNoInputWord = errors.New("no input word given")

	// ErrUnknownWord matches every [*UnknownWordError] via [errors.Is].
	ErrUnknownWord = errors.New("no known translation")
)

// UnknownWordError is returned by Translate when the dictionary has no entry
// for Word. Word is kept exactly as the caller sent it.
type UnknownWordError struct {
	Word string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("No known translation for \"%s\"", e.Word)
}

func (e *UnknownWordError) Is(target error) bool {
	return target == ErrUnknownWord
}
