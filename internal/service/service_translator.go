package service

import (
	"context"

	"github.com/MKhiriev/go-translator/internal/logger"
	"github.com/MKhiriev/go-translator/internal/store"
)

type translatorService struct {
	dictionary store.Dictionary

	logger *logger.Logger
}

// NewTranslatorService returns a [TranslatorService] backed by dictionary.
// The service holds no mutable state and is safe for concurrent use.
func NewTranslatorService(dictionary store.Dictionary, logger *logger.Logger) TranslatorService {
	return &translatorService{
		dictionary: dictionary,
		logger:     logger,
	}
}

func (s *translatorService) Translate(ctx context.Context, word string) (string, error) {
	if word == "" {
		return "", ErrNoInputWord
	}

	translation, ok := s.dictionary.Lookup(word)
	if !ok {
		logger.FromContextOr(ctx, s.logger).Debug().Str("word", word).Msg("no translation found")
		return "", &UnknownWordError{Word: word}
	}

	return translation, nil
}
