package service

import "context"

// TranslatorService resolves words against the service dictionary.
type TranslatorService interface {
	// Translate returns the translation of word. It fails with
	// [ErrNoInputWord] for an empty word and with [*UnknownWordError] when no
	// entry exists.
	Translate(ctx context.Context, word string) (string, error)
}

// ShutdownService lets a call ask for the server lifetime to end.
type ShutdownService interface {
	// RequestShutdown raises the shutdown notification. It is idempotent and
	// reports whether this call was the one that raised it.
	RequestShutdown(ctx context.Context) bool
}

// ShutdownRequester is the raising side of the shutdown notification.
// *notify.Notification satisfies it.
type ShutdownRequester interface {
	Raise() bool
}
