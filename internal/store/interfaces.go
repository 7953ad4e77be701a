package store

// Dictionary is a read-only word -> translation mapping.
//
// Implementations must be safe for unlimited concurrent use and must never
// change after construction.
type Dictionary interface {
	// Lookup returns the translation for word. Matching is case-insensitive.
	Lookup(word string) (string, bool)

	// Len returns the number of entries.
	Len() int
}
