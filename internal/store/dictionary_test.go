package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── NewDefaultDictionary ──────────────────────────────────────────────────────

func TestNewDefaultDictionary_SeedEntries(t *testing.T) {
	d := NewDefaultDictionary()

	tests := []struct {
		word string
		want string
	}{
		{word: "asylo", want: "sanctuary"},
		{word: "ISTIO", want: "sail"},
		{word: "Kubernetes", want: "helmsman"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, ok := d.Lookup(tt.word)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, 3, d.Len())
}

func TestNewDefaultDictionary_UnknownWord(t *testing.T) {
	got, ok := NewDefaultDictionary().Lookup("unknown")
	assert.False(t, ok)
	assert.Empty(t, got)
}

// TestDefaultEntries_ReturnsCopy verifies that mutating the returned map does
// not leak into dictionaries built later.
func TestDefaultEntries_ReturnsCopy(t *testing.T) {
	entries := DefaultEntries()
	entries["asylo"] = "changed"
	delete(entries, "istio")

	d := NewDefaultDictionary()
	got, ok := d.Lookup("asylo")
	require.True(t, ok)
	assert.Equal(t, "sanctuary", got)

	_, ok = d.Lookup("istio")
	assert.True(t, ok)
}

// ── NewDictionary ─────────────────────────────────────────────────────────────

func TestNewDictionary_NormalizesKeys(t *testing.T) {
	d, err := NewDictionary(map[string]string{"GoLang": "gopher"})
	require.NoError(t, err)

	got, ok := d.Lookup("golang")
	require.True(t, ok)
	assert.Equal(t, "gopher", got)
}

func TestNewDictionary_CopiesInput(t *testing.T) {
	entries := map[string]string{"grpc": "remote"}
	d, err := NewDictionary(entries)
	require.NoError(t, err)

	entries["grpc"] = "mutated"
	entries["extra"] = "value"

	got, _ := d.Lookup("grpc")
	assert.Equal(t, "remote", got)
	assert.Equal(t, 1, d.Len())
}

func TestNewDictionary_Errors(t *testing.T) {
	tests := []struct {
		name    string
		entries map[string]string
		wantErr error
	}{
		{name: "empty key", entries: map[string]string{"": "x"}, wantErr: ErrEmptyWord},
		{name: "empty value", entries: map[string]string{"x": ""}, wantErr: ErrEmptyWord},
		{name: "case duplicate", entries: map[string]string{"Istio": "a", "istio": "b"}, wantErr: ErrDuplicateWord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDictionary(tt.entries)
			assert.Nil(t, d)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewDictionary_Empty(t *testing.T) {
	d, err := NewDictionary(nil)
	require.NoError(t, err)
	assert.Zero(t, d.Len())
}

// TestDictionary_ConcurrentLookup exercises lookups from many goroutines; run
// with -race to catch any hidden mutation.
func TestDictionary_ConcurrentLookup(t *testing.T) {
	d := NewDefaultDictionary()

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				got, ok := d.Lookup("Asylo")
				assert.True(t, ok)
				assert.Equal(t, "sanctuary", got)
			}
		}()
	}
	wg.Wait()
}
