package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadDictionaryFile reads a flat word -> translation mapping from path and
// returns it as an immutable [Dictionary].
//
// The file is parsed as YAML, which also accepts a JSON object, e.g.
//
//	asylo: sanctuary
//	istio: sail
//
// The file is read once; edits after startup are not picked up.
func LoadDictionaryFile(path string) (Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingDictionaryFile, err)
	}

	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingDictionaryFile, err)
	}

	return NewDictionary(entries)
}
