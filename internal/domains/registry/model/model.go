package model

import (
	"encoding/json"
	"fmt"
	"maps"
)

// Entries maps an opaque identity id to a canonical zone id.
type Entries map[string]string

// Parse decodes a persisted blob. "null" decodes to an empty map.
func Parse(blob string) (Entries, error) {
	var entries Entries

	if err := json.Unmarshal([]byte(blob), &entries); err != nil {
		return Entries{}, fmt.Errorf("failed to decode registry blob: %w", err)
	}

	if entries == nil {
		entries = Entries{}
	}

	return entries, nil
}

// Serialize returns the canonical blob: keys sorted, no whitespace, "{}" when empty.
func (e Entries) Serialize() string {
	if len(e) == 0 {
		return "{}"
	}

	// A map[string]string always marshals.
	data, _ := json.Marshal(map[string]string(e))

	return string(data)
}

func (e Entries) Clone() Entries {
	if e == nil {
		return Entries{}
	}

	return maps.Clone(e)
}
