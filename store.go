package stocktracker

import (
	"encoding/json"
	"os"
)

// This file persists entity maps as whole-file JSON snapshots, in a way that
// is still human-readable and diff-friendly: indented documents with keys in
// lexicographic order.
//
// There is no locking. The tool assumes a single process and a single
// invocation at a time; concurrent writers are last-writer-wins at the
// whole-file granularity.

// loadMap reads the full map stored at path.
func loadMap[T any](path string) (map[string]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errOpenFailed(path, err)
	}
	m := make(map[string]T)
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errDeserializeFailed(path, err)
	}
	return m, nil
}

// saveMap overwrites path with a full snapshot of m. Marshaling happens
// before any write, so a serialization failure leaves the file untouched.
func saveMap[T any](path string, m map[string]T) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errSerializeFailed(path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errWriteFailed(path, err)
	}
	return nil
}

// modifyMap runs a full read-modify-write cycle: load the map at path, apply
// fn in place, and save the result. If fn fails, nothing is written.
func modifyMap[T any](path string, fn func(map[string]T) error) error {
	m, err := loadMap[T](path)
	if err != nil {
		return err
	}
	if err := fn(m); err != nil {
		return err
	}
	return saveMap(path, m)
}
