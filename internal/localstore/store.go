// Package localstore implements a small file-backed key-value store, the
// terminal analog of the browser's local storage. Each key is one JSON
// file under a base directory; values are opaque strings.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrInvalidKey indicates a key that is empty or contains path components.
var ErrInvalidKey = errors.New("localstore: invalid key")

// FileStore persists string values as JSON files under a base directory.
type FileStore struct {
	baseDir string
}

// NewFileStore creates a FileStore that saves values under baseDir.
func NewFileStore(baseDir string) *FileStore {
	return &FileStore{baseDir: baseDir}
}

// entry is the on-disk shape of one stored value.
type entry struct {
	Value string `json:"value"`
}

// Set writes the value for key, creating the base directory on first use.
func (s *FileStore) Set(key, value string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return fmt.Errorf("localstore: creating directory: %w", err)
	}

	data, err := json.MarshalIndent(entry{Value: value}, "", "  ")
	if err != nil {
		return fmt.Errorf("localstore: marshaling: %w", err)
	}

	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("localstore: writing %s: %w", p, err)
	}
	return nil
}

// Get reads the value for key.
// Returns (value, true, nil) if found, ("", false, nil) if not found.
func (s *FileStore) Get(key string) (string, bool, error) {
	p, err := s.path(key)
	if err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("localstore: reading %s: %w", p, err)
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return "", false, fmt.Errorf("localstore: parsing %s: %w", p, err)
	}
	return e.Value, true, nil
}

// Remove deletes the value for key. Removing a missing key is not an error.
func (s *FileStore) Remove(key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("localstore: removing %s: %w", p, err)
	}
	return nil
}

// path returns the filesystem path for a key's file.
// It rejects keys that are empty, dot-segments, or contain path separators.
func (s *FileStore) path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || key != filepath.Base(key) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.baseDir, key+".json"), nil
}
