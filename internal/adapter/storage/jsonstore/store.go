// Package jsonstore is the fallback storage tier: JSON files under one
// directory, guarded by a process-wide mutex per store. It is selected once
// at startup when no database DSN is configured and implements the same
// repository ports as the Postgres tier.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

type Store struct {
	dir string
	mu  sync.Mutex
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// readFile unmarshals the named file into v; a missing file reads as the
// zero value, same as an empty store. A corrupt file is an error: treating
// it as empty would let the next write discard every prior row.
func (s *Store) readFile(name string, v any) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("corrupt store file %s: %w", name, err)
	}
	return nil
}

// writeFile writes atomically: temp file, then rename.
func (s *Store) writeFile(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path(name) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(name))
}
