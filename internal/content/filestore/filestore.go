package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"vitrine-backend/internal/shared/apperr"
)

// Store persists one pretty-printed JSON file per collection under Dir.
// Every mutation rewrites the whole file through a temp-file + rename so a
// crashed writer never leaves a half-written collection behind.
type Store struct {
	Dir string
}

func New(dir string) *Store {
	return &Store{Dir: dir}
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.Dir, collection+".json")
}

// Exists reports whether the collection file is present.
func (s *Store) Exists(collection string) bool {
	_, err := os.Stat(s.path(collection))
	return err == nil
}

// Load reads and decodes the collection file into out.
// A missing file or invalid JSON is a StorageError, never a silent default.
func (s *Store) Load(collection string, out interface{}) error {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		return apperr.Storage(collection+".read", err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return apperr.Storage(collection+".decode", fmt.Errorf("invalid JSON in %s: %w", s.path(collection), err))
	}

	return nil
}

// Save encodes v and atomically replaces the collection file.
func (s *Store) Save(collection string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return apperr.Storage(collection+".encode", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return apperr.Storage(collection+".mkdir", err)
	}

	tmp, err := os.CreateTemp(s.Dir, collection+"-*.tmp")
	if err != nil {
		return apperr.Storage(collection+".tmp", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperr.Storage(collection+".write", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperr.Storage(collection+".close", err)
	}

	if err := os.Rename(tmpName, s.path(collection)); err != nil {
		os.Remove(tmpName)
		return apperr.Storage(collection+".rename", err)
	}

	return nil
}
