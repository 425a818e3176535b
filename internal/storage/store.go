// Package storage persists the full transaction collection as a single
// JSON document, rewritten wholesale on every mutation.
package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"kosh/internal/models"
)

// Store reads and writes the transaction document. A mutex serializes
// access so concurrent handlers cannot interleave a read-modify-write
// against a half-replaced file.
type Store struct {
	mu   sync.Mutex
	path string
}

// New creates a store backed by the JSON document at path. The parent
// directory is created if missing.
func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{path: path}, nil
}

// LoadAll returns every persisted transaction. A missing, empty or
// corrupt document yields an empty collection, never an error.
func (s *Store) LoadAll() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return []models.Transaction{}
	}

	var list []models.Transaction
	if err := json.Unmarshal(raw, &list); err != nil {
		log.Printf("storage: unreadable document %s, treating as empty: %v", s.path, err)
		return []models.Transaction{}
	}
	if list == nil {
		return []models.Transaction{}
	}
	return list
}

// SaveAll replaces the persisted document with the given collection.
// The write goes to a temp file in the same directory and is renamed
// over the document, so readers never observe a partial write.
func (s *Store) SaveAll(list []models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if list == nil {
		list = []models.Transaction{}
	}
	raw, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("encode transactions: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".transactions-*.json")
	if err != nil {
		return fmt.Errorf("create temp document: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close document: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}
