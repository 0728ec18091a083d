// ABOUTME: Badger-backed history store.
// ABOUTME: One fixed key holds the JSON-serialized history list.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	badger "github.com/dgraph-io/badger/v3"

	"github.com/flittly/gohard/internal/models"
)

// historyKey is the single slot the serialized history list lives under.
const historyKey = "history"

// BadgerStore implements Store on a local Badger database.
type BadgerStore struct {
	db *badger.DB
}

// Compile-time check that BadgerStore implements Store.
var _ Store = (*BadgerStore)(nil)

// Open opens or creates the Badger database at dir.
func Open(dir string) (*BadgerStore, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// OpenDefault opens the store at the default XDG data path.
func OpenDefault() (*BadgerStore, error) {
	return Open(DefaultDBPath())
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "gohard")
}

// DefaultDBPath returns the default database directory following XDG spec.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), "db")
}

// Load reads the full history list. A missing or malformed blob yields an
// empty history rather than an error.
func (s *BadgerStore) Load() ([]models.HistoryEntry, error) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(historyKey))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return []models.HistoryEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	var entries []models.HistoryEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		// Treat a corrupt blob as no history.
		return []models.HistoryEntry{}, nil
	}
	return entries, nil
}

// Save serializes and rewrites the entire history list.
func (s *BadgerStore) Save(entries []models.HistoryEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(historyKey), data)
	})
	if err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
