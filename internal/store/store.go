// ABOUTME: Record store persisting workouts and sessions as one KV blob.
// ABOUTME: Every operation is a full load, mutate, save round trip.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	badger "github.com/dgraph-io/badger/v3"
)

// blobKey is the single well-known key the whole database lives under.
const blobKey = "gymlog:db"

// Store owns all workout and session records. Callers receive copies;
// nothing handed out aliases the persisted state.
type Store struct {
	db *badger.DB
	mu sync.Mutex
}

// Open opens or creates the badger database in the given directory.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// load reads the blob and decodes it. A missing or undecodable blob yields
// an empty database rather than an error.
func (s *Store) load() (*database, error) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(blobKey))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return emptyDatabase(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load database: %w", err)
	}

	var db database
	if err := json.Unmarshal(raw, &db); err != nil {
		return emptyDatabase(), nil
	}
	if db.Workouts == nil {
		db.Workouts = emptyDatabase().Workouts
	}
	if db.Sessions == nil {
		db.Sessions = emptyDatabase().Sessions
	}
	return &db, nil
}

// save replaces the blob in a single transaction. A failed write leaves the
// previous snapshot durable.
func (s *Store) save(db *database) error {
	raw, err := json.Marshal(db)
	if err != nil {
		return fmt.Errorf("marshal database: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(blobKey), raw)
	})
	if err != nil {
		return fmt.Errorf("save database: %w", err)
	}
	return nil
}
