// Package db provides the BadgerDB-backed persistence layer.
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"

	"github.com/mhartwell/fxresolver/internal/domain/entity"
)

// ratePrefix namespaces persisted rate entries. Keys embed a nanosecond
// timestamp so that key order matches insertion order, which LoadAll
// relies on when replaying entries into the rate table.
const ratePrefix = "rate:"

// BadgerRateEntryRepository persists registered rate entries in BadgerDB.
type BadgerRateEntryRepository struct {
	db *badger.DB
}

// NewBadgerRateEntryRepository creates a BadgerDB rate entry repository.
func NewBadgerRateEntryRepository(db *badger.DB) *BadgerRateEntryRepository {
	return &BadgerRateEntryRepository{db: db}
}

// Save persists a rate entry, assigning an ID if the caller did not.
func (r *BadgerRateEntryRepository) Save(ctx context.Context, entry *entity.RateEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal rate entry: %w", err)
	}

	key := fmt.Sprintf("%s%020d:%s", ratePrefix, time.Now().UnixNano(), entry.ID)
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("failed to store rate entry: %w", err)
	}

	return nil
}

// LoadAll returns every persisted entry in insertion order.
func (r *BadgerRateEntryRepository) LoadAll(ctx context.Context) ([]entity.RateEntry, error) {
	var entries []entity.RateEntry

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(ratePrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var entry entity.RateEntry
				if err := json.Unmarshal(val, &entry); err != nil {
					return err
				}
				entries = append(entries, entry)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load rate entries: %w", err)
	}

	return entries, nil
}

// Purge removes all persisted rate entries.
func (r *BadgerRateEntryRepository) Purge(ctx context.Context) error {
	if err := r.db.DropPrefix([]byte(ratePrefix)); err != nil {
		return fmt.Errorf("failed to purge rate entries: %w", err)
	}
	return nil
}
