// Package repository defines the persistence interfaces the application
// services depend on.
package repository

import (
	"context"

	"github.com/mhartwell/fxresolver/internal/domain/entity"
)

// RateEntryRepository persists registered rate entries so they survive
// restarts. The in-memory rate table remains the source of truth for
// lookups; this store only backs registration and reload.
type RateEntryRepository interface {
	// Save persists a registered entry.
	Save(ctx context.Context, entry *entity.RateEntry) error

	// LoadAll returns every persisted entry in insertion order.
	LoadAll(ctx context.Context) ([]entity.RateEntry, error)

	// Purge removes all persisted entries. Called when the rate table is
	// cleared back to its baseline.
	Purge(ctx context.Context) error
}
