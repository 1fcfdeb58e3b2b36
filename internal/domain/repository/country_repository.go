// Package repository defines the cache-backed stores that mirror the catalog tables.
//
// Every store keeps an in-memory map that only ever holds rows known to exist in the
// backing database (loaded at startup or written during this process).
package repository

import (
	"context"

	"catalog/internal/domain/entity"
)

// CountryRepository resolves and persists countries keyed by code.
type CountryRepository interface {
	// LoadAll replaces the cache with every country row.
	LoadAll(ctx context.Context) error

	// GetOrAdd returns the code of a cached country, or inserts it first.
	GetOrAdd(ctx context.Context, country *entity.Country) (string, error)

	// BulkAdd inserts every country whose code is not cached yet in a single statement and
	// returns how many were added. A failed batch is logged and leaves the cache unchanged.
	BulkAdd(ctx context.Context, countries []*entity.Country) int

	// Get returns a cached country.
	Get(code string) (*entity.Country, bool)

	// All returns the cached countries ordered by code.
	All() []*entity.Country
}
