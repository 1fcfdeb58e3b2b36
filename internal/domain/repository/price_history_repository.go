package repository

import (
	"context"
	"time"

	"catalog/internal/domain/entity"
)

// PriceHistoryRepository resolves and persists price observations keyed by (sku, observedAt).
type PriceHistoryRepository interface {
	// LoadRecent preloads every observation newer than since, so writes can be deduplicated.
	LoadRecent(ctx context.Context, since time.Time) error

	// LoadForSKU reads the full series for sku, compacts it and caches the result.
	LoadForSKU(ctx context.Context, sku string) ([]*entity.PriceHistory, error)

	// Cached returns the cached series for sku, oldest first.
	Cached(sku string) []*entity.PriceHistory

	// GetOrAdd persists the latest observation of product unless it is already known.
	// It returns an empty sku when the product carries no observation.
	GetOrAdd(ctx context.Context, product *entity.Product) (string, error)

	// BulkAdd persists the latest observation of every product in one statement and returns
	// how many rows were written.
	BulkAdd(ctx context.Context, products []*entity.Product) (int, error)
}
