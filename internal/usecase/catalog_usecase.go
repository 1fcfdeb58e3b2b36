package usecase

import (
	"context"
	"time"

	"catalog/internal/domain/entity"
)

// PersistResult summarises one persistence pass
type PersistResult struct {
	Products          int           `json:"products"`
	PriceObservations int           `json:"priceObservations"`
	Duration          time.Duration `json:"duration"`
}

// CatalogUsecase defines the catalog orchestration use cases
type CatalogUsecase interface {
	// LoadStores fills the country, category, price history and product caches in dependency order
	LoadStores(ctx context.Context) error

	// IngestFeed parses the feed at path and publishes its products as the current list.
	// A feed that cannot be parsed publishes an empty list and returns the error.
	IngestFeed(ctx context.Context, path string) ([]*entity.Product, error)

	// Persist writes the current list: countries, categories, products, then price observations
	Persist(ctx context.Context) (*PersistResult, error)

	// ReloadProducts re-reads only the product store and republishes the list
	ReloadProducts(ctx context.Context) error

	// Products returns the current list ordered by combined score, best first
	Products() []*entity.Product

	// PriceHistory returns the compacted price series of sku
	PriceHistory(ctx context.Context, sku string) ([]*entity.PriceHistory, error)
}
