package repository

import (
	"context"

	"catalog/internal/domain/entity"
)

// ProductRepository resolves and upserts products keyed by SKU.
type ProductRepository interface {
	// LoadAll replaces the cache with the products that have a fresh price observation,
	// each joined with its latest observation. Country and category caches must be loaded first.
	LoadAll(ctx context.Context) error

	// GetOrAdd returns the sku of a cached product, or upserts it first.
	GetOrAdd(ctx context.Context, product *entity.Product) (string, error)

	// BulkAdd pre-resolves countries and category hierarchies, then upserts all products
	// in one statement. It returns how many products were submitted.
	BulkAdd(ctx context.Context, products []*entity.Product) (int, error)

	// Get returns a cached product.
	Get(sku string) (*entity.Product, bool)

	// Products returns a copy of the cached products in no particular order.
	Products() []*entity.Product
}
