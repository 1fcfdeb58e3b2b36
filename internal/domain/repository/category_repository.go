package repository

import (
	"context"

	"catalog/internal/domain/entity"
)

// CategoryRepository resolves and persists the three-level category hierarchy keyed by feed id.
type CategoryRepository interface {
	// LoadAll replaces the cache with every category row.
	LoadAll(ctx context.Context) error

	// GetOrAdd resolves grandparent and parent first, then the category itself, inserting what is
	// missing with its parent link. A category already cached is returned as-is and never re-parented.
	GetOrAdd(ctx context.Context, category, parent, grandparent *entity.Category) (int64, error)

	// Get returns a cached category.
	Get(id int64) (*entity.Category, bool)
}
