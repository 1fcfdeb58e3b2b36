package sqlstore

import (
	"context"
	"log/slog"
	"sync"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/gateway"
	"catalog/internal/infra/persistence/model"

	"github.com/pkg/errors"
)

const (
	categoriesTable = "categories"

	selectCategories = "SELECT name, bcl_id, parent_category_id FROM categories"
)

var categoryColumns = []string{"name", "parent_category_id", "bcl_id"}

// categoryStore implements the repository.CategoryRepository interface.
type categoryStore struct {
	gw     gateway.Gateway
	logger *slog.Logger

	mu    sync.RWMutex
	cache map[int64]*entity.Category
}

// NewCategoryRepository is the constructor for categoryStore.
func NewCategoryRepository(gw gateway.Gateway, logger *slog.Logger) repository.CategoryRepository {
	return &categoryStore{
		gw:     gw,
		logger: logger,
		cache:  make(map[int64]*entity.Category),
	}
}

func (s *categoryStore) LoadAll(ctx context.Context) error {
	var rows []*model.CategoryModel
	if err := s.gw.Query(ctx, &rows, selectCategories, nil); err != nil {
		return errors.Wrap(err, "failed to load categories")
	}

	cache := make(map[int64]*entity.Category, len(rows))
	for _, row := range rows {
		cache[row.BclID] = toCategoryDomain(row)
	}

	s.mu.Lock()
	s.cache = cache
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "Categories loaded", slog.Int("count", len(cache)))

	return nil
}

func (s *categoryStore) GetOrAdd(ctx context.Context, category, parent, grandparent *entity.Category) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.getOrAdd(ctx, category, parent, grandparent)
}

// getOrAdd requires s.mu. Ancestors are committed before the category that references them.
func (s *categoryStore) getOrAdd(ctx context.Context, category, parent, grandparent *entity.Category) (int64, error) {
	if category == nil {
		return 0, nil
	}

	var parentID any
	switch {
	case grandparent != nil:
		grandparentID, err := s.getOrAdd(ctx, grandparent, nil, nil)
		if err != nil {
			return 0, err
		}
		parentID = grandparentID
		if parent != nil {
			id, err := s.getOrAdd(ctx, parent, grandparent, nil)
			if err != nil {
				return 0, err
			}
			parentID = id
		}
	case parent != nil:
		id, err := s.getOrAdd(ctx, parent, nil, nil)
		if err != nil {
			return 0, err
		}
		parentID = id
	}

	// the first insertion is authoritative; a known category is never re-parented
	if _, ok := s.cache[category.ID]; ok {
		return category.ID, nil
	}

	stmt := gateway.InsertInto(categoriesTable, categoryColumns...)
	if _, err := s.gw.Insert(ctx, stmt.SQL(1), []any{category.Description, parentID, category.ID}, false); err != nil {
		return 0, errors.Wrapf(err, "failed to add category %d", category.ID)
	}

	s.cache[category.ID] = &entity.Category{ID: category.ID, Description: category.Description}

	return category.ID, nil
}

func (s *categoryStore) Get(id int64) (*entity.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, ok := s.cache[id]

	return category, ok
}
