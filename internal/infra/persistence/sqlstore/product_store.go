package sqlstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"catalog/config"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/gateway"
	"catalog/internal/infra/persistence/model"

	"github.com/pkg/errors"
)

const (
	productsTable = "products"

	// products joined with their latest observation inside the lookback window
	selectProductView = `SELECT p.sku, p.name, p.category_id, p.country_code, p.description, p.volume,
       p.alcohol, p.upc, p.unit_size, p.sub_category_id, p.class_id,
       ph.last_updated, ph.regular_price, ph.current_price, ph.promotion_start_date, ph.promotion_end_date
FROM products p
LEFT JOIN (
    SELECT sku, MAX(last_updated) AS latest
    FROM price_history
    WHERE last_updated >= ?
    GROUP BY sku
) lp ON lp.sku = p.sku
LEFT JOIN price_history ph ON ph.sku = lp.sku AND ph.last_updated = lp.latest`

	freshProductsFilter = " WHERE lp.latest >= ?"
)

var (
	productColumns = []string{
		"sku",
		"name",
		"category_id",
		"country_code",
		"description",
		"volume",
		"alcohol",
		"upc",
		"unit_size",
		"sub_category_id",
		"class_id",
		"date_updated",
	}

	// a conflicting sku only refreshes its name, upc and category links; the other
	// columns keep their first stored value and date_updated is touched
	productUpdateColumns = []string{
		"name",
		"upc",
		"category_id",
		"sub_category_id",
		"class_id",
	}
)

// productStore implements the repository.ProductRepository interface.
type productStore struct {
	gw         gateway.Gateway
	countries  repository.CountryRepository
	categories repository.CategoryRepository
	cfg        *config.CatalogConfig
	logger     *slog.Logger
	now        func() time.Time

	mu    sync.RWMutex
	cache map[string]*entity.Product
}

// NewProductRepository is the constructor for productStore. It resolves foreign keys
// through the country and category stores.
func NewProductRepository(
	gw gateway.Gateway,
	countries repository.CountryRepository,
	categories repository.CategoryRepository,
	cfg *config.Config,
	logger *slog.Logger,
) repository.ProductRepository {
	catalogCfg := &config.CatalogConfig{}
	if cfg != nil && cfg.Catalog != nil {
		catalogCfg = cfg.Catalog
	}

	return &productStore{
		gw:         gw,
		countries:  countries,
		categories: categories,
		cfg:        catalogCfg,
		logger:     logger,
		now:        time.Now,
		cache:      make(map[string]*entity.Product),
	}
}

func (s *productStore) LoadAll(ctx context.Context) error {
	now := s.now().UTC()
	latestCutoff := now.Add(-s.cfg.LatestWindow)
	freshCutoff := now.Add(-s.cfg.FreshnessWindow)

	query := selectProductView
	params := []any{latestCutoff}
	if !s.cfg.IncludeInactive {
		query += freshProductsFilter
		params = append(params, freshCutoff)
	}

	var rows []*model.ProductRow
	if err := s.gw.Query(ctx, &rows, query, params); err != nil {
		return errors.Wrap(err, "failed to load products")
	}

	cache := make(map[string]*entity.Product, len(rows))
	skipped := 0
	for _, row := range rows {
		product, err := s.fromRow(ctx, row, freshCutoff)
		if err != nil {
			s.logger.WarnContext(ctx, "Skipping product row", slog.Any("error", err))
			skipped++

			continue
		}
		if _, dup := cache[product.SKU]; dup {
			continue
		}
		cache[product.SKU] = product
	}

	s.mu.Lock()
	s.cache = cache
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "Products loaded",
		slog.Int("count", len(cache)),
		slog.Int("skipped", skipped),
		slog.Bool("includeInactive", s.cfg.IncludeInactive),
	)

	return nil
}

func (s *productStore) fromRow(ctx context.Context, row *model.ProductRow, freshCutoff time.Time) (*entity.Product, error) {
	sku, name := deref(row.SKU), deref(row.Name)
	if sku == "" || name == "" {
		return nil, domainerrors.NewFeedError(domainerrors.ErrRecordInvalid, errors.New("sku and name are required"), sku)
	}

	product := &entity.Product{
		SKU:                sku,
		UPC:                deref(row.UPC),
		Name:               name,
		Volume:             deref(row.Volume),
		UnitSize:           deref(row.UnitSize),
		AlcoholPercentage:  deref(row.Alcohol),
		TastingDescription: deref(row.Description),
		Country:            s.lookupCountry(ctx, sku, row.CountryCode),
		Category:           s.lookupCategory(ctx, sku, "category_id", row.CategoryID),
		SubCategory:        s.lookupCategory(ctx, sku, "sub_category_id", row.SubCategoryID),
		SubSubCategory:     s.lookupCategory(ctx, sku, "class_id", row.ClassID),
	}

	if latest := priceHistoryFromRow(sku, row); latest != nil {
		product.PriceHistory = []*entity.PriceHistory{latest}
		product.IsActive = !latest.ObservedAt.Before(freshCutoff)
	}

	return product, nil
}

func (s *productStore) lookupCountry(ctx context.Context, sku string, code *string) *entity.Country {
	if code == nil || *code == "" {
		return nil
	}
	country, ok := s.countries.Get(*code)
	if !ok {
		s.logger.WarnContext(ctx, "Product references unknown country",
			slog.String("sku", sku),
			slog.String("countryCode", *code),
		)

		return nil
	}

	return country
}

func (s *productStore) lookupCategory(ctx context.Context, sku, column string, id *int64) *entity.Category {
	if id == nil {
		return nil
	}
	category, ok := s.categories.Get(*id)
	if !ok {
		s.logger.WarnContext(ctx, "Product references unknown category",
			slog.String("sku", sku),
			slog.String("column", column),
			slog.Int64("categoryId", *id),
		)

		return nil
	}

	return category
}

func (s *productStore) GetOrAdd(ctx context.Context, product *entity.Product) (string, error) {
	if product == nil || product.SKU == "" || product.Name == "" {
		return "", domainerrors.NewFeedError(domainerrors.ErrRecordInvalid, errors.New("sku and name are required"), "product")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cache[product.SKU]; ok {
		return product.SKU, nil
	}

	if product.Country != nil && product.Country.Code != "" {
		if _, err := s.countries.GetOrAdd(ctx, product.Country); err != nil {
			return "", errors.Wrapf(err, "failed to resolve country of %s", product.SKU)
		}
	}
	if err := s.resolveHierarchy(ctx, product); err != nil {
		return "", errors.Wrapf(err, "failed to resolve categories of %s", product.SKU)
	}

	stmt := s.upsertStatement()
	if _, err := s.gw.Insert(ctx, stmt.SQL(1), s.params(product, s.now().UTC()), false); err != nil {
		return "", errors.Wrapf(err, "failed to upsert product %s", product.SKU)
	}

	s.cache[product.SKU] = product

	return product.SKU, nil
}

func (s *productStore) BulkAdd(ctx context.Context, products []*entity.Product) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// phase 1: make every foreign key a cache hit
	countries := make([]*entity.Country, 0, len(products))
	for _, product := range products {
		if product != nil && product.Country != nil {
			countries = append(countries, product.Country)
		}
	}
	added := s.countries.BulkAdd(ctx, countries)

	hierarchies := make(map[[3]int64]struct{})
	for _, product := range products {
		if product == nil {
			continue
		}
		key := hierarchyKey(product)
		if key == [3]int64{} {
			continue
		}
		if _, ok := hierarchies[key]; ok {
			continue
		}
		hierarchies[key] = struct{}{}
		if err := s.resolveHierarchy(ctx, product); err != nil {
			s.logger.WarnContext(ctx, "Category hierarchy not resolved",
				slog.String("sku", product.SKU),
				slog.Any("error", err),
			)
		}
	}

	s.logger.DebugContext(ctx, "Product references resolved",
		slog.Int("countriesAdded", added),
		slog.Int("hierarchies", len(hierarchies)),
	)

	// phase 2: one upsert for every distinct valid product
	now := s.now().UTC()
	pending := make([]*entity.Product, 0, len(products))
	rows := make([][]any, 0, len(products))
	batch := make(map[string]struct{}, len(products))
	invalid := 0
	for _, product := range products {
		if product == nil || product.SKU == "" || product.Name == "" {
			invalid++

			continue
		}
		if _, ok := batch[product.SKU]; ok {
			continue
		}
		batch[product.SKU] = struct{}{}
		pending = append(pending, product)
		rows = append(rows, s.params(product, now))
	}

	if invalid > 0 {
		s.logger.WarnContext(ctx, "Products without sku or name skipped", slog.Int("count", invalid))
	}
	if len(rows) == 0 {
		return 0, nil
	}

	if err := s.gw.BulkInsert(ctx, s.upsertStatement(), rows); err != nil {
		return 0, errors.Wrap(err, "failed to upsert products")
	}

	for _, product := range pending {
		s.cache[product.SKU] = product
	}

	return len(pending), nil
}

func (s *productStore) Get(sku string) (*entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.cache[sku]

	return product, ok
}

func (s *productStore) Products() []*entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]*entity.Product, 0, len(s.cache))
	for _, product := range s.cache {
		products = append(products, product)
	}

	return products
}

func (s *productStore) upsertStatement() gateway.Statement {
	return s.gw.Dialect().BuildUpsert(productsTable, "sku", productColumns, productUpdateColumns, "date_updated")
}

// resolveHierarchy persists the product's categories top-down, dropping absent leading levels.
func (s *productStore) resolveHierarchy(ctx context.Context, product *entity.Product) error {
	var err error
	switch {
	case product.SubSubCategory != nil:
		_, err = s.categories.GetOrAdd(ctx, product.SubSubCategory, product.SubCategory, product.Category)
	case product.SubCategory != nil:
		_, err = s.categories.GetOrAdd(ctx, product.SubCategory, product.Category, nil)
	case product.Category != nil:
		_, err = s.categories.GetOrAdd(ctx, product.Category, nil, nil)
	}

	return err
}

// params builds the upsert row. Foreign keys are only written when the target is cached.
func (s *productStore) params(product *entity.Product, now time.Time) []any {
	var countryCode any
	if product.Country != nil {
		if _, ok := s.countries.Get(product.Country.Code); ok {
			countryCode = product.Country.Code
		}
	}

	return []any{
		product.SKU,
		product.Name,
		s.categoryRef(product.Category),
		countryCode,
		nullableString(product.TastingDescription),
		nullableFloat(product.Volume),
		nullableFloat(product.AlcoholPercentage),
		nullableString(product.UPC),
		nullableInt(product.UnitSize),
		s.categoryRef(product.SubCategory),
		s.categoryRef(product.SubSubCategory),
		now,
	}
}

func (s *productStore) categoryRef(category *entity.Category) any {
	if category == nil {
		return nil
	}
	if _, ok := s.categories.Get(category.ID); !ok {
		return nil
	}

	return category.ID
}

func hierarchyKey(product *entity.Product) [3]int64 {
	var key [3]int64
	for i, category := range []*entity.Category{product.Category, product.SubCategory, product.SubSubCategory} {
		if category != nil {
			key[i] = category.ID
		}
	}

	return key
}
