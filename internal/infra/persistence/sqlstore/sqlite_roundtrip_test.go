package sqlstore

import (
	"context"
	"testing"
	"time"

	"catalog/config"
	"catalog/internal/domain/entity"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/gateway"
	"catalog/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stores struct {
	countries  repository.CountryRepository
	categories repository.CategoryRepository
	prices     repository.PriceHistoryRepository
	products   repository.ProductRepository
}

func newStores(gw gateway.Gateway, cfg *config.Config) *stores {
	logger := discardLogger()
	countries := NewCountryRepository(gw, logger)
	categories := NewCategoryRepository(gw, logger)

	return &stores{
		countries:  countries,
		categories: categories,
		prices:     NewPriceHistoryRepository(gw, cfg, logger),
		products:   NewProductRepository(gw, countries, categories, cfg, logger),
	}
}

func (s *stores) load(t *testing.T, ctx context.Context) {
	t.Helper()

	require.NoError(t, s.countries.LoadAll(ctx))
	require.NoError(t, s.categories.LoadAll(ctx))
	require.NoError(t, s.prices.LoadRecent(ctx, time.Now().Add(-14*24*time.Hour)))
	require.NoError(t, s.products.LoadAll(ctx))
}

func newSQLiteGateway(t *testing.T) (*gateway.GormGateway, *config.Config) {
	t.Helper()

	cfg := &config.Config{
		Database: &config.DatabaseConfig{Dialect: "sqlite", Path: ":memory:", QueryTimeout: 10 * time.Second},
		Catalog: &config.CatalogConfig{
			LatestWindow:    90 * 24 * time.Hour,
			FreshnessWindow: 30 * 24 * time.Hour,
			PriceSource:     "bcl",
		},
	}

	gw, err := gateway.Connect(context.Background(), cfg, discardLogger(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = gw.Close() })
	require.NoError(t, gw.Migrate(context.Background()))

	return gw, cfg
}

func countProducts(t *testing.T, gw gateway.Gateway) int64 {
	t.Helper()

	var n int64
	_, err := gw.QueryOne(context.Background(), &n, "SELECT COUNT(*) FROM products", nil)
	require.NoError(t, err)

	return n
}

func TestSQLiteRoundTrip(t *testing.T) {
	gw, cfg := newSQLiteGateway(t)
	ctx := context.Background()
	observed := time.Now().UTC().Add(-24 * time.Hour).Truncate(time.Second)
	stale := time.Now().UTC().Add(-60 * 24 * time.Hour).Truncate(time.Second)

	malt := &entity.Product{
		SKU:                "100",
		UPC:                "0123456789",
		Name:               "Highland Single Malt",
		Volume:             0.75,
		UnitSize:           1,
		AlcoholPercentage:  40,
		TastingDescription: "Peat and honey.",
		Country:            &entity.Country{Name: "Canada", Code: "CA"},
		Category:           spirits,
		SubCategory:        whisky,
		SubSubCategory:     scotch,
		PriceHistory:       []*entity.PriceHistory{observation("100", observed, "19.99")},
	}
	red := &entity.Product{
		SKU:          "200",
		Name:         "House Red",
		Volume:       1.5,
		Country:      &entity.Country{Name: "France", Code: "FR"},
		Category:     wine,
		PriceHistory: []*entity.PriceHistory{observation("200", observed, "12.50")},
	}
	old := &entity.Product{
		SKU:          "300",
		Name:         "Discontinued Lager",
		Category:     &entity.Category{ID: 5, Description: "Beer"},
		PriceHistory: []*entity.PriceHistory{observation("300", stale, "2.00")},
	}

	writer := newStores(gw, cfg)
	writer.load(t, ctx)

	added, err := writer.products.BulkAdd(ctx, []*entity.Product{malt, red, old})
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	added, err = writer.prices.BulkAdd(ctx, []*entity.Product{malt, red, old})
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	// a second pass upserts instead of duplicating
	renamed := *malt
	renamed.Name = "Highland Single Malt 12"
	_, err = writer.products.BulkAdd(ctx, []*entity.Product{&renamed})
	require.NoError(t, err)
	assert.Equal(t, int64(3), countProducts(t, gw))

	reader := newStores(gw, cfg)
	reader.load(t, ctx)

	loaded, ok := reader.products.Get("100")
	require.True(t, ok)
	assert.Equal(t, "Highland Single Malt 12", loaded.Name)
	assert.Equal(t, "0123456789", loaded.UPC)
	assert.Equal(t, "Peat and honey.", loaded.TastingDescription)
	require.NotNil(t, loaded.Country)
	assert.Equal(t, "CA", loaded.Country.Code)
	require.NotNil(t, loaded.Category)
	assert.Equal(t, int64(1), loaded.Category.ID)
	require.NotNil(t, loaded.SubCategory)
	assert.Equal(t, int64(2), loaded.SubCategory.ID)
	require.NotNil(t, loaded.SubSubCategory)
	assert.Equal(t, int64(3), loaded.SubSubCategory.ID)
	assert.True(t, loaded.IsActive)
	require.NotNil(t, loaded.LatestPrice())
	assert.True(t, loaded.LatestPrice().ObservedAt.Equal(observed))
	assert.InDelta(t, 19.99, loaded.CurrentPrice(), 0.001)

	loadedRed, ok := reader.products.Get("200")
	require.True(t, ok)
	assert.Equal(t, "FR", loadedRed.Country.Code)
	assert.Equal(t, int64(4), loadedRed.Category.ID)

	// stale products stay out of the active view
	_, ok = reader.products.Get("300")
	assert.False(t, ok)

	series, err := reader.prices.LoadForSKU(ctx, "100")
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.True(t, series[0].CurrentPrice.Decimal.Equal(price("19.99").Decimal))

	// already persisted observations are not written again
	added, err = reader.prices.BulkAdd(ctx, []*entity.Product{malt, red})
	require.NoError(t, err)
	assert.Zero(t, added)
}

func TestSQLiteIncludeInactive(t *testing.T) {
	gw, cfg := newSQLiteGateway(t)
	cfg.Catalog.IncludeInactive = true
	ctx := context.Background()

	stale := time.Now().UTC().Add(-60 * 24 * time.Hour).Truncate(time.Second)
	old := &entity.Product{
		SKU:          "300",
		Name:         "Discontinued Lager",
		PriceHistory: []*entity.PriceHistory{observation("300", stale, "2.00")},
	}

	writer := newStores(gw, cfg)
	_, err := writer.products.BulkAdd(ctx, []*entity.Product{old, {SKU: "400", Name: "Never priced"}})
	require.NoError(t, err)
	_, err = writer.prices.BulkAdd(ctx, []*entity.Product{old})
	require.NoError(t, err)

	reader := newStores(gw, cfg)
	reader.load(t, ctx)

	loaded, ok := reader.products.Get("300")
	require.True(t, ok)
	assert.False(t, loaded.IsActive)
	require.NotNil(t, loaded.LatestPrice())

	unpriced, ok := reader.products.Get("400")
	require.True(t, ok)
	assert.Nil(t, unpriced.LatestPrice())
}

func storedProduct(t *testing.T, gw gateway.Gateway, sku string) model.ProductRow {
	t.Helper()

	var row model.ProductRow
	found, err := gw.QueryOne(context.Background(), &row,
		"SELECT sku, name, upc, country_code, description, volume, alcohol, unit_size FROM products WHERE sku = ?",
		[]any{sku})
	require.NoError(t, err)
	require.True(t, found)

	return row
}

func TestSQLiteUpsertKeepsDescriptiveColumns(t *testing.T) {
	gw, cfg := newSQLiteGateway(t)
	ctx := context.Background()

	gin := &entity.Product{
		SKU:                "100",
		UPC:                "0100",
		Name:               "London Dry",
		Volume:             0.75,
		UnitSize:           1,
		AlcoholPercentage:  47,
		TastingDescription: "juniper",
		Country:            &entity.Country{Name: "Canada", Code: "CA"},
		Category:           spirits,
	}
	_, err := newStores(gw, cfg).products.BulkAdd(ctx, []*entity.Product{gin})
	require.NoError(t, err)

	assertKept := func(t *testing.T, row model.ProductRow) {
		t.Helper()

		require.NotNil(t, row.CountryCode)
		assert.Equal(t, "CA", *row.CountryCode)
		require.NotNil(t, row.Description)
		assert.Equal(t, "juniper", *row.Description)
		require.NotNil(t, row.Volume)
		assert.InDelta(t, 0.75, *row.Volume, 1e-9)
		require.NotNil(t, row.Alcohol)
		assert.InDelta(t, 47.0, *row.Alcohol, 1e-9)
		require.NotNil(t, row.UnitSize)
		assert.Equal(t, 1, *row.UnitSize)
	}

	t.Run("bulk add from empty caches", func(t *testing.T) {
		_, err := newStores(gw, cfg).products.BulkAdd(ctx, []*entity.Product{{SKU: "100", Name: "Gin"}})
		require.NoError(t, err)

		row := storedProduct(t, gw, "100")
		require.NotNil(t, row.Name)
		assert.Equal(t, "Gin", *row.Name)
		assertKept(t, row)
	})

	t.Run("get or add from empty caches", func(t *testing.T) {
		sku, err := newStores(gw, cfg).products.GetOrAdd(ctx, &entity.Product{SKU: "100", Name: "Dry Gin", UPC: "0555"})
		require.NoError(t, err)
		assert.Equal(t, "100", sku)

		row := storedProduct(t, gw, "100")
		require.NotNil(t, row.Name)
		assert.Equal(t, "Dry Gin", *row.Name)
		require.NotNil(t, row.UPC)
		assert.Equal(t, "0555", *row.UPC)
		assertKept(t, row)
	})

	assert.Equal(t, int64(1), countProducts(t, gw))
}
