package sqlstore

import (
	"context"
	"strings"
	"testing"
	"time"

	"catalog/config"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/infra/persistence/gateway"
	"catalog/internal/infra/persistence/model"
	mockGateway "catalog/internal/mocks/gateway"
	mockRepo "catalog/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	canada   = &entity.Country{Name: "Canada", Code: "CA"}
	fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
)

type productStoreFixture struct {
	gw         *mockGateway.MockGateway
	countries  *mockRepo.MockCountryRepository
	categories *mockRepo.MockCategoryRepository
	store      *productStore
}

func newProductStoreFixture(t *testing.T, includeInactive bool) *productStoreFixture {
	f := &productStoreFixture{
		gw:         mockGateway.NewMockGateway(t),
		countries:  mockRepo.NewMockCountryRepository(t),
		categories: mockRepo.NewMockCategoryRepository(t),
	}
	cfg := &config.Config{Catalog: &config.CatalogConfig{
		LatestWindow:    90 * 24 * time.Hour,
		FreshnessWindow: 30 * 24 * time.Hour,
		IncludeInactive: includeInactive,
	}}
	f.store = NewProductRepository(f.gw, f.countries, f.categories, cfg, discardLogger()).(*productStore)
	f.store.now = func() time.Time { return fixedNow }

	return f
}

func ptr[T any](v T) *T {
	return &v
}

func TestProductStore_LoadAll(t *testing.T) {
	f := newProductStoreFixture(t, false)
	observed := fixedNow.Add(-48 * time.Hour)

	f.gw.EXPECT().
		Query(mock.Anything, mock.Anything, mock.Anything, []any{
			fixedNow.Add(-90 * 24 * time.Hour),
			fixedNow.Add(-30 * 24 * time.Hour),
		}).
		Run(func(_ context.Context, dest any, query string, _ []any) {
			assert.True(t, strings.HasSuffix(query, freshProductsFilter))
			*dest.(*[]*model.ProductRow) = []*model.ProductRow{
				{
					SKU:          ptr("100"),
					Name:         ptr("Highland Single Malt"),
					CategoryID:   ptr(int64(1)),
					CountryCode:  ptr("CA"),
					ClassID:      ptr(int64(99)),
					Volume:       ptr(0.75),
					Alcohol:      ptr(40.0),
					LastUpdated:  &observed,
					CurrentPrice: price("20"),
				},
				{SKU: ptr("200")},
				{Name: ptr("No sku")},
				{SKU: ptr("300"), Name: ptr("Unknown country"), CountryCode: ptr("ZZ")},
			}
		}).
		Return(nil)

	f.categories.EXPECT().Get(int64(1)).Return(spirits, true)
	f.categories.EXPECT().Get(int64(99)).Return(nil, false)
	f.countries.EXPECT().Get("CA").Return(canada, true)
	f.countries.EXPECT().Get("ZZ").Return(nil, false)

	require.NoError(t, f.store.LoadAll(context.Background()))

	products := f.store.Products()
	require.Len(t, products, 2)

	product, ok := f.store.Get("100")
	require.True(t, ok)
	assert.Equal(t, "Highland Single Malt", product.Name)
	assert.Same(t, spirits, product.Category)
	assert.Same(t, canada, product.Country)
	assert.Nil(t, product.SubSubCategory)
	assert.True(t, product.IsActive)
	require.Len(t, product.PriceHistory, 1)
	assert.InDelta(t, 1537.5, product.CombinedScore(), 0.01)

	other, ok := f.store.Get("300")
	require.True(t, ok)
	assert.Nil(t, other.Country)
	assert.False(t, other.IsActive)
}

func TestProductStore_LoadAllIncludeInactive(t *testing.T) {
	f := newProductStoreFixture(t, true)

	f.gw.EXPECT().
		Query(mock.Anything, mock.Anything, selectProductView, []any{fixedNow.Add(-90 * 24 * time.Hour)}).
		Return(nil)

	require.NoError(t, f.store.LoadAll(context.Background()))
	assert.Empty(t, f.store.Products())
}

func TestProductStore_GetOrAdd(t *testing.T) {
	f := newProductStoreFixture(t, false)
	ctx := context.Background()
	product := &entity.Product{
		SKU:            "100",
		Name:           "Highland Single Malt",
		Country:        canada,
		Category:       spirits,
		SubCategory:    whisky,
		SubSubCategory: scotch,
		Volume:         0.75,
	}

	f.countries.EXPECT().GetOrAdd(ctx, canada).Return("CA", nil).Once()
	f.categories.EXPECT().GetOrAdd(ctx, scotch, whisky, spirits).Return(int64(3), nil).Once()
	f.countries.EXPECT().Get("CA").Return(canada, true)
	f.categories.EXPECT().Get(mock.Anything).Return(nil, true)
	f.gw.EXPECT().Dialect().Return(gateway.Postgres())
	f.gw.EXPECT().
		Insert(ctx, mock.MatchedBy(func(query string) bool {
			return strings.Contains(query, "ON CONFLICT (sku) DO UPDATE SET name = EXCLUDED.name")
		}), []any{
			"100", "Highland Single Malt", int64(1), "CA", nil, 0.75, nil, nil, nil, int64(2), int64(3), fixedNow,
		}, false).
		Return(int64(0), nil).
		Once()

	for range 2 {
		sku, err := f.store.GetOrAdd(ctx, product)
		require.NoError(t, err)
		assert.Equal(t, "100", sku)
	}
}

func TestProductStore_GetOrAddRequiresSKUAndName(t *testing.T) {
	f := newProductStoreFixture(t, false)

	_, err := f.store.GetOrAdd(context.Background(), &entity.Product{SKU: "100"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRecordInvalid))
}

func TestProductStore_BulkAdd(t *testing.T) {
	f := newProductStoreFixture(t, false)
	ctx := context.Background()

	malt := &entity.Product{SKU: "100", Name: "Malt", Country: canada, Category: spirits, SubCategory: whisky, SubSubCategory: scotch}
	blend := &entity.Product{SKU: "101", Name: "Blend", Country: canada, Category: spirits, SubCategory: whisky, SubSubCategory: scotch}
	red := &entity.Product{SKU: "200", Name: "Red", Category: wine}

	f.countries.EXPECT().BulkAdd(ctx, []*entity.Country{canada, canada}).Return(1).Once()
	// one resolution per distinct hierarchy
	f.categories.EXPECT().GetOrAdd(ctx, scotch, whisky, spirits).Return(int64(3), nil).Once()
	f.categories.EXPECT().GetOrAdd(ctx, wine, (*entity.Category)(nil), (*entity.Category)(nil)).Return(int64(4), nil).Once()
	f.countries.EXPECT().Get("CA").Return(canada, true)
	f.categories.EXPECT().Get(int64(1)).Return(spirits, true)
	f.categories.EXPECT().Get(int64(2)).Return(whisky, true)
	f.categories.EXPECT().Get(int64(3)).Return(scotch, true)
	f.categories.EXPECT().Get(int64(4)).Return(nil, false)
	f.gw.EXPECT().Dialect().Return(gateway.MySQL())

	var submitted [][]any
	f.gw.EXPECT().
		BulkInsert(ctx, mock.MatchedBy(func(stmt gateway.Statement) bool {
			return stmt.Table == "products" && strings.HasPrefix(stmt.Suffix, "ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id)")
		}), mock.Anything).
		Run(func(_ context.Context, _ gateway.Statement, rows [][]any) {
			submitted = rows
		}).
		Return(nil).
		Once()

	added, err := f.store.BulkAdd(ctx, []*entity.Product{
		malt,
		blend,
		red,
		{SKU: "100", Name: "Malt (dup)"},
		{SKU: "", Name: "No sku"},
		nil,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	require.Len(t, submitted, 3)
	assert.Equal(t, []any{"100", "Malt", int64(1), "CA"}, submitted[0][:4])
	assert.Equal(t, "200", submitted[2][0])
	assert.Nil(t, submitted[2][2], "unresolved category is not referenced")

	for _, sku := range []string{"100", "101", "200"} {
		_, ok := f.store.Get(sku)
		assert.True(t, ok, sku)
	}
}

func TestProductStore_BulkAddFailureLeavesCache(t *testing.T) {
	f := newProductStoreFixture(t, false)
	ctx := context.Background()

	f.countries.EXPECT().BulkAdd(ctx, []*entity.Country{}).Return(0)
	f.gw.EXPECT().Dialect().Return(gateway.SQLite())
	f.gw.EXPECT().
		BulkInsert(ctx, mock.Anything, mock.Anything).
		Return(domainerrors.NewDatabaseError(domainerrors.ErrInsert, errors.New("down"), "products"))

	added, err := f.store.BulkAdd(ctx, []*entity.Product{{SKU: "100", Name: "Malt"}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInsert))
	assert.Zero(t, added)
	assert.Empty(t, f.store.Products())
}
