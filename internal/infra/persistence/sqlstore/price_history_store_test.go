package sqlstore

import (
	"context"
	"testing"
	"time"

	"catalog/config"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/infra/persistence/gateway"
	"catalog/internal/infra/persistence/model"
	mockGateway "catalog/internal/mocks/gateway"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var day0 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newPriceHistoryStore(gw *mockGateway.MockGateway) *priceHistoryStore {
	cfg := &config.Config{Catalog: &config.CatalogConfig{PriceSource: "bcl"}}

	return NewPriceHistoryRepository(gw, cfg, discardLogger()).(*priceHistoryStore)
}

func priceRow(sku string, at time.Time, current string) *model.PriceHistoryModel {
	return &model.PriceHistoryModel{
		SKU:          sku,
		LastUpdated:  at,
		RegularPrice: price(current),
		CurrentPrice: price(current),
	}
}

func productWithPrice(sku string, at time.Time, current string) *entity.Product {
	return &entity.Product{
		SKU:          sku,
		Name:         "Product " + sku,
		PriceHistory: []*entity.PriceHistory{observation(sku, at, current)},
	}
}

func TestPriceHistoryStore_GetOrAddWithoutObservation(t *testing.T) {
	store := newPriceHistoryStore(mockGateway.NewMockGateway(t))

	sku, err := store.GetOrAdd(context.Background(), &entity.Product{SKU: "100", Name: "No price"})

	require.NoError(t, err)
	assert.Empty(t, sku)
}

func TestPriceHistoryStore_GetOrAddIsIdempotent(t *testing.T) {
	gw := mockGateway.NewMockGateway(t)
	store := newPriceHistoryStore(gw)
	product := productWithPrice("100", day0, "19.99")

	gw.EXPECT().
		Insert(mock.Anything, mock.Anything, []any{
			day0,
			"100",
			price("19.99"),
			price("19.99"),
			nil,
			nil,
			"bcl",
		}, false).
		Return(int64(0), nil).
		Once()

	for range 2 {
		sku, err := store.GetOrAdd(context.Background(), product)
		require.NoError(t, err)
		assert.Equal(t, "100", sku)
	}

	assert.Len(t, store.Cached("100"), 1)
}

func TestPriceHistoryStore_BulkAddDeduplicates(t *testing.T) {
	gw := mockGateway.NewMockGateway(t)
	store := newPriceHistoryStore(gw)
	ctx := context.Background()

	gw.EXPECT().
		Query(mock.Anything, mock.Anything, selectRecentPriceHistory, []any{day0}).
		Run(func(_ context.Context, dest any, _ string, _ []any) {
			*dest.(*[]*model.PriceHistoryModel) = []*model.PriceHistoryModel{
				priceRow("100", day0, "19.99"),
			}
		}).
		Return(nil)
	require.NoError(t, store.LoadRecent(ctx, day0))

	var submitted [][]any
	gw.EXPECT().
		BulkInsert(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ gateway.Statement, rows [][]any) {
			submitted = rows
		}).
		Return(nil).
		Once()

	added, err := store.BulkAdd(ctx, []*entity.Product{
		productWithPrice("100", day0, "19.99"), // already persisted
		productWithPrice("200", day0, "5.00"),
		productWithPrice("200", day0, "5.00"), // duplicate in batch
		{SKU: "300", Name: "No price"},
		nil,
		productWithPrice("100", day0.Add(24*time.Hour), "17.99"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	require.Len(t, submitted, 2)
	assert.Equal(t, "200", submitted[0][1])
	assert.Equal(t, "100", submitted[1][1])

	assert.Len(t, store.Cached("100"), 2)
	assert.Len(t, store.Cached("200"), 1)
}

func TestPriceHistoryStore_BulkAddFailureLeavesCache(t *testing.T) {
	gw := mockGateway.NewMockGateway(t)
	store := newPriceHistoryStore(gw)

	gw.EXPECT().
		BulkInsert(mock.Anything, mock.Anything, mock.Anything).
		Return(domainerrors.NewDatabaseError(domainerrors.ErrInsert, errors.New("down"), "price_history"))

	added, err := store.BulkAdd(context.Background(), []*entity.Product{productWithPrice("100", day0, "19.99")})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInsert))
	assert.Zero(t, added)
	assert.Empty(t, store.Cached("100"))
}

func TestPriceHistoryStore_LoadForSKUCompactsAndCaches(t *testing.T) {
	gw := mockGateway.NewMockGateway(t)
	store := newPriceHistoryStore(gw)
	ctx := context.Background()

	prices := []string{"10", "10", "8", "8", "8", "12"}
	gw.EXPECT().
		Query(mock.Anything, mock.Anything, selectSKUPriceHistory, []any{"100"}).
		Run(func(_ context.Context, dest any, _ string, _ []any) {
			rows := make([]*model.PriceHistoryModel, 0, len(prices))
			for i, p := range prices {
				rows = append(rows, priceRow("100", day0.AddDate(0, 0, i), p))
			}
			*dest.(*[]*model.PriceHistoryModel) = rows
		}).
		Return(nil).
		Once()

	series, err := store.LoadForSKU(ctx, "100")
	require.NoError(t, err)

	days := make([]int, 0, len(series))
	for _, p := range series {
		days = append(days, int(p.ObservedAt.Sub(day0).Hours()/24))
	}
	assert.Equal(t, []int{0, 1, 2, 4, 5}, days)

	// served from the cache, and rows dropped by compaction are still known
	again, err := store.LoadForSKU(ctx, "100")
	require.NoError(t, err)
	assert.Len(t, again, 5)

	sku, err := store.GetOrAdd(ctx, productWithPrice("100", day0.AddDate(0, 0, 3), "8"))
	require.NoError(t, err)
	assert.Equal(t, "100", sku)
}

func TestPriceHistoryStore_LoadForSKUFailure(t *testing.T) {
	gw := mockGateway.NewMockGateway(t)
	store := newPriceHistoryStore(gw)

	gw.EXPECT().
		Query(mock.Anything, mock.Anything, selectSKUPriceHistory, mock.Anything).
		Return(domainerrors.NewDatabaseError(domainerrors.ErrQuery, errors.New("down"), "price_history"))

	_, err := store.LoadForSKU(context.Background(), "100")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrQuery))
}
