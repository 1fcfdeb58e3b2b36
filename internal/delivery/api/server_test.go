package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"catalog/config"
	"catalog/internal/delivery/api/response"
	"catalog/internal/delivery/api/router"
	"catalog/internal/delivery/api/router/handler"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/infra/metrics"
	mockUsecase "catalog/internal/mocks/usecase"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixtures struct {
	echo      *echo.Echo
	catalogUC *mockUsecase.MockCatalogUsecase
	refreshUC *mockUsecase.MockRefreshUsecase
	recorder  *metrics.Recorder
}

func createTestServer(t *testing.T) serverFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	refreshUC := mockUsecase.NewMockRefreshUsecase(t)
	registry := metrics.NewRegistry()

	e := NewEcho(cfg, logger, router.RouterParams{
		CatalogHandler: handler.NewCatalogHandler(handler.CatalogHandlerParams{
			CatalogUC: catalogUC,
			RefreshUC: refreshUC,
			Logger:    logger,
		}),
		HealthHandler: handler.NewHealthHandler(catalogUC, refreshUC),
		Registry:      registry,
	})

	return serverFixtures{
		echo:      e,
		catalogUC: catalogUC,
		refreshUC: refreshUC,
		recorder:  metrics.NewRecorder(registry),
	}
}

func (f serverFixtures) do(method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

type envelope[T any] struct {
	Data T                   `json:"data"`
	Meta response.MetaInfo   `json:"meta"`
	Err  *response.ErrorInfo `json:"error"`
}

func malt() *entity.Product {
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	return &entity.Product{
		SKU:               "123",
		Name:              "Highland Single Malt",
		Volume:            0.75,
		UnitSize:          1,
		AlcoholPercentage: 40,
		Country:           &entity.Country{Name: "United Kingdom", Code: "GB"},
		Category:          &entity.Category{ID: 1, Description: "Spirits"},
		SubCategory:       &entity.Category{ID: 2, Description: "Whisky"},
		PriceHistory: []*entity.PriceHistory{{
			SKU:          "123",
			ObservedAt:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			RegularPrice: decimal.NewNullDecimal(decimal.RequireFromString("24.99")),
			CurrentPrice: decimal.NewNullDecimal(decimal.RequireFromString("20")),
			PromotionEnd: &end,
		}},
	}
}

func TestServer_ListProducts(t *testing.T) {
	f := createTestServer(t)
	f.catalogUC.EXPECT().Products().Return([]*entity.Product{malt(), {SKU: "9", Name: "Gift Card"}})

	rec := f.do(http.MethodGet, "/api/data", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	body := decode[envelope[handler.ProductsResponse]](t, rec)
	require.Len(t, body.Data.Products, 2)
	assert.Equal(t, rec.Header().Get("X-Request-Id"), body.Meta.RequestID)

	first := body.Data.Products[0]
	assert.Equal(t, "123", first.SKU)
	assert.Equal(t, int64(1537), first.CombinedScore)
	assert.Equal(t, "Spirits", first.Category)
	assert.Equal(t, "https://www.bcliquorstores.com/product/123", first.URL)
	require.NotNil(t, first.PricePerMilliliter)
	assert.InDelta(t, 0.02667, *first.PricePerMilliliter, 0.00001)
	require.NotNil(t, first.Price)
	assert.InDelta(t, 24.99, *first.Price.Price, 1e-9)
	assert.InDelta(t, 20.0, *first.Price.SalePrice, 1e-9)
	require.Len(t, first.FullCategory, 2)
	assert.Equal(t, "Whisky", first.FullCategory[1].Description)

	giftCard := body.Data.Products[1]
	assert.Nil(t, giftCard.PricePerMilliliter, "zero volume has no finite price per ml")
	assert.Nil(t, giftCard.Price)
	assert.Nil(t, giftCard.Country)
}

func TestServer_PriceHistory(t *testing.T) {
	f := createTestServer(t)
	f.catalogUC.EXPECT().PriceHistory(mock.Anything, "123").Return(malt().PriceHistory, nil)

	rec := f.do(http.MethodGet, "/api/price/123", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[envelope[[]handler.PricePointView]](t, rec)
	require.Len(t, body.Data, 1)
	assert.InDelta(t, 20.0, *body.Data[0].Price, 1e-9)
}

func TestServer_PriceHistory_Errors(t *testing.T) {
	t.Run("invalid sku", func(t *testing.T) {
		f := createTestServer(t)

		rec := f.do(http.MethodGet, "/api/price/12-3", nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode[envelope[any]](t, rec)
		require.NotNil(t, body.Err)
		assert.Equal(t, "VALIDATION_ERROR", body.Err.Code)
		assert.Equal(t, map[string]any{"SKU": "alphanum"}, body.Err.Details)
	})

	t.Run("unknown sku", func(t *testing.T) {
		f := createTestServer(t)
		f.catalogUC.EXPECT().PriceHistory(mock.Anything, "999").
			Return(nil, domainerrors.ErrProductNotFound.WrapMessage("999"))

		rec := f.do(http.MethodGet, "/api/price/999", nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
		body := decode[envelope[any]](t, rec)
		assert.Equal(t, "PRODUCT_NOT_FOUND", body.Err.Code)
	})

	t.Run("database failure hides details", func(t *testing.T) {
		f := createTestServer(t)
		f.catalogUC.EXPECT().PriceHistory(mock.Anything, "1").
			Return(nil, domainerrors.NewDatabaseError(domainerrors.ErrQuery, assert.AnError, "SELECT secret"))

		rec := f.do(http.MethodGet, "/api/price/1", nil)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "secret")
	})
}

func TestServer_Reload(t *testing.T) {
	f := createTestServer(t)
	f.refreshUC.EXPECT().Trigger().Return("run-1", nil).Once()
	f.refreshUC.EXPECT().Trigger().Return("run-1", domainerrors.ErrRefreshInProgress).Once()

	rec := f.do(http.MethodPost, "/reload", nil)
	require.Equal(t, http.StatusAccepted, rec.Code)
	accepted := decode[envelope[handler.ReloadResponse]](t, rec)
	assert.Equal(t, "run-1", accepted.Data.RunID)

	rec = f.do(http.MethodPost, "/reload", nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	conflict := decode[envelope[any]](t, rec)
	assert.Equal(t, "REFRESH_IN_PROGRESS", conflict.Err.Code)
	assert.Equal(t, map[string]any{"runId": "run-1"}, conflict.Err.Details)
}

func TestServer_Probes(t *testing.T) {
	f := createTestServer(t)
	f.catalogUC.EXPECT().Products().Return([]*entity.Product{malt()})
	f.refreshUC.EXPECT().Status().Return(usecase.RefreshStatus{RunID: "run-1"})
	f.recorder.SetProducts(1)

	rec := f.do(http.MethodGet, "/ping", http.Header{"X-Request-Id": {"probe-1"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"pong"`, strings.TrimSpace(rec.Body.String()))
	assert.Equal(t, "probe-1", rec.Header().Get("X-Request-Id"))

	rec = f.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[envelope[handler.HealthStatus]](t, rec)
	assert.Equal(t, 1, health.Data.Products)
	assert.Equal(t, "run-1", health.Data.Refresh.RunID)

	rec = f.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "catalog_products 1")

	rec = f.do(http.MethodGet, "/missing", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	missing := decode[envelope[any]](t, rec)
	assert.Equal(t, "HTTP_ERROR", missing.Err.Code)
}
