package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync/atomic"
	"time"

	"catalog/config"
	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/feed"
	"catalog/internal/infra/metrics"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// snapshot is an immutable, ranked product list. It is replaced, never modified.
type snapshot struct {
	products []*entity.Product
	bySKU    map[string]*entity.Product
}

func newSnapshot(products []*entity.Product) *snapshot {
	ranked := slices.Clone(products)
	entity.SortByCombinedScore(ranked)

	bySKU := make(map[string]*entity.Product, len(ranked))
	for _, p := range ranked {
		bySKU[p.SKU] = p
	}

	return &snapshot{products: ranked, bySKU: bySKU}
}

// CatalogServiceParams holds the dependencies of the catalog service.
type CatalogServiceParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Countries  repository.CountryRepository
	Categories repository.CategoryRepository
	Prices     repository.PriceHistoryRepository
	Products   repository.ProductRepository
	Parser     *feed.Parser
	Recorder   *metrics.Recorder `optional:"true"`
}

type catalogService struct {
	cfg        *config.CatalogConfig
	logger     *slog.Logger
	countries  repository.CountryRepository
	categories repository.CategoryRepository
	prices     repository.PriceHistoryRepository
	products   repository.ProductRepository
	parser     *feed.Parser
	recorder   *metrics.Recorder
	now        func() time.Time

	current atomic.Pointer[snapshot]
}

// NewCatalogService creates the catalog orchestrator. The published list starts empty.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	catalogCfg := &config.CatalogConfig{}
	if params.Config != nil && params.Config.Catalog != nil {
		catalogCfg = params.Config.Catalog
	}

	s := &catalogService{
		cfg:        catalogCfg,
		logger:     params.Logger,
		countries:  params.Countries,
		categories: params.Categories,
		prices:     params.Prices,
		products:   params.Products,
		parser:     params.Parser,
		recorder:   params.Recorder,
		now:        time.Now,
	}
	s.publish(nil)

	return s
}

// LoadStores fills the caches in dependency order: countries and categories before
// the products that reference them.
func (s *catalogService) LoadStores(ctx context.Context) error {
	if err := s.countries.LoadAll(ctx); err != nil {
		return errors.Wrap(err, "failed to load countries")
	}
	if err := s.categories.LoadAll(ctx); err != nil {
		return errors.Wrap(err, "failed to load categories")
	}
	if err := s.prices.LoadRecent(ctx, s.now().Add(-s.cfg.PriceHistoryPreload)); err != nil {
		return errors.Wrap(err, "failed to preload price history")
	}
	if err := s.products.LoadAll(ctx); err != nil {
		return errors.Wrap(err, "failed to load products")
	}

	s.publish(s.products.Products())
	s.logger.InfoContext(ctx, "Catalog stores loaded",
		slog.Int("countries", len(s.countries.All())),
		slog.Int("products", len(s.current.Load().products)),
	)

	return nil
}

// IngestFeed replaces the published list with the products of the feed at path.
func (s *catalogService) IngestFeed(ctx context.Context, path string) ([]*entity.Product, error) {
	products, _, err := s.parser.ParseFile(ctx, path)
	if err != nil {
		s.publish(nil)
		s.logger.ErrorContext(ctx, "Failed to ingest feed",
			slog.String("path", path),
			slog.Any("error", err),
		)

		return nil, err
	}

	s.publish(products)

	return s.Products(), nil
}

// Persist writes the published list. The product store resolves countries and category
// hierarchies before upserting products; price observations are written last.
func (s *catalogService) Persist(ctx context.Context) (*usecase.PersistResult, error) {
	start := time.Now()
	defer s.recorder.ObservePersist(start)

	products := s.current.Load().products

	written, err := s.products.BulkAdd(ctx, products)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to persist products",
			slog.Int("products", len(products)),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to persist products")
	}

	observations, err := s.prices.BulkAdd(ctx, products)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to persist price observations",
			slog.Int("products", written),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to persist price history")
	}

	result := &usecase.PersistResult{
		Products:          written,
		PriceObservations: observations,
		Duration:          time.Since(start),
	}
	s.logger.InfoContext(ctx, "Catalog persisted",
		slog.Int("products", result.Products),
		slog.Int("priceObservations", result.PriceObservations),
		slog.Duration("duration", result.Duration),
	)

	return result, nil
}

// ReloadProducts re-reads the product store only.
func (s *catalogService) ReloadProducts(ctx context.Context) error {
	if err := s.products.LoadAll(ctx); err != nil {
		return errors.Wrap(err, "failed to reload products")
	}

	s.publish(s.products.Products())

	return nil
}

// Products returns a copy of the published list, best score first.
func (s *catalogService) Products() []*entity.Product {
	return slices.Clone(s.current.Load().products)
}

// PriceHistory reads the series of sku from the store, falling back to the history attached
// to the published product when the store has none.
func (s *catalogService) PriceHistory(ctx context.Context, sku string) ([]*entity.PriceHistory, error) {
	series, loadErr := s.prices.LoadForSKU(ctx, sku)
	if loadErr == nil && len(series) > 0 {
		return series, nil
	}

	if product, ok := s.current.Load().bySKU[sku]; ok {
		if loadErr != nil {
			s.log(ctx).WarnContext(ctx, "Serving in-memory price history",
				slog.String("sku", sku),
				slog.Any("error", loadErr),
			)
		}
		history := slices.Clone(product.PriceHistory)
		entity.SortPriceHistory(history)

		return entity.FilterPrices(history), nil
	}

	if loadErr != nil {
		return nil, loadErr
	}

	return nil, domainerrors.ErrProductNotFound.WrapMessage(sku)
}

func (s *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, s.logger)
}

func (s *catalogService) publish(products []*entity.Product) {
	snap := newSnapshot(products)
	s.current.Store(snap)
	s.recorder.SetProducts(len(snap.products))
}
