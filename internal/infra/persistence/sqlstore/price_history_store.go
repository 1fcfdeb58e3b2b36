package sqlstore

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"catalog/config"
	"catalog/internal/domain/entity"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/gateway"
	"catalog/internal/infra/persistence/model"

	"github.com/pkg/errors"
)

const (
	priceHistoryTable = "price_history"

	selectPriceHistory = "SELECT sku, last_updated, regular_price, current_price, promotion_start_date, promotion_end_date FROM price_history"

	selectRecentPriceHistory = selectPriceHistory + " WHERE last_updated >= ? ORDER BY sku, last_updated"
	selectSKUPriceHistory    = selectPriceHistory + " WHERE sku = ? ORDER BY last_updated"
)

var priceHistoryColumns = []string{
	"last_updated",
	"sku",
	"regular_price",
	"current_price",
	"promotion_start_date",
	"promotion_end_date",
	"source",
}

// priceHistoryStore implements the repository.PriceHistoryRepository interface.
//
// seen holds every (sku, observedAt) known to be persisted, including observations that
// compaction dropped from the cached series, so writes never duplicate a row.
type priceHistoryStore struct {
	gw     gateway.Gateway
	logger *slog.Logger
	source string

	mu     sync.RWMutex
	cache  map[string][]*entity.PriceHistory
	seen   map[entity.PriceKey]struct{}
	loaded map[string]bool
}

// NewPriceHistoryRepository is the constructor for priceHistoryStore.
func NewPriceHistoryRepository(gw gateway.Gateway, cfg *config.Config, logger *slog.Logger) repository.PriceHistoryRepository {
	source := ""
	if cfg != nil && cfg.Catalog != nil {
		source = cfg.Catalog.PriceSource
	}

	return &priceHistoryStore{
		gw:     gw,
		logger: logger,
		source: source,
		cache:  make(map[string][]*entity.PriceHistory),
		seen:   make(map[entity.PriceKey]struct{}),
		loaded: make(map[string]bool),
	}
}

func (s *priceHistoryStore) LoadRecent(ctx context.Context, since time.Time) error {
	var rows []*model.PriceHistoryModel
	if err := s.gw.Query(ctx, &rows, selectRecentPriceHistory, []any{since.UTC()}); err != nil {
		return errors.Wrap(err, "failed to preload price history")
	}

	cache := make(map[string][]*entity.PriceHistory)
	seen := make(map[entity.PriceKey]struct{}, len(rows))
	for _, row := range rows {
		observation := toPriceHistoryDomain(row)
		if _, dup := seen[observation.Key()]; dup {
			continue
		}
		seen[observation.Key()] = struct{}{}
		cache[observation.SKU] = append(cache[observation.SKU], observation)
	}

	s.mu.Lock()
	s.cache = cache
	s.seen = seen
	s.loaded = make(map[string]bool)
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "Price history preloaded",
		slog.Time("since", since.UTC()),
		slog.Int("observations", len(seen)),
		slog.Int("skus", len(cache)),
	)

	return nil
}

func (s *priceHistoryStore) LoadForSKU(ctx context.Context, sku string) ([]*entity.PriceHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded[sku] {
		// observations written since the load may have extended a flat run
		s.cache[sku] = entity.FilterPrices(s.cache[sku])

		return slices.Clone(s.cache[sku]), nil
	}

	var rows []*model.PriceHistoryModel
	if err := s.gw.Query(ctx, &rows, selectSKUPriceHistory, []any{sku}); err != nil {
		return nil, errors.Wrapf(err, "failed to load price history for %s", sku)
	}

	series := make([]*entity.PriceHistory, 0, len(rows))
	for _, row := range rows {
		observation := toPriceHistoryDomain(row)
		s.seen[observation.Key()] = struct{}{}
		series = append(series, observation)
	}
	entity.SortPriceHistory(series)

	compacted := entity.FilterPrices(series)
	s.cache[sku] = compacted
	s.loaded[sku] = true

	s.logger.DebugContext(ctx, "Price history loaded",
		slog.String("sku", sku),
		slog.Int("observations", len(series)),
		slog.Int("kept", len(compacted)),
	)

	return slices.Clone(compacted), nil
}

func (s *priceHistoryStore) Cached(sku string) []*entity.PriceHistory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.cache[sku])
}

func (s *priceHistoryStore) GetOrAdd(ctx context.Context, product *entity.Product) (string, error) {
	latest := product.LatestPrice()
	if latest == nil {
		s.logger.WarnContext(ctx, "Product has no price observation", slog.String("sku", product.SKU))

		return "", nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.seen[latest.Key()]; ok {
		return latest.SKU, nil
	}

	stmt := gateway.InsertInto(priceHistoryTable, priceHistoryColumns...)
	if _, err := s.gw.Insert(ctx, stmt.SQL(1), s.params(latest), false); err != nil {
		return "", errors.Wrapf(err, "failed to add price observation for %s", latest.SKU)
	}

	s.remember(latest)

	return latest.SKU, nil
}

func (s *priceHistoryStore) BulkAdd(ctx context.Context, products []*entity.Product) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make([]*entity.PriceHistory, 0, len(products))
	batch := make(map[entity.PriceKey]struct{}, len(products))
	missing := 0
	for _, product := range products {
		if product == nil {
			continue
		}
		latest := product.LatestPrice()
		if latest == nil {
			missing++

			continue
		}
		key := latest.Key()
		if _, ok := s.seen[key]; ok {
			continue
		}
		if _, ok := batch[key]; ok {
			continue
		}
		batch[key] = struct{}{}
		pending = append(pending, latest)
	}

	if missing > 0 {
		s.logger.WarnContext(ctx, "Products without a price observation skipped", slog.Int("count", missing))
	}
	if len(pending) == 0 {
		return 0, nil
	}

	rows := make([][]any, 0, len(pending))
	for _, observation := range pending {
		rows = append(rows, s.params(observation))
	}

	if err := s.gw.BulkInsert(ctx, gateway.InsertInto(priceHistoryTable, priceHistoryColumns...), rows); err != nil {
		return 0, errors.Wrap(err, "failed to add price observations")
	}

	for _, observation := range pending {
		s.remember(observation)
	}

	return len(pending), nil
}

func (s *priceHistoryStore) params(p *entity.PriceHistory) []any {
	return []any{
		p.ObservedAt.UTC(),
		p.SKU,
		p.RegularPrice,
		p.CurrentPrice,
		nullableTime(p.PromotionStart),
		nullableTime(p.PromotionEnd),
		nullableString(s.source),
	}
}

// remember requires s.mu.
func (s *priceHistoryStore) remember(p *entity.PriceHistory) {
	s.seen[p.Key()] = struct{}{}

	series := append(s.cache[p.SKU], p)
	if n := len(series); n > 1 && series[n-1].ObservedAt.Before(series[n-2].ObservedAt) {
		entity.SortPriceHistory(series)
	}
	s.cache[p.SKU] = series
}
