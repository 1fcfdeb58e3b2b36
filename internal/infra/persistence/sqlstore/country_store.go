package sqlstore

import (
	"context"
	"log/slog"
	"sync"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/gateway"
	"catalog/internal/infra/persistence/model"

	"github.com/pkg/errors"
)

const (
	countriesTable = "countries"

	selectCountries = "SELECT name, code FROM countries"
)

var countryColumns = []string{"name", "code"}

// countryStore implements the repository.CountryRepository interface.
type countryStore struct {
	gw     gateway.Gateway
	logger *slog.Logger

	mu    sync.RWMutex
	cache map[string]*entity.Country
}

// NewCountryRepository is the constructor for countryStore.
func NewCountryRepository(gw gateway.Gateway, logger *slog.Logger) repository.CountryRepository {
	return &countryStore{
		gw:     gw,
		logger: logger,
		cache:  make(map[string]*entity.Country),
	}
}

func (s *countryStore) LoadAll(ctx context.Context) error {
	var rows []*model.CountryModel
	if err := s.gw.Query(ctx, &rows, selectCountries, nil); err != nil {
		return errors.Wrap(err, "failed to load countries")
	}

	cache := make(map[string]*entity.Country, len(rows))
	for _, row := range rows {
		if row.Code == "" {
			s.logger.WarnContext(ctx, "Skipping country without code", slog.String("name", row.Name))

			continue
		}
		cache[row.Code] = toCountryDomain(row)
	}

	s.mu.Lock()
	s.cache = cache
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "Countries loaded", slog.Int("count", len(cache)))

	return nil
}

func (s *countryStore) GetOrAdd(ctx context.Context, country *entity.Country) (string, error) {
	if country == nil || country.Code == "" {
		return "", domainerrors.NewFeedError(domainerrors.ErrRecordInvalid, errors.New("country code is required"), "country")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, ok := s.cache[country.Code]; ok {
		return cached.Code, nil
	}

	stmt := gateway.InsertInto(countriesTable, countryColumns...)
	if _, err := s.gw.Insert(ctx, stmt.SQL(1), []any{country.Name, country.Code}, false); err != nil {
		return "", errors.Wrapf(err, "failed to add country %s", country.Code)
	}

	s.cache[country.Code] = &entity.Country{Name: country.Name, Code: country.Code}

	return country.Code, nil
}

func (s *countryStore) BulkAdd(ctx context.Context, countries []*entity.Country) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make([]*entity.Country, 0, len(countries))
	batch := make(map[string]struct{}, len(countries))
	for _, country := range countries {
		if country == nil || country.Code == "" {
			continue
		}
		if _, ok := s.cache[country.Code]; ok {
			continue
		}
		if _, ok := batch[country.Code]; ok {
			continue
		}
		batch[country.Code] = struct{}{}
		pending = append(pending, country)
	}

	if len(pending) == 0 {
		return 0
	}

	rows := make([][]any, 0, len(pending))
	for _, country := range pending {
		rows = append(rows, []any{country.Name, country.Code})
	}

	if err := s.gw.BulkInsert(ctx, gateway.InsertInto(countriesTable, countryColumns...), rows); err != nil {
		s.logger.ErrorContext(ctx, "Country batch failed, cache unchanged",
			slog.Int("batchSize", len(rows)),
			slog.Any("error", err),
		)

		return 0
	}

	for _, country := range pending {
		s.cache[country.Code] = &entity.Country{Name: country.Name, Code: country.Code}
	}

	return len(pending)
}

func (s *countryStore) Get(code string) (*entity.Country, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	country, ok := s.cache[code]

	return country, ok
}

func (s *countryStore) All() []*entity.Country {
	s.mu.RLock()
	countries := make([]*entity.Country, 0, len(s.cache))
	for _, country := range s.cache {
		countries = append(countries, country)
	}
	s.mu.RUnlock()

	entity.SortCountries(countries)

	return countries
}
