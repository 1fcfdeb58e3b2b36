// Package sqlstore implements the catalog repositories as in-memory caches backed by the
// connection gateway. Each store guards its cache and its writes with one RWMutex.
package sqlstore

import (
	"time"

	"catalog/internal/domain/entity"
	"catalog/internal/infra/persistence/model"
)

func toCountryDomain(m *model.CountryModel) *entity.Country {
	return &entity.Country{
		Name: m.Name,
		Code: m.Code,
	}
}

func toCategoryDomain(m *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:          m.BclID,
		Description: m.Name,
	}
}

func toPriceHistoryDomain(m *model.PriceHistoryModel) *entity.PriceHistory {
	return &entity.PriceHistory{
		SKU:            m.SKU,
		ObservedAt:     m.LastUpdated.UTC(),
		RegularPrice:   m.RegularPrice,
		CurrentPrice:   m.CurrentPrice,
		PromotionStart: utcPtr(m.PromotionStartDate),
		PromotionEnd:   utcPtr(m.PromotionEndDate),
	}
}

// priceHistoryFromRow returns the latest observation carried by a product view row, or nil.
func priceHistoryFromRow(sku string, row *model.ProductRow) *entity.PriceHistory {
	if row.LastUpdated == nil {
		return nil
	}

	return &entity.PriceHistory{
		SKU:            sku,
		ObservedAt:     row.LastUpdated.UTC(),
		RegularPrice:   row.RegularPrice,
		CurrentPrice:   row.CurrentPrice,
		PromotionStart: utcPtr(row.PromotionStartDate),
		PromotionEnd:   utcPtr(row.PromotionEndDate),
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()

	return &utc
}

// nullable helpers turn zero values into SQL NULL parameters.

func nullableString(s string) any {
	if s == "" {
		return nil
	}

	return s
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}

	return t.UTC()
}

func nullableFloat(f float64) any {
	if f == 0 {
		return nil
	}

	return f
}

func nullableInt(i int) any {
	if i == 0 {
		return nil
	}

	return i
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}

	return *p
}
