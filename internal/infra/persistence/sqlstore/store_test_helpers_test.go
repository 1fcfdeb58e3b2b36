package sqlstore

import (
	"io"
	"log/slog"
	"time"

	"catalog/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func price(value string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(value))
}

func observation(sku string, at time.Time, current string) *entity.PriceHistory {
	return &entity.PriceHistory{
		SKU:          sku,
		ObservedAt:   at,
		RegularPrice: price(current),
		CurrentPrice: price(current),
	}
}
