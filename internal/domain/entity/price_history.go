package entity

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// PriceHistory is a single price observation for a SKU. It is immutable once created.
type PriceHistory struct {
	SKU            string              `json:"sku"`
	ObservedAt     time.Time           `json:"last_updated"`
	RegularPrice   decimal.NullDecimal `json:"regular_price"`
	CurrentPrice   decimal.NullDecimal `json:"current_price"`
	PromotionStart *time.Time          `json:"promotion_start_date,omitempty"`
	PromotionEnd   *time.Time          `json:"promotion_end_date,omitempty"`
}

// PriceKey is the identity of an observation.
type PriceKey struct {
	SKU        string
	ObservedAt int64 // microseconds since epoch, UTC
}

// Key returns the (sku, observedAt) identity. Microsecond precision matches what
// both SQL backends keep for timestamps.
func (p *PriceHistory) Key() PriceKey {
	return PriceKey{SKU: p.SKU, ObservedAt: p.ObservedAt.UTC().UnixMicro()}
}

// SamePrice reports whether both observations carry the same current price,
// treating two missing prices as equal.
func (p *PriceHistory) SamePrice(other *PriceHistory) bool {
	if p.CurrentPrice.Valid != other.CurrentPrice.Valid {
		return false
	}
	if !p.CurrentPrice.Valid {
		return true
	}

	return p.CurrentPrice.Decimal.Equal(other.CurrentPrice.Decimal)
}

// SortPriceHistory orders observations chronologically, in place.
func SortPriceHistory(history []*PriceHistory) {
	slices.SortStableFunc(history, func(a, b *PriceHistory) int {
		return a.ObservedAt.Compare(b.ObservedAt)
	})
}

// FilterPrices compacts a chronologically sorted series to its change points: the first and
// last observations plus, for every change of current price, the observation before and the
// observation after the change. Series shorter than two pass through unchanged.
func FilterPrices(history []*PriceHistory) []*PriceHistory {
	if len(history) < 2 {
		return history
	}

	last := len(history) - 1
	keep := make([]bool, len(history))
	keep[0] = true
	keep[last] = true
	for i := 1; i < len(history); i++ {
		if !history[i].SamePrice(history[i-1]) {
			keep[i-1] = true
			keep[i] = true
		}
	}

	filtered := make([]*PriceHistory, 0, len(history))
	seen := make(map[PriceKey]struct{}, len(history))
	for i, p := range history {
		if !keep[i] {
			continue
		}
		if _, dup := seen[p.Key()]; dup {
			continue
		}
		seen[p.Key()] = struct{}{}
		filtered = append(filtered, p)
	}
	SortPriceHistory(filtered)

	return filtered
}
