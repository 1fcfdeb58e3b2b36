package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var day0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func dailySeries(prices ...float64) []*PriceHistory {
	series := make([]*PriceHistory, 0, len(prices))
	for i, price := range prices {
		series = append(series, &PriceHistory{
			SKU:          "sku",
			ObservedAt:   day0.AddDate(0, 0, i),
			CurrentPrice: decimal.NewNullDecimal(decimal.NewFromFloat(price)),
		})
	}

	return series
}

func days(history []*PriceHistory) []int {
	out := make([]int, 0, len(history))
	for _, p := range history {
		out = append(out, int(p.ObservedAt.Sub(day0).Hours()/24))
	}

	return out
}

func TestFilterPrices_ShortSeriesPassThrough(t *testing.T) {
	assert.Empty(t, FilterPrices(nil))

	single := dailySeries(10)
	assert.Equal(t, single, FilterPrices(single))
}

func TestFilterPrices_NoChangesKeepsFirstAndLast(t *testing.T) {
	series := dailySeries(7, 7, 7, 7, 7)

	filtered := FilterPrices(series)

	assert.Equal(t, []int{0, 4}, days(filtered))
}

func TestFilterPrices_KeepsBothSidesOfEachChange(t *testing.T) {
	series := dailySeries(10, 10, 8, 8, 8, 12)

	filtered := FilterPrices(series)

	assert.Equal(t, []int{0, 1, 2, 4, 5}, days(filtered))
	assert.True(t, filtered[2].CurrentPrice.Decimal.Equal(decimal.NewFromInt(8)))
	assert.True(t, filtered[4].CurrentPrice.Decimal.Equal(decimal.NewFromInt(12)))
}

func TestFilterPrices_AdjacentChangesAreNotDuplicated(t *testing.T) {
	series := dailySeries(1, 2, 3, 3)

	filtered := FilterPrices(series)

	assert.Equal(t, []int{0, 1, 2, 3}, days(filtered))
}

func TestFilterPrices_TwoPoints(t *testing.T) {
	assert.Equal(t, []int{0, 1}, days(FilterPrices(dailySeries(5, 5))))
	assert.Equal(t, []int{0, 1}, days(FilterPrices(dailySeries(5, 6))))
}

func TestFilterPrices_MissingPriceCountsAsChange(t *testing.T) {
	series := dailySeries(4, 4, 4)
	series[1].CurrentPrice = decimal.NullDecimal{}

	filtered := FilterPrices(series)

	assert.Equal(t, []int{0, 1, 2}, days(filtered))
}

func TestPriceHistory_KeyIgnoresLocation(t *testing.T) {
	vancouver := time.FixedZone("PST", -8*3600)
	a := &PriceHistory{SKU: "1", ObservedAt: day0}
	b := &PriceHistory{SKU: "1", ObservedAt: day0.In(vancouver)}

	assert.Equal(t, a.Key(), b.Key())
}
