package feed

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"catalog/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedProducts() []*entity.Product {
	return []*entity.Product{
		{
			SKU:               "100",
			Name:              "Highland Single Malt",
			Volume:            0.75,
			UnitSize:          1,
			AlcoholPercentage: 40,
			Country:           &entity.Country{Name: "United Kingdom", Code: "GB"},
			ProductType:       "Scotch Whisky",
			PriceHistory: []*entity.PriceHistory{{
				SKU:          "100",
				ObservedAt:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				RegularPrice: decimal.NewNullDecimal(decimal.RequireFromString("24")),
				CurrentPrice: decimal.NewNullDecimal(decimal.RequireFromString("20")),
			}},
		},
		{
			SKU:      "200",
			Name:     "Gift Box",
			Category: &entity.Category{ID: 9, Description: "Accessories"},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rankedProducts()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, []string{
		"0.02666666666666667",
		"1537.5",
		"https://www.bcliquorstores.com/product/100",
		"Highland Single Malt",
		"0.75",
		"1",
		"24",
		"20",
		"40",
		"United Kingdom",
		"Scotch Whisky",
	}, records[1])

	assert.Equal(t, "inf", records[2][0])
	assert.Equal(t, "", records[2][9])
	assert.Equal(t, "Accessories", records[2][10])
}

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "products.csv")

	require.NoError(t, ExportCSV(path, rankedProducts()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "price_per_milliliter,combined_score")
}
