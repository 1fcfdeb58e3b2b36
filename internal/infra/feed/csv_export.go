package feed

import (
	"bytes"
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"catalog/internal/domain/entity"

	"github.com/pkg/errors"
)

var csvHeader = []string{
	"price_per_milliliter",
	"combined_score",
	"url",
	"name",
	"volume",
	"unitSize",
	"regularPrice",
	"currentPrice",
	"alcoholPercentage",
	"countryName",
	"productCategoryOrType",
}

// WriteCSV writes products, in the given order, as the ranked spreadsheet.
func WriteCSV(w io.Writer, products []*entity.Product) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return errors.WithStack(err)
	}

	for _, product := range products {
		countryName := ""
		if product.Country != nil {
			countryName = product.Country.Name
		}

		if err := writer.Write([]string{
			formatFloat(product.PricePerMilliliter()),
			formatFloat(product.CombinedScore()),
			product.URL(),
			product.Name,
			formatFloat(product.Volume),
			strconv.Itoa(product.UnitSize),
			formatFloat(product.RegularPrice()),
			formatFloat(product.CurrentPrice()),
			formatFloat(product.AlcoholScore()),
			countryName,
			product.CombinedCategory(),
		}); err != nil {
			return errors.WithStack(err)
		}
	}

	writer.Flush()

	return errors.WithStack(writer.Error())
}

// ExportCSV writes the ranked list to path, replacing it atomically.
func ExportCSV(path string, products []*entity.Product) error {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, products); err != nil {
		return err
	}

	return writeFileAtomic(path, buf.Bytes())
}

func formatFloat(f float64) string {
	if math.IsInf(f, 1) {
		return "inf"
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}
