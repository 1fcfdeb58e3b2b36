package entity

import (
	"cmp"
	"math"
	"slices"
)

// ProductURL is the public product page prefix; the SKU is appended.
const ProductURL = "https://www.bcliquorstores.com/product/"

// Product is a catalog item identified by its SKU.
//
// PriceHistory is either the full time-ordered series or only the latest
// observation, depending on how the product was loaded.
type Product struct {
	SKU                string
	UPC                string
	Name               string
	Volume             float64 // litres per unit
	UnitSize           int
	AlcoholPercentage  float64
	TastingDescription string
	Image              string
	ProductType        string
	Country            *Country
	Category           *Category
	SubCategory        *Category
	SubSubCategory     *Category
	PriceHistory       []*PriceHistory
	IsActive           bool
}

// LatestPrice returns the most recent observation, or nil.
func (p *Product) LatestPrice() *PriceHistory {
	if len(p.PriceHistory) == 0 {
		return nil
	}

	return p.PriceHistory[len(p.PriceHistory)-1]
}

// CurrentPrice is the latest current price, 0 when unknown.
func (p *Product) CurrentPrice() float64 {
	latest := p.LatestPrice()
	if latest == nil || !latest.CurrentPrice.Valid {
		return 0
	}

	return latest.CurrentPrice.Decimal.InexactFloat64()
}

// RegularPrice is the latest regular price, 0 when unknown.
func (p *Product) RegularPrice() float64 {
	latest := p.LatestPrice()
	if latest == nil || !latest.RegularPrice.Valid {
		return 0
	}

	return latest.RegularPrice.Decimal.InexactFloat64()
}

// NumericUnitSize defaults a missing unit size to 1.
func (p *Product) NumericUnitSize() int {
	if p.UnitSize <= 0 {
		return 1
	}

	return p.UnitSize
}

// PricePerMilliliter is currentPrice / (volume × 1000 × unitSize).
// It is +Inf when the total volume is not positive so such products rank last.
func (p *Product) PricePerMilliliter() float64 {
	totalMilliliters := p.Volume * 1000 * float64(p.NumericUnitSize())
	if totalMilliliters <= 0 {
		return math.Inf(1)
	}

	return p.CurrentPrice() / totalMilliliters
}

// AlcoholScore is the alcohol percentage as stored, 0 when absent.
func (p *Product) AlcoholScore() float64 {
	if p.AlcoholPercentage == 0 || math.IsNaN(p.AlcoholPercentage) {
		return 0
	}

	return p.AlcoholPercentage
}

// CombinedScore is the ranking metric: millilitres per dollar weighted by alcohol content.
func (p *Product) CombinedScore() float64 {
	ppml := p.PricePerMilliliter()
	factor := 1.0
	if ppml > 0 {
		factor = 1 / ppml
	}

	return factor * (p.AlcoholScore() + 1)
}

// FullCategoryPath returns the non-empty levels of the category hierarchy, top first.
func (p *Product) FullCategoryPath() []*Category {
	path := make([]*Category, 0, 3)
	for _, c := range []*Category{p.Category, p.SubCategory, p.SubSubCategory} {
		if c != nil {
			path = append(path, c)
		}
	}

	return path
}

// CombinedCategory prefers the product type and falls back to the main category description.
func (p *Product) CombinedCategory() string {
	if p.ProductType != "" {
		return p.ProductType
	}
	if p.Category != nil {
		return p.Category.Description
	}

	return ""
}

// URL is the public product page.
func (p *Product) URL() string {
	return ProductURL + p.SKU
}

// SortByCombinedScore orders products by descending CombinedScore, SKU breaking ties.
func SortByCombinedScore(products []*Product) {
	slices.SortStableFunc(products, func(a, b *Product) int {
		if c := cmp.Compare(b.CombinedScore(), a.CombinedScore()); c != 0 {
			return c
		}

		return cmp.Compare(a.SKU, b.SKU)
	})
}
