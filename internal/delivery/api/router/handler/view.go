package handler

import (
	"math"
	"time"

	"catalog/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ProductView is the JSON shape of a ranked product.
type ProductView struct {
	SKU                string             `json:"sku"`
	Name               string             `json:"name"`
	Image              string             `json:"image"`
	TastingDescription string             `json:"tastingDescription"`
	CombinedScore      int64              `json:"combined_score"`
	Country            *entity.Country    `json:"country"`
	Category           string             `json:"category"`
	Alcohol            float64            `json:"alcohol"`
	Volume             float64            `json:"volume"`
	Price              *PriceView         `json:"price"`
	UnitSize           int                `json:"unit_size"`
	URL                string             `json:"url"`
	PricePerMilliliter *float64           `json:"ppml"` // null when the volume is unknown
	FullCategory       []*entity.Category `json:"full_category"`
}

// PriceView is the latest price of a product.
type PriceView struct {
	PromotionEndDate *time.Time `json:"promotion_end_date"`
	Price            *float64   `json:"price"`
	SalePrice        *float64   `json:"sale_price"`
}

// PricePointView is one point of a price chart.
type PricePointView struct {
	LastUpdated time.Time `json:"last_updated"`
	Price       *float64  `json:"price"`
}

// NewProductView renders p.
func NewProductView(p *entity.Product) ProductView {
	view := ProductView{
		SKU:                p.SKU,
		Name:               p.Name,
		Image:              p.Image,
		TastingDescription: p.TastingDescription,
		CombinedScore:      int64(p.CombinedScore()),
		Country:            p.Country,
		Category:           p.CombinedCategory(),
		Alcohol:            p.AlcoholScore(),
		Volume:             p.Volume,
		UnitSize:           p.NumericUnitSize(),
		URL:                p.URL(),
		FullCategory:       p.FullCategoryPath(),
	}
	if p.Category != nil {
		// the main category wins over the product type here
		view.Category = p.Category.Description
	}
	if ppml := p.PricePerMilliliter(); !math.IsInf(ppml, 0) && !math.IsNaN(ppml) {
		view.PricePerMilliliter = &ppml
	}
	if latest := p.LatestPrice(); latest != nil {
		view.Price = &PriceView{
			PromotionEndDate: latest.PromotionEnd,
			Price:            floatOrNil(latest.RegularPrice),
			SalePrice:        floatOrNil(latest.CurrentPrice),
		}
	}

	return view
}

// NewProductViews renders products, keeping their order.
func NewProductViews(products []*entity.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, NewProductView(p))
	}

	return views
}

// NewPricePointViews renders a price series.
func NewPricePointViews(history []*entity.PriceHistory) []PricePointView {
	points := make([]PricePointView, 0, len(history))
	for _, h := range history {
		points = append(points, PricePointView{
			LastUpdated: h.ObservedAt,
			Price:       floatOrNil(h.CurrentPrice),
		})
	}

	return points
}

func floatOrNil(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f := d.Decimal.InexactFloat64()

	return &f
}
