// Package feed turns the raw product feed into catalog entities, fetches it from its source
// and exports the ranked list.
package feed

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/infra/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

const recordsPath = "hits.hits"

var validate = validator.New(validator.WithRequiredStructEnabled())

// timeLayouts are tried in order; values without a zone are read as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Stats counts the records seen by one parse.
type Stats struct {
	Records  int `json:"records"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

// Parser reads feed documents.
type Parser struct {
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewParser creates a Parser. recorder may be nil.
func NewParser(logger *slog.Logger, recorder *metrics.Recorder) *Parser {
	return &Parser{
		logger:   logger,
		recorder: recorder,
	}
}

// ParseFile parses the feed stored at path.
func (p *Parser) ParseFile(ctx context.Context, path string) ([]*entity.Product, Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Stats{}, domainerrors.NewFeedError(domainerrors.ErrFeedParse, errors.WithStack(err), path)
	}

	return p.Parse(ctx, data)
}

// Parse reads every hits.hits[]._source record. Invalid records are skipped and counted;
// only a malformed document fails the whole parse.
func (p *Parser) Parse(ctx context.Context, data []byte) ([]*entity.Product, Stats, error) {
	var stats Stats

	if !gjson.ValidBytes(data) {
		return nil, stats, domainerrors.NewFeedError(domainerrors.ErrFeedParse, errors.New("document is not valid JSON"), "")
	}

	hits := gjson.GetBytes(data, recordsPath)
	if !hits.Exists() {
		p.logger.WarnContext(ctx, "Feed has no records", slog.String("path", recordsPath))

		return []*entity.Product{}, stats, nil
	}
	if !hits.IsArray() {
		return nil, stats, domainerrors.NewFeedError(domainerrors.ErrFeedParse, errors.Errorf("%s is not an array", recordsPath), recordsPath)
	}

	products := make([]*entity.Product, 0, int(hits.Get("#").Int()))
	var ctxErr error
	hits.ForEach(func(_, hit gjson.Result) bool {
		if ctxErr = ctx.Err(); ctxErr != nil {
			return false
		}

		stats.Records++
		product, err := ParseProduct(hit.Get("_source"))
		if err != nil {
			stats.Rejected++
			p.logger.WarnContext(ctx, "Skipping invalid feed record",
				slog.Int("index", stats.Records-1),
				slog.Any("error", err),
			)

			return true
		}

		stats.Accepted++
		products = append(products, product)

		return true
	})
	if ctxErr != nil {
		return nil, stats, errors.WithStack(ctxErr)
	}

	p.recorder.AddFeedRecords(stats.Accepted, stats.Rejected)
	p.logger.InfoContext(ctx, "Feed parsed",
		slog.Int("records", stats.Records),
		slog.Int("accepted", stats.Accepted),
		slog.Int("rejected", stats.Rejected),
	)

	return products, stats, nil
}

// record holds the fields checked before a product is built.
type record struct {
	SKU               string  `validate:"required"`
	Name              string  `validate:"required"`
	Volume            float64 `validate:"gte=0"`
	UnitSize          int     `validate:"gte=0"`
	AlcoholPercentage float64 `validate:"gte=0,lte=100"`
}

// ParseProduct builds a product from one feed record.
//
// upc may be a list (its first element, or the sku when empty), image links are upgraded to
// https, countryName/countryCode form the country, class is the sub-sub-category and the
// last_updated/price fields form the product's single price observation.
func ParseProduct(raw gjson.Result) (*entity.Product, error) {
	if !raw.IsObject() {
		return nil, domainerrors.NewFeedError(domainerrors.ErrRecordInvalid, errors.New("record is not an object"), "_source")
	}

	rec := record{
		SKU:               strings.TrimSpace(text(raw.Get("sku"))),
		Name:              strings.TrimSpace(text(raw.Get("name"))),
		Volume:            number(raw.Get("volume")),
		UnitSize:          integer(raw.Get("unitSize")),
		AlcoholPercentage: number(raw.Get("alcoholPercentage")),
	}
	if err := validate.Struct(rec); err != nil {
		return nil, domainerrors.NewFeedError(domainerrors.ErrRecordInvalid, errors.WithStack(err), rec.SKU)
	}

	product := &entity.Product{
		SKU:                rec.SKU,
		UPC:                parseUPC(raw.Get("upc"), rec.SKU),
		Name:               rec.Name,
		Volume:             rec.Volume,
		UnitSize:           rec.UnitSize,
		AlcoholPercentage:  rec.AlcoholPercentage,
		TastingDescription: text(raw.Get("tastingDescription")),
		Image:              fixImage(text(raw.Get("image"))),
		ProductType:        text(raw.Get("productType")),
		Country:            parseCountry(raw),
		IsActive:           true,
	}

	levels := []struct {
		field  string
		target **entity.Category
	}{
		{"category", &product.Category},
		{"subCategory", &product.SubCategory},
		{"class", &product.SubSubCategory},
	}
	for _, level := range levels {
		category, err := ParseCategory(raw.Get(level.field))
		if err != nil {
			return nil, domainerrors.NewFeedError(domainerrors.ErrRecordInvalid, err, rec.SKU+"."+level.field)
		}
		*level.target = category
	}

	observation, err := ParsePriceHistory(raw, rec.SKU, product.UPC)
	if err != nil {
		return nil, domainerrors.NewFeedError(domainerrors.ErrRecordInvalid, err, rec.SKU+".last_updated")
	}
	if observation != nil {
		product.PriceHistory = []*entity.PriceHistory{observation}
	}

	return product, nil
}

// ParseCategory reads a {id, description} object. A missing or null value is no category.
func ParseCategory(raw gjson.Result) (*entity.Category, error) {
	if !raw.Exists() || raw.Type == gjson.Null {
		return nil, nil
	}
	if !raw.IsObject() {
		return nil, errors.New("category is not an object")
	}

	id := raw.Get("id")
	var (
		categoryID int64
		err        error
	)
	switch id.Type {
	case gjson.Number:
		categoryID = id.Int()
	case gjson.String:
		categoryID, err = strconv.ParseInt(strings.TrimSpace(id.Str), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "category id %q", id.Str)
		}
	default:
		return nil, errors.New("category id is required")
	}

	return &entity.Category{
		ID:          categoryID,
		Description: text(raw.Get("description")),
	}, nil
}

// ParsePriceHistory reads the observation carried by a record. There is none without
// last_updated or without an identifier.
func ParsePriceHistory(raw gjson.Result, sku, upc string) (*entity.PriceHistory, error) {
	lastUpdated := raw.Get("last_updated")
	if upc == "" || !lastUpdated.Exists() || lastUpdated.Type == gjson.Null || lastUpdated.String() == "" {
		return nil, nil
	}

	observedAt, err := parseTime(lastUpdated)
	if err != nil {
		return nil, err
	}
	promotionStart, err := optionalTime(raw.Get("promotionStartDate"))
	if err != nil {
		return nil, errors.Wrap(err, "promotionStartDate")
	}
	promotionEnd, err := optionalTime(raw.Get("promotionEndDate"))
	if err != nil {
		return nil, errors.Wrap(err, "promotionEndDate")
	}

	return &entity.PriceHistory{
		SKU:            sku,
		ObservedAt:     observedAt,
		RegularPrice:   parseDecimal(raw.Get("regularPrice")),
		CurrentPrice:   parseDecimal(raw.Get("currentPrice")),
		PromotionStart: promotionStart,
		PromotionEnd:   promotionEnd,
	}, nil
}

func parseCountry(raw gjson.Result) *entity.Country {
	name := strings.TrimSpace(text(raw.Get("countryName")))
	code := strings.TrimSpace(text(raw.Get("countryCode")))
	if name == "" && code == "" {
		return nil
	}

	return &entity.Country{Name: name, Code: code}
}

func parseUPC(raw gjson.Result, sku string) string {
	if !raw.IsArray() {
		return text(raw)
	}

	values := raw.Array()
	if len(values) == 0 {
		return sku
	}

	return text(values[0])
}

func fixImage(image string) string {
	image = strings.Replace(image, "http://", "https://", 1)

	return strings.Replace(image, ".jpeg", ".jpg", 1)
}

// text returns strings and numbers verbatim; anything else (false, null, objects) is empty.
func text(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Number:
		return r.Raw
	default:
		return ""
	}
}

// number accepts numbers and numeric strings; anything unparseable is 0.
func number(r gjson.Result) float64 {
	switch r.Type {
	case gjson.Number:
		return r.Float()
	case gjson.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64)
		if err != nil {
			return 0
		}

		return f
	default:
		return 0
	}
}

func integer(r gjson.Result) int {
	return int(number(r))
}

// parseDecimal keeps the exact digits of the feed; empty and unparseable values are NULL.
func parseDecimal(r gjson.Result) decimal.NullDecimal {
	var raw string
	switch r.Type {
	case gjson.Number:
		raw = r.Raw
	case gjson.String:
		raw = strings.TrimSpace(r.Str)
	default:
		return decimal.NullDecimal{}
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}
	}

	return decimal.NewNullDecimal(d)
}

func parseTime(r gjson.Result) (time.Time, error) {
	if r.Type == gjson.Number {
		// epoch seconds or milliseconds
		v := r.Int()
		if v > 1e12 {
			return time.UnixMilli(v).UTC(), nil
		}

		return time.Unix(v, 0).UTC(), nil
	}

	value := strings.TrimSpace(r.String())
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, errors.Errorf("unrecognised time %q", value)
}

func optionalTime(r gjson.Result) (*time.Time, error) {
	if !r.Exists() || r.Type == gjson.Null || strings.TrimSpace(r.String()) == "" {
		return nil, nil
	}

	t, err := parseTime(r)
	if err != nil {
		return nil, err
	}

	return &t, nil
}
