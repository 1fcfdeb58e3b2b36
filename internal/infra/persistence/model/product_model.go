package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// Category columns hold feed category ids (categories.bcl_id).
type ProductModel struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	SKU           string    `gorm:"column:sku;type:varchar(32);not null;uniqueIndex"`
	Name          string    `gorm:"type:varchar(255);not null"`
	CategoryID    *int64    `gorm:"index"`
	CountryCode   *string   `gorm:"type:varchar(16);index"`
	Description   *string   `gorm:"type:text"`
	Volume        *float64
	Alcohol       *float64
	UPC           *string `gorm:"column:upc;type:varchar(64)"`
	UnitSize      *int
	SubCategoryID *int64    `gorm:"index"`
	ClassID       *int64    `gorm:"index"`
	DateUpdated   time.Time `gorm:"autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductRow is one row of the product view: a product joined with its latest price observation.
// Price columns are NULL when no observation falls inside the window.
type ProductRow struct {
	SKU                *string             `gorm:"column:sku"`
	Name               *string             `gorm:"column:name"`
	CategoryID         *int64              `gorm:"column:category_id"`
	CountryCode        *string             `gorm:"column:country_code"`
	Description        *string             `gorm:"column:description"`
	Volume             *float64            `gorm:"column:volume"`
	Alcohol            *float64            `gorm:"column:alcohol"`
	UPC                *string             `gorm:"column:upc"`
	UnitSize           *int                `gorm:"column:unit_size"`
	SubCategoryID      *int64              `gorm:"column:sub_category_id"`
	ClassID            *int64              `gorm:"column:class_id"`
	LastUpdated        *time.Time          `gorm:"column:last_updated"`
	RegularPrice       decimal.NullDecimal `gorm:"column:regular_price"`
	CurrentPrice       decimal.NullDecimal `gorm:"column:current_price"`
	PromotionStartDate *time.Time          `gorm:"column:promotion_start_date"`
	PromotionEndDate   *time.Time          `gorm:"column:promotion_end_date"`
}

// All lists every table model in migration order.
func All() []any {
	return []any{
		&CountryModel{},
		&CategoryModel{},
		&ProductModel{},
		&PriceHistoryModel{},
	}
}
