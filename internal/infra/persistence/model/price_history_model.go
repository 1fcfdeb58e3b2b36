package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceHistoryModel is the GORM-specific struct for the 'price_history' table.
type PriceHistoryModel struct {
	ID                 int64               `gorm:"primaryKey;autoIncrement"`
	LastUpdated        time.Time           `gorm:"not null;index:idx_price_history_sku_time,priority:2"`
	SKU                string              `gorm:"column:sku;type:varchar(32);not null;index:idx_price_history_sku_time,priority:1"`
	RegularPrice       decimal.NullDecimal `gorm:"type:decimal(10,2)"`
	CurrentPrice       decimal.NullDecimal `gorm:"type:decimal(10,2)"`
	PromotionStartDate *time.Time          `gorm:"type:date"`
	PromotionEndDate   *time.Time          `gorm:"type:date"`
	Source             string              `gorm:"type:varchar(32)"`
}

// TableName explicitly sets the table name for GORM.
func (PriceHistoryModel) TableName() string {
	return "price_history"
}
