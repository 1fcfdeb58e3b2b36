// Package model holds the GORM structs describing the catalog tables. They are used for
// schema migration and as scan targets; the stores map them to domain entities.
package model

// CountryModel is the GORM-specific struct for the 'countries' table.
type CountryModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(255)"`
	Code string `gorm:"type:varchar(16);not null;uniqueIndex"`
}

// TableName explicitly sets the table name for GORM.
func (CountryModel) TableName() string {
	return "countries"
}
