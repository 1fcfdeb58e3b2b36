package model

// CategoryModel is the GORM-specific struct for the 'categories' table.
// BclID is the feed's category id and the value other tables reference.
type CategoryModel struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	Name             string `gorm:"type:varchar(255)"`
	ParentCategoryID *int64 `gorm:"index"`
	BclID            int64  `gorm:"column:bcl_id;not null;uniqueIndex"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
