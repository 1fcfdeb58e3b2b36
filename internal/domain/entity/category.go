package entity

// Category is one node of the three-level feed taxonomy (category, sub-category, class).
// It carries no parent pointer; the hierarchy is supplied when the category is resolved.
type Category struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}
