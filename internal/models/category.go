package models

// Category is the storage representation of a movement category.
type Category struct {
	CategoryID string `db:"category_id"`
	Name       string `db:"name"`
	IsIncome   bool   `db:"is_income"`
}
