package domain

// Category classifies income and expense movements. Polarity (IsIncome) is
// fixed at creation: a category is either an income category or an expense
// category, never both.
type Category struct {
	CategoryID string `json:"categoryID"` // Primary Key (UUID)
	Name       string `json:"name"`       // Unique
	IsIncome   bool   `json:"isIncome"`   // true = income category, false = expense category
}
