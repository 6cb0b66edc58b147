package domain

import "time"

// DefaultCurrencyCode is applied when an account is created without an explicit currency.
const DefaultCurrencyCode = "UAH"

// Account represents a financial account movements are recorded against.
// Identity is assigned on creation and immutable; the engine never mutates
// an existing account.
type Account struct {
	AccountID    string    `json:"accountID"`    // Primary Key (UUID)
	Name         string    `json:"name"`         // Unique, non-empty (uniqueness enforced by storage)
	CurrencyCode string    `json:"currencyCode"` // ISO-like code, e.g. "UAH", "USD"
	CreatedAt    time.Time `json:"createdAt"`    // Set once at creation
}
