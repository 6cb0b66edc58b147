package models

import "time"

// Account is the storage representation of a ledger account.
type Account struct {
	AccountID    string    `db:"account_id"`
	Name         string    `db:"name"`
	CurrencyCode string    `db:"currency_code"`
	CreatedAt    time.Time `db:"created_at"`
}
