package domain

import "github.com/shopspring/decimal"

// AccountBalance pairs an account with its derived balance. The balance is
// never stored; it is the 2-decimal rounded sum of the account's rows.
type AccountBalance struct {
	Account Account         `json:"account"`
	Balance decimal.Decimal `json:"balance"`
}

// CategoryTotal pairs an expense category with the absolute total of its
// Expense-kind rows. Totals are always non-negative even though storage
// amounts for expenses are negative.
type CategoryTotal struct {
	Category Category        `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// LedgerSummary is the combined recompute-on-read report.
type LedgerSummary struct {
	Balances []AccountBalance `json:"balances"`
	Expenses []CategoryTotal  `json:"expenses"`
}
