package dto

import (
	"github.com/finledger/fin_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceRow pairs an account with its derived balance.
type BalanceRow struct {
	Account AccountResponse `json:"account"`
	Balance decimal.Decimal `json:"balance"`
}

// ExpenseRow pairs an expense category with its absolute spend total.
type ExpenseRow struct {
	Category CategoryResponse `json:"category"`
	Total    decimal.Decimal  `json:"total"`
}

// SummaryResponse is the combined report payload.
type SummaryResponse struct {
	Balances []BalanceRow `json:"balances"`
	Expenses []ExpenseRow `json:"expenses"`
}

// ToBalanceRows converts domain balance pairs to response rows.
func ToBalanceRows(balances []domain.AccountBalance) []BalanceRow {
	rows := make([]BalanceRow, len(balances))
	for i, b := range balances {
		rows[i] = BalanceRow{Account: ToAccountResponse(&b.Account), Balance: b.Balance}
	}
	return rows
}

// ToExpenseRows converts domain category totals to response rows.
func ToExpenseRows(totals []domain.CategoryTotal) []ExpenseRow {
	rows := make([]ExpenseRow, len(totals))
	for i, t := range totals {
		rows[i] = ExpenseRow{Category: ToCategoryResponse(&t.Category), Total: t.Total}
	}
	return rows
}
