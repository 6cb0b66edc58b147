package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind tags a transaction as income, expense or one leg of a transfer.
// This is the single kind enumeration shared by the business layer; the storage
// adapter owns any format conversion.
type TransactionKind string

const (
	Income   TransactionKind = "INCOME"
	Expense  TransactionKind = "EXPENSE"
	Transfer TransactionKind = "TRANSFER"
)

// IsValid reports whether k is one of the known transaction kinds.
func (k TransactionKind) IsValid() bool {
	switch k {
	case Income, Expense, Transfer:
		return true
	}
	return false
}

// Transaction is one immutable ledger row. Sign convention:
// Income rows are positive, Expense rows store the negated user amount, and a
// Transfer produces exactly two rows in one atomic unit of work (negative
// source leg, positive destination leg, equal absolute values).
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Kind          TransactionKind `json:"kind"`
	AccountID     string          `json:"accountID"` // The account this row affects
	Amount        decimal.Decimal `json:"amount"`    // Signed, see convention above
	Description   string          `json:"description"`
	OccurredAt    time.Time       `json:"occurredAt"`
	CategoryID    string          `json:"categoryID,omitempty"`  // Set for Income/Expense, empty for Transfer
	ToAccountID   string          `json:"toAccountID,omitempty"` // Set only for Transfer: the counterpart account
}
