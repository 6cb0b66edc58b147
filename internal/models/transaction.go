package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxnKind is the storage-side transaction kind. The value set matches the
// domain enumeration; keeping a separate type here keeps format conversion
// inside the storage adapter.
type TxnKind string

const (
	TxnIncome   TxnKind = "INCOME"
	TxnExpense  TxnKind = "EXPENSE"
	TxnTransfer TxnKind = "TRANSFER"
)

// Transaction is the storage representation of one ledger row.
// CategoryID and ToAccountID map to nullable columns; empty string means NULL.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	Kind          TxnKind         `db:"kind"`
	AccountID     string          `db:"account_id"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	OccurredAt    time.Time       `db:"occurred_at"`
	CategoryID    string          `db:"category_id"`
	ToAccountID   string          `db:"to_account_id"`
}
