package dto

import (
	"time"

	"github.com/finledger/fin_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddMovementRequest defines the data for recording an income or an expense.
// Amount is the user-entered positive value; sign checks belong to the
// service so that InvalidAmount is reported consistently.
type AddMovementRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	CategoryID  string          `json:"categoryID" binding:"required"`
	Description string          `json:"description" binding:"max=255"`
}

// TransferRequest defines the data for a transfer between two accounts.
type TransferRequest struct {
	FromAccountID string          `json:"fromAccountID" binding:"required"`
	ToAccountID   string          `json:"toAccountID" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description" binding:"max=255"`
}

// TransactionResponse defines the data returned for one ledger row.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Kind          string          `json:"kind"`
	AccountID     string          `json:"accountID"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	OccurredAt    time.Time       `json:"occurredAt"`
	CategoryID    string          `json:"categoryID,omitempty"`
	ToAccountID   string          `json:"toAccountID,omitempty"`
}

// TransferResponse returns both legs of a completed transfer.
type TransferResponse struct {
	Outgoing TransactionResponse `json:"outgoing"`
	Incoming TransactionResponse `json:"incoming"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Kind:          string(txn.Kind),
		AccountID:     txn.AccountID,
		Amount:        txn.Amount,
		Description:   txn.Description,
		OccurredAt:    txn.OccurredAt,
		CategoryID:    txn.CategoryID,
		ToAccountID:   txn.ToAccountID,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}
