package dto

import (
	"time"

	"github.com/finledger/fin_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// CurrencyCode is optional; the service applies the default when empty.
type CreateAccountRequest struct {
	Name         string `json:"name" binding:"required,max=120"`
	CurrencyCode string `json:"currencyCode" binding:"omitempty,currencycode"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID    string    `json:"accountID"`
	Name         string    `json:"name"`
	CurrencyCode string    `json:"currencyCode"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:    acc.AccountID,
		Name:         acc.Name,
		CurrencyCode: acc.CurrencyCode,
		CreatedAt:    acc.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// AccountBalanceResponse defines the data returned for a balance query.
type AccountBalanceResponse struct {
	AccountID string          `json:"accountID"`
	Balance   decimal.Decimal `json:"balance"`
}
