package services

import (
	"context"

	"github.com/finledger/fin_ledger_app/internal/core/domain"
	"github.com/finledger/fin_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade is the single entry point enforcing all financial business
// rules. Every mutation goes through it, never directly through repositories;
// each operation opens exactly one unit of work as its atomic boundary.
type LedgerSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)

	// AddIncome records a positive movement against an income category.
	AddIncome(ctx context.Context, req dto.AddMovementRequest) (*domain.Transaction, error)
	// AddExpense records the negated user amount against an expense category.
	AddExpense(ctx context.Context, req dto.AddMovementRequest) (*domain.Transaction, error)
	// Transfer atomically records the outgoing and incoming legs; both rows
	// exist or neither does.
	Transfer(ctx context.Context, req dto.TransferRequest) (*domain.Transaction, *domain.Transaction, error)

	// AccountBalance sums the account's rows rounded to 2 decimal places.
	// An account with no rows yields zero, not an error.
	AccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error)
	BalancesByAccount(ctx context.Context) ([]domain.AccountBalance, error)
	ExpenseByCategory(ctx context.Context) ([]domain.CategoryTotal, error)
	TransactionsForAccount(ctx context.Context, accountID string) ([]domain.Transaction, error)

	ListAccounts(ctx context.Context) ([]domain.Account, error)
	// ListCategories returns all categories, or only one polarity when
	// isIncome is non-nil.
	ListCategories(ctx context.Context, isIncome *bool) ([]domain.Category, error)
}

// ReportingSvcFacade composes the ledger's read paths into report payloads.
// Reports are derived, never cached; every call recomputes from current rows.
type ReportingSvcFacade interface {
	BalancesByAccount(ctx context.Context) ([]domain.AccountBalance, error)
	ExpenseByCategory(ctx context.Context) ([]domain.CategoryTotal, error)
	Summary(ctx context.Context) (*domain.LedgerSummary, error)
}

// ServiceContainer bundles the service facades handed to the HTTP layer.
type ServiceContainer struct {
	Ledger    LedgerSvcFacade
	Reporting ReportingSvcFacade
}
