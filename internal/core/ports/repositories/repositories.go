package repositories

import (
	"context"

	"github.com/finledger/fin_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Note: Context is included on every operation for cancellation/timeouts; a
// host-supplied deadline wraps the whole unit of work, never a partial set of
// its writes.

// Repository is the uniform CRUD contract over a single entity kind,
// independent of persistence technology. Implementations operate within the
// currently open unit of work and never commit on their own.
type Repository[T any] interface {
	// Add persists a new row, assigns identity if absent and returns the
	// entity with identity populated.
	Add(ctx context.Context, entity T) (T, error)
	// Get fetches by identity. A missing id yields apperrors.ErrNotFound.
	Get(ctx context.Context, id string) (*T, error)
	// List returns all rows. Ordering is whatever the backend provides
	// unless an entity-specific method promises more.
	List(ctx context.Context) ([]T, error)
	// Update patches the named columns and returns the updated entity.
	// Present for contract completeness; the ledger service never calls it.
	Update(ctx context.Context, id string, fields map[string]any) (*T, error)
	// Delete removes by identity and reports whether a row was removed.
	// Present for contract completeness; the ledger service never calls it.
	Delete(ctx context.Context, id string) (bool, error)
}

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	Repository[domain.Account]
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Repository[domain.Category]

	// ListByPolarity returns only income (true) or only expense (false) categories.
	ListByPolarity(ctx context.Context, isIncome bool) ([]domain.Category, error)
}

// TransactionRepository defines persistence operations for ledger rows,
// including the aggregate reads that back balances and reports.
type TransactionRepository interface {
	Repository[domain.Transaction]

	// ListByAccount returns the rows affecting one account, ordered by
	// occurrence time then id.
	ListByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error)
	// ListByCategory returns the rows referencing one category.
	ListByCategory(ctx context.Context, categoryID string) ([]domain.Transaction, error)
	// SumByAccount returns the signed amount sum for one account; zero when
	// the account has no rows.
	SumByAccount(ctx context.Context, accountID string) (decimal.Decimal, error)
	// TotalsByAccount returns the signed amount sum per account id, omitting
	// accounts with no rows.
	TotalsByAccount(ctx context.Context) (map[string]decimal.Decimal, error)
	// ExpenseTotalsByCategory returns, per expense-polarity category id, the
	// sum of Expense-kind rows (stored negative).
	ExpenseTotalsByCategory(ctx context.Context) (map[string]decimal.Decimal, error)
}
