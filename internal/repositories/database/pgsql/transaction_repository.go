package pgsql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/finledger/fin_ledger_app/internal/core/domain"
	portsrepo "github.com/finledger/fin_ledger_app/internal/core/ports/repositories"
	"github.com/finledger/fin_ledger_app/internal/models"
	"github.com/shopspring/decimal"
)

// nullable turns an empty string into a NULL column value.
func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		Kind:          models.TxnKind(d.Kind),
		AccountID:     d.AccountID,
		Amount:        d.Amount,
		Description:   d.Description,
		OccurredAt:    d.OccurredAt,
		CategoryID:    d.CategoryID,
		ToAccountID:   d.ToAccountID,
	}
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Kind:          domain.TransactionKind(m.Kind),
		AccountID:     m.AccountID,
		Amount:        m.Amount,
		Description:   m.Description,
		OccurredAt:    m.OccurredAt,
		CategoryID:    m.CategoryID,
		ToAccountID:   m.ToAccountID,
	}
}

func transactionMapping() EntityMapping[domain.Transaction] {
	return EntityMapping[domain.Transaction]{
		Table:    "transactions",
		IDColumn: "transaction_id",
		Columns: []string{
			"transaction_id", "kind", "account_id", "amount",
			"description", "occurred_at", "category_id", "to_account_id",
		},
		ScanRow: func(row rowScanner) (domain.Transaction, error) {
			var m models.Transaction
			var categoryID, toAccountID sql.NullString
			err := row.Scan(
				&m.TransactionID,
				&m.Kind,
				&m.AccountID,
				&m.Amount,
				&m.Description,
				&m.OccurredAt,
				&categoryID,
				&toAccountID,
			)
			if err != nil {
				return domain.Transaction{}, err
			}
			m.CategoryID = categoryID.String
			m.ToAccountID = toAccountID.String
			return toDomainTransaction(m), nil
		},
		InsertArgs: func(d domain.Transaction) []any {
			m := toModelTransaction(d)
			return []any{
				m.TransactionID, m.Kind, m.AccountID, m.Amount,
				m.Description, m.OccurredAt, nullable(m.CategoryID), nullable(m.ToAccountID),
			}
		},
		ID: func(d domain.Transaction) string { return d.TransactionID },
		WithID: func(d domain.Transaction, id string) domain.Transaction {
			d.TransactionID = id
			return d
		},
	}
}

// PgxTransactionRepository persists ledger rows through the generic
// repository and serves the aggregate reads behind balances and reports.
type PgxTransactionRepository struct {
	*PgxRepository[domain.Transaction]
}

// newPgxTransactionRepository creates a repository for ledger rows bound to db.
func newPgxTransactionRepository(db DBTX) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{NewPgxRepository(db, transactionMapping())}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// ListByAccount returns the rows affecting one account, ordered by occurrence
// time then id for stable presentation.
func (r *PgxTransactionRepository) ListByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, kind, account_id, amount, description, occurred_at, category_id, to_account_id
		FROM transactions
		WHERE account_id = $1
		ORDER BY occurred_at, transaction_id;
	`
	txns, err := r.queryMany(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for account %s: %w", accountID, err)
	}
	return txns, nil
}

// ListByCategory returns the rows referencing one category.
func (r *PgxTransactionRepository) ListByCategory(ctx context.Context, categoryID string) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, kind, account_id, amount, description, occurred_at, category_id, to_account_id
		FROM transactions
		WHERE category_id = $1
		ORDER BY occurred_at, transaction_id;
	`
	txns, err := r.queryMany(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for category %s: %w", categoryID, err)
	}
	return txns, nil
}

// SumByAccount returns the signed amount sum for one account, zero when the
// account has no rows.
func (r *PgxTransactionRepository) SumByAccount(ctx context.Context, accountID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE account_id = $1;
	`
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, accountID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transactions for account %s: %w", accountID, err)
	}
	return sum, nil
}

// TotalsByAccount returns the signed amount sum per account id. Accounts with
// no rows are absent from the map; the service treats them as zero.
func (r *PgxTransactionRepository) TotalsByAccount(ctx context.Context) (map[string]decimal.Decimal, error) {
	query := `
		SELECT account_id, SUM(amount)
		FROM transactions
		GROUP BY account_id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query account totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]decimal.Decimal)
	for rows.Next() {
		var accountID string
		var total decimal.Decimal
		if err := rows.Scan(&accountID, &total); err != nil {
			return nil, fmt.Errorf("failed to scan account total row: %w", err)
		}
		totals[accountID] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account total rows: %w", err)
	}
	return totals, nil
}

// ExpenseTotalsByCategory returns, per expense-polarity category id, the sum
// of Expense-kind rows. Stored expense amounts are negative, so the sums come
// back negative; presenting absolute values is the caller's concern.
func (r *PgxTransactionRepository) ExpenseTotalsByCategory(ctx context.Context) (map[string]decimal.Decimal, error) {
	query := `
		SELECT c.category_id, COALESCE(SUM(t.amount), 0)
		FROM categories c
		LEFT JOIN transactions t ON t.category_id = c.category_id AND t.kind = 'EXPENSE'
		WHERE c.is_income = FALSE
		GROUP BY c.category_id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]decimal.Decimal)
	for rows.Next() {
		var categoryID string
		var total decimal.Decimal
		if err := rows.Scan(&categoryID, &total); err != nil {
			return nil, fmt.Errorf("failed to scan expense total row: %w", err)
		}
		totals[categoryID] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense total rows: %w", err)
	}
	return totals, nil
}
