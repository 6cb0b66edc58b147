package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/finledger/fin_ledger_app/internal/apperrors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// EntityMapping describes how one entity kind maps onto its table. A generic
// repository is parameterized by these explicit mapping functions at
// construction instead of per-entity subclassing.
type EntityMapping[T any] struct {
	Table    string
	IDColumn string
	// Columns in select/insert order, id column included.
	Columns []string
	// ScanRow reads one row in Columns order into a domain entity.
	ScanRow func(row rowScanner) (T, error)
	// InsertArgs produces the insert arguments in Columns order.
	InsertArgs func(entity T) []any
	// ID extracts the identity; WithID returns a copy with identity set.
	ID     func(entity T) string
	WithID func(entity T, id string) T
}

// PgxRepository is the generic CRUD implementation over one table. It is
// bound to a DBTX, so the same code serves both pool-level access and
// repositories owned by a unit of work; it never commits on its own.
type PgxRepository[T any] struct {
	db      DBTX
	mapping EntityMapping[T]
}

// NewPgxRepository creates a repository for one entity kind bound to db.
func NewPgxRepository[T any](db DBTX, mapping EntityMapping[T]) *PgxRepository[T] {
	return &PgxRepository[T]{db: db, mapping: mapping}
}

// Add persists a new row, minting a UUID identity if the entity has none,
// and returns the entity with identity populated.
func (r *PgxRepository[T]) Add(ctx context.Context, entity T) (T, error) {
	if r.mapping.ID(entity) == "" {
		entity = r.mapping.WithID(entity, uuid.NewString())
	}

	placeholders := make([]string, len(r.mapping.Columns))
	for i := range r.mapping.Columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s);",
		r.mapping.Table,
		strings.Join(r.mapping.Columns, ", "),
		strings.Join(placeholders, ", "),
	)

	if _, err := r.db.Exec(ctx, query, r.mapping.InsertArgs(entity)...); err != nil {
		var zero T
		if mapped := mapPgError(err); errors.Is(mapped, apperrors.ErrDuplicate) {
			return zero, fmt.Errorf("%w: %s %s", apperrors.ErrDuplicate, r.mapping.Table, r.mapping.ID(entity))
		}
		return zero, fmt.Errorf("failed to insert into %s: %w", r.mapping.Table, err)
	}
	return entity, nil
}

// Get fetches one entity by identity, returning apperrors.ErrNotFound for a
// missing id.
func (r *PgxRepository[T]) Get(ctx context.Context, id string) (*T, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1;",
		strings.Join(r.mapping.Columns, ", "), r.mapping.Table, r.mapping.IDColumn,
	)

	entity, err := r.mapping.ScanRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s %s: %w", r.mapping.Table, id, err)
	}
	return &entity, nil
}

// List returns all rows of the table.
func (r *PgxRepository[T]) List(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s;", strings.Join(r.mapping.Columns, ", "), r.mapping.Table)
	return r.queryMany(ctx, query)
}

// Update patches the named columns of one row and returns the updated entity.
// Not exercised by the ledger's business operations; kept for contract
// completeness.
func (r *PgxRepository[T]) Update(ctx context.Context, id string, fields map[string]any) (*T, error) {
	if len(fields) == 0 {
		return r.Get(ctx, id)
	}

	columns := make([]string, 0, len(fields))
	for col := range fields {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	assignments := make([]string, len(columns))
	args := make([]any, 0, len(columns)+1)
	args = append(args, id)
	for i, col := range columns {
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+2)
		args = append(args, fields[col])
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = $1;",
		r.mapping.Table, strings.Join(assignments, ", "), r.mapping.IDColumn,
	)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update %s %s: %w", r.mapping.Table, id, mapPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.Get(ctx, id)
}

// Delete removes one row by identity and reports whether anything was removed.
// Not exercised by the ledger's business operations.
func (r *PgxRepository[T]) Delete(ctx context.Context, id string) (bool, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1;", r.mapping.Table, r.mapping.IDColumn)
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete %s %s: %w", r.mapping.Table, id, err)
	}
	return tag.RowsAffected() > 0, nil
}

// queryMany runs query and scans every row with the entity mapping.
func (r *PgxRepository[T]) queryMany(ctx context.Context, query string, args ...any) ([]T, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.mapping.Table, err)
	}
	defer rows.Close()

	entities := []T{}
	for rows.Next() {
		entity, err := r.mapping.ScanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", r.mapping.Table, err)
		}
		entities = append(entities, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", r.mapping.Table, err)
	}
	return entities, nil
}
