package pgsql

import (
	"context"
	"fmt"

	"github.com/finledger/fin_ledger_app/internal/core/domain"
	portsrepo "github.com/finledger/fin_ledger_app/internal/core/ports/repositories"
	"github.com/finledger/fin_ledger_app/internal/models"
)

func toModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID: d.CategoryID,
		Name:       d.Name,
		IsIncome:   d.IsIncome,
	}
}

func toDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID: m.CategoryID,
		Name:       m.Name,
		IsIncome:   m.IsIncome,
	}
}

func categoryMapping() EntityMapping[domain.Category] {
	return EntityMapping[domain.Category]{
		Table:    "categories",
		IDColumn: "category_id",
		Columns:  []string{"category_id", "name", "is_income"},
		ScanRow: func(row rowScanner) (domain.Category, error) {
			var m models.Category
			if err := row.Scan(&m.CategoryID, &m.Name, &m.IsIncome); err != nil {
				return domain.Category{}, err
			}
			return toDomainCategory(m), nil
		},
		InsertArgs: func(d domain.Category) []any {
			m := toModelCategory(d)
			return []any{m.CategoryID, m.Name, m.IsIncome}
		},
		ID: func(d domain.Category) string { return d.CategoryID },
		WithID: func(d domain.Category, id string) domain.Category {
			d.CategoryID = id
			return d
		},
	}
}

// PgxCategoryRepository persists categories through the generic repository.
type PgxCategoryRepository struct {
	*PgxRepository[domain.Category]
}

// newPgxCategoryRepository creates a repository for category data bound to db.
func newPgxCategoryRepository(db DBTX) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{NewPgxRepository(db, categoryMapping())}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

// ListByPolarity returns only income (true) or only expense (false) categories.
func (r *PgxCategoryRepository) ListByPolarity(ctx context.Context, isIncome bool) ([]domain.Category, error) {
	query := `
		SELECT category_id, name, is_income
		FROM categories
		WHERE is_income = $1
		ORDER BY name;
	`
	categories, err := r.queryMany(ctx, query, isIncome)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories by polarity: %w", err)
	}
	return categories, nil
}
