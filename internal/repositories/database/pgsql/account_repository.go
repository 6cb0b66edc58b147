package pgsql

import (
	"github.com/finledger/fin_ledger_app/internal/core/domain"
	portsrepo "github.com/finledger/fin_ledger_app/internal/core/ports/repositories"
	"github.com/finledger/fin_ledger_app/internal/models"
)

// Helper to convert domain.Account to models.Account for DB storage.
func toModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:    d.AccountID,
		Name:         d.Name,
		CurrencyCode: d.CurrencyCode,
		CreatedAt:    d.CreatedAt,
	}
}

// Helper to convert models.Account from DB to domain.Account.
func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:    m.AccountID,
		Name:         m.Name,
		CurrencyCode: m.CurrencyCode,
		CreatedAt:    m.CreatedAt,
	}
}

func accountMapping() EntityMapping[domain.Account] {
	return EntityMapping[domain.Account]{
		Table:    "accounts",
		IDColumn: "account_id",
		Columns:  []string{"account_id", "name", "currency_code", "created_at"},
		ScanRow: func(row rowScanner) (domain.Account, error) {
			var m models.Account
			if err := row.Scan(&m.AccountID, &m.Name, &m.CurrencyCode, &m.CreatedAt); err != nil {
				return domain.Account{}, err
			}
			return toDomainAccount(m), nil
		},
		InsertArgs: func(d domain.Account) []any {
			m := toModelAccount(d)
			return []any{m.AccountID, m.Name, m.CurrencyCode, m.CreatedAt}
		},
		ID: func(d domain.Account) string { return d.AccountID },
		WithID: func(d domain.Account, id string) domain.Account {
			d.AccountID = id
			return d
		},
	}
}

// PgxAccountRepository persists accounts through the generic repository.
type PgxAccountRepository struct {
	*PgxRepository[domain.Account]
}

// newPgxAccountRepository creates a repository for account data bound to db.
func newPgxAccountRepository(db DBTX) portsrepo.AccountRepository {
	return &PgxAccountRepository{NewPgxRepository(db, accountMapping())}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)
