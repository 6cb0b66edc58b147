package pgsql

import (
	"context"

	portsrepo "github.com/finledger/fin_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxUnitOfWork binds the three entity repositories to one pgx transaction.
// Every repository operation performed through it runs inside that
// transaction; nothing is durable until Commit.
type pgxUnitOfWork struct {
	tx           pgx.Tx
	accounts     portsrepo.AccountRepository
	categories   portsrepo.CategoryRepository
	transactions portsrepo.TransactionRepository
}

var _ portsrepo.UnitOfWork = (*pgxUnitOfWork)(nil)

func newPgxUnitOfWork(tx pgx.Tx) *pgxUnitOfWork {
	return &pgxUnitOfWork{
		tx:           tx,
		accounts:     newPgxAccountRepository(tx),
		categories:   newPgxCategoryRepository(tx),
		transactions: newPgxTransactionRepository(tx),
	}
}

func (u *pgxUnitOfWork) Accounts() portsrepo.AccountRepository { return u.accounts }

func (u *pgxUnitOfWork) Categories() portsrepo.CategoryRepository { return u.categories }

func (u *pgxUnitOfWork) Transactions() portsrepo.TransactionRepository { return u.transactions }

func (u *pgxUnitOfWork) Commit(ctx context.Context) error { return u.tx.Commit(ctx) }

func (u *pgxUnitOfWork) Rollback(ctx context.Context) error { return u.tx.Rollback(ctx) }

// TxRunner opens one unit of work per call over a pgx connection pool.
type TxRunner struct {
	base BaseRepository
}

var _ portsrepo.TxRunner = (*TxRunner)(nil)

// NewTxRunner creates the unit-of-work runner backing the ledger service.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{base: BaseRepository{Pool: pool}}
}

// WithinTx begins a transaction, builds a unit of work bound to it and
// invokes fn. The transaction commits iff fn returns nil; any error or panic
// rolls it back before the connection is released.
func (r *TxRunner) WithinTx(ctx context.Context, fn func(ctx context.Context, uow portsrepo.UnitOfWork) error) error {
	tx, err := r.base.Begin(ctx)
	if err != nil {
		return err
	}
	// No-op once the transaction is committed.
	defer r.base.Rollback(ctx, tx)

	if err := fn(ctx, newPgxUnitOfWork(tx)); err != nil {
		return err
	}
	return r.base.Commit(ctx, tx)
}
