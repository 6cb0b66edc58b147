package repositories

import "context"

// UnitOfWork demarcates one atomic transaction and owns the repository
// instances valid during it. It is not reentrant and must not be shared
// across concurrent callers; each logical ledger operation opens its own.
type UnitOfWork interface {
	Accounts() AccountRepository
	Categories() CategoryRepository
	Transactions() TransactionRepository

	// Commit and Rollback exist for advanced callers. Normal flow goes
	// through TxRunner.WithinTx, which resolves the transaction on exit.
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TxRunner opens a unit of work around fn: it begins the underlying
// transaction, invokes fn, commits if fn returned nil and rolls back if fn
// returned an error or panicked, releasing the connection on every exit path.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, uow UnitOfWork) error) error
}
