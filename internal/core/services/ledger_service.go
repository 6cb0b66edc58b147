package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finledger/fin_ledger_app/internal/apperrors"
	"github.com/finledger/fin_ledger_app/internal/core/domain"
	portsrepo "github.com/finledger/fin_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/finledger/fin_ledger_app/internal/core/ports/services"
	"github.com/finledger/fin_ledger_app/internal/dto"
)

// balanceScale is the rounding applied to every derived balance and report value.
const balanceScale = 2

// ledgerService enforces the financial business rules. Every operation opens
// exactly one unit of work; validation failures short-circuit before any
// write, and storage failures roll the whole unit of work back.
type ledgerService struct {
	BaseService
	runner portsrepo.TxRunner
}

// NewLedgerService creates the ledger service on top of a unit-of-work runner.
func NewLedgerService(runner portsrepo.TxRunner) portssvc.LedgerSvcFacade {
	return &ledgerService{runner: runner}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// CreateAccount persists a new account. Name uniqueness is a storage
// constraint, not re-validated here; a violation surfaces as ErrDuplicate.
func (s *ledgerService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	currency := req.CurrencyCode
	if currency == "" {
		currency = domain.DefaultCurrencyCode
	}

	account := domain.Account{
		AccountID:    uuid.NewString(),
		Name:         req.Name,
		CurrencyCode: currency,
		CreatedAt:    time.Now().UTC(),
	}

	err := s.runner.WithinTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		saved, err := uow.Accounts().Add(ctx, account)
		if err != nil {
			return err
		}
		account = saved
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create account", slog.String("account_name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("account_name", account.Name))
	return &account, nil
}

// CreateCategory persists a new category with its polarity fixed forever.
func (s *ledgerService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       req.Name,
		IsIncome:   req.IsIncome != nil && *req.IsIncome,
	}

	err := s.runner.WithinTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		saved, err := uow.Categories().Add(ctx, category)
		if err != nil {
			return err
		}
		category = saved
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create category", slog.String("category_name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID), slog.Bool("is_income", category.IsIncome))
	return &category, nil
}

// AddIncome records one positive Income row against an income category.
func (s *ledgerService) AddIncome(ctx context.Context, req dto.AddMovementRequest) (*domain.Transaction, error) {
	return s.addMovement(ctx, req, domain.Income)
}

// AddExpense records one Expense row storing the negated user amount against
// an expense category.
func (s *ledgerService) AddExpense(ctx context.Context, req dto.AddMovementRequest) (*domain.Transaction, error) {
	return s.addMovement(ctx, req, domain.Expense)
}

// addMovement is the shared income/expense path. Validation order is fixed:
// amount sign first, then account existence, then category polarity. The
// first failing check aborts without touching storage.
func (s *ledgerService) addMovement(ctx context.Context, req dto.AddMovementRequest, kind domain.TransactionKind) (*domain.Transaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: got %s", apperrors.ErrInvalidAmount, req.Amount)
	}

	amount := req.Amount
	if kind == domain.Expense {
		amount = amount.Neg()
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Kind:          kind,
		AccountID:     req.AccountID,
		Amount:        amount,
		Description:   req.Description,
		OccurredAt:    time.Now().UTC(),
		CategoryID:    req.CategoryID,
	}

	err := s.runner.WithinTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		if err := s.requireAccount(ctx, uow, req.AccountID); err != nil {
			return err
		}
		if err := s.requireCategory(ctx, uow, req.CategoryID, kind == domain.Income); err != nil {
			return err
		}

		saved, err := uow.Transactions().Add(ctx, txn)
		if err != nil {
			return err
		}
		txn = saved
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add movement",
			slog.String("kind", string(kind)),
			slog.String("account_id", req.AccountID),
			slog.String("category_id", req.CategoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Movement recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("kind", string(kind)),
		slog.String("account_id", txn.AccountID))
	return &txn, nil
}

// Transfer atomically records the outgoing and incoming legs between two
// distinct accounts. Both rows are written in the same unit of work; there is
// no state where only one leg exists. Validation order: amount, same-account,
// account existence.
func (s *ledgerService) Transfer(ctx context.Context, req dto.TransferRequest) (*domain.Transaction, *domain.Transaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, fmt.Errorf("%w: got %s", apperrors.ErrInvalidAmount, req.Amount)
	}
	if req.FromAccountID == req.ToAccountID {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrSameAccount, req.FromAccountID)
	}

	now := time.Now().UTC()
	outgoing := domain.Transaction{
		TransactionID: uuid.NewString(),
		Kind:          domain.Transfer,
		AccountID:     req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        req.Amount.Neg(),
		Description:   req.Description,
		OccurredAt:    now,
	}
	incoming := domain.Transaction{
		TransactionID: uuid.NewString(),
		Kind:          domain.Transfer,
		AccountID:     req.ToAccountID,
		ToAccountID:   req.FromAccountID,
		Amount:        req.Amount,
		Description:   req.Description,
		OccurredAt:    now,
	}

	err := s.runner.WithinTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		if err := s.requireAccount(ctx, uow, req.FromAccountID); err != nil {
			return err
		}
		if err := s.requireAccount(ctx, uow, req.ToAccountID); err != nil {
			return err
		}

		savedOut, err := uow.Transactions().Add(ctx, outgoing)
		if err != nil {
			return err
		}
		savedIn, err := uow.Transactions().Add(ctx, incoming)
		if err != nil {
			return err
		}
		outgoing, incoming = savedOut, savedIn
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to transfer",
			slog.String("from_account_id", req.FromAccountID),
			slog.String("to_account_id", req.ToAccountID))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Transfer recorded",
		slog.String("outgoing_id", outgoing.TransactionID),
		slog.String("incoming_id", incoming.TransactionID))
	return &outgoing, &incoming, nil
}

// AccountBalance sums the account's rows rounded to 2 decimal places. An
// account with no rows yields zero.
func (s *ledgerService) AccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	balance := decimal.Zero
	err := s.runner.WithinTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		sum, err := uow.Transactions().SumByAccount(ctx, accountID)
		if err != nil {
			return err
		}
		balance = sum.Round(balanceScale)
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

// BalancesByAccount returns one entry per existing account in listing order,
// pairing it with its derived balance.
func (s *ledgerService) BalancesByAccount(ctx context.Context) ([]domain.AccountBalance, error) {
	var balances []domain.AccountBalance
	err := s.runner.WithinTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		accounts, err := uow.Accounts().List(ctx)
		if err != nil {
			return err
		}
		totals, err := uow.Transactions().TotalsByAccount(ctx)
		if err != nil {
			return err
		}

		balances = make([]domain.AccountBalance, len(accounts))
		for i, acc := range accounts {
			total := totals[acc.AccountID] // zero value when the account has no rows
			balances[i] = domain.AccountBalance{Account: acc, Balance: total.Round(balanceScale)}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return balances, nil
}

// ExpenseByCategory reports the absolute spend per expense category. Only
// Expense-kind rows count; values are always non-negative.
func (s *ledgerService) ExpenseByCategory(ctx context.Context) ([]domain.CategoryTotal, error) {
	var report []domain.CategoryTotal
	err := s.runner.WithinTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		categories, err := uow.Categories().ListByPolarity(ctx, false)
		if err != nil {
			return err
		}
		totals, err := uow.Transactions().ExpenseTotalsByCategory(ctx)
		if err != nil {
			return err
		}

		report = make([]domain.CategoryTotal, len(categories))
		for i, cat := range categories {
			total := totals[cat.CategoryID]
			report[i] = domain.CategoryTotal{Category: cat, Total: total.Abs().Round(balanceScale)}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// TransactionsForAccount returns the account's ledger rows in occurrence order.
func (s *ledgerService) TransactionsForAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	err := s.runner.WithinTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		listed, err := uow.Transactions().ListByAccount(ctx, accountID)
		if err != nil {
			return err
		}
		txns = listed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txns, nil
}

// ListAccounts returns all accounts.
func (s *ledgerService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	err := s.runner.WithinTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		listed, err := uow.Accounts().List(ctx)
		if err != nil {
			return err
		}
		accounts = listed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// ListCategories returns all categories, or only one polarity when isIncome
// is non-nil.
func (s *ledgerService) ListCategories(ctx context.Context, isIncome *bool) ([]domain.Category, error) {
	var categories []domain.Category
	err := s.runner.WithinTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		var listed []domain.Category
		var err error
		if isIncome == nil {
			listed, err = uow.Categories().List(ctx)
		} else {
			listed, err = uow.Categories().ListByPolarity(ctx, *isIncome)
		}
		if err != nil {
			return err
		}
		categories = listed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// requireAccount resolves an account id or fails with ErrAccountNotFound.
func (s *ledgerService) requireAccount(ctx context.Context, uow portsrepo.UnitOfWork, accountID string) error {
	if _, err := uow.Accounts().Get(ctx, accountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, accountID)
		}
		return err
	}
	return nil
}

// requireCategory resolves a category id and checks its polarity; both a
// missing id and a wrong polarity fail with ErrCategoryMismatch.
func (s *ledgerService) requireCategory(ctx context.Context, uow portsrepo.UnitOfWork, categoryID string, wantIncome bool) error {
	category, err := uow.Categories().Get(ctx, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: %s", apperrors.ErrCategoryMismatch, categoryID)
		}
		return err
	}
	if category.IsIncome != wantIncome {
		return fmt.Errorf("%w: category %s is not an %s category", apperrors.ErrCategoryMismatch, categoryID, polarityName(wantIncome))
	}
	return nil
}

func polarityName(isIncome bool) string {
	if isIncome {
		return "income"
	}
	return "expense"
}
