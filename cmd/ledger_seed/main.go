package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/bxcodec/faker/v3"
	"github.com/shopspring/decimal"

	"github.com/finledger/fin_ledger_app/internal/core/domain"
	portssvc "github.com/finledger/fin_ledger_app/internal/core/ports/services"
	"github.com/finledger/fin_ledger_app/internal/core/services"
	"github.com/finledger/fin_ledger_app/internal/dto"
	"github.com/finledger/fin_ledger_app/internal/platform/config"
	"github.com/finledger/fin_ledger_app/internal/platform/database"
	"github.com/finledger/fin_ledger_app/internal/repositories/database/pgsql"
)

// Seeds a small demo data set through the ledger service. Safe to run
// repeatedly: it is a no-op once any account exists.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()

	container := services.NewServiceContainer(pgsql.NewTxRunner(dbPool))
	if err := seed(ctx, logger, container.Ledger); err != nil {
		logger.Error("Seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func seed(ctx context.Context, logger *slog.Logger, ledger portssvc.LedgerSvcFacade) error {
	existing, err := ledger.ListAccounts(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Info("Accounts already present, skipping seed", slog.Int("count", len(existing)))
		return nil
	}

	checking, err := ledger.CreateAccount(ctx, dto.CreateAccountRequest{Name: "Checking", CurrencyCode: domain.DefaultCurrencyCode})
	if err != nil {
		return err
	}
	savings, err := ledger.CreateAccount(ctx, dto.CreateAccountRequest{Name: "Savings", CurrencyCode: "USD"})
	if err != nil {
		return err
	}

	income := true
	expense := false
	salary, err := ledger.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "Salary", IsIncome: &income})
	if err != nil {
		return err
	}
	groceries, err := ledger.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "Groceries", IsIncome: &expense})
	if err != nil {
		return err
	}
	transport, err := ledger.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "Transport", IsIncome: &expense})
	if err != nil {
		return err
	}

	if _, err := ledger.AddIncome(ctx, dto.AddMovementRequest{
		AccountID:   checking.AccountID,
		Amount:      decimal.NewFromInt(45000),
		CategoryID:  salary.CategoryID,
		Description: faker.Sentence(),
	}); err != nil {
		return err
	}
	if _, err := ledger.AddExpense(ctx, dto.AddMovementRequest{
		AccountID:   checking.AccountID,
		Amount:      decimal.NewFromInt(1200),
		CategoryID:  groceries.CategoryID,
		Description: faker.Word(),
	}); err != nil {
		return err
	}
	if _, err := ledger.AddExpense(ctx, dto.AddMovementRequest{
		AccountID:   checking.AccountID,
		Amount:      decimal.NewFromInt(280),
		CategoryID:  transport.CategoryID,
		Description: faker.Word(),
	}); err != nil {
		return err
	}
	if _, _, err := ledger.Transfer(ctx, dto.TransferRequest{
		FromAccountID: checking.AccountID,
		ToAccountID:   savings.AccountID,
		Amount:        decimal.NewFromInt(200),
		Description:   faker.Sentence(),
	}); err != nil {
		return err
	}

	logger.Info("Demo data seeded",
		slog.String("checking_id", checking.AccountID),
		slog.String("savings_id", savings.AccountID))
	return nil
}
