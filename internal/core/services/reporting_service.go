package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finledger/fin_ledger_app/internal/core/domain"
	portssvc "github.com/finledger/fin_ledger_app/internal/core/ports/services"
)

// reportingService is pure read-composition over the ledger service's query
// operations. Nothing is cached; every call recomputes from current rows.
type reportingService struct {
	BaseService
	ledger portssvc.LedgerSvcFacade
}

// NewReportingService creates the reporting service over the ledger read paths.
func NewReportingService(ledger portssvc.LedgerSvcFacade) portssvc.ReportingSvcFacade {
	return &reportingService{ledger: ledger}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) BalancesByAccount(ctx context.Context) ([]domain.AccountBalance, error) {
	return s.ledger.BalancesByAccount(ctx)
}

func (s *reportingService) ExpenseByCategory(ctx context.Context) ([]domain.CategoryTotal, error) {
	return s.ledger.ExpenseByCategory(ctx)
}

// Summary combines account balances and expense totals into one payload.
func (s *reportingService) Summary(ctx context.Context) (*domain.LedgerSummary, error) {
	balances, err := s.ledger.BalancesByAccount(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute balances for summary")
		return nil, fmt.Errorf("failed to compute balances: %w", err)
	}

	expenses, err := s.ledger.ExpenseByCategory(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute expense totals for summary")
		return nil, fmt.Errorf("failed to compute expense totals: %w", err)
	}

	s.LogDebug(ctx, "Summary generated",
		slog.Int("account_count", len(balances)),
		slog.Int("expense_category_count", len(expenses)))
	return &domain.LedgerSummary{Balances: balances, Expenses: expenses}, nil
}
