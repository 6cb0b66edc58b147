package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/finledger/fin_ledger_app/internal/core/domain"
	portssvc "github.com/finledger/fin_ledger_app/internal/core/ports/services"
	"github.com/finledger/fin_ledger_app/internal/core/services"
	"github.com/finledger/fin_ledger_app/internal/dto"
)

// The reporting service is exercised against the same in-memory runner as the
// ledger service, through the real ledger implementation.
type ReportingServiceTestSuite struct {
	suite.Suite
	store     *memStore
	ledger    portssvc.LedgerSvcFacade
	reporting portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.store = newMemStore()
	suite.ledger = services.NewLedgerService(&memTxRunner{store: suite.store})
	suite.reporting = services.NewReportingService(suite.ledger)
}

func (suite *ReportingServiceTestSuite) TestSummary_EmptyLedger() {
	summary, err := suite.reporting.Summary(context.Background())
	suite.Require().NoError(err)
	suite.Empty(summary.Balances)
	suite.Empty(summary.Expenses)
}

func (suite *ReportingServiceTestSuite) TestSummary_CombinesBalancesAndExpenses() {
	ctx := context.Background()
	acc, err := suite.ledger.CreateAccount(ctx, dto.CreateAccountRequest{Name: "Checking"})
	suite.Require().NoError(err)
	income := true
	expense := false
	salary, err := suite.ledger.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "Salary", IsIncome: &income})
	suite.Require().NoError(err)
	groceries, err := suite.ledger.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "Groceries", IsIncome: &expense})
	suite.Require().NoError(err)

	_, err = suite.ledger.AddIncome(ctx, dto.AddMovementRequest{
		AccountID: acc.AccountID, Amount: decimal.NewFromInt(300), CategoryID: salary.CategoryID,
	})
	suite.Require().NoError(err)
	_, err = suite.ledger.AddExpense(ctx, dto.AddMovementRequest{
		AccountID: acc.AccountID, Amount: decimal.NewFromInt(120), CategoryID: groceries.CategoryID,
	})
	suite.Require().NoError(err)

	summary, err := suite.reporting.Summary(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(summary.Balances, 1)
	suite.Equal(acc.AccountID, summary.Balances[0].Account.AccountID)
	suite.True(summary.Balances[0].Balance.Equal(decimal.NewFromInt(180)))

	suite.Require().Len(summary.Expenses, 1)
	suite.Equal(groceries.CategoryID, summary.Expenses[0].Category.CategoryID)
	suite.True(summary.Expenses[0].Total.Equal(decimal.NewFromInt(120)))
}

func (suite *ReportingServiceTestSuite) TestSummary_PropagatesFailure() {
	failing := &failingLedger{LedgerSvcFacade: suite.ledger}
	reporting := services.NewReportingService(failing)

	_, err := reporting.Summary(context.Background())
	suite.Require().Error(err)
	suite.ErrorIs(err, errFailingLedger)
}

var errFailingLedger = errors.New("ledger unavailable")

type failingLedger struct {
	portssvc.LedgerSvcFacade
}

func (f *failingLedger) BalancesByAccount(ctx context.Context) ([]domain.AccountBalance, error) {
	return nil, errFailingLedger
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
