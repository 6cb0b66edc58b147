package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finledger/fin_ledger_app/internal/apperrors"
	"github.com/finledger/fin_ledger_app/internal/core/domain"
	"github.com/finledger/fin_ledger_app/internal/dto"
)

// MockLedgerService is a mock implementation of portssvc.LedgerSvcFacade.
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	acc, _ := args.Get(0).(*domain.Account)
	return acc, args.Error(1)
}

func (m *MockLedgerService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, req)
	cat, _ := args.Get(0).(*domain.Category)
	return cat, args.Error(1)
}

func (m *MockLedgerService) AddIncome(ctx context.Context, req dto.AddMovementRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	txn, _ := args.Get(0).(*domain.Transaction)
	return txn, args.Error(1)
}

func (m *MockLedgerService) AddExpense(ctx context.Context, req dto.AddMovementRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	txn, _ := args.Get(0).(*domain.Transaction)
	return txn, args.Error(1)
}

func (m *MockLedgerService) Transfer(ctx context.Context, req dto.TransferRequest) (*domain.Transaction, *domain.Transaction, error) {
	args := m.Called(ctx, req)
	outgoing, _ := args.Get(0).(*domain.Transaction)
	incoming, _ := args.Get(1).(*domain.Transaction)
	return outgoing, incoming, args.Error(2)
}

func (m *MockLedgerService) AccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	balance, _ := args.Get(0).(decimal.Decimal)
	return balance, args.Error(1)
}

func (m *MockLedgerService) BalancesByAccount(ctx context.Context) ([]domain.AccountBalance, error) {
	args := m.Called(ctx)
	balances, _ := args.Get(0).([]domain.AccountBalance)
	return balances, args.Error(1)
}

func (m *MockLedgerService) ExpenseByCategory(ctx context.Context) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx)
	report, _ := args.Get(0).([]domain.CategoryTotal)
	return report, args.Error(1)
}

func (m *MockLedgerService) TransactionsForAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID)
	txns, _ := args.Get(0).([]domain.Transaction)
	return txns, args.Error(1)
}

func (m *MockLedgerService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	accounts, _ := args.Get(0).([]domain.Account)
	return accounts, args.Error(1)
}

func (m *MockLedgerService) ListCategories(ctx context.Context, isIncome *bool) ([]domain.Category, error) {
	args := m.Called(ctx, isIncome)
	categories, _ := args.Get(0).([]domain.Category)
	return categories, args.Error(1)
}

type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockLedgerService
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockLedgerService)
	suite.router = gin.New()
	registerTransactionRoutes(suite.router.Group("/api/v1"), suite.mockService)
}

func (suite *TransactionHandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	jsonBody, err := json.Marshal(body)
	suite.Require().NoError(err)

	req, err := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(jsonBody))
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TransactionHandlerTestSuite) TestAddIncome_Success() {
	expected := &domain.Transaction{
		TransactionID: "txn-1",
		Kind:          domain.Income,
		AccountID:     "acc-1",
		Amount:        decimal.NewFromInt(1000),
		CategoryID:    "cat-1",
		OccurredAt:    time.Now().UTC(),
	}
	suite.mockService.On("AddIncome", mock.Anything, mock.AnythingOfType("dto.AddMovementRequest")).
		Return(expected, nil).Once()

	w := suite.postJSON("/api/v1/transactions/income", dto.AddMovementRequest{
		AccountID:  "acc-1",
		Amount:     decimal.NewFromInt(1000),
		CategoryID: "cat-1",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("txn-1", resp.TransactionID)
	suite.Equal(string(domain.Income), resp.Kind)
	suite.True(resp.Amount.Equal(decimal.NewFromInt(1000)))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestAddIncome_InvalidAmount() {
	suite.mockService.On("AddIncome", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: got -5", apperrors.ErrInvalidAmount)).Once()

	w := suite.postJSON("/api/v1/transactions/income", dto.AddMovementRequest{
		AccountID:  "acc-1",
		Amount:     decimal.NewFromInt(-5),
		CategoryID: "cat-1",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "error")
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestAddIncome_AccountNotFound() {
	suite.mockService.On("AddIncome", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: acc-missing", apperrors.ErrAccountNotFound)).Once()

	w := suite.postJSON("/api/v1/transactions/income", dto.AddMovementRequest{
		AccountID:  "acc-missing",
		Amount:     decimal.NewFromInt(10),
		CategoryID: "cat-1",
	})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestAddIncome_MissingFields() {
	w := suite.postJSON("/api/v1/transactions/income", gin.H{"amount": "10"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "AddIncome")
}

func (suite *TransactionHandlerTestSuite) TestAddExpense_CategoryMismatch() {
	suite.mockService.On("AddExpense", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: category cat-1 is not an expense category", apperrors.ErrCategoryMismatch)).Once()

	w := suite.postJSON("/api/v1/transactions/expense", dto.AddMovementRequest{
		AccountID:  "acc-1",
		Amount:     decimal.NewFromInt(10),
		CategoryID: "cat-1",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "category")
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestAddExpense_StorageFailure() {
	suite.mockService.On("AddExpense", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewAppError(http.StatusInternalServerError, "insert failed", nil)).Once()

	w := suite.postJSON("/api/v1/transactions/expense", dto.AddMovementRequest{
		AccountID:  "acc-1",
		Amount:     decimal.NewFromInt(10),
		CategoryID: "cat-1",
	})

	suite.Equal(http.StatusInternalServerError, w.Code)
	// Internal details must not leak to the client.
	suite.NotContains(w.Body.String(), "insert failed")
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestTransfer_Success() {
	outgoing := &domain.Transaction{
		TransactionID: "txn-out",
		Kind:          domain.Transfer,
		AccountID:     "acc-1",
		ToAccountID:   "acc-2",
		Amount:        decimal.NewFromInt(-200),
		OccurredAt:    time.Now().UTC(),
	}
	incoming := &domain.Transaction{
		TransactionID: "txn-in",
		Kind:          domain.Transfer,
		AccountID:     "acc-2",
		ToAccountID:   "acc-1",
		Amount:        decimal.NewFromInt(200),
		OccurredAt:    outgoing.OccurredAt,
	}
	suite.mockService.On("Transfer", mock.Anything, mock.AnythingOfType("dto.TransferRequest")).
		Return(outgoing, incoming, nil).Once()

	w := suite.postJSON("/api/v1/transactions/transfer", dto.TransferRequest{
		FromAccountID: "acc-1",
		ToAccountID:   "acc-2",
		Amount:        decimal.NewFromInt(200),
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransferResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("txn-out", resp.Outgoing.TransactionID)
	suite.Equal("txn-in", resp.Incoming.TransactionID)
	suite.True(resp.Outgoing.Amount.Equal(decimal.NewFromInt(-200)))
	suite.True(resp.Incoming.Amount.Equal(decimal.NewFromInt(200)))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestTransfer_SameAccount() {
	suite.mockService.On("Transfer", mock.Anything, mock.Anything).
		Return(nil, nil, fmt.Errorf("%w: acc-1", apperrors.ErrSameAccount)).Once()

	w := suite.postJSON("/api/v1/transactions/transfer", dto.TransferRequest{
		FromAccountID: "acc-1",
		ToAccountID:   "acc-1",
		Amount:        decimal.NewFromInt(10),
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestTransfer_InvalidJSON() {
	req, err := http.NewRequest(http.MethodPost, "/api/v1/transactions/transfer", bytes.NewBufferString("{not json"))
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Transfer")
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
