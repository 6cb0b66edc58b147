package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finledger/fin_ledger_app/internal/apperrors"
	portssvc "github.com/finledger/fin_ledger_app/internal/core/ports/services"
	"github.com/finledger/fin_ledger_app/internal/dto"
	"github.com/finledger/fin_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles the income/expense/transfer operations.
type transactionHandler struct {
	ledger portssvc.LedgerSvcFacade
}

func newTransactionHandler(ledger portssvc.LedgerSvcFacade) *transactionHandler {
	return &transactionHandler{ledger: ledger}
}

// registerTransactionRoutes registers routes recording ledger movements.
func registerTransactionRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade) {
	h := newTransactionHandler(ledger)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("/income", h.addIncome)
		transactions.POST("/expense", h.addExpense)
		transactions.POST("/transfer", h.transfer)
	}
}

// movementStatus maps ledger business errors to HTTP statuses. Every error
// here is a recoverable, per-operation failure.
func movementStatus(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInvalidAmount),
		errors.Is(err, apperrors.ErrSameAccount),
		errors.Is(err, apperrors.ErrCategoryMismatch),
		errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrAccountNotFound),
		errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// addIncome godoc
// @Summary Record an income
// @Description Records a positive movement against an income category
// @Tags transactions
// @Accept json
// @Produce json
// @Param movement body dto.AddMovementRequest true "Income details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid amount or category mismatch"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to record income"
// @Router /transactions/income [post]
func (h *transactionHandler) addIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for addIncome", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledger.AddIncome(c.Request.Context(), req)
	if err != nil {
		status := movementStatus(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to record income", slog.String("error", err.Error()))
			c.JSON(status, gin.H{"error": "Failed to record income"})
			return
		}
		logger.Warn("Rejected income", slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// addExpense godoc
// @Summary Record an expense
// @Description Records an expense; storage keeps the negated amount
// @Tags transactions
// @Accept json
// @Produce json
// @Param movement body dto.AddMovementRequest true "Expense details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid amount or category mismatch"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to record expense"
// @Router /transactions/expense [post]
func (h *transactionHandler) addExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for addExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledger.AddExpense(c.Request.Context(), req)
	if err != nil {
		status := movementStatus(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to record expense", slog.String("error", err.Error()))
			c.JSON(status, gin.H{"error": "Failed to record expense"})
			return
		}
		logger.Warn("Rejected expense", slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// transfer godoc
// @Summary Transfer between accounts
// @Description Atomically records the outgoing and incoming legs of a transfer
// @Tags transactions
// @Accept json
// @Produce json
// @Param transfer body dto.TransferRequest true "Transfer details"
// @Success 201 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string "Invalid amount or identical accounts"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to transfer"
// @Router /transactions/transfer [post]
func (h *transactionHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	outgoing, incoming, err := h.ledger.Transfer(c.Request.Context(), req)
	if err != nil {
		status := movementStatus(err)
		if status == http.StatusInternalServerError {
			logger.Error("Failed to transfer", slog.String("error", err.Error()))
			c.JSON(status, gin.H{"error": "Failed to transfer"})
			return
		}
		logger.Warn("Rejected transfer", slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.TransferResponse{
		Outgoing: dto.ToTransactionResponse(outgoing),
		Incoming: dto.ToTransactionResponse(incoming),
	})
}
