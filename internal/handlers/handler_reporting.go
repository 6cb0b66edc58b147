package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/finledger/fin_ledger_app/internal/core/ports/services"
	"github.com/finledger/fin_ledger_app/internal/dto"
	"github.com/finledger/fin_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the derived, recompute-on-read reports.
type reportingHandler struct {
	reporting portssvc.ReportingSvcFacade
}

func newReportingHandler(reporting portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reporting: reporting}
}

// registerReportingRoutes registers the report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reporting portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reporting)

	reports := rg.Group("/reports")
	{
		reports.GET("/balances", h.balancesByAccount)
		reports.GET("/expenses-by-category", h.expenseByCategory)
		reports.GET("/summary", h.summary)
	}
}

// balancesByAccount godoc
// @Summary Balances by account
// @Description Returns one derived balance per existing account
// @Tags reports
// @Produce json
// @Success 200 {array} dto.BalanceRow
// @Failure 500 {object} map[string]string "Failed to compute balances"
// @Router /reports/balances [get]
func (h *reportingHandler) balancesByAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	balances, err := h.reporting.BalancesByAccount(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute balances report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balances"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceRows(balances))
}

// expenseByCategory godoc
// @Summary Expense totals by category
// @Description Returns the absolute spend per expense category
// @Tags reports
// @Produce json
// @Success 200 {array} dto.ExpenseRow
// @Failure 500 {object} map[string]string "Failed to compute expense totals"
// @Router /reports/expenses-by-category [get]
func (h *reportingHandler) expenseByCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expenses, err := h.reporting.ExpenseByCategory(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute expense report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute expense totals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseRows(expenses))
}

// summary godoc
// @Summary Combined ledger summary
// @Description Returns balances by account and expense totals in one payload
// @Tags reports
// @Produce json
// @Success 200 {object} dto.SummaryResponse
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /reports/summary [get]
func (h *reportingHandler) summary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reporting.Summary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute summary report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.SummaryResponse{
		Balances: dto.ToBalanceRows(summary.Balances),
		Expenses: dto.ToExpenseRows(summary.Expenses),
	})
}
