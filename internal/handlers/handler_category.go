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

// categoryHandler handles HTTP requests related to categories.
type categoryHandler struct {
	ledger portssvc.LedgerSvcFacade
}

func newCategoryHandler(ledger portssvc.LedgerSvcFacade) *categoryHandler {
	return &categoryHandler{ledger: ledger}
}

// registerCategoryRoutes registers routes related to categories.
func registerCategoryRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade) {
	h := newCategoryHandler(ledger)

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
	}
}

// createCategory godoc
// @Summary Create a new category
// @Description Creates a category with a fixed income/expense polarity
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Category name already exists"
// @Failure 500 {object} map[string]string "Failed to create category"
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	category, err := h.ledger.CreateCategory(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate category name", slog.String("category_name", req.Name))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create category in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// listCategories godoc
// @Summary List categories
// @Description Lists all categories, optionally filtered by polarity
// @Tags categories
// @Produce json
// @Param kind query string false "Polarity filter" Enums(income, expense)
// @Success 200 {array} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid query parameter"
// @Failure 500 {object} map[string]string "Failed to list categories"
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListCategoriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listCategories", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	var isIncome *bool
	switch params.Kind {
	case "income":
		v := true
		isIncome = &v
	case "expense":
		v := false
		isIncome = &v
	}

	categories, err := h.ledger.ListCategories(c.Request.Context(), isIncome)
	if err != nil {
		logger.Error("Failed to list categories", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCategoryResponse(categories))
}
