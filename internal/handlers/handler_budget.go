package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/lifedash/finances/internal/core/ports/services"
	"github.com/lifedash/finances/internal/dto"
	"github.com/lifedash/finances/internal/middleware"
)

// budgetHandler handles HTTP requests related to budgets.
type budgetHandler struct {
	budgets portssvc.BudgetSvcFacade
}

func registerBudgetRoutes(rg *gin.RouterGroup, budgets portssvc.BudgetSvcFacade) {
	h := &budgetHandler{budgets: budgets}

	group := rg.Group("/budgets")
	{
		group.GET("", h.listBudgets)
		group.PUT("", h.setBudget)
		group.DELETE("", h.deleteBudget)
	}
}

// listBudgets returns all budget rows, or one month's rows when ?month= and
// ?year= are supplied.
func (h *budgetHandler) listBudgets(c *gin.Context) {
	ctx := c.Request.Context()

	if c.Query("month") != "" || c.Query("year") != "" {
		month, year, ok := monthYearFromQuery(c)
		if !ok {
			return
		}
		budgets, err := h.budgets.ListBudgetsForMonth(ctx, month, year)
		if err != nil {
			respondError(c, err, "Failed to list budgets")
			return
		}
		c.JSON(http.StatusOK, dto.ToListBudgetResponse(budgets))
		return
	}

	budgets, err := h.budgets.ListBudgets(ctx)
	if err != nil {
		respondError(c, err, "Failed to list budgets")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBudgetResponse(budgets))
}

func (h *budgetHandler) setBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	budget, err := h.budgets.SetBudget(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to set budget")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// deleteBudget removes the row keyed by ?category=&month=&year=.
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	categoryID := c.Query("category")
	if categoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category is required"})
		return
	}
	month, year, ok := monthYearFromQuery(c)
	if !ok {
		return
	}

	if err := h.budgets.DeleteBudget(c.Request.Context(), categoryID, month, year); err != nil {
		respondError(c, err, "Failed to delete budget")
		return
	}
	c.Status(http.StatusNoContent)
}
