package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/lifedash/finances/internal/core/ports/services"
	"github.com/lifedash/finances/internal/dto"
)

// reportingHandler handles HTTP requests for derived views.
type reportingHandler struct {
	reporting portssvc.ReportingSvcFacade
}

func registerReportingRoutes(rg *gin.RouterGroup, reporting portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reporting: reporting}

	rg.GET("/summary", h.getMonthlySummary)
	rg.GET("/balance", h.getTotalBalance)
	rg.GET("/spending-by-category", h.getSpendingByCategory)
	rg.GET("/income-by-category", h.getIncomeByCategory)
}

// getMonthlySummary computes the summary for ?month=&year=, scoped to one
// account when ?account= is supplied.
func (h *reportingHandler) getMonthlySummary(c *gin.Context) {
	month, year, ok := monthYearFromQuery(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if accountID := c.Query("account"); accountID != "" {
		summary, err := h.reporting.AccountMonthlySummary(ctx, accountID, month, year)
		if err != nil {
			respondError(c, err, "Failed to compute summary")
			return
		}
		c.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(summary))
		return
	}

	summary, err := h.reporting.MonthlySummary(ctx, month, year)
	if err != nil {
		respondError(c, err, "Failed to compute summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(summary))
}

func (h *reportingHandler) getTotalBalance(c *gin.Context) {
	balance, err := h.reporting.TotalBalance(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute total balance")
		return
	}
	c.JSON(http.StatusOK, dto.TotalBalanceResponse{Balance: balance})
}

func (h *reportingHandler) getSpendingByCategory(c *gin.Context) {
	month, year, ok := monthYearFromQuery(c)
	if !ok {
		return
	}

	totals, err := h.reporting.SpendingByCategory(c.Request.Context(), month, year)
	if err != nil {
		respondError(c, err, "Failed to compute spending by category")
		return
	}
	c.JSON(http.StatusOK, totals)
}

func (h *reportingHandler) getIncomeByCategory(c *gin.Context) {
	month, year, ok := monthYearFromQuery(c)
	if !ok {
		return
	}

	totals, err := h.reporting.IncomeByCategory(c.Request.Context(), month, year)
	if err != nil {
		respondError(c, err, "Failed to compute income by category")
		return
	}
	c.JSON(http.StatusOK, totals)
}
