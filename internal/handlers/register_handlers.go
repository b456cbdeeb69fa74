// Package handlers is the HTTP presentation layer: a thin gin surface that
// forwards user actions to the ledger facade and renders query results.
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lifedash/finances/internal/apperrors"
	portssvc "github.com/lifedash/finances/internal/core/ports/services"
)

// RegisterRoutes sets up all application routes against the ledger facade.
func RegisterRoutes(r *gin.Engine, ledger portssvc.LedgerSvcFacade) {
	registerValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	v1 := r.Group("/api/v1")
	registerAccountRoutes(v1, ledger)
	registerCategoryRoutes(v1, ledger)
	registerTransactionRoutes(v1, ledger)
	registerBudgetRoutes(v1, ledger)
	registerReportingRoutes(v1, ledger)
}

// respondError maps the ledger's error taxonomy onto HTTP statuses:
// validation failures are the caller's fault, absence is 404, anything else
// is a server error with the detail kept out of the response.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// monthYearFromQuery parses the month and year query parameters common to
// the month-scoped endpoints.
func monthYearFromQuery(c *gin.Context) (time.Month, int, bool) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be an integer between 1 and 12"})
		return 0, 0, false
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
		return 0, 0, false
	}
	return time.Month(month), year, true
}
