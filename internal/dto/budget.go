package dto

import (
	"time"

	"github.com/lifedash/finances/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetBudgetRequest defines the composite key and amount for a budget upsert.
type SetBudgetRequest struct {
	CategoryID string          `json:"categoryId" binding:"required"`
	Month      time.Month      `json:"month" binding:"required,min=1,max=12"`
	Year       int             `json:"year" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
}

// BudgetResponse defines the data returned for a budget row.
type BudgetResponse struct {
	CategoryID string          `json:"categoryId"`
	Month      time.Month      `json:"month"`
	Year       int             `json:"year"`
	Amount     decimal.Decimal `json:"amount"`
}

// ToBudgetResponse converts a domain.Budget to a BudgetResponse DTO.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		CategoryID: b.CategoryID,
		Month:      b.Month,
		Year:       b.Year,
		Amount:     b.Amount,
	}
}

// ToListBudgetResponse converts a slice of domain.Budget to response DTOs.
func ToListBudgetResponse(budgets []domain.Budget) []BudgetResponse {
	res := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		res[i] = ToBudgetResponse(&b)
	}
	return res
}
