package dto

import (
	"time"

	"github.com/lifedash/finances/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlySummaryResponse defines the data returned for a monthly summary.
type MonthlySummaryResponse struct {
	Month           time.Month                 `json:"month"`
	Year            int                        `json:"year"`
	StartingBalance decimal.Decimal            `json:"startingBalance"`
	EndingBalance   decimal.Decimal            `json:"endingBalance"`
	TotalIncome     decimal.Decimal            `json:"totalIncome"`
	TotalExpenses   decimal.Decimal            `json:"totalExpenses"`
	SavedAmount     decimal.Decimal            `json:"savedAmount"`
	CategoryTotals  map[string]decimal.Decimal `json:"categoryTotals"`
}

// ToMonthlySummaryResponse converts a domain.MonthlySummary to a response DTO.
func ToMonthlySummaryResponse(s *domain.MonthlySummary) MonthlySummaryResponse {
	return MonthlySummaryResponse{
		Month:           s.Month,
		Year:            s.Year,
		StartingBalance: s.StartingBalance,
		EndingBalance:   s.EndingBalance,
		TotalIncome:     s.TotalIncome,
		TotalExpenses:   s.TotalExpenses,
		SavedAmount:     s.SavedAmount,
		CategoryTotals:  s.CategoryTotals,
	}
}

// TotalBalanceResponse defines the data returned for the total balance query.
type TotalBalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}
