package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a spending target for a category in one calendar month.
// (CategoryID, Month, Year) is the composite key; setting a budget for an
// existing key replaces the amount.
type Budget struct {
	CategoryID string          `json:"categoryId"`
	Month      time.Month      `json:"month"`
	Year       int             `json:"year"`
	Amount     decimal.Decimal `json:"amount"`
}

// Matches reports whether the budget row is keyed by the given composite key.
func (b Budget) Matches(categoryID string, month time.Month, year int) bool {
	return b.CategoryID == categoryID && b.Month == month && b.Year == year
}
