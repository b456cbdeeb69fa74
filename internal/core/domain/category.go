package domain

import (
	"github.com/shopspring/decimal"
)

// CategoryType splits categories into the two sides of the ledger.
type CategoryType string

const (
	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"
)

// IsValid reports whether t is one of the known category types.
func (t CategoryType) IsValid() bool {
	return t == CategoryIncome || t == CategoryExpense
}

// Category labels income and expense transactions. The type is immutable
// after creation; budgets and summary aggregation depend on it.
type Category struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Type  CategoryType `json:"type"`
	Color string       `json:"color,omitempty"`
	// IsFixed marks non-discretionary spend. Expense categories only.
	IsFixed bool `json:"isFixed,omitempty"`
	// MonthlyBudget is a convenience default amount for expense categories.
	MonthlyBudget decimal.Decimal `json:"monthlyBudget"`
}
