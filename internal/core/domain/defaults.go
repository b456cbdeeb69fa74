package domain

import (
	"github.com/shopspring/decimal"
)

// Fallback categories. Transactions referencing a deleted category are
// reassigned to the fallback of the same type; the fallbacks themselves
// cannot be deleted.
const (
	CategoryOtherIncome   = "income-other"
	CategoryOtherExpenses = "expense-other"
)

const (
	incomeColor  = "#40e07d"
	expenseColor = "#ff6b6b"
)

// SeedAccountID is the id of the account created on first activation.
const SeedAccountID = "default-account"

// SeedAccount returns the account the ledger is seeded with when no accounts
// exist, denominated in the given currency.
func SeedAccount(currency string) Account {
	return Account{
		ID:        SeedAccountID,
		Name:      "1st account",
		Type:      AccountDebit,
		Balance:   decimal.Zero,
		Currency:  currency,
		Color:     incomeColor,
		IsDefault: true,
	}
}

// SeedCategories returns a fresh copy of the starter category set used when
// no categories exist.
func SeedCategories() []Category {
	return []Category{
		{ID: "income-salary", Name: "Salary", Type: CategoryIncome, Color: incomeColor},
		{ID: CategoryOtherIncome, Name: "Other Income", Type: CategoryIncome, Color: incomeColor},
		{ID: "expense-food", Name: "Food", Type: CategoryExpense, Color: expenseColor},
		{ID: "expense-housing", Name: "Housing", Type: CategoryExpense, Color: expenseColor, IsFixed: true},
		{ID: "expense-transport", Name: "Transportation", Type: CategoryExpense, Color: expenseColor},
		{ID: "expense-outting", Name: "Outting", Type: CategoryExpense, Color: expenseColor},
		{ID: CategoryOtherExpenses, Name: "Other Expenses", Type: CategoryExpense, Color: expenseColor},
	}
}

// FallbackCategoryID returns the fallback category id for a category type.
func FallbackCategoryID(t CategoryType) string {
	if t == CategoryIncome {
		return CategoryOtherIncome
	}
	return CategoryOtherExpenses
}
