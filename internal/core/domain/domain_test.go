package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lifedash/finances/internal/core/domain"
)

func TestTransaction_TouchesAccount(t *testing.T) {
	tests := []struct {
		name        string
		transaction domain.Transaction
		accountID   string
		want        bool
	}{
		{
			name:        "source side",
			transaction: domain.Transaction{AccountID: "a"},
			accountID:   "a",
			want:        true,
		},
		{
			name:        "destination side",
			transaction: domain.Transaction{AccountID: "a", ToAccountID: "b"},
			accountID:   "b",
			want:        true,
		},
		{
			name:        "unrelated",
			transaction: domain.Transaction{AccountID: "a", ToAccountID: "b"},
			accountID:   "c",
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.transaction.TouchesAccount(tt.accountID))
		})
	}
}

func TestTransaction_InMonth(t *testing.T) {
	txn := domain.Transaction{Date: time.Date(2026, time.August, 31, 23, 30, 0, 0, time.UTC)}

	assert.True(t, txn.InMonth(time.August, 2026))
	assert.False(t, txn.InMonth(time.September, 2026))
	assert.False(t, txn.InMonth(time.August, 2025))
}

func TestSeedCategories(t *testing.T) {
	categories := domain.SeedCategories()
	assert.Len(t, categories, 7)

	byID := make(map[string]domain.Category, len(categories))
	for _, cat := range categories {
		byID[cat.ID] = cat
	}

	assert.Equal(t, domain.CategoryIncome, byID[domain.CategoryOtherIncome].Type)
	assert.Equal(t, domain.CategoryExpense, byID[domain.CategoryOtherExpenses].Type)
	assert.True(t, byID["expense-housing"].IsFixed)

	// Each call hands out an independent copy.
	categories[0].Name = "mutated"
	assert.NotEqual(t, "mutated", domain.SeedCategories()[0].Name)
}

func TestFallbackCategoryID(t *testing.T) {
	assert.Equal(t, domain.CategoryOtherIncome, domain.FallbackCategoryID(domain.CategoryIncome))
	assert.Equal(t, domain.CategoryOtherExpenses, domain.FallbackCategoryID(domain.CategoryExpense))
}

func TestTypeValidation(t *testing.T) {
	assert.True(t, domain.AccountDebit.IsValid())
	assert.False(t, domain.AccountType("checking").IsValid())

	assert.True(t, domain.CategoryExpense.IsValid())
	assert.False(t, domain.CategoryType("transfer").IsValid())

	assert.True(t, domain.TransactionTransfer.IsValid())
	assert.False(t, domain.TransactionType("refund").IsValid())

	assert.True(t, domain.RecurMonthly.IsValid())
	assert.False(t, domain.RecurringFrequency("daily").IsValid())
}

func TestSeedAccount(t *testing.T) {
	acc := domain.SeedAccount("USD")
	assert.Equal(t, domain.SeedAccountID, acc.ID)
	assert.Equal(t, domain.AccountDebit, acc.Type)
	assert.Equal(t, "USD", acc.Currency)
	assert.True(t, acc.IsDefault)
	assert.True(t, acc.Balance.IsZero())
}
