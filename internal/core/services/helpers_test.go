package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/lifedash/finances/internal/core/domain"
	"github.com/lifedash/finances/internal/core/services"
	"github.com/lifedash/finances/internal/dto"
	"github.com/lifedash/finances/internal/repositories/kvstore"
	"github.com/lifedash/finances/internal/repositories/snapshot"
)

// newTestLedger builds a ledger over a fresh in-memory store. The store is
// returned so tests can reload from it or corrupt it.
func newTestLedger(t *testing.T) (*services.Ledger, *kvstore.MemoryStore) {
	t.Helper()

	store := kvstore.NewMemoryStore()
	ledger, err := services.NewLedger(context.Background(), snapshot.NewRepository(store))
	require.NoError(t, err)
	return ledger, store
}

func d(value int64) decimal.Decimal {
	return decimal.NewFromInt(value)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

// mustCreateAccount creates a debit account with a zero opening balance.
func mustCreateAccount(t *testing.T, ledger *services.Ledger, name string) *domain.Account {
	t.Helper()

	acc, err := ledger.CreateAccount(context.Background(), dto.CreateAccountRequest{
		Name:     name,
		Type:     domain.AccountDebit,
		Currency: "EUR",
	})
	require.NoError(t, err)
	return acc
}

// mustCreateTransaction commits a transaction and fails the test on error.
func mustCreateTransaction(t *testing.T, ledger *services.Ledger, req dto.CreateTransactionRequest) *domain.Transaction {
	t.Helper()

	txn, err := ledger.CreateTransaction(context.Background(), req)
	require.NoError(t, err)
	return txn
}

// incomeReq is a shorthand for an income transaction on the seeded salary
// category.
func incomeReq(accountID string, amount decimal.Decimal, when time.Time) dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Date:        when,
		Description: "salary",
		Amount:      amount,
		Type:        domain.TransactionIncome,
		CategoryID:  "income-salary",
		AccountID:   accountID,
	}
}

// expenseReq is a shorthand for an expense transaction on the seeded food
// category.
func expenseReq(accountID string, amount decimal.Decimal, when time.Time) dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Date:        when,
		Description: "groceries",
		Amount:      amount,
		Type:        domain.TransactionExpense,
		CategoryID:  "expense-food",
		AccountID:   accountID,
	}
}

// transferReq is a shorthand for a transfer between two accounts.
func transferReq(fromID, toID string, amount decimal.Decimal, when time.Time) dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Date:        when,
		Description: "move savings",
		Amount:      amount,
		Type:        domain.TransactionTransfer,
		AccountID:   fromID,
		ToAccountID: toID,
	}
}
