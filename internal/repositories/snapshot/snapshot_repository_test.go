package snapshot_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifedash/finances/internal/apperrors"
	"github.com/lifedash/finances/internal/core/domain"
	"github.com/lifedash/finances/internal/repositories/kvstore"
	"github.com/lifedash/finances/internal/repositories/snapshot"
)

func TestLoadEmptyStore(t *testing.T) {
	repo := snapshot.NewRepository(kvstore.NewMemoryStore())

	snap, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Accounts)
	assert.Empty(t, snap.Categories)
	assert.Empty(t, snap.Transactions)
	assert.Empty(t, snap.Budgets)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := snapshot.NewRepository(kvstore.NewMemoryStore())

	saved := &domain.Snapshot{
		Accounts: []domain.Account{
			{ID: "a1", Name: "Checking", Type: domain.AccountDebit, Balance: decimal.NewFromInt(75), Currency: "EUR", IsDefault: true},
		},
		Categories: domain.SeedCategories(),
		Transactions: []domain.Transaction{
			{
				ID:          "t1",
				Date:        time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC),
				Description: "salary",
				Amount:      decimal.NewFromInt(100),
				Type:        domain.TransactionIncome,
				CategoryID:  "income-salary",
				AccountID:   "a1",
			},
		},
		Budgets: []domain.Budget{
			{CategoryID: "expense-food", Month: time.August, Year: 2026, Amount: decimal.NewFromInt(300)},
		},
	}
	require.NoError(t, repo.Save(ctx, saved))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)

	require.Len(t, loaded.Accounts, 1)
	assert.Equal(t, "a1", loaded.Accounts[0].ID)
	assert.True(t, loaded.Accounts[0].Balance.Equal(decimal.NewFromInt(75)))

	assert.Equal(t, saved.Categories, loaded.Categories)

	require.Len(t, loaded.Transactions, 1)
	assert.True(t, loaded.Transactions[0].Date.Equal(saved.Transactions[0].Date))
	assert.True(t, loaded.Transactions[0].Amount.Equal(decimal.NewFromInt(100)))

	require.Len(t, loaded.Budgets, 1)
	assert.Equal(t, time.August, loaded.Budgets[0].Month)
}

// A saved empty snapshot must reload as empty collections, not as absent
// keys that would trigger reseeding.
func TestSaveEmptySnapshotWritesEmptyArrays(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := snapshot.NewRepository(store)

	require.NoError(t, repo.Save(ctx, &domain.Snapshot{}))

	for _, key := range []string{"finances_accounts", "finances_transactions", "finances_categories", "finances_budgets"} {
		raw, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "[]", raw)
	}
}

func TestLoadMalformedValue(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := snapshot.NewRepository(store)

	require.NoError(t, store.Set(ctx, "finances_budgets", `{"oops"`))

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, apperrors.ErrMalformedData)
}
