// Package snapshot persists the ledger collections as four independently
// keyed JSON arrays in a string key-value store.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lifedash/finances/internal/apperrors"
	"github.com/lifedash/finances/internal/core/domain"
	portsrepo "github.com/lifedash/finances/internal/core/ports/repositories"
)

// Storage keys. They match the layout the ledger has always used, so an
// existing store is picked up as-is.
const (
	accountsKey     = "finances_accounts"
	transactionsKey = "finances_transactions"
	categoriesKey   = "finances_categories"
	budgetsKey      = "finances_budgets"
)

// Repository implements ports/repositories.SnapshotRepository over a KVStore.
type Repository struct {
	store portsrepo.KVStore
}

// NewRepository creates a snapshot repository on top of the given store.
func NewRepository(store portsrepo.KVStore) *Repository {
	return &Repository{
		store: store,
	}
}

// Ensure Repository implements the SnapshotRepository interface.
var _ portsrepo.SnapshotRepository = (*Repository)(nil)

// Load reads all four collections. Absent keys yield empty collections; a
// value that fails to parse yields an error wrapping ErrMalformedData so the
// caller can fall back to seed defaults.
func (r *Repository) Load(ctx context.Context) (*domain.Snapshot, error) {
	snap := &domain.Snapshot{}

	if err := r.loadKey(ctx, accountsKey, &snap.Accounts); err != nil {
		return nil, err
	}
	if err := r.loadKey(ctx, categoriesKey, &snap.Categories); err != nil {
		return nil, err
	}
	if err := r.loadKey(ctx, transactionsKey, &snap.Transactions); err != nil {
		return nil, err
	}
	if err := r.loadKey(ctx, budgetsKey, &snap.Budgets); err != nil {
		return nil, err
	}

	return snap, nil
}

// loadKey reads one collection, leaving dest untouched when the key is absent.
func (r *Repository) loadKey(ctx context.Context, key string, dest any) error {
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("unmarshal %q: %w: %w", key, apperrors.ErrMalformedData, err)
	}
	return nil
}

// Save writes the full contents of all four collections. Nil slices are
// stored as empty JSON arrays so a reload distinguishes "saved empty" from
// "never saved".
func (r *Repository) Save(ctx context.Context, snap *domain.Snapshot) error {
	if err := r.saveKey(ctx, accountsKey, notNil(snap.Accounts)); err != nil {
		return err
	}
	if err := r.saveKey(ctx, categoriesKey, notNil(snap.Categories)); err != nil {
		return err
	}
	if err := r.saveKey(ctx, transactionsKey, notNil(snap.Transactions)); err != nil {
		return err
	}
	return r.saveKey(ctx, budgetsKey, notNil(snap.Budgets))
}

func (r *Repository) saveKey(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}
	return r.store.Set(ctx, key, string(raw))
}

func notNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
