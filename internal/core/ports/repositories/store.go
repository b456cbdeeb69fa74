package repositories

import (
	"context"

	"github.com/lifedash/finances/internal/core/domain"
)

// KVStore is the persistence collaborator: a string key-value store with
// synchronous get/set. Implementations return apperrors.ErrNotFound from Get
// when the key is absent.
type KVStore interface {
	// Get retrieves the value stored under key.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error
}

// SnapshotRepository persists the four ledger collections as independently
// keyed JSON arrays in a KVStore.
type SnapshotRepository interface {
	// Load reads all four collections. Absent keys yield empty collections;
	// a key whose value fails to parse yields an error wrapping
	// apperrors.ErrMalformedData.
	Load(ctx context.Context) (*domain.Snapshot, error)

	// Save writes the full contents of all four collections.
	Save(ctx context.Context, snap *domain.Snapshot) error
}
