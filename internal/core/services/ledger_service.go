// Package services implements the ledger engine: accounts, categories,
// transactions and budgets, with eager balance maintenance, replay-based
// monthly summaries and idempotent recurring materialization.
package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/lifedash/finances/internal/apperrors"
	"github.com/lifedash/finances/internal/core/domain"
	portsrepo "github.com/lifedash/finances/internal/core/ports/repositories"
	portssvc "github.com/lifedash/finances/internal/core/ports/services"
)

// defaultSeedCurrency denominates the seed account when no option overrides it.
const defaultSeedCurrency = "EUR"

// Ledger owns the four canonical collections and every operation that keeps
// them consistent. A single mutex serializes commands so each one runs to
// completion before the next is accepted; the engine models one logical
// writer. Every value returned to a caller is a copy.
type Ledger struct {
	mu     sync.Mutex
	logger *slog.Logger
	repo   portsrepo.SnapshotRepository

	seedAccount domain.Account

	accounts     []domain.Account
	categories   []domain.Category
	transactions []domain.Transaction
	budgets      []domain.Budget
}

// LedgerOption configures a Ledger.
type LedgerOption func(*Ledger)

// WithLogger sets the logger used for recovery and materialization notices.
func WithLogger(logger *slog.Logger) LedgerOption {
	return func(l *Ledger) {
		l.logger = logger
	}
}

// WithSeedAccount replaces the built-in seed account reinstated whenever the
// account set is empty.
func WithSeedAccount(account domain.Account) LedgerOption {
	return func(l *Ledger) {
		l.seedAccount = account
	}
}

// WithSeedCurrency keeps the built-in seed account but denominates it in the
// given currency.
func WithSeedCurrency(currency string) LedgerOption {
	return func(l *Ledger) {
		l.seedAccount = domain.SeedAccount(currency)
	}
}

// NewLedger loads the persisted snapshot from repo, seeds missing or
// malformed state with defaults, re-persists a consistent snapshot and
// returns the ready ledger. Only store I/O failures are returned; malformed
// persisted data is recovered locally.
func NewLedger(ctx context.Context, repo portsrepo.SnapshotRepository, opts ...LedgerOption) (*Ledger, error) {
	l := &Ledger{
		logger:      slog.Default(),
		repo:        repo,
		seedAccount: domain.SeedAccount(defaultSeedCurrency),
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := l.load(ctx); err != nil {
		return nil, err
	}
	return l, nil
}

// Ensure Ledger implements the full facade.
var _ portssvc.LedgerSvcFacade = (*Ledger)(nil)

// load restores state from the snapshot repository. A malformed snapshot
// resets the whole ledger to seed defaults; either way the result is
// persisted immediately so the store holds a consistent state.
func (l *Ledger) load(ctx context.Context) error {
	snap, err := l.repo.Load(ctx)
	if errors.Is(err, apperrors.ErrMalformedData) {
		l.logger.Warn("Persisted ledger data is malformed, resetting to defaults",
			slog.String("error", err.Error()))
		snap = &domain.Snapshot{}
	} else if err != nil {
		return err
	}

	l.accounts = snap.Accounts
	l.categories = snap.Categories
	l.transactions = snap.Transactions
	l.budgets = snap.Budgets

	if len(l.accounts) == 0 {
		l.accounts = []domain.Account{l.seedAccount}
	}
	if len(l.categories) == 0 {
		l.categories = domain.SeedCategories()
	}

	return l.persist(ctx)
}

// persist writes the full contents of all four collections. Callers must
// hold l.mu (or be inside NewLedger before the ledger is shared).
func (l *Ledger) persist(ctx context.Context) error {
	return l.repo.Save(ctx, &domain.Snapshot{
		Accounts:     l.accounts,
		Categories:   l.categories,
		Transactions: l.transactions,
		Budgets:      l.budgets,
	})
}

// findAccount returns a pointer into the canonical account slice, or nil.
// Internal use only; never leaks through the facade.
func (l *Ledger) findAccount(id string) *domain.Account {
	for i := range l.accounts {
		if l.accounts[i].ID == id {
			return &l.accounts[i]
		}
	}
	return nil
}

func (l *Ledger) findCategory(id string) *domain.Category {
	for i := range l.categories {
		if l.categories[i].ID == id {
			return &l.categories[i]
		}
	}
	return nil
}

func (l *Ledger) findTransaction(id string) *domain.Transaction {
	for i := range l.transactions {
		if l.transactions[i].ID == id {
			return &l.transactions[i]
		}
	}
	return nil
}
