package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifedash/finances/internal/apperrors"
	"github.com/lifedash/finances/internal/core/domain"
	"github.com/lifedash/finances/internal/dto"
)

// CreateAccount adds a new account. The first account, or any account
// explicitly requested as default, becomes the single default; the flag is
// cleared on all others first.
func (l *Ledger) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("unknown account type %q: %w", req.Type, apperrors.ErrValidation)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	account := domain.Account{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Type:      req.Type,
		Balance:   req.Balance,
		Currency:  req.Currency,
		Color:     req.Color,
		IsDefault: req.IsDefault,
	}

	if len(l.accounts) == 0 || account.IsDefault {
		for i := range l.accounts {
			l.accounts[i].IsDefault = false
		}
		account.IsDefault = true
	}

	l.accounts = append(l.accounts, account)
	if err := l.persist(ctx); err != nil {
		return nil, err
	}

	return &account, nil
}

// GetAccountByID retrieves a copy of the account with the given id.
func (l *Ledger) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	acc := l.findAccount(accountID)
	if acc == nil {
		return nil, fmt.Errorf("account %q: %w", accountID, apperrors.ErrNotFound)
	}

	copied := *acc
	return &copied, nil
}

// ListAccounts retrieves copies of all accounts in insertion order.
func (l *Ledger) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	accounts := make([]domain.Account, len(l.accounts))
	copy(accounts, l.accounts)
	return accounts, nil
}

// DefaultAccount resolves the default account: the first account flagged
// default, else the first account, else the built-in seed account.
func (l *Ledger) DefaultAccount(ctx context.Context) (*domain.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.accounts {
		if l.accounts[i].IsDefault {
			copied := l.accounts[i]
			return &copied, nil
		}
	}
	if len(l.accounts) > 0 {
		copied := l.accounts[0]
		return &copied, nil
	}

	seed := l.seedAccount
	return &seed, nil
}

// UpdateAccount applies a partial update. Setting IsDefault to true demotes
// every other account; setting it to false on the current default leaves the
// ledger with no default, matching explicit caller intent.
func (l *Ledger) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	if req.Type != nil && !req.Type.IsValid() {
		return nil, fmt.Errorf("unknown account type %q: %w", *req.Type, apperrors.ErrValidation)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	acc := l.findAccount(accountID)
	if acc == nil {
		return nil, fmt.Errorf("account %q: %w", accountID, apperrors.ErrNotFound)
	}

	if req.IsDefault != nil && *req.IsDefault {
		for i := range l.accounts {
			l.accounts[i].IsDefault = false
		}
	}

	if req.Name != nil {
		acc.Name = *req.Name
	}
	if req.Type != nil {
		acc.Type = *req.Type
	}
	if req.Currency != nil {
		acc.Currency = *req.Currency
	}
	if req.Color != nil {
		acc.Color = *req.Color
	}
	if req.IsDefault != nil {
		acc.IsDefault = *req.IsDefault
	}

	if err := l.persist(ctx); err != nil {
		return nil, err
	}

	copied := *acc
	return &copied, nil
}

// DeleteAccount removes the account and every transaction referencing it as
// source or destination. The removed transactions' balance effects are not
// reverted on other accounts. If the deleted account was the default and
// accounts remain, the first remaining account is promoted.
func (l *Ledger) DeleteAccount(ctx context.Context, accountID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	acc := l.findAccount(accountID)
	if acc == nil {
		return fmt.Errorf("account %q: %w", accountID, apperrors.ErrNotFound)
	}
	wasDefault := acc.IsDefault

	remaining := l.accounts[:0]
	for _, a := range l.accounts {
		if a.ID != accountID {
			remaining = append(remaining, a)
		}
	}
	l.accounts = remaining

	if wasDefault && len(l.accounts) > 0 {
		l.accounts[0].IsDefault = true
	}

	kept := l.transactions[:0]
	for _, t := range l.transactions {
		if !t.TouchesAccount(accountID) {
			kept = append(kept, t)
		}
	}
	l.transactions = kept

	return l.persist(ctx)
}
