package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lifedash/finances/internal/apperrors"
	"github.com/lifedash/finances/internal/core/domain"
	"github.com/lifedash/finances/internal/dto"
)

// validateTransaction enforces the referential invariants before a
// transaction is committed: income/expense entries need an existing category
// of matching type, transfers need two existing distinct accounts and no
// category. Violations are rejected outright rather than partially applied.
// Callers must hold l.mu.
func (l *Ledger) validateTransaction(txn domain.Transaction) error {
	if txn.Amount.IsNegative() {
		return fmt.Errorf("amount must be non-negative: %w", apperrors.ErrValidation)
	}
	if !txn.Type.IsValid() {
		return fmt.Errorf("unknown transaction type %q: %w", txn.Type, apperrors.ErrValidation)
	}
	if l.findAccount(txn.AccountID) == nil {
		return fmt.Errorf("account %q does not exist: %w", txn.AccountID, apperrors.ErrValidation)
	}

	switch txn.Type {
	case domain.TransactionTransfer:
		if txn.CategoryID != "" {
			return fmt.Errorf("transfers carry no category: %w", apperrors.ErrValidation)
		}
		if txn.ToAccountID == "" {
			return fmt.Errorf("transfer needs a destination account: %w", apperrors.ErrValidation)
		}
		if txn.ToAccountID == txn.AccountID {
			return fmt.Errorf("transfer source and destination must differ: %w", apperrors.ErrValidation)
		}
		if l.findAccount(txn.ToAccountID) == nil {
			return fmt.Errorf("destination account %q does not exist: %w", txn.ToAccountID, apperrors.ErrValidation)
		}
	default:
		if txn.ToAccountID != "" {
			return fmt.Errorf("only transfers name a destination account: %w", apperrors.ErrValidation)
		}
		cat := l.findCategory(txn.CategoryID)
		if cat == nil {
			return fmt.Errorf("category %q does not exist: %w", txn.CategoryID, apperrors.ErrValidation)
		}
		if string(cat.Type) != string(txn.Type) {
			return fmt.Errorf("category %q is %s, transaction is %s: %w", txn.CategoryID, cat.Type, txn.Type, apperrors.ErrValidation)
		}
	}

	if txn.IsRecurring && !txn.Frequency.IsValid() {
		return fmt.Errorf("recurring transaction needs a frequency: %w", apperrors.ErrValidation)
	}
	if txn.Frequency != "" && !txn.Frequency.IsValid() {
		return fmt.Errorf("unknown recurring frequency %q: %w", txn.Frequency, apperrors.ErrValidation)
	}

	return nil
}

// postTransaction applies the balance effect of txn to its account(s); with
// revert it applies the exact additive inverse, keyed off the same snapshot
// of (type, amount, accountId, toAccountId). Callers must hold l.mu.
func (l *Ledger) postTransaction(txn domain.Transaction, revert bool) {
	amount := txn.Amount
	if revert {
		amount = amount.Neg()
	}

	acc := l.findAccount(txn.AccountID)
	if acc == nil {
		return
	}

	switch txn.Type {
	case domain.TransactionIncome:
		acc.Balance = acc.Balance.Add(amount)
	case domain.TransactionExpense:
		acc.Balance = acc.Balance.Sub(amount)
	case domain.TransactionTransfer:
		acc.Balance = acc.Balance.Sub(amount)
		if to := l.findAccount(txn.ToAccountID); to != nil {
			to.Balance = to.Balance.Add(amount)
		}
	}
}

// CreateTransaction validates and commits a new transaction, applying its
// balance effect in the same step.
func (l *Ledger) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	txn := domain.Transaction{
		ID:          uuid.NewString(),
		Date:        req.Date,
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		CategoryID:  req.CategoryID,
		AccountID:   req.AccountID,
		ToAccountID: req.ToAccountID,
		IsRecurring: req.IsRecurring,
		Frequency:   req.Frequency,
	}

	if err := l.validateTransaction(txn); err != nil {
		return nil, err
	}

	l.transactions = append(l.transactions, txn)
	l.postTransaction(txn, false)

	if err := l.persist(ctx); err != nil {
		return nil, err
	}
	return &txn, nil
}

// UpdateTransaction reverts the stored transaction's balance effect using its
// pre-update snapshot, applies the patch and posts the new effect. The whole
// revert/apply runs under the ledger lock, so no reader observes the
// intermediate state.
func (l *Ledger) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	stored := l.findTransaction(transactionID)
	if stored == nil {
		return nil, fmt.Errorf("transaction %q: %w", transactionID, apperrors.ErrNotFound)
	}

	patched := *stored
	if req.Date != nil {
		patched.Date = *req.Date
	}
	if req.Description != nil {
		patched.Description = *req.Description
	}
	if req.Amount != nil {
		patched.Amount = *req.Amount
	}
	if req.Type != nil {
		patched.Type = *req.Type
	}
	if req.CategoryID != nil {
		patched.CategoryID = *req.CategoryID
	}
	if req.AccountID != nil {
		patched.AccountID = *req.AccountID
	}
	if req.ToAccountID != nil {
		patched.ToAccountID = *req.ToAccountID
	}
	if req.IsRecurring != nil {
		patched.IsRecurring = *req.IsRecurring
	}
	if req.Frequency != nil {
		patched.Frequency = *req.Frequency
	}

	// A type change must not leave stale references behind.
	if patched.Type == domain.TransactionTransfer {
		if req.CategoryID == nil {
			patched.CategoryID = ""
		}
	} else if req.ToAccountID == nil && stored.Type == domain.TransactionTransfer {
		patched.ToAccountID = ""
	}

	if err := l.validateTransaction(patched); err != nil {
		return nil, err
	}

	l.postTransaction(*stored, true)
	*stored = patched
	l.postTransaction(patched, false)

	if err := l.persist(ctx); err != nil {
		return nil, err
	}
	return &patched, nil
}

// DeleteTransaction reverts the transaction's balance effect and removes it.
func (l *Ledger) DeleteTransaction(ctx context.Context, transactionID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	stored := l.findTransaction(transactionID)
	if stored == nil {
		return fmt.Errorf("transaction %q: %w", transactionID, apperrors.ErrNotFound)
	}

	l.postTransaction(*stored, true)

	kept := l.transactions[:0]
	for _, t := range l.transactions {
		if t.ID != transactionID {
			kept = append(kept, t)
		}
	}
	l.transactions = kept

	return l.persist(ctx)
}

// GetTransactionByID retrieves a copy of the transaction with the given id.
func (l *Ledger) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	txn := l.findTransaction(transactionID)
	if txn == nil {
		return nil, fmt.Errorf("transaction %q: %w", transactionID, apperrors.ErrNotFound)
	}

	copied := *txn
	return &copied, nil
}

// ListTransactions retrieves copies of all transactions, newest first.
func (l *Ledger) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return sortedByDateDesc(l.transactions, func(domain.Transaction) bool { return true }), nil
}

// ListTransactionsByAccount retrieves the transactions touching one account
// as source or destination, newest first.
func (l *Ledger) ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return sortedByDateDesc(l.transactions, func(t domain.Transaction) bool {
		return t.TouchesAccount(accountID)
	}), nil
}

// ListTransactionsByType retrieves all transactions of one type, newest first.
func (l *Ledger) ListTransactionsByType(ctx context.Context, transactionType domain.TransactionType) ([]domain.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return sortedByDateDesc(l.transactions, func(t domain.Transaction) bool {
		return t.Type == transactionType
	}), nil
}

// ListTransactionsForMonth retrieves the transactions dated within one
// calendar month, newest first.
func (l *Ledger) ListTransactionsForMonth(ctx context.Context, month time.Month, year int) ([]domain.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return sortedByDateDesc(l.transactions, func(t domain.Transaction) bool {
		return t.InMonth(month, year)
	}), nil
}

// sortedByDateDesc copies the transactions matching keep and sorts them by
// date descending. The stable sort breaks date ties by insertion order.
func sortedByDateDesc(txns []domain.Transaction, keep func(domain.Transaction) bool) []domain.Transaction {
	result := make([]domain.Transaction, 0)
	for _, t := range txns {
		if keep(t) {
			result = append(result, t)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result
}
