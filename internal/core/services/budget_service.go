package services

import (
	"context"
	"fmt"
	"time"

	"github.com/lifedash/finances/internal/apperrors"
	"github.com/lifedash/finances/internal/core/domain"
	"github.com/lifedash/finances/internal/dto"
)

// SetBudget upserts the budget row keyed by (category, month, year). The
// category must exist.
func (l *Ledger) SetBudget(ctx context.Context, req dto.SetBudgetRequest) (*domain.Budget, error) {
	if req.Month < time.January || req.Month > time.December {
		return nil, fmt.Errorf("month %d out of range: %w", req.Month, apperrors.ErrValidation)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("budget amount must be non-negative: %w", apperrors.ErrValidation)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.findCategory(req.CategoryID) == nil {
		return nil, fmt.Errorf("category %q does not exist: %w", req.CategoryID, apperrors.ErrValidation)
	}

	budget := domain.Budget{
		CategoryID: req.CategoryID,
		Month:      req.Month,
		Year:       req.Year,
		Amount:     req.Amount,
	}

	replaced := false
	for i := range l.budgets {
		if l.budgets[i].Matches(req.CategoryID, req.Month, req.Year) {
			l.budgets[i] = budget
			replaced = true
			break
		}
	}
	if !replaced {
		l.budgets = append(l.budgets, budget)
	}

	if err := l.persist(ctx); err != nil {
		return nil, err
	}
	return &budget, nil
}

// ListBudgets retrieves copies of all budget rows.
func (l *Ledger) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	budgets := make([]domain.Budget, len(l.budgets))
	copy(budgets, l.budgets)
	return budgets, nil
}

// ListBudgetsForMonth retrieves the budget rows for one calendar month.
func (l *Ledger) ListBudgetsForMonth(ctx context.Context, month time.Month, year int) ([]domain.Budget, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	budgets := make([]domain.Budget, 0)
	for _, b := range l.budgets {
		if b.Month == month && b.Year == year {
			budgets = append(budgets, b)
		}
	}
	return budgets, nil
}

// DeleteBudget removes the budget row keyed by (category, month, year).
func (l *Ledger) DeleteBudget(ctx context.Context, categoryID string, month time.Month, year int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.budgets {
		if l.budgets[i].Matches(categoryID, month, year) {
			l.budgets = append(l.budgets[:i], l.budgets[i+1:]...)
			return l.persist(ctx)
		}
	}

	return fmt.Errorf("budget for category %q in %d-%02d: %w", categoryID, year, month, apperrors.ErrNotFound)
}
