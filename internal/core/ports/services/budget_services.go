package services

import (
	"context"
	"time"

	"github.com/lifedash/finances/internal/core/domain"
	"github.com/lifedash/finances/internal/dto"
)

// BudgetSvcFacade defines operations over per-month category budgets.
type BudgetSvcFacade interface {
	// SetBudget upserts the budget row keyed by (category, month, year).
	SetBudget(ctx context.Context, req dto.SetBudgetRequest) (*domain.Budget, error)

	// ListBudgets retrieves all budget rows.
	ListBudgets(ctx context.Context) ([]domain.Budget, error)

	// ListBudgetsForMonth retrieves the budget rows for one calendar month.
	ListBudgetsForMonth(ctx context.Context, month time.Month, year int) ([]domain.Budget, error)

	// DeleteBudget removes the budget row keyed by (category, month, year).
	DeleteBudget(ctx context.Context, categoryID string, month time.Month, year int) error
}
