package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifedash/finances/internal/apperrors"
	"github.com/lifedash/finances/internal/core/domain"
	"github.com/lifedash/finances/internal/dto"
)

// CreateCategory adds a new category. IsFixed and MonthlyBudget are rejected
// on income categories.
func (l *Ledger) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("unknown category type %q: %w", req.Type, apperrors.ErrValidation)
	}
	if req.Type == domain.CategoryIncome && (req.IsFixed || req.MonthlyBudget.IsPositive()) {
		return nil, fmt.Errorf("isFixed and monthlyBudget apply to expense categories only: %w", apperrors.ErrValidation)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// The type prefix keeps generated ids consistent with the seeded naming
	// convention; the type itself is always read from the entity.
	category := domain.Category{
		ID:            fmt.Sprintf("%s-%s", req.Type, uuid.NewString()),
		Name:          req.Name,
		Type:          req.Type,
		Color:         req.Color,
		IsFixed:       req.IsFixed,
		MonthlyBudget: req.MonthlyBudget,
	}

	l.categories = append(l.categories, category)
	if err := l.persist(ctx); err != nil {
		return nil, err
	}

	return &category, nil
}

// GetCategoryByID retrieves a copy of the category with the given id.
func (l *Ledger) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cat := l.findCategory(categoryID)
	if cat == nil {
		return nil, fmt.Errorf("category %q: %w", categoryID, apperrors.ErrNotFound)
	}

	copied := *cat
	return &copied, nil
}

// ListCategories retrieves copies of all categories.
func (l *Ledger) ListCategories(ctx context.Context) ([]domain.Category, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	categories := make([]domain.Category, len(l.categories))
	copy(categories, l.categories)
	return categories, nil
}

// ListCategoriesByType retrieves copies of all categories of one type.
func (l *Ledger) ListCategoriesByType(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	categories := make([]domain.Category, 0)
	for _, cat := range l.categories {
		if cat.Type == categoryType {
			categories = append(categories, cat)
		}
	}
	return categories, nil
}

// UpdateCategory applies a partial update. The category type is immutable:
// changing it would silently invalidate budgets and historical category
// totals, so an attempted change fails validation.
func (l *Ledger) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cat := l.findCategory(categoryID)
	if cat == nil {
		return nil, fmt.Errorf("category %q: %w", categoryID, apperrors.ErrNotFound)
	}

	if req.Type != nil && *req.Type != cat.Type {
		return nil, fmt.Errorf("category type is immutable: %w", apperrors.ErrValidation)
	}

	if req.Name != nil {
		cat.Name = *req.Name
	}
	if req.Color != nil {
		cat.Color = *req.Color
	}
	if req.IsFixed != nil {
		cat.IsFixed = *req.IsFixed
	}
	if req.MonthlyBudget != nil {
		cat.MonthlyBudget = *req.MonthlyBudget
	}

	if err := l.persist(ctx); err != nil {
		return nil, err
	}

	copied := *cat
	return &copied, nil
}

// DeleteCategory removes a category. Transactions referencing it are
// reassigned to the fallback category of the same type, read from the
// entity's type tag, and every budget row keyed to it is removed. The
// fallback categories themselves cannot be deleted.
func (l *Ledger) DeleteCategory(ctx context.Context, categoryID string) error {
	if categoryID == domain.CategoryOtherIncome || categoryID == domain.CategoryOtherExpenses {
		return fmt.Errorf("fallback category %q cannot be deleted: %w", categoryID, apperrors.ErrValidation)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	cat := l.findCategory(categoryID)
	if cat == nil {
		return fmt.Errorf("category %q: %w", categoryID, apperrors.ErrNotFound)
	}
	fallbackID := domain.FallbackCategoryID(cat.Type)

	kept := l.categories[:0]
	for _, c := range l.categories {
		if c.ID != categoryID {
			kept = append(kept, c)
		}
	}
	l.categories = kept

	for i := range l.transactions {
		if l.transactions[i].CategoryID == categoryID {
			l.transactions[i].CategoryID = fallbackID
		}
	}

	budgets := l.budgets[:0]
	for _, b := range l.budgets {
		if b.CategoryID != categoryID {
			budgets = append(budgets, b)
		}
	}
	l.budgets = budgets

	return l.persist(ctx)
}
