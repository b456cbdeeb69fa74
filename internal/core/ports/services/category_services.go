package services

import (
	"context"

	"github.com/lifedash/finances/internal/core/domain"
	"github.com/lifedash/finances/internal/dto"
)

// CategoryReaderSvc defines read operations over categories.
type CategoryReaderSvc interface {
	// GetCategoryByID retrieves a specific category by its identifier.
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// ListCategoriesByType retrieves all categories of one type.
	ListCategoriesByType(ctx context.Context, categoryType domain.CategoryType) ([]domain.Category, error)
}

// CategoryWriterSvc defines write operations over categories.
type CategoryWriterSvc interface {
	// CreateCategory adds a new category and returns it with its assigned id.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)

	// UpdateCategory applies a partial update to an existing category. The
	// category type is immutable; attempting to change it fails validation.
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory removes a category, reassigns referencing transactions
	// to the type-matched fallback category, and deletes its budget rows.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// CategorySvcFacade combines category read and write operations.
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
}
