package dto

import (
	"github.com/lifedash/finances/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest defines the data needed to create a new category.
// IsFixed and MonthlyBudget are only meaningful for expense categories.
type CreateCategoryRequest struct {
	Name          string              `json:"name" binding:"required"`
	Type          domain.CategoryType `json:"type" binding:"required,categorytype"`
	Color         string              `json:"color"`
	IsFixed       bool                `json:"isFixed"`
	MonthlyBudget decimal.Decimal     `json:"monthlyBudget"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
// Type is present only so that an attempted type change can be rejected
// explicitly rather than silently dropped.
type UpdateCategoryRequest struct {
	Name          *string              `json:"name"`
	Type          *domain.CategoryType `json:"type" binding:"omitempty,categorytype"`
	Color         *string              `json:"color"`
	IsFixed       *bool                `json:"isFixed"`
	MonthlyBudget *decimal.Decimal     `json:"monthlyBudget"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Type          domain.CategoryType `json:"type"`
	Color         string              `json:"color"`
	IsFixed       bool                `json:"isFixed"`
	MonthlyBudget decimal.Decimal     `json:"monthlyBudget"`
}

// ToCategoryResponse converts a domain.Category to a CategoryResponse DTO.
func ToCategoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:            cat.ID,
		Name:          cat.Name,
		Type:          cat.Type,
		Color:         cat.Color,
		IsFixed:       cat.IsFixed,
		MonthlyBudget: cat.MonthlyBudget,
	}
}

// ToListCategoryResponse converts a slice of domain.Category to response DTOs.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		res[i] = ToCategoryResponse(&cat)
	}
	return res
}
