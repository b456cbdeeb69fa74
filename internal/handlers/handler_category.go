package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifedash/finances/internal/core/domain"
	portssvc "github.com/lifedash/finances/internal/core/ports/services"
	"github.com/lifedash/finances/internal/dto"
	"github.com/lifedash/finances/internal/middleware"
)

// categoryHandler handles HTTP requests related to categories.
type categoryHandler struct {
	categories portssvc.CategorySvcFacade
}

func registerCategoryRoutes(rg *gin.RouterGroup, categories portssvc.CategorySvcFacade) {
	h := &categoryHandler{categories: categories}

	group := rg.Group("/categories")
	{
		group.POST("", h.createCategory)
		group.GET("", h.listCategories)
		group.GET("/:id", h.getCategory)
		group.PUT("/:id", h.updateCategory)
		group.DELETE("/:id", h.deleteCategory)
	}
}

func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	category, err := h.categories.CreateCategory(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create category")
		return
	}

	logger.Info("Category created", slog.String("category_id", category.ID))
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// listCategories returns all categories, optionally filtered by type via the
// ?type=income|expense query parameter.
func (h *categoryHandler) listCategories(c *gin.Context) {
	ctx := c.Request.Context()

	if typeParam := c.Query("type"); typeParam != "" {
		categoryType := domain.CategoryType(typeParam)
		if !categoryType.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be income or expense"})
			return
		}
		categories, err := h.categories.ListCategoriesByType(ctx, categoryType)
		if err != nil {
			respondError(c, err, "Failed to list categories")
			return
		}
		c.JSON(http.StatusOK, dto.ToListCategoryResponse(categories))
		return
	}

	categories, err := h.categories.ListCategories(ctx)
	if err != nil {
		respondError(c, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCategoryResponse(categories))
}

func (h *categoryHandler) getCategory(c *gin.Context) {
	category, err := h.categories.GetCategoryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get category")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

func (h *categoryHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	category, err := h.categories.UpdateCategory(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update category")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

func (h *categoryHandler) deleteCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	if err := h.categories.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete category")
		return
	}

	logger.Info("Category deleted", slog.String("category_id", c.Param("id")))
	c.Status(http.StatusNoContent)
}
