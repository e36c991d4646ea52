package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/apperr"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/ds"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/dto"
	"github.com/tttaaaiiissseee/kiro-aws-app20251214-sub000/internal/app/repository"
)

// GetCategories lists categories
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {object} dto.CategoryListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/categories [get]
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.Repository.GetCategories()
	if err != nil {
		h.respondError(c, err)
		return
	}

	data := make([]dto.CategoryResponse, len(categories))
	for i, cat := range categories {
		data[i] = categoryResponse(cat)
	}
	c.JSON(http.StatusOK, dto.CategoryListResponse{Data: data, Count: len(data)})
}

// GetCategory returns one category
// @Summary Get category
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/categories/{id} [get]
func (h *Handler) GetCategory(c *gin.Context) {
	id, err := pathID(c, "id", "category")
	if err != nil {
		h.respondError(c, err)
		return
	}

	category, err := h.Repository.GetCategoryByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categoryResponse(*category))
}

// CreateCategory creates a category
// @Summary Create category
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/categories [post]
func (h *Handler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperr.Validation(err.Error()))
		return
	}

	category, err := h.Repository.CreateCategory(req.Name, req.Description, req.Color)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, categoryResponse(*category))
}

// UpdateCategory updates a category
// @Summary Update category
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body dto.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/categories/{id} [put]
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, err := pathID(c, "id", "category")
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperr.Validation(err.Error()))
		return
	}

	if err := h.Repository.UpdateCategory(id, req.Name, req.Description, req.Color); err != nil {
		h.respondError(c, err)
		return
	}

	category, err := h.Repository.GetCategoryByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categoryResponse(*category))
}

// ReorderCategories applies a batch of sort ordinals
// @Summary Reorder categories
// @Description Applies all ordinal updates in one transaction; an unknown ID rolls back the batch
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body dto.ReorderCategoriesRequest true "New ordering"
// @Success 200 {object} dto.CategoryListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/categories [put]
func (h *Handler) ReorderCategories(c *gin.Context) {
	var req dto.ReorderCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperr.Validation(err.Error()))
		return
	}

	orders := make([]repository.CategoryOrder, len(req.Orders))
	for i, o := range req.Orders {
		orders[i] = repository.CategoryOrder{ID: o.ID, SortOrder: o.SortOrder}
	}
	if err := h.Repository.ReorderCategories(orders); err != nil {
		h.respondError(c, err)
		return
	}

	h.GetCategories(c)
}

// DeleteCategory deletes an empty category
// @Summary Delete category
// @Description Fails while any service still references the category
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/categories/{id} [delete]
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, err := pathID(c, "id", "category")
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.Repository.DeleteCategory(id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func categoryResponse(cat ds.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          cat.ID,
		Name:        cat.Name,
		Description: cat.Description,
		Color:       cat.Color,
		SortOrder:   cat.SortOrder,
		CreatedAt:   cat.CreatedAt,
		UpdatedAt:   cat.UpdatedAt,
	}
}
