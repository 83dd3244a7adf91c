package dto

import "github.com/yigit/learnsphere/internal/app/models"

// CategoryResponse represents basic category information
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateCategoryRequest represents category creation data
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateCategoryRequest represents category rename data
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryListResponse represents a list of categories
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// NewCategoryResponse maps a category model to its response form
func NewCategoryResponse(category *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
	}
}

// NewCategoryListResponse maps category models to a list response
func NewCategoryListResponse(categories []*models.Category) CategoryListResponse {
	out := CategoryListResponse{Categories: make([]CategoryResponse, 0, len(categories))}
	for _, category := range categories {
		out.Categories = append(out.Categories, NewCategoryResponse(category))
	}
	return out
}
