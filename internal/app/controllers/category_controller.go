package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/learnsphere/internal/app/models/dto"
	"github.com/yigit/learnsphere/internal/app/services"
	"github.com/yigit/learnsphere/internal/middleware"
)

// CategoryController handles category-related operations
type CategoryController struct {
	categoryService services.CategoryService
}

// NewCategoryController creates a new CategoryController
func NewCategoryController(categoryService services.CategoryService) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

// CreateCategory handles category creation
func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if !bindJSON(ctx, &req) {
		return
	}

	category, err := c.categoryService.CreateCategory(ctx, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewCategoryResponse(category)))
}

// GetCategoryByID retrieves a category by ID
func (c *CategoryController) GetCategoryByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	category, err := c.categoryService.GetCategory(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewCategoryResponse(category)))
}

// GetAllCategories retrieves all categories. An optional name query filters
// to the single category with that name.
func (c *CategoryController) GetAllCategories(ctx *gin.Context) {
	if name := ctx.Query("name"); name != "" {
		category, err := c.categoryService.FindCategoryByName(ctx, name)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewCategoryResponse(category)))
		return
	}

	categories, err := c.categoryService.ListCategories(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewCategoryListResponse(categories)))
}

// UpdateCategory renames a category
func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.categoryService.UpdateCategory(ctx, id, req.Name); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Category updated"}))
}

// DeleteCategory deletes a category
func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.categoryService.DeleteCategory(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Category deleted"}))
}
