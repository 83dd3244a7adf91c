package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/learnsphere/internal/app/models"
	"github.com/yigit/learnsphere/internal/pkg/apperrors"
	"github.com/yigit/learnsphere/internal/pkg/validation"
)

// CategoryService defines the interface for category-related operations
type CategoryService interface {
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	GetCategory(ctx context.Context, id int64) (*models.Category, error)
	FindCategoryByName(ctx context.Context, name string) (*models.Category, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)
	UpdateCategory(ctx context.Context, id int64, newName string) error
	DeleteCategory(ctx context.Context, id int64) error
}

// categoryServiceImpl implements the CategoryService interface
type categoryServiceImpl struct {
	store Store
}

// NewCategoryService creates a new category service instance
func NewCategoryService(store Store) CategoryService {
	return &categoryServiceImpl{
		store: store,
	}
}

// validateCategoryName validates a category name before database operations
func validateCategoryName(name string) error {
	if !validation.IsValidName(name) {
		return fmt.Errorf("%w: category name cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateCategory trims the name and inserts a new category. Uniqueness relies
// on the storage-level constraint; a duplicate fails the transaction.
func (s *categoryServiceImpl) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	category := &models.Category{Name: name}
	err := s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		return r.Categories.Create(ctx, category)
	})
	if err != nil {
		return nil, err
	}

	return category, nil
}

// GetCategory retrieves a category by ID
func (s *categoryServiceImpl) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	var category *models.Category
	err := s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		var err error
		category, err = r.Categories.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return category, nil
}

// FindCategoryByName retrieves a category by name, case-insensitively
func (s *categoryServiceImpl) FindCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	var category *models.Category
	err := s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		var err error
		category, err = r.Categories.GetByName(ctx, strings.TrimSpace(name))
		return err
	})
	if err != nil {
		return nil, err
	}

	return category, nil
}

// ListCategories retrieves all categories
func (s *categoryServiceImpl) ListCategories(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		var err error
		categories, err = r.Categories.GetAll(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// UpdateCategory renames an existing category
func (s *categoryServiceImpl) UpdateCategory(ctx context.Context, id int64, newName string) error {
	newName = strings.TrimSpace(newName)
	if err := validateCategoryName(newName); err != nil {
		return err
	}

	return s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		return r.Categories.Update(ctx, id, newName)
	})
}

// DeleteCategory deletes a category by ID
func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, id int64) error {
	return s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		return r.Categories.Delete(ctx, id)
	})
}
