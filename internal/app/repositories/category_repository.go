package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/learnsphere/internal/app/models"
	"github.com/yigit/learnsphere/internal/db"
	"github.com/yigit/learnsphere/internal/pkg/apperrors"
	"github.com/yigit/learnsphere/internal/pkg/dberrors"
)

// CategoryRepository handles database operations for categories
type CategoryRepository struct {
	db db.Querier
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(q db.Querier) *CategoryRepository {
	return &CategoryRepository{
		db: q,
	}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *CategoryRepository) WithTx(tx pgx.Tx) *CategoryRepository {
	return &CategoryRepository{db: tx}
}

// Create inserts a new category. Uniqueness is enforced by the storage-level
// unique index on LOWER(name).
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, category.Name).Scan(&category.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "uq_categories_name_lower") {
			return apperrors.ErrCategoryAlreadyExists
		}
		return fmt.Errorf("error creating category: %w", err)
	}

	return nil
}

// GetOrCreate returns the category with the given name (case-insensitive),
// inserting it first if absent. The upsert keeps lookup and insert atomic so
// concurrent callers cannot race a duplicate in.
func (r *CategoryRepository) GetOrCreate(ctx context.Context, name string) (*models.Category, error) {
	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		ON CONFLICT (LOWER(name)) DO UPDATE SET name = categories.name
		RETURNING id, name
	`

	var category models.Category
	err := r.db.QueryRow(ctx, query, name).Scan(&category.ID, &category.Name)
	if err != nil {
		return nil, fmt.Errorf("error upserting category: %w", err)
	}

	return &category, nil
}

// GetByID retrieves a category by ID
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	query := `
		SELECT id, name
		FROM categories
		WHERE id = $1
	`

	var category models.Category
	err := r.db.QueryRow(ctx, query, id).Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("error retrieving category: %w", err)
	}

	return &category, nil
}

// GetByName retrieves a category by name using case-insensitive comparison
func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	query := `
		SELECT id, name
		FROM categories
		WHERE LOWER(name) = LOWER($1)
	`

	var category models.Category
	err := r.db.QueryRow(ctx, query, name).Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("error retrieving category by name: %w", err)
	}

	return &category, nil
}

// GetAll retrieves all categories
func (r *CategoryRepository) GetAll(ctx context.Context) ([]*models.Category, error) {
	query := `
		SELECT id, name
		FROM categories
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

// GetByCourseID retrieves the categories associated with a course
func (r *CategoryRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Category, error) {
	query := `
		SELECT c.id, c.name
		FROM categories c
		JOIN course_categories cc ON cc.category_id = c.id
		WHERE cc.course_id = $1
		ORDER BY c.id
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

// Update renames an existing category
func (r *CategoryRepository) Update(ctx context.Context, id int64, name string) error {
	query := `
		UPDATE categories
		SET name = $1
		WHERE id = $2
	`

	cmdTag, err := r.db.Exec(ctx, query, name, id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCategoryAlreadyExists
		}
		return fmt.Errorf("error updating category: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCategoryNotFound
	}

	return nil
}

// Delete deletes a category by ID. Join-table rows are removed by the schema
// cascade; courses themselves are untouched.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM categories WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting category: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCategoryNotFound
	}

	return nil
}
