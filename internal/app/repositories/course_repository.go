package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/learnsphere/internal/app/models"
	"github.com/yigit/learnsphere/internal/db"
	"github.com/yigit/learnsphere/internal/pkg/apperrors"
	"github.com/yigit/learnsphere/internal/pkg/dberrors"
	"github.com/yigit/learnsphere/internal/pkg/logger"
)

// CourseRepository handles course database operations
type CourseRepository struct {
	db db.Querier
	// Use squirrel instance with placeholder format
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(q db.Querier) *CourseRepository {
	return &CourseRepository{
		db: q,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *CourseRepository) WithTx(tx pgx.Tx) *CourseRepository {
	return &CourseRepository{db: tx, sb: r.sb}
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (name, instructor, duration_hours)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, course.Name, course.Instructor, course.DurationHours).Scan(&course.ID)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// AddCategory associates a course with a category. Repeating an existing
// association is a no-op thanks to the join table's primary key.
func (r *CourseRepository) AddCategory(ctx context.Context, courseID, categoryID int64) error {
	query := `
		INSERT INTO course_categories (course_id, category_id)
		VALUES ($1, $2)
		ON CONFLICT (course_id, category_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, courseID, categoryID)
	if err != nil {
		return fmt.Errorf("error associating course with category: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, name, instructor, duration_hours
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Name,
		&course.Instructor,
		&course.DurationHours,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// GetAll retrieves all courses
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT id, name, instructor, duration_hours
		FROM courses
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCourses(rows)
}

// SearchByName retrieves courses whose name contains the keyword,
// case-insensitively, in id order.
func (r *CourseRepository) SearchByName(ctx context.Context, keyword string) ([]*models.Course, error) {
	query := `
		SELECT id, name, instructor, duration_hours
		FROM courses
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, keyword)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCourses(rows)
}

// SearchByCategory retrieves courses associated with any category whose name
// contains the keyword, case-insensitively, in id order.
func (r *CourseRepository) SearchByCategory(ctx context.Context, keyword string) ([]*models.Course, error) {
	query := `
		SELECT DISTINCT c.id, c.name, c.instructor, c.duration_hours
		FROM courses c
		JOIN course_categories cc ON cc.course_id = c.id
		JOIN categories cat ON cat.id = cc.category_id
		WHERE cat.name ILIKE '%' || $1 || '%'
		ORDER BY c.id
	`

	rows, err := r.db.Query(ctx, query, keyword)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCourses(rows)
}

// CourseUpdate carries the optional fields of a partial course update. Nil
// fields are left unchanged.
type CourseUpdate struct {
	Name          *string
	Instructor    *string
	DurationHours *int
}

// Update applies a partial update to an existing course
func (r *CourseRepository) Update(ctx context.Context, id int64, update CourseUpdate) error {
	builder := r.sb.Update("courses").Where(squirrel.Eq{"id": id})

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Instructor != nil {
		builder = builder.Set("instructor", *update.Instructor)
	}
	if update.DurationHours != nil {
		builder = builder.Set("duration_hours", *update.DurationHours)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update course SQL")
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course by ID. Enrollments and reviews referencing the
// course block the delete at the foreign key.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM courses WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseHasRelations
		}
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// scanCourses collects course rows into a slice
func scanCourses(rows pgx.Rows) ([]*models.Course, error) {
	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Name,
			&course.Instructor,
			&course.DurationHours,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}
