package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/learnsphere/internal/app/models"
	"github.com/yigit/learnsphere/internal/db"
	"github.com/yigit/learnsphere/internal/pkg/apperrors"
)

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	db db.Querier
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(q db.Querier) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: q,
	}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *EnrollmentRepository) WithTx(tx pgx.Tx) *EnrollmentRepository {
	return &EnrollmentRepository{db: tx}
}

// Create inserts an enrollment unless the (user, course) pair already exists.
// It reports whether a row was inserted; on conflict the enrollment is left
// untouched and the caller fetches the existing row. The conflict clause keeps
// check and insert atomic under concurrent enrollment.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) (bool, error) {
	query := `
		INSERT INTO enrollments (user_id, course_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, course_id) DO NOTHING
		RETURNING id, enrolled_at
	`

	err := r.db.QueryRow(ctx, query, enrollment.UserID, enrollment.CourseID).
		Scan(&enrollment.ID, &enrollment.EnrolledAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Conflict: the pair is already enrolled
			return false, nil
		}
		return false, fmt.Errorf("error creating enrollment: %w", err)
	}

	return true, nil
}

// GetByID retrieves an enrollment by ID
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	query := `
		SELECT id, user_id, course_id, enrolled_at
		FROM enrollments
		WHERE id = $1
	`

	var enrollment models.Enrollment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&enrollment.ID,
		&enrollment.UserID,
		&enrollment.CourseID,
		&enrollment.EnrolledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return &enrollment, nil
}

// GetByUserAndCourse retrieves the enrollment for a (user, course) pair
func (r *EnrollmentRepository) GetByUserAndCourse(ctx context.Context, userID, courseID int64) (*models.Enrollment, error) {
	query := `
		SELECT id, user_id, course_id, enrolled_at
		FROM enrollments
		WHERE user_id = $1 AND course_id = $2
	`

	var enrollment models.Enrollment
	err := r.db.QueryRow(ctx, query, userID, courseID).Scan(
		&enrollment.ID,
		&enrollment.UserID,
		&enrollment.CourseID,
		&enrollment.EnrolledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return &enrollment, nil
}

// ExistsByUserAndCourse checks whether a (user, course) enrollment exists
func (r *EnrollmentRepository) ExistsByUserAndCourse(ctx context.Context, userID, courseID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM enrollments WHERE user_id = $1 AND course_id = $2)`,
		userID, courseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment existence: %w", err)
	}

	return exists, nil
}

// ListByUser retrieves all enrollments of a user
func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Enrollment, error) {
	query := `
		SELECT id, user_id, course_id, enrolled_at
		FROM enrollments
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		if err := rows.Scan(
			&enrollment.ID,
			&enrollment.UserID,
			&enrollment.CourseID,
			&enrollment.EnrolledAt,
		); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, &enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// ListCoursesByUser retrieves the courses a user is enrolled in, joined
// through their enrollments
func (r *EnrollmentRepository) ListCoursesByUser(ctx context.Context, userID int64) ([]*models.Course, error) {
	query := `
		SELECT c.id, c.name, c.instructor, c.duration_hours
		FROM courses c
		JOIN enrollments e ON e.course_id = c.id
		WHERE e.user_id = $1
		ORDER BY e.id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCourses(rows)
}

// Delete deletes an enrollment by ID
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM enrollments WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}
