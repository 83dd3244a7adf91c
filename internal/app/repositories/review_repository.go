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

// ReviewRepository handles review database operations
type ReviewRepository struct {
	db db.Querier
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(q db.Querier) *ReviewRepository {
	return &ReviewRepository{
		db: q,
	}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *ReviewRepository) WithTx(tx pgx.Tx) *ReviewRepository {
	return &ReviewRepository{db: tx}
}

// Upsert inserts a review or, when the (user, course) pair already has one,
// updates its rating and text in place. created_at keeps the original value on
// update. The review's ID and CreatedAt are filled from the final row.
func (r *ReviewRepository) Upsert(ctx context.Context, review *models.Review) error {
	query := `
		INSERT INTO reviews (user_id, course_id, rating, review_text)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, course_id)
		DO UPDATE SET rating = EXCLUDED.rating, review_text = EXCLUDED.review_text
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, review.UserID, review.CourseID, review.Rating, review.Text).
		Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		return fmt.Errorf("error upserting review: %w", err)
	}

	return nil
}

// GetByID retrieves a review by ID
func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	query := `
		SELECT id, user_id, course_id, rating, review_text, created_at
		FROM reviews
		WHERE id = $1
	`

	var review models.Review
	err := r.db.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.UserID,
		&review.CourseID,
		&review.Rating,
		&review.Text,
		&review.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReviewNotFound
		}
		return nil, fmt.Errorf("error retrieving review: %w", err)
	}

	return &review, nil
}

// GetByUserAndCourse retrieves the review for a (user, course) pair
func (r *ReviewRepository) GetByUserAndCourse(ctx context.Context, userID, courseID int64) (*models.Review, error) {
	query := `
		SELECT id, user_id, course_id, rating, review_text, created_at
		FROM reviews
		WHERE user_id = $1 AND course_id = $2
	`

	var review models.Review
	err := r.db.QueryRow(ctx, query, userID, courseID).Scan(
		&review.ID,
		&review.UserID,
		&review.CourseID,
		&review.Rating,
		&review.Text,
		&review.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReviewNotFound
		}
		return nil, fmt.Errorf("error retrieving review: %w", err)
	}

	return &review, nil
}

// ListByCourse retrieves all reviews for a course
func (r *ReviewRepository) ListByCourse(ctx context.Context, courseID int64) ([]*models.Review, error) {
	query := `
		SELECT id, user_id, course_id, rating, review_text, created_at
		FROM reviews
		WHERE course_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []*models.Review
	for rows.Next() {
		var review models.Review
		if err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.CourseID,
			&review.Rating,
			&review.Text,
			&review.CreatedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}

// AverageForCourse returns the arithmetic mean of all ratings for a course,
// or nil when the course has no reviews. SQL AVG over zero rows is NULL, which
// keeps "no ratings" distinct from a genuine zero mean.
func (r *ReviewRepository) AverageForCourse(ctx context.Context, courseID int64) (*float64, error) {
	query := `
		SELECT AVG(rating)::float8
		FROM reviews
		WHERE course_id = $1
	`

	var avg *float64
	err := r.db.QueryRow(ctx, query, courseID).Scan(&avg)
	if err != nil {
		return nil, fmt.Errorf("error computing average rating: %w", err)
	}

	return avg, nil
}

// Delete deletes a review by ID
func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM reviews WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting review: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrReviewNotFound
	}

	return nil
}
