package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/learnsphere/internal/app/models"
	"github.com/yigit/learnsphere/internal/pkg/apperrors"
	"github.com/yigit/learnsphere/internal/pkg/validation"
)

// ReviewService defines the interface for review-related operations
type ReviewService interface {
	AddReview(ctx context.Context, userID, courseID int64, rating int, text string) (*models.Review, error)
	GetReview(ctx context.Context, id int64) (*models.Review, error)
	ListReviewsForCourse(ctx context.Context, courseID int64) ([]*models.Review, error)
	GetAverageRatingForCourse(ctx context.Context, courseID int64) (*float64, error)
	DeleteReview(ctx context.Context, id int64) error
}

// reviewServiceImpl implements the ReviewService interface
type reviewServiceImpl struct {
	store Store
}

// NewReviewService creates a new review service instance
func NewReviewService(store Store) ReviewService {
	return &reviewServiceImpl{
		store: store,
	}
}

// AddReview records a user's review of a course. The user must be enrolled in
// the course; a repeated review from the same user replaces the earlier one.
func (s *reviewServiceImpl) AddReview(ctx context.Context, userID, courseID int64, rating int, text string) (*models.Review, error) {
	if !validation.IsValidRating(rating) {
		return nil, fmt.Errorf("%w: rating must be between %d and %d",
			apperrors.ErrInvalidRating, validation.RatingMin, validation.RatingMax)
	}

	review := &models.Review{
		UserID:   userID,
		CourseID: courseID,
		Rating:   rating,
		Text:     strings.TrimSpace(text),
	}

	err := s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		if _, err := r.Users.GetByID(ctx, userID); err != nil {
			return err
		}
		if _, err := r.Courses.GetByID(ctx, courseID); err != nil {
			return err
		}

		enrolled, err := r.Enrollments.ExistsByUserAndCourse(ctx, userID, courseID)
		if err != nil {
			return err
		}
		if !enrolled {
			return apperrors.ErrNotEnrolled
		}

		return r.Reviews.Upsert(ctx, review)
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

// GetReview retrieves a review by ID
func (s *reviewServiceImpl) GetReview(ctx context.Context, id int64) (*models.Review, error) {
	var review *models.Review
	err := s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		var err error
		review, err = r.Reviews.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

// ListReviewsForCourse retrieves all reviews for a course
func (s *reviewServiceImpl) ListReviewsForCourse(ctx context.Context, courseID int64) ([]*models.Review, error) {
	var reviews []*models.Review
	err := s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		if _, err := r.Courses.GetByID(ctx, courseID); err != nil {
			return err
		}

		var err error
		reviews, err = r.Reviews.ListByCourse(ctx, courseID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return reviews, nil
}

// GetAverageRatingForCourse returns the mean rating across a course's
// reviews, or nil when the course has no reviews.
func (s *reviewServiceImpl) GetAverageRatingForCourse(ctx context.Context, courseID int64) (*float64, error) {
	var avg *float64
	err := s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		var err error
		avg, err = r.Reviews.AverageForCourse(ctx, courseID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return avg, nil
}

// DeleteReview removes a review by ID
func (s *reviewServiceImpl) DeleteReview(ctx context.Context, id int64) error {
	return s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		return r.Reviews.Delete(ctx, id)
	})
}
