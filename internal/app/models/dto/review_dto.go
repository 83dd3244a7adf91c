package dto

import (
	"time"

	"github.com/yigit/learnsphere/internal/app/models"
)

// ReviewResponse represents a review record
type ReviewResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	CourseID  int64     `json:"courseId"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AddReviewRequest represents review submission data. Rating is a pointer so
// that a rating of 0, the bottom of the scale, still binds.
type AddReviewRequest struct {
	UserID   int64  `json:"userId" binding:"required,gt=0"`
	CourseID int64  `json:"courseId" binding:"required,gt=0"`
	Rating   *int   `json:"rating" binding:"required"`
	Text     string `json:"text"`
}

// ReviewListResponse represents a list of reviews
type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}

// AverageRatingResponse represents a course's mean rating; Average is null
// when the course has no reviews
type AverageRatingResponse struct {
	CourseID int64    `json:"courseId"`
	Average  *float64 `json:"average"`
}

// NewReviewResponse maps a review model to its response form
func NewReviewResponse(review *models.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		UserID:    review.UserID,
		CourseID:  review.CourseID,
		Rating:    review.Rating,
		Text:      review.Text,
		CreatedAt: review.CreatedAt,
	}
}

// NewReviewListResponse maps review models to a list response
func NewReviewListResponse(reviews []*models.Review) ReviewListResponse {
	out := ReviewListResponse{Reviews: make([]ReviewResponse, 0, len(reviews))}
	for _, review := range reviews {
		out.Reviews = append(out.Reviews, NewReviewResponse(review))
	}
	return out
}
