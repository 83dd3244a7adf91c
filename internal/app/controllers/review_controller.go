package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/learnsphere/internal/app/models/dto"
	"github.com/yigit/learnsphere/internal/app/services"
	"github.com/yigit/learnsphere/internal/middleware"
)

// ReviewController handles review-related operations
type ReviewController struct {
	reviewService services.ReviewService
}

// NewReviewController creates a new ReviewController
func NewReviewController(reviewService services.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

// AddReview records a review; a repeated review from the same user replaces
// the earlier one
func (c *ReviewController) AddReview(ctx *gin.Context) {
	var req dto.AddReviewRequest
	if !bindJSON(ctx, &req) {
		return
	}

	review, err := c.reviewService.AddReview(ctx, req.UserID, req.CourseID, *req.Rating, req.Text)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewReviewResponse(review)))
}

// GetReviewByID retrieves a review by ID
func (c *ReviewController) GetReviewByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	review, err := c.reviewService.GetReview(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewReviewResponse(review)))
}

// DeleteReview removes a review
func (c *ReviewController) DeleteReview(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.reviewService.DeleteReview(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Review deleted"}))
}
