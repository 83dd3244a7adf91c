package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/learnsphere/internal/app/models/dto"
	"github.com/yigit/learnsphere/internal/app/repositories"
	"github.com/yigit/learnsphere/internal/app/services"
	"github.com/yigit/learnsphere/internal/middleware"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
	reviewService services.ReviewService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService, reviewService services.ReviewService) *CourseController {
	return &CourseController{
		courseService: courseService,
		reviewService: reviewService,
	}
}

// CreateCourse handles course creation, creating any missing categories
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !bindJSON(ctx, &req) {
		return
	}

	course, err := c.courseService.AddCourse(ctx, req.Name, req.Instructor, req.DurationHours, req.Categories)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewCourseResponse(course)))
}

// GetCourseByID retrieves a course with its categories
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewCourseResponse(course)))
}

// GetAllCourses lists the catalog; a search query matches course and
// category names
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	if keyword := ctx.Query("search"); keyword != "" {
		found, err := c.courseService.SearchCourses(ctx, keyword)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewCourseListResponse(found)))
		return
	}

	all, err := c.courseService.ListCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewCourseListResponse(all)))
}

// UpdateCourse applies a partial update to a course
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if !bindJSON(ctx, &req) {
		return
	}

	update := repositories.CourseUpdate{
		Name:          req.Name,
		Instructor:    req.Instructor,
		DurationHours: req.DurationHours,
	}
	if err := c.courseService.UpdateCourse(ctx, id, update); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Course updated"}))
}

// DeleteCourse deletes a course that has no enrollments or reviews
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Course deleted"}))
}

// GetCourseReviews lists the reviews left on a course
func (c *CourseController) GetCourseReviews(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	reviews, err := c.reviewService.ListReviewsForCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewReviewListResponse(reviews)))
}

// GetCourseAverageRating returns the course's mean rating, null when the
// course has no reviews
func (c *CourseController) GetCourseAverageRating(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	avg, err := c.reviewService.GetAverageRatingForCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.AverageRatingResponse{
		CourseID: id,
		Average:  avg,
	}))
}
