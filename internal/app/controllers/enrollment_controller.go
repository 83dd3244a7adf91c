package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/learnsphere/internal/app/models/dto"
	"github.com/yigit/learnsphere/internal/app/services"
	"github.com/yigit/learnsphere/internal/middleware"
)

// EnrollmentController handles enrollment-related operations
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// Enroll enrolls a user in a course. Repeating an enrollment returns the
// existing record.
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req dto.EnrollRequest
	if !bindJSON(ctx, &req) {
		return
	}

	enrollment, err := c.enrollmentService.EnrollUserInCourse(ctx, req.UserID, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewEnrollmentResponse(enrollment)))
}

// GetEnrollmentByID retrieves an enrollment by ID
func (c *EnrollmentController) GetEnrollmentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	enrollment, err := c.enrollmentService.GetEnrollment(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewEnrollmentResponse(enrollment)))
}

// GetRoster lists every user with the courses they are enrolled in
func (c *EnrollmentController) GetRoster(ctx *gin.Context) {
	roster, err := c.enrollmentService.AdminUsersWithEnrollments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewRosterResponse(roster)))
}

// DeleteEnrollment removes an enrollment
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.enrollmentService.DeleteEnrollment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Enrollment deleted"}))
}
