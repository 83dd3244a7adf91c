package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/learnsphere/internal/app/models/dto"
	"github.com/yigit/learnsphere/internal/app/repositories"
	"github.com/yigit/learnsphere/internal/app/services"
	"github.com/yigit/learnsphere/internal/middleware"
)

// UserController handles user-related operations
type UserController struct {
	userService       services.UserService
	enrollmentService services.EnrollmentService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService, enrollmentService services.EnrollmentService) *UserController {
	return &UserController{
		userService:       userService,
		enrollmentService: enrollmentService,
	}
}

// RegisterUser handles user registration
func (c *UserController) RegisterUser(ctx *gin.Context) {
	var req dto.RegisterUserRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := c.userService.RegisterUser(ctx, req.Name, req.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewUserResponse(user)))
}

// GetUserByID retrieves a user by ID
func (c *UserController) GetUserByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	user, err := c.userService.GetUser(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewUserResponse(user)))
}

// GetAllUsers lists registered users. An optional email query filters to the
// single user with that address.
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	if email := ctx.Query("email"); email != "" {
		user, err := c.userService.FindUserByEmail(ctx, email)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewUserResponse(user)))
		return
	}

	users, err := c.userService.ListUsers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewUserListResponse(users)))
}

// UpdateUser applies a partial update to a user
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !bindJSON(ctx, &req) {
		return
	}

	update := repositories.UserUpdate{
		Name:  req.Name,
		Email: req.Email,
	}
	if err := c.userService.UpdateUser(ctx, id, update); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "User updated"}))
}

// DeleteUser deletes a user together with their enrollments and reviews
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.userService.DeleteUser(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "User deleted"}))
}

// GetUserCourses lists the courses a user is enrolled in
func (c *UserController) GetUserCourses(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	courses, err := c.enrollmentService.ListCoursesByUser(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewCourseListResponse(courses)))
}
