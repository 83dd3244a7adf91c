package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/learnsphere/internal/app/controllers"
	"github.com/yigit/learnsphere/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	categoryController *controllers.CategoryController,
	courseController *controllers.CourseController,
	userController *controllers.UserController,
	enrollmentController *controllers.EnrollmentController,
	reviewController *controllers.ReviewController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Updates and deletes are administrative; each carries the JWT guard.
	adminOnly := authMiddleware.AdminRequired()

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Catalog routes ---
	categories := v1.Group("/categories")
	{
		categories.GET("", categoryController.GetAllCategories)
		categories.GET("/:id", categoryController.GetCategoryByID)
		categories.POST("", categoryController.CreateCategory)
		categories.PUT("/:id", adminOnly, categoryController.UpdateCategory)
		categories.DELETE("/:id", adminOnly, categoryController.DeleteCategory)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.GET("/:id/reviews", courseController.GetCourseReviews)
		courses.GET("/:id/average-rating", courseController.GetCourseAverageRating)
		courses.POST("", courseController.CreateCourse)
		courses.PUT("/:id", adminOnly, courseController.UpdateCourse)
		courses.DELETE("/:id", adminOnly, courseController.DeleteCourse)
	}

	users := v1.Group("/users")
	{
		users.POST("", userController.RegisterUser)
		users.GET("/:id", userController.GetUserByID)
		users.GET("/:id/courses", userController.GetUserCourses)
		users.PUT("/:id", adminOnly, userController.UpdateUser)
		users.DELETE("/:id", adminOnly, userController.DeleteUser)
	}

	enrollments := v1.Group("/enrollments")
	{
		enrollments.POST("", enrollmentController.Enroll)
		enrollments.GET("/:id", enrollmentController.GetEnrollmentByID)
		enrollments.DELETE("/:id", adminOnly, enrollmentController.DeleteEnrollment)
	}

	reviews := v1.Group("/reviews")
	{
		reviews.POST("", reviewController.AddReview)
		reviews.GET("/:id", reviewController.GetReviewByID)
		reviews.DELETE("/:id", adminOnly, reviewController.DeleteReview)
	}

	// --- Admin listings ---
	admin := v1.Group("/admin")
	admin.Use(adminOnly)
	{
		admin.GET("/users", userController.GetAllUsers)
		admin.GET("/roster", enrollmentController.GetRoster)
	}
}
