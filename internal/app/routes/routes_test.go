package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/learnsphere/internal/app/controllers"
	"github.com/yigit/learnsphere/internal/app/models"
	"github.com/yigit/learnsphere/internal/app/services"
	"github.com/yigit/learnsphere/internal/middleware"
	"github.com/yigit/learnsphere/internal/pkg/auth"
)

// Stub services covering only the handlers the routing tests touch. The
// embedded interfaces satisfy the rest of the method sets.
type stubCategoryService struct{ services.CategoryService }

func (stubCategoryService) ListCategories(context.Context) ([]*models.Category, error) {
	return []*models.Category{}, nil
}
func (stubCategoryService) DeleteCategory(context.Context, int64) error { return nil }

type stubCourseService struct{ services.CourseService }

func (stubCourseService) DeleteCourse(context.Context, int64) error { return nil }

type stubUserService struct{ services.UserService }

func (stubUserService) RegisterUser(_ context.Context, name, email string) (*models.User, error) {
	return &models.User{ID: 1, Name: name, Email: email}, nil
}
func (stubUserService) ListUsers(context.Context) ([]*models.User, error) {
	return []*models.User{}, nil
}
func (stubUserService) DeleteUser(context.Context, int64) error { return nil }

type stubEnrollmentService struct{ services.EnrollmentService }

func (stubEnrollmentService) DeleteEnrollment(context.Context, int64) error { return nil }

type stubReviewService struct{ services.ReviewService }

func (stubReviewService) DeleteReview(context.Context, int64) error { return nil }

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "routing-test-secret",
		TokenExpiry: time.Hour,
		TokenIssuer: "learnsphere.test",
	})

	categorySvc := stubCategoryService{}
	courseSvc := stubCourseService{}
	userSvc := stubUserService{}
	enrollmentSvc := stubEnrollmentService{}
	reviewSvc := stubReviewService{}

	router := gin.New()
	SetupRouter(
		router,
		controllers.NewAuthController(nil),
		controllers.NewCategoryController(categorySvc),
		controllers.NewCourseController(courseSvc, reviewSvc),
		controllers.NewUserController(userSvc, enrollmentSvc),
		controllers.NewEnrollmentController(enrollmentSvc),
		controllers.NewReviewController(reviewSvc),
		middleware.NewAuthMiddleware(jwtService),
	)
	return router, jwtService
}

func doRequest(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestMutatingRoutesRequireAdminToken(t *testing.T) {
	router, _ := newTestRouter(t)

	guarded := []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/api/v1/categories/1"},
		{http.MethodDelete, "/api/v1/categories/1"},
		{http.MethodPut, "/api/v1/courses/1"},
		{http.MethodDelete, "/api/v1/courses/1"},
		{http.MethodPut, "/api/v1/users/1"},
		{http.MethodDelete, "/api/v1/users/1"},
		{http.MethodDelete, "/api/v1/enrollments/1"},
		{http.MethodDelete, "/api/v1/reviews/1"},
		{http.MethodGet, "/api/v1/admin/users"},
		{http.MethodGet, "/api/v1/admin/roster"},
	}
	for _, route := range guarded {
		rec := doRequest(router, route.method, route.path, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token: status %d, want %d", route.method, route.path, rec.Code, http.StatusUnauthorized)
		}
	}
}

func TestMutatingRoutesAcceptAdminToken(t *testing.T) {
	router, jwtService := newTestRouter(t)

	token, _, err := jwtService.GenerateAdminToken("admin@example.com")
	if err != nil {
		t.Fatalf("GenerateAdminToken: %v", err)
	}

	deletes := []string{
		"/api/v1/categories/1",
		"/api/v1/courses/1",
		"/api/v1/users/1",
		"/api/v1/enrollments/1",
		"/api/v1/reviews/1",
	}
	for _, path := range deletes {
		rec := doRequest(router, http.MethodDelete, path, token, "")
		if rec.Code != http.StatusOK {
			t.Errorf("DELETE %s with admin token: status %d, want %d", path, rec.Code, http.StatusOK)
		}
	}

	rec := doRequest(router, http.MethodGet, "/api/v1/admin/users", token, "")
	if rec.Code != http.StatusOK {
		t.Errorf("GET /api/v1/admin/users with admin token: status %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestPublicRoutesStayOpen(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/v1/categories", "", "")
	if rec.Code != http.StatusOK {
		t.Errorf("GET /api/v1/categories: status %d, want %d", rec.Code, http.StatusOK)
	}

	rec = doRequest(router, http.MethodPost, "/api/v1/users", "", `{"name":"Test User","email":"test@example.com"}`)
	if rec.Code != http.StatusCreated {
		t.Errorf("POST /api/v1/users: status %d, want %d", rec.Code, http.StatusCreated)
	}
}

func TestRejectedTokenVariants(t *testing.T) {
	router, _ := newTestRouter(t)

	other := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "a-different-secret",
		TokenExpiry: time.Hour,
	})
	foreign, _, err := other.GenerateAdminToken("admin@example.com")
	if err != nil {
		t.Fatalf("GenerateAdminToken: %v", err)
	}

	for name, token := range map[string]string{
		"garbage token":     "not.a.token",
		"wrong signing key": foreign,
	} {
		rec := doRequest(router, http.MethodDelete, "/api/v1/users/1", token, "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: status %d, want %d", name, rec.Code, http.StatusUnauthorized)
		}
	}
}
