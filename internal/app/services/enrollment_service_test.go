package services

import (
	"context"
	"errors"
	"testing"

	"github.com/yigit/learnsphere/internal/pkg/apperrors"
)

func TestEnrollUserInCourse(t *testing.T) {
	store := newMemStore()
	users := NewUserService(store)
	courses := NewCourseService(store)
	enrollments := NewEnrollmentService(store)
	ctx := context.Background()

	user, err := users.RegisterUser(ctx, "Test User", "test@example.com")
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	course, err := courses.AddCourse(ctx, "Java Fundamentals", "John Doe", 40, nil)
	if err != nil {
		t.Fatalf("AddCourse: %v", err)
	}

	enrollment, err := enrollments.EnrollUserInCourse(ctx, user.ID, course.ID)
	if err != nil {
		t.Fatalf("EnrollUserInCourse: %v", err)
	}
	if enrollment.ID == 0 {
		t.Error("expected enrollment to be assigned an id")
	}
	if enrollment.UserID != user.ID || enrollment.CourseID != course.ID {
		t.Errorf("enrollment links wrong pair: %+v", enrollment)
	}
	if enrollment.EnrolledAt.IsZero() {
		t.Error("expected enrolled_at to be set")
	}
}

func TestEnrollUserInCourseIdempotent(t *testing.T) {
	store := newMemStore()
	users := NewUserService(store)
	courses := NewCourseService(store)
	enrollments := NewEnrollmentService(store)
	ctx := context.Background()

	user, err := users.RegisterUser(ctx, "Test User", "test@example.com")
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	course, err := courses.AddCourse(ctx, "Java Fundamentals", "John Doe", 40, nil)
	if err != nil {
		t.Fatalf("AddCourse: %v", err)
	}

	first, err := enrollments.EnrollUserInCourse(ctx, user.ID, course.ID)
	if err != nil {
		t.Fatalf("first EnrollUserInCourse: %v", err)
	}
	second, err := enrollments.EnrollUserInCourse(ctx, user.ID, course.ID)
	if err != nil {
		t.Fatalf("second EnrollUserInCourse: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("expected the existing enrollment %d, got %d", first.ID, second.ID)
	}

	listed, err := enrollments.ListEnrollmentsByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListEnrollmentsByUser: %v", err)
	}
	if len(listed) != 1 {
		t.Errorf("expected a single enrollment, got %d", len(listed))
	}
}

func TestEnrollUnknownUserOrCourse(t *testing.T) {
	store := newMemStore()
	users := NewUserService(store)
	courses := NewCourseService(store)
	enrollments := NewEnrollmentService(store)
	ctx := context.Background()

	user, err := users.RegisterUser(ctx, "Test User", "test@example.com")
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	course, err := courses.AddCourse(ctx, "Java Fundamentals", "John Doe", 40, nil)
	if err != nil {
		t.Fatalf("AddCourse: %v", err)
	}

	if _, err := enrollments.EnrollUserInCourse(ctx, 999, course.ID); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := enrollments.EnrollUserInCourse(ctx, user.ID, 999); !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestListCoursesByUser(t *testing.T) {
	store := newMemStore()
	users := NewUserService(store)
	courses := NewCourseService(store)
	enrollments := NewEnrollmentService(store)
	ctx := context.Background()

	user, err := users.RegisterUser(ctx, "Test User", "test@example.com")
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	java, err := courses.AddCourse(ctx, "Java Fundamentals", "John Doe", 40, nil)
	if err != nil {
		t.Fatalf("AddCourse: %v", err)
	}
	marketing, err := courses.AddCourse(ctx, "Creative Marketing", "Jane Roe", 25, nil)
	if err != nil {
		t.Fatalf("AddCourse: %v", err)
	}
	if _, err := enrollments.EnrollUserInCourse(ctx, user.ID, java.ID); err != nil {
		t.Fatalf("EnrollUserInCourse: %v", err)
	}
	if _, err := enrollments.EnrollUserInCourse(ctx, user.ID, marketing.ID); err != nil {
		t.Fatalf("EnrollUserInCourse: %v", err)
	}

	enrolled, err := enrollments.ListCoursesByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListCoursesByUser: %v", err)
	}
	if len(enrolled) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(enrolled))
	}
	if enrolled[0].ID != java.ID || enrolled[1].ID != marketing.ID {
		t.Errorf("expected enrollment order, got [%d %d]", enrolled[0].ID, enrolled[1].ID)
	}

	if _, err := enrollments.ListCoursesByUser(ctx, 999); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAdminUsersWithEnrollments(t *testing.T) {
	store := newMemStore()
	users := NewUserService(store)
	courses := NewCourseService(store)
	enrollments := NewEnrollmentService(store)
	ctx := context.Background()

	enrolled, err := users.RegisterUser(ctx, "Enrolled User", "enrolled@example.com")
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	idle, err := users.RegisterUser(ctx, "Idle User", "idle@example.com")
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	course, err := courses.AddCourse(ctx, "Java Fundamentals", "John Doe", 40, nil)
	if err != nil {
		t.Fatalf("AddCourse: %v", err)
	}
	if _, err := enrollments.EnrollUserInCourse(ctx, enrolled.ID, course.ID); err != nil {
		t.Fatalf("EnrollUserInCourse: %v", err)
	}

	roster, err := enrollments.AdminUsersWithEnrollments(ctx)
	if err != nil {
		t.Fatalf("AdminUsersWithEnrollments: %v", err)
	}
	if len(roster) != 2 {
		t.Fatalf("expected 2 roster entries, got %d", len(roster))
	}
	if roster[0].User.ID != enrolled.ID {
		t.Errorf("expected user order preserved, got user %d first", roster[0].User.ID)
	}
	if len(roster[0].Courses) != 1 || roster[0].Courses[0].ID != course.ID {
		t.Errorf("expected enrolled user to list the course, got %+v", roster[0].Courses)
	}
	if roster[1].User.ID != idle.ID {
		t.Errorf("expected idle user second, got user %d", roster[1].User.ID)
	}
	if roster[1].Courses == nil || len(roster[1].Courses) != 0 {
		t.Errorf("expected empty, non-nil course list for idle user, got %+v", roster[1].Courses)
	}
}

func TestDeleteEnrollment(t *testing.T) {
	store := newMemStore()
	users := NewUserService(store)
	courses := NewCourseService(store)
	enrollments := NewEnrollmentService(store)
	ctx := context.Background()

	user, err := users.RegisterUser(ctx, "Test User", "test@example.com")
	if err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	course, err := courses.AddCourse(ctx, "Java Fundamentals", "John Doe", 40, nil)
	if err != nil {
		t.Fatalf("AddCourse: %v", err)
	}
	enrollment, err := enrollments.EnrollUserInCourse(ctx, user.ID, course.ID)
	if err != nil {
		t.Fatalf("EnrollUserInCourse: %v", err)
	}

	if err := enrollments.DeleteEnrollment(ctx, enrollment.ID); err != nil {
		t.Fatalf("DeleteEnrollment: %v", err)
	}
	if _, err := enrollments.GetEnrollment(ctx, enrollment.ID); !errors.Is(err, apperrors.ErrEnrollmentNotFound) {
		t.Errorf("expected ErrEnrollmentNotFound after delete, got %v", err)
	}
}
