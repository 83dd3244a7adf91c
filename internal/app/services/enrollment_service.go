package services

import (
	"context"

	"github.com/yigit/learnsphere/internal/app/models"
)

// EnrollmentService defines the interface for enrollment-related operations
type EnrollmentService interface {
	EnrollUserInCourse(ctx context.Context, userID, courseID int64) (*models.Enrollment, error)
	GetEnrollment(ctx context.Context, id int64) (*models.Enrollment, error)
	ListCoursesByUser(ctx context.Context, userID int64) ([]*models.Course, error)
	ListEnrollmentsByUser(ctx context.Context, userID int64) ([]*models.Enrollment, error)
	AdminUsersWithEnrollments(ctx context.Context) ([]*models.UserWithCourses, error)
	DeleteEnrollment(ctx context.Context, id int64) error
}

// enrollmentServiceImpl implements the EnrollmentService interface
type enrollmentServiceImpl struct {
	store Store
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(store Store) EnrollmentService {
	return &enrollmentServiceImpl{
		store: store,
	}
}

// EnrollUserInCourse enrolls a user in a course. Enrolling a second time is a
// no-op that returns the existing enrollment.
func (s *enrollmentServiceImpl) EnrollUserInCourse(ctx context.Context, userID, courseID int64) (*models.Enrollment, error) {
	var enrollment *models.Enrollment
	err := s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		if _, err := r.Users.GetByID(ctx, userID); err != nil {
			return err
		}
		if _, err := r.Courses.GetByID(ctx, courseID); err != nil {
			return err
		}

		candidate := &models.Enrollment{
			UserID:   userID,
			CourseID: courseID,
		}
		inserted, err := r.Enrollments.Create(ctx, candidate)
		if err != nil {
			return err
		}
		if inserted {
			enrollment = candidate
			return nil
		}

		// Lost the race or already enrolled; hand back the existing row.
		enrollment, err = r.Enrollments.GetByUserAndCourse(ctx, userID, courseID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return enrollment, nil
}

// GetEnrollment retrieves an enrollment by ID
func (s *enrollmentServiceImpl) GetEnrollment(ctx context.Context, id int64) (*models.Enrollment, error) {
	var enrollment *models.Enrollment
	err := s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		var err error
		enrollment, err = r.Enrollments.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return enrollment, nil
}

// ListCoursesByUser retrieves the courses a user is enrolled in, in enrollment
// order
func (s *enrollmentServiceImpl) ListCoursesByUser(ctx context.Context, userID int64) ([]*models.Course, error) {
	var courses []*models.Course
	err := s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		if _, err := r.Users.GetByID(ctx, userID); err != nil {
			return err
		}

		var err error
		courses, err = r.Enrollments.ListCoursesByUser(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return courses, nil
}

// ListEnrollmentsByUser retrieves a user's enrollment records
func (s *enrollmentServiceImpl) ListEnrollmentsByUser(ctx context.Context, userID int64) ([]*models.Enrollment, error) {
	var enrollments []*models.Enrollment
	err := s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		if _, err := r.Users.GetByID(ctx, userID); err != nil {
			return err
		}

		var err error
		enrollments, err = r.Enrollments.ListByUser(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return enrollments, nil
}

// AdminUsersWithEnrollments lists every user together with the courses they
// are enrolled in. Users without enrollments appear with an empty course list.
func (s *enrollmentServiceImpl) AdminUsersWithEnrollments(ctx context.Context) ([]*models.UserWithCourses, error) {
	var roster []*models.UserWithCourses
	err := s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		users, err := r.Users.GetAll(ctx)
		if err != nil {
			return err
		}

		roster = make([]*models.UserWithCourses, 0, len(users))
		for _, user := range users {
			courses, err := r.Enrollments.ListCoursesByUser(ctx, user.ID)
			if err != nil {
				return err
			}
			if courses == nil {
				courses = []*models.Course{}
			}

			roster = append(roster, &models.UserWithCourses{
				User:    user,
				Courses: courses,
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return roster, nil
}

// DeleteEnrollment removes an enrollment by ID
func (s *enrollmentServiceImpl) DeleteEnrollment(ctx context.Context, id int64) error {
	return s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		return r.Enrollments.Delete(ctx, id)
	})
}
