package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/learnsphere/internal/app/models"
	"github.com/yigit/learnsphere/internal/app/repositories"
	"github.com/yigit/learnsphere/internal/pkg/apperrors"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	AddCourse(ctx context.Context, name, instructor string, durationHours int, categoryNames []string) (*models.Course, error)
	GetCourse(ctx context.Context, id int64) (*models.Course, error)
	ListCourses(ctx context.Context) ([]*models.Course, error)
	SearchCourses(ctx context.Context, keyword string) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, update repositories.CourseUpdate) error
	DeleteCourse(ctx context.Context, id int64) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	store Store
}

// NewCourseService creates a new course service instance
func NewCourseService(store Store) CourseService {
	return &courseServiceImpl{
		store: store,
	}
}

// validateCourse validates course fields before database operations
func validateCourse(name, instructor string, durationHours int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: course name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(instructor) == "" {
		return fmt.Errorf("%w: instructor cannot be empty", apperrors.ErrValidationFailed)
	}
	if durationHours <= 0 {
		return fmt.Errorf("%w: duration must be a positive number of hours", apperrors.ErrValidationFailed)
	}
	return nil
}

// AddCourse creates a course and associates it with the named categories,
// creating missing categories on the fly. Category get-or-create and the
// course insert share one transaction.
func (s *courseServiceImpl) AddCourse(ctx context.Context, name, instructor string, durationHours int, categoryNames []string) (*models.Course, error) {
	name = strings.TrimSpace(name)
	instructor = strings.TrimSpace(instructor)
	if err := validateCourse(name, instructor, durationHours); err != nil {
		return nil, err
	}

	course := &models.Course{
		Name:          name,
		Instructor:    instructor,
		DurationHours: durationHours,
	}

	err := s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		if err := r.Courses.Create(ctx, course); err != nil {
			return err
		}

		for _, categoryName := range categoryNames {
			categoryName = strings.TrimSpace(categoryName)
			if categoryName == "" {
				continue
			}

			category, err := r.Categories.GetOrCreate(ctx, categoryName)
			if err != nil {
				return err
			}

			if err := r.Courses.AddCategory(ctx, course.ID, category.ID); err != nil {
				return err
			}

			course.Categories = append(course.Categories, category)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return course, nil
}

// GetCourse retrieves a course by ID with its categories attached
func (s *courseServiceImpl) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	var course *models.Course
	err := s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		var err error
		course, err = r.Courses.GetByID(ctx, id)
		if err != nil {
			return err
		}

		course.Categories, err = r.Categories.GetByCourseID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return course, nil
}

// ListCourses retrieves all courses
func (s *courseServiceImpl) ListCourses(ctx context.Context) ([]*models.Course, error) {
	var courses []*models.Course
	err := s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		var err error
		courses, err = r.Courses.GetAll(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return courses, nil
}

// SearchCourses matches the keyword against course names and category names,
// case-insensitively. Name matches come first; courses matched only through a
// category follow, and each course appears once.
func (s *courseServiceImpl) SearchCourses(ctx context.Context, keyword string) ([]*models.Course, error) {
	keyword = strings.TrimSpace(keyword)

	var result []*models.Course
	err := s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		byName, err := r.Courses.SearchByName(ctx, keyword)
		if err != nil {
			return err
		}

		byCategory, err := r.Courses.SearchByCategory(ctx, keyword)
		if err != nil {
			return err
		}

		result = mergeCourses(byName, byCategory)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// mergeCourses concatenates two course lists, dropping duplicates by course id
// while preserving first-seen order.
func mergeCourses(lists ...[]*models.Course) []*models.Course {
	seen := make(map[int64]bool)
	var merged []*models.Course
	for _, list := range lists {
		for _, course := range list {
			if seen[course.ID] {
				continue
			}
			seen[course.ID] = true
			merged = append(merged, course)
		}
	}
	return merged
}

// UpdateCourse applies a partial update to an existing course. Nil fields are
// left unchanged; an update with no fields set is a no-op.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id int64, update repositories.CourseUpdate) error {
	if update.Name != nil {
		trimmed := strings.TrimSpace(*update.Name)
		if trimmed == "" {
			return fmt.Errorf("%w: course name cannot be empty", apperrors.ErrValidationFailed)
		}
		update.Name = &trimmed
	}
	if update.Instructor != nil {
		trimmed := strings.TrimSpace(*update.Instructor)
		if trimmed == "" {
			return fmt.Errorf("%w: instructor cannot be empty", apperrors.ErrValidationFailed)
		}
		update.Instructor = &trimmed
	}
	if update.DurationHours != nil && *update.DurationHours <= 0 {
		return fmt.Errorf("%w: duration must be a positive number of hours", apperrors.ErrValidationFailed)
	}

	return s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		if update.Name == nil && update.Instructor == nil && update.DurationHours == nil {
			// Nothing to change, but the caller still learns about a bad ID.
			_, err := r.Courses.GetByID(ctx, id)
			return err
		}
		return r.Courses.Update(ctx, id, update)
	})
}

// DeleteCourse deletes a course by ID
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	return s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		return r.Courses.Delete(ctx, id)
	})
}
