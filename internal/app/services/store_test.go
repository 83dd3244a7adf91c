package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/yigit/learnsphere/internal/app/models"
	"github.com/yigit/learnsphere/internal/app/repositories"
	"github.com/yigit/learnsphere/internal/pkg/apperrors"
)

// memStore is an in-memory Store used by the service tests. It mimics the
// SQL-backed repositories closely enough for service-level behavior:
// case-insensitive uniqueness, substring search, upserts and cascading user
// deletes.
type memStore struct {
	categories  map[int64]*models.Category
	courses     map[int64]*models.Course
	courseCats  map[int64][]int64
	users       map[int64]*models.User
	enrollments map[int64]*models.Enrollment
	reviews     map[int64]*models.Review
	nextID      int64
}

func newMemStore() *memStore {
	return &memStore{
		categories:  make(map[int64]*models.Category),
		courses:     make(map[int64]*models.Course),
		courseCats:  make(map[int64][]int64),
		users:       make(map[int64]*models.User),
		enrollments: make(map[int64]*models.Enrollment),
		reviews:     make(map[int64]*models.Review),
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) InTx(ctx context.Context, fn func(ctx context.Context, r Repos) error) error {
	return fn(ctx, Repos{
		Categories:  (*memCategoryRepo)(m),
		Courses:     (*memCourseRepo)(m),
		Users:       (*memUserRepo)(m),
		Enrollments: (*memEnrollmentRepo)(m),
		Reviews:     (*memReviewRepo)(m),
	})
}

func sortedIDs[T any](items map[int64]T) []int64 {
	ids := make([]int64, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type memCategoryRepo memStore

func (m *memCategoryRepo) Create(_ context.Context, category *models.Category) error {
	for _, existing := range m.categories {
		if strings.EqualFold(existing.Name, category.Name) {
			return apperrors.ErrCategoryAlreadyExists
		}
	}
	category.ID = (*memStore)(m).id()
	m.categories[category.ID] = &models.Category{ID: category.ID, Name: category.Name}
	return nil
}

func (m *memCategoryRepo) GetOrCreate(ctx context.Context, name string) (*models.Category, error) {
	for _, existing := range m.categories {
		if strings.EqualFold(existing.Name, name) {
			return &models.Category{ID: existing.ID, Name: existing.Name}, nil
		}
	}
	category := &models.Category{Name: name}
	if err := m.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (m *memCategoryRepo) GetByID(_ context.Context, id int64) (*models.Category, error) {
	category, ok := m.categories[id]
	if !ok {
		return nil, apperrors.ErrCategoryNotFound
	}
	return &models.Category{ID: category.ID, Name: category.Name}, nil
}

func (m *memCategoryRepo) GetByName(_ context.Context, name string) (*models.Category, error) {
	for _, category := range m.categories {
		if strings.EqualFold(category.Name, name) {
			return &models.Category{ID: category.ID, Name: category.Name}, nil
		}
	}
	return nil, apperrors.ErrCategoryNotFound
}

func (m *memCategoryRepo) GetAll(_ context.Context) ([]*models.Category, error) {
	var out []*models.Category
	for _, id := range sortedIDs(m.categories) {
		out = append(out, m.categories[id])
	}
	return out, nil
}

func (m *memCategoryRepo) GetByCourseID(_ context.Context, courseID int64) ([]*models.Category, error) {
	var out []*models.Category
	for _, catID := range m.courseCats[courseID] {
		out = append(out, m.categories[catID])
	}
	return out, nil
}

func (m *memCategoryRepo) Update(_ context.Context, id int64, name string) error {
	category, ok := m.categories[id]
	if !ok {
		return apperrors.ErrCategoryNotFound
	}
	for _, other := range m.categories {
		if other.ID != id && strings.EqualFold(other.Name, name) {
			return apperrors.ErrCategoryAlreadyExists
		}
	}
	category.Name = name
	return nil
}

func (m *memCategoryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.categories[id]; !ok {
		return apperrors.ErrCategoryNotFound
	}
	delete(m.categories, id)
	for courseID, catIDs := range m.courseCats {
		kept := catIDs[:0]
		for _, catID := range catIDs {
			if catID != id {
				kept = append(kept, catID)
			}
		}
		m.courseCats[courseID] = kept
	}
	return nil
}

type memCourseRepo memStore

func (m *memCourseRepo) Create(_ context.Context, course *models.Course) error {
	course.ID = (*memStore)(m).id()
	m.courses[course.ID] = &models.Course{
		ID:            course.ID,
		Name:          course.Name,
		Instructor:    course.Instructor,
		DurationHours: course.DurationHours,
	}
	return nil
}

func (m *memCourseRepo) AddCategory(_ context.Context, courseID, categoryID int64) error {
	for _, existing := range m.courseCats[courseID] {
		if existing == categoryID {
			return nil
		}
	}
	m.courseCats[courseID] = append(m.courseCats[courseID], categoryID)
	return nil
}

func (m *memCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := m.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return &models.Course{
		ID:            course.ID,
		Name:          course.Name,
		Instructor:    course.Instructor,
		DurationHours: course.DurationHours,
	}, nil
}

func (m *memCourseRepo) GetAll(_ context.Context) ([]*models.Course, error) {
	var out []*models.Course
	for _, id := range sortedIDs(m.courses) {
		out = append(out, m.courses[id])
	}
	return out, nil
}

func (m *memCourseRepo) SearchByName(_ context.Context, keyword string) ([]*models.Course, error) {
	needle := strings.ToLower(keyword)
	var out []*models.Course
	for _, id := range sortedIDs(m.courses) {
		if strings.Contains(strings.ToLower(m.courses[id].Name), needle) {
			out = append(out, m.courses[id])
		}
	}
	return out, nil
}

func (m *memCourseRepo) SearchByCategory(_ context.Context, keyword string) ([]*models.Course, error) {
	needle := strings.ToLower(keyword)
	var out []*models.Course
	for _, id := range sortedIDs(m.courses) {
		for _, catID := range m.courseCats[id] {
			if strings.Contains(strings.ToLower(m.categories[catID].Name), needle) {
				out = append(out, m.courses[id])
				break
			}
		}
	}
	return out, nil
}

func (m *memCourseRepo) Update(_ context.Context, id int64, update repositories.CourseUpdate) error {
	course, ok := m.courses[id]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	if update.Name != nil {
		course.Name = *update.Name
	}
	if update.Instructor != nil {
		course.Instructor = *update.Instructor
	}
	if update.DurationHours != nil {
		course.DurationHours = *update.DurationHours
	}
	return nil
}

func (m *memCourseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	for _, enrollment := range m.enrollments {
		if enrollment.CourseID == id {
			return apperrors.ErrCourseHasRelations
		}
	}
	delete(m.courses, id)
	delete(m.courseCats, id)
	return nil
}

type memUserRepo memStore

func (m *memUserRepo) Create(_ context.Context, user *models.User) error {
	for _, existing := range m.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = (*memStore)(m).id()
	m.users[user.ID] = &models.User{ID: user.ID, Name: user.Name, Email: user.Email}
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &models.User{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range m.users {
		if strings.EqualFold(user.Email, email) {
			return &models.User{ID: user.ID, Name: user.Name, Email: user.Email}, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *memUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, user := range m.users {
		if strings.EqualFold(user.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUserRepo) GetAll(_ context.Context) ([]*models.User, error) {
	var out []*models.User
	for _, id := range sortedIDs(m.users) {
		out = append(out, m.users[id])
	}
	return out, nil
}

func (m *memUserRepo) Update(_ context.Context, id int64, update repositories.UserUpdate) error {
	user, ok := m.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	return nil
}

func (m *memUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(m.users, id)
	for eid, enrollment := range m.enrollments {
		if enrollment.UserID == id {
			delete(m.enrollments, eid)
		}
	}
	for rid, review := range m.reviews {
		if review.UserID == id {
			delete(m.reviews, rid)
		}
	}
	return nil
}

type memEnrollmentRepo memStore

func (m *memEnrollmentRepo) Create(_ context.Context, enrollment *models.Enrollment) (bool, error) {
	for _, existing := range m.enrollments {
		if existing.UserID == enrollment.UserID && existing.CourseID == enrollment.CourseID {
			return false, nil
		}
	}
	enrollment.ID = (*memStore)(m).id()
	enrollment.EnrolledAt = time.Now()
	m.enrollments[enrollment.ID] = &models.Enrollment{
		ID:         enrollment.ID,
		UserID:     enrollment.UserID,
		CourseID:   enrollment.CourseID,
		EnrolledAt: enrollment.EnrolledAt,
	}
	return true, nil
}

func (m *memEnrollmentRepo) GetByID(_ context.Context, id int64) (*models.Enrollment, error) {
	enrollment, ok := m.enrollments[id]
	if !ok {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	return enrollment, nil
}

func (m *memEnrollmentRepo) GetByUserAndCourse(_ context.Context, userID, courseID int64) (*models.Enrollment, error) {
	for _, enrollment := range m.enrollments {
		if enrollment.UserID == userID && enrollment.CourseID == courseID {
			return enrollment, nil
		}
	}
	return nil, apperrors.ErrEnrollmentNotFound
}

func (m *memEnrollmentRepo) ExistsByUserAndCourse(_ context.Context, userID, courseID int64) (bool, error) {
	for _, enrollment := range m.enrollments {
		if enrollment.UserID == userID && enrollment.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memEnrollmentRepo) ListByUser(_ context.Context, userID int64) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	for _, id := range sortedIDs(m.enrollments) {
		if m.enrollments[id].UserID == userID {
			out = append(out, m.enrollments[id])
		}
	}
	return out, nil
}

func (m *memEnrollmentRepo) ListCoursesByUser(_ context.Context, userID int64) ([]*models.Course, error) {
	var out []*models.Course
	for _, id := range sortedIDs(m.enrollments) {
		if m.enrollments[id].UserID == userID {
			out = append(out, m.courses[m.enrollments[id].CourseID])
		}
	}
	return out, nil
}

func (m *memEnrollmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.enrollments[id]; !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	delete(m.enrollments, id)
	return nil
}

type memReviewRepo memStore

func (m *memReviewRepo) Upsert(_ context.Context, review *models.Review) error {
	for _, existing := range m.reviews {
		if existing.UserID == review.UserID && existing.CourseID == review.CourseID {
			existing.Rating = review.Rating
			existing.Text = review.Text
			review.ID = existing.ID
			review.CreatedAt = existing.CreatedAt
			return nil
		}
	}
	review.ID = (*memStore)(m).id()
	review.CreatedAt = time.Now()
	m.reviews[review.ID] = &models.Review{
		ID:        review.ID,
		UserID:    review.UserID,
		CourseID:  review.CourseID,
		Rating:    review.Rating,
		Text:      review.Text,
		CreatedAt: review.CreatedAt,
	}
	return nil
}

func (m *memReviewRepo) GetByID(_ context.Context, id int64) (*models.Review, error) {
	review, ok := m.reviews[id]
	if !ok {
		return nil, apperrors.ErrReviewNotFound
	}
	return review, nil
}

func (m *memReviewRepo) ListByCourse(_ context.Context, courseID int64) ([]*models.Review, error) {
	var out []*models.Review
	for _, id := range sortedIDs(m.reviews) {
		if m.reviews[id].CourseID == courseID {
			out = append(out, m.reviews[id])
		}
	}
	return out, nil
}

func (m *memReviewRepo) AverageForCourse(_ context.Context, courseID int64) (*float64, error) {
	var sum, count float64
	for _, review := range m.reviews {
		if review.CourseID == courseID {
			sum += float64(review.Rating)
			count++
		}
	}
	if count == 0 {
		return nil, nil
	}
	avg := sum / count
	return &avg, nil
}

func (m *memReviewRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.reviews[id]; !ok {
		return apperrors.ErrReviewNotFound
	}
	delete(m.reviews, id)
	return nil
}
