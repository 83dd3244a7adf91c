package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	CategoryRepository   *CategoryRepository
	CourseRepository     *CourseRepository
	UserRepository       *UserRepository
	EnrollmentRepository *EnrollmentRepository
	ReviewRepository     *ReviewRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CategoryRepository:   NewCategoryRepository(db),
		CourseRepository:     NewCourseRepository(db),
		UserRepository:       NewUserRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
		ReviewRepository:     NewReviewRepository(db),
	}
}
