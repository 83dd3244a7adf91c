package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/learnsphere/internal/app/models"
	"github.com/yigit/learnsphere/internal/app/repositories"
	"github.com/yigit/learnsphere/internal/db"
)

// Services defined in this package:
// - CategoryService: CRUD for course categories
// - CourseService: course CRUD, category association and catalog search
// - UserService: registration and user CRUD
// - EnrollmentService: enrollment and the admin roster listing
// - ReviewService: review upsert and average ratings
//
// Every public operation runs inside exactly one transaction obtained from the
// Store; on error the transaction rolls back in full, so partial writes never
// persist.

// CategoryRepo is the category repository surface the services consume.
type CategoryRepo interface {
	Create(ctx context.Context, category *models.Category) error
	GetOrCreate(ctx context.Context, name string) (*models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	GetByName(ctx context.Context, name string) (*models.Category, error)
	GetAll(ctx context.Context) ([]*models.Category, error)
	GetByCourseID(ctx context.Context, courseID int64) ([]*models.Category, error)
	Update(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
}

// CourseRepo is the course repository surface the services consume.
type CourseRepo interface {
	Create(ctx context.Context, course *models.Course) error
	AddCategory(ctx context.Context, courseID, categoryID int64) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	SearchByName(ctx context.Context, keyword string) ([]*models.Course, error)
	SearchByCategory(ctx context.Context, keyword string) ([]*models.Course, error)
	Update(ctx context.Context, id int64, update repositories.CourseUpdate) error
	Delete(ctx context.Context, id int64) error
}

// UserRepo is the user repository surface the services consume.
type UserRepo interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, id int64, update repositories.UserUpdate) error
	Delete(ctx context.Context, id int64) error
}

// EnrollmentRepo is the enrollment repository surface the services consume.
type EnrollmentRepo interface {
	Create(ctx context.Context, enrollment *models.Enrollment) (bool, error)
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	GetByUserAndCourse(ctx context.Context, userID, courseID int64) (*models.Enrollment, error)
	ExistsByUserAndCourse(ctx context.Context, userID, courseID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Enrollment, error)
	ListCoursesByUser(ctx context.Context, userID int64) ([]*models.Course, error)
	Delete(ctx context.Context, id int64) error
}

// ReviewRepo is the review repository surface the services consume.
type ReviewRepo interface {
	Upsert(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id int64) (*models.Review, error)
	ListByCourse(ctx context.Context, courseID int64) ([]*models.Review, error)
	AverageForCourse(ctx context.Context, courseID int64) (*float64, error)
	Delete(ctx context.Context, id int64) error
}

// Repos bundles the transaction-bound repositories handed to a unit of work.
type Repos struct {
	Categories  CategoryRepo
	Courses     CourseRepo
	Users       UserRepo
	Enrollments EnrollmentRepo
	Reviews     ReviewRepo
}

// Store opens one transaction per unit of work and hands the callback
// repositories bound to that transaction.
type Store interface {
	InTx(ctx context.Context, fn func(ctx context.Context, r Repos) error) error
}

// sqlStore implements Store on top of a transaction runner.
type sqlStore struct {
	db    db.TxRunner
	repos *repositories.Repositories
}

// NewStore creates a Store backed by the database connection pool.
func NewStore(database db.TxRunner, repos *repositories.Repositories) Store {
	return &sqlStore{
		db:    database,
		repos: repos,
	}
}

// InTx runs fn inside a single transaction, rebinding every repository to it.
func (s *sqlStore) InTx(ctx context.Context, fn func(ctx context.Context, r Repos) error) error {
	return s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, Repos{
			Categories:  s.repos.CategoryRepository.WithTx(tx),
			Courses:     s.repos.CourseRepository.WithTx(tx),
			Users:       s.repos.UserRepository.WithTx(tx),
			Enrollments: s.repos.EnrollmentRepository.WithTx(tx),
			Reviews:     s.repos.ReviewRepository.WithTx(tx),
		})
	})
}
