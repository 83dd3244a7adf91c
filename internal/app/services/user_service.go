package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/learnsphere/internal/app/models"
	"github.com/yigit/learnsphere/internal/app/repositories"
	"github.com/yigit/learnsphere/internal/pkg/apperrors"
	"github.com/yigit/learnsphere/internal/pkg/validation"
)

// UserService defines the interface for user-related operations
type UserService interface {
	RegisterUser(ctx context.Context, name, email string) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, id int64, update repositories.UserUpdate) error
	DeleteUser(ctx context.Context, id int64) error
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	store Store
}

// NewUserService creates a new user service instance
func NewUserService(store Store) UserService {
	return &userServiceImpl{
		store: store,
	}
}

// RegisterUser creates a user with a unique email. Emails are stored
// lower-cased so that uniqueness is case-insensitive.
func (s *userServiceImpl) RegisterUser(ctx context.Context, name, email string) (*models.User, error) {
	name = strings.TrimSpace(name)
	if !validation.IsValidName(name) {
		return nil, fmt.Errorf("%w: user name cannot be empty", apperrors.ErrValidationFailed)
	}

	email = validation.NormalizeEmail(email)
	if !validation.IsValidEmail(email) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidEmail, email)
	}

	user := &models.User{
		Name:  name,
		Email: email,
	}

	err := s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		exists, err := r.Users.EmailExists(ctx, email)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.ErrEmailAlreadyExists
		}

		return r.Users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser retrieves a user by ID
func (s *userServiceImpl) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user *models.User
	err := s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		var err error
		user, err = r.Users.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// FindUserByEmail retrieves a user by email, case-insensitively
func (s *userServiceImpl) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	email = validation.NormalizeEmail(email)

	var user *models.User
	err := s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		var err error
		user, err = r.Users.GetByEmail(ctx, email)
		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// ListUsers retrieves all users
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	err := s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		var err error
		users, err = r.Users.GetAll(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

// UpdateUser applies a partial update to an existing user. A changed email is
// normalized, validated and checked for conflicts with other users.
func (s *userServiceImpl) UpdateUser(ctx context.Context, id int64, update repositories.UserUpdate) error {
	if update.Name != nil {
		trimmed := strings.TrimSpace(*update.Name)
		if !validation.IsValidName(trimmed) {
			return fmt.Errorf("%w: user name cannot be empty", apperrors.ErrValidationFailed)
		}
		update.Name = &trimmed
	}
	if update.Email != nil {
		normalized := validation.NormalizeEmail(*update.Email)
		if !validation.IsValidEmail(normalized) {
			return fmt.Errorf("%w: %s", apperrors.ErrInvalidEmail, normalized)
		}
		update.Email = &normalized
	}

	return s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		if update.Name == nil && update.Email == nil {
			// Nothing to change, but the caller still learns about a bad ID.
			_, err := r.Users.GetByID(ctx, id)
			return err
		}
		if update.Email != nil {
			current, err := r.Users.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if current.Email != *update.Email {
				exists, err := r.Users.EmailExists(ctx, *update.Email)
				if err != nil {
					return err
				}
				if exists {
					return apperrors.ErrEmailAlreadyExists
				}
			}
		}

		return r.Users.Update(ctx, id, update)
	})
}

// DeleteUser deletes a user by ID together with their enrollments and reviews
func (s *userServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	return s.store.InTx(ctx, func(ctx context.Context, r Repos) error {
		return r.Users.Delete(ctx, id)
	})
}
