package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrBadRequest       = errors.New("bad request")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
)

// User errors. The entity-specific errors wrap the generic ones so callers
// can match either level with errors.Is.
var (
	ErrUserNotFound       = fmt.Errorf("user not found: %w", ErrResourceNotFound)
	ErrEmailAlreadyExists = fmt.Errorf("email already registered: %w", ErrResourceAlreadyExists)
)

// Category errors
var (
	ErrCategoryNotFound      = fmt.Errorf("category not found: %w", ErrResourceNotFound)
	ErrCategoryAlreadyExists = fmt.Errorf("category already exists: %w", ErrResourceAlreadyExists)
)

// Course errors
var (
	ErrCourseNotFound     = fmt.Errorf("course not found: %w", ErrResourceNotFound)
	ErrCourseHasRelations = fmt.Errorf("course still has enrollments or reviews: %w", ErrConflict)
)

// Enrollment errors
var (
	ErrEnrollmentNotFound = fmt.Errorf("enrollment not found: %w", ErrResourceNotFound)
)

// Review errors
var (
	ErrReviewNotFound = fmt.Errorf("review not found: %w", ErrResourceNotFound)
	ErrInvalidRating  = errors.New("rating must be between 0 and 10")
	ErrNotEnrolled    = errors.New("user must be enrolled to review this course")
)

// NewBadRequestError creates a bad-request error carrying a caller-facing
// message. The error middleware surfaces the message with the 400 response.
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError pairs a sentinel with a request-specific message. errors.Is
// still matches the sentinel through Unwrap.
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
