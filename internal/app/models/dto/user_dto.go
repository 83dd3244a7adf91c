package dto

import "github.com/yigit/learnsphere/internal/app/models"

// UserResponse represents basic user information
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RegisterUserRequest represents user registration data
type RegisterUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// UpdateUserRequest represents a partial user update; omitted fields are left
// unchanged
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
}

// UserListResponse represents a list of users
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// NewUserResponse maps a user model to its response form
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

// NewUserListResponse maps user models to a list response
func NewUserListResponse(users []*models.User) UserListResponse {
	out := UserListResponse{Users: make([]UserResponse, 0, len(users))}
	for _, user := range users {
		out.Users = append(out.Users, NewUserResponse(user))
	}
	return out
}
