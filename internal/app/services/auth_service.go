package services

import (
	"context"

	"github.com/yigit/learnsphere/internal/pkg/apperrors"
	"github.com/yigit/learnsphere/internal/pkg/auth"
	"github.com/yigit/learnsphere/internal/pkg/validation"
)

// AuthService defines the interface for admin authentication
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, expiresIn int, err error)
}

// authServiceImpl implements the AuthService interface. The catalog has a
// single administrator account configured at startup, so login checks the
// credentials against configuration rather than the user table.
type authServiceImpl struct {
	jwtService        *auth.JWTService
	adminEmail        string
	adminPasswordHash string
}

// NewAuthService creates a new auth service instance
func NewAuthService(jwtService *auth.JWTService, adminEmail, adminPasswordHash string) AuthService {
	return &authServiceImpl{
		jwtService:        jwtService,
		adminEmail:        validation.NormalizeEmail(adminEmail),
		adminPasswordHash: adminPasswordHash,
	}
}

// Login verifies the admin credentials and issues an access token
func (s *authServiceImpl) Login(_ context.Context, email, password string) (string, int, error) {
	email = validation.NormalizeEmail(email)
	if email != s.adminEmail || !auth.CheckPassword(s.adminPasswordHash, password) {
		return "", 0, apperrors.ErrInvalidCredentials
	}

	return s.jwtService.GenerateAdminToken(email)
}
