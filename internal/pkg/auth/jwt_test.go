package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/yigit/learnsphere/internal/pkg/apperrors"
)

func testJWTService(expiry time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: expiry,
		TokenIssuer: "learnsphere.test",
	})
}

func TestGenerateAndValidateAdminToken(t *testing.T) {
	svc := testJWTService(time.Hour)

	token, expiresIn, err := svc.GenerateAdminToken("admin@example.com")
	if err != nil {
		t.Fatalf("GenerateAdminToken: %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("claims.Email = %q", claims.Email)
	}
	if claims.Role != RoleAdmin {
		t.Errorf("claims.Role = %q, want %q", claims.Role, RoleAdmin)
	}
	if claims.Issuer != "learnsphere.test" {
		t.Errorf("claims.Issuer = %q", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("expected a token ID")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := testJWTService(-time.Minute)

	token, _, err := svc.GenerateAdminToken("admin@example.com")
	if err != nil {
		t.Fatalf("GenerateAdminToken: %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Errorf("ValidateToken error = %v, want ErrTokenExpired", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := testJWTService(time.Hour).GenerateAdminToken("admin@example.com")
	if err != nil {
		t.Fatalf("GenerateAdminToken: %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "different-secret", TokenExpiry: time.Hour})
	if _, err := other.ValidateToken(token); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("ValidateToken error = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateTokenMalformed(t *testing.T) {
	svc := testJWTService(time.Hour)

	for _, token := range []string{"", "not.a.token"} {
		if _, err := svc.ValidateToken(token); !errors.Is(err, apperrors.ErrTokenInvalid) {
			t.Errorf("ValidateToken(%q) error = %v, want ErrTokenInvalid", token, err)
		}
	}
}

func TestExtractBearerToken(t *testing.T) {
	if got, err := ExtractBearerToken("Bearer abc123"); err != nil || got != "abc123" {
		t.Errorf("ExtractBearerToken = %q, %v", got, err)
	}
	if got, err := ExtractBearerToken("abc123"); err != nil || got != "abc123" {
		t.Errorf("ExtractBearerToken without prefix = %q, %v", got, err)
	}
	if _, err := ExtractBearerToken(""); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("ExtractBearerToken(\"\") error = %v, want ErrTokenInvalid", err)
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPassword(hash, "s3cret-pass") {
		t.Error("CheckPassword rejected the correct password")
	}
	if CheckPassword(hash, "wrong-pass") {
		t.Error("CheckPassword accepted a wrong password")
	}
}
