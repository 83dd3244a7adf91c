package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yigit/learnsphere/internal/app/models/dto"
	"github.com/yigit/learnsphere/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	HandleAPIError(ctx, err)

	var body dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding error response: %v", err)
	}
	return rec.Code, body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"invalid rating", apperrors.ErrInvalidRating, http.StatusUnprocessableEntity, dto.ErrorCodeInvalidRating},
		{"not enrolled", apperrors.ErrNotEnrolled, http.StatusUnprocessableEntity, dto.ErrorCodeNotEnrolled},
		{"invalid email", apperrors.ErrInvalidEmail, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"course has relations", apperrors.ErrCourseHasRelations, http.StatusConflict, dto.ErrorCodeResourceConflict},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := handleError(t, tt.err)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if body.Error == nil || body.Error.Code != tt.wantCode {
				t.Errorf("error code = %+v, want %s", body.Error, tt.wantCode)
			}
		})
	}
}

func TestHandleAPIErrorNotFoundMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{apperrors.ErrUserNotFound, "User not found"},
		{apperrors.ErrCourseNotFound, "Course not found"},
		{apperrors.ErrReviewNotFound, "Review not found"},
		{apperrors.ErrResourceNotFound, "Resource not found"},
	}
	for _, tt := range tests {
		status, body := handleError(t, tt.err)
		if status != http.StatusNotFound {
			t.Errorf("%v: status = %d, want 404", tt.err, status)
		}
		if body.Error == nil || body.Error.Message != tt.want {
			t.Errorf("%v: message = %+v, want %q", tt.err, body.Error, tt.want)
		}
	}
}

func TestHandleAPIErrorBadRequestMessage(t *testing.T) {
	status, body := handleError(t, apperrors.NewBadRequestError("id must be a positive number"))
	if status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
	if body.Error == nil || body.Error.Message != "id must be a positive number" {
		t.Errorf("message = %+v, want the bad-request message", body.Error)
	}

	// A bare sentinel keeps the generic message.
	status, body = handleError(t, apperrors.ErrBadRequest)
	if status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
	if body.Error == nil || body.Error.Message != "Bad request" {
		t.Errorf("message = %+v, want %q", body.Error, "Bad request")
	}
}
