package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeUserNotFoundInUserService, "user not found in user service"),
			expected: "USER_NOT_FOUND_IN_USER_SERVICE: user not found in user service",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeKeycloakError, "keycloak service error", errors.New("connection refused")),
			expected: "KEYCLOAK_ERROR: keycloak service error (caused by: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_StatusCodes(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected int
	}{
		{ErrCodeUserNotFoundInUserService, http.StatusNotFound},
		{ErrCodeUserServiceUnavailable, http.StatusServiceUnavailable},
		{ErrCodeKeycloakError, http.StatusServiceUnavailable},
		{ErrCodeCircuitOpen, http.StatusServiceUnavailable},
		{ErrCodeOperationNotSupported, http.StatusBadRequest},
		{ErrCodeRollbackFailed, http.StatusInternalServerError},
		{ErrCodeUserExists, http.StatusConflict},
		{ErrCodeValidationFailed, http.StatusBadRequest},
		{ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
		{ErrorCode("UNKNOWN_CODE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New(tt.code, "test")
			assert.Equal(t, tt.expected, err.StatusCode)
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeDatabaseError, "database operation failed", cause)

	assert.True(t, errors.Is(err, cause))
}

func TestAppError_WithOperationID(t *testing.T) {
	err := New(ErrCodeUserServiceUnavailable, "user service temporarily unavailable").
		WithOperationID("op-123")

	assert.Equal(t, "op-123", err.OperationID())
}

func TestAppError_OperationID_Empty(t *testing.T) {
	err := New(ErrCodeUserNotFound, "user not found")
	assert.Empty(t, err.OperationID())
}

func TestAsAppError(t *testing.T) {
	appErr := New(ErrCodeConflict, "resource conflict")
	wrapped := fmt.Errorf("handler failed: %w", appErr)

	got, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrCodeConflict, got.Code)

	_, ok = AsAppError(errors.New("plain error"))
	assert.False(t, ok)
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeCircuitOpen, GetErrorCode(NewCircuitOpenError("keycloak", nil)))
	assert.Equal(t, ErrCodeInternalError, GetErrorCode(errors.New("plain")))
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", ErrUserNotFoundInUserService)

	assert.True(t, HasCode(err, ErrCodeUserNotFoundInUserService))
	assert.False(t, HasCode(err, ErrCodeUserServiceUnavailable))
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"service unavailable", ErrServiceUnavailable, true},
		{"user service unavailable", ErrUserServiceUnavailable, true},
		{"circuit open", NewCircuitOpenError("user-service", nil), true},
		{"not found", ErrUserNotFoundInUserService, false},
		{"conflict", ErrUserExists, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, IsRetryable(tt.err))
		})
	}
}

func TestGetHTTPStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, GetHTTPStatusCode(ErrUserNotFound))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatusCode(errors.New("plain")))
}
