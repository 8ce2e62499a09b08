package keycloak

import (
	"context"
	"errors"
	"net/http"

	"github.com/Nerzal/gocloak/v13"

	apperrors "user-sync-service/app/utils/errors"
)

// transformError maps Keycloak admin API failures to the application error
// taxonomy. 4xx responses are non-retryable and map to their saga-level
// equivalents; network and timeout failures map to SERVICE_UNAVAILABLE so
// callers can distinguish "rejected" from "unreachable".
func transformError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperrors.Wrapf(apperrors.ErrCodeKeycloakError, err, "keycloak %s timed out", operation).
			WithContext("dependency", "keycloak")
	}

	var apiErr *gocloak.APIError
	if errors.As(err, &apiErr) {
		return transformAPIError(apiErr, operation)
	}

	// No HTTP status available: treat as a transport failure
	return apperrors.Wrapf(apperrors.ErrCodeKeycloakError, err, "keycloak %s failed", operation).
		WithContext("dependency", "keycloak")
}

func transformAPIError(apiErr *gocloak.APIError, operation string) error {
	switch apiErr.Code {
	case http.StatusNotFound:
		return apperrors.Wrapf(apperrors.ErrCodeNotFound, apiErr, "keycloak %s: account not found", operation).
			WithContext("dependency", "keycloak")
	case http.StatusConflict:
		return apperrors.Wrapf(apperrors.ErrCodeConflict, apiErr, "keycloak %s: conflict", operation).
			WithContext("dependency", "keycloak")
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperrors.Wrapf(apperrors.ErrCodeKeycloakError, apiErr, "keycloak %s: not authorized", operation).
			WithContext("dependency", "keycloak").
			WithContext("status", apiErr.Code)
	case 0:
		// gocloak reports pure transport errors with a zero status code
		return apperrors.Wrapf(apperrors.ErrCodeKeycloakError, apiErr, "keycloak %s unreachable", operation).
			WithContext("dependency", "keycloak")
	}

	if apiErr.Code >= http.StatusBadRequest && apiErr.Code < http.StatusInternalServerError {
		return apperrors.Wrapf(apperrors.ErrCodeBadRequest, apiErr, "keycloak %s rejected", operation).
			WithContext("dependency", "keycloak").
			WithContext("status", apiErr.Code)
	}

	return apperrors.Wrapf(apperrors.ErrCodeKeycloakError, apiErr, "keycloak %s failed", operation).
		WithContext("dependency", "keycloak").
		WithContext("status", apiErr.Code)
}
