package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"user-sync-service/app/domain"
	"user-sync-service/app/port"
	apperrors "user-sync-service/app/utils/errors"
)

// Header names populated by the authenticating reverse proxy
const (
	HeaderExternalID = "X-External-Id"
	HeaderUserEmail  = "X-User-Email"
	HeaderFirstName  = "X-User-First-Name"
	HeaderLastName   = "X-User-Last-Name"
)

// ContextKeyCurrentUser is the echo context key carrying the EnsureUserResult
const ContextKeyCurrentUser = "current_user"

// IdentityMiddleware registers the authenticated identity on first touch.
// The proxy in front of this service has already verified the Keycloak
// token and forwards the identity claims as headers; this middleware only
// guarantees a matching user record exists.
type IdentityMiddleware struct {
	registration port.RegistrationUsecase
	logger       *slog.Logger
}

// NewIdentityMiddleware creates a new identity middleware
func NewIdentityMiddleware(registration port.RegistrationUsecase, logger *slog.Logger) *IdentityMiddleware {
	return &IdentityMiddleware{
		registration: registration,
		logger:       logger,
	}
}

// EnsureIdentity resolves the forwarded identity into a user record and
// stores it on the request context. Requests without identity headers are
// rejected.
func (m *IdentityMiddleware) EnsureIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			externalID := c.Request().Header.Get(HeaderExternalID)
			email := c.Request().Header.Get(HeaderUserEmail)

			if externalID == "" || email == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "missing identity headers",
					"code":  "UNAUTHORIZED",
				})
			}

			result, err := m.registration.EnsureUserExists(c.Request().Context(), &domain.EnsureUserRequest{
				ExternalID: externalID,
				Email:      email,
				FirstName:  c.Request().Header.Get(HeaderFirstName),
				LastName:   c.Request().Header.Get(HeaderLastName),
			})
			if err != nil {
				m.logger.Error("identity registration failed", "external_id", externalID, "error", err)

				status := apperrors.GetHTTPStatusCode(err)
				return c.JSON(status, map[string]string{
					"error": "could not resolve user identity",
					"code":  string(apperrors.GetErrorCode(err)),
				})
			}

			c.Set(ContextKeyCurrentUser, result)
			return next(c)
		}
	}
}

// CurrentUser returns the EnsureUserResult stored by EnsureIdentity
func CurrentUser(c echo.Context) (*domain.EnsureUserResult, bool) {
	result, ok := c.Get(ContextKeyCurrentUser).(*domain.EnsureUserResult)
	return result, ok
}
