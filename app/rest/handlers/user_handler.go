package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"user-sync-service/app/domain"
	"user-sync-service/app/port"
	custommw "user-sync-service/app/rest/middleware"
	apperrors "user-sync-service/app/utils/errors"
	"user-sync-service/app/utils/validator"
)

// UserHandler handles user management HTTP requests
type UserHandler struct {
	sagaUsecase         port.UserSagaUsecase
	registrationUsecase port.RegistrationUsecase
	validator           *validator.Validator
	logger              *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(sagaUsecase port.UserSagaUsecase, registrationUsecase port.RegistrationUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		sagaUsecase:         sagaUsecase,
		registrationUsecase: registrationUsecase,
		validator:           validator.New(),
		logger:              logger,
	}
}

// CreateUser creates a user in Keycloak and the user-record store
// @Summary Create user
// @Description Create a user across Keycloak and the user-record store
// @Tags users
// @Accept json
// @Produce json
// @Param body body domain.CreateUserRequest true "User creation request"
// @Success 201 {object} domain.CreateUserResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /v1/users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, h.logger, apperrors.New(apperrors.ErrCodeInvalidInput, "invalid request body"))
	}
	if err := h.validator.Validate(&req); err != nil {
		return writeError(c, h.logger, apperrors.NewValidationError(err.Error()))
	}

	result, err := h.sagaUsecase.ExecuteCreateUser(ctx, &req)
	if err != nil {
		h.logger.Error("create user failed", "email", req.Email, "error", err)
		return writeError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, result)
}

// UpdateUser applies partial updates to both systems
// @Summary Update user
// @Description Update user fields in Keycloak and the user-record store
// @Tags users
// @Accept json
// @Produce json
// @Param externalId path string true "Keycloak user ID"
// @Param body body domain.UpdateUserRequest true "Fields to update"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /v1/users/{externalId} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()
	externalID := c.Param("externalId")

	var req domain.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, h.logger, apperrors.New(apperrors.ErrCodeInvalidInput, "invalid request body"))
	}
	if err := h.validator.Validate(&req); err != nil {
		return writeError(c, h.logger, apperrors.NewValidationError(err.Error()))
	}
	if req.IsEmpty() {
		return writeError(c, h.logger, apperrors.New(apperrors.ErrCodeInvalidInput, "no fields to update"))
	}

	if err := h.sagaUsecase.ExecuteUpdateUser(ctx, externalID, &req); err != nil {
		h.logger.Error("update user failed", "external_id", externalID, "error", err)
		return writeError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "user updated"})
}

// DeleteUser deletes a user from both systems
// @Summary Delete user
// @Description Delete a user from the user-record store and Keycloak
// @Tags users
// @Produce json
// @Param externalId path string true "Keycloak user ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /v1/users/{externalId} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	externalID := c.Param("externalId")

	if err := h.sagaUsecase.ExecuteDeleteUser(ctx, externalID); err != nil {
		h.logger.Error("delete user failed", "external_id", externalID, "error", err)
		return writeError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "user deleted"})
}

// AssignRole grants a role in both systems
// @Summary Assign role
// @Tags users
// @Produce json
// @Param externalId path string true "Keycloak user ID"
// @Param role path string true "Role name"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/users/{externalId}/roles/{role} [post]
func (h *UserHandler) AssignRole(c echo.Context) error {
	return h.roleOperation(c, domain.OperationAssignRole)
}

// RemoveRole revokes a role in both systems
// @Summary Remove role
// @Tags users
// @Produce json
// @Param externalId path string true "Keycloak user ID"
// @Param role path string true "Role name"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/users/{externalId}/roles/{role} [delete]
func (h *UserHandler) RemoveRole(c echo.Context) error {
	return h.roleOperation(c, domain.OperationRemoveRole)
}

func (h *UserHandler) roleOperation(c echo.Context, kind domain.OperationKind) error {
	ctx := c.Request().Context()
	externalID := c.Param("externalId")
	role := c.Param("role")

	if err := h.validator.ValidateVar(role, "required,role_name"); err != nil {
		return writeError(c, h.logger, apperrors.NewValidationError("role must contain only lowercase letters, numbers, hyphens and underscores"))
	}

	if err := h.sagaUsecase.ExecuteRoleOperation(ctx, kind, externalID, role); err != nil {
		h.logger.Error("role operation failed",
			"operation", kind, "external_id", externalID, "role", role, "error", err)
		return writeError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "role " + string(kind) + " applied"})
}

// EnsureUser guarantees a user record exists for an authenticated identity
// @Summary Ensure user exists
// @Description Create the user record for an authenticated Keycloak identity on first touch
// @Tags users
// @Accept json
// @Produce json
// @Param body body domain.EnsureUserRequest true "Authenticated identity"
// @Success 200 {object} domain.EnsureUserResult
// @Success 201 {object} domain.EnsureUserResult
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /v1/users/ensure [post]
func (h *UserHandler) EnsureUser(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.EnsureUserRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, h.logger, apperrors.New(apperrors.ErrCodeInvalidInput, "invalid request body"))
	}
	if err := h.validator.Validate(&req); err != nil {
		return writeError(c, h.logger, apperrors.NewValidationError(err.Error()))
	}

	result, err := h.registrationUsecase.EnsureUserExists(ctx, &req)
	if err != nil {
		h.logger.Error("ensure user failed", "external_id", req.ExternalID, "error", err)
		return writeError(c, h.logger, err)
	}

	status := http.StatusOK
	if result.IsNew {
		status = http.StatusCreated
	}
	return c.JSON(status, result)
}

// Me returns the profile resolved by the identity middleware
// @Summary Current user profile
// @Tags users
// @Produce json
// @Success 200 {object} domain.EnsureUserResult
// @Failure 401 {object} ErrorResponse
// @Router /v1/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	result, ok := custommw.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error: "no authenticated identity",
			Code:  "UNAUTHORIZED",
		})
	}

	return c.JSON(http.StatusOK, result)
}
