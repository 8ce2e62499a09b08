package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "user-sync-service/app/utils/errors"
)

// ErrorResponse is the JSON error body returned by every handler
type ErrorResponse struct {
	Error       string `json:"error"`
	Code        string `json:"code"`
	Details     string `json:"details,omitempty"`
	OperationID string `json:"operationId,omitempty"`
}

// SuccessResponse is a generic success message body
type SuccessResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the body of health and liveness checks
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Uptime    string    `json:"uptime"`
}

// writeError renders err as an ErrorResponse with its mapped HTTP status.
// Saga errors carry an operation ID in context; it is surfaced so callers
// can correlate with server logs.
func writeError(c echo.Context, logger *slog.Logger, err error) error {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		logger.Error("unclassified error", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "internal server error",
			Code:  string(apperrors.ErrCodeInternalError),
		})
	}

	return c.JSON(appErr.StatusCode, ErrorResponse{
		Error:       appErr.Message,
		Code:        string(appErr.Code),
		Details:     appErr.Details,
		OperationID: appErr.OperationID(),
	})
}
