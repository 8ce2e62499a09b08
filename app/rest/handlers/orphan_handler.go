package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"user-sync-service/app/domain"
	"user-sync-service/app/port"
)

// OrphanHandler exposes the orphan tracker to operations tooling
type OrphanHandler struct {
	orphans port.OrphanTracker
	logger  *slog.Logger
}

// NewOrphanHandler creates a new orphan handler
func NewOrphanHandler(orphans port.OrphanTracker, logger *slog.Logger) *OrphanHandler {
	return &OrphanHandler{
		orphans: orphans,
		logger:  logger,
	}
}

// ListOrphans lists recorded orphan entries, optionally filtered by reason
// @Summary List orphaned accounts
// @Description List Keycloak accounts left without a matching user record
// @Tags orphans
// @Produce json
// @Param reason query string false "Filter by orphan reason"
// @Success 200 {object} OrphanListResponse
// @Router /v1/orphans [get]
func (h *OrphanHandler) ListOrphans(c echo.Context) error {
	ctx := c.Request().Context()

	var entries []*domain.OrphanedUser
	if reason := c.QueryParam("reason"); reason != "" {
		entries = h.orphans.ListByReason(ctx, domain.OrphanReason(reason))
	} else {
		entries = h.orphans.List(ctx)
	}

	return c.JSON(http.StatusOK, OrphanListResponse{
		Orphans: entries,
		Total:   len(entries),
	})
}

// MarkCleaned removes an orphan entry after manual reconciliation
// @Summary Mark orphan cleaned
// @Description Remove an orphan entry after the account was manually reconciled
// @Tags orphans
// @Produce json
// @Param externalId path string true "Keycloak user ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/orphans/{externalId} [delete]
func (h *OrphanHandler) MarkCleaned(c echo.Context) error {
	ctx := c.Request().Context()
	externalID := c.Param("externalId")

	if err := h.orphans.MarkCleaned(ctx, externalID); err != nil {
		return writeError(c, h.logger, err)
	}

	h.logger.Info("orphan marked cleaned", "external_id", externalID)
	return c.JSON(http.StatusOK, SuccessResponse{Message: "orphan entry removed"})
}

// OrphanListResponse is the body of the orphan listing endpoint
type OrphanListResponse struct {
	Orphans []*domain.OrphanedUser `json:"orphans"`
	Total   int                    `json:"total"`
}
