package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"user-sync-service/app/circuitbreaker"
)

var startTime = time.Now()

// Pinger actively probes a dependency. The database pool implements it;
// Keycloak is covered passively through its breaker.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler handles health check HTTP requests. Overall health follows
// the breaker registry plus an active database ping: any open breaker or a
// failed ping makes the service degraded.
type HealthHandler struct {
	registry *circuitbreaker.Registry
	db       Pinger
	logger   *slog.Logger
}

// NewHealthHandler creates a new health handler. db may be nil when no
// active probe is wanted.
func NewHealthHandler(registry *circuitbreaker.Registry, db Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		registry: registry,
		db:       db,
		logger:   logger,
	}
}

// HealthCheck reports service health including per-dependency breaker state
// @Summary Health check
// @Description Check service health; 503 while any circuit breaker is open
// @Tags health
// @Produce json
// @Success 200 {object} DependencyHealthResponse
// @Failure 503 {object} DependencyHealthResponse
// @Router /v1/health [get]
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	healthy := h.registry.Healthy()

	response := DependencyHealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Service:   "user-sync-service",
		Uptime:    time.Since(startTime).String(),
		Database:  "ok",
		Breakers:  h.registry.Snapshot(),
	}

	if h.db == nil {
		response.Database = "not probed"
	} else if err := h.db.HealthCheck(c.Request().Context()); err != nil {
		h.logger.Warn("database health check failed", "error", err)
		response.Database = "unreachable"
		healthy = false
	}

	status := http.StatusOK
	if !healthy {
		response.Status = "degraded"
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, response)
}

// LivenessCheck reports that the process is alive
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /v1/live [get]
func (h *HealthHandler) LivenessCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Service:   "user-sync-service",
		Uptime:    time.Since(startTime).String(),
	})
}

// ResetBreaker forces a named breaker back to closed
// @Summary Reset circuit breaker
// @Description Operational recovery tool: force a breaker back to closed
// @Tags health
// @Produce json
// @Param name path string true "Breaker name"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/breakers/{name}/reset [post]
func (h *HealthHandler) ResetBreaker(c echo.Context) error {
	name := c.Param("name")

	if !h.registry.Reset(name) {
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "no such circuit breaker",
			Code:  "NOT_FOUND",
		})
	}

	h.logger.Warn("circuit breaker manually reset", "breaker", name)
	return c.JSON(http.StatusOK, SuccessResponse{Message: "breaker " + name + " reset"})
}

// DependencyHealthResponse is the body of the health endpoint
type DependencyHealthResponse struct {
	Status    string                           `json:"status"`
	Timestamp time.Time                        `json:"timestamp"`
	Service   string                           `json:"service"`
	Uptime    string                           `json:"uptime"`
	Database  string                           `json:"database"`
	Breakers  map[string]circuitbreaker.Counts `json:"breakers"`
}
