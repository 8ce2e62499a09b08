package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"user-sync-service/app/circuitbreaker"
	"user-sync-service/app/port"
	"user-sync-service/app/rest/handlers"
	custommw "user-sync-service/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger              *slog.Logger
	SagaUsecase         port.UserSagaUsecase
	RegistrationUsecase port.RegistrationUsecase
	OrphanTracker       port.OrphanTracker
	BreakerRegistry     *circuitbreaker.Registry
	DB                  handlers.Pinger
	EnableDebug         bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug

	userHandler := handlers.NewUserHandler(config.SagaUsecase, config.RegistrationUsecase, config.Logger)
	orphanHandler := handlers.NewOrphanHandler(config.OrphanTracker, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.BreakerRegistry, config.DB, config.Logger)

	identityMiddleware := custommw.NewIdentityMiddleware(config.RegistrationUsecase, config.Logger)
	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints (no auth required)
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/live", healthHandler.LivenessCheck)
	v1.POST("/breakers/:name/reset", healthHandler.ResetBreaker)

	// User management endpoints (called by trusted internal services)
	users := v1.Group("/users")
	users.POST("", userHandler.CreateUser)
	users.POST("/ensure", userHandler.EnsureUser)
	users.PUT("/:externalId", userHandler.UpdateUser)
	users.DELETE("/:externalId", userHandler.DeleteUser)
	users.POST("/:externalId/roles/:role", userHandler.AssignRole)
	users.DELETE("/:externalId/roles/:role", userHandler.RemoveRole)

	// Authenticated surface: identity headers from the reverse proxy
	me := v1.Group("/me")
	me.Use(identityMiddleware.EnsureIdentity())
	me.GET("", userHandler.Me)

	// Operations surface for orphan reconciliation
	orphans := v1.Group("/orphans")
	orphans.GET("", orphanHandler.ListOrphans)
	orphans.DELETE("/:externalId", orphanHandler.MarkCleaned)

	return e
}
