package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"user-sync-service/app/circuitbreaker"
	"user-sync-service/app/config"
	"user-sync-service/app/driver/keycloak"
	"user-sync-service/app/driver/memory"
	"user-sync-service/app/driver/postgres"
	"user-sync-service/app/gateway"
	"user-sync-service/app/port"
	"user-sync-service/app/rest"
	"user-sync-service/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB             *postgres.DB
	KeycloakClient *keycloak.Client

	// Shared infrastructure
	BreakerRegistry *circuitbreaker.Registry
	OrphanTracker   port.OrphanTracker
	UserCache       port.UserCache

	// Gateways
	IdentityGateway   port.IdentityProviderGateway
	UserRecordGateway port.UserRecordGateway

	// Usecases
	SagaUsecase         port.UserSagaUsecase
	RegistrationUsecase port.RegistrationUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.KeycloakClient, err = keycloak.NewClient(cfg, logger)
	if err != nil {
		container.DB.Close()
		return nil, fmt.Errorf("failed to initialize keycloak client: %w", err)
	}

	// Non-fatal: Keycloak may still be starting, the circuit breaker
	// covers it once traffic flows
	if err := container.KeycloakClient.HealthCheck(context.Background()); err != nil {
		logger.Warn("keycloak not reachable at startup", "error", err)
	}

	// One breaker per downstream dependency, tuned from config
	container.BreakerRegistry = circuitbreaker.NewRegistry(logger)
	keycloakBreaker := container.BreakerRegistry.GetOrCreate(
		gateway.BreakerNameKeycloak, breakerSettings(cfg, gateway.BreakerNameKeycloak))
	userServiceBreaker := container.BreakerRegistry.GetOrCreate(
		gateway.BreakerNameUserService, breakerSettings(cfg, gateway.BreakerNameUserService))
	container.BreakerRegistry.StartSampler()

	container.OrphanTracker = memory.NewOrphanTracker(logger)
	container.UserCache = memory.NewUserCache(
		cfg.RegistrationCacheTTL, cfg.RegistrationCacheSweep, logger)

	// Repositories and gateways
	userRepository := postgres.NewUserRepository(container.DB.Pool(), logger)
	container.IdentityGateway = gateway.NewIdentityGateway(container.KeycloakClient, keycloakBreaker, logger)
	container.UserRecordGateway = gateway.NewUserRecordGateway(userRepository, userServiceBreaker, logger)

	// Usecases
	container.SagaUsecase = usecase.NewUserSagaUseCase(
		container.IdentityGateway, container.UserRecordGateway, container.OrphanTracker, logger)
	container.RegistrationUsecase = usecase.NewRegistrationUseCase(
		container.IdentityGateway, container.UserRecordGateway, container.UserCache,
		container.OrphanTracker, cfg.DefaultRole, logger)

	logger.Info("container initialized with full dependency stack")

	return container, nil
}

// breakerSettings maps the resolved config tuning onto breaker settings
func breakerSettings(cfg *config.Config, dependency string) circuitbreaker.Settings {
	tuning := cfg.BreakerSettingsFor(dependency)
	return circuitbreaker.Settings{
		Name:             dependency,
		FailureThreshold: tuning.FailureThreshold,
		SuccessThreshold: tuning.SuccessThreshold,
		RollingWindow:    tuning.RollingWindow,
		ResetTimeout:     tuning.ResetTimeout,
		Timeout:          tuning.Timeout,
	}
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:              c.Logger,
		SagaUsecase:         c.SagaUsecase,
		RegistrationUsecase: c.RegistrationUsecase,
		OrphanTracker:       c.OrphanTracker,
		BreakerRegistry:     c.BreakerRegistry,
		DB:                  c.DB,
		EnableDebug:         c.Config.LogLevel == "debug",
	}

	return rest.NewRouter(routerConfig)
}

// Close closes all resources
func (c *Container) Close() error {
	if c.UserCache != nil {
		c.UserCache.Close()
	}
	if c.BreakerRegistry != nil {
		c.BreakerRegistry.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("container resources released")
	return nil
}
