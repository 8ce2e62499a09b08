package gateway

import (
	"context"
	"errors"
	"log/slog"

	"user-sync-service/app/circuitbreaker"
	"user-sync-service/app/domain"
	"user-sync-service/app/port"
	apperrors "user-sync-service/app/utils/errors"
)

// BreakerNameKeycloak is the registry key for the Keycloak circuit breaker
const BreakerNameKeycloak = "keycloak"

// IdentityGateway implements port.IdentityProviderGateway
// It acts as an anti-corruption layer between the sagas and the Keycloak
// admin API, running every call through the keycloak circuit breaker.
type IdentityGateway struct {
	client  port.KeycloakClient
	breaker *circuitbreaker.Breaker
	logger  *slog.Logger
}

// NewIdentityGateway creates a new IdentityGateway instance
func NewIdentityGateway(client port.KeycloakClient, breaker *circuitbreaker.Breaker, logger *slog.Logger) *IdentityGateway {
	return &IdentityGateway{
		client:  client,
		breaker: breaker,
		logger:  logger.With("component", "identity_gateway"),
	}
}

// CreateAccount creates a Keycloak account and returns its external ID
func (g *IdentityGateway) CreateAccount(ctx context.Context, account domain.NewAccount) (string, error) {
	externalID, err := circuitbreaker.Do(ctx, g.breaker, func(ctx context.Context) (string, error) {
		return g.client.CreateAccount(ctx, account)
	})
	if err != nil {
		g.logger.Error("failed to create keycloak account", "email", account.Email, "error", err)
		return "", g.mapBreakerError(err)
	}

	g.logger.Info("keycloak account created", "external_id", externalID)
	return externalID, nil
}

// GetAccount fetches the current state of a Keycloak account
func (g *IdentityGateway) GetAccount(ctx context.Context, externalID string) (*domain.IdentityAccount, error) {
	account, err := circuitbreaker.Do(ctx, g.breaker, func(ctx context.Context) (*domain.IdentityAccount, error) {
		return g.client.GetAccount(ctx, externalID)
	})
	if err != nil {
		return nil, g.mapBreakerError(err)
	}

	return account, nil
}

// UpdateAccount applies partial changes to a Keycloak account
func (g *IdentityGateway) UpdateAccount(ctx context.Context, externalID string, update domain.AccountUpdate) error {
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.client.UpdateAccount(ctx, externalID, update)
	})
	if err != nil {
		g.logger.Error("failed to update keycloak account", "external_id", externalID, "error", err)
		return g.mapBreakerError(err)
	}

	return nil
}

// DeleteAccount removes a Keycloak account
func (g *IdentityGateway) DeleteAccount(ctx context.Context, externalID string) error {
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.client.DeleteAccount(ctx, externalID)
	})
	if err != nil {
		g.logger.Error("failed to delete keycloak account", "external_id", externalID, "error", err)
		return g.mapBreakerError(err)
	}

	g.logger.Info("keycloak account deleted", "external_id", externalID)
	return nil
}

// AssignRole grants a realm role to a Keycloak account
func (g *IdentityGateway) AssignRole(ctx context.Context, externalID, role string) error {
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.client.AssignRole(ctx, externalID, role)
	})
	if err != nil {
		g.logger.Error("failed to assign keycloak role", "external_id", externalID, "role", role, "error", err)
		return g.mapBreakerError(err)
	}

	return nil
}

// RemoveRole revokes a realm role from a Keycloak account
func (g *IdentityGateway) RemoveRole(ctx context.Context, externalID, role string) error {
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.client.RemoveRole(ctx, externalID, role)
	})
	if err != nil {
		g.logger.Error("failed to remove keycloak role", "external_id", externalID, "role", role, "error", err)
		return g.mapBreakerError(err)
	}

	return nil
}

// mapBreakerError translates breaker-level failures into the application
// error taxonomy. Client errors already carry AppError codes and pass
// through unchanged.
func (g *IdentityGateway) mapBreakerError(err error) error {
	var openErr *circuitbreaker.OpenError
	if errors.As(err, &openErr) {
		return apperrors.NewCircuitOpenError(BreakerNameKeycloak, err)
	}

	var timeoutErr *circuitbreaker.TimeoutError
	if errors.As(err, &timeoutErr) {
		return apperrors.NewKeycloakError(err)
	}

	return err
}
