package gateway

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"user-sync-service/app/circuitbreaker"
	"user-sync-service/app/domain"
	"user-sync-service/app/port"
	apperrors "user-sync-service/app/utils/errors"
)

// BreakerNameUserService is the registry key for the user-record store breaker
const BreakerNameUserService = "user-service"

// UserRecordGateway implements port.UserRecordGateway over the PostgreSQL
// repository, running every call through the user-service circuit breaker.
type UserRecordGateway struct {
	repo    port.UserRepository
	breaker *circuitbreaker.Breaker
	logger  *slog.Logger
}

// NewUserRecordGateway creates a new UserRecordGateway instance
func NewUserRecordGateway(repo port.UserRepository, breaker *circuitbreaker.Breaker, logger *slog.Logger) *UserRecordGateway {
	return &UserRecordGateway{
		repo:    repo,
		breaker: breaker,
		logger:  logger.With("component", "user_record_gateway"),
	}
}

// CreateUser inserts a new user record
func (g *UserRecordGateway) CreateUser(ctx context.Context, user *domain.User) error {
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.repo.Create(ctx, user)
	})
	if err != nil {
		g.logger.Error("failed to create user record", "external_id", user.ExternalID, "error", err)
		return g.mapBreakerError(err)
	}

	g.logger.Info("user record created", "user_id", user.ID, "external_id", user.ExternalID)
	return nil
}

// GetUserByExternalID fetches a user record by its Keycloak identity
func (g *UserRecordGateway) GetUserByExternalID(ctx context.Context, externalID string) (*domain.User, error) {
	user, err := circuitbreaker.Do(ctx, g.breaker, func(ctx context.Context) (*domain.User, error) {
		return g.repo.GetByExternalID(ctx, externalID)
	})
	if err != nil {
		return nil, g.mapBreakerError(err)
	}

	return user, nil
}

// UpdateUser applies partial field changes to a user record
func (g *UserRecordGateway) UpdateUser(ctx context.Context, userID uuid.UUID, update domain.UpdateUserRequest) error {
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.repo.Update(ctx, userID, update)
	})
	if err != nil {
		g.logger.Error("failed to update user record", "user_id", userID, "error", err)
		return g.mapBreakerError(err)
	}

	return nil
}

// DeleteUser removes a user record
func (g *UserRecordGateway) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.repo.Delete(ctx, userID)
	})
	if err != nil {
		g.logger.Error("failed to delete user record", "user_id", userID, "error", err)
		return g.mapBreakerError(err)
	}

	g.logger.Info("user record deleted", "user_id", userID)
	return nil
}

// AssignRole records a role for a user
func (g *UserRecordGateway) AssignRole(ctx context.Context, userID uuid.UUID, role string) error {
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.repo.AssignRole(ctx, userID, role)
	})
	if err != nil {
		g.logger.Error("failed to assign role on user record", "user_id", userID, "role", role, "error", err)
		return g.mapBreakerError(err)
	}

	return nil
}

// RemoveRole removes a role from a user record
func (g *UserRecordGateway) RemoveRole(ctx context.Context, userID uuid.UUID, role string) error {
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.repo.RemoveRole(ctx, userID, role)
	})
	if err != nil {
		g.logger.Error("failed to remove role on user record", "user_id", userID, "role", role, "error", err)
		return g.mapBreakerError(err)
	}

	return nil
}

// mapBreakerError translates breaker-level failures. Repository errors
// already carry AppError codes and pass through unchanged.
func (g *UserRecordGateway) mapBreakerError(err error) error {
	var openErr *circuitbreaker.OpenError
	if errors.As(err, &openErr) {
		return apperrors.NewCircuitOpenError(BreakerNameUserService, err)
	}

	var timeoutErr *circuitbreaker.TimeoutError
	if errors.As(err, &timeoutErr) {
		return apperrors.Wrap(apperrors.ErrCodeUserServiceUnavailable, "user service timed out", err)
	}

	return err
}
