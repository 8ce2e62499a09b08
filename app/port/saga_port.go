package port

//go:generate mockgen -source=saga_port.go -destination=../mocks/mock_saga_port.go

import (
	"context"

	"user-sync-service/app/domain"
)

// UserSagaUsecase sequences user operations across Keycloak and the
// user-record store, compensating on partial failure. Every returned error
// is an AppError annotated with the saga operation ID.
type UserSagaUsecase interface {
	ExecuteCreateUser(ctx context.Context, req *domain.CreateUserRequest) (*domain.CreateUserResult, error)
	ExecuteUpdateUser(ctx context.Context, externalID string, req *domain.UpdateUserRequest) error
	ExecuteDeleteUser(ctx context.Context, externalID string) error
	ExecuteAssignRole(ctx context.Context, externalID, role string) error
	ExecuteRemoveRole(ctx context.Context, externalID, role string) error
	ExecuteRoleOperation(ctx context.Context, kind domain.OperationKind, externalID, role string) error
}

// RegistrationUsecase guarantees a matching user record exists for an
// authenticated identity
type RegistrationUsecase interface {
	EnsureUserExists(ctx context.Context, req *domain.EnsureUserRequest) (*domain.EnsureUserResult, error)
}
