package port

//go:generate mockgen -source=gateway_port.go -destination=../mocks/mock_gateway_port.go

import (
	"context"

	"user-sync-service/app/domain"

	"github.com/google/uuid"
)

// IdentityProviderGateway abstracts account CRUD and role operations against
// Keycloak. Implementations distinguish non-retryable 4xx responses from
// network/timeout failures and run calls through the keycloak circuit
// breaker.
type IdentityProviderGateway interface {
	CreateAccount(ctx context.Context, account domain.NewAccount) (string, error)
	GetAccount(ctx context.Context, externalID string) (*domain.IdentityAccount, error)
	UpdateAccount(ctx context.Context, externalID string, update domain.AccountUpdate) error
	DeleteAccount(ctx context.Context, externalID string) error
	AssignRole(ctx context.Context, externalID, role string) error
	RemoveRole(ctx context.Context, externalID, role string) error
}

// UserRecordGateway abstracts the internal user-record store. Lookups by
// external identity return USER_NOT_FOUND_IN_USER_SERVICE when no record
// exists; availability failures map to USER_SERVICE_UNAVAILABLE.
type UserRecordGateway interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByExternalID(ctx context.Context, externalID string) (*domain.User, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, update domain.UpdateUserRequest) error
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	AssignRole(ctx context.Context, userID uuid.UUID, role string) error
	RemoveRole(ctx context.Context, userID uuid.UUID, role string) error
}

// KeycloakClient is the driver-level Keycloak admin API surface consumed by
// the identity gateway
type KeycloakClient interface {
	CreateAccount(ctx context.Context, account domain.NewAccount) (string, error)
	GetAccount(ctx context.Context, externalID string) (*domain.IdentityAccount, error)
	UpdateAccount(ctx context.Context, externalID string, update domain.AccountUpdate) error
	DeleteAccount(ctx context.Context, externalID string) error
	AssignRole(ctx context.Context, externalID, role string) error
	RemoveRole(ctx context.Context, externalID, role string) error
}

// UserRepository is the data-access surface of the user-record store
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByExternalID(ctx context.Context, externalID string) (*domain.User, error)
	Update(ctx context.Context, userID uuid.UUID, update domain.UpdateUserRequest) error
	Delete(ctx context.Context, userID uuid.UUID) error
	AssignRole(ctx context.Context, userID uuid.UUID, role string) error
	RemoveRole(ctx context.Context, userID uuid.UUID, role string) error
}
