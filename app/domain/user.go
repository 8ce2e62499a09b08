package domain

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// User represents the internal user-record store's view of a user. The
// authoritative login account lives in Keycloak and is referenced by
// ExternalID.
type User struct {
	ID         uuid.UUID  `json:"id"`
	ExternalID string     `json:"external_id"`
	Email      string     `json:"email"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Roles      []string   `json:"roles"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// NewUser creates a new user record with validation
func NewUser(externalID, email, firstName, lastName string) (*User, error) {
	if externalID == "" {
		return nil, fmt.Errorf("external ID is required")
	}

	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}

	now := time.Now()

	return &User{
		ID:         uuid.New(),
		ExternalID: externalID,
		Email:      email,
		FirstName:  firstName,
		LastName:   lastName,
		Roles:      []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// HasRole returns true if the user carries the given role
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// CreateUserRequest is the inbound DTO for creating a user across both systems
type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Password  string `json:"password" validate:"required,min=8"`
	Enabled   bool   `json:"enabled"`
}

// UpdateUserRequest carries the updatable user fields. Nil fields are left
// untouched in both systems.
type UpdateUserRequest struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
}

// IsEmpty returns true if the request carries no field changes
func (r *UpdateUserRequest) IsEmpty() bool {
	return r.Email == nil && r.FirstName == nil && r.LastName == nil
}

// CreateUserResult identifies a user created in both systems
type CreateUserResult struct {
	UserID     uuid.UUID `json:"user_id"`
	ExternalID string    `json:"external_id"`
}

// EnsureUserRequest describes the authenticated identity observed on a
// request, as forwarded by the authentication layer.
type EnsureUserRequest struct {
	ExternalID string `json:"external_id" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	FirstName  string `json:"first_name" validate:"max=100"`
	LastName   string `json:"last_name" validate:"max=100"`
}

// EnsureUserResult is returned by the registration saga. IsNew is true only
// for the call that actually created the user record.
type EnsureUserResult struct {
	UserID  uuid.UUID `json:"user_id"`
	IsNew   bool      `json:"is_new"`
	Profile *User     `json:"profile"`
}

// IdentityAccount mirrors the Keycloak account fields the sagas read and
// restore. It doubles as the pre-update snapshot for compensation.
type IdentityAccount struct {
	ExternalID string `json:"external_id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Enabled    bool   `json:"enabled"`
}

// NewAccount carries the fields for creating a Keycloak account
type NewAccount struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
	Enabled   bool
}

// AccountUpdate carries partial Keycloak account changes. Nil fields are
// left untouched.
type AccountUpdate struct {
	Email     *string
	FirstName *string
	LastName  *string
	Enabled   *bool
}

// SnapshotUpdate builds an AccountUpdate that restores every field of a
// snapshot, used when compensating a partially applied update.
func SnapshotUpdate(snapshot *IdentityAccount) AccountUpdate {
	email := snapshot.Email
	firstName := snapshot.FirstName
	lastName := snapshot.LastName
	enabled := snapshot.Enabled

	return AccountUpdate{
		Email:     &email,
		FirstName: &firstName,
		LastName:  &lastName,
		Enabled:   &enabled,
	}
}
