package domain

import (
	"github.com/google/uuid"
)

// OperationKind identifies which cross-system sequence a saga executes
type OperationKind string

const (
	OperationCreateUser   OperationKind = "create_user"
	OperationUpdateUser   OperationKind = "update_user"
	OperationDeleteUser   OperationKind = "delete_user"
	OperationAssignRole   OperationKind = "assign_role"
	OperationRemoveRole   OperationKind = "remove_role"
	OperationRegisterUser OperationKind = "register_user"
)

// SagaOperation is the ephemeral per-request state of one saga execution.
// It exists only for the duration of the call chain and is never persisted;
// its ID correlates logs, errors and orphan records.
type SagaOperation struct {
	ID         string
	Kind       OperationKind
	ExternalID string
	InternalID uuid.UUID
	Step       string
}

// NewSagaOperation starts a saga operation with a generated correlation ID
func NewSagaOperation(kind OperationKind) *SagaOperation {
	return &SagaOperation{
		ID:   uuid.NewString(),
		Kind: kind,
	}
}
