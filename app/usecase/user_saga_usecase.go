package usecase

import (
	"context"
	"log/slog"
	"time"

	"user-sync-service/app/domain"
	"user-sync-service/app/port"
	apperrors "user-sync-service/app/utils/errors"
	"user-sync-service/app/utils/logger"
)

// UserSagaUseCase sequences user operations across Keycloak and the
// user-record store. Forward steps and their compensations follow a fixed
// order per operation kind, chosen so each compensating call is cheap and
// safe. A failed compensation is recorded in the orphan tracker and never
// masks the original error.
type UserSagaUseCase struct {
	identity port.IdentityProviderGateway
	users    port.UserRecordGateway
	orphans  port.OrphanTracker
	logger   *slog.Logger
}

// NewUserSagaUseCase creates a new UserSagaUseCase instance
func NewUserSagaUseCase(identity port.IdentityProviderGateway, users port.UserRecordGateway, orphans port.OrphanTracker, log *slog.Logger) *UserSagaUseCase {
	return &UserSagaUseCase{
		identity: identity,
		users:    users,
		orphans:  orphans,
		logger:   logger.SagaLogger(log),
	}
}

// ExecuteCreateUser creates the Keycloak account first, then the user
// record. If the record insert fails, the account is deleted so Keycloak
// never retains a login with no matching profile.
func (uc *UserSagaUseCase) ExecuteCreateUser(ctx context.Context, req *domain.CreateUserRequest) (*domain.CreateUserResult, error) {
	op := domain.NewSagaOperation(domain.OperationCreateUser)

	var user *domain.User

	steps := []sagaStep{
		{
			name: "create_keycloak_account",
			run: func(ctx context.Context) error {
				externalID, err := uc.identity.CreateAccount(ctx, domain.NewAccount{
					Email:     req.Email,
					FirstName: req.FirstName,
					LastName:  req.LastName,
					Password:  req.Password,
					Enabled:   req.Enabled,
				})
				if err != nil {
					return err
				}
				op.ExternalID = externalID
				return nil
			},
			compensate: func(ctx context.Context) error {
				return uc.identity.DeleteAccount(ctx, op.ExternalID)
			},
		},
		{
			name: "create_user_record",
			run: func(ctx context.Context) error {
				u, err := domain.NewUser(op.ExternalID, req.Email, req.FirstName, req.LastName)
				if err != nil {
					return apperrors.NewValidationError(err.Error())
				}
				op.InternalID = u.ID
				if err := uc.users.CreateUser(ctx, u); err != nil {
					return err
				}
				user = u
				return nil
			},
		},
	}

	if failure := runSteps(ctx, uc.logger, op, steps); failure != nil {
		uc.recordOrphan(ctx, op, failure, domain.OrphanReasonRollbackFailed)
		return nil, annotateWithOperation(failure.original, op)
	}

	uc.logger.Info("user created",
		"operation_id", op.ID, "user_id", user.ID, "external_id", op.ExternalID)

	return &domain.CreateUserResult{UserID: user.ID, ExternalID: op.ExternalID}, nil
}

// ExecuteUpdateUser snapshots the Keycloak account, applies the update there
// first, then to the user record. A record-side failure restores the
// snapshot.
func (uc *UserSagaUseCase) ExecuteUpdateUser(ctx context.Context, externalID string, req *domain.UpdateUserRequest) error {
	if req.IsEmpty() {
		return nil
	}

	op := domain.NewSagaOperation(domain.OperationUpdateUser)
	op.ExternalID = externalID

	var snapshot *domain.IdentityAccount

	steps := []sagaStep{
		{
			name: "snapshot_keycloak_account",
			run: func(ctx context.Context) error {
				account, err := uc.identity.GetAccount(ctx, externalID)
				if err != nil {
					return err
				}
				snapshot = account
				return nil
			},
		},
		{
			name: "update_keycloak_account",
			run: func(ctx context.Context) error {
				return uc.identity.UpdateAccount(ctx, externalID, domain.AccountUpdate{
					Email:     req.Email,
					FirstName: req.FirstName,
					LastName:  req.LastName,
				})
			},
			compensate: func(ctx context.Context) error {
				return uc.identity.UpdateAccount(ctx, externalID, domain.SnapshotUpdate(snapshot))
			},
		},
		{
			name: "resolve_internal_id",
			run: func(ctx context.Context) error {
				user, err := uc.users.GetUserByExternalID(ctx, externalID)
				if err != nil {
					return err
				}
				op.InternalID = user.ID
				return nil
			},
		},
		{
			name: "update_user_record",
			run: func(ctx context.Context) error {
				return uc.users.UpdateUser(ctx, op.InternalID, *req)
			},
		},
	}

	if failure := runSteps(ctx, uc.logger, op, steps); failure != nil {
		uc.recordOrphan(ctx, op, failure, domain.OrphanReasonRollbackFailed)
		return annotateWithOperation(failure.original, op)
	}

	return nil
}

// ExecuteDeleteUser deletes the user record first, then the Keycloak
// account. A Keycloak failure after the record is gone is not rolled back:
// the account is recorded as an orphan for manual cleanup and the operation
// still succeeds, because the user no longer exists from the caller's view.
func (uc *UserSagaUseCase) ExecuteDeleteUser(ctx context.Context, externalID string) error {
	op := domain.NewSagaOperation(domain.OperationDeleteUser)
	op.ExternalID = externalID

	steps := []sagaStep{
		{
			name: "resolve_internal_id",
			run: func(ctx context.Context) error {
				user, err := uc.users.GetUserByExternalID(ctx, externalID)
				if err != nil {
					return err
				}
				op.InternalID = user.ID
				return nil
			},
		},
		{
			name: "delete_user_record",
			run: func(ctx context.Context) error {
				return uc.users.DeleteUser(ctx, op.InternalID)
			},
		},
		{
			name: "delete_keycloak_account",
			run: func(ctx context.Context) error {
				return uc.identity.DeleteAccount(ctx, externalID)
			},
		},
	}

	if failure := runSteps(ctx, uc.logger, op, steps); failure != nil {
		if failure.step == "delete_keycloak_account" {
			uc.orphans.Record(ctx, &domain.OrphanedUser{
				ExternalID:    externalID,
				Reason:        domain.OrphanReasonKeycloakDeleteFailed,
				OriginalError: failure.original.Error(),
				OperationID:   op.ID,
				Timestamp:     time.Now(),
			})
			return nil
		}
		return annotateWithOperation(failure.original, op)
	}

	uc.logger.Info("user deleted",
		"operation_id", op.ID, "user_id", op.InternalID, "external_id", externalID)
	return nil
}

// ExecuteAssignRole grants the role in Keycloak first, then records it. A
// record-side failure removes the role from Keycloak again.
func (uc *UserSagaUseCase) ExecuteAssignRole(ctx context.Context, externalID, role string) error {
	op := domain.NewSagaOperation(domain.OperationAssignRole)
	op.ExternalID = externalID

	steps := []sagaStep{
		{
			name: "assign_keycloak_role",
			run: func(ctx context.Context) error {
				return uc.identity.AssignRole(ctx, externalID, role)
			},
			compensate: func(ctx context.Context) error {
				return uc.identity.RemoveRole(ctx, externalID, role)
			},
		},
		{
			name: "resolve_internal_id",
			run: func(ctx context.Context) error {
				user, err := uc.users.GetUserByExternalID(ctx, externalID)
				if err != nil {
					return err
				}
				op.InternalID = user.ID
				return nil
			},
		},
		{
			name: "assign_user_role",
			run: func(ctx context.Context) error {
				return uc.users.AssignRole(ctx, op.InternalID, role)
			},
		},
	}

	if failure := runSteps(ctx, uc.logger, op, steps); failure != nil {
		uc.recordOrphan(ctx, op, failure, domain.OrphanReasonRollbackFailed)
		return annotateWithOperation(failure.original, op)
	}

	return nil
}

// ExecuteRemoveRole removes the role from the user record first, then from
// Keycloak. No compensation: re-removing is the natural retry.
func (uc *UserSagaUseCase) ExecuteRemoveRole(ctx context.Context, externalID, role string) error {
	op := domain.NewSagaOperation(domain.OperationRemoveRole)
	op.ExternalID = externalID

	steps := []sagaStep{
		{
			name: "resolve_internal_id",
			run: func(ctx context.Context) error {
				user, err := uc.users.GetUserByExternalID(ctx, externalID)
				if err != nil {
					return err
				}
				op.InternalID = user.ID
				return nil
			},
		},
		{
			name: "remove_user_role",
			run: func(ctx context.Context) error {
				return uc.users.RemoveRole(ctx, op.InternalID, role)
			},
		},
		{
			name: "remove_keycloak_role",
			run: func(ctx context.Context) error {
				return uc.identity.RemoveRole(ctx, externalID, role)
			},
		},
	}

	if failure := runSteps(ctx, uc.logger, op, steps); failure != nil {
		return annotateWithOperation(failure.original, op)
	}

	return nil
}

// ExecuteRoleOperation dispatches a role operation by kind
func (uc *UserSagaUseCase) ExecuteRoleOperation(ctx context.Context, kind domain.OperationKind, externalID, role string) error {
	switch kind {
	case domain.OperationAssignRole:
		return uc.ExecuteAssignRole(ctx, externalID, role)
	case domain.OperationRemoveRole:
		return uc.ExecuteRemoveRole(ctx, externalID, role)
	default:
		return apperrors.Newf(apperrors.ErrCodeOperationNotSupported, "operation %q not supported", kind)
	}
}

// recordOrphan stores an orphan entry when a compensation failed and
// Keycloak already reflects the change
func (uc *UserSagaUseCase) recordOrphan(ctx context.Context, op *domain.SagaOperation, failure *sagaFailure, reason domain.OrphanReason) {
	if failure.rolledBack || op.ExternalID == "" {
		return
	}

	uc.orphans.Record(ctx, &domain.OrphanedUser{
		ExternalID:    op.ExternalID,
		Reason:        reason,
		OriginalError: failure.original.Error(),
		RollbackError: failure.rollbackErr.Error(),
		OperationID:   op.ID,
		Timestamp:     time.Now(),
	})
}
