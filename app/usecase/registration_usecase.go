package usecase

import (
	"context"
	"log/slog"
	"time"

	"user-sync-service/app/domain"
	"user-sync-service/app/port"
	apperrors "user-sync-service/app/utils/errors"
)

// RegistrationUseCase guarantees a matching user record exists for an
// authenticated Keycloak identity. Successful results are cached for a short
// TTL so the hot path of every authenticated request makes no downstream
// calls.
type RegistrationUseCase struct {
	identity    port.IdentityProviderGateway
	users       port.UserRecordGateway
	cache       port.UserCache
	orphans     port.OrphanTracker
	defaultRole string
	logger      *slog.Logger
}

// NewRegistrationUseCase creates a new RegistrationUseCase instance
func NewRegistrationUseCase(identity port.IdentityProviderGateway, users port.UserRecordGateway, cache port.UserCache, orphans port.OrphanTracker, defaultRole string, logger *slog.Logger) *RegistrationUseCase {
	return &RegistrationUseCase{
		identity:    identity,
		users:       users,
		cache:       cache,
		orphans:     orphans,
		defaultRole: defaultRole,
		logger:      logger.With("component", "registration_saga"),
	}
}

// EnsureUserExists returns the user record for an authenticated identity,
// creating it on first touch. IsNew is true only on the call that actually
// created the record.
//
// An availability failure during the existence check is not evidence of
// inconsistency, so it raises a retryable error without touching Keycloak.
// An availability failure during creation is certain inconsistency and
// triggers a compensating account delete.
func (uc *RegistrationUseCase) EnsureUserExists(ctx context.Context, req *domain.EnsureUserRequest) (*domain.EnsureUserResult, error) {
	if cached, hit := uc.cache.Get(req.ExternalID); hit {
		return cached, nil
	}

	op := domain.NewSagaOperation(domain.OperationRegisterUser)
	op.ExternalID = req.ExternalID

	user, err := uc.users.GetUserByExternalID(ctx, req.ExternalID)
	if err == nil {
		result := &domain.EnsureUserResult{UserID: user.ID, IsNew: false, Profile: user}
		uc.cache.Set(req.ExternalID, result)
		return result, nil
	}

	if !apperrors.HasCode(err, apperrors.ErrCodeUserNotFoundInUserService) {
		uc.logger.Warn("user lookup unavailable, not registering",
			"operation_id", op.ID, "external_id", req.ExternalID, "error", err)
		return nil, annotateWithOperation(err, op)
	}

	return uc.register(ctx, op, req)
}

// register creates the user record for a known-missing identity
func (uc *RegistrationUseCase) register(ctx context.Context, op *domain.SagaOperation, req *domain.EnsureUserRequest) (*domain.EnsureUserResult, error) {
	user, err := domain.NewUser(req.ExternalID, req.Email, req.FirstName, req.LastName)
	if err != nil {
		return nil, annotateWithOperation(apperrors.NewValidationError(err.Error()), op)
	}
	op.InternalID = user.ID

	if err := uc.users.CreateUser(ctx, user); err != nil {
		// A concurrent registration won the race; the record exists now.
		if apperrors.HasCode(err, apperrors.ErrCodeUserExists) {
			existing, fetchErr := uc.users.GetUserByExternalID(ctx, req.ExternalID)
			if fetchErr != nil {
				return nil, annotateWithOperation(fetchErr, op)
			}
			result := &domain.EnsureUserResult{UserID: existing.ID, IsNew: false, Profile: existing}
			uc.cache.Set(req.ExternalID, result)
			return result, nil
		}

		uc.compensateRegistration(ctx, op, err)
		return nil, annotateWithOperation(err, op)
	}

	// Best effort: a missing default role is repairable later, a failed
	// registration is not.
	if err := uc.identity.AssignRole(ctx, req.ExternalID, uc.defaultRole); err != nil {
		uc.logger.Warn("default role assignment failed",
			"operation_id", op.ID, "external_id", req.ExternalID,
			"role", uc.defaultRole, "error", err)
	}

	profile := user
	if fetched, err := uc.users.GetUserByExternalID(ctx, req.ExternalID); err == nil {
		profile = fetched
	} else {
		uc.logger.Warn("fetch of created record failed, returning local copy",
			"operation_id", op.ID, "external_id", req.ExternalID, "error", err)
	}

	result := &domain.EnsureUserResult{UserID: user.ID, IsNew: true, Profile: profile}
	uc.cache.Set(req.ExternalID, result)

	uc.logger.Info("user registered",
		"operation_id", op.ID, "user_id", user.ID, "external_id", req.ExternalID)
	return result, nil
}

// compensateRegistration deletes the Keycloak account after the record
// creation failed, since the account now has no matching profile. One
// attempt; a failure is recorded as an orphan.
func (uc *RegistrationUseCase) compensateRegistration(ctx context.Context, op *domain.SagaOperation, original error) {
	uc.logger.Warn("compensating failed registration",
		"operation_id", op.ID, "external_id", op.ExternalID, "error", original)

	if err := uc.identity.DeleteAccount(ctx, op.ExternalID); err != nil {
		reason := domain.OrphanReasonRollbackFailed
		if apperrors.HasCode(original, apperrors.ErrCodeUserServiceUnavailable) {
			reason = domain.OrphanReasonUserServiceUnavailable
		}

		uc.orphans.Record(ctx, &domain.OrphanedUser{
			ExternalID:    op.ExternalID,
			Reason:        reason,
			OriginalError: original.Error(),
			RollbackError: err.Error(),
			OperationID:   op.ID,
			Timestamp:     time.Now(),
		})
	}
}
