package postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"user-sync-service/app/domain"
	"user-sync-service/app/port"
	apperrors "user-sync-service/app/utils/errors"
)

// uniqueViolation is the PostgreSQL error code for unique constraint hits
const uniqueViolation = "23505"

// UserRepository implements port.UserRepository for PostgreSQL
type UserRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db DatabaseIface, logger *slog.Logger) port.UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger.With("component", "user_repository"),
	}
}

// Create inserts a new user record
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, external_id, email, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		user.ID, user.ExternalID, user.Email, user.FirstName, user.LastName,
		user.CreatedAt, user.UpdatedAt)
	if err != nil {
		r.logger.Error("failed to create user", "user_id", user.ID, "error", err)
		return r.mapError(err)
	}

	return nil
}

// GetByExternalID fetches a user record with its roles by external identity
func (r *UserRepository) GetByExternalID(ctx context.Context, externalID string) (*domain.User, error) {
	query := `
		SELECT u.id, u.external_id, u.email, u.first_name, u.last_name,
		       u.created_at, u.updated_at,
		       COALESCE(array_agg(ur.role) FILTER (WHERE ur.role IS NOT NULL), '{}')
		FROM users u
		LEFT JOIN user_roles ur ON ur.user_id = u.id
		WHERE u.external_id = $1
		GROUP BY u.id`

	user := &domain.User{}
	err := r.db.QueryRow(ctx, query, externalID).Scan(
		&user.ID, &user.ExternalID, &user.Email, &user.FirstName, &user.LastName,
		&user.CreatedAt, &user.UpdatedAt, &user.Roles)
	if err != nil {
		return nil, r.mapError(err)
	}

	return user, nil
}

// Update applies partial field changes to a user record
func (r *UserRepository) Update(ctx context.Context, userID uuid.UUID, update domain.UpdateUserRequest) error {
	query := `
		UPDATE users
		SET email = COALESCE($2, email),
		    first_name = COALESCE($3, first_name),
		    last_name = COALESCE($4, last_name),
		    updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, userID, update.Email, update.FirstName, update.LastName)
	if err != nil {
		r.logger.Error("failed to update user", "user_id", userID, "error", err)
		return r.mapError(err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.New(apperrors.ErrCodeUserNotFoundInUserService, "user not found in user service")
	}

	return nil
}

// Delete removes a user record and its roles
func (r *UserRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		r.logger.Error("failed to delete user", "user_id", userID, "error", err)
		return r.mapError(err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.New(apperrors.ErrCodeUserNotFoundInUserService, "user not found in user service")
	}

	return nil
}

// AssignRole records a role for a user. Assigning an already-held role is a
// no-op.
func (r *UserRepository) AssignRole(ctx context.Context, userID uuid.UUID, role string) error {
	query := `
		INSERT INTO user_roles (user_id, role)
		VALUES ($1, $2)
		ON CONFLICT (user_id, role) DO NOTHING`

	if _, err := r.db.Exec(ctx, query, userID, role); err != nil {
		r.logger.Error("failed to assign role", "user_id", userID, "role", role, "error", err)
		return r.mapError(err)
	}

	return nil
}

// RemoveRole removes a role from a user. Removing an absent role is a no-op.
func (r *UserRepository) RemoveRole(ctx context.Context, userID uuid.UUID, role string) error {
	query := `DELETE FROM user_roles WHERE user_id = $1 AND role = $2`

	if _, err := r.db.Exec(ctx, query, userID, role); err != nil {
		r.logger.Error("failed to remove role", "user_id", userID, "role", role, "error", err)
		return r.mapError(err)
	}

	return nil
}

// mapError maps driver failures to the application error taxonomy: missing
// rows to the saga's not-found condition, server-reported errors to
// DATABASE_ERROR, and anything without a server response (dial failures,
// timeouts) to the retryable USER_SERVICE_UNAVAILABLE.
func (r *UserRepository) mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.New(apperrors.ErrCodeUserNotFoundInUserService, "user not found in user service")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == uniqueViolation {
			return apperrors.Wrap(apperrors.ErrCodeUserExists, "user already exists", err)
		}
		return apperrors.NewDatabaseError(err)
	}

	return apperrors.Wrap(apperrors.ErrCodeUserServiceUnavailable, "user service temporarily unavailable", err)
}
