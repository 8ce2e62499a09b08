package postgres

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-sync-service/app/domain"
	apperrors "user-sync-service/app/utils/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newRepoWithMock(t *testing.T) (*UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	repo := NewUserRepository(mock, testLogger()).(*UserRepository)
	return repo, mock
}

func sampleUser() *domain.User {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &domain.User{
		ID:         uuid.New(),
		ExternalID: "kc-1",
		Email:      "a@b.com",
		FirstName:  "A",
		LastName:   "B",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestUserRepository_Create(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	user := sampleUser()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID, user.ExternalID, user.Email, user.FirstName, user.LastName,
			user.CreatedAt, user.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), user))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateExternalID(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	user := sampleUser()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.ID, user.ExternalID, user.Email, user.FirstName, user.LastName,
			user.CreatedAt, user.UpdatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), user)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeUserExists))
}

func TestUserRepository_GetByExternalID(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	user := sampleUser()

	rows := pgxmock.NewRows([]string{
		"id", "external_id", "email", "first_name", "last_name",
		"created_at", "updated_at", "roles",
	}).AddRow(user.ID, user.ExternalID, user.Email, user.FirstName, user.LastName,
		user.CreatedAt, user.UpdatedAt, []string{"user", "admin"})

	mock.ExpectQuery("SELECT u.id, u.external_id").
		WithArgs("kc-1").
		WillReturnRows(rows)

	got, err := repo.GetByExternalID(context.Background(), "kc-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "kc-1", got.ExternalID)
	assert.Equal(t, []string{"user", "admin"}, got.Roles)
}

func TestUserRepository_GetByExternalID_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery("SELECT u.id, u.external_id").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByExternalID(context.Background(), "missing")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeUserNotFoundInUserService))
}

func TestUserRepository_GetByExternalID_ConnectionFailure(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery("SELECT u.id, u.external_id").
		WithArgs("kc-1").
		WillReturnError(errors.New("dial tcp 10.0.0.1:5432: connection refused"))

	_, err := repo.GetByExternalID(context.Background(), "kc-1")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeUserServiceUnavailable))
	assert.True(t, apperrors.IsRetryable(err))
}

func TestUserRepository_Update(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	userID := uuid.New()
	email := "new@b.com"

	update := domain.UpdateUserRequest{Email: &email}

	mock.ExpectExec("UPDATE users").
		WithArgs(userID, &email, (*string)(nil), (*string)(nil)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.Update(context.Background(), userID, update))
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	userID := uuid.New()
	email := "new@b.com"

	mock.ExpectExec("UPDATE users").
		WithArgs(userID, &email, (*string)(nil), (*string)(nil)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), userID, domain.UpdateUserRequest{Email: &email})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeUserNotFoundInUserService))
}

func TestUserRepository_Delete(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	userID := uuid.New()

	mock.ExpectExec("DELETE FROM users").
		WithArgs(userID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Delete(context.Background(), userID))
}

func TestUserRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	userID := uuid.New()

	mock.ExpectExec("DELETE FROM users").
		WithArgs(userID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), userID)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeUserNotFoundInUserService))
}

func TestUserRepository_AssignRole(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	userID := uuid.New()

	mock.ExpectExec("INSERT INTO user_roles").
		WithArgs(userID, "admin").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.AssignRole(context.Background(), userID, "admin"))
}

func TestUserRepository_RemoveRole(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	userID := uuid.New()

	mock.ExpectExec("DELETE FROM user_roles").
		WithArgs(userID, "admin").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.RemoveRole(context.Background(), userID, "admin"))
}
