package gateway

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"user-sync-service/app/domain"
	mock_port "user-sync-service/app/mocks"
	apperrors "user-sync-service/app/utils/errors"
)

func TestUserRecordGateway_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_port.NewMockUserRepository(ctrl)
	gw := NewUserRecordGateway(repo, newTestBreaker(BreakerNameUserService), testLogger())

	user := &domain.User{ID: uuid.New(), ExternalID: "kc-1", Email: "a@b.com"}
	repo.EXPECT().Create(gomock.Any(), user).Return(nil)

	require.NoError(t, gw.CreateUser(context.Background(), user))
}

func TestUserRecordGateway_GetUserByExternalID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_port.NewMockUserRepository(ctrl)
	gw := NewUserRecordGateway(repo, newTestBreaker(BreakerNameUserService), testLogger())

	repo.EXPECT().GetByExternalID(gomock.Any(), "missing").
		Return(nil, apperrors.ErrUserNotFoundInUserService)

	_, err := gw.GetUserByExternalID(context.Background(), "missing")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeUserNotFoundInUserService))
}

func TestUserRecordGateway_OpenBreakerShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_port.NewMockUserRepository(ctrl)
	gw := NewUserRecordGateway(repo, newTestBreaker(BreakerNameUserService), testLogger())

	unavailable := apperrors.New(apperrors.ErrCodeUserServiceUnavailable, "connection refused")
	repo.EXPECT().GetByExternalID(gomock.Any(), "kc-1").Return(nil, unavailable).Times(2)

	_, err := gw.GetUserByExternalID(context.Background(), "kc-1")
	require.Error(t, err)
	_, err = gw.GetUserByExternalID(context.Background(), "kc-1")
	require.Error(t, err)

	_, err = gw.GetUserByExternalID(context.Background(), "kc-1")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeCircuitOpen))
}

func TestUserRecordGateway_UpdateAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_port.NewMockUserRepository(ctrl)
	gw := NewUserRecordGateway(repo, newTestBreaker(BreakerNameUserService), testLogger())

	userID := uuid.New()
	email := "new@b.com"
	update := domain.UpdateUserRequest{Email: &email}

	repo.EXPECT().Update(gomock.Any(), userID, update).Return(nil)
	repo.EXPECT().Delete(gomock.Any(), userID).Return(nil)

	require.NoError(t, gw.UpdateUser(context.Background(), userID, update))
	require.NoError(t, gw.DeleteUser(context.Background(), userID))
}

func TestUserRecordGateway_RoleOperations(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_port.NewMockUserRepository(ctrl)
	gw := NewUserRecordGateway(repo, newTestBreaker(BreakerNameUserService), testLogger())

	userID := uuid.New()
	repo.EXPECT().AssignRole(gomock.Any(), userID, "admin").Return(nil)
	repo.EXPECT().RemoveRole(gomock.Any(), userID, "admin").Return(nil)

	require.NoError(t, gw.AssignRole(context.Background(), userID, "admin"))
	require.NoError(t, gw.RemoveRole(context.Background(), userID, "admin"))
}
