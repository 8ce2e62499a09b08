package memory

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-sync-service/app/domain"
	apperrors "user-sync-service/app/utils/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func orphanFor(externalID string, reason domain.OrphanReason) *domain.OrphanedUser {
	return &domain.OrphanedUser{
		ExternalID:    externalID,
		Reason:        reason,
		OriginalError: "user store returned 500",
		RollbackError: "keycloak delete timed out",
		OperationID:   "op-" + externalID,
		Timestamp:     time.Now(),
	}
}

func TestOrphanTracker_RecordAndGet(t *testing.T) {
	tracker := NewOrphanTracker(testLogger())
	ctx := context.Background()

	tracker.Record(ctx, orphanFor("kc-1", domain.OrphanReasonRollbackFailed))

	got, exists := tracker.Get(ctx, "kc-1")
	require.True(t, exists)
	assert.Equal(t, domain.OrphanReasonRollbackFailed, got.Reason)
	assert.Equal(t, "op-kc-1", got.OperationID)

	_, exists = tracker.Get(ctx, "kc-2")
	assert.False(t, exists)
}

func TestOrphanTracker_RecordLastWriteWins(t *testing.T) {
	tracker := NewOrphanTracker(testLogger())
	ctx := context.Background()

	tracker.Record(ctx, orphanFor("kc-1", domain.OrphanReasonRollbackFailed))
	tracker.Record(ctx, orphanFor("kc-1", domain.OrphanReasonKeycloakDeleteFailed))

	require.Len(t, tracker.List(ctx), 1)
	got, _ := tracker.Get(ctx, "kc-1")
	assert.Equal(t, domain.OrphanReasonKeycloakDeleteFailed, got.Reason)
}

func TestOrphanTracker_ListOrdered(t *testing.T) {
	tracker := NewOrphanTracker(testLogger())
	ctx := context.Background()

	tracker.Record(ctx, orphanFor("kc-3", domain.OrphanReasonRollbackFailed))
	tracker.Record(ctx, orphanFor("kc-1", domain.OrphanReasonRollbackFailed))
	tracker.Record(ctx, orphanFor("kc-2", domain.OrphanReasonUserServiceUnavailable))

	orphans := tracker.List(ctx)
	require.Len(t, orphans, 3)
	assert.Equal(t, "kc-1", orphans[0].ExternalID)
	assert.Equal(t, "kc-2", orphans[1].ExternalID)
	assert.Equal(t, "kc-3", orphans[2].ExternalID)
}

func TestOrphanTracker_ListByReason(t *testing.T) {
	tracker := NewOrphanTracker(testLogger())
	ctx := context.Background()

	tracker.Record(ctx, orphanFor("kc-1", domain.OrphanReasonRollbackFailed))
	tracker.Record(ctx, orphanFor("kc-2", domain.OrphanReasonUserServiceUnavailable))
	tracker.Record(ctx, orphanFor("kc-3", domain.OrphanReasonRollbackFailed))

	rollbacks := tracker.ListByReason(ctx, domain.OrphanReasonRollbackFailed)
	require.Len(t, rollbacks, 2)
	assert.Equal(t, "kc-1", rollbacks[0].ExternalID)
	assert.Equal(t, "kc-3", rollbacks[1].ExternalID)

	assert.Empty(t, tracker.ListByReason(ctx, domain.OrphanReasonKeycloakDeleteFailed))
}

func TestOrphanTracker_MarkCleaned(t *testing.T) {
	tracker := NewOrphanTracker(testLogger())
	ctx := context.Background()

	tracker.Record(ctx, orphanFor("kc-1", domain.OrphanReasonRollbackFailed))

	require.NoError(t, tracker.MarkCleaned(ctx, "kc-1"))
	_, exists := tracker.Get(ctx, "kc-1")
	assert.False(t, exists)

	err := tracker.MarkCleaned(ctx, "kc-1")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeNotFound))
}
