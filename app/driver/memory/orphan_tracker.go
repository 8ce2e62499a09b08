package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"user-sync-service/app/domain"
	"user-sync-service/app/port"
	apperrors "user-sync-service/app/utils/errors"
)

// OrphanTracker is the in-memory registry of Keycloak accounts left without
// a matching user record. It is injected rather than global so tests can
// run against isolated instances.
type OrphanTracker struct {
	mu      sync.RWMutex
	entries map[string]*domain.OrphanedUser
	logger  *slog.Logger
}

// NewOrphanTracker creates an empty orphan tracker
func NewOrphanTracker(logger *slog.Logger) port.OrphanTracker {
	return &OrphanTracker{
		entries: make(map[string]*domain.OrphanedUser),
		logger:  logger.With("component", "orphan_tracker"),
	}
}

// Record stores an orphan entry. Recording the same external ID again
// overwrites the previous entry (last write wins).
func (t *OrphanTracker) Record(ctx context.Context, orphan *domain.OrphanedUser) {
	t.mu.Lock()
	t.entries[orphan.ExternalID] = orphan
	total := len(t.entries)
	t.mu.Unlock()

	// Compensation failures are invisible to end users, so this log line
	// and the tracker entry are the only durable trace.
	t.logger.Error("orphaned keycloak account recorded",
		"external_id", orphan.ExternalID,
		"reason", orphan.Reason,
		"operation_id", orphan.OperationID,
		"original_error", orphan.OriginalError,
		"rollback_error", orphan.RollbackError,
		"total_orphans", total)
}

// List returns all orphan entries ordered by external ID
func (t *OrphanTracker) List(ctx context.Context) []*domain.OrphanedUser {
	t.mu.RLock()
	defer t.mu.RUnlock()

	orphans := make([]*domain.OrphanedUser, 0, len(t.entries))
	for _, orphan := range t.entries {
		orphans = append(orphans, orphan)
	}

	sort.Slice(orphans, func(i, j int) bool {
		return orphans[i].ExternalID < orphans[j].ExternalID
	})
	return orphans
}

// ListByReason returns orphan entries recorded with the given reason
func (t *OrphanTracker) ListByReason(ctx context.Context, reason domain.OrphanReason) []*domain.OrphanedUser {
	orphans := t.List(ctx)

	filtered := orphans[:0]
	for _, orphan := range orphans {
		if orphan.Reason == reason {
			filtered = append(filtered, orphan)
		}
	}
	return filtered
}

// Get returns the orphan entry for an external ID, if present
func (t *OrphanTracker) Get(ctx context.Context, externalID string) (*domain.OrphanedUser, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	orphan, exists := t.entries[externalID]
	return orphan, exists
}

// MarkCleaned removes an entry after manual reconciliation
func (t *OrphanTracker) MarkCleaned(ctx context.Context, externalID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.entries[externalID]; !exists {
		return apperrors.Newf(apperrors.ErrCodeNotFound, "no orphan entry for %s", externalID)
	}

	delete(t.entries, externalID)
	t.logger.Info("orphan entry marked cleaned", "external_id", externalID)
	return nil
}
