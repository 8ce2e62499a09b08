package port

import (
	"context"

	"user-sync-service/app/domain"
)

// OrphanTracker records Keycloak accounts left inconsistent after a failed
// compensation. Entries are keyed by external identity; recording the same
// key twice keeps the last write. Entries are removed only by an explicit
// operator mark-cleaned after manual reconciliation.
type OrphanTracker interface {
	Record(ctx context.Context, orphan *domain.OrphanedUser)
	List(ctx context.Context) []*domain.OrphanedUser
	ListByReason(ctx context.Context, reason domain.OrphanReason) []*domain.OrphanedUser
	Get(ctx context.Context, externalID string) (*domain.OrphanedUser, bool)
	MarkCleaned(ctx context.Context, externalID string) error
}

// UserCache is the registration saga's short-lived positive-lookup cache.
// Only successful results are stored; expired entries are never returned.
type UserCache interface {
	Get(externalID string) (*domain.EnsureUserResult, bool)
	Set(externalID string, result *domain.EnsureUserResult)
	Delete(externalID string)
	Close()
}
