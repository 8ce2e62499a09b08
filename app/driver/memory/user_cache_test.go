package memory

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-sync-service/app/domain"
)

func newTestCache(t *testing.T, ttl time.Duration) (*UserCache, *time.Time) {
	t.Helper()

	cache := NewUserCache(ttl, time.Hour, testLogger()).(*UserCache)
	t.Cleanup(cache.Close)

	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }
	return cache, &current
}

func ensureResult(externalID string) *domain.EnsureUserResult {
	return &domain.EnsureUserResult{
		UserID: uuid.New(),
		IsNew:  true,
		Profile: &domain.User{
			ExternalID: externalID,
			Email:      "a@b.com",
		},
	}
}

func TestUserCache_SetAndGet(t *testing.T) {
	cache, _ := newTestCache(t, 5*time.Minute)

	result := ensureResult("kc-1")
	cache.Set("kc-1", result)

	got, hit := cache.Get("kc-1")
	require.True(t, hit)
	assert.Equal(t, result.UserID, got.UserID)
	assert.Equal(t, "kc-1", got.Profile.ExternalID)
}

func TestUserCache_StoredCopyIsNeverNew(t *testing.T) {
	cache, _ := newTestCache(t, 5*time.Minute)

	result := ensureResult("kc-1")
	cache.Set("kc-1", result)

	got, hit := cache.Get("kc-1")
	require.True(t, hit)
	assert.False(t, got.IsNew)
	// caller's copy is untouched
	assert.True(t, result.IsNew)
}

func TestUserCache_Miss(t *testing.T) {
	cache, _ := newTestCache(t, 5*time.Minute)

	_, hit := cache.Get("absent")
	assert.False(t, hit)
}

func TestUserCache_ExpiryAfterTTL(t *testing.T) {
	cache, current := newTestCache(t, 5*time.Minute)

	cache.Set("kc-1", ensureResult("kc-1"))

	*current = current.Add(5*time.Minute - time.Second)
	_, hit := cache.Get("kc-1")
	assert.True(t, hit)

	*current = current.Add(time.Second)
	_, hit = cache.Get("kc-1")
	assert.False(t, hit)
}

func TestUserCache_Delete(t *testing.T) {
	cache, _ := newTestCache(t, 5*time.Minute)

	cache.Set("kc-1", ensureResult("kc-1"))
	cache.Delete("kc-1")

	_, hit := cache.Get("kc-1")
	assert.False(t, hit)
}

func TestUserCache_EvictExpired(t *testing.T) {
	cache, current := newTestCache(t, 5*time.Minute)

	cache.Set("old", ensureResult("old"))
	*current = current.Add(3 * time.Minute)
	cache.Set("fresh", ensureResult("fresh"))

	*current = current.Add(2 * time.Minute)
	cache.evictExpired()

	cache.mu.RLock()
	_, oldPresent := cache.entries["old"]
	_, freshPresent := cache.entries["fresh"]
	cache.mu.RUnlock()

	assert.False(t, oldPresent)
	assert.True(t, freshPresent)
}

func TestUserCache_CloseIsIdempotent(t *testing.T) {
	cache, _ := newTestCache(t, 5*time.Minute)

	cache.Close()
	cache.Close()
}
