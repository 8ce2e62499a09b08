package memory

import (
	"log/slog"
	"sync"
	"time"

	"user-sync-service/app/domain"
	"user-sync-service/app/port"
)

// UserCache is the registration saga's short-lived positive-lookup cache.
// Entries expire after the configured TTL; a background janitor sweeps
// expired entries on a fixed interval, and reads never return an expired
// entry even before the sweep reaches it.
type UserCache struct {
	mu      sync.RWMutex
	entries map[string]cachedUser
	ttl     time.Duration
	logger  *slog.Logger

	now  func() time.Time
	stop chan struct{}
	once sync.Once
}

type cachedUser struct {
	result    domain.EnsureUserResult
	expiresAt time.Time
}

// NewUserCache creates a cache and starts its sweep janitor
func NewUserCache(ttl, sweepInterval time.Duration, logger *slog.Logger) port.UserCache {
	cache := &UserCache{
		entries: make(map[string]cachedUser),
		ttl:     ttl,
		logger:  logger.With("component", "registration_cache"),
		now:     time.Now,
		stop:    make(chan struct{}),
	}

	go cache.sweep(sweepInterval)
	return cache
}

// Get returns the cached result for an external ID if it has not expired
func (c *UserCache) Get(externalID string) (*domain.EnsureUserResult, bool) {
	c.mu.RLock()
	entry, exists := c.entries[externalID]
	c.mu.RUnlock()

	if !exists || !c.now().Before(entry.expiresAt) {
		return nil, false
	}

	result := entry.result
	return &result, true
}

// Set caches a result. The stored copy always carries IsNew=false so later
// hits never repeat the one-time new-user signal.
func (c *UserCache) Set(externalID string, result *domain.EnsureUserResult) {
	stored := *result
	stored.IsNew = false

	c.mu.Lock()
	c.entries[externalID] = cachedUser{
		result:    stored,
		expiresAt: c.now().Add(c.ttl),
	}
	c.mu.Unlock()
}

// Delete drops the entry for an external ID
func (c *UserCache) Delete(externalID string) {
	c.mu.Lock()
	delete(c.entries, externalID)
	c.mu.Unlock()
}

// Close stops the sweep janitor
func (c *UserCache) Close() {
	c.once.Do(func() {
		close(c.stop)
	})
}

func (c *UserCache) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.evictExpired()
		case <-c.stop:
			return
		}
	}
}

func (c *UserCache) evictExpired() {
	now := c.now()

	c.mu.Lock()
	evicted := 0
	for externalID, entry := range c.entries {
		if !now.Before(entry.expiresAt) {
			delete(c.entries, externalID)
			evicted++
		}
	}
	remaining := len(c.entries)
	c.mu.Unlock()

	if evicted > 0 {
		c.logger.Debug("swept expired cache entries", "evicted", evicted, "remaining", remaining)
	}
}
