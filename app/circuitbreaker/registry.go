package circuitbreaker

import (
	"log/slog"
	"sync"
	"time"
)

// DefaultSampleInterval is how often the registry samples breaker metrics
const DefaultSampleInterval = 5 * time.Second

// Registry owns one breaker per named downstream dependency and exposes
// aggregate health. Breakers are created lazily on first request and live
// for the process lifetime.
type Registry struct {
	mu       sync.RWMutex
	breakers map[string]*Breaker
	logger   *slog.Logger

	sampleInterval time.Duration
	stopSampler    chan struct{}
	samplerOnce    sync.Once
	stopOnce       sync.Once
}

// NewRegistry creates an empty breaker registry
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		breakers:       make(map[string]*Breaker),
		logger:         logger.With("component", "circuit_breaker_registry"),
		sampleInterval: DefaultSampleInterval,
		stopSampler:    make(chan struct{}),
	}
}

// GetOrCreate returns the breaker for name, creating it with the supplied
// settings on first request. An existing breaker is never replaced.
func (r *Registry) GetOrCreate(name string, settings Settings) *Breaker {
	r.mu.RLock()
	breaker, exists := r.breakers[name]
	r.mu.RUnlock()

	if exists {
		return breaker
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock
	if breaker, exists = r.breakers[name]; exists {
		return breaker
	}

	settings.Name = name
	breaker = New(settings, r.logger)
	r.breakers[name] = breaker

	r.logger.Info("created circuit breaker", "breaker", name,
		"failure_threshold", breaker.settings.FailureThreshold,
		"rolling_window", breaker.settings.RollingWindow,
		"reset_timeout", breaker.settings.ResetTimeout)

	return breaker
}

// Get returns the breaker for name if it exists
func (r *Registry) Get(name string) (*Breaker, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	breaker, exists := r.breakers[name]
	return breaker, exists
}

// Snapshot returns the current counts of every registered breaker
func (r *Registry) Snapshot() map[string]Counts {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]Counts, len(r.breakers))
	for name, breaker := range r.breakers {
		snapshot[name] = breaker.Counts()
	}
	return snapshot
}

// Healthy returns false if any breaker is open
func (r *Registry) Healthy() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, breaker := range r.breakers {
		if breaker.State() == StateOpen {
			return false
		}
	}
	return true
}

// Reset forces the named breaker back to closed. Returns false if no such
// breaker exists.
func (r *Registry) Reset(name string) bool {
	breaker, exists := r.Get(name)
	if !exists {
		return false
	}

	breaker.Reset()
	return true
}

// StartSampler starts a background goroutine that periodically logs each
// breaker's state and recent failure count. Safe to call once; stopped by
// Close.
func (r *Registry) StartSampler() {
	r.samplerOnce.Do(func() {
		go r.sample()
	})
}

func (r *Registry) sample() {
	ticker := time.NewTicker(r.sampleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			for name, counts := range r.Snapshot() {
				r.logger.Debug("circuit breaker sample",
					"breaker", name,
					"state", counts.State,
					"recent_failures", counts.RecentFailures)
			}
		case <-r.stopSampler:
			return
		}
	}
}

// Close stops the metrics sampler
func (r *Registry) Close() {
	r.stopOnce.Do(func() {
		close(r.stopSampler)
	})
}
