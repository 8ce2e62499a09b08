package circuitbreaker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// State represents the circuit breaker state
type State string

const (
	StateClosed   State = "closed"
	StateOpen     State = "open"
	StateHalfOpen State = "half_open"
)

// Default tuning, used when a Settings field is left zero
const (
	DefaultFailureThreshold = 5
	DefaultSuccessThreshold = 2
	DefaultRollingWindow    = 10 * time.Second
	DefaultResetTimeout     = 30 * time.Second
	DefaultTimeout          = 5 * time.Second
)

// Settings holds the tuning for one breaker
type Settings struct {
	Name             string
	FailureThreshold int           // failures inside RollingWindow that trip the breaker
	SuccessThreshold int           // consecutive half-open successes that close it
	RollingWindow    time.Duration // sliding window for counting failures
	ResetTimeout     time.Duration // open duration before the next probe call
	Timeout          time.Duration // per-call execution timeout
}

func (s *Settings) withDefaults() {
	if s.FailureThreshold <= 0 {
		s.FailureThreshold = DefaultFailureThreshold
	}
	if s.SuccessThreshold <= 0 {
		s.SuccessThreshold = DefaultSuccessThreshold
	}
	if s.RollingWindow <= 0 {
		s.RollingWindow = DefaultRollingWindow
	}
	if s.ResetTimeout <= 0 {
		s.ResetTimeout = DefaultResetTimeout
	}
	if s.Timeout <= 0 {
		s.Timeout = DefaultTimeout
	}
}

// OpenError is returned when a call is rejected because the breaker is open.
// The wrapped operation is never invoked.
type OpenError struct {
	Name    string
	State   State
	RetryAt time.Time
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("circuit breaker %q is %s, retry after %s", e.Name, e.State, e.RetryAt.Format(time.RFC3339))
}

// TimeoutError is returned when the wrapped operation exceeds the breaker's
// execution timeout. It counts as a failure.
type TimeoutError struct {
	Name    string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("circuit breaker %q: call timed out after %s", e.Name, e.Timeout)
}

// Counts is a point-in-time snapshot of a breaker's internal counters
type Counts struct {
	State                State     `json:"state"`
	RecentFailures       int       `json:"recent_failures"`
	ConsecutiveFailures  int       `json:"consecutive_failures"`
	ConsecutiveSuccesses int       `json:"consecutive_successes"`
	NextAttempt          time.Time `json:"next_attempt,omitempty"`
}

// Breaker guards calls to one downstream dependency and fails fast while
// that dependency is known-bad.
//
// State machine: CLOSED counts failure timestamps in a sliding window and
// trips to OPEN at FailureThreshold. OPEN rejects calls until ResetTimeout
// has elapsed, then the next call probes in HALF_OPEN. Any HALF_OPEN failure
// reopens immediately; SuccessThreshold consecutive successes close the
// breaker and clear the window.
type Breaker struct {
	settings Settings
	logger   *slog.Logger

	mu                   sync.Mutex
	state                State
	failures             []time.Time // sliding window of failure timestamps
	consecutiveFailures  int
	consecutiveSuccesses int
	nextAttempt          time.Time

	now func() time.Time // injectable for tests
}

// New creates a breaker with the given settings
func New(settings Settings, logger *slog.Logger) *Breaker {
	settings.withDefaults()

	return &Breaker{
		settings: settings,
		logger:   logger.With("component", "circuit_breaker", "breaker", settings.Name),
		state:    StateClosed,
		now:      time.Now,
	}
}

// Name returns the breaker's dependency name
func (b *Breaker) Name() string {
	return b.settings.Name
}

// State returns the current state
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Counts returns a snapshot of the breaker's counters
func (b *Breaker) Counts() Counts {
	b.mu.Lock()
	defer b.mu.Unlock()

	return Counts{
		State:                b.state,
		RecentFailures:       len(b.pruned(b.now())),
		ConsecutiveFailures:  b.consecutiveFailures,
		ConsecutiveSuccesses: b.consecutiveSuccesses,
		NextAttempt:          b.nextAttempt,
	}
}

// Execute runs op through the breaker. While the breaker is open it rejects
// immediately with *OpenError without invoking op. The call is raced against
// the breaker's timeout; a timeout counts as a failure. Caller cancellation
// is passed through without touching the counters, since it says nothing
// about the dependency's health. The operation's own error is returned
// unchanged after the counters are updated.
func (b *Breaker) Execute(ctx context.Context, op func(context.Context) error) error {
	if err := b.beforeCall(); err != nil {
		return err
	}

	err := b.runWithTimeout(ctx, op)
	switch {
	case err == nil:
		b.onSuccess()
	case errors.Is(err, context.Canceled):
		// neither success nor failure
	default:
		b.onFailure()
	}
	return err
}

// Do runs a value-returning operation through the breaker
func Do[T any](ctx context.Context, b *Breaker, op func(context.Context) (T, error)) (T, error) {
	var result T

	err := b.Execute(ctx, func(ctx context.Context) error {
		var opErr error
		result, opErr = op(ctx)
		return opErr
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result, nil
}

// Reset forces the breaker to CLOSED with all counters zeroed. This is an
// operational recovery tool, not part of the normal state machine.
func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	prev := b.state
	b.state = StateClosed
	b.failures = nil
	b.consecutiveFailures = 0
	b.consecutiveSuccesses = 0
	b.nextAttempt = time.Time{}

	b.logger.Info("circuit breaker reset", "previous_state", prev)
}

func (b *Breaker) beforeCall() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != StateOpen {
		return nil
	}

	now := b.now()
	if now.Before(b.nextAttempt) {
		return &OpenError{
			Name:    b.settings.Name,
			State:   b.state,
			RetryAt: b.nextAttempt,
		}
	}

	// Reset timeout elapsed, allow a probe call
	b.transition(StateHalfOpen)
	b.consecutiveSuccesses = 0
	return nil
}

func (b *Breaker) runWithTimeout(ctx context.Context, op func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, b.settings.Timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- op(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		// Only the breaker's own deadline is a dependency timeout
		if errors.Is(ctx.Err(), context.Canceled) {
			return ctx.Err()
		}
		return &TimeoutError{Name: b.settings.Name, Timeout: b.settings.Timeout}
	}
}

func (b *Breaker) onSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateHalfOpen:
		b.consecutiveSuccesses++
		if b.consecutiveSuccesses >= b.settings.SuccessThreshold {
			b.transition(StateClosed)
			b.failures = nil
			b.consecutiveFailures = 0
			b.consecutiveSuccesses = 0
			b.nextAttempt = time.Time{}
		}
	case StateClosed:
		// A plain success resets the consecutive counter but does not
		// shrink the sliding window.
		b.consecutiveFailures = 0
	}
}

func (b *Breaker) onFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()

	switch b.state {
	case StateHalfOpen:
		// Any half-open failure reopens immediately
		b.trip(now)
	case StateClosed:
		b.consecutiveFailures++
		b.failures = append(b.pruned(now), now)
		if len(b.failures) >= b.settings.FailureThreshold {
			b.trip(now)
		}
	}
}

// trip moves the breaker to OPEN and schedules the next probe.
// Callers must hold the mutex.
func (b *Breaker) trip(now time.Time) {
	b.transition(StateOpen)
	b.nextAttempt = now.Add(b.settings.ResetTimeout)
	b.consecutiveSuccesses = 0
}

// pruned returns a fresh slice holding the failure window with entries older
// than RollingWindow dropped. It never writes into b.failures, so read paths
// like Counts can call it without disturbing the window. Callers must hold
// the mutex.
func (b *Breaker) pruned(now time.Time) []time.Time {
	cutoff := now.Add(-b.settings.RollingWindow)

	kept := make([]time.Time, 0, len(b.failures))
	for _, ts := range b.failures {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	return kept
}

// transition logs a state change. Callers must hold the mutex.
func (b *Breaker) transition(to State) {
	if b.state == to {
		return
	}

	from := b.state
	b.state = to
	b.logger.Warn("circuit breaker state change", "from", from, "to", to)
}
