package circuitbreaker

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// fakeClock drives the breaker's notion of time without sleeping
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time {
	return c.current
}

func (c *fakeClock) advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newTestBreaker(settings Settings) (*Breaker, *fakeClock) {
	clock := &fakeClock{current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	b := New(settings, testLogger())
	b.now = clock.now
	return b, clock
}

var errDownstream = errors.New("downstream failure")

func failingOp(ctx context.Context) error { return errDownstream }

func succeedingOp(ctx context.Context) error { return nil }

func TestBreaker_OpensAtFailureThreshold(t *testing.T) {
	b, _ := newTestBreaker(Settings{
		Name:             "keycloak",
		FailureThreshold: 3,
		RollingWindow:    10 * time.Second,
		ResetTimeout:     30 * time.Second,
		Timeout:          time.Second,
	})

	ctx := context.Background()

	for i := 0; i < 2; i++ {
		err := b.Execute(ctx, failingOp)
		assert.ErrorIs(t, err, errDownstream)
		assert.Equal(t, StateClosed, b.State())
	}

	err := b.Execute(ctx, failingOp)
	assert.ErrorIs(t, err, errDownstream)
	assert.Equal(t, StateOpen, b.State())
}

func TestBreaker_FailuresOutsideWindowDoNotTrip(t *testing.T) {
	b, clock := newTestBreaker(Settings{
		Name:             "keycloak",
		FailureThreshold: 3,
		RollingWindow:    10 * time.Second,
		ResetTimeout:     30 * time.Second,
		Timeout:          time.Second,
	})

	ctx := context.Background()

	require.Error(t, b.Execute(ctx, failingOp))
	require.Error(t, b.Execute(ctx, failingOp))

	// The first two failures age out of the window
	clock.advance(11 * time.Second)

	require.Error(t, b.Execute(ctx, failingOp))
	assert.Equal(t, StateClosed, b.State())
	assert.Equal(t, 1, b.Counts().RecentFailures)
}

func TestBreaker_CountsReadDoesNotDisturbWindow(t *testing.T) {
	b, clock := newTestBreaker(Settings{
		Name:             "keycloak",
		FailureThreshold: 3,
		RollingWindow:    10 * time.Second,
		ResetTimeout:     30 * time.Second,
		Timeout:          time.Second,
	})

	ctx := context.Background()

	require.Error(t, b.Execute(ctx, failingOp))
	clock.advance(5 * time.Second)
	require.Error(t, b.Execute(ctx, failingOp))

	// The first failure has aged out; reading the counters here must not
	// leave stale duplicates in the window
	clock.advance(6 * time.Second)
	assert.Equal(t, 1, b.Counts().RecentFailures)

	require.Error(t, b.Execute(ctx, failingOp))
	assert.Equal(t, StateClosed, b.State(), "two in-window failures must not trip a threshold of three")
	assert.Equal(t, 2, b.Counts().RecentFailures)
}

func TestBreaker_OpenRejectsWithoutInvoking(t *testing.T) {
	b, clock := newTestBreaker(Settings{
		Name:             "user-service",
		FailureThreshold: 1,
		ResetTimeout:     30 * time.Second,
		Timeout:          time.Second,
	})

	ctx := context.Background()
	require.Error(t, b.Execute(ctx, failingOp))
	require.Equal(t, StateOpen, b.State())

	invoked := false
	err := b.Execute(ctx, func(ctx context.Context) error {
		invoked = true
		return nil
	})

	var openErr *OpenError
	require.ErrorAs(t, err, &openErr)
	assert.Equal(t, "user-service", openErr.Name)
	assert.Equal(t, StateOpen, openErr.State)
	assert.False(t, invoked, "open breaker must not invoke the operation")

	// Still open just before the reset timeout elapses
	clock.advance(29 * time.Second)
	err = b.Execute(ctx, func(ctx context.Context) error {
		invoked = true
		return nil
	})
	require.ErrorAs(t, err, &openErr)
	assert.False(t, invoked)
}

func TestBreaker_HalfOpenAfterResetTimeout(t *testing.T) {
	b, clock := newTestBreaker(Settings{
		Name:             "keycloak",
		FailureThreshold: 1,
		ResetTimeout:     30 * time.Second,
		SuccessThreshold: 2,
		Timeout:          time.Second,
	})

	ctx := context.Background()
	require.Error(t, b.Execute(ctx, failingOp))
	require.Equal(t, StateOpen, b.State())

	clock.advance(31 * time.Second)

	// First call after the reset timeout is allowed and probes half-open
	require.NoError(t, b.Execute(ctx, succeedingOp))
	assert.Equal(t, StateHalfOpen, b.State())

	// Second consecutive success closes the breaker and clears the window
	require.NoError(t, b.Execute(ctx, succeedingOp))
	assert.Equal(t, StateClosed, b.State())
	assert.Equal(t, 0, b.Counts().RecentFailures)
}

func TestBreaker_HalfOpenFailureReopensImmediately(t *testing.T) {
	b, clock := newTestBreaker(Settings{
		Name:             "keycloak",
		FailureThreshold: 1,
		ResetTimeout:     30 * time.Second,
		SuccessThreshold: 2,
		Timeout:          time.Second,
	})

	ctx := context.Background()
	require.Error(t, b.Execute(ctx, failingOp))

	clock.advance(31 * time.Second)

	require.ErrorIs(t, b.Execute(ctx, failingOp), errDownstream)
	assert.Equal(t, StateOpen, b.State())

	// nextAttempt was pushed out again
	var openErr *OpenError
	err := b.Execute(ctx, succeedingOp)
	require.ErrorAs(t, err, &openErr)
	assert.Equal(t, clock.current.Add(30*time.Second), openErr.RetryAt)
}

func TestBreaker_SuccessInClosedResetsConsecutiveNotWindow(t *testing.T) {
	b, _ := newTestBreaker(Settings{
		Name:             "keycloak",
		FailureThreshold: 3,
		RollingWindow:    10 * time.Second,
		Timeout:          time.Second,
	})

	ctx := context.Background()

	require.Error(t, b.Execute(ctx, failingOp))
	require.Error(t, b.Execute(ctx, failingOp))
	require.NoError(t, b.Execute(ctx, succeedingOp))

	counts := b.Counts()
	assert.Equal(t, 0, counts.ConsecutiveFailures)
	assert.Equal(t, 2, counts.RecentFailures, "window survives a plain success")

	// A third windowed failure still trips the breaker
	require.Error(t, b.Execute(ctx, failingOp))
	assert.Equal(t, StateOpen, b.State())
}

func TestBreaker_TimeoutCountsAsFailure(t *testing.T) {
	b, _ := newTestBreaker(Settings{
		Name:             "user-service",
		FailureThreshold: 1,
		Timeout:          20 * time.Millisecond,
	})

	err := b.Execute(context.Background(), func(ctx context.Context) error {
		select {
		case <-time.After(time.Second):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	var timeoutErr *TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Equal(t, "user-service", timeoutErr.Name)
	assert.Equal(t, StateOpen, b.State())
}

func TestBreaker_CallerCancellationIsNotAFailure(t *testing.T) {
	b, _ := newTestBreaker(Settings{
		Name:             "user-service",
		FailureThreshold: 1,
		Timeout:          time.Second,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := b.Execute(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	require.ErrorIs(t, err, context.Canceled)
	var timeoutErr *TimeoutError
	assert.False(t, errors.As(err, &timeoutErr), "cancellation must not be reported as a dependency timeout")

	// An impatient caller must not move the breaker toward open
	assert.Equal(t, StateClosed, b.State())
	assert.Zero(t, b.Counts().RecentFailures)
}

func TestBreaker_Reset(t *testing.T) {
	b, _ := newTestBreaker(Settings{
		Name:             "keycloak",
		FailureThreshold: 1,
		Timeout:          time.Second,
	})

	ctx := context.Background()
	require.Error(t, b.Execute(ctx, failingOp))
	require.Equal(t, StateOpen, b.State())

	b.Reset()

	assert.Equal(t, StateClosed, b.State())
	counts := b.Counts()
	assert.Zero(t, counts.RecentFailures)
	assert.Zero(t, counts.ConsecutiveFailures)

	// Calls flow again immediately
	assert.NoError(t, b.Execute(ctx, succeedingOp))
}

func TestBreaker_DoReturnsValue(t *testing.T) {
	b, _ := newTestBreaker(Settings{Name: "keycloak", Timeout: time.Second})

	got, err := Do(context.Background(), b, func(ctx context.Context) (string, error) {
		return "kc-1", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "kc-1", got)

	_, err = Do(context.Background(), b, func(ctx context.Context) (string, error) {
		return "", errDownstream
	})
	assert.ErrorIs(t, err, errDownstream)
}

func TestBreaker_ErrorsPassThroughUnchanged(t *testing.T) {
	b, _ := newTestBreaker(Settings{Name: "keycloak", FailureThreshold: 10, Timeout: time.Second})

	sentinel := errors.New("a specific downstream error")
	err := b.Execute(context.Background(), func(ctx context.Context) error {
		return sentinel
	})

	assert.ErrorIs(t, err, sentinel)
}

func TestSettings_Defaults(t *testing.T) {
	b := New(Settings{Name: "defaults"}, testLogger())

	assert.Equal(t, DefaultFailureThreshold, b.settings.FailureThreshold)
	assert.Equal(t, DefaultSuccessThreshold, b.settings.SuccessThreshold)
	assert.Equal(t, DefaultRollingWindow, b.settings.RollingWindow)
	assert.Equal(t, DefaultResetTimeout, b.settings.ResetTimeout)
	assert.Equal(t, DefaultTimeout, b.settings.Timeout)
}
