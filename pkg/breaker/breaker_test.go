package breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var errUpstream = errors.New("upstream error")

func ok() error   { return nil }
func fail() error { return errUpstream }

func newTestBreaker(clock *time.Time, opts ...Option) *circuitBreaker {
	cb := New(Config{Window: 4, FailureRatio: 0.5, Cooldown: time.Second, Probes: 2}, opts...).(*circuitBreaker)
	cb.now = func() time.Time { return *clock }
	return cb
}

func TestCircuitBreaker_OpensOnFailureRatio(t *testing.T) {
	clock := time.Now()
	cb := newTestBreaker(&clock)

	require.NoError(t, cb.Call(ok))
	require.ErrorIs(t, cb.Call(fail), errUpstream)
	require.Equal(t, Closed, cb.State())

	require.ErrorIs(t, cb.Call(fail), errUpstream)
	require.Equal(t, Open, cb.State())

	called := false
	err := cb.Call(func() error { called = true; return nil })
	require.ErrorIs(t, err, ErrOpen)
	require.False(t, called)
}

func TestCircuitBreaker_HalfOpenRecovers(t *testing.T) {
	clock := time.Now()
	cb := newTestBreaker(&clock)
	cb.Call(fail) //nolint:errcheck
	cb.Call(fail) //nolint:errcheck
	require.Equal(t, Open, cb.State())

	clock = clock.Add(2 * time.Second)
	require.NoError(t, cb.Call(ok))
	require.Equal(t, HalfOpen, cb.State())
	require.NoError(t, cb.Call(ok))
	require.Equal(t, Closed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	clock := time.Now()
	cb := newTestBreaker(&clock)
	cb.Call(fail) //nolint:errcheck
	cb.Call(fail) //nolint:errcheck

	clock = clock.Add(2 * time.Second)
	require.ErrorIs(t, cb.Call(fail), errUpstream)
	require.Equal(t, Open, cb.State())
	require.ErrorIs(t, cb.Call(ok), ErrOpen)
}

func TestCircuitBreaker_SuccessfulErrorsDoNotTrip(t *testing.T) {
	clock := time.Now()
	errMissing := errors.New("missing")
	cb := newTestBreaker(&clock, WithSuccessful(func(err error) bool {
		return err == nil || errors.Is(err, errMissing)
	}))

	for i := 0; i < 10; i++ {
		require.ErrorIs(t, cb.Call(func() error { return errMissing }), errMissing)
	}
	require.Equal(t, Closed, cb.State())

	cb.Reset()
	require.Equal(t, "closed", cb.State().String())
}
