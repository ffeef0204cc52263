package breaker

import (
	"errors"
	"sync"
	"time"
)

type State uint8

const (
	Closed State = iota + 1
	Open
	HalfOpen
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

var ErrOpen = errors.New("circuit breaker is open")

type Config struct {
	// Window is the number of most recent calls the failure ratio is taken over.
	Window int `envconfig:"BREAKER_WINDOW" default:"20"`
	// FailureRatio opens the breaker once reached inside the window.
	FailureRatio float64 `envconfig:"BREAKER_FAILURE_RATIO" default:"0.5"`
	// Cooldown is how long the breaker stays open before probing.
	Cooldown time.Duration `envconfig:"BREAKER_COOLDOWN" default:"30s"`
	// Probes is the number of consecutive successes that close a half-open breaker.
	Probes int `envconfig:"BREAKER_PROBES" default:"3"`
}

type CircuitBreaker interface {
	Call(fn func() error) error
	State() State
	Reset()
}

type Option func(cb *circuitBreaker)

// WithSuccessful decides which errors do not count as failures, e.g. a
// "not found" answer from a healthy upstream.
func WithSuccessful(isSuccessful func(err error) bool) Option {
	return func(cb *circuitBreaker) {
		cb.isSuccessful = isSuccessful
	}
}

type circuitBreaker struct {
	mu  sync.Mutex
	cfg Config

	state    State
	openedAt time.Time
	// ring of recent outcomes, true means failed
	outcomes []bool
	pos      int
	probes   int

	isSuccessful func(err error) bool
	now          func() time.Time
}

func New(cfg Config, opts ...Option) CircuitBreaker {
	if cfg.Window <= 0 {
		cfg.Window = 1
	}
	cb := &circuitBreaker{
		cfg:          cfg,
		state:        Closed,
		outcomes:     make([]bool, cfg.Window),
		isSuccessful: func(err error) bool { return err == nil },
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(cb)
	}
	return cb
}

func (cb *circuitBreaker) Call(fn func() error) error {
	cb.mu.Lock()
	if cb.state == Open {
		if cb.now().Sub(cb.openedAt) <= cb.cfg.Cooldown {
			cb.mu.Unlock()
			return ErrOpen
		}
		cb.state = HalfOpen
		cb.probes = 0
	}
	cb.mu.Unlock()

	err := fn()
	failed := !cb.isSuccessful(err)

	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.outcomes[cb.pos] = failed
	cb.pos = (cb.pos + 1) % len(cb.outcomes)

	if cb.state == HalfOpen {
		if failed {
			cb.trip()
			return err
		}
		cb.probes++
		if cb.probes >= cb.cfg.Probes {
			cb.reset()
		}
		return err
	}

	if cb.failureRatio() >= cb.cfg.FailureRatio {
		cb.trip()
	}
	return err
}

func (cb *circuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *circuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.reset()
}

func (cb *circuitBreaker) trip() {
	cb.state = Open
	cb.probes = 0
	cb.openedAt = cb.now()
}

func (cb *circuitBreaker) reset() {
	for i := range cb.outcomes {
		cb.outcomes[i] = false
	}
	cb.pos = 0
	cb.probes = 0
	cb.state = Closed
}

func (cb *circuitBreaker) failureRatio() float64 {
	fails := 0
	for _, failed := range cb.outcomes {
		if failed {
			fails++
		}
	}
	return float64(fails) / float64(len(cb.outcomes))
}
