package messaging

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
)

// CircuitState represents the state of the circuit breaker
type CircuitState int

const (
	// CircuitClosed lets every delivery through
	CircuitClosed CircuitState = iota
	// CircuitOpen fails deliveries without touching the broker
	CircuitOpen
	// CircuitHalfOpen lets deliveries through to probe whether the broker recovered
	CircuitHalfOpen
)

func (s CircuitState) String() string {
	switch s {
	case CircuitClosed:
		return "closed"
	case CircuitOpen:
		return "open"
	case CircuitHalfOpen:
		return "half_open"
	}
	return "unknown"
}

// ErrCircuitOpen is returned while the broker is considered down
var ErrCircuitOpen = errors.New("circuit breaker open")

// BreakerSink stops delivering to a failing sink for a cooldown period.
// Poison errors describe the message, not the broker, and are not counted.
type BreakerSink struct {
	next        Sink
	maxFailures int
	cooldown    time.Duration
	clock       shared.Clock

	mu              sync.Mutex
	state           CircuitState
	failureCount    int
	lastFailureTime time.Time
}

// NewBreakerSink wraps next. If clock is nil, uses RealClock.
func NewBreakerSink(next Sink, maxFailures int, cooldown time.Duration, clock shared.Clock) *BreakerSink {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	if maxFailures < 1 {
		maxFailures = 1
	}
	return &BreakerSink{
		next:        next,
		maxFailures: maxFailures,
		cooldown:    cooldown,
		clock:       clock,
		state:       CircuitClosed,
	}
}

// Deliver forwards msg unless the circuit is open
func (b *BreakerSink) Deliver(ctx context.Context, msg Message) error {
	b.mu.Lock()
	if b.state == CircuitOpen {
		if b.clock.Now().Sub(b.lastFailureTime) < b.cooldown {
			b.mu.Unlock()
			return ErrCircuitOpen
		}
		b.state = CircuitHalfOpen
	}
	b.mu.Unlock()

	// Deliver without holding the lock; writes can block for the broker timeout
	err := b.next.Deliver(ctx, msg)

	b.mu.Lock()
	defer b.mu.Unlock()
	switch {
	case err == nil, errors.Is(err, ErrPoison):
		b.onSuccess()
	case errors.Is(err, context.Canceled):
		// shutdown, not a broker failure
	default:
		b.onFailure()
	}
	return err
}

func (b *BreakerSink) onFailure() {
	b.failureCount++
	b.lastFailureTime = b.clock.Now()

	if b.state == CircuitHalfOpen || b.failureCount >= b.maxFailures {
		b.state = CircuitOpen
	}
}

func (b *BreakerSink) onSuccess() {
	b.failureCount = 0
	b.state = CircuitClosed
}

// State returns the current circuit state
func (b *BreakerSink) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// FailureCount returns the current consecutive failure count
func (b *BreakerSink) FailureCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failureCount
}
