package messaging

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrPoison marks a message that can never be processed. Retries stop immediately.
var ErrPoison = errors.New("poison message")

// Poison wraps err so that errors.Is(err, ErrPoison) holds
func Poison(err error) error {
	return fmt.Errorf("%w: %w", ErrPoison, err)
}

// RetryPolicy retries a failed operation once per interval, waiting the interval first
type RetryPolicy struct {
	Intervals []time.Duration
}

// DefaultRetryPolicy waits 5s, 15s and 30s between attempts
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{Intervals: []time.Duration{5 * time.Second, 15 * time.Second, 30 * time.Second}}
}

// Do runs op until it succeeds, returns a poison error, or the intervals run out.
// The last error is returned. A cancelled context aborts the wait.
func (p RetryPolicy) Do(ctx context.Context, op func(ctx context.Context) error) error {
	_, err := p.DoCounted(ctx, op)
	return err
}

// DoCounted is Do that also reports how many times op actually ran
func (p RetryPolicy) DoCounted(ctx context.Context, op func(ctx context.Context) error) (int, error) {
	attempts := 1
	err := op(ctx)
	for _, interval := range p.Intervals {
		if err == nil || errors.Is(err, ErrPoison) {
			return attempts, err
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return attempts, fmt.Errorf("retry aborted: %w (last error: %v)", ctx.Err(), err)
		case <-timer.C:
		}

		attempts++
		err = op(ctx)
	}
	return attempts, err
}

// Attempts is the maximum number of times Do invokes an operation
func (p RetryPolicy) Attempts() int {
	return len(p.Intervals) + 1
}
