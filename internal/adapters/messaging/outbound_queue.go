package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hoopsdata/basketball-analytics/internal/application/common"
)

var (
	ErrQueueFull   = errors.New("outbound queue is full")
	ErrQueueClosed = errors.New("outbound queue is closed")
)

// Sink delivers a single message to its destination
type Sink interface {
	Deliver(ctx context.Context, msg Message) error
}

// SinkFunc adapts a function to Sink
type SinkFunc func(ctx context.Context, msg Message) error

func (f SinkFunc) Deliver(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}

// DeliveryObserver is told the outcome of every delivery
type DeliveryObserver interface {
	RecordDelivery(event string, outcome string)
}

// Delivery outcomes reported to the observer
const (
	OutcomeDelivered = "delivered"
	OutcomePoison    = "poison"
	OutcomeDropped   = "dropped"
)

// OutboundQueue decouples event publication from delivery.
// Publish enqueues without blocking; workers deliver with retries.
type OutboundQueue struct {
	sink     Sink
	policy   RetryPolicy
	logger   *slog.Logger
	observer DeliveryObserver

	mu     sync.RWMutex
	queue  chan Message
	closed bool
	wg     sync.WaitGroup
}

// NewOutboundQueue creates a queue holding up to size undelivered messages
func NewOutboundQueue(sink Sink, policy RetryPolicy, size int, logger *slog.Logger, observer DeliveryObserver) *OutboundQueue {
	if logger == nil {
		logger = slog.Default()
	}
	if size < 1 {
		size = 1
	}
	return &OutboundQueue{
		sink:     sink,
		policy:   policy,
		logger:   logger,
		observer: observer,
		queue:    make(chan Message, size),
	}
}

// Start launches the delivery workers. Cancelling ctx aborts pending retries.
func (q *OutboundQueue) Start(ctx context.Context, workers int) {
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.worker(ctx, i)
	}
}

// Publish serialises event and enqueues it for delivery
func (q *OutboundQueue) Publish(ctx context.Context, event common.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return Poison(fmt.Errorf("failed to encode %s: %w", event.EventName(), err))
	}

	msg := Message{
		Key:     []byte(event.EventKey()),
		Value:   payload,
		Headers: map[string]string{HeaderEventName: event.EventName()},
	}
	if id := common.CorrelationIDFromContext(ctx); id != "" {
		msg.Headers["correlation-id"] = id
	}

	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.queue <- msg:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting events and waits for queued messages to be handled
func (q *OutboundQueue) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	close(q.queue)
	q.mu.Unlock()

	q.wg.Wait()
	return nil
}

func (q *OutboundQueue) worker(ctx context.Context, id int) {
	defer q.wg.Done()
	logger := q.logger.With(slog.Int("worker", id))

	for msg := range q.queue {
		event := msg.Headers[HeaderEventName]
		attempts, err := q.policy.DoCounted(ctx, func(ctx context.Context) error {
			return q.sink.Deliver(ctx, msg)
		})

		outcome := OutcomeDelivered
		switch {
		case err == nil:
			logger.Debug("Event delivered", slog.String("event", event))
		case errors.Is(err, ErrPoison):
			outcome = OutcomePoison
			logger.Error("Discarding undeliverable event", slog.String("event", event), slog.String("error", err.Error()))
		default:
			outcome = OutcomeDropped
			logger.Error("Event dropped after retries",
				slog.String("event", event),
				slog.Int("attempts", attempts),
				slog.String("error", err.Error()),
			)
		}
		if q.observer != nil {
			q.observer.RecordDelivery(event, outcome)
		}
	}
}
