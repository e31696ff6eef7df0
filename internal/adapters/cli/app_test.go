package cli

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsdata/basketball-analytics/internal/adapters/messaging"
	"github.com/hoopsdata/basketball-analytics/internal/application/events"
	"github.com/hoopsdata/basketball-analytics/internal/infrastructure/config"
)

func TestApplicationClose_DrainsQueuedEventsBeforeCancellingDelivery(t *testing.T) {
	// Arrange
	var delivered atomic.Int32
	slowSink := messaging.SinkFunc(func(ctx context.Context, msg messaging.Message) error {
		select {
		case <-time.After(20 * time.Millisecond):
			delivered.Add(1)
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	policy := messaging.RetryPolicy{Intervals: []time.Duration{time.Millisecond}}

	app := &application{
		cfg:   &config.Config{Broker: config.BrokerConfig{Workers: 1}},
		queue: messaging.NewOutboundQueue(slowSink, policy, 8, nil, nil),
	}
	app.startQueue()

	for i := 0; i < 3; i++ {
		require.NoError(t, app.queue.Publish(context.Background(), &events.PlayerCreatedEvent{
			PlayerID:  uuid.New(),
			FirstName: "Michael",
			LastName:  "Jordan",
			TeamID:    uuid.New(),
			CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		}))
	}

	// Act
	err := app.Close()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int32(3), delivered.Load())
}
