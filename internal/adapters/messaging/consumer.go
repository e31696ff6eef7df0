package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

// Processor handles one consumed payload
type Processor func(ctx context.Context, payload []byte) error

// messageReader is the subset of *kafka.Reader the consumer needs
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer reads a topic as part of a consumer group. Every message is
// processed with the retry policy and committed afterwards, even when
// processing finally fails.
type Consumer struct {
	reader  messageReader
	process Processor
	policy  RetryPolicy
	logger  *slog.Logger
}

// NewKafkaConsumer creates a consumer for topic in group groupID
func NewKafkaConsumer(brokers []string, topic, groupID string, process Processor, policy RetryPolicy, logger *slog.Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: 0,
		StartOffset:    kafka.FirstOffset,
		MaxWait:        time.Second,
	})
	return newConsumer(reader, process, policy, logger)
}

func newConsumer(reader messageReader, process Processor, policy RetryPolicy, logger *slog.Logger) *Consumer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Consumer{
		reader:  reader,
		process: process,
		policy:  policy,
		logger:  logger,
	}
}

// Run consumes until ctx is cancelled
func (c *Consumer) Run(ctx context.Context) error {
	for {
		km, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to fetch message: %w", err)
		}

		msg := FromKafkaMessage(km)
		logger := c.logger.With(
			slog.String("event", msg.Headers[HeaderEventName]),
			slog.Int("partition", msg.Partition),
			slog.Int64("offset", msg.Offset),
		)

		attempts, err := c.policy.DoCounted(ctx, func(ctx context.Context) error {
			return c.process(ctx, msg.Value)
		})
		switch {
		case err == nil:
		case errors.Is(err, ErrPoison):
			logger.Warn("Skipping unprocessable message", slog.String("error", err.Error()))
		case ctx.Err() != nil:
			return nil
		default:
			logger.Error("Giving up on message", slog.Int("attempts", attempts), slog.String("error", err.Error()))
		}

		if err := c.reader.CommitMessages(ctx, km); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to commit offset %d: %w", km.Offset, err)
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
