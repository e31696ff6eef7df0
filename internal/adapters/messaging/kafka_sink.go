package messaging

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaSink writes messages to a single topic
type KafkaSink struct {
	writer *kafka.Writer
}

// NewKafkaSink creates a sink writing to topic on brokers
func NewKafkaSink(brokers []string, topic string) *KafkaSink {
	return &KafkaSink{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			BatchSize:              1,
			BatchTimeout:           10 * time.Millisecond,
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		},
	}
}

// Deliver writes msg synchronously. Oversized or empty messages are poison.
func (s *KafkaSink) Deliver(ctx context.Context, msg Message) error {
	if len(msg.Value) == 0 {
		return Poison(errors.New("message has no payload"))
	}

	err := s.writer.WriteMessages(ctx, msg.ToKafkaMessage())
	if isOversized(err) {
		return Poison(err)
	}
	if err != nil {
		return fmt.Errorf("failed to write to %s: %w", s.writer.Topic, err)
	}
	return nil
}

func (s *KafkaSink) Close() error {
	return s.writer.Close()
}

// isOversized matches both the writer's local size check and a broker rejection,
// which arrives per message inside kafka.WriteErrors
func isOversized(err error) bool {
	if err == nil {
		return false
	}
	var tooLarge kafka.MessageTooLargeError
	if errors.As(err, &tooLarge) || errors.Is(err, kafka.MessageSizeTooLarge) {
		return true
	}
	var writeErrs kafka.WriteErrors
	if errors.As(err, &writeErrs) {
		for _, e := range writeErrs {
			if e != nil && errors.Is(e, kafka.MessageSizeTooLarge) {
				return true
			}
		}
	}
	return false
}
