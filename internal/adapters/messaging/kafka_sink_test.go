package messaging

import (
	"errors"
	"fmt"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestIsOversized(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"local size check", kafka.MessageTooLargeError{Message: kafka.Message{Value: []byte("x")}}, true},
		{"broker error code", kafka.MessageSizeTooLarge, true},
		{"broker rejection inside write errors", kafka.WriteErrors{kafka.MessageSizeTooLarge}, true},
		{"wrapped write errors", fmt.Errorf("write: %w", kafka.WriteErrors{nil, kafka.MessageSizeTooLarge}), true},
		{"other write errors", kafka.WriteErrors{kafka.LeaderNotAvailable}, false},
		{"unrelated", errors.New("dial tcp: connection refused"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isOversized(tt.err))
		})
	}
}
