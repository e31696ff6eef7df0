package helpers

import (
	"context"
	"sync"

	"github.com/hoopsdata/basketball-analytics/internal/application/common"
)

// RecordingPublisher captures published events in memory
type RecordingPublisher struct {
	mu     sync.Mutex
	events []common.Event
	err    error
}

func NewRecordingPublisher() *RecordingPublisher {
	return &RecordingPublisher{}
}

// FailWith makes subsequent Publish calls return err without recording
func (p *RecordingPublisher) FailWith(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

func (p *RecordingPublisher) Publish(ctx context.Context, event common.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

// Events returns a copy of everything published so far
func (p *RecordingPublisher) Events() []common.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]common.Event(nil), p.events...)
}
