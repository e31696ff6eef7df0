package helpers

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/hoopsdata/basketball-analytics/internal/application/mediator"
)

// MockMediator is a test double for the Mediator interface.
// Transport tests use it to script application responses without a database.
type MockMediator struct {
	mu       sync.Mutex
	sendFunc func(ctx context.Context, request mediator.Request) (mediator.Response, error)
	requests []mediator.Request
	callLog  []string // Track which requests were sent
}

// NewMockMediator creates a new MockMediator
func NewMockMediator() *MockMediator {
	return &MockMediator{
		callLog: []string{},
	}
}

// Send implements the Mediator interface
func (m *MockMediator) Send(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	m.mu.Lock()
	m.callLog = append(m.callLog, mediator.RequestName(request))
	m.requests = append(m.requests, request)
	fn := m.sendFunc
	m.mu.Unlock()

	// Use custom function if provided
	if fn != nil {
		return fn(ctx, request)
	}
	return nil, fmt.Errorf("%w: %T", mediator.ErrHandlerNotFound, request)
}

// SetSendFunc sets a custom function for Send calls
func (m *MockMediator) SetSendFunc(fn func(ctx context.Context, request mediator.Request) (mediator.Response, error)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sendFunc = fn
}

// GetCallLog returns the names of the requests that were sent
func (m *MockMediator) GetCallLog() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.callLog...)
}

// LastRequest returns the most recent request, or nil
func (m *MockMediator) LastRequest() mediator.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return nil
	}
	return m.requests[len(m.requests)-1]
}

// ClearCallLog clears the call log
func (m *MockMediator) ClearCallLog() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callLog = []string{}
	m.requests = nil
}

// Register implements the Mediator interface (no-op for tests)
func (m *MockMediator) Register(requestType reflect.Type, handler mediator.RequestHandler) error {
	return nil // No-op for tests
}

// RegisterMiddleware implements the Mediator interface (no-op for tests)
func (m *MockMediator) RegisterMiddleware(middleware mediator.Middleware) error {
	return nil
}

// Ensure MockMediator implements the mediator.Mediator interface
var _ mediator.Mediator = (*MockMediator)(nil)
