package mediator

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
)

var (
	// ErrHandlerNotFound is returned when no handler is registered for the request type.
	ErrHandlerNotFound = errors.New("no handler registered")
	// ErrPipelineSealed is returned when middleware is registered after the first Send.
	ErrPipelineSealed = errors.New("middleware must be registered before the first request is sent")
	// ErrUnexpectedResponse is returned by Send when the handler's response has the wrong type.
	ErrUnexpectedResponse = errors.New("unexpected response type")
)

// Mediator dispatches requests to their handlers through the middleware pipeline
type Mediator interface {
	Send(ctx context.Context, request Request) (Response, error)
	Register(requestType reflect.Type, handler RequestHandler) error
	RegisterMiddleware(middleware Middleware) error
}

type mediator struct {
	mu          sync.RWMutex
	handlers    map[reflect.Type]RequestHandler
	middlewares []Middleware
	sealed      bool
}

// NewMediator creates a new mediator instance
func NewMediator() Mediator {
	return &mediator{
		handlers: make(map[reflect.Type]RequestHandler),
	}
}

// Register registers a handler for a specific request type
func (m *mediator) Register(requestType reflect.Type, handler RequestHandler) error {
	if requestType == nil {
		return fmt.Errorf("request type cannot be nil")
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.handlers[requestType]; exists {
		return fmt.Errorf("handler already registered for type %s", requestType)
	}
	m.handlers[requestType] = handler
	return nil
}

// RegisterMiddleware appends a middleware to the pipeline.
// The first middleware registered is the outermost one.
func (m *mediator) RegisterMiddleware(middleware Middleware) error {
	if middleware == nil {
		return fmt.Errorf("middleware cannot be nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sealed {
		return ErrPipelineSealed
	}
	m.middlewares = append(m.middlewares, middleware)
	return nil
}

// Send routes the request through every middleware and then to its handler
func (m *mediator) Send(ctx context.Context, request Request) (Response, error) {
	if request == nil {
		return nil, fmt.Errorf("%w: request cannot be nil", ErrHandlerNotFound)
	}

	requestType := reflect.TypeOf(request)

	m.mu.Lock()
	m.sealed = true
	handler, exists := m.handlers[requestType]
	middlewares := m.middlewares
	m.mu.Unlock()

	if !exists {
		return nil, fmt.Errorf("%w for type %s", ErrHandlerNotFound, requestType)
	}

	return chain(middlewares, handler.Handle)(ctx, request)
}

func chain(middlewares []Middleware, final HandlerFunc) HandlerFunc {
	wrapped := final
	for i := len(middlewares) - 1; i >= 0; i-- {
		mw := middlewares[i]
		next := wrapped
		wrapped = func(ctx context.Context, request Request) (Response, error) {
			return mw(ctx, request, next)
		}
	}
	return wrapped
}

// RegisterHandler is a type-safe helper for registering handlers
func RegisterHandler[T Request](m Mediator, handler RequestHandler) error {
	requestType := reflect.TypeOf((*T)(nil)).Elem()
	return m.Register(requestType, handler)
}

// Send dispatches request and asserts the response to R.
// A handler that returns a nil response yields the zero value of R.
func Send[R Response](ctx context.Context, m Mediator, request Request) (R, error) {
	var zero R

	response, err := m.Send(ctx, request)
	if err != nil {
		return zero, err
	}
	if response == nil {
		return zero, nil
	}

	typed, ok := response.(R)
	if !ok {
		return zero, fmt.Errorf("%w: %s returned %T, expected %T", ErrUnexpectedResponse, RequestName(request), response, zero)
	}
	return typed, nil
}
