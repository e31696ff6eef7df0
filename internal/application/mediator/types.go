package mediator

import (
	"context"
	"reflect"
	"strings"
)

// Request represents a command or query
type Request interface{}

// Response represents the result of handling a request
type Response interface{}

// RequestHandler handles a specific request type
type RequestHandler interface {
	Handle(ctx context.Context, request Request) (Response, error)
}

// HandlerFunc is a function that handles a request
type HandlerFunc func(ctx context.Context, request Request) (Response, error)

// Handle lets a plain function be registered as a RequestHandler.
func (f HandlerFunc) Handle(ctx context.Context, request Request) (Response, error) {
	return f(ctx, request)
}

// Middleware wraps handler execution with a cross-cutting concern.
// A middleware may call next zero or one times; not calling it short-circuits the pipeline.
type Middleware func(ctx context.Context, request Request, next HandlerFunc) (Response, error)

// RequestName returns the bare type name of a request.
// Examples:
//   - "*commands.CreateTeamCommand" → "CreateTeamCommand"
//   - "*queries.GetAllTeamsQuery" → "GetAllTeamsQuery"
func RequestName(request Request) string {
	if request == nil {
		return "UnknownRequest"
	}

	fullName := strings.TrimPrefix(reflect.TypeOf(request).String(), "*")
	if idx := strings.LastIndex(fullName, "."); idx >= 0 {
		return fullName[idx+1:]
	}
	return fullName
}
