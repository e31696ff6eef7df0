package shared

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors forming the failure taxonomy. Concrete error types below
// report themselves as one of these through errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Validation errors

// FailureKind distinguishes malformed input from input that collides with stored state.
type FailureKind string

const (
	FailureInvalid  FailureKind = "invalid"
	FailureConflict FailureKind = "conflict"
)

// FieldFailure is a single failed rule.
type FieldFailure struct {
	Field   string
	Message string
	Kind    FailureKind
}

// ValidationError carries every failure collected for one request.
type ValidationError struct {
	Failures []FieldFailure
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports ErrValidation always, and ErrConflict when any failure is a conflict.
func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrValidation:
		return true
	case ErrConflict:
		return e.IsConflict()
	}
	return false
}

// IsConflict reports whether any failure has kind conflict.
func (e *ValidationError) IsConflict() bool {
	for _, f := range e.Failures {
		if f.Kind == FailureConflict {
			return true
		}
	}
	return false
}

// Fields returns the distinct field names in failure order.
func (e *ValidationError) Fields() []string {
	seen := make(map[string]struct{}, len(e.Failures))
	fields := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		if _, ok := seen[f.Field]; ok {
			continue
		}
		seen[f.Field] = struct{}{}
		fields = append(fields, f.Field)
	}
	return fields
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Failures: []FieldFailure{{Field: field, Message: message, Kind: FailureInvalid}}}
}

func NewValidationFailures(failures []FieldFailure) *ValidationError {
	return &ValidationError{Failures: failures}
}

// Lookup errors

type NotFoundError struct {
	*DomainError
	Entity string
	Key    string
}

func NewNotFoundError(entity string, key any) *NotFoundError {
	k := fmt.Sprint(key)
	return &NotFoundError{
		DomainError: NewDomainError(fmt.Sprintf("%s (%s) was not found", entity, k)),
		Entity:      entity,
		Key:         k,
	}
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Persistence and state errors

type ConflictError struct {
	*DomainError
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{DomainError: NewDomainError(message)}
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// Access errors

type UnauthorizedError struct {
	*DomainError
}

func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{DomainError: NewDomainError(message)}
}

func (e *UnauthorizedError) Is(target error) bool {
	return target == ErrUnauthorized
}

type ForbiddenError struct {
	*DomainError
}

func NewForbiddenError(message string) *ForbiddenError {
	return &ForbiddenError{DomainError: NewDomainError(message)}
}

func (e *ForbiddenError) Is(target error) bool {
	return target == ErrForbidden
}
