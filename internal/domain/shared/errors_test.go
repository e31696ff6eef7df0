package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_MatchesTaxonomy(t *testing.T) {
	invalid := NewValidationError("Name", "'Name' must not be empty.")
	assert.True(t, errors.Is(invalid, ErrValidation))
	assert.False(t, errors.Is(invalid, ErrConflict))

	conflict := NewValidationFailures([]FieldFailure{
		{Field: "City", Message: "'City' must not be empty.", Kind: FailureInvalid},
		{Field: "Name", Message: "A team with this name already exists.", Kind: FailureConflict},
	})
	assert.True(t, errors.Is(conflict, ErrValidation))
	assert.True(t, errors.Is(conflict, ErrConflict))
	assert.Equal(t, []string{"City", "Name"}, conflict.Fields())
}

func TestValidationError_SurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("failed to create team: %w", NewValidationError("Name", "bad"))

	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, "Name", verr.Failures[0].Field)
}

func TestDomainErrors_MatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", NewNotFoundError("team", "42"), ErrNotFound},
		{"conflict", NewConflictError("duplicate"), ErrConflict},
		{"unauthorized", NewUnauthorizedError("missing token"), ErrUnauthorized},
		{"forbidden", NewForbiddenError("admins only"), ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(fmt.Errorf("wrapped: %w", tt.err), tt.sentinel))
			assert.False(t, errors.Is(tt.err, ErrValidation))
		})
	}
}

func TestNotFoundError_Message(t *testing.T) {
	err := NewNotFoundError("team", "abc")
	assert.Equal(t, "team (abc) was not found", err.Error())
	assert.Equal(t, "abc", err.Key)
}
