package validation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsdata/basketball-analytics/internal/application/validation"
	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
)

type signupCommand struct {
	Username string `validate:"required,min=3"`
	Age      int    `validate:"gte=18,lte=99"`
}

type untaggedQuery struct{}

func TestRegistry_CollectsTagFailures(t *testing.T) {
	// Arrange
	reg := validation.NewRegistry()

	// Act
	err := reg.Validate(context.Background(), &signupCommand{Username: "ab", Age: 12})

	// Assert
	var verr *shared.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"Username", "Age"}, verr.Fields())
	assert.Equal(t, "The length of 'Username' must be at least 3 characters.", verr.Failures[0].Message)
	assert.Equal(t, "'Age' must be greater than or equal to '18'.", verr.Failures[1].Message)
	assert.False(t, verr.IsConflict())
}

func TestRegistry_RunsRegisteredChecksAfterTags(t *testing.T) {
	// Arrange
	reg := validation.NewRegistry()
	require.NoError(t, validation.Register(reg, validation.RuleSet[*signupCommand]{
		Checks: []validation.Check[*signupCommand]{
			{
				Field:   "Username",
				Message: "Username 'taken' already exists",
				Kind:    shared.FailureConflict,
				Predicate: func(ctx context.Context, cmd *signupCommand) (bool, error) {
					return cmd.Username != "taken", nil
				},
			},
		},
	}))

	// Act
	err := reg.Validate(context.Background(), &signupCommand{Username: "taken", Age: 30})

	// Assert
	assert.ErrorIs(t, err, shared.ErrValidation)
	assert.ErrorIs(t, err, shared.ErrConflict)
}

func TestRegistry_PredicateErrorAborts(t *testing.T) {
	reg := validation.NewRegistry()
	boom := errors.New("store unavailable")
	require.NoError(t, validation.Register(reg, validation.RuleSet[*signupCommand]{
		Checks: []validation.Check[*signupCommand]{
			{Field: "Username", Message: "x", Predicate: func(ctx context.Context, cmd *signupCommand) (bool, error) {
				return false, boom
			}},
		},
	}))

	err := reg.Validate(context.Background(), &signupCommand{Username: "valid", Age: 30})

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, shared.ErrValidation)
}

func TestRegistry_UnregisteredTypeWithoutTagsPasses(t *testing.T) {
	reg := validation.NewRegistry()

	assert.NoError(t, reg.Validate(context.Background(), &untaggedQuery{}))
	assert.NoError(t, reg.Validate(context.Background(), nil))
}

func TestRegister_RejectsDuplicateRuleSets(t *testing.T) {
	reg := validation.NewRegistry()
	require.NoError(t, validation.Register(reg, validation.RuleSet[*untaggedQuery]{}))

	err := validation.Register(reg, validation.RuleSet[*untaggedQuery]{})

	assert.ErrorContains(t, err, "rules already registered")
}
