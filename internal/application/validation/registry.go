package validation

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
)

// Predicate reports whether request satisfies a rule.
// An error means the rule could not be evaluated and aborts validation.
type Predicate[T any] func(ctx context.Context, request T) (bool, error)

// Check is a single named rule with the message reported when it fails.
type Check[T any] struct {
	Field     string
	Message   string
	Kind      shared.FailureKind
	Predicate Predicate[T]
	// Describe overrides Message when the text depends on the request.
	Describe func(request T) string
}

// RuleSet holds the checks that complement the struct tags of T.
type RuleSet[T any] struct {
	Checks []Check[T]
}

type ruleEvaluator interface {
	evaluate(ctx context.Context, request any) ([]shared.FieldFailure, error)
}

func (rs RuleSet[T]) evaluate(ctx context.Context, request any) ([]shared.FieldFailure, error) {
	typed, ok := request.(T)
	if !ok {
		var want T
		return nil, fmt.Errorf("rule set for %T cannot evaluate %T", want, request)
	}

	var failures []shared.FieldFailure
	for _, check := range rs.Checks {
		passed, err := check.Predicate(ctx, typed)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate rule on %s: %w", check.Field, err)
		}
		if passed {
			continue
		}
		kind := check.Kind
		if kind == "" {
			kind = shared.FailureInvalid
		}
		message := check.Message
		if check.Describe != nil {
			message = check.Describe(typed)
		}
		failures = append(failures, shared.FieldFailure{Field: check.Field, Message: message, Kind: kind})
	}
	return failures, nil
}

// Registry maps request types to their rules. Struct tags are always evaluated;
// registered rule sets run afterwards and may consult storage.
type Registry struct {
	validate *validator.Validate

	mu    sync.RWMutex
	rules map[reflect.Type]ruleEvaluator
}

func NewRegistry() *Registry {
	return &Registry{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		rules:    make(map[reflect.Type]ruleEvaluator),
	}
}

// Register attaches rules to request type T. Each type accepts one rule set.
func Register[T any](r *Registry, rules RuleSet[T]) error {
	requestType := reflect.TypeOf((*T)(nil)).Elem()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rules[requestType]; exists {
		return fmt.Errorf("rules already registered for type %s", requestType)
	}
	r.rules[requestType] = rules
	return nil
}

// Validate runs every rule for request and returns a *shared.ValidationError
// listing all failures, or nil when the request is valid.
func (r *Registry) Validate(ctx context.Context, request any) error {
	if request == nil {
		return nil
	}

	var failures []shared.FieldFailure

	if isStruct(request) {
		if err := r.validate.StructCtx(ctx, request); err != nil {
			var fieldErrs validator.ValidationErrors
			if !errors.As(err, &fieldErrs) {
				return fmt.Errorf("failed to validate %T: %w", request, err)
			}
			for _, fe := range fieldErrs {
				failures = append(failures, shared.FieldFailure{
					Field:   fe.Field(),
					Message: describe(fe),
					Kind:    shared.FailureInvalid,
				})
			}
		}
	}

	r.mu.RLock()
	rules, ok := r.rules[reflect.TypeOf(request)]
	r.mu.RUnlock()

	if ok {
		ruleFailures, err := rules.evaluate(ctx, request)
		if err != nil {
			return err
		}
		failures = append(failures, ruleFailures...)
	}

	if len(failures) > 0 {
		return shared.NewValidationFailures(failures)
	}
	return nil
}

func isStruct(request any) bool {
	v := reflect.ValueOf(request)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}
	return v.Kind() == reflect.Struct
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	isText := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("'%s' must not be empty.", field)
	case "max":
		if isText {
			return fmt.Sprintf("The length of '%s' must be %s characters or fewer.", field, fe.Param())
		}
		return fmt.Sprintf("'%s' must be less than or equal to '%s'.", field, fe.Param())
	case "min":
		if isText {
			return fmt.Sprintf("The length of '%s' must be at least %s characters.", field, fe.Param())
		}
		return fmt.Sprintf("'%s' must be greater than or equal to '%s'.", field, fe.Param())
	case "gte":
		return fmt.Sprintf("'%s' must be greater than or equal to '%s'.", field, fe.Param())
	case "lte":
		return fmt.Sprintf("'%s' must be less than or equal to '%s'.", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("'%s' must be one of: %s.", field, fe.Param())
	default:
		return fmt.Sprintf("'%s' is not valid (%s).", field, fe.Tag())
	}
}
