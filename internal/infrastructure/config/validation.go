package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// secretFields never have their values echoed in validation errors
var secretFields = map[string]bool{
	"Secret":   true,
	"Password": true,
	"URL":      true,
}

// Validator is a wrapper around go-playground/validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		validate: validator.New(),
	}
}

// Validate validates a struct using validation tags
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into readable messages
func (v *Validator) formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrs {
			value := fmt.Sprintf("%v", e.Value())
			if secretFields[e.StructField()] {
				value = "<redacted>"
			}
			messages = append(messages, fmt.Sprintf(
				"field '%s' failed validation: %s (value: '%s')",
				strings.TrimPrefix(e.Namespace(), "Config."),
				e.Tag(),
				value,
			))
		}
		return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
	}
	return err
}

// ValidateConfig validates the entire configuration
func ValidateConfig(cfg *Config) error {
	v := NewValidator()
	return v.Validate(cfg)
}
