package config

import (
	"fmt"
	"strings"

	"routerstat/internal/management"
)

// ValidationError is one invalid configuration field.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.Message
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for multiple validation errors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}

	var messages []string
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// HasErrors returns true if there are any validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Add adds a new validation error
func (ve *ValidationErrors) Add(field, message string, value ...interface{}) {
	var val interface{}
	if len(value) > 0 {
		val = value[0]
	}
	*ve = append(*ve, ValidationError{
		Field:   field,
		Value:   val,
		Message: message,
	})
}

// ValidateOneOf checks if a value is in a list of allowed values
func ValidateOneOf(field, value string, allowed []string) error {
	for _, allowedValue := range allowed {
		if value == allowedValue {
			return nil
		}
	}
	return ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
	}
}

// Validate checks the fields LoadConfig cannot repair. The output format is
// checked by the CLI, which owns the renderers.
func (c Config) Validate() error {
	var errs ValidationErrors

	transports := make([]string, len(management.ValidTransports))
	for i, t := range management.ValidTransports {
		transports[i] = string(t)
	}
	if err := ValidateOneOf("transport", c.Transport, transports); err != nil {
		errs = append(errs, err.(ValidationError))
	}

	if c.Timeout < 0 {
		errs.Add("timeout", "must not be negative", c.Timeout)
	}
	if c.Limit < 0 {
		errs.Add("limit", "must not be negative", c.Limit)
	}
	if (c.TLS.Cert == "") != (c.TLS.Key == "") {
		errs.Add("tls", "cert and key must be set together")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
