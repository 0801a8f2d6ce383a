package options

import (
	"fmt"
	"strings"
)

// FieldError is a validation failure on a single option field.
type FieldError struct {
	Field   string
	Message string
}

// Error returns the field error as "field: message".
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError aggregates the field errors of a whole record so one pass
// reports every invalid field.
type ValidationError struct {
	Errors []FieldError
}

// Error joins all field errors into a single message.
func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a field error.
func (e *ValidationError) Add(field, message string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any field failed.
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}
