package validators

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation is the sentinel every [ValidationError] matches via
	// errors.Is, so callers can branch on the class without inspecting fields.
	ErrValidation = errors.New("validation failed")
)

// ValidationError carries field-level validation failures. Each entry maps a
// field name to a stable, user-presentable message.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError constructs an empty ValidationError ready to collect
// field failures.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a failure message for the named field. The first message per
// field wins; later ones are ignored.
func (e *ValidationError) Add(field, message string) {
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

// HasErrors reports whether any field failures were recorded.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Messages returns the recorded failures as "field: message" strings in
// stable field order, suitable for a response envelope's errors array.
func (e *ValidationError) Messages() []string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}
	return messages
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(e.Messages(), "; "))
}

// Is makes every ValidationError match the ErrValidation sentinel.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
