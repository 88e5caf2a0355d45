package entities

import (
	"fmt"
	"strings"
)

// FieldViolation is one failed constraint against a single field of an
// IndexConfig, BoundingBox, or Tile being validated.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v FieldViolation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// MultiValidationError accumulates every FieldViolation found while
// validating a config or query input, rather than stopping at the first
// one, so a config.Load() caller or API client sees every problem with a
// request at once instead of fixing them one at a time.
type MultiValidationError struct {
	Violations []FieldViolation `json:"violations"`
}

// Error implements the error interface.
func (e *MultiValidationError) Error() string {
	switch len(e.Violations) {
	case 0:
		return "no validation errors"
	case 1:
		return e.Violations[0].String()
	}
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("%d validation errors: %s", len(e.Violations), strings.Join(parts, "; "))
}

// Add records a field violation.
func (e *MultiValidationError) Add(field, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Message: message})
}

// HasErrors reports whether any violation was recorded.
func (e *MultiValidationError) HasErrors() bool {
	return len(e.Violations) > 0
}

// NewMultiValidationError creates an empty violation accumulator.
func NewMultiValidationError() *MultiValidationError {
	return &MultiValidationError{}
}
