package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationBuilder accumulates field-level validation errors. Build returns nil when
// nothing was recorded, otherwise an InvalidArgument error listing every field.
type ValidationBuilder struct {
	fields map[string][]string
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: make(map[string][]string)}
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// Fieldf adds a formatted validation error for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// Build returns the error if there are validation errors, nil otherwise
func (vb *ValidationBuilder) Build() error {
	if len(vb.fields) == 0 {
		return nil
	}

	names := make([]string, 0, len(vb.fields))
	for name := range vb.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, strings.Join(vb.fields[name], ", "))
	}

	return InvalidArgumentf("validation failed: %s", strings.Join(parts, "; ")).
		WithMeta("validation_errors", vb.fields)
}

// ValidateRequired records a required error when the trimmed value is empty
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateMaxLength records an error when the value is longer than maxValue
func ValidateMaxLength(field, value string, maxValue int, vb *ValidationBuilder) {
	if len(value) > maxValue {
		vb.Fieldf(field, "must be no more than %d characters", maxValue)
	}
}

// ValidateEnum checks if a value is in a list of allowed values
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
}
