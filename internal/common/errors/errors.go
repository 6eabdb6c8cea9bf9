// Package errors provides standardized error handling for record construction.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// ErrCodeMalformedInput covers unparsable JSON, embedded JSON strings that do
	// not parse, wrongly typed members and invalid date strings.
	ErrCodeMalformedInput ErrorCode = "MALFORMED_INPUT"
	// ErrCodeExtraField is returned by strict records for undeclared members.
	ErrCodeExtraField ErrorCode = "EXTRA_FIELD"
	// ErrCodeMissingField is returned when a required member is absent.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeConstraintViolation covers struct constraint tags (length limits).
	ErrCodeConstraintViolation ErrorCode = "CONSTRAINT_VIOLATION"
	// ErrCodeUnknownSchema is returned when a record name is not registered.
	ErrCodeUnknownSchema ErrorCode = "UNKNOWN_SCHEMA"
	// ErrCodeSchemaDefinition signals a broken record definition, not bad input.
	ErrCodeSchemaDefinition ErrorCode = "SCHEMA_DEFINITION_INVALID"
	// ErrCodeInternal is used when a non-standard error is normalized.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured construction failure.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	cause     error
}

func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("StandardError[%s]: %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying parse or validation error, if any.
func (e *StandardError) Unwrap() error {
	return e.cause
}

// WithMetadata returns the error with one more metadata entry set.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// ==========================
// 2. Error Constructors
// ==========================

// NewMalformedInputError creates a non-retryable malformed input error.
func NewMalformedInputError(field string, err error) *StandardError {
	details := fmt.Sprintf("field: %s", field)
	if err != nil {
		details = fmt.Sprintf("field: %s, error: %s", field, err.Error())
	}
	return &StandardError{
		Code:      ErrCodeMalformedInput,
		Message:   "Malformed input",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewInvalidDateError creates a malformed input error for a date member.
func NewInvalidDateError(field, value, layout string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedInput,
		Message:   "Invalid date format",
		Details:   fmt.Sprintf("field: %s, value: %q, expected: %s", field, value, layout),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewExtraFieldError creates a non-retryable error listing undeclared members.
func NewExtraFieldError(schema string, fields []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeExtraField,
		Message:   "Field not allowed in schema",
		Details:   fmt.Sprintf("schema: %s, fields: %s", schema, strings.Join(fields, ", ")),
		Retryable: false,
		Metadata:  map[string]interface{}{"fields": fields},
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingFieldError creates a non-retryable error listing absent required members.
func NewMissingFieldError(schema string, fields []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingField,
		Message:   "Required field missing",
		Details:   fmt.Sprintf("schema: %s, fields: %s", schema, strings.Join(fields, ", ")),
		Retryable: false,
		Metadata:  map[string]interface{}{"fields": fields},
		Timestamp: time.Now().UTC(),
	}
}

// NewConstraintViolationError creates a non-retryable constraint error.
func NewConstraintViolationError(schema string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeConstraintViolation,
		Message:   "Constraint violation",
		Details:   fmt.Sprintf("schema: %s, error: %s", schema, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewUnknownSchemaError creates an error for an unregistered record name.
func NewUnknownSchemaError(name string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownSchema,
		Message:   "Schema not registered",
		Details:   fmt.Sprintf("schema: %s", name),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSchemaDefinitionError reports a record definition that cannot be compiled.
func NewSchemaDefinitionError(schema string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSchemaDefinition,
		Message:   "Schema definition invalid",
		Details:   fmt.Sprintf("schema: %s, error: %s", schema, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// ==========================
// 3. Inspection Helpers
// ==========================

// Normalize ensures we always have a StandardError.
func Normalize(err error) *StandardError {
	if err == nil {
		return nil
	}
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// CodeOf returns the error code carried by err, or "" when err is nil.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	return Normalize(err).Code
}

// IsCode reports whether err is a StandardError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var stdErr *StandardError
	if !stderrors.As(err, &stdErr) {
		return false
	}
	return stdErr.Code == code
}

// GetErrorCategory groups codes for reporting.
func GetErrorCategory(code ErrorCode) string {
	switch code {
	case ErrCodeMalformedInput, ErrCodeConstraintViolation:
		return "INPUT_ERROR"
	case ErrCodeExtraField, ErrCodeMissingField:
		return "SHAPE_ERROR"
	case ErrCodeUnknownSchema, ErrCodeSchemaDefinition:
		return "CONFIGURATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}
