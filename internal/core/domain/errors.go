package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPageSize is returned when a page size below one is requested.
	ErrInvalidPageSize = errors.New("page size must be positive")
	// ErrUnsupportedFormat is returned for uploads that are neither CSV nor XLSX.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrCampaignNotFound is returned when no stored document carries the
	// requested campaign id.
	ErrCampaignNotFound = errors.New("campaign not found")
)

// ValidationError reports a field that is missing, fails type coercion or
// breaks an invariant of the campaign schema.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation: " + e.Reason
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// DeserializationError reports a stored document that does not match the
// nested campaign shape. Err carries the underlying cause, usually a
// *ValidationError naming the offending path.
type DeserializationError struct {
	Err error
}

func (e *DeserializationError) Error() string {
	return "deserialize campaign document: " + e.Err.Error()
}

func (e *DeserializationError) Unwrap() error { return e.Err }

// StoreUnavailableError wraps a transport-level failure of the document
// store. It is fatal to the operation that observed it.
type StoreUnavailableError struct {
	Op  string
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable during %s: %v", e.Op, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error { return e.Err }

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
