package weather

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a valid query simply has no matching data.
// It is an empty-result outcome, not a fault.
var ErrNotFound = errors.New("no weather data found")

// The error taxonomy the API boundary maps to transport status codes:
// ValidationError (bad input shape), FetchError (upstream provider fault)
// and StorageError (persistence fault). Absence of data is signalled with
// store.ErrNotFound and is not a fault.

// ValidationError reports malformed input: an invalid city name or a
// provider payload missing required fields.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// FetchError reports a failed call to the external weather provider.
type FetchError struct {
	City string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch weather for %s: %v", e.City, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// StorageError reports a failed persistence operation. The pipeline rolls
// back its transaction before one of these propagates.
type StorageError struct {
	City string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to save weather for %s: %v", e.City, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
