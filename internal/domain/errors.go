package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrStore      = errors.New("store failure")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
//
// Only the HTTP boundary raises it, for request bodies that are not JSON and
// path ids that are not integers. Todo content itself is never validated.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// StoreError reports a failure raised by the connection pool or by the
// database while running a statement. Error returns the underlying message
// untouched because it is handed to the client as the response body.
//
// StoreError matches both ErrStore and the wrapped driver error, so callers
// can still errors.As into driver-specific types.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return ErrStore.Error()
	}
	return e.Err.Error()
}

func (e *StoreError) Unwrap() []error {
	return []error{ErrStore, e.Err}
}
