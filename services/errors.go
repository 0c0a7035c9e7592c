package services

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for request-level failures. These always map to a
// client-error response; they never indicate tracker corruption.
var (
	ErrEmptyQuery     = errors.New("query parameter is required")
	ErrAllMealsLogged = errors.New("all meals already logged")
	ErrNotInitialized = errors.New("daily budget not initialized; call predict first")
)

// ValidationError reports a missing or non-numeric initialization field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid or missing field: %s", e.Field)
}

// DuplicateLogError reports an attempt to log a meal slot twice in one day.
type DuplicateLogError struct {
	Slot string
}

func (e *DuplicateLogError) Error() string {
	return capitalize(e.Slot) + " already logged."
}

// UpstreamError marks a failure in an external collaborator (database,
// calorie predictor) so controllers can report it as a dependency fault
// rather than a client error.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
