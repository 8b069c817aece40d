package model

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation error")    // 400
	ErrNotFound           = errors.New("not found")           // 404
	ErrConflict           = errors.New("conflict")            // 409
	ErrPrecondition       = errors.New("precondition failed") // 412
	ErrBadGateway         = errors.New("bad gateway")         // 502
	ErrAdapter            = errors.New("storage unavailable") // 503
	ErrOrderNotFound      = fmt.Errorf("order %w", ErrNotFound)
	ErrTimeEntryNotFound  = fmt.Errorf("time entry %w", ErrNotFound)
	ErrPartUsageNotFound  = fmt.Errorf("part usage %w", ErrNotFound)
	ErrCatalogItemMissing = fmt.Errorf("catalog item %w", ErrNotFound)
	ErrNoRunningTimer     = fmt.Errorf("running timer %w", ErrNotFound)
	ErrTimerRunning       = fmt.Errorf("%w: a timer is already running for this order", ErrConflict)
	ErrReadOnly           = fmt.Errorf("%w: order is read-only", ErrPrecondition)
	ErrEntryRunning       = fmt.Errorf("%w: running entry must be stopped first", ErrPrecondition)
	ErrUnknownStatus      = errors.New("unknown status")
)

type View string

const (
	ViewInfo   View = "info"
	ViewParts  View = "parts"
	ViewReport View = "report"
)

// ValidationError names the offending field. Redirect, when set, is the
// view the caller should switch to in order to fix it.
type ValidationError struct {
	Field    string
	Message  string
	Redirect View
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// AdapterError wraps any failure of the persistence boundary. Callers may retry.
type AdapterError struct {
	Op  string
	Err error
}

func NewAdapterError(op string, err error) *AdapterError {
	return &AdapterError{Op: op, Err: err}
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, ErrAdapter, e.Err)
}

func (e *AdapterError) Unwrap() []error { return []error{ErrAdapter, e.Err} }

func (e *AdapterError) Retryable() bool { return true }

// DataIntegrityWarning reports an inconsistency that did not stop the operation.
type DataIntegrityWarning struct {
	Entity  string
	ID      string
	Message string
}

func (w DataIntegrityWarning) String() string {
	return fmt.Sprintf("%s %s: %s", w.Entity, w.ID, w.Message)
}

// IsDomainError reports errors that already carry a meaning for the caller
// and must not be reported as storage failures.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrAdapter)
}
