package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound       = errors.New("not found")
	ErrValidation     = errors.New("validation error")
	ErrConflict       = errors.New("conflict")
	ErrForbidden      = errors.New("forbidden")
	ErrUnavailable    = errors.New("unavailable")
	ErrStrategyFailed = errors.New("strategy failed")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
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

// UnknownStrategyError reports that the registry could not produce an
// instance for the requested strategy id.
type UnknownStrategyError struct {
	ID string
}

func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("unknown packaging strategy %q: %s", e.ID, ErrNotFound.Error())
}

func (e *UnknownStrategyError) Unwrap() error {
	return ErrNotFound
}

// StrategyExecutionError wraps a failure raised while a strategy packaged
// products. Err is the strategy's own error or a recovered panic.
type StrategyExecutionError struct {
	ID  string
	Err error
}

func (e *StrategyExecutionError) Error() string {
	return fmt.Sprintf("packaging strategy %q: %v", e.ID, e.Err)
}

// Unwrap exposes both ErrStrategyFailed and the underlying cause.
func (e *StrategyExecutionError) Unwrap() []error {
	return []error{ErrStrategyFailed, e.Err}
}

// PersistenceError reports that the settings store could not read or write a
// key. It always matches ErrUnavailable.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("settings %s %q: %v", e.Op, e.Key, e.Err)
}

// Unwrap exposes both ErrUnavailable and the underlying cause.
func (e *PersistenceError) Unwrap() []error {
	return []error{ErrUnavailable, e.Err}
}
