// Package errors provides centralized error definitions for rapbattle.
//
// Every failure the program can produce is detected while a battle is being
// set up: bad configuration, an unusable roster, or an invalid round count.
// These are reported as a [ConfigurationError] that wraps one of the sentinel
// errors below, so callers can match on either the type or the cause:
//
//	if errors.Is(err, errors.ErrNotEnoughCompetitors) { ... }
//
//	var cfgErr *errors.ConfigurationError
//	if errors.As(err, &cfgErr) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityWarning is for errors that might indicate a problem but aren't fatal.
	SeverityWarning Severity = iota
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityFatal is for errors that stop the program before a battle runs.
	SeverityFatal
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Roster-related sentinel errors
var (
	// ErrNotEnoughCompetitors indicates a roster too small to draw a battle from.
	ErrNotEnoughCompetitors = New("not enough competitors")
	// ErrNoLines indicates a competitor without any candidate lines.
	ErrNoLines = New("competitor has no lines")
	// ErrEmptyName indicates a competitor without a display name.
	ErrEmptyName = New("competitor name is empty")
	// ErrDuplicateCompetitor indicates two roster entries share a name.
	ErrDuplicateCompetitor = New("duplicate competitor")
	// ErrRosterFile indicates a roster file could not be read or parsed.
	ErrRosterFile = New("roster file unreadable")
)

// Battle-related sentinel errors
var (
	// ErrInvalidRounds indicates a non-positive round count.
	ErrInvalidRounds = New("round count must be positive")
	// ErrSameCompetitor indicates a competitor was matched against itself.
	ErrSameCompetitor = New("competitor cannot battle itself")
	// ErrMissingCompetitor indicates a nil competitor was passed to a battle.
	ErrMissingCompetitor = New("competitor is missing")
	// ErrMissingSource indicates a battle was set up without a random source or judge.
	ErrMissingSource = New("random source is missing")
	// ErrBattleFinished indicates a step was requested after the last round.
	ErrBattleFinished = New("battle already finished")
)

// ErrInvalidConfig indicates the loaded configuration failed validation.
var ErrInvalidConfig = New("invalid configuration")

// -----------------------------------------------------------------------------
// ConfigurationError
// -----------------------------------------------------------------------------

// ConfigurationError is returned for every fatal setup problem.
//
// Example:
//
//	err := errors.NewConfigurationError("battle needs at least one round", errors.ErrInvalidRounds).
//		WithField("battle.rounds", 0)
//	fmt.Println(err) // "configuration error [battle.rounds=0]: battle needs at least one round: round count must be positive"
type ConfigurationError struct {
	message    string
	cause      error
	severity Severity

	Field string
	Value any
}

// NewConfigurationError creates a new ConfigurationError.
func NewConfigurationError(message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		message:  message,
		cause:    cause,
		severity: SeverityFatal,
	}
}

// WithField records which setting or roster entry was at fault.
func (e *ConfigurationError) WithField(field string, value any) *ConfigurationError {
	e.Field = field
	e.Value = value
	return e
}

// WithSeverity sets the error severity.
func (e *ConfigurationError) WithSeverity(s Severity) *ConfigurationError {
	e.severity = s
	return e
}

// Error returns the formatted error message.
func (e *ConfigurationError) Error() string {
	prefix := "configuration error"
	if e.Field != "" {
		prefix = fmt.Sprintf("configuration error [%s=%v]", e.Field, e.Value)
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Unwrap returns the underlying error.
func (e *ConfigurationError) Unwrap() error {
	return e.cause
}

// Is matches any *ConfigurationError target as well as the wrapped cause.
func (e *ConfigurationError) Is(target error) bool {
	if _, ok := target.(*ConfigurationError); ok {
		return true
	}
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *ConfigurationError) Severity() Severity {
	return e.severity
}

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// IsConfigurationError reports whether err is, or wraps, a ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return As(err, &cfgErr)
}
