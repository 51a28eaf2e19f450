package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "battle.rounds")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Limits for output.pace_ms
const (
	MinPaceMs = 0
	MaxPaceMs = 10_000
)

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateBattle()...)
	errors = append(errors, c.validateRoster()...)
	errors = append(errors, c.validateOutput()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateBattle() []ValidationError {
	var errors []ValidationError

	if c.Battle.Rounds < 1 {
		errors = append(errors, ValidationError{
			Field:   "battle.rounds",
			Value:   c.Battle.Rounds,
			Message: "must be at least 1",
		})
	}

	return errors
}

func (c *Config) validateRoster() []ValidationError {
	var errors []ValidationError

	if c.Roster.File == "" {
		return errors
	}

	info, err := os.Stat(c.Roster.File)
	switch {
	case err != nil:
		errors = append(errors, ValidationError{
			Field:   "roster.file",
			Value:   c.Roster.File,
			Message: "file does not exist or is not readable",
		})
	case info.IsDir():
		errors = append(errors, ValidationError{
			Field:   "roster.file",
			Value:   c.Roster.File,
			Message: "must be a file, not a directory",
		})
	}

	return errors
}

func (c *Config) validateOutput() []ValidationError {
	var errors []ValidationError

	if c.Output.PaceMs < MinPaceMs {
		errors = append(errors, ValidationError{
			Field:   "output.pace_ms",
			Value:   c.Output.PaceMs,
			Message: "must be non-negative",
		})
	}
	if c.Output.PaceMs > MaxPaceMs {
		errors = append(errors, ValidationError{
			Field:   "output.pace_ms",
			Value:   c.Output.PaceMs,
			Message: fmt.Sprintf("exceeds maximum of %dms", MaxPaceMs),
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
