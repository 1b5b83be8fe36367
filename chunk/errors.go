package chunk

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is. The concrete errors returned by
// this package carry more detail; these identify the failure class.
var (
	// ErrInvalidConfig indicates a Config that violates an invariant.
	// Recoverable by supplying a corrected configuration; never retried
	// automatically.
	ErrInvalidConfig = errors.New("invalid chunking configuration")

	// ErrMalformedInput indicates a TextRun whose offsets fall outside the
	// page text bounds. This is a programmer error at the extraction
	// boundary and is surfaced rather than silently clamped, because
	// clamping would corrupt downstream offsets.
	ErrMalformedInput = errors.New("malformed chunking input")
)

// ConfigError describes which configuration field violated which invariant.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid chunking configuration: %s %s", e.Field, e.Reason)
}

// Is makes ConfigError match ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// InputError describes a text run whose offsets do not fit the page text.
type InputError struct {
	Page   int
	Run    int
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("malformed input on page %d: run %d %s", e.Page, e.Run, e.Reason)
}

// Is makes InputError match ErrMalformedInput.
func (e *InputError) Is(target error) bool {
	return target == ErrMalformedInput
}
