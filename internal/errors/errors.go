// Package errors provides domain-specific error types for guessnum.
//
// The game surfaces two kinds of failure to the player: a bad range
// configuration and a line of input that is not a whole number.  Both
// carry enough context to print a useful message without re-wrapping.
package errors

import (
	"errors"
	"fmt"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	// ErrInputClosed is returned when the input provider runs dry
	// before the target was guessed.
	ErrInputClosed = errors.New("input closed before the number was guessed")

	// ErrSessionTerminated is returned when a guess is recorded on a
	// session that already reached a correct guess.
	ErrSessionTerminated = errors.New("session already terminated")
)

// ── Structured error types ───────────────────────────────────────────

// ConfigError represents an invalid configuration value, such as a
// guessing range whose lower bound exceeds its upper bound.
type ConfigError struct {
	Field   string      // config field name
	Value   interface{} // the invalid value (nil if missing)
	Message string      // human-readable explanation
	Hint    string      // suggestion for the user (optional)
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("config: --%s", e.Field)
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

// InputError reports a line of player input that could not be parsed
// as a guess.
type InputError struct {
	Input string // the offending text, whitespace-trimmed
	Err   error  // underlying parse error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %q: not a whole number", e.Input)
}

func (e *InputError) Unwrap() error { return e.Err }

// ── Constructors ─────────────────────────────────────────────────────

// InvalidRange builds the ConfigError returned when low > high.
func InvalidRange(low, high int) *ConfigError {
	return &ConfigError{
		Field:   "high",
		Value:   high,
		Message: fmt.Sprintf("must be >= --low (%d)", low),
		Hint:    "pick bounds such that low <= high, e.g. --low 1 --high 10",
	}
}

// WrapInput creates an InputError for the given text.
func WrapInput(input string, err error) *InputError {
	return &InputError{Input: input, Err: err}
}

// ── Classification helpers ───────────────────────────────────────────

// IsConfig reports whether err is (or wraps) a ConfigError.
func IsConfig(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsInput reports whether err is (or wraps) an InputError.
func IsInput(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// ── Re-exports for convenience ───────────────────────────────────────
//
// These allow callers to use guessnum/internal/errors as a drop-in
// replacement for the standard library in common operations.

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }
