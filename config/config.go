// Package config defines the runtime configuration for guessnum and
// the validation rules applied before a session starts.
package config

import (
	gerrors "guessnum/internal/errors"
)

// Config holds every tuneable for a single guessnum session.  The
// env tags are read by LoadFromEnv with the GUESSNUM_ prefix.
type Config struct {
	// ── Range ────────────────────────────────────────────────────────
	Low  int `env:"LOW"`
	High int `env:"HIGH"`

	// ── Gameplay ─────────────────────────────────────────────────────
	Hints      bool  `env:"HINTS"`       // print Higher!/Lower! after a miss
	Strict     bool  `env:"STRICT"`      // malformed input ends the session
	Seed       int64 `env:"SEED"`        // 0 → seed from crypto/rand
	HideTarget bool  `env:"HIDE_TARGET"` // skip the startup target print

	// ── Output ───────────────────────────────────────────────────────
	Stats   bool `env:"STATS"`
	Verbose int  `env:"VERBOSE"`
}

// New returns a Config populated with the package defaults.
func New() *Config {
	return &Config{
		Low:  DefaultLow,
		High: DefaultHigh,
	}
}

// ── Validation ───────────────────────────────────────────────────────

// Validate checks that the configuration is internally consistent.
// Failures are reported as *errors.ConfigError.
func (c *Config) Validate() error {
	if c.Low > c.High {
		return gerrors.InvalidRange(c.Low, c.High)
	}
	if c.Verbose < 0 {
		return &gerrors.ConfigError{
			Field:   "verbose",
			Value:   c.Verbose,
			Message: "must not be negative",
		}
	}
	return nil
}
