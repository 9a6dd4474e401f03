package config

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across CLI flags and environment variable loading.

const (
	// DefaultLow is the inclusive lower bound of the guessing range.
	DefaultLow = 1

	// DefaultHigh is the inclusive upper bound of the guessing range.
	DefaultHigh = 10

	// EnvPrefix prefixes every supported environment variable.
	EnvPrefix = "GUESSNUM_"
)
