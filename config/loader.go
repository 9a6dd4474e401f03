package config

// loader.go - configuration loading from environment variables.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Environment variables  (this file)
//   3. Defaults   (defaults.go)

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// LoadFromEnv overlays GUESSNUM_* environment variables onto cfg.
// Unset variables leave the existing value untouched.  This should be
// called BEFORE CLI flag parsing so that flags take precedence.
func LoadFromEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	return nil
}
