package core

import (
	"fmt"

	"guessnum/config"
	"guessnum/internal/metrics"
	"guessnum/internal/random"
	"guessnum/util"
)

// Build constructs the guessing mode from the given configuration.
// A zero seed draws a fresh one from crypto/rand.  A nil logger logs
// nothing and a nil collector disables metrics.
func Build(cfg *config.Config, logger *util.Logger, collector *metrics.Collector) (Mode, error) {
	if logger == nil {
		logger = util.NewLogger(0)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	src, err := buildSource(cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("random source: %w", err)
	}
	logger.Debug("random seed %d", src.Seed())

	return &GuessMode{
		Source:     src,
		Low:        cfg.Low,
		High:       cfg.High,
		Hints:      cfg.Hints,
		Strict:     cfg.Strict,
		ShowTarget: !cfg.HideTarget,
		Logger:     logger,
		Metrics:    collector,
	}, nil
}

func buildSource(seed int64) (*random.PCG, error) {
	if seed != 0 {
		return random.New(seed), nil
	}
	return random.NewRandom()
}
