package config

import (
	"testing"
)

func TestLoadFromEnv_Range(t *testing.T) {
	t.Setenv("GUESSNUM_LOW", "1")
	t.Setenv("GUESSNUM_HIGH", "100")
	cfg := New()
	if err := LoadFromEnv(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Low != 1 || cfg.High != 100 {
		t.Errorf("range = [%d, %d], want [1, 100]", cfg.Low, cfg.High)
	}
}

func TestLoadFromEnv_Booleans(t *testing.T) {
	tests := []struct {
		key    string
		values []string
	}{
		{"GUESSNUM_HINTS", []string{"1", "true", "TRUE"}},
		{"GUESSNUM_STRICT", []string{"1", "true"}},
		{"GUESSNUM_HIDE_TARGET", []string{"true"}},
		{"GUESSNUM_STATS", []string{"1"}},
	}

	for _, tt := range tests {
		for _, v := range tt.values {
			t.Run(tt.key+"="+v, func(t *testing.T) {
				t.Setenv(tt.key, v)
				cfg := New()
				if err := LoadFromEnv(cfg); err != nil {
					t.Fatal(err)
				}

				switch tt.key {
				case "GUESSNUM_HINTS":
					if !cfg.Hints {
						t.Error("Hints should be true")
					}
				case "GUESSNUM_STRICT":
					if !cfg.Strict {
						t.Error("Strict should be true")
					}
				case "GUESSNUM_HIDE_TARGET":
					if !cfg.HideTarget {
						t.Error("HideTarget should be true")
					}
				case "GUESSNUM_STATS":
					if !cfg.Stats {
						t.Error("Stats should be true")
					}
				}
			})
		}
	}
}

func TestLoadFromEnv_SeedAndVerbose(t *testing.T) {
	t.Setenv("GUESSNUM_SEED", "42")
	t.Setenv("GUESSNUM_VERBOSE", "2")
	cfg := New()
	if err := LoadFromEnv(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.Verbose != 2 {
		t.Errorf("Verbose = %d, want 2", cfg.Verbose)
	}
}

func TestLoadFromEnv_UnsetKeepsDefaults(t *testing.T) {
	cfg := New()
	if err := LoadFromEnv(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Low != DefaultLow || cfg.High != DefaultHigh {
		t.Errorf("range = [%d, %d], want defaults", cfg.Low, cfg.High)
	}
}

func TestLoadFromEnv_BadValue(t *testing.T) {
	t.Setenv("GUESSNUM_HIGH", "ten")
	if err := LoadFromEnv(New()); err == nil {
		t.Fatal("expected error for non-numeric GUESSNUM_HIGH")
	}
}
