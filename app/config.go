package app

import (
	"errors"
	"fmt"

	"fortio.org/struct2env"
)

// EnvPrefix prefixes the environment variables read by LoadConfig,
// e.g. BITCUBE_STEPS_PER_TURN.
const EnvPrefix = "BITCUBE_"

type Config struct {
	// Outlines redraws the edges of every visible triangle in OutlineColor.
	Outlines     bool
	OutlineColor int
	ClearColor   int

	// StepsPerTurn is how many frames a held button needs for one full turn.
	StepsPerTurn int

	HUD bool

	// StatsEvery logs a stats line every N frames; 0 disables it.
	StatsEvery int
}

func DefaultConfig() Config {
	return Config{
		Outlines:     true,
		OutlineColor: 0,
		ClearColor:   0,
		StepsPerTurn: 100,
		StatsEvery:   300,
	}
}

// LoadConfig returns DefaultConfig overridden by BITCUBE_* environment
// variables.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if errs := struct2env.SetFromEnv(EnvPrefix, &cfg); len(errs) > 0 {
		return cfg, fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.OutlineColor < 0 || c.OutlineColor > 255 {
		return fmt.Errorf("config: outline color %d out of range", c.OutlineColor)
	}
	if c.ClearColor < 0 || c.ClearColor > 255 {
		return fmt.Errorf("config: clear color %d out of range", c.ClearColor)
	}
	if c.StepsPerTurn <= 0 {
		return fmt.Errorf("config: steps per turn must be positive, got %d", c.StepsPerTurn)
	}
	if c.StatsEvery < 0 {
		return fmt.Errorf("config: negative stats interval %d", c.StatsEvery)
	}
	return nil
}
