package app

import (
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*Config)
		want string
	}{
		{"outline", func(c *Config) { c.OutlineColor = 256 }, "outline color"},
		{"clear", func(c *Config) { c.ClearColor = -1 }, "clear color"},
		{"step", func(c *Config) { c.StepsPerTurn = 0 }, "steps per turn"},
		{"stats", func(c *Config) { c.StatsEvery = -5 }, "stats interval"},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mod(&cfg)
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: err=%v, want %q", tc.name, err, tc.want)
		}
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("BITCUBE_STEPS_PER_TURN", "50")
	t.Setenv("BITCUBE_OUTLINES", "false")
	t.Setenv("BITCUBE_CLEAR_COLOR", "4")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.StepsPerTurn != 50 || cfg.Outlines || cfg.ClearColor != 4 {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.StatsEvery != DefaultConfig().StatsEvery {
		t.Fatalf("unset field changed: %+v", cfg)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	t.Setenv("BITCUBE_STEPS_PER_TURN", "-3")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error")
	}
}
