// Package config loads runtime settings for the two binaries from
// environment variables and an optional config file.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/dondlab/dond-go/internal/game"
)

// Config holds everything either binary needs.
type Config struct {
	// Games is the number of simulated games per batch.
	Games int
	// Workers sets the simulator's worker count; 1 reproduces the
	// reference sequential behavior.
	Workers int
	// Seed is the base random seed; 0 means seed from the clock.
	Seed int64
	// Edition selects the prize catalog: "uk22" or "classic26".
	Edition string
	// TargetAmount is the TargetBased agent's deal threshold.
	TargetAmount float64
	// ScriptPath optionally points at a JavaScript strategy file.
	ScriptPath string
}

// Load reads configuration from dond.yaml (if present, in . or ./config)
// and DOND_* environment variables, falling back to defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("dond")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvPrefix("dond")
	v.AutomaticEnv()

	v.SetDefault("games", 100000)
	v.SetDefault("workers", 1)
	v.SetDefault("seed", 0)
	v.SetDefault("edition", "uk22")
	v.SetDefault("target_amount", 100000)
	v.SetDefault("script_path", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{
		Games:        v.GetInt("games"),
		Workers:      v.GetInt("workers"),
		Seed:         v.GetInt64("seed"),
		Edition:      v.GetString("edition"),
		TargetAmount: v.GetFloat64("target_amount"),
		ScriptPath:   v.GetString("script_path"),
	}

	if _, ok := game.Editions[cfg.Edition]; !ok {
		return nil, fmt.Errorf("unknown edition %q", cfg.Edition)
	}
	if cfg.Games < 1 {
		return nil, fmt.Errorf("games must be >= 1, got %d", cfg.Games)
	}
	return cfg, nil
}

// Prizes returns the configured edition's prize catalog.
func (c *Config) Prizes() game.PrizeSet {
	return game.Editions[c.Edition]
}
