package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config carries everything the surrounding application wires into the
// engine. The core itself only ever sees MinMinutes and Workers.
type Config struct {
	Env        string
	LogLevel   string
	MinMinutes float64
	Workers    int
	MinGames   int
	CacheTTL   time.Duration
}

// Load reads configuration from the environment with sensible defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("MIN_MINUTES", 200.0)
	v.SetDefault("WORKERS", 0)
	v.SetDefault("MIN_GAMES", 0)
	v.SetDefault("CACHE_TTL", time.Hour)

	v.AutomaticEnv()

	cfg := &Config{
		Env:        v.GetString("ENV"),
		LogLevel:   v.GetString("LOG_LEVEL"),
		MinMinutes: v.GetFloat64("MIN_MINUTES"),
		Workers:    v.GetInt("WORKERS"),
		MinGames:   v.GetInt("MIN_GAMES"),
		CacheTTL:   v.GetDuration("CACHE_TTL"),
	}

	if cfg.MinMinutes < 0 {
		return nil, fmt.Errorf("MIN_MINUTES must not be negative, got %v", cfg.MinMinutes)
	}
	if cfg.MinGames < 0 {
		return nil, fmt.Errorf("MIN_GAMES must not be negative, got %v", cfg.MinGames)
	}

	return cfg, nil
}

// IsDevelopment reports whether the process runs with development
// defaults (verbose text logs).
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
