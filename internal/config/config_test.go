package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv removes the config variables for one test so host exports
// cannot leak into default assertions. t.Setenv registers the restore.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"ENV", "LOG_LEVEL", "MIN_MINUTES", "WORKERS", "MIN_GAMES", "CACHE_TTL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 200.0, cfg.MinMinutes)
	assert.Equal(t, 0, cfg.Workers)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("MIN_MINUTES", "500")
	t.Setenv("WORKERS", "8")
	t.Setenv("CACHE_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 500.0, cfg.MinMinutes)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 30*time.Minute, cfg.CacheTTL)
}

func TestLoad_RejectsNegativeThresholds(t *testing.T) {
	clearEnv(t)
	t.Setenv("MIN_MINUTES", "-1")
	_, err := Load()
	assert.Error(t, err)
}
