package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("REDIS_URL", "")
	t.Setenv("SERVER_PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:3001", cfg.Address())
	assert.False(t, cfg.CacheEnabled())
	assert.True(t, cfg.Catalog.Seed)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("SEED_CATALOG", "false")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "7")
	t.Setenv("METADATA_WARM_INTERVAL", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://pricing.example.com ,")
	t.Setenv("SERVER_ENABLE_PPROF", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.True(t, cfg.CacheEnabled())
	assert.False(t, cfg.Catalog.Seed)
	assert.Equal(t, 7*time.Second, cfg.Context.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.Cache.WarmInterval)
	assert.Equal(t, []string{"http://localhost:3000", "https://pricing.example.com"}, cfg.HTTP.AllowedOrigins)
	assert.True(t, cfg.HTTP.EnablePprof)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("REDIS_DB", "two")
	t.Setenv("SERVER_ENABLE_METRICS", "maybe")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.True(t, cfg.HTTP.EnableMetrics)
}

func TestLoad_RejectsSubSecondWarmInterval(t *testing.T) {
	t.Setenv("METADATA_WARM_INTERVAL", "500ms")

	_, err := Load()
	assert.Error(t, err)
}
