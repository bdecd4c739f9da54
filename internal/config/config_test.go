package config

import (
	"testing"
	"time"

	"github.com/Syug0/LOL-team-assignment/internal/constants"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"RIOT_API_KEY", "RIOT_PLATFORM", "RIOT_REGION", "SERVER_PORT",
		"LOG_LEVEL", "CACHE_TTL", "CACHE_SIZE", "RIOT_MIN_INTERVAL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("RIOT_API_KEY", "RGAPI-test")

	cfg, err := Load(zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "RGAPI-test", cfg.RiotAPIKey)
	assert.Equal(t, constants.DefaultPlatform, cfg.RiotPlatform)
	assert.Equal(t, constants.DefaultRegion, cfg.RiotRegion)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, 1024, cfg.CacheSize)
	assert.Equal(t, 1200*time.Millisecond, cfg.MinInterval)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("RIOT_API_KEY", "RGAPI-test")
	t.Setenv("RIOT_PLATFORM", "kr")
	t.Setenv("CACHE_TTL", "15m")
	t.Setenv("CACHE_SIZE", "10")
	t.Setenv("RIOT_MIN_INTERVAL", "0s")

	cfg, err := Load(zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "kr", cfg.RiotPlatform)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 10, cfg.CacheSize)
	assert.Zero(t, cfg.MinInterval)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing api key", map[string]string{}},
		{"bad ttl", map[string]string{"RIOT_API_KEY": "k", "CACHE_TTL": "soon"}},
		{"negative interval", map[string]string{"RIOT_API_KEY": "k", "RIOT_MIN_INTERVAL": "-1s"}},
		{"zero cache size", map[string]string{"RIOT_API_KEY": "k", "CACHE_SIZE": "0"}},
		{"non-numeric cache size", map[string]string{"RIOT_API_KEY": "k", "CACHE_SIZE": "lots"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(zerolog.Nop())
			assert.Error(t, err)
		})
	}
}
