package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Syug0/LOL-team-assignment/internal/constants"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	RiotAPIKey   string
	RiotPlatform string // platform routing, e.g. jp1
	RiotRegion   string // regional routing, e.g. asia
	ServerPort   string
	LogLevel     string
	CacheTTL     time.Duration
	CacheSize    int
	MinInterval  time.Duration
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cacheTTL, err := getDuration("CACHE_TTL", constants.RiotCacheTTL)
	if err != nil {
		return nil, err
	}
	minInterval, err := getDuration("RIOT_MIN_INTERVAL", constants.RiotMinInterval)
	if err != nil {
		return nil, err
	}
	cacheSize, err := getInt("CACHE_SIZE", constants.RiotCacheSize)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		RiotAPIKey:   getEnv("RIOT_API_KEY", ""),
		RiotPlatform: getEnv("RIOT_PLATFORM", constants.DefaultPlatform),
		RiotRegion:   getEnv("RIOT_REGION", constants.DefaultRegion),
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		CacheTTL:     cacheTTL,
		CacheSize:    cacheSize,
		MinInterval:  minInterval,
	}

	if cfg.RiotAPIKey == "" {
		return nil, fmt.Errorf("RIOT_API_KEY is required")
	}

	logger.Info().
		Str("riot_platform", cfg.RiotPlatform).
		Str("riot_region", cfg.RiotRegion).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Dur("cache_ttl", cfg.CacheTTL).
		Int("cache_size", cfg.CacheSize).
		Dur("min_interval", cfg.MinInterval).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%s must be a non-negative duration, got %q", key, v)
	}
	return d, nil
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}

var Module = fx.Provide(Load)
