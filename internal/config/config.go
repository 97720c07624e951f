package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Config holds all viewer settings, populated from environment variables.
type Config struct {
	DataPath string
	MapImage string

	ForecastYears int
	ScrollStep    int
	ScrollMax     int
	FPS           int

	// Seed fixes the forecaster's rng when nonzero, for reproducible runs.
	Seed int64

	LogLevel  string
	LogFormat string

	// MetricsAddr enables the debug Prometheus listener when set. Empty
	// (the default) keeps the viewer fully offline.
	MetricsAddr string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	forecastYears, err := envInt("FIREVIZ_FORECAST_YEARS", 10)
	if err != nil {
		return nil, err
	}
	scrollStep, err := envInt("FIREVIZ_SCROLL_STEP", 15)
	if err != nil {
		return nil, err
	}
	scrollMax, err := envInt("FIREVIZ_SCROLL_MAX", 600)
	if err != nil {
		return nil, err
	}
	fps, err := envInt("FIREVIZ_FPS", 30)
	if err != nil {
		return nil, err
	}
	seed, err := envInt64("FIREVIZ_SEED", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DataPath:      envOrDefault("FIREVIZ_DATA_PATH", "cali_fire_data.txt"),
		MapImage:      envOrDefault("FIREVIZ_MAP_IMAGE", "county_map.jpg"),
		ForecastYears: forecastYears,
		ScrollStep:    scrollStep,
		ScrollMax:     scrollMax,
		FPS:           fps,
		Seed:          seed,
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		LogFormat:     envOrDefault("LOG_FORMAT", "text"),
		MetricsAddr:   os.Getenv("FIREVIZ_METRICS_ADDR"),
	}

	if cfg.DataPath == "" {
		return nil, errors.New("FIREVIZ_DATA_PATH is required")
	}
	if cfg.ForecastYears <= 0 {
		return nil, errors.New("FIREVIZ_FORECAST_YEARS must be positive")
	}
	if cfg.ScrollStep <= 0 {
		return nil, errors.New("FIREVIZ_SCROLL_STEP must be positive")
	}
	if cfg.ScrollMax < 0 {
		return nil, errors.New("FIREVIZ_SCROLL_MAX must not be negative")
	}
	if cfg.FPS <= 0 || cfg.FPS > 240 {
		return nil, errors.New("FIREVIZ_FPS must be between 1 and 240")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return n, nil
}

func envInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return n, nil
}
