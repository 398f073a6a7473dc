package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

// Range holds one generator's parameters: values are drawn from
// [Base, Base+Delta).
type Range struct {
	Base  int
	Delta int `validate:"gte=1"`
}

// Config holds everything the process needs, read from the environment.
type Config struct {
	Temperature Range
	Humidity    Range
	Pressure    Range

	// HistoryLength is the statistics view window capacity.
	HistoryLength int `validate:"gte=1"`

	// RefreshCount is the number of refresh cycles in one-shot mode.
	RefreshCount int `validate:"gte=1"`

	// RefreshInterval switches to interval mode when positive: the station
	// refreshes on this period until the process is signalled.
	RefreshInterval time.Duration `validate:"gte=0"`

	LogLevel slog.Level
	AppEnv   string
}

// Load reads configuration from the environment with defaults matching the
// simulated station: temperature 10±[0,10), humidity 40±[0,60), pressure
// 700±[0,90). A .env file is honored when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg := &Config{
		Temperature: Range{
			Base:  getenvInt("TEMP_BASE", 10),
			Delta: getenvInt("TEMP_DELTA", 10),
		},
		Humidity: Range{
			Base:  getenvInt("HUMIDITY_BASE", 40),
			Delta: getenvInt("HUMIDITY_DELTA", 60),
		},
		Pressure: Range{
			Base:  getenvInt("PRESSURE_BASE", 700),
			Delta: getenvInt("PRESSURE_DELTA", 90),
		},
		HistoryLength: getenvInt("HISTORY_LENGTH", 10),
		RefreshCount:  getenvInt("REFRESH_COUNT", 10),
		AppEnv:        getenvDefault("APP_ENV", "dev"),
	}

	intervalStr := getenvDefault("REFRESH_INTERVAL", "0s")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = interval

	level, err := parseLogLevel(getenvDefault("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL: %q", s)
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
