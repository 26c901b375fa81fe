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

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultAddr               = ":8080"
	DefaultLogFormat          = "text"
	DefaultLogLevel           = "info"
	DefaultRateLimitPerMinute = 120
	DefaultRateLimitBurst     = 30
	DefaultShutdownTimeout    = 10 * time.Second
	DefaultExportDir          = "dist"
)

// Config holds all configuration for the application.
type Config struct {
	Addr               string        `validate:"required"`
	LogFormat          string        `validate:"oneof=text json"`
	LogLevel           string        `validate:"oneof=debug info warn error"`
	RateLimitPerMinute int           `validate:"min=0"`
	RateLimitBurst     int           `validate:"min=1"`
	ShutdownTimeout    time.Duration `validate:"gt=0"`
	ExportDir          string        `validate:"required"`
}

var validate = validator.New()

// Load reads configuration from the environment, after loading a .env file if
// one exists in the working directory.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// slog may not be configured yet; the default handler is fine here.
		slog.Debug("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds and validates a Config from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Addr:      getEnv("APP_ADDR", DefaultAddr),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		ExportDir: getEnv("EXPORT_DIR", DefaultExportDir),
	}

	var err error
	if cfg.RateLimitPerMinute, err = getEnvInt("RATE_LIMIT_PER_MINUTE", DefaultRateLimitPerMinute); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", DefaultRateLimitBurst); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getEnvDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout); err != nil {
		return nil, err
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}
