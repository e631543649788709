package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	APIPort string
	DBPath  string

	BackendURL    string
	BackendAPIKey string
	StorageBucket string

	// StaggerDelay is the pause between the first source of a batch and the rest.
	StaggerDelay time.Duration
	// MaxParallel caps concurrent per-source pipelines. 0 means unbounded.
	MaxParallel int

	AudioRefreshInterval time.Duration

	LogLevel  slog.Level
	LogFormat string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates required fields.
// If a .env file exists in the current directory or a parent directory, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ {
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	cfg := &Config{
		APIPort:       getEnv("API_PORT", "9000"),
		DBPath:        getEnv("DB_PATH", "./data/notebook-ai.db"),
		BackendURL:    strings.TrimRight(getEnv("BACKEND_URL", ""), "/"),
		BackendAPIKey: getEnv("BACKEND_API_KEY", ""),
		StorageBucket: getEnv("STORAGE_BUCKET", "sources"),
		LogFormat:     strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	if cfg.BackendURL == "" {
		return nil, fmt.Errorf("BACKEND_URL is required")
	}

	cfg.StaggerDelay, err = getDuration("INGEST_STAGGER_DELAY", 150*time.Millisecond)
	if err != nil {
		return nil, err
	}
	if cfg.StaggerDelay < 0 {
		return nil, fmt.Errorf("INGEST_STAGGER_DELAY must not be negative")
	}

	maxParallel, err := strconv.Atoi(getEnv("INGEST_MAX_PARALLEL", "0"))
	if err != nil {
		return nil, fmt.Errorf("INGEST_MAX_PARALLEL must be a valid integer: %w", err)
	}
	if maxParallel < 0 {
		return nil, fmt.Errorf("INGEST_MAX_PARALLEL must not be negative")
	}
	cfg.MaxParallel = maxParallel

	cfg.AudioRefreshInterval, err = getDuration("AUDIO_REFRESH_INTERVAL", 5*time.Minute)
	if err != nil {
		return nil, err
	}
	if cfg.AudioRefreshInterval <= 0 {
		return nil, fmt.Errorf("AUDIO_REFRESH_INTERVAL must be greater than 0")
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid duration: %w", key, err)
	}
	return d, nil
}
