package main

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process configuration, read from the environment.
type Config struct {
	APIKey       string `env:"API_KEY"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	StateDir     string `env:"AETHEL_STATE_DIR"`
	LogFile      string `env:"AETHEL_LOG_FILE"`
	SentryDSN    string `env:"SENTRY_DSN"`
	Environment  string     `env:"AETHEL_ENV" envDefault:"development"`
	LogLevel     slog.Level `env:"AETHEL_LOG_LEVEL" envDefault:"INFO"`
}

// mergeDotEnv adds the variables of the .env file at path to environ.
// Variables already set in environ win. When the file cannot be read,
// environ is returned unchanged together with the error.
func mergeDotEnv(environ map[string]string, path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return environ, fmt.Errorf("read %s: %w", path, err)
	}
	merged := make(map[string]string, len(environ)+len(values))
	maps.Copy(merged, values)
	maps.Copy(merged, environ)
	return merged, nil
}

// loadConfig parses environ and fills in defaults relative to home.
// API_KEY wins over GEMINI_API_KEY; one of them is required.
func loadConfig(environ map[string]string, home string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.APIKey == "" {
		cfg.APIKey = cfg.GeminiAPIKey
	}
	if cfg.APIKey == "" {
		return Config{}, errors.New("no API key found: set API_KEY or GEMINI_API_KEY")
	}
	if cfg.StateDir == "" {
		cfg.StateDir = filepath.Join(home, ".aethel")
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.StateDir, "aethel.log")
	}
	return cfg, nil
}

// PreferencesPath is where theme and settings are persisted.
func (c Config) PreferencesPath() string {
	return filepath.Join(c.StateDir, "preferences.json")
}

// OutputDir receives generated images and audio.
func (c Config) OutputDir() string {
	return filepath.Join(c.StateDir, "output")
}
