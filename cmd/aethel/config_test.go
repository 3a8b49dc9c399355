package main

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/aethel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults derive from home", func(t *testing.T) {
		t.Parallel()
		cfg, err := loadConfig(map[string]string{"API_KEY": "k"}, "/home/ada")
		require.NoError(t, err)
		assert.Equal(t, "k", cfg.APIKey)
		assert.Equal(t, filepath.Join("/home/ada", ".aethel"), cfg.StateDir)
		assert.Equal(t, filepath.Join("/home/ada", ".aethel", "aethel.log"), cfg.LogFile)
		assert.Equal(t, filepath.Join("/home/ada", ".aethel", "preferences.json"), cfg.PreferencesPath())
		assert.Equal(t, filepath.Join("/home/ada", ".aethel", "output"), cfg.OutputDir())
		assert.Equal(t, "development", cfg.Environment)
		assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
		assert.Empty(t, cfg.SentryDSN)
	})

	t.Run("gemini key is accepted", func(t *testing.T) {
		t.Parallel()
		cfg, err := loadConfig(map[string]string{"GEMINI_API_KEY": "g"}, "/home/ada")
		require.NoError(t, err)
		assert.Equal(t, "g", cfg.APIKey)
	})

	t.Run("API_KEY wins over GEMINI_API_KEY", func(t *testing.T) {
		t.Parallel()
		cfg, err := loadConfig(map[string]string{"API_KEY": "a", "GEMINI_API_KEY": "g"}, "/home/ada")
		require.NoError(t, err)
		assert.Equal(t, "a", cfg.APIKey)
	})

	t.Run("missing key fails", func(t *testing.T) {
		t.Parallel()
		_, err := loadConfig(map[string]string{}, "/home/ada")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no API key found")
	})

	t.Run("explicit paths and environment", func(t *testing.T) {
		t.Parallel()
		cfg, err := loadConfig(map[string]string{
			"API_KEY":          "k",
			"AETHEL_STATE_DIR": "/var/lib/aethel",
			"AETHEL_LOG_FILE":  "/var/log/aethel.log",
			"SENTRY_DSN":       "https://key@o0.ingest.sentry.io/1",
			"AETHEL_ENV":       "production",
			"AETHEL_LOG_LEVEL": "debug",
		}, "/home/ada")
		require.NoError(t, err)
		assert.Equal(t, "/var/lib/aethel", cfg.StateDir)
		assert.Equal(t, "/var/log/aethel.log", cfg.LogFile)
		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, "https://key@o0.ingest.sentry.io/1", cfg.SentryDSN)
		assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	})

	t.Run("invalid log level fails", func(t *testing.T) {
		t.Parallel()
		_, err := loadConfig(map[string]string{"API_KEY": "k", "AETHEL_LOG_LEVEL": "loud"}, "/home/ada")
		assert.Error(t, err)
	})
}

func TestNewReporter(t *testing.T) {
	t.Parallel()

	t.Run("no dsn gives a no-op reporter", func(t *testing.T) {
		t.Parallel()
		r, flush, err := newReporter(Config{})
		require.NoError(t, err)
		assert.Equal(t, aethel.NopReporter{}, r)
		assert.NotPanics(t, flush)
	})

	t.Run("invalid dsn fails", func(t *testing.T) {
		t.Parallel()
		_, _, err := newReporter(Config{SentryDSN: "not a dsn"})
		assert.Error(t, err)
	})
}

func TestOpenLogger(t *testing.T) {
	t.Parallel()

	t.Run("creates the log file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "logs", "aethel.log")
		logger, closeLog, err := openLogger(path, slog.LevelInfo)
		require.NoError(t, err)
		logger.Info("hello", "feature_id", "oracle")
		require.NoError(t, closeLog())
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "feature_id=oracle")
	})

	t.Run("drops records below level", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "aethel.log")
		logger, closeLog, err := openLogger(path, slog.LevelInfo)
		require.NoError(t, err)
		logger.Debug("no .env file loaded")
		logger.Info("starting")
		require.NoError(t, closeLog())
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "no .env file loaded")
		assert.Contains(t, string(data), "starting")
	})
}

func TestMergeDotEnv(t *testing.T) {
	t.Parallel()

	t.Run("adds file values without overriding environ", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("API_KEY=from-file\nAETHEL_ENV=staging\n"), 0o600))

		got, err := mergeDotEnv(map[string]string{"API_KEY": "from-env"}, path)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"API_KEY": "from-env", "AETHEL_ENV": "staging"}, got)
	})

	t.Run("missing file returns environ and the error", func(t *testing.T) {
		t.Parallel()
		environ := map[string]string{"API_KEY": "k"}
		got, err := mergeDotEnv(environ, filepath.Join(t.TempDir(), ".env"))
		require.ErrorIs(t, err, fs.ErrNotExist)
		assert.Equal(t, environ, got)
	})
}
