// Command aethel is a terminal suite of AI personas backed by Gemini.
//
// Usage:
//
//	API_KEY=... aethel
//
// Environment (a .env file in the working directory is loaded first):
//
//	API_KEY           Gemini API key (GEMINI_API_KEY is accepted too)
//	AETHEL_STATE_DIR  Preferences, logs and generated media (default: ~/.aethel)
//	AETHEL_LOG_FILE   Log file (default: $AETHEL_STATE_DIR/aethel.log)
//	SENTRY_DSN        Report generation failures to Sentry when set
//	AETHEL_ENV        Environment reported to Sentry (default: development)
//	AETHEL_LOG_LEVEL  DEBUG, INFO, WARN or ERROR (default: INFO)
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/fwojciec/aethel"
	bt "github.com/fwojciec/aethel/bubbletea"
	"github.com/fwojciec/aethel/gemini"
	aetheljson "github.com/fwojciec/aethel/json"
	"github.com/fwojciec/aethel/sentry"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const sentryFlushTimeout = 2 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "aethel: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Env vars are read here and passed down as values. A missing .env
	// file is not an error; it is logged once the logger is open.
	environ, dotEnvErr := mergeDotEnv(env.ToMap(os.Environ()), ".env")
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	cfg, err := loadConfig(environ, home)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()
	if dotEnvErr != nil {
		logger.Debug("no .env file loaded", "error", dotEnvErr)
	}

	reporter, flush, err := newReporter(cfg)
	if err != nil {
		return err
	}
	defer flush()

	client, err := gemini.New(ctx, cfg.APIKey,
		gemini.WithLogger(logger),
		gemini.WithReporter(reporter),
	)
	if err != nil {
		return err
	}

	store := aetheljson.NewPreferenceStore(cfg.PreferencesPath())
	prefs, err := store.Load()
	if err != nil {
		logger.Warn("load preferences, using defaults", "path", store.Path(), "error", err)
		prefs = aethel.DefaultPreferences()
	}

	tuiModel := bt.New(bt.Config{
		Catalog:   aethel.DefaultCatalog(),
		Registry:  aethel.NewRegistry(client, aethel.WithLogger(logger)),
		Generator: client,
		Store:     store,
		OutputDir: cfg.OutputDir(),
		Logger:    logger,
	}, prefs)

	logger.Info("starting", "version", version, "environment", cfg.Environment, "state_dir", cfg.StateDir)
	if err := bt.Run(ctx, tuiModel); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}

// openLogger appends text-formatted logs at level and above to path. The
// terminal belongs to the TUI, so nothing is logged to stderr.
func openLogger(path string, level slog.Level) (*slog.Logger, func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f.Close, nil
}

// newReporter returns a Sentry reporter when a DSN is configured and a
// no-op reporter otherwise. The returned func flushes pending events.
func newReporter(cfg Config) (aethel.Reporter, func(), error) {
	if cfg.SentryDSN == "" {
		return aethel.NopReporter{}, func() {}, nil
	}
	r, err := sentry.New(cfg.SentryDSN, cfg.Environment, sentry.WithRelease("aethel@"+version))
	if err != nil {
		return nil, nil, err
	}
	return r, func() { r.Flush(sentryFlushTimeout) }, nil
}
