package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/samdwyer/doom/internal/config"
	"github.com/samdwyer/doom/internal/telemetry"
)

// loadConfig layers .env, the config file, DOOM_* variables and the global
// flags, in that order.
func loadConfig() (config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return config.Config{}, err
	}
	if flagDBPath != "" {
		cfg.ScoreDB = flagDBPath
	}
	return cfg, nil
}

// openLog sends the logger to the configured file; the terminal belongs to
// the game while it runs.
func openLog(cfg config.Config) (*log.Logger, func(), error) {
	path, err := config.ExpandPath(cfg.LogFile)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "doom",
	})
	logger.SetLevel(cfg.Level())
	return logger, func() { f.Close() }, nil
}

// startTelemetry exports traces when enabled. Failure is logged and play
// continues without observability.
func startTelemetry(ctx context.Context, cfg config.Config, logger *log.Logger) func() {
	if !cfg.Telemetry {
		return func() {}
	}
	if !telemetry.ConfigureHoneycomb() {
		logger.Warn("telemetry enabled but no API key set", "env", telemetry.EnvAPIKey)
	}

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn("telemetry setup failed", "err", err)
		return func() {}
	}
	return func() {
		if err := shutdown(ctx); err != nil {
			logger.Error("telemetry shutdown", "err", err)
		}
	}
}
