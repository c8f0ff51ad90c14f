package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dbpibus/dbpibus/internal/client/vst"
	"github.com/dbpibus/dbpibus/internal/config"
	"github.com/dbpibus/dbpibus/internal/paths"
	"github.com/dbpibus/dbpibus/internal/settings"
	"github.com/dbpibus/dbpibus/internal/storage"
	"github.com/dbpibus/dbpibus/internal/xslog"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger logs JSON to stderr, or to a rotated file when LOG_FILE is set.
// toFile forces the file even without LOG_FILE, for commands that own the
// terminal.
func newLogger(cfg config.Config, toFile bool) (*slog.Logger, io.Closer, error) {
	path := cfg.LogFile
	if path == "" && toFile {
		if _, err := paths.EnsureDir(); err != nil {
			return nil, nil, err
		}
		p, err := paths.Log()
		if err != nil {
			return nil, nil, err
		}
		path = p
	}
	if path == "" {
		return xslog.NewLoggerFromEnv(os.Stderr), nopCloser{}, nil
	}
	logger, closer := xslog.NewFileLogger(path, xslog.FromEnv())
	return logger, closer, nil
}

func storageOptions(cfg config.Config, logger *slog.Logger) storage.Options {
	return storage.Options{
		Backend:     storage.Backend(cfg.Settings.Backend),
		File:        cfg.Settings.File,
		SQLitePath:  cfg.Settings.SQLitePath,
		DatabaseURL: cfg.Database.URL,
		RedisURL:    cfg.Redis.URL,
		RedisKey:    cfg.Redis.Key,
		Logger:      logger,
	}
}

// openSettings loads the operator settings. A store that opens but cannot be
// read still yields defaults; the failure is logged and the device runs on.
func openSettings(ctx context.Context, cfg config.Config, logger *slog.Logger) (*settings.Settings, storage.SettingsStore, error) {
	store, err := storage.Open(ctx, storageOptions(cfg, logger))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open settings store: %w", err)
	}

	s, err := settings.Load(ctx, store)
	if err != nil {
		logger.WarnContext(ctx, "using default settings", xslog.Error(err))
	}
	return s, store, nil
}

func newStatsClient(cfg config.Config, logger *slog.Logger) *vst.Client {
	return vst.New(
		vst.WithBaseURL(cfg.Stats.BaseURL),
		vst.WithTimeout(cfg.Stats.FetchTimeout),
		vst.WithLogger(logger),
	)
}
