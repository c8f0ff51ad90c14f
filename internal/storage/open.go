package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dbpibus/dbpibus/internal/paths"
	"github.com/dbpibus/dbpibus/internal/redis"
	"github.com/dbpibus/dbpibus/internal/xslog"
)

type Options struct {
	Backend     Backend
	File        string
	SQLitePath  string
	DatabaseURL string
	RedisURL    string
	RedisKey    string
	Logger      *slog.Logger
}

// Open builds the settings store named by opts.Backend.
func Open(ctx context.Context, opts Options) (SettingsStore, error) {
	logger := opts.Logger
	if logger == nil {
		logger = xslog.Discard()
	}

	switch opts.Backend {
	case BackendFile, "":
		path := opts.File
		if path == "" {
			p, err := paths.Settings()
			if err != nil {
				return nil, err
			}
			path = p
		}
		logger.DebugContext(ctx, "using settings file", xslog.Path(path))
		return NewFileStore(path), nil

	case BackendMemory:
		return NewMemoryStore(nil), nil

	case BackendSQLite:
		path := opts.SQLitePath
		if path == "" {
			if _, err := paths.EnsureDir(); err != nil {
				return nil, err
			}
			p, err := paths.DB()
			if err != nil {
				return nil, err
			}
			path = p
		}
		store, applied, err := OpenSQLite(ctx, path)
		if err != nil {
			return nil, err
		}
		logMigrations(ctx, logger, applied)
		return store, nil

	case BackendPostgres:
		if opts.DatabaseURL == "" {
			return nil, fmt.Errorf("postgres settings backend needs DATABASE_URL")
		}
		store, applied, err := OpenPostgres(ctx, opts.DatabaseURL)
		if err != nil {
			return nil, err
		}
		logMigrations(ctx, logger, applied)
		return store, nil

	case BackendRedis:
		client, err := redis.New(ctx, redis.Config{URL: opts.RedisURL, ClientName: "dbpibus"})
		if err != nil {
			return nil, err
		}
		return NewRedisStore(client, opts.RedisKey), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}

func logMigrations(ctx context.Context, logger *slog.Logger, applied []string) {
	for _, name := range applied {
		logger.InfoContext(ctx, "applied migration", slog.String("name", name))
	}
}
