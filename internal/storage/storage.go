// Package storage persists the operator settings map. Every backend stores the
// same thing: a flat key/value map that is read once at startup and written
// whole on every change.
package storage

import (
	"context"
	"errors"
)

var ErrUnknownBackend = errors.New("unknown settings backend")

type SettingsStore interface {
	// Load returns everything stored. A store that has never been written
	// returns an empty map, not an error.
	Load(ctx context.Context) (map[string]string, error)

	// Save replaces the stored map with values.
	Save(ctx context.Context, values map[string]string) error

	Close() error
}

type Backend string

const (
	BackendFile     Backend = "file"
	BackendMemory   Backend = "memory"
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
	BackendRedis    Backend = "redis"
)
