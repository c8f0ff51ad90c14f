package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dbpibus/dbpibus/internal/redis"
)

func roundTrip(t *testing.T, store SettingsStore) {
	t.Helper()
	ctx := t.Context()

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() on fresh store error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Load() on fresh store = %v, want empty", got)
	}

	first := map[string]string{"LcdColor": "NightWatch", "FutureThing": "x"}
	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	second := map[string]string{"LcdColor": "ZetaShift", "FutureThing": "x", "TimeFormat": "24Hour"}
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(second, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	roundTrip(t, NewMemoryStore(nil))
}

func TestFileStore(t *testing.T) {
	t.Parallel()
	roundTrip(t, NewFileStore(filepath.Join(t.TempDir(), "nested", "dbpibus.json")))
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "dbpibus.json"))
	if err := store.Save(t.Context(), map[string]string{"a": "b"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "dbpibus.json" {
		t.Errorf("dir has %v, want only dbpibus.json", entries)
	}
}

func TestFileStoreBadJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dbpibus.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(path).Load(t.Context()); err == nil {
		t.Error("Load() error = nil, want parse error")
	}
}

func TestSQLiteStore(t *testing.T) {
	t.Parallel()

	store, applied, err := OpenSQLite(t.Context(), filepath.Join(t.TempDir(), "dbpibus.db"))
	if err != nil && strings.Contains(err.Error(), "CGO_ENABLED=0") {
		t.Skip("sqlite needs cgo")
	}
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if diff := cmp.Diff([]string{"000001_settings.sql"}, applied); diff != "" {
		t.Errorf("applied mismatch (-want +got):\n%s", diff)
	}
	roundTrip(t, store)
}

func TestPostgresStore(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	store, _, err := OpenPostgres(t.Context(), url)
	if err != nil {
		t.Fatalf("OpenPostgres() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if _, err := store.pool.Exec(t.Context(), "DELETE FROM settings"); err != nil {
		t.Fatal(err)
	}
	roundTrip(t, store)
}

func TestRedisStore(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}

	client, err := redis.New(t.Context(), redis.Config{URL: url})
	if err != nil {
		t.Fatalf("redis.New() error = %v", err)
	}
	key := "dbpibus:test:" + t.Name()
	client.Del(context.Background(), key)

	store := NewRedisStore(client, key)
	t.Cleanup(func() {
		client.Del(context.Background(), key)
		_ = store.Close()
	})
	roundTrip(t, store)
}

func TestOpenUnknownBackend(t *testing.T) {
	t.Parallel()

	_, err := Open(t.Context(), Options{Backend: "floppy"})
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Open() error = %v, want ErrUnknownBackend", err)
	}
}

func TestOpenFileBackend(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "s.json")
	store, err := Open(t.Context(), Options{Backend: BackendFile, File: path})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	fs, ok := store.(*FileStore)
	if !ok {
		t.Fatalf("Open() = %T, want *FileStore", store)
	}
	if fs.Path() != path {
		t.Errorf("Path() = %q, want %q", fs.Path(), path)
	}
}
