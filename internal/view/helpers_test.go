package view

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dbpibus/dbpibus/internal/clock"
	"github.com/dbpibus/dbpibus/internal/display"
	"github.com/dbpibus/dbpibus/internal/settings"
	"github.com/dbpibus/dbpibus/internal/storage"
	"github.com/dbpibus/dbpibus/internal/xslog"
)

var epoch = time.Date(2025, time.November, 15, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	Env
	sink  *display.Memory
	clock *clock.Manual
	store *storage.MemoryStore
	set   *settings.Settings
}

func newTestEnv(t *testing.T, initial map[string]string) *testEnv {
	t.Helper()

	store := storage.NewMemoryStore(initial)
	set, err := settings.Load(t.Context(), store)
	if err != nil {
		t.Fatalf("settings.Load() error = %v", err)
	}

	te := &testEnv{
		sink:  display.NewMemory(),
		clock: clock.NewManual(epoch),
		store: store,
		set:   set,
	}
	te.Env = Env{
		Sink:     te.sink,
		Clock:    te.clock,
		Settings: set,
		Location: time.UTC,
		Logger:   xslog.Discard(),
		Version:  "v0.7.0",
	}
	return te
}

func (te *testEnv) lines() (string, string) {
	return te.sink.Lines()
}

func press(b display.Buttons) display.Input {
	return display.Input{Held: b, Pressed: b}
}

var (
	back   = press(display.Buttons{Back: true})
	minus  = press(display.Buttons{Minus: true})
	plus   = press(display.Buttons{Plus: true})
	sel    = press(display.Buttons{Select: true})
	nobody = display.Input{}
)

type brokenStore struct{}

func (brokenStore) Load(context.Context) (map[string]string, error) { return nil, nil }

func (brokenStore) Save(context.Context, map[string]string) error {
	return errors.New("sd card pulled")
}

// slowStore holds every Save until release is closed.
type slowStore struct {
	release chan struct{}
}

func (slowStore) Load(context.Context) (map[string]string, error) { return nil, nil }

func (s *slowStore) Save(ctx context.Context, _ map[string]string) error {
	select {
	case <-s.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
