package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestReadDefaults(t *testing.T) {
	cfg, err := Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	want := Stats{
		BaseURL:      DefaultStatsBaseURL,
		PollInterval: 30 * time.Second,
		FetchTimeout: 20 * time.Second,
		StaleAfter:   3 * time.Minute,
	}
	if diff := cmp.Diff(want, cfg.Stats); diff != "" {
		t.Errorf("Stats mismatch (-want +got):\n%s", diff)
	}
	if cfg.Loop.TickInterval != 35*time.Millisecond {
		t.Errorf("TickInterval = %v, want 35ms", cfg.Loop.TickInterval)
	}
	if cfg.Settings.Backend != "file" {
		t.Errorf("Settings.Backend = %q, want file", cfg.Settings.Backend)
	}
	if cfg.Pins.Select != "GPIO16" {
		t.Errorf("Pins.Select = %q, want GPIO16", cfg.Pins.Select)
	}
}

func TestReadOverrides(t *testing.T) {
	t.Setenv("STATS_POLL_INTERVAL", "10s")
	t.Setenv("SETTINGS_BACKEND", "sqlite")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("STATUS_ADDR", "127.0.0.1:8080")

	cfg, err := Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if cfg.Stats.PollInterval != 10*time.Second {
		t.Errorf("PollInterval = %v, want 10s", cfg.Stats.PollInterval)
	}
	if cfg.Settings.Backend != "sqlite" {
		t.Errorf("Settings.Backend = %q, want sqlite", cfg.Settings.Backend)
	}
	if cfg.Status.Addr != "127.0.0.1:8080" || cfg.Status.ShutdownTimeout != 5*time.Second {
		t.Errorf("Status = %+v", cfg.Status)
	}
	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("Location() error = %v", err)
	}
	if loc != time.UTC {
		t.Errorf("Location() = %v, want UTC", loc)
	}
}
