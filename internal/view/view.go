// Package view holds everything that can own the LCD: the idle stats pages,
// one-shot animations, the service credit easter egg, and the service menu.
package view

import (
	"log/slog"
	"math"
	"time"

	"github.com/dbpibus/dbpibus/internal/clock"
	"github.com/dbpibus/dbpibus/internal/display"
	"github.com/dbpibus/dbpibus/internal/settings"
	"github.com/dbpibus/dbpibus/internal/stats"
	"github.com/dbpibus/dbpibus/internal/xslog"
)

// View is one thing that wants the display. Lower priorities win.
type View interface {
	Priority() int
	Name() string

	// HandleButtons is only called on the view that currently owns the
	// display. handled reports whether the view claimed the input; next, if
	// not nil, is a view it wants pushed on top of itself.
	HandleButtons(s *stats.Snapshot, in display.Input) (next View, handled bool)

	// NextFrame draws the view and reports whether it is finished.
	NextFrame(s *stats.Snapshot) (done bool)
}

const (
	PriorityTest       = -1
	PriorityMenu       = 0
	PriorityTransition = 5
	PriorityCredit     = 5
	PriorityIdle       = math.MaxInt
)

// ServiceDotAfter is how old stats get before the donation line grows a
// trailing dot.
const ServiceDotAfter = 2 * time.Minute

// Env is what views need from the outside world.
type Env struct {
	Sink     display.Sink
	Clock    clock.Clock
	Settings settings.ReadWriter
	Location *time.Location
	Logger   *slog.Logger
	// Version is shown on the service menu splash.
	Version string
}

func (e Env) now() time.Time {
	if e.Clock == nil {
		return time.Now()
	}
	return e.Clock.Now()
}

func (e Env) logger() *slog.Logger {
	if e.Logger == nil {
		return xslog.Discard()
	}
	return e.Logger
}

func (e Env) location() *time.Location {
	if e.Location == nil {
		return time.Local
	}
	return e.Location
}

func (e Env) setting(key settings.Key) string {
	if e.Settings == nil {
		return settings.Static{}.Get(key)
	}
	return e.Settings.Get(key)
}

// needsServiceDot is true when the data is too old to trust, or missing.
func needsServiceDot(s *stats.Snapshot, now time.Time) bool {
	return s == nil || s.Stale(now, ServiceDotAfter)
}
