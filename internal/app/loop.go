// Package app is the per-tick glue between the stats poller, the buttons,
// the shift and event rules, and the view scheduler.
package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dbpibus/dbpibus/internal/clock"
	"github.com/dbpibus/dbpibus/internal/display"
	"github.com/dbpibus/dbpibus/internal/scheduler"
	"github.com/dbpibus/dbpibus/internal/settings"
	"github.com/dbpibus/dbpibus/internal/shift"
	"github.com/dbpibus/dbpibus/internal/stats"
	"github.com/dbpibus/dbpibus/internal/view"
	"github.com/dbpibus/dbpibus/internal/xslog"
	"github.com/dbpibus/dbpibus/internal/xsync"
)

const (
	DefaultTickInterval = 35 * time.Millisecond
	DefaultStaleAfter   = 3 * time.Minute
)

// Loop is driven by exactly one goroutine calling Tick. Status is the only
// method safe to call from elsewhere.
type Loop struct {
	env        view.Env
	sched      *scheduler.Scheduler
	provider   xsync.Provider
	buttons    display.ButtonSource
	mirror     *display.Memory
	staleAfter time.Duration
	logger     *slog.Logger

	shift    shift.Shift
	color    display.Color
	colorSet bool
	prev     *stats.Snapshot
	alive    bool

	mu     sync.RWMutex
	status Status
}

type Option func(*Loop)

// WithStaleAfter is how long the poller may go without trying a fetch before
// it is reported lost.
func WithStaleAfter(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.staleAfter = d
		}
	}
}

// New wires a loop. The starting shift comes from the clock alone and plays
// no transition; Omega, if on, arrives with the first snapshot.
func New(env view.Env, provider xsync.Provider, buttons display.ButtonSource, opts ...Option) *Loop {
	if env.Clock == nil {
		env.Clock = clock.Real{}
	}
	if env.Location == nil {
		env.Location = time.Local
	}
	if env.Logger == nil {
		env.Logger = xslog.Discard()
	}

	mirror := display.NewMemory()
	env.Sink = display.Multi(env.Sink, mirror)

	l := &Loop{
		env:        env,
		provider:   provider,
		buttons:    buttons,
		mirror:     mirror,
		staleAfter: DefaultStaleAfter,
		logger:     env.Logger,
		alive:      true,
	}
	for _, opt := range opts {
		opt(l)
	}

	l.sched = scheduler.New(env)
	l.shift = shift.Classify(env.Clock.Now().In(env.Location))
	l.logger.Info("starting shift", xslog.Shift(l.shift.String()))
	return l
}

// Tick runs one frame.
func (l *Loop) Tick() {
	now := l.env.Clock.Now()
	s := l.provider.Latest()

	l.checkAlive(now)
	l.updateShift(s, now)
	l.detectEvents(s)
	l.updateColor()
	l.sched.Tick(s, l.buttons.Sample())
	l.publish(s, now)
}

// Run ticks every interval until ctx is done.
func (l *Loop) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	l.logger.InfoContext(ctx, "display loop started", xslog.Duration(interval))
	for {
		select {
		case <-ctx.Done():
			l.logger.InfoContext(ctx, "display loop stopped")
			return nil
		case <-ticker.C:
			l.Tick()
		}
	}
}

// Shift is the effective shift as of the last tick.
func (l *Loop) Shift() shift.Shift {
	return l.shift
}

func (l *Loop) checkAlive(now time.Time) {
	alive := l.provider.Alive(now, l.staleAfter)
	switch {
	case l.alive && !alive:
		l.logger.Error("stats poller has stopped responding; showing last known stats",
			xslog.Duration(l.staleAfter),
		)
	case !l.alive && alive:
		l.logger.Info("stats poller is back")
	}
	l.alive = alive
}

func (l *Loop) updateShift(s *stats.Snapshot, now time.Time) {
	next := shift.Resolve(l.shift, s, now, l.env.Location)
	if next == l.shift {
		return
	}

	prev := l.shift
	l.shift = next
	l.logger.Info("shift change",
		xslog.PrevShift(prev.String()),
		xslog.Shift(next.String()),
	)

	live := s != nil && s.IsLive
	if shift.ShouldAnimate(prev, next, l.setting(settings.ShowShiftAnim), live) {
		l.sched.Push(view.NewShiftTransition(l.env, next, view.PriorityTransition))
	}
}

// detectEvents compares each new snapshot with the one before it. The same
// snapshot is never compared twice.
func (l *Loop) detectEvents(s *stats.Snapshot) {
	if s == l.prev {
		return
	}
	prev := l.prev
	l.prev = s

	if l.setting(settings.ShowEventAnim) != settings.Always {
		return
	}
	for _, v := range view.EventViews(l.env, prev, s) {
		l.logger.Info("event", xslog.Event(v.Name()))
		l.sched.Push(v)
	}
}

func (l *Loop) updateColor() {
	c := shift.BacklightColor(l.shift, l.setting(settings.LcdColor))
	if l.colorSet && c == l.color {
		return
	}
	l.color, l.colorSet = c, true
	l.env.Sink.SetColor(c)
}

func (l *Loop) setting(key settings.Key) string {
	if l.env.Settings == nil {
		return settings.Static{}.Get(key)
	}
	return l.env.Settings.Get(key)
}
