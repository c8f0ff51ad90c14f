package view

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dbpibus/dbpibus/internal/anim"
	"github.com/dbpibus/dbpibus/internal/display"
	"github.com/dbpibus/dbpibus/internal/event"
	"github.com/dbpibus/dbpibus/internal/shift"
	"github.com/dbpibus/dbpibus/internal/stats"
	"github.com/dbpibus/dbpibus/internal/xslog"
)

var _ View = (*Animation)(nil)

// Animation plays a frame list once. It claims every button; a select press
// cuts it short.
type Animation struct {
	env      Env
	name     string
	priority int
	frames   []anim.Frame
	schedule *anim.Schedule
}

// NewAnimation panics if frames is invalid; frame lists come from static
// tables that are checked at init.
func NewAnimation(env Env, name string, priority int, frames []anim.Frame) *Animation {
	if err := anim.Validate(frames); err != nil {
		panic(fmt.Sprintf("animation %s: %v", name, err))
	}
	return &Animation{env: env, name: name, priority: priority, frames: frames}
}

func (a *Animation) Priority() int { return a.priority }

func (a *Animation) Name() string { return "Animation (" + a.name + ")" }

func (a *Animation) HandleButtons(_ *stats.Snapshot, in display.Input) (View, bool) {
	if in.Pressed.Select {
		a.env.logger().LogAttrs(context.Background(), slog.LevelInfo, "select pressed, cutting animation short",
			xslog.View(a.Name()),
		)
		a.start()
		a.schedule.Clear()
	}
	return nil, true
}

func (a *Animation) NextFrame(_ *stats.Snapshot) bool {
	a.start()
	return a.schedule.Advance(a.env.now(), a.env.Sink)
}

// start lays out the schedule the first time the view gets the display, not
// when it was queued.
func (a *Animation) start() {
	if a.schedule == nil {
		a.schedule = anim.MustPrepare(a.frames, a.env.now())
	}
}

// NewShiftTransition is the animation played when s begins.
func NewShiftTransition(env Env, s shift.Shift, priority int) *Animation {
	return NewAnimation(env, s.String()+" Transition", priority, shift.Transition(s))
}

// NewEventAnimation celebrates (or mourns) k at its own priority unless
// priority overrides it.
func NewEventAnimation(env Env, k event.Kind, priority int) *Animation {
	return NewAnimation(env, k.String()+" Animation", priority, k.Frames())
}

// EventViews turns every event between prev and curr into an animation view,
// in priority order.
func EventViews(env Env, prev, curr *stats.Snapshot) []View {
	kinds := event.Detect(prev, curr)
	views := make([]View, 0, len(kinds))
	for _, k := range kinds {
		views = append(views, NewEventAnimation(env, k, k.Priority()))
	}
	return views
}
