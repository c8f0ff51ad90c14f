// Package scheduler decides which view owns the display each tick.
package scheduler

import (
	"container/heap"
	"context"
	"log/slog"

	"github.com/dbpibus/dbpibus/internal/display"
	"github.com/dbpibus/dbpibus/internal/stats"
	"github.com/dbpibus/dbpibus/internal/view"
	"github.com/dbpibus/dbpibus/internal/xslog"
)

// Scheduler owns the view queue. It is not safe for concurrent use; one
// goroutine drives Tick.
type Scheduler struct {
	env    view.Env
	logger *slog.Logger
	queue  queue
	seq    uint64
	prev   display.Buttons
}

func New(env view.Env) *Scheduler {
	logger := env.Logger
	if logger == nil {
		logger = xslog.Discard()
	}
	return &Scheduler{env: env, logger: logger}
}

// Push admits v. It will own the display once nothing with a lower priority
// number, or the same priority and an earlier push, is left ahead of it.
func (s *Scheduler) Push(v view.View) {
	s.seq++
	heap.Push(&s.queue, &item{view: v, seq: s.seq})
	s.logger.LogAttrs(context.Background(), slog.LevelInfo, "view queued",
		xslog.View(v.Name()),
		xslog.Priority(v.Priority()),
		xslog.QueueLen(s.queue.Len()),
	)
}

// Top is the view that owns the display, or nil if the queue is empty.
func (s *Scheduler) Top() view.View {
	if len(s.queue) == 0 {
		return nil
	}
	return s.queue[0].view
}

func (s *Scheduler) Len() int {
	return s.queue.Len()
}

// Tick runs one frame: route this tick's button edges, draw the top view, and
// retire it if it finished.
func (s *Scheduler) Tick(snap *stats.Snapshot, buttons display.Buttons) {
	in := display.Input{Held: buttons, Pressed: display.Edges(s.prev, buttons)}
	s.prev = buttons

	if len(s.queue) == 0 {
		s.Push(view.NewIdle(s.env))
	}

	top := s.queue[0]
	next, handled := top.view.HandleButtons(snap, in)
	if next != nil {
		s.Push(next)
	}
	if !handled {
		s.globalButtons(in.Pressed)
	}

	if top.view.NextFrame(snap) && next == nil {
		s.remove(top)
	}
}

// globalButtons is what happens to input the top view did not want: back
// starts free play, select opens the service menu.
func (s *Scheduler) globalButtons(pressed display.Buttons) {
	switch {
	case pressed.Back:
		s.Push(view.NewServiceCredit(s.env))
	case pressed.Select:
		s.Push(view.NewServiceMenu(s.env))
	}
}

// remove drops it wherever it sits now; a push this tick may have moved it
// off the top of the heap.
func (s *Scheduler) remove(it *item) {
	if it.index < 0 || it.index >= len(s.queue) || s.queue[it.index] != it {
		return
	}
	heap.Remove(&s.queue, it.index)
	s.logger.LogAttrs(context.Background(), slog.LevelInfo, "view complete",
		xslog.View(it.view.Name()),
		xslog.QueueLen(s.queue.Len()),
	)
}
