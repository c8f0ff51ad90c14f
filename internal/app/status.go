package app

import (
	"time"

	"github.com/dbpibus/dbpibus/internal/display"
	"github.com/dbpibus/dbpibus/internal/stats"
)

// Status is a copy of what the display showed on the last tick.
type Status struct {
	At          time.Time       `json:"at"`
	Line1       string          `json:"line1"`
	Line2       string          `json:"line2"`
	Color       display.Color   `json:"color"`
	Shift       string          `json:"shift"`
	View        string          `json:"view"`
	Queue       int             `json:"queue"`
	PollerAlive bool            `json:"poller_alive"`
	Stats       *stats.Snapshot `json:"stats"`
}

// Status is safe to call from any goroutine. Before the first tick it is the
// zero Status.
func (l *Loop) Status() Status {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.status
}

func (l *Loop) publish(s *stats.Snapshot, now time.Time) {
	line1, line2 := l.mirror.Lines()
	st := Status{
		At:          now,
		Line1:       line1,
		Line2:       line2,
		Color:       l.color,
		Shift:       l.shift.String(),
		Queue:       l.sched.Len(),
		PollerAlive: l.alive,
		Stats:       s,
	}
	if top := l.sched.Top(); top != nil {
		st.View = top.Name()
	}

	l.mu.Lock()
	l.status = st
	l.mu.Unlock()
}
