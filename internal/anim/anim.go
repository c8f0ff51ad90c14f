// Package anim turns a declarative list of frames into a time-stamped playback
// schedule and plays it back one tick at a time.
package anim

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/dbpibus/dbpibus/internal/display"
)

// Frame is one step of an animation: show Line1/Line2 for Duration.
type Frame struct {
	Duration time.Duration
	Line1    string
	Line2    string
}

// InvalidAnimationError reports a frame whose line cannot be put on the LCD as is.
type InvalidAnimationError struct {
	Index int
	Line  string
}

func (e *InvalidAnimationError) Error() string {
	return fmt.Sprintf("invalid animation frame %d: line %q is %d runes, want %d",
		e.Index, e.Line, utf8.RuneCountInString(e.Line), display.Width)
}

type entry struct {
	at       time.Time
	line1    string
	line2    string
	sentinel bool
}

// Schedule is a prepared animation. The zero value is an already finished
// schedule.
type Schedule struct {
	entries []entry
}

// Prepare lays frames out on the timeline starting at start. The final entry is
// a sentinel at the end of the last frame.
func Prepare(frames []Frame, start time.Time) (*Schedule, error) {
	if err := Validate(frames); err != nil {
		return nil, err
	}

	entries := make([]entry, 0, len(frames)+1)
	at := start
	for _, f := range frames {
		entries = append(entries, entry{at: at, line1: f.Line1, line2: f.Line2})
		at = at.Add(f.Duration)
	}
	entries = append(entries, entry{at: at, sentinel: true})

	return &Schedule{entries: entries}, nil
}

// MustPrepare is Prepare for frame tables that were already checked with
// MustFrames.
func MustPrepare(frames []Frame, start time.Time) *Schedule {
	s, err := Prepare(frames, start)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks every line of every frame.
func Validate(frames []Frame) error {
	for i, f := range frames {
		for _, line := range [...]string{f.Line1, f.Line2} {
			if utf8.RuneCountInString(line) != display.Width {
				return &InvalidAnimationError{Index: i, Line: line}
			}
		}
	}
	return nil
}

// MustFrames panics if frames is not a valid table. Meant for package-level
// frame tables.
func MustFrames(frames []Frame) []Frame {
	if err := Validate(frames); err != nil {
		panic(err)
	}
	return frames
}

// Advance moves to the entry current at now and shows it. Frames that were
// entirely skipped by a slow tick are never shown. It reports true once the
// sentinel is reached or the schedule is empty, and keeps doing so.
func (s *Schedule) Advance(now time.Time, sink display.Sink) bool {
	s.skip(now)
	if len(s.entries) == 0 || s.entries[0].sentinel {
		return true
	}
	e := s.entries[0]
	sink.Show(e.line1, e.line2)
	return false
}

// Done reports whether the schedule has finished as of now, without showing
// anything.
func (s *Schedule) Done(now time.Time) bool {
	s.skip(now)
	return len(s.entries) == 0 || s.entries[0].sentinel
}

// Clear drops everything left in the schedule.
func (s *Schedule) Clear() {
	s.entries = nil
}

// Len is the number of entries left, sentinel included.
func (s *Schedule) Len() int {
	return len(s.entries)
}

func (s *Schedule) skip(now time.Time) {
	i := 0
	for len(s.entries)-i > 1 && !s.entries[i+1].at.After(now) {
		i++
	}
	if i > 0 {
		s.entries = s.entries[i:]
	}
}

// Total is the summed duration of frames.
func Total(frames []Frame) time.Duration {
	var d time.Duration
	for _, f := range frames {
		d += f.Duration
	}
	return d
}

// Repeat returns frames repeated n times.
func Repeat(frames []Frame, n int) []Frame {
	out := make([]Frame, 0, len(frames)*n)
	for range n {
		out = append(out, frames...)
	}
	return out
}
