// Package event spots in-game events by diffing consecutive stats snapshots.
package event

import (
	"github.com/dbpibus/dbpibus/internal/anim"
	"github.com/dbpibus/dbpibus/internal/stats"
)

// Kind is an in-game event. The numeric value is its view priority; crashes
// sort last because a crash usually ends whatever cluster it came in.
type Kind int

const (
	Point Kind = 6
	Splat Kind = 7
	Stop  Kind = 8
	Crash Kind = 9
)

// All lists the kinds in priority order.
var All = []Kind{Point, Splat, Stop, Crash}

func (k Kind) Priority() int {
	return int(k)
}

func (k Kind) String() string {
	switch k {
	case Point:
		return "Point Get"
	case Splat:
		return "Bug Splat"
	case Stop:
		return "Bus Stop"
	case Crash:
		return "Crash"
	default:
		return "Unknown Event"
	}
}

func (k Kind) Frames() []anim.Frame {
	return frames[k]
}

// Detect returns one Kind per counter that went up between prev and curr, in
// priority order. Nothing is detected unless both snapshots exist.
func Detect(prev, curr *stats.Snapshot) []Kind {
	if prev == nil || curr == nil {
		return nil
	}

	var kinds []Kind
	if curr.Points > prev.Points {
		kinds = append(kinds, Point)
	}
	if curr.Splats > prev.Splats {
		kinds = append(kinds, Splat)
	}
	if curr.Stops > prev.Stops {
		kinds = append(kinds, Stop)
	}
	if curr.Crashes > prev.Crashes {
		kinds = append(kinds, Crash)
	}
	return kinds
}
