// Package shift works out which Desert Bus shift is on and what it looks like.
package shift

import (
	"time"

	"github.com/dbpibus/dbpibus/internal/display"
	"github.com/dbpibus/dbpibus/internal/settings"
	"github.com/dbpibus/dbpibus/internal/stats"
)

type Shift int

const (
	DawnGuard Shift = iota
	AlphaFlight
	NightWatch
	ZetaShift
	OmegaShift
)

// All lists the shifts in menu order.
var All = []Shift{DawnGuard, AlphaFlight, NightWatch, ZetaShift, OmegaShift}

func (s Shift) String() string {
	switch s {
	case DawnGuard:
		return "Dawn Guard"
	case AlphaFlight:
		return "Alpha Flight"
	case NightWatch:
		return "Night Watch"
	case ZetaShift:
		return "Zeta Shift"
	case OmegaShift:
		return "Omega Shift"
	default:
		return "Unknown Shift"
	}
}

// Setting is the LcdColor setting value that pins the backlight to s.
func (s Shift) Setting() string {
	switch s {
	case DawnGuard:
		return settings.DawnGuard
	case AlphaFlight:
		return settings.AlphaFlight
	case NightWatch:
		return settings.NightWatch
	case ZetaShift:
		return settings.ZetaShift
	case OmegaShift:
		return settings.OmegaShift
	default:
		return ""
	}
}

// FromSetting maps a fixed LcdColor value back to its shift.
func FromSetting(v string) (Shift, bool) {
	for _, s := range All {
		if s.Setting() == v {
			return s, true
		}
	}
	return 0, false
}

// Classify picks the shift by the hour of t. Callers pass t already in the
// broadcast's time zone.
func Classify(t time.Time) Shift {
	switch h := t.Hour(); {
	case h < 6:
		return ZetaShift
	case h < 12:
		return DawnGuard
	case h < 18:
		return AlphaFlight
	default:
		return NightWatch
	}
}

// Resolve gives the effective shift. Omega is entered on an explicit true and
// only left on an explicit false; an unknown flag or missing data keeps
// whatever Omega state prev had.
func Resolve(prev Shift, s *stats.Snapshot, now time.Time, loc *time.Location) Shift {
	omega := stats.OmegaUnknown
	if s != nil {
		omega = s.Omega
	}

	switch {
	case omega == stats.OmegaTrue:
		return OmegaShift
	case omega == stats.OmegaUnknown && prev == OmegaShift:
		return OmegaShift
	default:
		return Classify(now.In(loc))
	}
}

var colors = map[Shift]display.Color{
	DawnGuard:   {R: 80, G: 10, B: 0},
	AlphaFlight: {R: 95, G: 0, B: 0},
	NightWatch:  {R: 20, G: 20, B: 90},
	ZetaShift:   {R: 80, G: 0, B: 80},
	OmegaShift:  {R: 40, G: 40, B: 40},
}

// Color is the backlight color for s. These are tuned for the LED, not the
// on-stream colors.
func Color(s Shift) display.Color {
	return colors[s]
}

// BacklightColor applies the LcdColor setting: either follow current, or pin
// to a fixed shift's color.
func BacklightColor(current Shift, setting string) display.Color {
	if fixed, ok := FromSetting(setting); ok {
		return Color(fixed)
	}
	return Color(current)
}

// ShouldAnimate decides whether a change from prev to next gets a transition
// animation. Nothing plays when leaving Omega.
func ShouldAnimate(prev, next Shift, policy string, live bool) bool {
	if prev == next || prev == OmegaShift {
		return false
	}
	switch policy {
	case settings.Always:
		return true
	case settings.OnlyInSeason:
		return live
	default:
		return false
	}
}
