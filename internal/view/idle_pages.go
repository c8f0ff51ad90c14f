package view

import (
	"fmt"
	"time"

	"github.com/dbpibus/dbpibus/internal/settings"
	"github.com/dbpibus/dbpibus/internal/stats"
)

// Phase is where we are in the Desert Bus year.
type Phase int

const (
	Preseason Phase = iota
	Live
	Offseason
)

func (p Phase) String() string {
	switch p {
	case Preseason:
		return "preseason"
	case Live:
		return "live"
	default:
		return "offseason"
	}
}

// PageDuration is how long each idle page stays up.
func (p Phase) PageDuration() time.Duration {
	if p == Offseason {
		return 6 * time.Second
	}
	return 4 * time.Second
}

func (p Phase) showTimeKey() settings.Key {
	switch p {
	case Preseason:
		return settings.ShowTimeInPreseason
	case Live:
		return settings.ShowTimeInRun
	default:
		return settings.ShowTimeInOffseason
	}
}

func PhaseOf(s *stats.Snapshot, now time.Time) Phase {
	switch {
	case s.IsLive:
		return Live
	case now.Before(s.RunStart):
		return Preseason
	default:
		return Offseason
	}
}

type page struct {
	top func(s *stats.Snapshot, now time.Time, env Env) string
}

func (v *Idle) pages(phase Phase) []page {
	var pages []page
	switch phase {
	case Preseason:
		pages = []page{{top: countdownPage}, {top: runLabelPage}, {top: runStartPage}}
	case Live:
		pages = append([]page{{top: routePage}, {top: toNextHourPage}, {top: bussedPage}, {top: totalHoursPage}},
			v.pointsCrashesPages()...)
		pages = append(pages, page{top: splatsPage}, page{top: stopsPage})
	default:
		pages = append([]page{{top: totalHoursPage}}, v.pointsCrashesPages()...)
		pages = append(pages, page{top: splatsPage}, page{top: stopsPage})
	}
	if v.env.setting(phase.showTimeKey()) == settings.Yes {
		pages = append(pages, page{top: timePage}, page{top: datePage})
	}
	return pages
}

func (v *Idle) pointsCrashesPages() []page {
	if v.env.setting(settings.PointsCrashes) == settings.PTCR {
		return []page{{top: ptcrPage}}
	}
	return []page{{top: pointsPage}, {top: crashesPage}}
}

func timePage(_ *stats.Snapshot, now time.Time, env Env) string {
	layout := "3:04:05 PM"
	if env.setting(settings.TimeFormat) == settings.Hour24 {
		layout = "15:04:05"
	}
	return now.In(env.location()).Format(layout)
}

func datePage(_ *stats.Snapshot, now time.Time, env Env) string {
	var layout string
	switch env.setting(settings.DateFormat) {
	case settings.DDMMYYYY:
		layout = "02/01/2006"
	case settings.MMDDYYYY:
		layout = "01/02/2006"
	default:
		layout = "2006-01-02"
	}
	return now.In(env.location()).Format(layout)
}

// runNumber is the Desert Bus edition for a run starting in year.
func runNumber(year int) int {
	return year - 2006
}

func countdownPage(s *stats.Snapshot, now time.Time, _ Env) string {
	d := max(s.RunStart.Sub(now), 0)
	switch {
	case d >= 24*time.Hour:
		return fmt.Sprintf("Starts: %dd %02dh", int(d/(24*time.Hour)), int(d%(24*time.Hour)/time.Hour))
	case d >= time.Hour:
		return fmt.Sprintf("Starts: %dh %02dm", int(d/time.Hour), int(d%time.Hour/time.Minute))
	default:
		return fmt.Sprintf("Starts: %dm %02ds", int(d/time.Minute), int(d%time.Minute/time.Second))
	}
}

func runLabelPage(s *stats.Snapshot, _ time.Time, env Env) string {
	return fmt.Sprintf("Desert Bus DB%d", runNumber(s.RunStart.In(env.location()).Year()))
}

func runStartPage(s *stats.Snapshot, _ time.Time, env Env) string {
	return s.RunStart.In(env.location()).Format("Mon Jan 2 3PM")
}

func routePage(s *stats.Snapshot, _ time.Time, _ Env) string {
	if s.GoingToTucson {
		return "Vegas -> Tucson"
	}
	return "Tucson -> Vegas"
}

func toNextHourPage(s *stats.Snapshot, _ time.Time, _ Env) string {
	return "Next: " + stats.Dollars(s.ToNextHour)
}

func bussedPage(s *stats.Snapshot, _ time.Time, _ Env) string {
	return fmt.Sprintf("Bussed: %d:%02d", s.HoursBussed, s.MinutesBussed)
}

func totalHoursPage(s *stats.Snapshot, _ time.Time, _ Env) string {
	return fmt.Sprintf("Total hours: %d", s.TotalHours)
}

func ptcrPage(s *stats.Snapshot, _ time.Time, _ Env) string {
	return fmt.Sprintf("PT:CR: %d:%d", s.Points, s.Crashes)
}

func pointsPage(s *stats.Snapshot, _ time.Time, _ Env) string {
	return fmt.Sprintf("Points: %d", s.Points)
}

func crashesPage(s *stats.Snapshot, _ time.Time, _ Env) string {
	return fmt.Sprintf("Crashes: %d", s.Crashes)
}

func splatsPage(s *stats.Snapshot, _ time.Time, _ Env) string {
	return fmt.Sprintf("Bug splats: %d", s.Splats)
}

func stopsPage(s *stats.Snapshot, _ time.Time, _ Env) string {
	return fmt.Sprintf("Bus stops: %d", s.Stops)
}
