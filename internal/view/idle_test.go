package view

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/dbpibus/dbpibus/internal/display"
	"github.com/dbpibus/dbpibus/internal/settings"
	"github.com/dbpibus/dbpibus/internal/stats"
)

func liveSnapshot() *stats.Snapshot {
	return &stats.Snapshot{
		FetchedAt:     epoch,
		DonationTotal: 123456.78,
		ToNextHour:    1234.5,
		HoursBussed:   26,
		MinutesBussed: 7,
		TotalHours:    140,
		Points:        12,
		Crashes:       3,
		Splats:        45,
		Stops:         2,
		RunStart:      epoch.Add(-26 * time.Hour),
		IsLive:        true,
		GoingToTucson: true,
	}
}

// topLines samples line1 at the start of each page.
func topLines(t *testing.T, te *testEnv, v *Idle, s *stats.Snapshot, every time.Duration, n int) []string {
	t.Helper()
	var out []string
	for range n {
		if v.NextFrame(s) {
			t.Fatal("idle view reported done")
		}
		l1, _ := te.lines()
		out = append(out, l1)
		te.clock.Advance(every)
	}
	return out
}

func centered(lines ...string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = display.Center(l)
	}
	return out
}

func TestIdleStartupMessage(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t, nil)
	v := NewIdle(te.Env)
	if v.NextFrame(nil) {
		t.Fatal("idle view reported done")
	}
	l1, l2 := te.lines()
	if l1 != display.Center("Your driver is:") || l2 != display.Center("JOCKO") {
		t.Errorf("lines = %q / %q", l1, l2)
	}
}

func TestIdleNeverClaimsButtons(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t, nil)
	v := NewIdle(te.Env)
	for _, in := range []display.Input{back, sel, plus, minus} {
		if next, handled := v.HandleButtons(liveSnapshot(), in); next != nil || handled {
			t.Errorf("HandleButtons(%+v) = %v, %v", in, next, handled)
		}
	}
}

func TestIdlePages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings map[string]string
		snapshot func() *stats.Snapshot
		every    time.Duration
		want     []string
	}{
		{
			name:     "live separate",
			snapshot: liveSnapshot,
			every:    4 * time.Second,
			want: centered(
				"Vegas -> Tucson", "Next: $1,234.50", "Bussed: 26:07", "Total hours: 140",
				"Points: 12", "Crashes: 3", "Bug splats: 45", "Bus stops: 2",
				"Vegas -> Tucson",
			),
		},
		{
			name:     "live PT:CR",
			settings: map[string]string{"PointsCrashes": settings.PTCR},
			snapshot: liveSnapshot,
			every:    4 * time.Second,
			want: centered(
				"Vegas -> Tucson", "Next: $1,234.50", "Bussed: 26:07", "Total hours: 140",
				"PT:CR: 12:3", "Bug splats: 45", "Bus stops: 2",
			),
		},
		{
			name: "offseason",
			snapshot: func() *stats.Snapshot {
				s := liveSnapshot()
				s.IsLive = false
				return s
			},
			every: 6 * time.Second,
			want: centered(
				"Total hours: 140", "Points: 12", "Crashes: 3", "Bug splats: 45", "Bus stops: 2",
				"Total hours: 140",
			),
		},
		{
			name: "preseason",
			snapshot: func() *stats.Snapshot {
				s := liveSnapshot()
				s.IsLive = false
				s.RunStart = time.Date(2025, time.November, 18, 16, 0, 0, 0, time.UTC)
				return s
			},
			every: 4 * time.Second,
			want:  centered("Starts: 3d 04h", "Desert Bus DB19", "Tue Nov 18 4PM", "Starts: 3d 03h"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			te := newTestEnv(t, tt.settings)
			v := NewIdle(te.Env)
			got := topLines(t, te, v, tt.snapshot(), tt.every, len(tt.want))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("pages mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIdleClockPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings map[string]string
		wantTime string
		wantDate string
	}{
		{
			name:     "12 hour ymd",
			settings: map[string]string{"ShowTimeInOffseason": settings.Yes},
			wantTime: display.Center("12:00:30 PM"),
			wantDate: display.Center("2025-11-15"),
		},
		{
			name: "24 hour dmy",
			settings: map[string]string{
				"ShowTimeInOffseason": settings.Yes,
				"TimeFormat":          settings.Hour24,
				"DateFormat":          settings.DDMMYYYY,
			},
			wantTime: display.Center("12:00:30"),
			wantDate: display.Center("15/11/2025"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			te := newTestEnv(t, tt.settings)
			s := liveSnapshot()
			s.IsLive = false
			v := NewIdle(te.Env)
			total := display.Center("$123,456.78")

			// offseason has five stats pages of 6s, then time and date
			te.clock.Advance(30 * time.Second)
			v.NextFrame(s)
			l1, l2 := te.lines()
			if l1 != tt.wantTime {
				t.Errorf("time page = %q, want %q", l1, tt.wantTime)
			}
			if l2 != total {
				t.Errorf("time page line2 = %q, want %q", l2, total)
			}

			te.clock.Advance(6 * time.Second)
			v.NextFrame(s)
			l1, l2 = te.lines()
			if l1 != tt.wantDate {
				t.Errorf("date page = %q, want %q", l1, tt.wantDate)
			}
			if l2 != total {
				t.Errorf("date page line2 = %q, want %q", l2, total)
			}

			te.clock.Advance(6 * time.Second)
			v.NextFrame(s)
			if l1, _ := te.lines(); l1 != display.Center("Total hours: 140") {
				t.Errorf("after the date page got %q, want the first page again", l1)
			}
		})
	}
}

func TestIdleDonationsOnEveryPage(t *testing.T) {
	t.Parallel()

	clockOn := map[string]string{
		"ShowTimeInPreseason": settings.Yes,
		"ShowTimeInRun":       settings.Yes,
		"ShowTimeInOffseason": settings.Yes,
	}

	tests := []struct {
		name     string
		snapshot func() *stats.Snapshot
		every    time.Duration
		pages    int
	}{
		{name: "live", snapshot: liveSnapshot, every: 4 * time.Second, pages: 10},
		{
			name: "offseason",
			snapshot: func() *stats.Snapshot {
				s := liveSnapshot()
				s.IsLive = false
				return s
			},
			every: 6 * time.Second,
			pages: 7,
		},
		{
			name: "preseason",
			snapshot: func() *stats.Snapshot {
				s := liveSnapshot()
				s.IsLive = false
				s.RunStart = time.Date(2025, time.November, 18, 16, 0, 0, 0, time.UTC)
				return s
			},
			every: 4 * time.Second,
			pages: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			te := newTestEnv(t, clockOn)
			v := NewIdle(te.Env)
			s := tt.snapshot()
			s.FetchedAt = epoch.Add(time.Minute)
			want := display.Center("$123,456.78")

			seen := map[string]bool{}
			for i := range tt.pages {
				v.NextFrame(s)
				l1, l2 := te.lines()
				seen[l1] = true
				if l2 != want {
					t.Errorf("page %d (%q) line2 = %q, want %q", i, l1, l2, want)
				}
				te.clock.Advance(tt.every)
			}
			if len(seen) != tt.pages {
				t.Errorf("saw %d distinct pages, want %d", len(seen), tt.pages)
			}
		})
	}
}

func TestIdleCountUp(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t, nil)
	v := NewIdle(te.Env)

	line2 := func(s *stats.Snapshot) string {
		t.Helper()
		v.NextFrame(s)
		_, l2 := te.lines()
		return l2
	}

	first := &stats.Snapshot{FetchedAt: epoch, DonationTotal: 100, IsLive: true}
	if got := line2(first); got != display.Center("$100.00") {
		t.Fatalf("first total = %q, want no count-up from zero", got)
	}

	te.clock.Advance(10 * time.Second)
	second := &stats.Snapshot{FetchedAt: te.clock.Now(), DonationTotal: 150, IsLive: true}
	if got := line2(second); got != display.Center("$100.00") {
		t.Errorf("at change = %q, want $100.00", got)
	}

	te.clock.Advance(500 * time.Millisecond)
	if got := line2(second); got != display.Center("$125.00") {
		t.Errorf("midpoint = %q, want $125.00", got)
	}

	te.clock.Advance(500 * time.Millisecond)
	if got := line2(second); got != display.Center("$150.00") {
		t.Errorf("end = %q, want $150.00", got)
	}

	te.clock.Advance(5 * time.Second)
	if got := line2(second); got != display.Center("$150.00") {
		t.Errorf("after end = %q, want $150.00", got)
	}
}

func TestIdleCountUpRetarget(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t, nil)
	v := NewIdle(te.Env)

	line2 := func(total float64) string {
		t.Helper()
		v.NextFrame(&stats.Snapshot{FetchedAt: te.clock.Now(), DonationTotal: total, IsLive: true})
		_, l2 := te.lines()
		return l2
	}

	line2(100)
	te.clock.Advance(10 * time.Second)
	line2(200)
	te.clock.Advance(500 * time.Millisecond)
	if got := line2(200); got != display.Center("$150.00") {
		t.Fatalf("first roll midpoint = %q, want $150.00", got)
	}

	// the total moves again before the first roll settles
	if got := line2(300); got != display.Center("$100.00") {
		t.Errorf("mid-roll change = %q, want the last settled $100.00", got)
	}
	te.clock.Advance(500 * time.Millisecond)
	if got := line2(300); got != display.Center("$200.00") {
		t.Errorf("second roll midpoint = %q, want $200.00", got)
	}
	te.clock.Advance(500 * time.Millisecond)
	if got := line2(300); got != display.Center("$300.00") {
		t.Errorf("second roll end = %q, want $300.00", got)
	}

	// a roll that finished between frames counts as settled
	line2(400)
	te.clock.Advance(2 * time.Second)
	if got := line2(500); got != display.Center("$400.00") {
		t.Errorf("change after an unseen settle = %q, want $400.00", got)
	}
	te.clock.Advance(500 * time.Millisecond)
	if got := line2(500); got != display.Center("$450.00") {
		t.Errorf("third roll midpoint = %q, want $450.00", got)
	}
}

func TestIdleServiceDot(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t, nil)
	v := NewIdle(te.Env)
	s := &stats.Snapshot{FetchedAt: epoch, DonationTotal: 1234.5, IsLive: true}

	te.clock.Advance(2 * time.Minute)
	v.NextFrame(s)
	if _, l2 := te.lines(); l2 != display.Center("$1,234.50") {
		t.Errorf("at 2m = %q, want no dot", l2)
	}

	te.clock.Advance(time.Millisecond)
	v.NextFrame(s)
	if _, l2 := te.lines(); l2 != display.Center("$1,234.50.") {
		t.Errorf("past 2m = %q, want a dot", l2)
	}
}

func TestPhaseOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    *stats.Snapshot
		want Phase
	}{
		{name: "live", s: &stats.Snapshot{IsLive: true, RunStart: epoch.Add(time.Hour)}, want: Live},
		{name: "before start", s: &stats.Snapshot{RunStart: epoch.Add(time.Hour)}, want: Preseason},
		{name: "after run", s: &stats.Snapshot{RunStart: epoch.Add(-time.Hour)}, want: Offseason},
		{name: "no start time", s: &stats.Snapshot{}, want: Offseason},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := PhaseOf(tt.s, epoch); got != tt.want {
				t.Errorf("PhaseOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCountdownPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		until time.Duration
		want  string
	}{
		{until: 100*24*time.Hour + 5*time.Hour, want: "Starts: 100d 05h"},
		{until: 4*time.Hour + 5*time.Minute, want: "Starts: 4h 05m"},
		{until: 5*time.Minute + 9*time.Second, want: "Starts: 5m 09s"},
		{until: -time.Minute, want: "Starts: 0m 00s"},
	}

	for _, tt := range tests {
		s := &stats.Snapshot{RunStart: epoch.Add(tt.until)}
		if got := countdownPage(s, epoch, Env{}); got != tt.want {
			t.Errorf("countdownPage(%v) = %q, want %q", tt.until, got, tt.want)
		}
	}
}
