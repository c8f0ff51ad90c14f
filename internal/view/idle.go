package view

import (
	"time"

	"github.com/dbpibus/dbpibus/internal/display"
	"github.com/dbpibus/dbpibus/internal/stats"
)

var _ View = (*Idle)(nil)

// CountUpDuration is how long the donation line takes to roll up to a new
// total.
const CountUpDuration = time.Second

var (
	startupLine1 = display.Center("Your driver is:")
	startupLine2 = display.Center("JOCKO")
)

// Idle rotates through stats pages on the top line with the donation total
// underneath. It never finishes and never claims a button.
type Idle struct {
	env       Env
	createdAt time.Time
	counter   countUp
}

func NewIdle(env Env) *Idle {
	return &Idle{env: env, createdAt: env.now()}
}

func (v *Idle) Priority() int { return PriorityIdle }

func (v *Idle) Name() string { return "Idle" }

func (v *Idle) HandleButtons(*stats.Snapshot, display.Input) (View, bool) {
	return nil, false
}

func (v *Idle) NextFrame(s *stats.Snapshot) bool {
	if s == nil {
		v.env.Sink.Show(startupLine1, startupLine2)
		return false
	}

	now := v.env.now()
	phase := PhaseOf(s, now)
	pages := v.pages(phase)
	every := phase.PageDuration()
	p := pages[int(now.Sub(v.createdAt)/every)%len(pages)]

	v.env.Sink.Show(display.Center(p.top(s, now, v.env)), v.donationLine(s, now))
	return false
}

func (v *Idle) donationLine(s *stats.Snapshot, now time.Time) string {
	line := stats.Dollars(v.counter.value(s.DonationTotal, now))
	if needsServiceDot(s, now) {
		line += "."
	}
	return display.Center(line)
}

// countUp rolls the shown value toward the real total over CountUpDuration.
// Every roll starts from the last total the display settled on, so a change
// that lands mid-roll restarts from there rather than from the partial value.
type countUp struct {
	started   bool
	stable    float64
	target    float64
	changedAt time.Time
}

func (c *countUp) value(total float64, now time.Time) float64 {
	if !c.started {
		c.started = true
		c.stable, c.target, c.changedAt = total, total, now
		return total
	}
	if total != c.target {
		c.at(now) // settles a finished roll before retargeting
		c.target = total
		c.changedAt = now
	}
	return c.at(now)
}

func (c *countUp) at(now time.Time) float64 {
	elapsed := now.Sub(c.changedAt)
	switch {
	case elapsed >= CountUpDuration:
		c.stable = c.target
		return c.target
	case elapsed <= 0:
		return c.stable
	default:
		return c.stable + (c.target-c.stable)*float64(elapsed)/float64(CountUpDuration)
	}
}
