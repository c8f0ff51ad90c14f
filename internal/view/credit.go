package view

import (
	"context"
	"log/slog"
	"time"

	"github.com/dbpibus/dbpibus/internal/anim"
	"github.com/dbpibus/dbpibus/internal/display"
	"github.com/dbpibus/dbpibus/internal/stats"
	"github.com/dbpibus/dbpibus/internal/xslog"
)

var _ View = (*ServiceCredit)(nil)

const creditBlinks = 8

// ServiceCredit is the arcade "FREE PLAY / PRESS START" easter egg, shown when
// back is pressed on the idle pages.
type ServiceCredit struct {
	env      Env
	schedule *anim.Schedule
}

func NewServiceCredit(env Env) *ServiceCredit {
	return &ServiceCredit{env: env}
}

func (c *ServiceCredit) Priority() int { return PriorityCredit }

func (c *ServiceCredit) Name() string { return "ServiceCredit" }

func (c *ServiceCredit) HandleButtons(s *stats.Snapshot, in display.Input) (View, bool) {
	switch {
	case in.Pressed.Back:
		c.env.logger().LogAttrs(context.Background(), slog.LevelInfo, "back pressed, restarting free play",
			xslog.View(c.Name()),
		)
		c.restart(s)
		return nil, true
	case in.Pressed.Select:
		c.env.logger().LogAttrs(context.Background(), slog.LevelInfo, "select pressed, leaving free play",
			xslog.View(c.Name()),
		)
		if c.schedule == nil {
			c.schedule = &anim.Schedule{}
		}
		c.schedule.Clear()
		return nil, true
	default:
		return nil, false
	}
}

func (c *ServiceCredit) NextFrame(s *stats.Snapshot) bool {
	if c.schedule == nil {
		c.restart(s)
	}
	return c.schedule.Advance(c.env.now(), c.env.Sink)
}

func (c *ServiceCredit) restart(s *stats.Snapshot) {
	now := c.env.now()
	c.schedule = anim.MustPrepare(creditFrames(needsServiceDot(s, now)), now)
}

func creditFrames(dot bool) []anim.Frame {
	freePlay := "FREE PLAY"
	if dot {
		freePlay += "."
	}
	freePlay = display.Center(freePlay)
	pressStart := display.Center("PRESS START")

	return anim.Repeat([]anim.Frame{
		{Duration: 300 * time.Millisecond, Line1: freePlay, Line2: pressStart},
		{Duration: 200 * time.Millisecond, Line1: freePlay, Line2: display.Blank},
	}, creditBlinks)
}
