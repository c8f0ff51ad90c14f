// Package xsync keeps the latest stats snapshot fresh in the background.
package xsync

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/dbpibus/dbpibus/internal/clock"
	"github.com/dbpibus/dbpibus/internal/stats"
	"github.com/dbpibus/dbpibus/internal/xslog"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const DefaultInterval = 30 * time.Second

// Fetcher produces one snapshot. *vst.Client satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, now time.Time) (*stats.Snapshot, error)
}

// Provider is the read side of the poller, as the main loop sees it.
type Provider interface {
	// Latest never blocks. nil means nothing has been fetched yet.
	Latest() *stats.Snapshot
	// Alive reports whether the poller has tried a fetch recently.
	Alive(now time.Time, staleAfter time.Duration) bool
}

type Poller struct {
	fetcher Fetcher
	clock   clock.Clock
	limiter *rate.Limiter
	logger  *slog.Logger
	created time.Time

	latest      atomic.Pointer[stats.Snapshot]
	lastAttempt atomic.Int64
}

var _ Provider = (*Poller)(nil)

type pollerConfig struct {
	interval time.Duration
	clock    clock.Clock
	logger   *slog.Logger
}

type Option func(*pollerConfig)

func WithInterval(d time.Duration) Option {
	return func(cfg *pollerConfig) {
		if d > 0 {
			cfg.interval = d
		}
	}
}

func WithClock(c clock.Clock) Option {
	return func(cfg *pollerConfig) { cfg.clock = c }
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *pollerConfig) { cfg.logger = logger }
}

func NewPoller(f Fetcher, opts ...Option) *Poller {
	cfg := &pollerConfig{
		interval: DefaultInterval,
		clock:    clock.Real{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Poller{
		fetcher: f,
		clock:   cfg.clock,
		// burst 1 with a full bucket: the first fetch goes out immediately
		limiter: rate.NewLimiter(rate.Every(cfg.interval), 1),
		logger:  cfg.logger,
		created: cfg.clock.Now(),
	}
}

func (p *Poller) Latest() *stats.Snapshot {
	return p.latest.Load()
}

// LastAttempt is when the most recent fetch started, or the zero time.
func (p *Poller) LastAttempt() time.Time {
	n := p.lastAttempt.Load()
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n)
}

// Alive counts the poller's creation as an attempt, so a fresh poller is
// alive until it has had staleAfter to get going.
func (p *Poller) Alive(now time.Time, staleAfter time.Duration) bool {
	last := p.LastAttempt()
	if last.Before(p.created) {
		last = p.created
	}
	return now.Sub(last) <= staleAfter
}

// Run fetches once per interval until ctx is done. Failed fetches are logged
// and leave the previous snapshot in place.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.InfoContext(ctx, "stats poller started")
	for {
		if err := p.limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				p.logger.InfoContext(ctx, "stats poller stopped")
				return nil
			}
			return err
		}
		p.poll(ctx)
	}
}

func (p *Poller) poll(ctx context.Context) {
	start := p.clock.Now()
	p.lastAttempt.Store(start.UnixNano())
	logger := p.logger.With(xslog.FetchID(uuid.NewString()))
	ctx = xslog.WithLogger(ctx, logger)

	snap, err := p.fetcher.Fetch(ctx, start)
	if err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return
		}
		logger.LogAttrs(ctx, slog.LevelWarn, "stats fetch failed",
			xslog.Error(err),
			xslog.Duration(p.clock.Now().Sub(start)),
		)
		return
	}
	if snap == nil {
		return
	}

	p.latest.Store(snap)
	logger.LogAttrs(ctx, slog.LevelDebug, "stats fetched",
		xslog.Donations(snap.DonationTotal),
		xslog.Omega(snap.Omega.String()),
		xslog.Duration(p.clock.Now().Sub(start)),
	)
}
