package vst

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dbpibus/dbpibus/internal/stats"
	"github.com/dbpibus/dbpibus/internal/xslog"
)

// firstRunYear is the year before DB1; run n happens in firstRunYear+n.
const firstRunYear = 2006

const omegaPath = "Resources/isitomegashift.html"

// RunNumber is the Desert Bus run held in year.
func RunNumber(year int) int {
	return year - firstRunYear
}

func statsPath(year int) string {
	n := RunNumber(year)
	return fmt.Sprintf("DB%d/data/DB%d_stats.json", n, n)
}

// Fetch pulls this year's stats, falling back to last year's while this
// year's file does not exist yet, and checks the Omega flag. A failed Omega
// check leaves the flag unknown rather than failing the fetch.
func (c *Client) Fetch(ctx context.Context, now time.Time) (*stats.Snapshot, error) {
	rec, err := c.fetchRecord(ctx, now.Year())
	if err != nil {
		return nil, err
	}

	omega, err := c.FetchOmega(ctx)
	if err != nil {
		c.log(ctx).LogAttrs(ctx, slog.LevelWarn, "omega check failed", xslog.Error(err))
	}

	return snapshot(rec, omega, now), nil
}

func (c *Client) fetchRecord(ctx context.Context, year int) (record, error) {
	rec, err := c.fetchYear(ctx, year)
	if isNotFound(err) {
		c.log(ctx).LogAttrs(ctx, slog.LevelDebug, "no stats for year yet, trying the previous one",
			xslog.Year(year),
		)
		rec, err = c.fetchYear(ctx, year-1)
	}
	if err != nil {
		return record{}, fmt.Errorf("fetching stats: %w", err)
	}
	return rec, nil
}

func (c *Client) fetchYear(ctx context.Context, year int) (record, error) {
	var recs []record
	if err := c.getJSON(ctx, statsPath(year), &recs); err != nil {
		return record{}, err
	}
	if len(recs) == 0 {
		return record{}, ErrNoData
	}
	return recs[0], nil
}

// FetchOmega reads the Omega Shift flag. The page is a bare 0 or 1; anything
// else is unknown.
func (c *Client) FetchOmega(ctx context.Context) (stats.Omega, error) {
	body, err := c.get(ctx, omegaPath)
	if err != nil {
		return stats.OmegaUnknown, fmt.Errorf("fetching omega flag: %w", err)
	}
	switch strings.TrimSpace(string(body)) {
	case "1":
		return stats.OmegaTrue, nil
	case "0":
		return stats.OmegaFalse, nil
	default:
		return stats.OmegaUnknown, fmt.Errorf("unexpected omega flag %q", truncate(string(body), 32))
	}
}

func snapshot(rec record, omega stats.Omega, now time.Time) *stats.Snapshot {
	s := &stats.Snapshot{
		FetchedAt:     now,
		DonationTotal: rec.Donations.Float(),
		Odometer:      rec.Odometer.Float(),
		Points:        rec.Points.Int(),
		Crashes:       rec.Crashes.Int(),
		Splats:        rec.Splats.Int(),
		Stops:         rec.Stops.Int(),
		IsLive:        bool(rec.IsLive),
		Omega:         omega,
	}
	s.GoingToTucson = stats.GoingToTucson(s.Odometer)
	s.TotalHours = stats.TotalHours(s.DonationTotal)
	s.ToNextHour = stats.ToNextHour(s.DonationTotal)
	if start := int64(rec.RunStart); start > 0 {
		s.RunStart = time.Unix(start, 0)
		s.HoursBussed, s.MinutesBussed = stats.Bussed(s.RunStart, now)
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
