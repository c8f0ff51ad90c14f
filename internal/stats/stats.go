// Package stats holds the per-fetch snapshot of the run and the arithmetic
// derived from the raw tracker numbers.
package stats

import (
	"math"
	"time"
)

// Omega is the tri-state Omega Shift flag. Unknown means the check failed and
// must never be read as "Omega is over".
type Omega int

const (
	OmegaUnknown Omega = iota
	OmegaFalse
	OmegaTrue
)

func (o Omega) String() string {
	switch o {
	case OmegaFalse:
		return "false"
	case OmegaTrue:
		return "true"
	default:
		return "unknown"
	}
}

func (o Omega) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Snapshot is one fetch worth of data. It is never mutated after it has been
// published; a nil *Snapshot means nothing has been fetched yet.
type Snapshot struct {
	FetchedAt     time.Time `json:"fetched_at"`
	DonationTotal float64   `json:"donation_total"`
	ToNextHour    float64   `json:"to_next_hour"`
	HoursBussed   int       `json:"hours_bussed"`
	MinutesBussed int       `json:"minutes_bussed"`
	TotalHours    int       `json:"total_hours"`
	Odometer      float64   `json:"odometer"`
	Points        int       `json:"points"`
	Crashes       int       `json:"crashes"`
	Splats        int       `json:"splats"`
	Stops         int       `json:"stops"`
	RunStart      time.Time `json:"run_start"`
	IsLive        bool      `json:"is_live"`
	Omega         Omega     `json:"omega"`
	GoingToTucson bool      `json:"going_to_tucson"`
}

// Stale reports whether the snapshot is older than after as of now.
func (s *Snapshot) Stale(now time.Time, after time.Duration) bool {
	return now.Sub(s.FetchedAt) > after
}

const (
	// OdometerOffset is the odometer reading when the bus first left Tucson.
	OdometerOffset = 70109.3
	// MilesPerLeg is the Tucson to Las Vegas distance.
	MilesPerLeg = 360

	// first hour costs FirstHourCost, every hour after costs HourGrowth more
	// than the one before it.
	FirstHourCost = 1.0
	HourGrowth    = 0.07
)

// GoingToTucson reports the direction of the bus from its odometer. Even legs
// run Tucson to Vegas, odd legs run back.
func GoingToTucson(odometer float64) bool {
	trips := math.Floor((odometer - OdometerOffset) / MilesPerLeg)
	return trips >= 0 && math.Mod(trips, 2) == 1
}

// Bussed splits the time since the run started into whole hours and minutes.
// A start in the future yields zeros.
func Bussed(start, now time.Time) (hours, minutes int) {
	d := now.Sub(start)
	if d < 0 {
		return 0, 0
	}
	return int(d / time.Hour), int(d % time.Hour / time.Minute)
}

// costOf is the total donated when the bus has been given hours hours.
func costOf(hours int) float64 {
	return FirstHourCost * (math.Pow(1+HourGrowth, float64(hours)) - 1) / HourGrowth
}

// TotalHours is how many hours the donation total buys.
func TotalHours(donations float64) int {
	if donations <= 0 {
		return 0
	}
	h := int(math.Floor(math.Log(donations*HourGrowth/FirstHourCost+1) / math.Log(1+HourGrowth)))
	// float log can land a hair either side of an exact boundary
	for h > 0 && costOf(h) > donations+1e-9 {
		h--
	}
	for costOf(h+1) <= donations+1e-9 {
		h++
	}
	return h
}

// ToNextHour is how much more is needed to add one more hour.
func ToNextHour(donations float64) float64 {
	if donations < 0 {
		donations = 0
	}
	return costOf(TotalHours(donations)+1) - donations
}
