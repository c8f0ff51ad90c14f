package event

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/dbpibus/dbpibus/internal/anim"
	"github.com/dbpibus/dbpibus/internal/stats"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	base := &stats.Snapshot{Points: 10, Crashes: 2, Splats: 40, Stops: 1}

	tests := []struct {
		name string
		prev *stats.Snapshot
		curr *stats.Snapshot
		want []Kind
	}{
		{name: "no previous", prev: nil, curr: base, want: nil},
		{name: "no current", prev: base, curr: nil, want: nil},
		{name: "unchanged", prev: base, curr: base, want: nil},
		{
			name: "point",
			prev: base,
			curr: &stats.Snapshot{Points: 11, Crashes: 2, Splats: 40, Stops: 1},
			want: []Kind{Point},
		},
		{
			name: "point splat crash ordered by priority",
			prev: base,
			curr: &stats.Snapshot{Points: 12, Crashes: 3, Splats: 41, Stops: 1},
			want: []Kind{Point, Splat, Crash},
		},
		{
			name: "everything",
			prev: base,
			curr: &stats.Snapshot{Points: 11, Crashes: 3, Splats: 41, Stops: 2},
			want: []Kind{Point, Splat, Stop, Crash},
		},
		{
			name: "decrease is not an event",
			prev: base,
			curr: &stats.Snapshot{Points: 0, Crashes: 0, Splats: 0, Stops: 0},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, Detect(tt.prev, tt.curr)); diff != "" {
				t.Errorf("Detect() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPriorities(t *testing.T) {
	t.Parallel()

	want := map[Kind]int{Point: 6, Splat: 7, Stop: 8, Crash: 9}
	for k, p := range want {
		if k.Priority() != p {
			t.Errorf("%v priority = %d, want %d", k, k.Priority(), p)
		}
	}
}

func TestFramesArePlayable(t *testing.T) {
	t.Parallel()

	for _, k := range All {
		if _, err := anim.Prepare(k.Frames(), time.Now()); err != nil {
			t.Errorf("%v: %v", k, err)
		}
		if anim.Total(k.Frames()) < 3*time.Second {
			t.Errorf("%v plays for %v, too short to notice", k, anim.Total(k.Frames()))
		}
	}
}
