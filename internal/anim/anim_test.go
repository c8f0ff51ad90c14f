package anim

import (
	"errors"
	"testing"
	"time"

	"github.com/dbpibus/dbpibus/internal/display"
	"github.com/google/go-cmp/cmp"
)

var (
	start = time.Date(2025, time.November, 14, 12, 0, 0, 0, time.UTC)

	testFrames = []Frame{
		{Duration: 100 * time.Millisecond, Line1: display.Center("one"), Line2: display.Blank},
		{Duration: 200 * time.Millisecond, Line1: display.Center("two"), Line2: display.Blank},
		{Duration: 300 * time.Millisecond, Line1: display.Center("three"), Line2: display.Blank},
	}
)

func TestPrepareRejectsBadLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		frames    []Frame
		wantIndex int
	}{
		{
			name:      "short first line",
			frames:    []Frame{{Duration: time.Second, Line1: "short", Line2: display.Blank}},
			wantIndex: 0,
		},
		{
			name: "empty second line on later frame",
			frames: []Frame{
				{Duration: time.Second, Line1: display.Blank, Line2: display.Blank},
				{Duration: time.Second, Line1: display.Blank, Line2: ""},
			},
			wantIndex: 1,
		},
		{
			name:      "too long",
			frames:    []Frame{{Duration: time.Second, Line1: "0123456789abcdefg", Line2: display.Blank}},
			wantIndex: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Prepare(tt.frames, start)
			var invalid *InvalidAnimationError
			if !errors.As(err, &invalid) {
				t.Fatalf("Prepare() error = %v, want *InvalidAnimationError", err)
			}
			if invalid.Index != tt.wantIndex {
				t.Errorf("Index = %d, want %d", invalid.Index, tt.wantIndex)
			}
		})
	}
}

func TestMustFramesPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustFrames([]Frame{{Duration: time.Second, Line1: "x", Line2: "y"}})
}

func TestAdvance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		at       time.Duration
		wantLine string
		wantDone bool
	}{
		{name: "start", at: 0, wantLine: display.Center("one")},
		{name: "inside first", at: 99 * time.Millisecond, wantLine: display.Center("one")},
		{name: "boundary moves on", at: 100 * time.Millisecond, wantLine: display.Center("two")},
		{name: "skips frames on a slow tick", at: 350 * time.Millisecond, wantLine: display.Center("three")},
		{name: "exact end", at: 600 * time.Millisecond, wantDone: true},
		{name: "past end", at: time.Hour, wantDone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := Prepare(testFrames, start)
			if err != nil {
				t.Fatalf("Prepare() error = %v", err)
			}
			sink := display.NewMemory()

			done := s.Advance(start.Add(tt.at), sink)
			if done != tt.wantDone {
				t.Fatalf("Advance() = %v, want %v", done, tt.wantDone)
			}
			if tt.wantDone {
				if sink.Shows() != 0 {
					t.Errorf("finished schedule showed %d frames", sink.Shows())
				}
				return
			}
			if got, _ := sink.Lines(); got != tt.wantLine {
				t.Errorf("line1 = %q, want %q", got, tt.wantLine)
			}
		})
	}
}

func TestAdvanceSequence(t *testing.T) {
	t.Parallel()

	s := MustPrepare(testFrames, start)
	sink := display.NewMemory()

	var seen []string
	for now := start; ; now = now.Add(35 * time.Millisecond) {
		if s.Advance(now, sink) {
			if now.Before(start.Add(Total(testFrames))) {
				t.Fatalf("finished at %v, before the end", now.Sub(start))
			}
			break
		}
		l1, _ := sink.Lines()
		if len(seen) == 0 || seen[len(seen)-1] != l1 {
			seen = append(seen, l1)
		}
	}

	want := []string{display.Center("one"), display.Center("two"), display.Center("three")}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Errorf("frames mismatch (-want +got):\n%s", diff)
	}
}

func TestAdvanceIdempotentAfterFinish(t *testing.T) {
	t.Parallel()

	s := MustPrepare(testFrames, start)
	sink := display.NewMemory()
	end := start.Add(time.Second)

	for range 5 {
		if !s.Advance(end, sink) {
			t.Fatal("Advance() = false after the end")
		}
	}
	if sink.Shows() != 0 {
		t.Errorf("showed %d frames after finishing", sink.Shows())
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	s := MustPrepare(testFrames, start)
	s.Clear()
	if !s.Advance(start, display.NewMemory()) {
		t.Error("Advance() after Clear() = false, want true")
	}

	var zero Schedule
	if !zero.Advance(start, display.NewMemory()) {
		t.Error("zero Schedule Advance() = false, want true")
	}
}

func TestEmptyFrames(t *testing.T) {
	t.Parallel()

	s := MustPrepare(nil, start)
	if !s.Done(start) {
		t.Error("Done() on empty animation = false, want true")
	}
}

func TestRepeat(t *testing.T) {
	t.Parallel()

	got := Repeat(testFrames[:1], 3)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if Total(got) != 300*time.Millisecond {
		t.Errorf("Total = %v, want 300ms", Total(got))
	}
}
