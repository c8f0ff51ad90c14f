package display

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestJustify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{name: "center even", fn: Center, in: "JOCKO", want: "     JOCKO      "},
		{name: "center exact", fn: Center, in: "0123456789abcdef", want: "0123456789abcdef"},
		{name: "center too long", fn: Center, in: "0123456789abcdefXYZ", want: "0123456789abcdef"},
		{name: "center empty", fn: Center, in: "", want: Blank},
		{name: "left", fn: Left, in: "Main Menu", want: "Main Menu       "},
		{name: "right", fn: Right, in: "Tests", want: "           Tests"},
		{name: "right too long", fn: Right, in: "Only in-season plus", want: "Only in-season p"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.fn(tt.in)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if n := len([]rune(got)); n != Width {
				t.Errorf("width = %d, want %d", n, Width)
			}
		})
	}
}

func TestEdges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		prev Buttons
		curr Buttons
		want Buttons
	}{
		{
			name: "nothing held",
			want: Buttons{},
		},
		{
			name: "fresh press",
			curr: Buttons{Select: true},
			want: Buttons{Select: true},
		},
		{
			name: "held from previous tick",
			prev: Buttons{Select: true},
			curr: Buttons{Select: true},
			want: Buttons{},
		},
		{
			name: "release is not an edge",
			prev: Buttons{Back: true},
			curr: Buttons{},
			want: Buttons{},
		},
		{
			name: "mixed",
			prev: Buttons{Plus: true},
			curr: Buttons{Plus: true, Minus: true, Back: true},
			want: Buttons{Minus: true, Back: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, Edges(tt.prev, tt.curr)); diff != "" {
				t.Errorf("Edges() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLogOnlyOnChange(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := NewLog(slog.New(slog.NewJSONHandler(&buf, nil)))

	sink.Show(Center("a"), Blank)
	sink.Show(Center("a"), Blank)
	sink.Show(Center("b"), Blank)
	sink.SetColor(Color{R: 10})
	sink.SetColor(Color{R: 10})

	if got := strings.Count(buf.String(), "\n"); got != 3 {
		t.Errorf("logged %d lines, want 3:\n%s", got, buf.String())
	}
}

func TestMulti(t *testing.T) {
	t.Parallel()

	a, b := NewMemory(), NewMemory()
	sink := Multi(a, b)

	sink.Show(Center("Desert Bus"), Right("$1.00"))
	sink.SetColor(Color{R: 95})

	for i, m := range []*Memory{a, b} {
		l1, l2 := m.Lines()
		if l1 != Center("Desert Bus") || l2 != Right("$1.00") {
			t.Errorf("sink %d lines = %q / %q", i, l1, l2)
		}
		if m.Color() != (Color{R: 95}) {
			t.Errorf("sink %d color = %+v", i, m.Color())
		}
	}
}
