package shift

import (
	"strings"
	"time"

	"github.com/dbpibus/dbpibus/internal/anim"
	"github.com/dbpibus/dbpibus/internal/display"
)

// Transition returns the frames played when s begins.
func Transition(s Shift) []anim.Frame {
	return transitions[s]
}

var transitions = map[Shift][]anim.Frame{
	DawnGuard:   anim.MustFrames(dawnGuard()),
	AlphaFlight: anim.MustFrames(alphaFlight()),
	NightWatch:  anim.MustFrames(nightWatch()),
	ZetaShift:   anim.MustFrames(zetaShift()),
	OmegaShift:  anim.MustFrames(omegaShift()),
}

const typeRate = 80 * time.Millisecond

func dawnGuard() []anim.Frame {
	const title = "DAWN GUARD"
	frames := typeOn(title, display.Blank)
	for _, sun := range []string{".", "o", "(o)", "-(O)-", "--(O)--", "=--(O)--=", "-=--(O)--=-"} {
		frames = append(frames, anim.Frame{Duration: 150 * time.Millisecond, Line1: display.Center(title), Line2: display.Center(sun)})
	}
	return append(frames, anim.Frame{Duration: 2500 * time.Millisecond, Line1: display.Center(title), Line2: display.Center("Good morning!")})
}

func alphaFlight() []anim.Frame {
	const title = "ALPHA FLIGHT"
	frames := typeOn(title, display.Blank)
	for x := -3; x <= display.Width; x++ {
		frames = append(frames, anim.Frame{Duration: 60 * time.Millisecond, Line1: display.Center(title), Line2: place("-=>", x)})
	}
	return append(frames, anim.Frame{Duration: 2500 * time.Millisecond, Line1: display.Center(title), Line2: display.Center("Cleared to fly")})
}

func nightWatch() []anim.Frame {
	const title = "NIGHT WATCH"
	frames := typeOn(title, display.Blank)
	sky := []string{
		" .     *    .   ",
		"   *      .    *",
		".    .  *     . ",
		"  *     .   *   ",
		"     *     .   .",
		" .  *    .    * ",
	}
	for range 2 {
		for _, s := range sky {
			frames = append(frames, anim.Frame{Duration: 150 * time.Millisecond, Line1: display.Center(title), Line2: s})
		}
	}
	return append(frames, anim.Frame{Duration: 2500 * time.Millisecond, Line1: display.Center(title), Line2: display.Center("Stay awake...")})
}

func zetaShift() []anim.Frame {
	const title = "ZETA SHIFT"
	frames := typeOn(title, display.Blank)
	for _, z := range []string{"z", "z Z", "z Z z", "z Z z Z", "z Z z Z z", "Z z Z z Z z Z"} {
		frames = append(frames, anim.Frame{Duration: 250 * time.Millisecond, Line1: display.Center(title), Line2: display.Center(z)})
	}
	return append(frames, anim.Frame{Duration: 2500 * time.Millisecond, Line1: display.Center(title), Line2: display.Center("Weirdness ahead")})
}

func omegaShift() []anim.Frame {
	const title = "OMEGA SHIFT"
	var frames []anim.Frame
	for range 6 {
		frames = append(frames,
			anim.Frame{Duration: 250 * time.Millisecond, Line1: display.Center(title), Line2: display.Blank},
			anim.Frame{Duration: 250 * time.Millisecond, Line1: display.Blank, Line2: display.Blank},
		)
	}
	for i := range 8 {
		marquee := strings.Repeat(" ", i%2) + strings.Repeat("* ", display.Width)
		frames = append(frames, anim.Frame{Duration: 150 * time.Millisecond, Line1: display.Center(title), Line2: string([]rune(marquee)[:display.Width])})
	}
	return append(frames, anim.Frame{Duration: 3000 * time.Millisecond, Line1: display.Center(title), Line2: display.Center("The end is nigh")})
}

// typeOn reveals title one character at a time, centered, with a cursor that
// flickers between "-" and "+" the way the point animation does.
func typeOn(title, line2 string) []anim.Frame {
	full := []rune(display.Center(title))
	start := (display.Width - len([]rune(title))) / 2

	var frames []anim.Frame
	for n := 0; n <= len([]rune(title)); n++ {
		for _, cursor := range []rune{'-', '+'} {
			line := []rune(display.Blank)
			copy(line[start:start+n], full[start:start+n])
			if c := start + n; c < display.Width {
				line[c] = cursor
			}
			frames = append(frames, anim.Frame{Duration: typeRate, Line1: string(line), Line2: line2})
		}
	}
	return append(frames, anim.Frame{Duration: 300 * time.Millisecond, Line1: string(full), Line2: line2})
}

// place draws sprite on a blank line with its first rune at column x,
// clipping whatever falls off either edge.
func place(sprite string, x int) string {
	line := []rune(display.Blank)
	for i, r := range []rune(sprite) {
		if c := x + i; c >= 0 && c < display.Width {
			line[c] = r
		}
	}
	return string(line)
}
