// Package footer is the bottom line of the simulator: build version on the
// left, the key legend flush right.
package footer

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dbpibus/dbpibus/internal/tui/theme"
)

const padding = 2

// Hint is one legend entry, e.g. "4/enter" "select".
type Hint struct {
	Keys  string
	Label string
}

type Footer struct {
	theme theme.Theme
	hints []Hint
	width int
}

func New(t theme.Theme, hints []Hint, width int) Footer {
	return Footer{theme: t, hints: hints, width: width}
}

func (f Footer) Render() string {
	left := f.theme.Dim().Render(versionLabel())
	right := f.legend()

	spacer := max(f.width-lipgloss.Width(left)-lipgloss.Width(right)-padding*2, 1)

	return lipgloss.NewStyle().
		PaddingLeft(padding).
		PaddingRight(padding).
		Render(left + strings.Repeat(" ", spacer) + right)
}

func (f Footer) legend() string {
	rendered := make([]string, len(f.hints))
	for i, h := range f.hints {
		rendered[i] = f.theme.KeyHint().Render(h.Keys) + " " + f.theme.Dim().Render(h.Label)
	}
	return strings.Join(rendered, "  ")
}
