// Package lcd draws a 16x2 character display in the terminal.
package lcd

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/dbpibus/dbpibus/internal/display"
	"github.com/dbpibus/dbpibus/internal/tui/theme"
)

// Panel is the glass as of one frame.
type Panel struct {
	Line1, Line2 string
	Backlight    display.Color
}

// Hex converts a backlight color from percent per channel to #RRGGBB.
func Hex(c display.Color) string {
	scale := func(pct uint8) int {
		return int(min(pct, 100)) * 255 / 100
	}
	return fmt.Sprintf("#%02X%02X%02X", scale(c.R), scale(c.G), scale(c.B))
}

// textColor is what lit segments look like: the backlight shining through,
// or barely visible with the backlight off.
func textColor(c display.Color) color.Color {
	if c == (display.Color{}) {
		return theme.ColorUnlit
	}
	return lipgloss.Color(Hex(c))
}

func (p Panel) Render() string {
	glass := lipgloss.NewStyle().
		Foreground(textColor(p.Backlight)).
		Background(theme.ColorGlass).
		Bold(true).
		Padding(0, 1)

	body := lipgloss.JoinVertical(lipgloss.Left,
		glass.Render(display.Left(p.Line1)),
		glass.Render(display.Left(p.Line2)),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(theme.ColorBezel).
		Padding(1, 2).
		Render(body)
}
