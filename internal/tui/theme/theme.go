// Package theme holds the simulator's colors and the styles built from them.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Theme is built once; styles are values, so callers can extend them freely.
type Theme struct {
	background color.Color
	logo       lipgloss.Style
	keyHint    lipgloss.Style
	dim        lipgloss.Style
}

func New() Theme {
	return Theme{
		background: ColorBgDark,
		logo:       lipgloss.NewStyle().Foreground(ColorKeyHint).Bold(true),
		keyHint:    lipgloss.NewStyle().Foreground(ColorKeyHint).Bold(true),
		dim:        lipgloss.NewStyle().Foreground(ColorDim),
	}
}

// Logo styles the splash wordmark.
func (t Theme) Logo() lipgloss.Style { return t.logo }

// KeyHint styles the key names in the button legend.
func (t Theme) KeyHint() lipgloss.Style { return t.keyHint }

func (t Theme) Dim() lipgloss.Style { return t.dim }

// Background is the terminal fill behind the panel page.
func (t Theme) Background() color.Color { return t.background }
