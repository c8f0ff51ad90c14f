package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack  = lipgloss.Color("#000000")
	ColorDim    = lipgloss.Color("#666666")
	ColorBgDark = lipgloss.Color("#101518")
)

var (
	ColorBezel   = lipgloss.Color("#2B2B2B") // plastic around the glass
	ColorGlass   = lipgloss.Color("#050805") // unlit LCD
	ColorUnlit   = lipgloss.Color("#1E2A1E") // text with the backlight off
	ColorKeyHint = lipgloss.Color("#C8A400") // bus yellow
)
