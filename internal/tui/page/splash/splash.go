package splash

import (
	"time"

	"charm.land/lipgloss/v2"

	"github.com/dbpibus/dbpibus/internal/tui/theme"
)

// Duration is how long the splash stays up unless a key skips it.
const Duration = 1500 * time.Millisecond

const Logo = `
 ▄▄▄▄▄   ▄▄▄▄▄   ▄▄▄▄▄   ▄▄▄▄▄▄  ▄▄▄▄▄   ▄▄  ▄▄   ▄▄▄▄▄
 ██  ██  ██  ██  ██  ██    ██    ██  ██  ██  ██  ██▀▀▀
 ██  ██  █████   █████     ██    █████   ██  ██   ▀▀██▄
 ██▄▄██  ██▄▄██  ██        ██    ██▄▄██  ▀█▄▄█▀  ▄▄▄▄██
 ▀▀▀▀▀   ▀▀▀▀▀   ▀▀      ▀▀▀▀▀▀  ▀▀▀▀▀    ▀▀▀▀   ▀▀▀▀▀`

const Tagline = "Desert Bus for Hope home verisimulator"

func LogoView(t theme.Theme) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		t.Logo().Render(Logo),
		"",
		t.Dim().Render(Tagline),
	)
}

func View(t theme.Theme, width, height int) string {
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		LogoView(t),
	)
}
