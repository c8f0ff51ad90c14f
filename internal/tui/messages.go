package tui

import "time"

// TickMsg drives one frame of the display loop.
type TickMsg time.Time

type SplashTickMsg struct{}
