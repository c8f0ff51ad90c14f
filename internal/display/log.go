package display

import (
	"context"
	"log/slog"

	"github.com/dbpibus/dbpibus/internal/xslog"
)

// Log is a headless sink that logs what would be on the LCD whenever it
// changes. Useful on a box without the display wired up.
type Log struct {
	logger *slog.Logger
	line1  string
	line2  string
	color  Color
	shown  bool
}

var _ Sink = (*Log)(nil)

func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) Show(line1, line2 string) {
	if l.shown && line1 == l.line1 && line2 == l.line2 {
		return
	}
	l.line1, l.line2, l.shown = line1, line2, true
	l.logger.LogAttrs(context.Background(), slog.LevelInfo, "lcd", xslog.LCD(line1, line2))
}

func (l *Log) SetColor(c Color) {
	if c == l.color {
		return
	}
	l.color = c
	l.logger.LogAttrs(context.Background(), slog.LevelInfo, "backlight",
		slog.Int("r", int(c.R)),
		slog.Int("g", int(c.G)),
		slog.Int("b", int(c.B)),
	)
}
