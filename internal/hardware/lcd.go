package hardware

import (
	"fmt"
	"strings"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/devices/v3/hd44780"

	"github.com/dbpibus/dbpibus/internal/display"
)

// controller is the part of *hd44780.Dev the LCD uses.
type controller interface {
	Cls() error
	SetCursor(line, column uint8) error
	Print(data string) error
}

var _ controller = (*hd44780.Dev)(nil)

// LCD is a 16x2 HD44780 in 4-bit mode. It remembers what is on the glass and
// only rewrites rows that changed, since every byte costs a bus cycle.
type LCD struct {
	dev   controller
	lines [display.Rows]string
	err   error
}

// openLCD resets the controller on rs, e and the four high data lines.
func openLCD(rs, e gpio.PinOut, data [4]gpio.PinOut) (*LCD, error) {
	dev, err := hd44780.New(data[:], rs, e)
	if err != nil {
		return nil, fmt.Errorf("initializing lcd: %w", err)
	}
	return newLCD(dev)
}

func newLCD(dev controller) (*LCD, error) {
	l := &LCD{dev: dev}
	if err := l.Clear(); err != nil {
		return nil, fmt.Errorf("initializing lcd: %w", err)
	}
	return l, nil
}

// Clear blanks the display and forgets what was on it.
func (l *LCD) Clear() error {
	if err := l.dev.Cls(); err != nil {
		return err
	}
	l.lines = [display.Rows]string{}
	return nil
}

// Show writes whichever lines differ from what is already on the glass.
// Errors are sticky and reported by Err; the views have no way to act on them.
func (l *LCD) Show(line1, line2 string) {
	for row, text := range [display.Rows]string{line1, line2} {
		text = display.Left(text)
		if text == l.lines[row] {
			continue
		}
		if err := l.writeLine(row, text); err != nil {
			l.err = err
			// force a rewrite next time
			l.lines[row] = ""
			continue
		}
		l.lines[row] = text
	}
}

// Err is the first write error since the last call, if any.
func (l *LCD) Err() error {
	err := l.err
	l.err = nil
	return err
}

func (l *LCD) writeLine(row int, text string) error {
	if err := l.dev.SetCursor(uint8(row), 0); err != nil {
		return fmt.Errorf("lcd row %d: %w", row, err)
	}
	if err := l.dev.Print(romText(text)); err != nil {
		return fmt.Errorf("lcd row %d: %w", row, err)
	}
	return nil
}

// romText maps text onto the controller's character ROM, one byte per rune.
func romText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		b.WriteByte(glyph(r))
	}
	return b.String()
}

// glyph maps r onto the controller's ROM; everything outside printable
// ASCII shows as a block.
func glyph(r rune) byte {
	if r >= 0x20 && r < 0x7f {
		return byte(r)
	}
	return 0xff
}
