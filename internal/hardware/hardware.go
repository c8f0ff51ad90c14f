// Package hardware drives the real panel through periph.io: an HD44780 16x2
// LCD on six GPIOs, an RGB backlight on three PWM pins, and four buttons.
package hardware

import (
	"errors"
	"fmt"
	"log/slog"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/dbpibus/dbpibus/internal/config"
	"github.com/dbpibus/dbpibus/internal/display"
	"github.com/dbpibus/dbpibus/internal/xslog"
)

// Panel is the LCD plus its backlight as one display.Sink, and the buttons.
type Panel struct {
	lcd       *LCD
	backlight *Backlight
	buttons   *Buttons
	logger    *slog.Logger
}

var _ display.Sink = (*Panel)(nil)

// Open initializes the host drivers and claims every pin in pins.
func Open(pins config.Pins, logger *slog.Logger) (*Panel, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("initializing periph host: %w", err)
	}

	var errs []error
	pin := func(name string) gpio.PinIO {
		p := gpioreg.ByName(name)
		if p == nil {
			errs = append(errs, fmt.Errorf("no gpio named %q", name))
		}
		return p
	}

	rs, e := pin(pins.LCDRS), pin(pins.LCDE)
	d4, d5, d6, d7 := pin(pins.LCDD4), pin(pins.LCDD5), pin(pins.LCDD6), pin(pins.LCDD7)
	red, green, blue := pin(pins.Red), pin(pins.Green), pin(pins.Blue)
	back, minus, plus, sel := pin(pins.Back), pin(pins.Minus), pin(pins.Plus), pin(pins.Select)
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	lcd, err := openLCD(rs, e, [4]gpio.PinOut{d4, d5, d6, d7})
	if err != nil {
		return nil, err
	}
	buttons, err := newButtons(back, minus, plus, sel)
	if err != nil {
		return nil, err
	}

	logger.Info("panel ready", slog.String("lcd_rs", pins.LCDRS), slog.String("select", pins.Select))
	return &Panel{
		lcd:       lcd,
		backlight: newBacklight(red, green, blue),
		buttons:   buttons,
		logger:    logger,
	}, nil
}

func (p *Panel) Show(line1, line2 string) {
	p.lcd.Show(line1, line2)
	if err := p.lcd.Err(); err != nil {
		p.logger.Error("lcd write failed", xslog.Error(err))
	}
}

func (p *Panel) SetColor(c display.Color) {
	if err := p.backlight.Set(c); err != nil {
		p.logger.Error("backlight write failed", xslog.Error(err))
	}
}

func (p *Panel) Buttons() display.ButtonSource {
	return p.buttons
}

// Close blanks the display and turns the backlight off.
func (p *Panel) Close() error {
	return errors.Join(p.lcd.Clear(), p.backlight.Set(display.Color{}))
}
