package hardware

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"

	"github.com/dbpibus/dbpibus/internal/display"
)

const pwmFrequency = 500 * physic.Hertz

// pwmPin is the part of gpio.PinOut the backlight drives.
type pwmPin interface {
	PWM(duty gpio.Duty, f physic.Frequency) error
}

// Backlight is a common-anode RGB LED: a channel is brightest when its pin
// is held low, so duty cycles are inverted.
type Backlight struct {
	red, green, blue pwmPin
}

func newBacklight(red, green, blue pwmPin) *Backlight {
	return &Backlight{red: red, green: green, blue: blue}
}

// Set drives each channel to its percentage. Values over 100 are clamped.
func (b *Backlight) Set(c display.Color) error {
	for _, ch := range []struct {
		name string
		pin  pwmPin
		pct  uint8
	}{
		{"red", b.red, c.R},
		{"green", b.green, c.G},
		{"blue", b.blue, c.B},
	} {
		if err := ch.pin.PWM(duty(ch.pct), pwmFrequency); err != nil {
			return fmt.Errorf("backlight %s: %w", ch.name, err)
		}
	}
	return nil
}

func duty(pct uint8) gpio.Duty {
	if pct > 100 {
		pct = 100
	}
	on := gpio.Duty(int64(gpio.DutyMax) * int64(pct) / 100)
	return gpio.DutyMax - on
}
