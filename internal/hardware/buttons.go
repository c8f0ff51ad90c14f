package hardware

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"

	"github.com/dbpibus/dbpibus/internal/display"
)

// inPin is the part of gpio.PinIn the buttons use.
type inPin interface {
	In(pull gpio.Pull, edge gpio.Edge) error
	Read() gpio.Level
}

// Buttons are four momentary switches to ground with the SoC's pull-ups
// enabled, so a pressed button reads low.
type Buttons struct {
	back, minus, plus, sel inPin
}

var _ display.ButtonSource = (*Buttons)(nil)

func newButtons(back, minus, plus, sel inPin) (*Buttons, error) {
	for name, p := range map[string]inPin{"back": back, "minus": minus, "plus": plus, "select": sel} {
		if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("button %s: %w", name, err)
		}
	}
	return &Buttons{back: back, minus: minus, plus: plus, sel: sel}, nil
}

func (b *Buttons) Sample() display.Buttons {
	return display.Buttons{
		Back:   b.back.Read() == gpio.Low,
		Minus:  b.minus.Read() == gpio.Low,
		Plus:   b.plus.Read() == gpio.Low,
		Select: b.sel.Read() == gpio.Low,
	}
}
