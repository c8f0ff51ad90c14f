// Package display describes the two-line character LCD the views draw on and
// the four-button panel that drives them.
package display

const (
	Width = 16
	Rows  = 2
)

// Color is a backlight color in percent per channel (0-100), which is what the
// RGB backlight PWM duty cycles are expressed in.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Sink is where rendered text ends up. Lines are expected to be exactly Width
// runes; callers do their own justification.
type Sink interface {
	Show(line1, line2 string)
	SetColor(c Color)
}

// Buttons is one atomic sample of the panel, active-high.
type Buttons struct {
	Back   bool
	Minus  bool
	Plus   bool
	Select bool
}

func (b Buttons) Any() bool {
	return b.Back || b.Minus || b.Plus || b.Select
}

// ButtonSource samples all four buttons at once.
type ButtonSource interface {
	Sample() Buttons
}

// Input is what a view sees for one tick: the raw held state plus the rising
// edges computed against the previous tick's sample.
type Input struct {
	Held    Buttons
	Pressed Buttons
}

// Edges returns the buttons that are down in curr but were up in prev.
func Edges(prev, curr Buttons) Buttons {
	return Buttons{
		Back:   curr.Back && !prev.Back,
		Minus:  curr.Minus && !prev.Minus,
		Plus:   curr.Plus && !prev.Plus,
		Select: curr.Select && !prev.Select,
	}
}
