package tui

import (
	"time"

	"github.com/dbpibus/dbpibus/internal/clock"
	"github.com/dbpibus/dbpibus/internal/display"
)

// HoldWindow is how long one key press keeps a button down. Terminals send
// no key-up, so presses are held for a couple of ticks and then let go.
const HoldWindow = 120 * time.Millisecond

type button int

const (
	buttonBack button = iota
	buttonMinus
	buttonPlus
	buttonSelect
	buttonCount
)

var keyButtons = map[string]button{
	"1":     buttonBack,
	"esc":   buttonBack,
	"2":     buttonMinus,
	"-":     buttonMinus,
	"3":     buttonPlus,
	"+":     buttonPlus,
	"=":     buttonPlus,
	"4":     buttonSelect,
	"enter": buttonSelect,
}

type hold struct {
	until time.Time
	// release forces one released sample so a second press while still held
	// is seen as a new edge.
	release bool
}

// KeyButtons turns key presses into a display.ButtonSource. It is used from
// the bubbletea update goroutine only.
type KeyButtons struct {
	clock clock.Clock
	holds [buttonCount]hold
}

var _ display.ButtonSource = (*KeyButtons)(nil)

func NewKeyButtons(c clock.Clock) *KeyButtons {
	if c == nil {
		c = clock.Real{}
	}
	return &KeyButtons{clock: c}
}

// Press handles a key, reporting whether it was a button key.
func (k *KeyButtons) Press(key string) bool {
	b, ok := keyButtons[key]
	if !ok {
		return false
	}
	now := k.clock.Now()
	h := &k.holds[b]
	if now.Before(h.until) {
		h.release = true
	}
	h.until = now.Add(HoldWindow)
	return true
}

func (k *KeyButtons) Sample() display.Buttons {
	now := k.clock.Now()
	down := func(b button) bool {
		h := &k.holds[b]
		if h.release {
			h.release = false
			return false
		}
		return now.Before(h.until)
	}
	return display.Buttons{
		Back:   down(buttonBack),
		Minus:  down(buttonMinus),
		Plus:   down(buttonPlus),
		Select: down(buttonSelect),
	}
}
