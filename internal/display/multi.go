package display

type multi []Sink

// Multi fans every call out to each sink in order.
func Multi(sinks ...Sink) Sink {
	return multi(sinks)
}

func (m multi) Show(line1, line2 string) {
	for _, s := range m {
		s.Show(line1, line2)
	}
}

func (m multi) SetColor(c Color) {
	for _, s := range m {
		s.SetColor(c)
	}
}
