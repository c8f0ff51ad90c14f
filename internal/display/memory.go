package display

import "sync"

// Memory keeps the last thing shown. The simulator renders from it and tests
// assert against it.
type Memory struct {
	mu     sync.RWMutex
	line1  string
	line2  string
	color  Color
	shows  int
	colors int
}

var _ Sink = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{line1: Blank, line2: Blank}
}

func (m *Memory) Show(line1, line2 string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.line1, m.line2 = line1, line2
	m.shows++
}

func (m *Memory) SetColor(c Color) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.color = c
	m.colors++
}

func (m *Memory) Lines() (string, string) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.line1, m.line2
}

func (m *Memory) Color() Color {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.color
}

// Shows counts Show calls.
func (m *Memory) Shows() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.shows
}

// ColorChanges counts SetColor calls.
func (m *Memory) ColorChanges() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.colors
}
