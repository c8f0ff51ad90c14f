// Package tui is the terminal stand-in for the real panel: the LCD drawn in
// the backlight's color, and the keyboard as the four buttons.
package tui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dbpibus/dbpibus/internal/app"
	"github.com/dbpibus/dbpibus/internal/tui/components/footer"
	"github.com/dbpibus/dbpibus/internal/tui/components/lcd"
	"github.com/dbpibus/dbpibus/internal/tui/page/splash"
	"github.com/dbpibus/dbpibus/internal/tui/theme"
)

var _ tea.Model = (*Model)(nil)

type page uint

const (
	splashPage page = iota
	panelPage
)

// Ticker is the display loop as the simulator drives it. *app.Loop
// satisfies it.
type Ticker interface {
	Tick()
	Status() app.Status
}

type Deps struct {
	Loop     Ticker
	Buttons  *KeyButtons
	Interval time.Duration
}

type Model struct {
	ready          bool
	page           page
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	deps           Deps
}

func New(deps Deps) Model {
	if deps.Interval <= 0 {
		deps.Interval = app.DefaultTickInterval
	}
	return Model{
		page:  splashPage,
		theme: theme.New(),
		deps:  deps,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(splash.Duration, func(time.Time) tea.Msg {
			return SplashTickMsg{}
		}),
		m.tick(),
	)
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.deps.Interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true

	case tea.KeyPressMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			if m.page == splashPage {
				// any key skips the splash; button keys also count as presses
				m.page = panelPage
			}
			m.deps.Buttons.Press(key)
		}

	case SplashTickMsg:
		m.page = panelPage

	// the loop runs under the splash too, so the first fetch is not wasted
	case TickMsg:
		m.deps.Loop.Tick()
		return m, m.tick()
	}

	return m, nil
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true

	if m.page == splashPage {
		view.BackgroundColor = theme.ColorBlack
	} else {
		view.BackgroundColor = m.theme.Background()
	}

	if !m.ready {
		return view
	}

	var content string
	switch m.page {
	case splashPage:
		content = splash.View(m.theme, m.viewportWidth, m.viewportHeight)
	case panelPage:
		body := lipgloss.Place(
			m.viewportWidth,
			max(m.viewportHeight-1, 0),
			lipgloss.Center,
			lipgloss.Center,
			m.PanelView(),
		)
		content = body + "\n" + footer.New(m.theme, legend, m.viewportWidth).Render()
	}

	view.SetContent(content)
	return view
}

// PanelView is the LCD with a line of status under it.
func (m *Model) PanelView() string {
	st := m.deps.Loop.Status()
	panel := lcd.Panel{Line1: st.Line1, Line2: st.Line2, Backlight: st.Color}
	return lipgloss.JoinVertical(lipgloss.Center,
		panel.Render(),
		"",
		m.theme.Dim().Render(statusLine(st)),
	)
}

func statusLine(st app.Status) string {
	parts := []string{st.Shift, st.View}
	switch {
	case !st.PollerAlive:
		parts = append(parts, "stats poller stalled")
	case st.Stats == nil:
		parts = append(parts, "waiting for stats")
	case st.Stats.IsLive:
		parts = append(parts, "live")
	default:
		parts = append(parts, "offseason")
	}
	return strings.Join(parts, " · ")
}

var legend = []footer.Hint{
	{Keys: "1/esc", Label: "back"},
	{Keys: "2/-", Label: "minus"},
	{Keys: "3/+", Label: "plus"},
	{Keys: "4/enter", Label: "select"},
	{Keys: "q", Label: "quit"},
}
