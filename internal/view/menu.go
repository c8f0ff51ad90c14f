package view

import (
	"context"
	"log/slog"
	"time"

	"github.com/dbpibus/dbpibus/internal/display"
	"github.com/dbpibus/dbpibus/internal/stats"
	"github.com/dbpibus/dbpibus/internal/version"
	"github.com/dbpibus/dbpibus/internal/xslog"
)

var _ View = (*ServiceMenu)(nil)

// SaveDisplayDuration is how long a setting shows "Saved!" and ignores input
// after select.
const SaveDisplayDuration = time.Second

var (
	pressMenuLine  = display.Center("Press Menu")
	savedLine      = display.Center("Saved!")
	saveFailedLine = display.Center("Save failed!")
)

// menuFrame is one level of the navigation stack. A nil node is the splash
// screen at the bottom.
type menuFrame struct {
	node       *Node
	cursor     int
	savedAt    time.Time
	saveFailed bool

	// pending receives the result of a save still running in the background.
	pending <-chan error
}

// ServiceMenu walks the menu tree with the four buttons. It claims every
// input while it owns the display.
type ServiceMenu struct {
	env   Env
	root  *Node
	stack []*menuFrame
}

func NewServiceMenu(env Env) *ServiceMenu {
	return &ServiceMenu{
		env:   env,
		root:  MenuTree(),
		stack: []*menuFrame{{}},
	}
}

func (m *ServiceMenu) Priority() int { return PriorityMenu }

func (m *ServiceMenu) Name() string { return "ServiceMenu" }

// Depth is the number of levels on the stack, splash included.
func (m *ServiceMenu) Depth() int { return len(m.stack) }

func (m *ServiceMenu) HandleButtons(_ *stats.Snapshot, in display.Input) (View, bool) {
	if len(m.stack) == 0 {
		return nil, true
	}

	top := m.stack[len(m.stack)-1]
	p := in.Pressed

	if top.node == nil {
		switch {
		case p.Select:
			m.push(m.root)
		case p.Back:
			m.pop()
		}
		return nil, true
	}

	switch top.node.Kind {
	case ContainerNode:
		switch {
		case p.Back:
			m.pop()
			return nil, true
		case p.Select:
			m.push(top.node.Children[top.cursor])
			return nil, true
		}
		top.move(p, len(top.node.Children))

	case SettingNode:
		if m.saving(top) {
			return nil, true
		}
		switch {
		case p.Back:
			m.pop()
			return nil, true
		case p.Select:
			m.save(top)
			return nil, true
		}
		top.move(p, len(top.node.Options))

	case TestsNode:
		switch {
		case p.Back:
			m.pop()
			return nil, true
		case p.Select:
			test := top.node.Tests[top.cursor]
			m.env.logger().LogAttrs(context.Background(), slog.LevelInfo, "starting test animation",
				slog.String("test", test.Title),
			)
			return test.New(m.env), true
		}
		top.move(p, len(top.node.Tests))
	}

	return nil, true
}

func (m *ServiceMenu) NextFrame(_ *stats.Snapshot) bool {
	if len(m.stack) == 0 {
		return true
	}
	top := m.stack[len(m.stack)-1]
	if top.pending != nil {
		select {
		case err := <-top.pending:
			m.finishSave(top, err)
		default:
		}
	}
	m.env.Sink.Show(m.lines(top))
	return false
}

func (m *ServiceMenu) lines(f *menuFrame) (string, string) {
	if f.node == nil {
		label := m.env.Version
		if label == "" {
			label = version.Label(version.Get())
		}
		return display.Center("dbpibus " + label), pressMenuLine
	}

	title := display.Left(f.node.Title)
	switch f.node.Kind {
	case ContainerNode:
		return title, display.Right(f.node.Children[f.cursor].Title)
	case SettingNode:
		if m.saving(f) {
			if f.saveFailed {
				return title, saveFailedLine
			}
			return title, savedLine
		}
		return title, display.Right(f.node.Options[f.cursor].Title)
	default:
		return title, display.Right(f.node.Tests[f.cursor].Title)
	}
}

func (m *ServiceMenu) push(n *Node) {
	f := &menuFrame{node: n}
	if n.Kind == SettingNode {
		current := m.env.setting(n.Key)
		for i, o := range n.Options {
			if o.Value == current {
				f.cursor = i
				break
			}
		}
	}
	m.stack = append(m.stack, f)
}

// pop drops the top level. The splash is never left on its own, so backing
// out of the main menu closes the whole thing.
func (m *ServiceMenu) pop() {
	m.stack = m.stack[:len(m.stack)-1]
	if len(m.stack) == 1 {
		m.stack = nil
	}
}

func (m *ServiceMenu) saving(f *menuFrame) bool {
	return !f.savedAt.IsZero() && m.env.now().Before(f.savedAt.Add(SaveDisplayDuration))
}

// save applies the value at once and lets the store catch up in the
// background so a slow disk never stalls the frame loop. A failure that
// arrives while "Saved!" is still up replaces it.
func (m *ServiceMenu) save(f *menuFrame) {
	opt := f.node.Options[f.cursor]
	f.savedAt = m.env.now()
	f.saveFailed = false
	f.pending = nil

	if m.env.Settings == nil {
		return
	}

	key := f.node.Key
	logger := m.env.logger()
	result := make(chan error, 1)
	err := m.env.Settings.Update(key, opt.Value, func(err error) {
		if err != nil {
			logger.LogAttrs(context.Background(), slog.LevelError, "failed to save setting",
				xslog.Setting(string(key), opt.Value),
				xslog.Error(err),
			)
		} else {
			logger.LogAttrs(context.Background(), slog.LevelInfo, "saved setting",
				xslog.Setting(string(key), opt.Value),
			)
		}
		result <- err
	})
	if err != nil {
		f.saveFailed = true
		logger.LogAttrs(context.Background(), slog.LevelError, "rejected setting",
			xslog.Setting(string(key), opt.Value),
			xslog.Error(err),
		)
		return
	}
	f.pending = result
}

func (m *ServiceMenu) finishSave(f *menuFrame, err error) {
	f.pending = nil
	if err != nil {
		f.saveFailed = true
	}
}

// move applies plus/minus with wrap-around.
func (f *menuFrame) move(p display.Buttons, n int) {
	if n == 0 {
		return
	}
	if p.Minus {
		f.cursor = (f.cursor - 1 + n) % n
	}
	if p.Plus {
		f.cursor = (f.cursor + 1) % n
	}
}
