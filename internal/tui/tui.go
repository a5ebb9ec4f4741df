// Package tui provides an interactive window picker over the wmctrl
// wrapper: navigate the current window inventory, then activate, close,
// or toggle states on the selection.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/1broseidon/wmctl/pkg/wmctrl"
)

// WindowManager is the subset of the wmctrl client the picker uses.
type WindowManager interface {
	List() ([]wmctrl.Window, error)
	Close(id string) error
	ChangeState(id string, s wmctrl.State) error
	Activate(id string) error
}

// KeyMap defines the picker's keybindings.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Activate   key.Binding
	Close      key.Binding
	Fullscreen key.Binding
	Maximize   key.Binding
	Shade      key.Binding
	Refresh    key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default keybindings.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/k", "navigate"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "activate"),
	),
	Close: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "close"),
	),
	Fullscreen: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "fullscreen"),
	),
	Maximize: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "maximize"),
	),
	Shade: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "shade"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type windowsMsg struct {
	windows []wmctrl.Window
	err     error
}

type opDoneMsg struct {
	status string
	err    error
}

// Model is the bubbletea model for the window picker.
type Model struct {
	wm     WindowManager
	keys   KeyMap
	styles Styles

	windows []wmctrl.Window
	cursor  int
	status  string

	// confirmClose holds the ID awaiting a y/n answer; empty when no
	// confirmation is pending.
	confirmClose string

	width  int
	height int
}

// NewModel creates the picker model. The initial listing happens in Init.
func NewModel(wm WindowManager) Model {
	return Model{
		wm:     wm,
		keys:   DefaultKeyMap,
		styles: DefaultStyles,
	}
}

// Run opens the picker in the alternate screen and blocks until it quits.
func Run(wm WindowManager) error {
	_, err := tea.NewProgram(NewModel(wm), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.refresh()
}

func (m Model) refresh() tea.Cmd {
	return func() tea.Msg {
		windows, err := m.wm.List()
		return windowsMsg{windows: windows, err: err}
	}
}

func (m Model) selected() (wmctrl.Window, bool) {
	if m.cursor < 0 || m.cursor >= len(m.windows) {
		return wmctrl.Window{}, false
	}
	return m.windows[m.cursor], true
}

// runOp performs a window operation and refreshes the listing afterwards,
// reporting the outcome in the status line.
func (m Model) runOp(status string, op func() error) tea.Cmd {
	return func() tea.Msg {
		if err := op(); err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: status}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case windowsMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.windows = msg.windows
		if m.cursor >= len(m.windows) {
			m.cursor = len(m.windows) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case opDoneMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.status = msg.status
		return m, m.refresh()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A pending close confirmation swallows everything except y/n.
	if m.confirmClose != "" {
		id := m.confirmClose
		m.confirmClose = ""
		if msg.String() == "y" {
			return m, m.runOp("close requested", func() error { return m.wm.Close(id) })
		}
		m.status = "close cancelled"
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.windows)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.status = ""
		return m, m.refresh()

	case key.Matches(msg, m.keys.Activate):
		if win, ok := m.selected(); ok {
			return m, m.runOp("activated "+win.ID, func() error { return m.wm.Activate(win.ID) })
		}
		return m, nil

	case key.Matches(msg, m.keys.Close):
		if win, ok := m.selected(); ok {
			m.confirmClose = win.ID
			m.status = fmt.Sprintf("close %q? (y/n)", win.Title)
		}
		return m, nil

	case key.Matches(msg, m.keys.Fullscreen):
		return m.toggleState(wmctrl.Fullscreen)

	case key.Matches(msg, m.keys.Shade):
		return m.toggleState(wmctrl.Shaded)

	case key.Matches(msg, m.keys.Maximize):
		// Full maximize is the pair of vertical and horizontal hints.
		if win, ok := m.selected(); ok {
			return m, m.runOp("toggled maximize on "+win.ID, func() error {
				if err := m.wm.ChangeState(win.ID, wmctrl.NewState(wmctrl.Toggle, wmctrl.MaximizedVert)); err != nil {
					return err
				}
				return m.wm.ChangeState(win.ID, wmctrl.NewState(wmctrl.Toggle, wmctrl.MaximizedHorz))
			})
		}
		return m, nil
	}
	return m, nil
}

func (m Model) toggleState(p wmctrl.Property) (tea.Model, tea.Cmd) {
	win, ok := m.selected()
	if !ok {
		return m, nil
	}
	state := wmctrl.NewState(wmctrl.Toggle, p)
	return m, m.runOp(fmt.Sprintf("sent %s to %s", state, win.ID), func() error {
		return m.wm.ChangeState(win.ID, state)
	})
}
