package monitor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/rtop/internal/widgets"
)

// keyMap defines the dashboard key bindings. Table bindings are listed for
// the help views; the focused widget interprets them.
type keyMap struct {
	Quit       key.Binding
	Refresh    key.Binding
	Freeze     key.Binding
	ToggleHelp key.Binding
	NextWidget key.Binding
	PrevWidget key.Binding
	Expand     key.Binding
	Collapse   key.Binding

	SelectPrev  key.Binding
	SelectNext  key.Binding
	SelectFirst key.Binding
	SelectLast  key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	CycleSort   key.Binding
	ToggleOrder key.Binding
	ToggleCmd   key.Binding
	Kill        key.Binding

	Confirm key.Binding
	Cancel  key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Freeze: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "freeze"),
	),
	ToggleHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	NextWidget: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next widget"),
	),
	PrevWidget: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous widget"),
	),
	Expand: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "expand"),
	),
	Collapse: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "go back"),
	),
	SelectPrev: key.NewBinding(
		key.WithKeys(widgets.KeyUp, widgets.KeyUpK),
		key.WithHelp("↑/k", "up"),
	),
	SelectNext: key.NewBinding(
		key.WithKeys(widgets.KeyDown, widgets.KeyDownJ),
		key.WithHelp("↓/j", "down"),
	),
	SelectFirst: key.NewBinding(
		key.WithKeys(widgets.KeyFirst, widgets.KeyFirstG),
		key.WithHelp("home/g", "first row"),
	),
	SelectLast: key.NewBinding(
		key.WithKeys(widgets.KeyLast, widgets.KeyLastG),
		key.WithHelp("end/G", "last row"),
	),
	PageUp: key.NewBinding(
		key.WithKeys(widgets.KeyPageUp, widgets.KeyPageUpAlt),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys(widgets.KeyPageDown, widgets.KeyPageDownAlt),
		key.WithHelp("pgdn", "page down"),
	),
	CycleSort: key.NewBinding(
		key.WithKeys(widgets.KeyCycleSort, widgets.KeyCycleSortAlt),
		key.WithHelp("s/F6", "sort column"),
	),
	ToggleOrder: key.NewBinding(
		key.WithKeys(widgets.KeyToggleOrder),
		key.WithHelp("I", "reverse sort"),
	),
	ToggleCmd: key.NewBinding(
		key.WithKeys(widgets.KeyToggleCommand),
		key.WithHelp("P", "name/command"),
	),
	Kill: key.NewBinding(
		key.WithKeys(widgets.KeyKill, widgets.KeyDelete),
		key.WithHelp("dd/del", "kill process"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y", "enter"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n", "cancel"),
	),
}

// ShortHelp returns the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.NextWidget, k.Expand, k.CycleSort, k.Freeze, k.ToggleHelp}
}

// FullHelp returns the bindings shown in the help overlay, one group per column.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.Refresh, k.Freeze, k.ToggleHelp},
		{k.NextWidget, k.PrevWidget, k.Expand, k.Collapse},
		{k.SelectPrev, k.SelectNext, k.SelectFirst, k.SelectLast, k.PageUp, k.PageDown},
		{k.CycleSort, k.ToggleOrder, k.ToggleCmd, k.Kill},
	}
}

// HandleKeyMsg processes keyboard input. Keys the dashboard does not use are
// passed to the focused widget. Returns true if the key was handled.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	// Help toggle takes priority
	if key.Matches(msg, keys.ToggleHelp) {
		m.showHelp = !m.showHelp
		return true, nil
	}

	// While help is showing, only closing it and quitting work.
	if m.showHelp {
		switch {
		case key.Matches(msg, keys.Collapse):
			m.showHelp = false
			return true, nil
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return true, tea.Quit
		}
		return false, nil
	}

	if m.confirmKill != nil {
		return m.handleKillConfirm(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, keys.Refresh):
		return true, m.collectCmd()

	case key.Matches(msg, keys.Freeze):
		m.frozen = !m.frozen
		return true, nil

	case key.Matches(msg, keys.NextWidget):
		m.cycleFocus(1)
		return true, nil

	case key.Matches(msg, keys.PrevWidget):
		m.cycleFocus(-1)
		return true, nil

	case key.Matches(msg, keys.Expand):
		if len(m.widgets) > 0 && !m.expanded {
			m.expanded = true
			m.redraw.force = true
		}
		return true, nil

	case key.Matches(msg, keys.Collapse):
		if m.expanded {
			m.expanded = false
			m.redraw.force = true
		}
		return true, nil
	}

	if w := m.Focused(); w != nil {
		handled := w.HandleKey(msg.String())
		m.takeKillRequest(w)
		return handled, nil
	}
	return false, nil
}
