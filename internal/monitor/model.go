package monitor

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/rtop/internal/collect"
	"github.com/rileyhilliard/rtop/internal/widgets"
)

// DefaultInterval is the refresh rate used when none is configured.
const DefaultInterval = time.Second

// Options configures a dashboard Model.
type Options struct {
	// Interval is the time between collections.
	Interval time.Duration

	// DefaultWidget is the name of the widget focused at startup.
	DefaultWidget string

	// Terminate ends processes killed from the process table. Defaults to
	// collect.Terminate.
	Terminate Terminator
}

// redrawState is shared between copies of the model so a View call can
// clear the flag set by the Update that preceded it.
type redrawState struct {
	force bool
}

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	widgets  []widgets.Widget
	focus    int
	expanded bool

	source    collect.Source
	interval  time.Duration
	terminate Terminator

	width  int
	height int

	snapshot   *collect.Snapshot
	history    *History
	lastUpdate time.Time
	lastErr    error

	frozen   bool
	showHelp bool
	quitting bool

	confirmKill *collect.Process

	redraw *redrawState
}

// Message types
type (
	tickMsg     time.Time
	snapshotMsg struct {
		snap *collect.Snapshot
		err  error
		time time.Time
	}
)

// NewModel creates a dashboard over the given widgets, fed by source.
func NewModel(source collect.Source, ws []widgets.Widget, opts Options) Model {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	terminate := opts.Terminate
	if terminate == nil {
		terminate = collect.Terminate
	}

	m := Model{
		widgets:   ws,
		source:    source,
		interval:  interval,
		terminate: terminate,
		history:   NewHistory(DefaultHistorySize),
		redraw:    &redrawState{force: true},
	}

	for i, w := range ws {
		if w.Name() == opts.DefaultWidget {
			m.focus = i
			break
		}
	}

	return m
}

// Init starts the tick timer and triggers an initial collection.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.collectCmd(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if _, cmd := m.HandleKeyMsg(msg); cmd != nil {
			return m, cmd
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.redraw.force = true

	case tickMsg:
		if m.frozen {
			return m, m.tickCmd()
		}
		return m, tea.Batch(m.tickCmd(), m.collectCmd())

	case snapshotMsg:
		m.applySnapshot(msg)

	case killResultMsg:
		return m, m.applyKillResult(msg)
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// collectCmd returns a command that takes one snapshot from the source.
func (m Model) collectCmd() tea.Cmd {
	source := m.source
	if source == nil {
		return nil
	}
	timeout := m.interval * 5
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		snap, err := source.Collect(ctx)
		return snapshotMsg{snap: snap, err: err, time: time.Now()}
	}
}

// applySnapshot stores a collection result. A failed collection keeps the
// previous data on screen and records the error for the header.
func (m *Model) applySnapshot(msg snapshotMsg) {
	m.lastErr = msg.err
	if msg.err != nil || msg.snap == nil {
		return
	}
	if m.frozen {
		return
	}

	m.snapshot = msg.snap
	m.lastUpdate = msg.time
	m.history.Push(msg.snap)
	for _, w := range m.widgets {
		w.Update(msg.snap)
	}
}

// handleMouse routes a click to the widget under the cursor, focusing it,
// and scrolls the widget under the wheel.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.showHelp || m.confirmKill != nil {
		return
	}

	target := -1
	for _, w := range m.visibleWidgets() {
		if w.Contains(msg.X, msg.Y) {
			target = m.indexOf(w)
			break
		}
	}
	if target < 0 {
		return
	}
	w := m.widgets[target]

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		w.HandleScroll(-1)
	case tea.MouseButtonWheelDown:
		w.HandleScroll(1)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return
		}
		m.focus = target
		w.HandleClick(msg.X, msg.Y)
	}
}

// visibleWidgets returns the widgets currently on screen.
func (m Model) visibleWidgets() []widgets.Widget {
	if m.expanded {
		if w := m.Focused(); w != nil {
			return []widgets.Widget{w}
		}
		return nil
	}
	return m.widgets
}

func (m Model) indexOf(w widgets.Widget) int {
	for i, other := range m.widgets {
		if other == w {
			return i
		}
	}
	return -1
}

// cycleFocus moves focus forward or backward through the widgets.
func (m *Model) cycleFocus(delta int) {
	n := len(m.widgets)
	if n == 0 || m.expanded {
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
}

// Focused returns the widget with focus, or nil when there are none.
func (m Model) Focused() widgets.Widget {
	if m.focus < 0 || m.focus >= len(m.widgets) {
		return nil
	}
	return m.widgets[m.focus]
}

// Expanded reports whether the focused widget fills the screen.
func (m Model) Expanded() bool { return m.expanded }

// Frozen reports whether updates are paused.
func (m Model) Frozen() bool { return m.frozen }

// ShowingHelp reports whether the help overlay is visible.
func (m Model) ShowingHelp() bool { return m.showHelp }

// Snapshot returns the last snapshot applied to the widgets.
func (m Model) Snapshot() *collect.Snapshot { return m.snapshot }

// LastError returns the error from the most recent collection, if any.
func (m Model) LastError() error { return m.lastErr }

// SecondsSinceUpdate returns seconds since the last successful collection.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(time.Since(m.lastUpdate).Seconds())
}
