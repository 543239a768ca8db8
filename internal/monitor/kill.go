package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/rtop/internal/collect"
	"github.com/rileyhilliard/rtop/internal/widgets"
)

const killTimeout = 2 * time.Second

// Terminator ends a process by PID.
type Terminator func(ctx context.Context, pid int32) error

// killRequester is implemented by widgets that can ask for the highlighted
// process to be killed.
type killRequester interface {
	TakeKillRequest() (collect.Process, bool)
}

type killResultMsg struct {
	proc collect.Process
	err  error
}

var killDialogStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorCritical).
	Background(ColorSurfaceBg).
	Padding(1, 2)

// takeKillRequest opens the confirmation dialog if w asked for a kill.
func (m *Model) takeKillRequest(w widgets.Widget) {
	kr, ok := w.(killRequester)
	if !ok {
		return
	}
	if p, ok := kr.TakeKillRequest(); ok {
		m.confirmKill = &p
	}
}

// handleKillConfirm answers the open confirmation dialog. Other keys are
// swallowed so nothing moves under the dialog.
func (m *Model) handleKillConfirm(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Confirm):
		p := *m.confirmKill
		m.confirmKill = nil
		return true, m.killCmd(p)
	case key.Matches(msg, keys.Cancel):
		m.confirmKill = nil
		return true, nil
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return true, tea.Quit
	}
	return true, nil
}

func (m Model) killCmd(p collect.Process) tea.Cmd {
	terminate := m.terminate
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), killTimeout)
		defer cancel()
		return killResultMsg{proc: p, err: terminate(ctx, p.PID)}
	}
}

// applyKillResult reports a failed kill in the header. A successful one
// refreshes so the process disappears without waiting for the next tick.
func (m *Model) applyKillResult(msg killResultMsg) tea.Cmd {
	if msg.err != nil {
		m.lastErr = fmt.Errorf("kill %s (%d): %w", msg.proc.Name, msg.proc.PID, msg.err)
		return nil
	}
	return m.collectCmd()
}

func (m Model) renderKillDialog() string {
	p := m.confirmKill
	content := lipgloss.JoinVertical(lipgloss.Left,
		helpTitleStyle.Foreground(ColorCritical).Render("Kill process?"),
		fmt.Sprintf("%s (PID %d)", p.Name, p.PID),
		"",
		LabelStyle.Render("y/enter: kill   n/esc: cancel"),
	)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		killDialogStyle.Render(content),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(ColorDarkBg),
	)
}
