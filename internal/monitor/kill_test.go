package monitor

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/rtop/internal/config"
	"github.com/rileyhilliard/rtop/internal/widgets"
)

type fakeTerminator struct {
	mu   sync.Mutex
	pids []int32
	err  error
}

func (f *fakeTerminator) Terminate(_ context.Context, pid int32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pids = append(f.pids, pid)
	return f.err
}

func killModel(t *testing.T, term *fakeTerminator) Model {
	t.Helper()
	m := NewModel(&fakeSource{snap: testSnapshot()}, widgets.NewAll(config.DefaultConfig()), Options{
		DefaultWidget: config.WidgetProcess,
		Terminate:     term.Terminate,
	})
	m, _ = update(t, m, snapshotMsg{snap: testSnapshot(), time: time.Now()})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func TestKill_DoubleD(t *testing.T) {
	term := &fakeTerminator{}
	m := killModel(t, term)

	m, _ = update(t, m, runeKey("d"))
	assert.Nil(t, m.confirmKill, "one d only arms the shortcut")

	m, _ = update(t, m, runeKey("d"))
	require.NotNil(t, m.confirmKill)
	assert.Equal(t, int32(42), m.confirmKill.PID)

	m, cmd := update(t, m, runeKey("y"))
	assert.Nil(t, m.confirmKill)
	require.NotNil(t, cmd)

	msg := cmd()
	result, ok := msg.(killResultMsg)
	require.True(t, ok)
	assert.NoError(t, result.err)
	assert.Equal(t, []int32{42}, term.pids)

	m, cmd = update(t, m, result)
	assert.NoError(t, m.LastError())
	require.NotNil(t, cmd, "a successful kill refreshes")
	_, ok = cmd().(snapshotMsg)
	assert.True(t, ok)
}

func TestKill_Cancel(t *testing.T) {
	for _, k := range []tea.KeyMsg{runeKey("n"), {Type: tea.KeyEsc}} {
		term := &fakeTerminator{}
		m := killModel(t, term)

		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDelete})
		require.NotNil(t, m.confirmKill)

		m, cmd := update(t, m, k)
		assert.Nil(t, m.confirmKill, "key %q", k.String())
		assert.Nil(t, cmd)
		assert.Empty(t, term.pids)
	}
}

func TestKill_DialogSwallowsKeys(t *testing.T) {
	m := killModel(t, &fakeTerminator{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDelete})
	proc := m.Focused().(*widgets.ProcessWidget)

	handled, cmd := m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyDown})
	assert.True(t, handled)
	assert.Nil(t, cmd)
	p, _ := proc.Selected()
	assert.Equal(t, int32(42), p.PID, "selection does not move under the dialog")

	handled, _ = m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, handled)
	assert.Equal(t, config.WidgetProcess, m.Focused().Name())
	assert.NotNil(t, m.confirmKill)

	m.handleMouse(tea.MouseMsg{X: 10, Y: 3, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	assert.Equal(t, config.WidgetProcess, m.Focused().Name(), "mouse is ignored under the dialog")
}

func TestKill_Failure(t *testing.T) {
	term := &fakeTerminator{err: errors.New("operation not permitted")}
	m := killModel(t, term)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDelete})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.False(t, m.Expanded(), "enter confirms instead of expanding")

	m, cmd = update(t, m, cmd())
	assert.Nil(t, cmd)
	require.Error(t, m.LastError())
	assert.Equal(t, "kill postgres (42): operation not permitted", m.LastError().Error())
}

func TestKill_OtherWidgetsIgnoreD(t *testing.T) {
	m := killModel(t, &fakeTerminator{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.NotEqual(t, config.WidgetProcess, m.Focused().Name())

	m, _ = update(t, m, runeKey("d"))
	m, _ = update(t, m, runeKey("d"))
	assert.Nil(t, m.confirmKill)
}

func TestKill_Dialog(t *testing.T) {
	m := killModel(t, &fakeTerminator{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDelete})

	view := m.View()
	assert.Contains(t, view, "Kill process?")
	assert.Contains(t, view, "postgres (PID 42)")
	assert.Len(t, strings.Split(view, "\n"), 40)
}

func TestNewModel_DefaultTerminator(t *testing.T) {
	m := NewModel(nil, nil, Options{})
	assert.NotNil(t, m.terminate)
}
