package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/rtop/internal/collect"
	"github.com/rileyhilliard/rtop/internal/config"
	"github.com/rileyhilliard/rtop/internal/table"
)

func testOptions() Options {
	return OptionsFromConfig(config.DefaultConfig())
}

func testSnapshot() *collect.Snapshot {
	return &collect.Snapshot{
		CPU: collect.CPUStats{Total: 12.5, PerCore: []float64{10, 15}},
		Processes: []collect.Process{
			{PID: 1, Name: "init", Command: "/sbin/init", CPUPercent: 0.5, MemPercent: 0.1, MemBytes: 4096, User: "root", State: "sleep"},
			{PID: 42, Name: "postgres", Command: "postgres -D /data", CPUPercent: 35, MemPercent: 2.5, MemBytes: 512 << 20, User: "pg", State: "running"},
			{PID: 7, Name: "Xorg", Command: "/usr/bin/Xorg :0", CPUPercent: 12, MemPercent: 8, MemBytes: 128 << 20, User: "root", State: "sleep"},
		},
		Disks: []collect.Disk{
			{Device: "/dev/sdb1", Mount: "/data", UsedPercent: 90, UsedBytes: 900, TotalBytes: 1000, FreeBytes: 100},
			{Device: "/dev/sda1", Mount: "/", UsedPercent: 40, UsedBytes: 400, TotalBytes: 1000, FreeBytes: 600},
		},
		Temperatures: []collect.Temperature{
			{Sensor: "nvme", Celsius: 38},
			{Sensor: "coretemp", Celsius: 61},
		},
		Batteries: []collect.Battery{
			{Name: "BAT0", Percent: 80, State: "Discharging"},
		},
	}
}

func pids(w *ProcessWidget) []int32 {
	var out []int32
	for _, r := range w.table.Data() {
		out = append(out, r.p.PID)
	}
	return out
}

func TestProcessWidget_DefaultSort(t *testing.T) {
	w := NewProcessWidget(config.DefaultConfig().Process, testOptions())
	w.Update(testSnapshot())

	assert.Equal(t, []int32{42, 7, 1}, pids(w), "highest CPU first")
	assert.Equal(t, procCPU, w.table.SortIndex())
	assert.Equal(t, table.Descending, w.table.Order())

	p, ok := w.Selected()
	require.True(t, ok)
	assert.Equal(t, int32(42), p.PID)
}

func TestProcessWidget_ConfigSortAndHidden(t *testing.T) {
	cfg := config.ProcessConfig{
		DefaultSort:   "pid",
		HiddenColumns: []string{"user", "state"},
	}
	w := NewProcessWidget(cfg, testOptions())
	w.Update(testSnapshot())

	assert.Equal(t, []int32{1, 7, 42}, pids(w))
	assert.True(t, w.columns[procUser].Hidden)
	assert.True(t, w.columns[procState].Hidden)
	assert.False(t, w.columns[procCPU].Hidden)
}

func TestProcessWidget_UnknownSortFallsBackToCPU(t *testing.T) {
	w := NewProcessWidget(config.ProcessConfig{DefaultSort: "nope"}, testOptions())
	assert.Equal(t, procCPU, w.table.SortIndex())
}

func TestProcessWidget_SortKeys(t *testing.T) {
	tests := []struct {
		name  string
		keys  []string
		want  []int32
		index int
	}{
		{name: "memory shortcut", keys: []string{"m"}, want: []int32{7, 42, 1}, index: procMem},
		{name: "pid shortcut", keys: []string{"p"}, want: []int32{1, 7, 42}, index: procPID},
		{name: "name shortcut ignores case", keys: []string{"n"}, want: []int32{1, 42, 7}, index: procName},
		{name: "toggle order", keys: []string{"I"}, want: []int32{1, 7, 42}, index: procCPU},
		{name: "cycle moves to next column", keys: []string{"s"}, want: []int32{7, 42, 1}, index: procMem},
		{name: "f6 cycles too", keys: []string{"f6"}, want: []int32{7, 42, 1}, index: procMem},
		{name: "same shortcut twice flips order", keys: []string{"p", "p"}, want: []int32{42, 7, 1}, index: procPID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewProcessWidget(config.DefaultConfig().Process, testOptions())
			w.Update(testSnapshot())
			for _, k := range tt.keys {
				require.True(t, w.HandleKey(k), "key %q", k)
			}
			assert.Equal(t, tt.want, pids(w))
			assert.Equal(t, tt.index, w.table.SortIndex())
		})
	}
}

func TestProcessWidget_Navigation(t *testing.T) {
	w := NewProcessWidget(config.DefaultConfig().Process, testOptions())
	w.Update(testSnapshot())
	w.Draw(table.DrawInfo{Rect: table.Rect{Width: 80, Height: 12}})

	tests := []struct {
		key  string
		want int
	}{
		{"down", 1},
		{"j", 2},
		{"j", 2},
		{"k", 1},
		{"home", 0},
		{"G", 2},
		{"g", 0},
		{"end", 2},
		{"pgup", 0},
		{"ctrl+d", 2},
	}
	for _, tt := range tests {
		require.True(t, w.HandleKey(tt.key))
		assert.Equal(t, tt.want, w.table.CurrentIndex(), "after %q", tt.key)
	}

	assert.False(t, w.HandleKey("x"), "unbound keys are not consumed")
}

func TestProcessWidget_ToggleCommand(t *testing.T) {
	w := NewProcessWidget(config.DefaultConfig().Process, testOptions())
	w.Update(testSnapshot())

	require.True(t, w.HandleKey(KeyToggleCommand))
	assert.True(t, w.ShowCommand())
	assert.Equal(t, "Command", w.columns[procName].Header())
	assert.Equal(t, "postgres -D /data", w.table.Data()[0].CellText(procName))

	w.HandleKey(KeyToggleCommand)
	assert.False(t, w.ShowCommand())
	assert.Equal(t, "Name", w.columns[procName].Header())
	assert.Equal(t, "postgres", w.table.Data()[0].CellText(procName))
}

func TestProcessWidget_KillKeys(t *testing.T) {
	tests := []struct {
		name   string
		keys   []string
		wantOK bool
	}{
		{"double d", []string{"d", "d"}, true},
		{"single d", []string{"d"}, false},
		{"d interrupted", []string{"d", "j", "d"}, false},
		{"triple d", []string{"d", "d", "d"}, true},
		{"delete", []string{"delete"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewProcessWidget(config.DefaultConfig().Process, testOptions())
			w.Update(testSnapshot())
			w.Draw(table.DrawInfo{Rect: table.Rect{Width: 80, Height: 12}})

			for _, k := range tt.keys {
				require.True(t, w.HandleKey(k), "key %q", k)
			}
			p, ok := w.TakeKillRequest()
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, int32(42), p.PID, "highlighted process")
			}

			_, ok = w.TakeKillRequest()
			assert.False(t, ok, "request is taken once")
		})
	}
}

func TestProcessWidget_KillFollowsSelection(t *testing.T) {
	w := NewProcessWidget(config.DefaultConfig().Process, testOptions())
	w.Update(testSnapshot())
	w.Draw(table.DrawInfo{Rect: table.Rect{Width: 80, Height: 12}})

	w.HandleKey("down")
	w.HandleKey("delete")
	p, ok := w.TakeKillRequest()
	require.True(t, ok)
	assert.Equal(t, int32(7), p.PID)
}

func TestProcessWidget_KillWithoutRows(t *testing.T) {
	w := NewProcessWidget(config.DefaultConfig().Process, testOptions())
	w.HandleKey("delete")
	_, ok := w.TakeKillRequest()
	assert.False(t, ok)
}

func TestProcessWidget_ShowCommandFromConfig(t *testing.T) {
	w := NewProcessWidget(config.ProcessConfig{DefaultSort: "cpu", ShowCommand: true}, testOptions())
	assert.True(t, w.ShowCommand())
	assert.Equal(t, "Command", w.columns[procName].Header())
}

func TestProcessWidget_Clicks(t *testing.T) {
	w := NewProcessWidget(config.DefaultConfig().Process, testOptions())
	w.Update(testSnapshot())

	info := table.DrawInfo{Rect: table.Rect{X: 0, Y: 0, Width: 80, Height: 12}, Selection: table.Selected}
	frame := w.Draw(info)
	require.True(t, frame.ShowHeader)
	require.Equal(t, 1, frame.Gap)
	require.Len(t, frame.Rows, 3)
	assert.Equal(t, "CPU%▼", frame.Header[procCPU])

	assert.True(t, w.Contains(10, 5))
	assert.False(t, w.Contains(80, 5))

	// Rows start below the header and the gap line.
	assert.True(t, w.HandleClick(5, 4))
	assert.Equal(t, 1, w.table.CurrentIndex())
	assert.False(t, w.HandleClick(5, 9), "below the last row")

	// The header row sorts by the clicked column.
	assert.True(t, w.HandleClick(1, 1))
	assert.Equal(t, procPID, w.table.SortIndex())
	assert.Equal(t, []int32{1, 7, 42}, pids(w))

	w.HandleScroll(1)
	assert.Equal(t, 2, w.table.CurrentIndex())
	w.HandleScroll(5)
	assert.Equal(t, 2, w.table.CurrentIndex())
}

func TestProcessRow_CellText(t *testing.T) {
	r := processRow{p: testSnapshot().Processes[1]}
	assert.Equal(t, "42", r.CellText(procPID))
	assert.Equal(t, "35.0%", r.CellText(procCPU))
	assert.Equal(t, "2.5%", r.CellText(procMem))
	assert.Equal(t, "512.0MB", r.CellText(procMemBytes))
	assert.Equal(t, "0B/s", r.CellText(procRead))
	assert.Equal(t, "pg", r.CellText(procUser))
	assert.Equal(t, "running", r.CellText(procState))
	assert.Equal(t, "", r.CellText(99))
}
