package widgets

import (
	"slices"
	"strconv"

	"github.com/rileyhilliard/rtop/internal/collect"
	"github.com/rileyhilliard/rtop/internal/config"
	"github.com/rileyhilliard/rtop/internal/table"
)

// Process table columns, in the order of config.ProcessColumns.
const (
	procPID = iota
	procName
	procCPU
	procMem
	procMemBytes
	procRead
	procWrite
	procUser
	procState
)

// KeyToggleCommand switches the name column between process name and full
// command line.
const KeyToggleCommand = "P"

// Pressing KeyKill twice in a row, or KeyDelete once, asks to kill the
// highlighted process.
const (
	KeyKill   = "d"
	KeyDelete = "delete"
)

const (
	nameWidth    = 20
	commandWidth = 60
)

type processRow struct {
	p           collect.Process
	showCommand bool
}

func (r processRow) CellText(column int) string {
	switch column {
	case procPID:
		return strconv.Itoa(int(r.p.PID))
	case procName:
		if r.showCommand {
			return r.p.Command
		}
		return r.p.Name
	case procCPU:
		return formatPercent(r.p.CPUPercent)
	case procMem:
		return formatPercent(r.p.MemPercent)
	case procMemBytes:
		return formatBytes(r.p.MemBytes)
	case procRead:
		return formatRate(r.p.ReadRate)
	case procWrite:
		return formatRate(r.p.WriteRate)
	case procUser:
		return r.p.User
	case procState:
		return r.p.State
	}
	return ""
}

func (r processRow) SortKey(column int) table.Key {
	switch column {
	case procPID:
		return table.NumberKey(float64(r.p.PID))
	case procCPU:
		return table.NumberKey(r.p.CPUPercent)
	case procMem:
		return table.NumberKey(r.p.MemPercent)
	case procMemBytes:
		return table.NumberKey(float64(r.p.MemBytes))
	case procRead:
		return table.NumberKey(r.p.ReadRate)
	case procWrite:
		return table.NumberKey(r.p.WriteRate)
	}
	return table.StringKey(r.CellText(column))
}

// ProcessWidget lists running processes.
type ProcessWidget struct {
	area

	table       *table.SortTable[processRow]
	columns     []*table.SortColumn
	showCommand bool
	procs       []collect.Process

	awaitingKill bool
	killRequest  *collect.Process
}

// NewProcessWidget creates the process table, sorted and filtered as cfg
// asks.
func NewProcessWidget(cfg config.ProcessConfig, opts Options) *ProcessWidget {
	columns := []*table.SortColumn{
		table.NewSortColumn("PID", table.Soft(7)).WithShortcut('p'),
		table.NewSortColumn("Name", table.SoftWithMax(nameWidth, 0.4)).WithShortcut('n'),
		table.NewSortColumn("CPU%", table.Hard(6)).WithShortcut('c').Descending(),
		table.NewSortColumn("Mem%", table.Hard(6)).WithShortcut('m').Descending(),
		table.NewSortColumn("Mem", table.Hard(8)).Descending(),
		table.NewSortColumn("R/s", table.Hard(9)).Descending(),
		table.NewSortColumn("W/s", table.Hard(9)).Descending(),
		table.NewSortColumn("User", table.SoftWithMax(10, 0.15)),
		table.NewSortColumn("State", table.Soft(8)),
	}
	hideColumns(columns, config.ProcessColumns, cfg.HiddenColumns)

	sortIndex := slices.Index(config.ProcessColumns, cfg.DefaultSort)
	if sortIndex < 0 {
		sortIndex = procCPU
	}

	w := &ProcessWidget{
		table:   table.NewSortTable[processRow](columns, sortIndex, opts.props("Processes"), opts.Styling),
		columns: columns,
	}
	if cfg.ShowCommand {
		w.ToggleCommand()
	}
	return w
}

// Name implements Widget.
func (w *ProcessWidget) Name() string { return config.WidgetProcess }

// Update implements Widget.
func (w *ProcessWidget) Update(snap *collect.Snapshot) {
	if snap == nil {
		return
	}
	w.procs = snap.Processes
	w.refreshRows()
}

func (w *ProcessWidget) refreshRows() {
	rows := make([]processRow, len(w.procs))
	for i, p := range w.procs {
		rows[i] = processRow{p: p, showCommand: w.showCommand}
	}
	w.table.SetData(rows)
}

// ToggleCommand switches between showing process names and command lines.
func (w *ProcessWidget) ToggleCommand() {
	w.showCommand = !w.showCommand
	if w.showCommand {
		w.columns[procName].Name = "Command"
		w.table.SetDesiredWidth(procName, commandWidth)
	} else {
		w.columns[procName].Name = "Name"
		w.table.SetDesiredWidth(procName, nameWidth)
	}
	w.refreshRows()
}

// ShowCommand reports whether command lines are shown.
func (w *ProcessWidget) ShowCommand() bool { return w.showCommand }

// Selected returns the highlighted process.
func (w *ProcessWidget) Selected() (collect.Process, bool) {
	row, ok := w.table.CurrentItem()
	return row.p, ok
}

// Draw implements Widget.
func (w *ProcessWidget) Draw(info table.DrawInfo) table.Frame {
	w.set(info.Rect)
	return w.table.Draw(info)
}

// HandleKey implements Widget.
func (w *ProcessWidget) HandleKey(key string) bool {
	if key == KeyKill {
		if w.awaitingKill {
			w.requestKill()
		}
		w.awaitingKill = !w.awaitingKill
		return true
	}
	w.awaitingKill = false

	switch key {
	case KeyDelete:
		w.requestKill()
		return true
	case KeyToggleCommand:
		w.ToggleCommand()
		return true
	}
	return handleNavKey(w.table, key) || handleSortKey(w.table, key)
}

func (w *ProcessWidget) requestKill() {
	if p, ok := w.Selected(); ok {
		w.killRequest = &p
	}
}

// TakeKillRequest returns the process the user asked to kill and clears the
// request.
func (w *ProcessWidget) TakeKillRequest() (collect.Process, bool) {
	if w.killRequest == nil {
		return collect.Process{}, false
	}
	p := *w.killRequest
	w.killRequest = nil
	return p, true
}

// HandleClick implements Widget.
func (w *ProcessWidget) HandleClick(x, y int) bool {
	if _, ok := w.table.TrySelectLocation(x, y); ok {
		return true
	}
	return w.table.TrySelectRow(x, y)
}

// HandleScroll implements Widget.
func (w *ProcessWidget) HandleScroll(delta int) { w.table.ScrollBy(delta) }

// hideColumns hides the columns whose key is listed in hidden.
func hideColumns(columns []*table.SortColumn, keys, hidden []string) {
	for _, name := range hidden {
		if i := slices.Index(keys, name); i >= 0 && i < len(columns) {
			columns[i].Hidden = true
		}
	}
}
