package widgets

import (
	"strconv"

	"github.com/rileyhilliard/rtop/internal/collect"
	"github.com/rileyhilliard/rtop/internal/config"
	"github.com/rileyhilliard/rtop/internal/table"
)

type cpuRow struct {
	label string
	usage float64
}

func (r cpuRow) CellText(column int) string {
	if column == 0 {
		return r.label
	}
	return formatPercent(r.usage)
}

// CPUWidget is the legend of the CPU panel: overall usage followed by one
// row per core. Columns are dropped from the left when space runs out so
// the usage stays visible.
type CPUWidget struct {
	area
	table *table.Table[cpuRow]
}

// NewCPUWidget creates the CPU legend.
func NewCPUWidget(opts Options) *CPUWidget {
	columns := []table.ColumnSpec{
		table.NewColumn("CPU", table.Soft(5)),
		table.NewColumn("Use%", table.Hard(6)),
	}
	props := opts.props("CPU")
	props.LeftToRight = false
	return &CPUWidget{table: table.New[cpuRow](columns, props, opts.Styling)}
}

// Name implements Widget.
func (w *CPUWidget) Name() string { return config.WidgetCPU }

// Update implements Widget.
func (w *CPUWidget) Update(snap *collect.Snapshot) {
	if snap == nil {
		return
	}
	rows := make([]cpuRow, 0, len(snap.CPU.PerCore)+1)
	rows = append(rows, cpuRow{label: "All", usage: snap.CPU.Total})
	for i, u := range snap.CPU.PerCore {
		rows = append(rows, cpuRow{label: "CPU" + strconv.Itoa(i), usage: u})
	}
	w.table.SetData(rows)
}

// Draw implements Widget.
func (w *CPUWidget) Draw(info table.DrawInfo) table.Frame {
	w.set(info.Rect)
	return w.table.Draw(info)
}

// HandleKey implements Widget.
func (w *CPUWidget) HandleKey(key string) bool {
	return handleNavKey(w.table, key)
}

// HandleClick implements Widget.
func (w *CPUWidget) HandleClick(x, y int) bool {
	return w.table.TrySelectRow(x, y)
}

// HandleScroll implements Widget.
func (w *CPUWidget) HandleScroll(delta int) { w.table.ScrollBy(delta) }
