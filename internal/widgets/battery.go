package widgets

import (
	"github.com/rileyhilliard/rtop/internal/collect"
	"github.com/rileyhilliard/rtop/internal/config"
	"github.com/rileyhilliard/rtop/internal/table"
)

const (
	batName = iota
	batCharge
	batState
	batTime
	batHealth
)

type batteryRow collect.Battery

func (r batteryRow) CellText(column int) string {
	switch column {
	case batName:
		return r.Name
	case batCharge:
		return formatPercent(r.Percent)
	case batState:
		return r.State
	case batTime:
		return formatDuration(r.TimeLeft)
	case batHealth:
		if r.Health == 0 {
			return "N/A"
		}
		return formatPercent(r.Health)
	}
	return ""
}

// BatteryWidget lists batteries.
type BatteryWidget struct {
	area
	table *table.Table[batteryRow]
}

// NewBatteryWidget creates the battery table.
func NewBatteryWidget(opts Options) *BatteryWidget {
	columns := []table.ColumnSpec{
		table.NewColumn("Battery", table.Soft(8)),
		table.NewColumn("Charge%", table.FollowHeader()),
		table.NewColumn("State", table.SoftWithMax(11, 0.3)),
		table.NewColumn("Time", table.Hard(6)),
		table.NewColumn("Health", table.FollowHeader()),
	}
	return &BatteryWidget{table: table.New[batteryRow](columns, opts.props("Batteries"), opts.Styling)}
}

// Name implements Widget.
func (w *BatteryWidget) Name() string { return config.WidgetBattery }

// Update implements Widget.
func (w *BatteryWidget) Update(snap *collect.Snapshot) {
	if snap == nil {
		return
	}
	rows := make([]batteryRow, len(snap.Batteries))
	for i, b := range snap.Batteries {
		rows[i] = batteryRow(b)
	}
	w.table.SetData(rows)
}

// Draw implements Widget.
func (w *BatteryWidget) Draw(info table.DrawInfo) table.Frame {
	w.set(info.Rect)
	return w.table.Draw(info)
}

// HandleKey implements Widget.
func (w *BatteryWidget) HandleKey(key string) bool {
	return handleNavKey(w.table, key)
}

// HandleClick implements Widget.
func (w *BatteryWidget) HandleClick(x, y int) bool {
	return w.table.TrySelectRow(x, y)
}

// HandleScroll implements Widget.
func (w *BatteryWidget) HandleScroll(delta int) { w.table.ScrollBy(delta) }
