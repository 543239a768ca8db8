package widgets

import (
	"github.com/rileyhilliard/rtop/internal/collect"
	"github.com/rileyhilliard/rtop/internal/config"
	"github.com/rileyhilliard/rtop/internal/table"
)

// Disk table columns, in the order of config.DiskColumns.
const (
	diskDevice = iota
	diskMount
	diskUsed
	diskFree
	diskTotal
	diskUsedPercent
	diskRead
	diskWrite
)

type diskRow collect.Disk

func (r diskRow) CellText(column int) string {
	switch column {
	case diskDevice:
		return r.Device
	case diskMount:
		return r.Mount
	case diskUsed:
		return formatBytes(r.UsedBytes)
	case diskFree:
		return formatBytes(r.FreeBytes)
	case diskTotal:
		return formatBytes(r.TotalBytes)
	case diskUsedPercent:
		return formatPercent(r.UsedPercent)
	case diskRead:
		return formatRate(r.ReadRate)
	case diskWrite:
		return formatRate(r.WriteRate)
	}
	return ""
}

func (r diskRow) SortKey(column int) table.Key {
	switch column {
	case diskUsed:
		return table.NumberKey(float64(r.UsedBytes))
	case diskFree:
		return table.NumberKey(float64(r.FreeBytes))
	case diskTotal:
		return table.NumberKey(float64(r.TotalBytes))
	case diskUsedPercent:
		return table.NumberKey(r.UsedPercent)
	case diskRead:
		return table.NumberKey(r.ReadRate)
	case diskWrite:
		return table.NumberKey(r.WriteRate)
	}
	return table.StringKey(r.CellText(column))
}

// DiskWidget lists mounted partitions.
type DiskWidget struct {
	area
	table *table.SortTable[diskRow]
}

// NewDiskWidget creates the disk table.
func NewDiskWidget(cfg config.DiskConfig, opts Options) *DiskWidget {
	columns := []*table.SortColumn{
		table.NewSortColumn("Disk", table.SoftWithMax(16, 0.3)).WithShortcut('d'),
		table.NewSortColumn("Mount", table.SoftWithMax(16, 0.3)),
		table.NewSortColumn("Used", table.Hard(8)).Descending(),
		table.NewSortColumn("Free", table.Hard(8)).Descending(),
		table.NewSortColumn("Total", table.Hard(8)).Descending(),
		table.NewSortColumn("Used%", table.Hard(6)).WithShortcut('u').Descending(),
		table.NewSortColumn("R/s", table.Hard(9)).Descending(),
		table.NewSortColumn("W/s", table.Hard(9)).Descending(),
	}
	hideColumns(columns, config.DiskColumns, cfg.HiddenColumns)

	return &DiskWidget{
		table: table.NewSortTable[diskRow](columns, diskDevice, opts.props("Disks"), opts.Styling),
	}
}

// Name implements Widget.
func (w *DiskWidget) Name() string { return config.WidgetDisk }

// Update implements Widget.
func (w *DiskWidget) Update(snap *collect.Snapshot) {
	if snap == nil {
		return
	}
	rows := make([]diskRow, len(snap.Disks))
	for i, d := range snap.Disks {
		rows[i] = diskRow(d)
	}
	w.table.SetData(rows)
}

// Draw implements Widget.
func (w *DiskWidget) Draw(info table.DrawInfo) table.Frame {
	w.set(info.Rect)
	return w.table.Draw(info)
}

// HandleKey implements Widget.
func (w *DiskWidget) HandleKey(key string) bool {
	return handleNavKey(w.table, key) || handleSortKey(w.table, key)
}

// HandleClick implements Widget.
func (w *DiskWidget) HandleClick(x, y int) bool {
	if _, ok := w.table.TrySelectLocation(x, y); ok {
		return true
	}
	return w.table.TrySelectRow(x, y)
}

// HandleScroll implements Widget.
func (w *DiskWidget) HandleScroll(delta int) { w.table.ScrollBy(delta) }
