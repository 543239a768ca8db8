package table

import (
	"slices"

	"github.com/mattn/go-runewidth"
)

// TableGapHeightLimit is the minimum draw height at which the gap between
// the header and the first row is shown.
const TableGapHeightLimit = 7

// Props are the per-table display options.
type Props struct {
	// Title is drawn in the top border. Empty means no title.
	Title string
	// TableGap is the number of blank lines between header and rows.
	TableGap int
	// LeftToRight controls which side keeps its columns when space runs out.
	LeftToRight bool
	// IsBasic draws the table without a box border.
	IsBasic bool
	// ShowScrollPosition appends "(n of total)" to the title.
	ShowScrollPosition bool
	// ShowCurrentWhenUnfocused keeps the selected row highlighted while the
	// table does not have focus.
	ShowCurrentWhenUnfocused bool
	// AutoWidth resizes soft columns to their widest cell whenever widths
	// are recalculated.
	AutoWidth bool
}

// Table lays out a dataset of rows into a rectangle: it decides column
// widths, which rows are visible, and which row is selected.
type Table[R Row] struct {
	columns []ColumnSpec
	header  HeaderBuilder
	state   State
	props   Props
	styling Styling
	data    []R

	firstDraw  bool
	firstIndex int
	hasFirst   bool

	widthsDirty bool
	lastWidth   int
	visibleRows int
	rowOffset   int
	titleFits   bool
}

// New creates an unsortable table.
func New[R Row](columns []ColumnSpec, props Props, styling Styling) *Table[R] {
	return newTable[R](columns, Unsortable{}, props, styling)
}

func newTable[R Row](columns []ColumnSpec, header HeaderBuilder, props Props, styling Styling) *Table[R] {
	return &Table[R]{
		columns:     columns,
		header:      header,
		props:       props,
		styling:     styling,
		firstDraw:   true,
		widthsDirty: true,
		lastWidth:   -1,
		titleFits:   true,
	}
}

// Columns returns the table's columns.
func (t *Table[R]) Columns() []ColumnSpec { return t.columns }

// Props returns the display options.
func (t *Table[R]) Props() Props { return t.props }

// SetProps replaces the display options and schedules a width recalculation.
func (t *Table[R]) SetProps(p Props) {
	t.props = p
	t.widthsDirty = true
}

// SetStyling replaces the table styles.
func (t *Table[R]) SetStyling(s Styling) { t.styling = s }

// State returns a copy of the scroll state.
func (t *Table[R]) State() State { return t.state }

// Data returns the current dataset.
func (t *Table[R]) Data() []R { return t.data }

// Len returns the number of rows.
func (t *Table[R]) Len() int { return len(t.data) }

// SetData replaces the dataset. A change in row count schedules a width
// recalculation and pulls the selection back in range.
func (t *Table[R]) SetData(data []R) {
	if len(data) != len(t.data) {
		t.widthsDirty = true
	}
	t.data = data
	t.state.UpdateNumEntries(len(data))
}

// SetFirstIndex sets the row selected on the first draw that has data.
func (t *Table[R]) SetFirstIndex(i int) {
	t.firstIndex = i
	t.hasFirst = true
}

// SetHidden shows or hides column i.
func (t *Table[R]) SetHidden(i int, hidden bool) {
	if i < 0 || i >= len(t.columns) || t.columns[i].IsHidden() == hidden {
		return
	}
	t.columns[i].SetHidden(hidden)
	t.widthsDirty = true
}

// SetDesiredWidth changes the desired width of soft column i. The width
// never drops below the header width. Other bound kinds are left alone.
func (t *Table[R]) SetDesiredWidth(i, width int) {
	if i < 0 || i >= len(t.columns) {
		return
	}
	c := t.columns[i]
	if c.Bound().Kind() != BoundSoft {
		return
	}
	c.SetBound(c.Bound().withDesired(max(c.HeaderWidth(), width)))
	t.widthsDirty = true
}

// CurrentIndex returns the selected row index.
func (t *Table[R]) CurrentIndex() int { return t.state.Current }

// CurrentItem returns the selected row, if any.
func (t *Table[R]) CurrentItem() (R, bool) {
	var zero R
	if t.state.Current < 0 || t.state.Current >= len(t.data) {
		return zero, false
	}
	return t.data[t.state.Current], true
}

// TitleFits reports whether the last drawn title included the scroll
// position. It is true when no scroll position was requested.
func (t *Table[R]) TitleFits() bool { return t.titleFits }

// PageSize returns how many rows were visible on the last draw.
func (t *Table[R]) PageSize() int { return max(t.visibleRows, 1) }

// ScrollToFirst selects the first row.
func (t *Table[R]) ScrollToFirst() { t.state.SetFirst() }

// ScrollToLast selects the last row.
func (t *Table[R]) ScrollToLast() { t.state.SetLast(len(t.data)) }

// IncrementPosition moves the selection by delta if the target row exists.
func (t *Table[R]) IncrementPosition(delta int) (int, bool) {
	return t.state.IncrementPosition(delta, len(t.data))
}

// ScrollBy moves the selection by up to delta rows, stopping at either end
// of the dataset.
func (t *Table[R]) ScrollBy(delta int) (int, bool) {
	if len(t.data) == 0 {
		return 0, false
	}
	target := clamp(t.state.Current+delta, 0, len(t.data)-1)
	return t.state.IncrementPosition(target-t.state.Current, len(t.data))
}

// SetPosition selects row i, clamped to the dataset.
func (t *Table[R]) SetPosition(i int) {
	t.state.SetPosition(i, len(t.data))
}

// TrySelectRow selects the row drawn at (x, y). It reports whether a row was
// hit.
func (t *Table[R]) TrySelectRow(x, y int) bool {
	inner := t.state.InnerRect
	if !inner.Contains(x, y) {
		return false
	}
	firstRow := inner.Y + t.rowOffset
	if y < firstRow {
		return false
	}
	i := t.state.DisplayStart + (y - firstRow)
	if i >= len(t.data) {
		return false
	}
	t.SetPosition(i)
	return true
}

// recalculateWidths refreshes the cached column widths for innerWidth.
func (t *Table[R]) recalculateWidths(innerWidth int) {
	if t.props.AutoWidth {
		for i, c := range t.columns {
			if c.Bound().Kind() != BoundSoft {
				continue
			}
			widest := c.HeaderWidth()
			for _, row := range t.data {
				widest = max(widest, runewidth.StringWidth(row.CellText(i)))
			}
			c.SetBound(c.Bound().withDesired(widest))
		}
	}

	t.state.CalculatedWidths = CalculateWidths(t.columns, innerWidth, t.props.LeftToRight)
	t.state.ColumnOffset = 0
	if !t.props.LeftToRight {
		t.state.ColumnOffset = len(visibleIndices(t.columns)) - len(t.state.CalculatedWidths)
	}
	t.lastWidth = innerWidth
	t.widthsDirty = false
}

// SortTable is a Table whose rows are kept ordered by one column.
type SortTable[R SortableRow] struct {
	*Table[R]

	sort    *Sortable
	columns []*SortColumn
}

// NewSortTable creates a sortable table sorted by column sortIndex using
// that column's default order.
func NewSortTable[R SortableRow](columns []*SortColumn, sortIndex int, props Props, styling Styling) *SortTable[R] {
	s := NewSortable(columns, sortIndex)
	return &SortTable[R]{
		Table:   newTable[R](sortSpecs(columns), s, props, styling),
		sort:    s,
		columns: columns,
	}
}

// SortIndex returns the active sort column.
func (t *SortTable[R]) SortIndex() int { return t.sort.Index() }

// Order returns the active sort order.
func (t *SortTable[R]) Order() SortOrder { return t.sort.Order() }

// SetData sorts a copy of data by the active column and stores it.
func (t *SortTable[R]) SetData(data []R) {
	sorted := slices.Clone(data)
	t.sortRows(sorted)
	t.Table.SetData(sorted)
}

// SetSortIndex selects the sort column (toggling the order if it is already
// active) and re-sorts the data.
func (t *SortTable[R]) SetSortIndex(i int) {
	t.sort.SetSortIndex(i)
	t.resort()
}

// SetOrder sets the sort order and re-sorts the data.
func (t *SortTable[R]) SetOrder(o SortOrder) {
	t.sort.SetOrder(o)
	t.resort()
}

// ToggleOrder flips the sort order and re-sorts the data.
func (t *SortTable[R]) ToggleOrder() {
	t.sort.ToggleOrder()
	t.resort()
}

// CycleSortColumn moves the sort to the next visible column, wrapping
// around at the end.
func (t *SortTable[R]) CycleSortColumn() {
	visible := visibleIndices(t.Table.columns)
	if len(visible) == 0 {
		return
	}
	next := visible[0]
	for _, idx := range visible {
		if idx > t.sort.Index() {
			next = idx
			break
		}
	}
	t.SetSortIndex(next)
}

// TrySortShortcut sorts by the column whose shortcut is r.
func (t *SortTable[R]) TrySortShortcut(r rune) bool {
	i, ok := t.sort.ShortcutIndex(r)
	if !ok {
		return false
	}
	t.SetSortIndex(i)
	return true
}

// TrySelectLocation handles a click on the header row, sorting by the
// clicked column.
func (t *SortTable[R]) TrySelectLocation(x, y int) (int, bool) {
	i, ok := t.sort.TrySelectLocation(x, y, &t.Table.state)
	if ok {
		t.resort()
	}
	return i, ok
}

func (t *SortTable[R]) resort() {
	t.sortRows(t.Table.data)
}

func (t *SortTable[R]) sortRows(rows []R) {
	col := t.sort.Index()
	desc := t.sort.Order() == Descending
	slices.SortStableFunc(rows, func(a, b R) int {
		c := a.SortKey(col).Compare(b.SortKey(col))
		if desc {
			return -c
		}
		return c
	})
}
