package table

import "sort"

// SortOrder is the direction rows are sorted in.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// String returns a human-readable name for the order.
func (o SortOrder) String() string {
	if o == Descending {
		return "descending"
	}
	return "ascending"
}

// Toggle returns the opposite order.
func (o SortOrder) Toggle() SortOrder {
	if o == Ascending {
		return Descending
	}
	return Ascending
}

// Arrow returns the glyph appended to the active sort header.
func (o SortOrder) Arrow() string {
	if o == Descending {
		return "▼"
	}
	return "▲"
}

// HeaderBuilder produces the header cell text for the columns that fit.
// widths[i] belongs to the visible column at position offset+i. Plain tables
// use Unsortable; sortable tables use *Sortable, which marks the active
// column with an arrow.
type HeaderBuilder interface {
	HeaderCells(columns []ColumnSpec, widths []int, offset int) []string
}

// Unsortable renders headers verbatim. It carries no state.
type Unsortable struct{}

// HeaderCells returns each allocated column's header truncated to its width.
func (Unsortable) HeaderCells(columns []ColumnSpec, widths []int, offset int) []string {
	cells := make([]string, 0, len(widths))
	for i, idx := range allocatedIndices(columns, offset) {
		if i >= len(widths) {
			break
		}
		if widths[i] == 0 {
			continue
		}
		cells = append(cells, Truncate(columns[idx].Header(), widths[i]))
	}
	return cells
}

// Sortable tracks the active sort column and order of a table.
type Sortable struct {
	index   int
	order   SortOrder
	columns []*SortColumn
}

// NewSortable creates sort state over columns with index as the active
// column. An out-of-range index falls back to the first column.
func NewSortable(columns []*SortColumn, index int) *Sortable {
	if index < 0 || index >= len(columns) {
		index = 0
	}
	s := &Sortable{index: index, columns: columns}
	if len(columns) > 0 {
		s.order = columns[index].DefaultOrder
	}
	return s
}

// Index returns the active sort column.
func (s *Sortable) Index() int { return s.index }

// Order returns the active sort order.
func (s *Sortable) Order() SortOrder { return s.order }

// SetOrder sets the sort order directly.
func (s *Sortable) SetOrder(o SortOrder) { s.order = o }

// ToggleOrder flips between ascending and descending.
func (s *Sortable) ToggleOrder() {
	s.order = s.order.Toggle()
}

// SetSortIndex makes column i the sort column. Selecting the column that is
// already active toggles the order instead; selecting a new column applies
// that column's default order. Unknown indices are ignored.
func (s *Sortable) SetSortIndex(i int) {
	if i == s.index {
		s.ToggleOrder()
		return
	}
	if i < 0 || i >= len(s.columns) {
		return
	}
	s.index = i
	s.order = s.columns[i].DefaultOrder
}

// ShortcutIndex returns the column bound to shortcut r.
func (s *Sortable) ShortcutIndex(r rune) (int, bool) {
	if r == 0 {
		return 0, false
	}
	for i, c := range s.columns {
		if c.Shortcut == r && !c.Hidden {
			return i, true
		}
	}
	return 0, false
}

// TrySelectLocation maps a click on the header row to a column and makes it
// the sort column. Clicks below the header, or tables too short to show a
// header, are ignored.
func (s *Sortable) TrySelectLocation(x, y int, state *State) (int, bool) {
	inner := state.InnerRect
	if inner.Height <= 1 || inner.Y != y {
		return 0, false
	}

	widths := state.CalculatedWidths
	if len(widths) == 0 {
		return 0, false
	}

	starts := make([]int, len(widths))
	pos := inner.X
	for i, w := range widths {
		starts[i] = pos
		pos += w + 1
	}

	// Greatest start <= x.
	slot := sort.Search(len(starts), func(i int) bool { return starts[i] > x }) - 1
	if slot < 0 {
		return 0, false
	}

	allocated := allocatedIndices(sortSpecs(s.columns), state.ColumnOffset)
	if slot >= len(allocated) {
		return 0, false
	}

	s.SetSortIndex(allocated[slot])
	return s.index, true
}

// HeaderCells renders header cells, suffixing the active column with the
// order arrow.
func (s *Sortable) HeaderCells(columns []ColumnSpec, widths []int, offset int) []string {
	cells := make([]string, 0, len(widths))
	for i, idx := range allocatedIndices(columns, offset) {
		if i >= len(widths) {
			break
		}
		if widths[i] == 0 {
			continue
		}
		text := columns[idx].Header()
		if idx == s.index {
			text += s.order.Arrow()
		}
		cells = append(cells, Truncate(text, widths[i]))
	}
	return cells
}

// visibleIndices returns the positions of the non-hidden columns.
func visibleIndices(columns []ColumnSpec) []int {
	out := make([]int, 0, len(columns))
	for i, c := range columns {
		if !c.IsHidden() {
			out = append(out, i)
		}
	}
	return out
}

// allocatedIndices returns the visible column positions starting at the
// offset-th visible column.
func allocatedIndices(columns []ColumnSpec, offset int) []int {
	visible := visibleIndices(columns)
	if offset <= 0 {
		return visible
	}
	if offset >= len(visible) {
		return nil
	}
	return visible[offset:]
}

func sortSpecs(columns []*SortColumn) []ColumnSpec {
	specs := make([]ColumnSpec, len(columns))
	for i, c := range columns {
		specs[i] = c
	}
	return specs
}
