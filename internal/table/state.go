package table

// ScrollDirection records which way the selection last moved.
type ScrollDirection int

const (
	// ScrollDown keeps the selection pinned to the bottom of the window.
	ScrollDown ScrollDirection = iota
	// ScrollUp keeps the selection pinned to the top of the window.
	ScrollUp
)

func (d ScrollDirection) String() string {
	if d == ScrollUp {
		return "up"
	}
	return "down"
}

// Rect is a screen rectangle in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// State is the scroll window and selection of a table. It is owned by a
// single Table and mutated only through the table.
type State struct {
	// DisplayStart is the index of the first visible row.
	DisplayStart int
	// Current is the index of the selected row.
	Current int
	// Direction is the direction of the last selection move.
	Direction ScrollDirection
	// CalculatedWidths caches the widths of the columns that fit.
	CalculatedWidths []int
	// ColumnOffset is how many visible columns sit left of the first
	// column in CalculatedWidths. It is only non-zero for tables allocated
	// right to left that could not fit every column.
	ColumnOffset int
	// InnerRect is the drawable area from the last draw.
	InnerRect Rect
}

// StartPosition recomputes DisplayStart so that Current is visible in a
// window of visible rows. When forceRedraw is set the window is treated as
// wiped and placed from row zero.
//
// Moving down leaves the window alone while the selection is still inside
// it, so a stationary selection never makes the view jitter between ticks.
func (s *State) StartPosition(visible int, forceRedraw bool) {
	start := s.DisplayStart
	if forceRedraw {
		start = 0
	}

	switch s.Direction {
	case ScrollDown:
		switch {
		case s.Current >= start && s.Current < start+visible:
			// Still visible.
		case s.Current >= visible:
			start = s.Current - visible + 1
		default:
			start = 0
		}
	case ScrollUp:
		switch {
		case s.Current <= start:
			start = s.Current
		case s.Current >= start+visible:
			start = s.Current - visible + 1
		}
	}

	s.DisplayStart = max(start, 0)
}

// SetFirst selects the first row.
func (s *State) SetFirst() {
	s.Current = 0
	s.Direction = ScrollUp
}

// SetLast selects the last of n rows.
func (s *State) SetLast(n int) {
	s.Current = saturatingSub(n, 1)
	s.Direction = ScrollDown
}

// IncrementPosition moves the selection by delta within n rows. The move is
// only committed if it lands on an existing row; the new index and true are
// returned in that case.
func (s *State) IncrementPosition(delta, n int) (int, bool) {
	if delta == 0 {
		return 0, false
	}

	next := s.Current + delta
	if next < 0 || next >= n {
		return 0, false
	}

	s.Current = next
	if delta < 0 {
		s.Direction = ScrollUp
	} else {
		s.Direction = ScrollDown
	}
	return next, true
}

// SetPosition selects index, clamped to [0, n). The scroll direction is
// left untouched.
func (s *State) SetPosition(index, n int) {
	s.Current = clamp(index, 0, saturatingSub(n, 1))
}

// UpdateNumEntries reconciles the selection with a dataset of n rows. A
// selection past the end is clamped and the window is reset.
func (s *State) UpdateNumEntries(n int) {
	last := saturatingSub(n, 1)
	if s.Current > last {
		s.Current = last
		s.DisplayStart = 0
		s.Direction = ScrollDown
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
