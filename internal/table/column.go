package table

import "github.com/mattn/go-runewidth"

// BoundKind identifies how a column's width is constrained.
type BoundKind int

const (
	// BoundSoft columns flex between the header width and a desired width.
	BoundSoft BoundKind = iota
	// BoundHard columns have a fixed width or are dropped entirely.
	BoundHard
	// BoundFollowHeader columns are exactly as wide as their header.
	BoundFollowHeader
)

func (k BoundKind) String() string {
	switch k {
	case BoundSoft:
		return "soft"
	case BoundHard:
		return "hard"
	case BoundFollowHeader:
		return "follow-header"
	default:
		return "unknown"
	}
}

// WidthBound constrains how much horizontal space a column may take.
// Build one with Soft, SoftWithMax, Hard or FollowHeader.
type WidthBound struct {
	kind          BoundKind
	width         int
	maxPercentage float64
	hasPercentage bool
}

// Soft returns a flexible bound that grows up to desired cells.
func Soft(desired int) WidthBound {
	return WidthBound{kind: BoundSoft, width: desired}
}

// SoftWithMax returns a flexible bound that is additionally capped at a
// fraction (0..1) of the table width.
func SoftWithMax(desired int, maxPercentage float64) WidthBound {
	return WidthBound{kind: BoundSoft, width: desired, maxPercentage: maxPercentage, hasPercentage: true}
}

// Hard returns a fixed-width bound.
func Hard(width int) WidthBound {
	return WidthBound{kind: BoundHard, width: width}
}

// FollowHeader returns a bound that tracks the header's rendered width.
func FollowHeader() WidthBound {
	return WidthBound{kind: BoundFollowHeader}
}

// Kind reports the bound variant.
func (b WidthBound) Kind() BoundKind { return b.kind }

// Desired returns the desired width of a soft bound, or the fixed width of a
// hard bound. It is zero for FollowHeader.
func (b WidthBound) Desired() int { return b.width }

// MaxPercentage returns the soft cap as a fraction of the table width and
// whether one was set.
func (b WidthBound) MaxPercentage() (float64, bool) {
	return b.maxPercentage, b.hasPercentage
}

// withDesired returns a copy of a soft bound with a new desired width.
// Other kinds are returned unchanged.
func (b WidthBound) withDesired(desired int) WidthBound {
	if b.kind != BoundSoft {
		return b
	}
	b.width = desired
	return b
}

// ColumnSpec is the static description of one table column.
type ColumnSpec interface {
	// Header returns the display text of the column header.
	Header() string
	// HeaderWidth is the minimum number of cells the header needs.
	HeaderWidth() int
	// Bound returns the column's width constraint.
	Bound() WidthBound
	// IsHidden reports whether the column is excluded from layout.
	IsHidden() bool
	// SetHidden toggles column visibility.
	SetHidden(hidden bool)
	// SetBound replaces the width bound. The bound kind must not change.
	SetBound(b WidthBound)
}

// Column is a plain, unsortable column.
type Column struct {
	Name   string
	Width  WidthBound
	Hidden bool
}

// NewColumn creates a visible column.
func NewColumn(name string, bound WidthBound) *Column {
	return &Column{Name: name, Width: bound}
}

// Header returns the column name.
func (c *Column) Header() string { return c.Name }

// HeaderWidth returns the display width of the column name.
func (c *Column) HeaderWidth() int { return runewidth.StringWidth(c.Name) }

// Bound returns the width constraint.
func (c *Column) Bound() WidthBound { return c.Width }

// IsHidden reports whether the column is hidden.
func (c *Column) IsHidden() bool { return c.Hidden }

// SetHidden shows or hides the column.
func (c *Column) SetHidden(hidden bool) { c.Hidden = hidden }

// SetBound replaces the width constraint.
func (c *Column) SetBound(bound WidthBound) { c.Width = bound }

// SortColumn is a column that can drive the table's sort order.
type SortColumn struct {
	Column

	// Shortcut selects this column as the sort column when pressed. Zero
	// means no shortcut.
	Shortcut rune

	// DefaultOrder is applied when the column becomes the sort column.
	DefaultOrder SortOrder
}

// NewSortColumn creates a visible sortable column defaulting to ascending order.
func NewSortColumn(name string, bound WidthBound) *SortColumn {
	return &SortColumn{Column: Column{Name: name, Width: bound}, DefaultOrder: Ascending}
}

// WithShortcut sets the sort shortcut key.
func (c *SortColumn) WithShortcut(r rune) *SortColumn {
	c.Shortcut = r
	return c
}

// Descending makes descending the default order for this column.
func (c *SortColumn) Descending() *SortColumn {
	c.DefaultOrder = Descending
	return c
}

// HeaderWidth reserves one extra cell for the sort arrow.
func (c *SortColumn) HeaderWidth() int {
	return runewidth.StringWidth(c.Name) + 1
}
