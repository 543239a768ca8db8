package table

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// SelectionState is how the host widget relates to the user's focus.
type SelectionState int

const (
	NotSelected SelectionState = iota
	Selected
	Expanded
)

// NewSelectionState derives the selection state from the host's focus flags.
func NewSelectionState(expanded, onWidget bool) SelectionState {
	switch {
	case expanded:
		return Expanded
	case onWidget:
		return Selected
	default:
		return NotSelected
	}
}

// escHint is appended to the title of an expanded table.
const escHint = " Esc to go back "

// NoDataText is shown when a table is drawn before it ever had rows.
const NoDataText = "No data"

// DrawInfo is everything a table needs for one draw call.
type DrawInfo struct {
	Rect              Rect
	ForceRedraw       bool
	RecalculateWidths bool
	Selection         SelectionState
}

// OnWidget reports whether the table has focus.
func (d DrawInfo) OnWidget() bool {
	return d.Selection == Selected || d.Selection == Expanded
}

// Frame is the result of drawing a table: plain cell text plus the layout
// needed to turn it into styled terminal lines with Render.
type Frame struct {
	// Rect is the full draw area, Inner the area inside the border.
	Rect  Rect
	Inner Rect

	// Title is the title text including any scroll position, and TitleFits
	// reports whether the scroll position could be included.
	Title     string
	TitleFits bool
	Expanded  bool

	// ShowHeader is false when the table is too short for a header.
	ShowHeader bool
	Header     []string
	Gap        int

	// Widths are the widths of the columns that fit, left to right.
	Widths []int
	Rows   [][]string

	// Selected is the index into Rows of the highlighted row, or -1.
	Selected int

	NoData      bool
	Basic       bool
	Highlighted bool

	styling Styling
}

// Draw lays out the table for info and returns the frame to render. It
// updates the scroll window, the cached widths, and the inner rectangle.
func (t *Table[R]) Draw(info DrawInfo) Frame {
	onWidget := info.OnWidget()
	frame := Frame{
		Rect:        info.Rect,
		Selected:    -1,
		Basic:       t.props.IsBasic,
		Highlighted: onWidget,
		Expanded:    info.Selection == Expanded,
		styling:     t.styling,
	}

	inner := innerRect(info.Rect, t.props.IsBasic)
	t.state.InnerRect = inner
	frame.Inner = inner
	frame.Title, frame.TitleFits = t.title(info)
	t.titleFits = frame.TitleFits

	if inner.Width <= 0 || inner.Height <= 0 {
		return frame
	}

	if info.RecalculateWidths || info.ForceRedraw || t.widthsDirty || inner.Width != t.lastWidth {
		t.recalculateWidths(inner.Width)
	}
	frame.Widths = t.state.CalculatedWidths

	frame.ShowHeader = inner.Height > 1
	headerHeight := 0
	if frame.ShowHeader {
		headerHeight = 1
		if info.Rect.Height >= TableGapHeightLimit {
			frame.Gap = max(t.props.TableGap, 0)
		}
	}
	t.rowOffset = headerHeight + frame.Gap

	if len(t.data) == 0 && t.firstDraw {
		frame.NoData = true
		frame.ShowHeader = false
		frame.Gap = 0
		return frame
	}

	if t.firstDraw {
		t.firstDraw = false
		if t.hasFirst {
			t.SetPosition(t.firstIndex)
		}
	}

	numRows := max(inner.Height-headerHeight-frame.Gap, 0)
	t.visibleRows = numRows
	if numRows > 0 {
		t.state.StartPosition(numRows, info.ForceRedraw)
	}

	start := min(t.state.DisplayStart, len(t.data))
	end := min(len(t.data), start+numRows)

	visible := allocatedIndices(t.columns, t.state.ColumnOffset)
	widths := t.state.CalculatedWidths
	for _, row := range t.data[start:end] {
		cells := make([]string, 0, len(widths))
		for p, w := range widths {
			if p >= len(visible) {
				break
			}
			cells = append(cells, Truncate(row.CellText(visible[p]), w))
		}
		frame.Rows = append(frame.Rows, cells)
	}

	if onWidget || t.props.ShowCurrentWhenUnfocused {
		if sel := t.state.Current - start; sel >= 0 && sel < len(frame.Rows) {
			frame.Selected = sel
		}
	}

	if frame.ShowHeader {
		frame.Header = t.header.HeaderCells(t.columns, widths, t.state.ColumnOffset)
	}

	return frame
}

// title builds the title text. The scroll position is only included if it
// leaves room for the corners.
func (t *Table[R]) title(info DrawInfo) (string, bool) {
	if t.props.Title == "" {
		return "", true
	}
	if !t.props.ShowScrollPosition {
		return t.props.Title, true
	}

	full := t.props.Title + "(" + strconv.Itoa(t.state.Current+1) + " of " + strconv.Itoa(len(t.data)) + ") "
	if runewidth.StringWidth(full)+2 <= info.Rect.Width {
		return full, true
	}
	return t.props.Title, false
}

// innerRect returns the area inside the border. Basic tables lose one
// column on each side for side borders or a margin.
func innerRect(r Rect, basic bool) Rect {
	if basic {
		return Rect{X: r.X + 1, Y: r.Y, Width: max(r.Width-2, 0), Height: r.Height}
	}
	return Rect{X: r.X + 1, Y: r.Y + 1, Width: max(r.Width-2, 0), Height: max(r.Height-2, 0)}
}

// Render turns the frame into exactly Rect.Height lines of Rect.Width cells.
func (f Frame) Render() string {
	if f.Rect.Width <= 0 || f.Rect.Height <= 0 {
		return ""
	}
	if f.Rect.Width < 2 {
		return strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", f.Rect.Width)+"\n", f.Rect.Height), "\n")
	}

	border := f.styling.Border
	if f.Highlighted {
		border = f.styling.HighlightedBorder
	}
	b := f.styling.BorderType

	body := f.bodyLines()
	lines := make([]string, 0, f.Rect.Height)

	switch {
	case f.Basic && f.Highlighted:
		for _, l := range body {
			lines = append(lines, border.Render(b.Left)+l+border.Render(b.Right))
		}
	case f.Basic:
		for _, l := range body {
			lines = append(lines, " "+l+" ")
		}
	default:
		lines = append(lines, f.topBorder(border))
		for _, l := range body {
			lines = append(lines, border.Render(b.Left)+l+border.Render(b.Right))
		}
		if f.Rect.Height > 1 {
			bottom := b.BottomLeft + strings.Repeat(b.Bottom, max(f.Rect.Width-2, 0)) + b.BottomRight
			lines = append(lines, border.Render(clipCells(bottom, f.Rect.Width)))
		}
	}

	if len(lines) > f.Rect.Height {
		lines = lines[:f.Rect.Height]
	}
	return strings.Join(lines, "\n")
}

// topBorder draws the top edge with the title embedded in it.
func (f Frame) topBorder(border lipgloss.Style) string {
	b := f.styling.BorderType
	inner := f.Rect.Width - 2

	title := Truncate(f.Title, inner)
	used := runewidth.StringWidth(title)
	content := f.styling.Title.Render(title)

	fill := inner - used
	if f.Expanded && fill >= runewidth.StringWidth(escHint)+1 {
		rest := strings.Repeat(b.Top, fill-runewidth.StringWidth(escHint)) + escHint
		content += border.Render(rest)
	} else {
		content += border.Render(strings.Repeat(b.Top, fill))
	}

	return border.Render(b.TopLeft) + content + border.Render(b.TopRight)
}

// bodyLines renders the lines inside the border, padded to the inner width.
func (f Frame) bodyLines() []string {
	w := f.Inner.Width
	blank := strings.Repeat(" ", w)
	lines := make([]string, 0, f.Inner.Height)

	if w > 0 && f.Inner.Height > 0 {
		if f.NoData {
			lines = append(lines, f.styling.Text.Render(PadRight(NoDataText, w)))
		} else {
			if f.ShowHeader {
				lines = append(lines, f.styling.Header.Render(f.joinCells(f.Header)))
				for i := 0; i < f.Gap; i++ {
					lines = append(lines, blank)
				}
			}
			for i, row := range f.Rows {
				style := f.styling.Text
				if i == f.Selected {
					style = f.styling.SelectedText
				}
				lines = append(lines, style.Render(f.joinCells(row)))
			}
		}
	}

	for len(lines) < f.Inner.Height {
		lines = append(lines, blank)
	}
	if len(lines) > f.Inner.Height {
		lines = lines[:f.Inner.Height]
	}
	return lines
}

// joinCells pads each cell to its column width, separates them with single
// spaces and pads the result to the inner width.
func (f Frame) joinCells(cells []string) string {
	var sb strings.Builder
	for i, w := range f.Widths {
		if i > 0 {
			sb.WriteByte(' ')
		}
		text := ""
		if i < len(cells) {
			text = cells[i]
		}
		sb.WriteString(PadRight(text, w))
	}
	return PadRight(sb.String(), f.Inner.Width)
}

func clipCells(s string, width int) string {
	return runewidth.Truncate(s, width, "")
}
