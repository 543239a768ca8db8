package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks text that was cut to fit a cell.
const Ellipsis = "…"

// Truncate shortens s to at most width display cells, ending in an ellipsis
// when anything was cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, Ellipsis)
}

// PadRight truncates s to width cells and pads it with spaces to exactly
// width cells.
func PadRight(s string, width int) string {
	s = Truncate(s, width)
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// PadLeft is PadRight with the padding before the text.
func PadLeft(s string, width int) string {
	s = Truncate(s, width)
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}
