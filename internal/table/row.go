package table

import (
	"cmp"
	"strings"
)

// Row is one entry of a table's dataset.
type Row interface {
	// CellText returns the text shown for the given column index.
	CellText(column int) string
}

// SortableRow is a Row that can be ordered by any of its columns.
type SortableRow interface {
	Row
	// SortKey returns the comparison key for the given column index.
	SortKey(column int) Key
}

// Key is a sort key: either a number or a string. Numbers order before
// strings; strings compare case-insensitively, falling back to a
// byte-wise comparison to keep the order total.
type Key struct {
	num   float64
	str   string
	isStr bool
}

// NumberKey returns a numeric sort key.
func NumberKey(v float64) Key {
	return Key{num: v}
}

// StringKey returns a textual sort key.
func StringKey(s string) Key {
	return Key{str: s, isStr: true}
}

// Compare returns -1, 0 or 1 as k sorts before, equal to, or after other.
func (k Key) Compare(other Key) int {
	switch {
	case !k.isStr && !other.isStr:
		return cmp.Compare(k.num, other.num)
	case k.isStr && other.isStr:
		if c := strings.Compare(strings.ToLower(k.str), strings.ToLower(other.str)); c != 0 {
			return c
		}
		return strings.Compare(k.str, other.str)
	case k.isStr:
		return 1
	default:
		return -1
	}
}
