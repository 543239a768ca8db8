package table

import "math"

// CalculateWidths distributes totalWidth cells among the visible columns.
//
// Columns are visited left to right, or right to left when leftToRight is
// false. Allocation stops at the first column that cannot fit, so the result
// is always a prefix (in traversal order) of the visible columns, returned in
// left-to-right order. Every allocated column is followed by a one-cell gap.
//
// Cells left over after allocation are spread evenly across the allocated
// columns, with the remainder going one cell each to the earliest-visited
// columns. The result always satisfies
//
//	sum(widths) + len(widths) - 1 <= totalWidth
func CalculateWidths(columns []ColumnSpec, totalWidth int, leftToRight bool) []int {
	if totalWidth <= 0 || len(columns) == 0 {
		return nil
	}

	order := make([]ColumnSpec, 0, len(columns))
	for _, c := range columns {
		if !c.IsHidden() {
			order = append(order, c)
		}
	}
	if !leftToRight {
		reverseColumns(order)
	}

	remaining := totalWidth
	widths := make([]int, 0, len(order))

	for _, c := range order {
		width := columnAllocation(c, totalWidth, remaining)
		if width <= 0 || width > remaining {
			break
		}
		widths = append(widths, width)
		remaining = saturatingSub(remaining, width+1)
	}

	if len(widths) == 0 {
		return nil
	}

	// Only the gaps between columns are reserved, not one after the last.
	used := len(widths) - 1
	for _, w := range widths {
		used += w
	}
	redistribute(widths, totalWidth-used)

	if !leftToRight {
		reverseInts(widths)
	}
	return widths
}

// columnAllocation returns how many cells a column wants given the space
// still available. A return of zero or more than remaining means the column
// does not fit.
func columnAllocation(c ColumnSpec, totalWidth, remaining int) int {
	bound := c.Bound()

	switch bound.Kind() {
	case BoundHard:
		return bound.Desired()
	case BoundFollowHeader:
		return c.HeaderWidth()
	}

	minWidth := c.HeaderWidth()
	if minWidth > remaining {
		return minWidth
	}

	desired := bound.Desired()
	softLimit := desired
	if pct, ok := bound.MaxPercentage(); ok {
		softLimit = int(math.Ceil(pct * float64(totalWidth)))
	}
	softLimit = max(softLimit, minWidth)

	return min(softLimit, desired, remaining)
}

// redistribute hands leftover cells to the allocated columns in place.
func redistribute(widths []int, leftover int) {
	k := len(widths)
	if k == 0 || leftover <= 0 {
		return
	}

	each := leftover / k
	extra := leftover % k
	for i := range widths {
		widths[i] += each
		if i < extra {
			widths[i]++
		}
	}
}

func saturatingSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}

func reverseColumns(s []ColumnSpec) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
