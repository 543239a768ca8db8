package widgets

import "unicode/utf8"

// Table key bindings, as reported by tea.KeyMsg.String().
const (
	KeyUp           = "up"
	KeyUpK          = "k"
	KeyDown         = "down"
	KeyDownJ        = "j"
	KeyFirst        = "home"
	KeyFirstG       = "g"
	KeyLast         = "end"
	KeyLastG        = "G"
	KeyPageUp       = "pgup"
	KeyPageUpAlt    = "ctrl+u"
	KeyPageDown     = "pgdown"
	KeyPageDownAlt  = "ctrl+d"
	KeyCycleSort    = "s"
	KeyCycleSortAlt = "f6"
	KeyToggleOrder  = "I"
)

// navigator is the cursor movement part of a table.
type navigator interface {
	ScrollBy(delta int) (int, bool)
	ScrollToFirst()
	ScrollToLast()
	PageSize() int
}

// sorter is the sorting part of a sortable table.
type sorter interface {
	CycleSortColumn()
	ToggleOrder()
	TrySortShortcut(r rune) bool
}

// handleNavKey moves the selection of t. It reports whether key is a
// navigation key.
func handleNavKey(t navigator, key string) bool {
	switch key {
	case KeyUp, KeyUpK:
		t.ScrollBy(-1)
	case KeyDown, KeyDownJ:
		t.ScrollBy(1)
	case KeyFirst, KeyFirstG:
		t.ScrollToFirst()
	case KeyLast, KeyLastG:
		t.ScrollToLast()
	case KeyPageUp, KeyPageUpAlt:
		t.ScrollBy(-t.PageSize())
	case KeyPageDown, KeyPageDownAlt:
		t.ScrollBy(t.PageSize())
	default:
		return false
	}
	return true
}

// handleSortKey changes the sort of s. Single characters are tried as
// column shortcuts.
func handleSortKey(s sorter, key string) bool {
	switch key {
	case KeyCycleSort, KeyCycleSortAlt:
		s.CycleSortColumn()
		return true
	case KeyToggleOrder:
		s.ToggleOrder()
		return true
	}

	r, size := utf8.DecodeRuneInString(key)
	if size == 0 || size != len(key) {
		return false
	}
	return s.TrySortShortcut(r)
}
