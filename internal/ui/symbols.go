package ui

// Status symbols for CLI output.
const (
	SymbolSuccess = "✓"
	SymbolFail    = "✗"
	SymbolWarning = "⚠"
)
