package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Semantic colors for CLI output. ANSI codes keep them readable on light
// and dark terminals alike.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
	ColorMuted   lipgloss.Color = "8" // Gray (bright black)
)

// Styles for each semantic color.
func SuccessStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(ColorSuccess) }
func ErrorStyle() lipgloss.Style   { return lipgloss.NewStyle().Foreground(ColorError).Bold(true) }
func WarningStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(ColorWarning) }
func InfoStyle() lipgloss.Style    { return lipgloss.NewStyle().Foreground(ColorInfo) }
func MutedStyle() lipgloss.Style   { return lipgloss.NewStyle().Foreground(ColorMuted) }

// DisableColors switches lipgloss to plain ASCII output for every style,
// including the dashboard's.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ColorsRequested reports whether color output is wanted given the
// --no-color flag and the NO_COLOR convention (https://no-color.org).
func ColorsRequested(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}
	_, set := os.LookupEnv("NO_COLOR")
	return !set
}
