// Package ui provides styled text output for rtop's non-interactive
// commands: status lines, warnings, and rendering of structured errors.
//
// Colors are ANSI codes so output follows the terminal theme. Call
// DisableColors for --no-color or when NO_COLOR is set; the profile change
// also applies to the dashboard since both render through lipgloss.
package ui
