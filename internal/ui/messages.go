package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	rterrors "github.com/rileyhilliard/rtop/internal/errors"
)

// PrintSuccess writes a green checkmark line.
func PrintSuccess(w io.Writer, msg string) {
	fmt.Fprintln(w, SuccessStyle().Render(SymbolSuccess)+" "+msg)
}

// PrintWarning writes a yellow warning line.
func PrintWarning(w io.Writer, msg string) {
	fmt.Fprintln(w, WarningStyle().Render(SymbolWarning+" "+msg))
}

// FormatError renders err for the terminal. Structured errors show their
// message, the underlying cause and the suggestion on separate lines.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var rerr *rterrors.Error
	if !errors.As(err, &rerr) {
		return ErrorStyle().Render(SymbolFail+" "+err.Error())
	}

	lines := []string{ErrorStyle().Render(SymbolFail + " " + rerr.Message)}
	if rerr.Cause != nil {
		lines = append(lines, MutedStyle().Render("  "+rerr.Cause.Error()))
	}
	if rerr.Suggestion != "" {
		lines = append(lines, InfoStyle().Render("  "+rerr.Suggestion))
	}
	return strings.Join(lines, "\n")
}
