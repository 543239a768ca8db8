package monitor

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Help overlay styles
var (
	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Background(ColorSurfaceBg).
			Padding(1, 2)

	helpTitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			MarginBottom(1)
)

// renderHelpOverlay renders a centered box listing every key binding.
func (m Model) renderHelpOverlay() string {
	h := help.New()
	h.Styles.FullKey = h.Styles.FullKey.Foreground(ColorTextPrimary).Bold(true)
	h.Styles.FullDesc = h.Styles.FullDesc.Foreground(ColorTextSecondary)

	content := lipgloss.JoinVertical(lipgloss.Left,
		helpTitleStyle.Render("Keyboard Shortcuts"),
		h.FullHelpView(keys.FullHelp()),
		"",
		LabelStyle.Render("Press ? or esc to close"),
	)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		helpBoxStyle.Render(content),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(ColorDarkBg),
	)
}
