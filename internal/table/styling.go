package table

import "github.com/charmbracelet/lipgloss"

// Default table palette.
const (
	ColorHeader            = lipgloss.Color("#00FFFF")
	ColorText              = lipgloss.Color("#FFFFFF")
	ColorSelectedFg        = lipgloss.Color("#0A0A0F")
	ColorSelectedBg        = lipgloss.Color("#FF2E97")
	ColorBorder            = lipgloss.Color("#2A2A4A")
	ColorHighlightedBorder = lipgloss.Color("#FF2E97")
	ColorTitle             = lipgloss.Color("#B4B4D0")
)

// Styling holds the styles a table is drawn with.
type Styling struct {
	Header            lipgloss.Style
	Text              lipgloss.Style
	SelectedText      lipgloss.Style
	Border            lipgloss.Style
	HighlightedBorder lipgloss.Style
	Title             lipgloss.Style
	BorderType        lipgloss.Border
}

// DefaultStyling returns the stock table styles.
func DefaultStyling() Styling {
	return Styling{
		Header:            lipgloss.NewStyle().Foreground(ColorHeader).Bold(true),
		Text:              lipgloss.NewStyle().Foreground(ColorText),
		SelectedText:      lipgloss.NewStyle().Foreground(ColorSelectedFg).Background(ColorSelectedBg),
		Border:            lipgloss.NewStyle().Foreground(ColorBorder),
		HighlightedBorder: lipgloss.NewStyle().Foreground(ColorHighlightedBorder),
		Title:             lipgloss.NewStyle().Foreground(ColorTitle).Bold(true),
		BorderType:        lipgloss.RoundedBorder(),
	}
}

// Palette is a set of color overrides, typically loaded from config. Empty
// fields keep the default.
type Palette struct {
	Header            string
	Text              string
	SelectedFg        string
	SelectedBg        string
	Border            string
	HighlightedBorder string
	Title             string
}

// StylingFromPalette returns DefaultStyling with the palette's colors applied.
func StylingFromPalette(p Palette) Styling {
	s := DefaultStyling()
	if p.Header != "" {
		s.Header = s.Header.Foreground(lipgloss.Color(p.Header))
	}
	if p.Text != "" {
		s.Text = s.Text.Foreground(lipgloss.Color(p.Text))
	}
	if p.SelectedFg != "" {
		s.SelectedText = s.SelectedText.Foreground(lipgloss.Color(p.SelectedFg))
	}
	if p.SelectedBg != "" {
		s.SelectedText = s.SelectedText.Background(lipgloss.Color(p.SelectedBg))
	}
	if p.Border != "" {
		s.Border = s.Border.Foreground(lipgloss.Color(p.Border))
	}
	if p.HighlightedBorder != "" {
		s.HighlightedBorder = s.HighlightedBorder.Foreground(lipgloss.Color(p.HighlightedBorder))
	}
	if p.Title != "" {
		s.Title = s.Title.Foreground(lipgloss.Color(p.Title))
	}
	return s
}
