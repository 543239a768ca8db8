package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/rtop/internal/config"
	"github.com/rileyhilliard/rtop/internal/table"
	"github.com/rileyhilliard/rtop/internal/widgets"
)

// Header and footer take one line each.
const (
	headerHeight = 1
	footerHeight = 1
)

// Header meter sizes.
const (
	meterBarWidth   = 10
	meterGraphWidth = 16
)

// placement is where one widget is drawn.
type placement struct {
	widget widgets.Widget
	rect   table.Rect
}

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	if m.confirmKill != nil {
		return m.renderKillDialog()
	}

	body := m.renderBody()
	m.redraw.force = false

	parts := []string{m.renderHeader()}
	if body != "" {
		parts = append(parts, body)
	}
	if m.height > headerHeight+footerHeight {
		parts = append(parts, m.renderFooter())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderHeader renders the title bar with CPU and memory meters.
func (m Model) renderHeader() string {
	title := TitleStyle.Render("rtop")
	segments := []string{title}

	if snap := m.snapshot; snap != nil {
		segments = append(segments,
			m.meter("CPU", snap.CPU.Total, m.history.CPU(meterGraphWidth)),
			m.meter("Mem", snap.Memory.Percent, m.history.Memory(meterGraphWidth)),
		)
	} else {
		segments = append(segments, LabelStyle.Render("collecting..."))
	}

	if !m.lastUpdate.IsZero() {
		segments = append(segments, LabelStyle.Render(m.lastUpdate.Format("15:04:05")))
	}
	if m.frozen {
		segments = append(segments, FrozenStyle.Render("FROZEN"))
	}
	if m.lastErr != nil {
		segments = append(segments, ErrorStyle.Render(m.lastErr.Error()))
	}

	line := strings.Join(segments, "  ")
	return HeaderStyle.Width(m.width).MaxWidth(m.width).MaxHeight(headerHeight).Render(line)
}

// meter renders "label bar pct sparkline" for one header metric.
func (m Model) meter(label string, percent float64, history []float64) string {
	parts := []string{
		LabelStyle.Render(label),
		ProgressBar(meterBarWidth, percent),
		MetricStyle(percent).Render(fmt.Sprintf("%5.1f%%", percent)),
	}
	if len(history) > 1 {
		parts = append(parts, RenderSparkline(history, meterGraphWidth, ColorGraph))
	}
	return strings.Join(parts, " ")
}

// renderFooter renders the short key help.
func (m Model) renderFooter() string {
	h := help.New()
	h.Width = m.width
	return FooterStyle.MaxWidth(m.width).Render(h.ShortHelpView(keys.ShortHelp()))
}

// bodyHeight is the number of lines available to widgets.
func (m Model) bodyHeight() int {
	reserved := headerHeight
	if m.height > headerHeight+footerHeight {
		reserved += footerHeight
	}
	return max(m.height-reserved, 0)
}

// renderBody draws every visible widget and stitches the frames together.
func (m Model) renderBody() string {
	layout := m.layout()
	if len(layout) == 0 {
		return ""
	}

	rendered := make(map[widgets.Widget]string, len(layout))
	for _, p := range layout {
		info := table.DrawInfo{
			Rect:              p.rect,
			ForceRedraw:       m.redraw.force,
			RecalculateWidths: m.redraw.force,
			Selection:         table.NewSelectionState(m.expanded, p.widget == m.Focused()),
		}
		rendered[p.widget] = p.widget.Draw(info).Render()
	}

	// Group placements into rows by their top edge, preserving order.
	var rows []string
	for i := 0; i < len(layout); {
		j := i
		var cells []string
		for j < len(layout) && layout[j].rect.Y == layout[i].rect.Y {
			cells = append(cells, rendered[layout[j].widget])
			j++
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		i = j
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// layout computes the rectangles for the visible widgets. The expanded
// widget takes the whole body. Otherwise the process table takes the bottom
// half and the remaining widgets are laid out two per row above it.
func (m Model) layout() []placement {
	bodyH := m.bodyHeight()
	if bodyH <= 0 || m.width <= 0 || len(m.widgets) == 0 {
		return nil
	}
	top := headerHeight

	if m.expanded {
		w := m.Focused()
		if w == nil {
			return nil
		}
		return []placement{{widget: w, rect: table.Rect{X: 0, Y: top, Width: m.width, Height: bodyH}}}
	}

	var proc widgets.Widget
	var others []widgets.Widget
	for _, w := range m.widgets {
		if w.Name() == config.WidgetProcess && proc == nil {
			proc = w
			continue
		}
		others = append(others, w)
	}

	procH := 0
	switch {
	case proc != nil && len(others) == 0:
		procH = bodyH
	case proc != nil:
		procH = bodyH / 2
	}
	gridH := bodyH - procH

	var out []placement
	numRows := (len(others) + 1) / 2
	if numRows > 0 && gridH > 0 {
		y := top
		for r := 0; r < numRows; r++ {
			h := gridH / numRows
			if r == numRows-1 {
				h = gridH - (y - top)
			}
			pair := others[r*2 : min(r*2+2, len(others))]
			if len(pair) == 1 {
				out = append(out, placement{widget: pair[0], rect: table.Rect{X: 0, Y: y, Width: m.width, Height: h}})
			} else {
				left := m.width / 2
				out = append(out,
					placement{widget: pair[0], rect: table.Rect{X: 0, Y: y, Width: left, Height: h}},
					placement{widget: pair[1], rect: table.Rect{X: left, Y: y, Width: m.width - left, Height: h}},
				)
			}
			y += h
		}
	}

	if proc != nil && procH > 0 {
		out = append(out, placement{widget: proc, rect: table.Rect{X: 0, Y: top + gridH, Width: m.width, Height: procH}})
	}
	return dropEmpty(out)
}

// dropEmpty removes placements with no area.
func dropEmpty(ps []placement) []placement {
	out := ps[:0]
	for _, p := range ps {
		if p.rect.Width > 0 && p.rect.Height > 0 {
			out = append(out, p)
		}
	}
	return out
}
