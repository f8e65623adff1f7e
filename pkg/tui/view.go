package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/tessellate/pkg/preview"
)

var statusStyle = lipgloss.NewStyle().Faint(true)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "initializing..."
	}

	var sb strings.Builder
	if !m.canvas.IsEmpty() {
		opts := m.opts
		if r, ok := m.FocusedRegion(); ok {
			opts.Highlight = r.Name
		}
		sb.WriteString(preview.Render(m.canvas, m.regions, opts))
		sb.WriteByte('\n')
	}
	sb.WriteString(m.renderStatusBar(int(m.status.Width)))
	return sb.String()
}

// renderStatusBar renders a one-line status bar with the active preset,
// the focused region and key hints. It pads or truncates to exactly width
// cells.
func (m Model) renderStatusBar(width int) string {
	if width <= 0 {
		return ""
	}

	parts := []string{"preset " + m.presetTitle()}
	switch {
	case m.err != nil:
		parts = append(parts, "error: "+m.err.Error())
	case len(m.regions) > 0:
		r, _ := m.FocusedRegion()
		parts = append(parts, fmt.Sprintf("%s %s [%d/%d]", r.Name, r.Rect, m.focused+1, len(m.regions)))
	}
	stats := m.solver.Stats()
	parts = append(parts, fmt.Sprintf("cache %d/%d", stats.Hits, stats.Hits+stats.Misses))

	hints := make([]string, 0, len(keys.shortHelp()))
	for _, b := range keys.shortHelp() {
		h := b.Help()
		hints = append(hints, h.Key+":"+h.Desc)
	}
	parts = append(parts, strings.Join(hints, "  "))

	line := ansi.Truncate(strings.Join(parts, "  |  "), width, "…")
	if pad := width - ansi.StringWidth(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return statusStyle.Render(line)
}
