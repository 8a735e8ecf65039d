package tui

import (
	"fmt"
	"strings"
)

// panelHeight is the vertical space the open filter panel occupies,
// including its border
func (m Model) panelHeight() int {
	// one line per status button, plus title and border
	return len(m.cfg.Statuses) + 3
}

// renderPanel draws the filter panel: one button per configured status
// with its live count. The active filter is highlighted from state, and
// the cursor row carries a marker.
func (m Model) renderPanel() string {
	t := m.theme

	var b strings.Builder
	b.WriteString(t.muted.Render("Filter by status"))
	b.WriteString("\n")

	for idx, def := range m.cfg.Statuses {
		cursor := "  "
		if idx == m.panelIdx {
			cursor = t.buttonCursor.Render("> ")
		}

		label := fmt.Sprintf("%d %s", idx+1, def.Label)
		button := t.buttonInactive.Render(label)
		if m.state.Status == def.Key {
			button = t.buttonActive.Render(label)
		}

		count := t.countBadge.Render(fmt.Sprintf("%d", m.counts.ByStatus[def.Key]))

		b.WriteString(fmt.Sprintf("%s%s %s", cursor, button, count))
		if idx < len(m.cfg.Statuses)-1 {
			b.WriteString("\n")
		}
	}

	return t.panelBorder.Render(b.String())
}

// toolbarSummary is the always-visible one-line count strip above the
// table: total, visible and per-status counts for the statuses that
// have any rows
func (m Model) toolbarSummary() string {
	t := m.theme

	parts := []string{
		fmt.Sprintf("%d of %d", m.counts.Visible, m.counts.Total),
	}
	for _, def := range m.cfg.Statuses {
		n := m.counts.ByStatus[def.Key]
		if n == 0 {
			continue
		}
		label := def.Label
		if m.state.Status == def.Key {
			label = t.buttonCursor.Render(label)
		}
		parts = append(parts, fmt.Sprintf("%s %d", label, n))
	}
	if m.counts.Unclassified > 0 {
		parts = append(parts, fmt.Sprintf("other %d", m.counts.Unclassified))
	}

	return t.status.Render(strings.Join(parts, "  ·  "))
}
