package tui

import (
	"fmt"
	"strings"
)

// View renders the full screen
func (m Model) View() string {
	t := m.theme

	var b strings.Builder

	b.WriteString(t.title.Render("Call Sheet"))
	b.WriteString("  ")
	b.WriteString(m.toolbarSummary())
	b.WriteString("\n\n")

	b.WriteString(m.searchInput.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(t.err.Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n")
	}

	if m.panelOpen {
		b.WriteString(m.renderPanel())
		b.WriteString("\n")
	}

	b.WriteString(m.columnHeaderLine())
	b.WriteString("\n")

	if m.noResults {
		b.WriteString(t.noResults.Render("  No matching entries"))
		b.WriteString("\n")
	}

	b.WriteString(m.rowList.View())
	b.WriteString("\n")

	help := fmt.Sprintf("/ search · f filter · 1-7 status · z fold group · c clear · r reload · q quit   %d of %d",
		m.counts.Visible, m.counts.Total)
	b.WriteString(t.help.Render(help))

	return b.String()
}

// columnHeaderLine renders the fixed table header row
func (m Model) columnHeaderLine() string {
	headers := m.headers
	if len(headers) < 5 {
		headers = []string{"#", "Name", "Phone", "Status", "Remarks"}
	}

	line := fmt.Sprintf("  %s  %s  %s  %s  %s",
		padDisplay(headers[0], ColSeqWidth),
		padDisplay(headers[1], ColNameWidth),
		padDisplay(headers[2], ColPhoneWidth),
		padDisplay(headers[3], ColStatusWidth),
		headers[4],
	)
	return m.theme.columnHeader.Render(line)
}
