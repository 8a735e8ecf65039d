package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"callsheet/internal/config"
	"callsheet/internal/roster"
)

// Column widths for the roster table
const (
	ColSeqWidth    = 4
	ColNameWidth   = 24
	ColPhoneWidth  = 14
	ColStatusWidth = 16
)

// rowItem wraps a roster entry for the list component
type rowItem struct {
	entry *roster.Entry
}

func (i rowItem) FilterValue() string { return i.entry.Name }

// groupItem is a collapsible section header for an assigned caller
type groupItem struct {
	name      string
	collapsed bool
	rows      int // visible rows in the group
}

func (i groupItem) FilterValue() string { return i.name }

// rowDelegate renders roster rows and group headers
type rowDelegate struct {
	theme theme
	width int
}

func newRowDelegate(t theme) *rowDelegate {
	return &rowDelegate{theme: t, width: 80}
}

func (d *rowDelegate) SetWidth(w int) { d.width = w }

func (d *rowDelegate) Height() int                             { return 1 }
func (d *rowDelegate) Spacing() int                            { return 0 }
func (d *rowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d *rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	switch i := item.(type) {
	case groupItem:
		d.renderGroup(w, m, index, i)
	case rowItem:
		d.renderRow(w, m, index, i)
	}
}

func (d *rowDelegate) renderGroup(w io.Writer, m list.Model, index int, i groupItem) {
	marker := "▾"
	if i.collapsed {
		marker = "▸"
	}
	line := fmt.Sprintf("%s %s", marker, i.name)
	line += d.theme.muted.Render(fmt.Sprintf("  (%d)", i.rows))

	rendered := d.theme.groupHeader.Render(ansi.Truncate(line, d.width-2, "…"))
	if index == m.Index() {
		rendered = d.theme.selected.Render(ansi.Strip(rendered))
	}
	fmt.Fprint(w, rendered)
}

func (d *rowDelegate) renderRow(w io.Writer, m list.Model, index int, i rowItem) {
	t := d.theme
	e := i.entry

	seq := padDisplay(renderNode(e.Cells[0].Content(), t), ColSeqWidth)
	name := padDisplay(renderNode(e.Cells[1].Content(), t), ColNameWidth)
	phone := padDisplay(renderNode(e.Cells[2].Content(), t), ColPhoneWidth)
	status := padDisplay(renderNode(e.Cells[3].Content(), t), ColStatusWidth)

	remarksWidth := d.width - ColSeqWidth - ColNameWidth - ColPhoneWidth - ColStatusWidth - 10
	if remarksWidth < 8 {
		remarksWidth = 8
	}
	remarks := ansi.Truncate(renderNode(e.Cells[4].Content(), t), remarksWidth, "…")

	line := fmt.Sprintf("%s  %s  %s  %s  %s", seq, name, phone, status, remarks)
	if index == m.Index() {
		line = t.selected.Render(ansi.Strip(line))
	}
	fmt.Fprint(w, "  "+line)
}

// renderNode converts a cell's markup tree into a styled terminal
// string. Marks get the highlight style, badges their status color,
// links an underline; plain structure renders as-is.
func renderNode(n *roster.Node, t theme) string {
	if n == nil {
		return ""
	}
	if n.Kind == roster.TextNode {
		return n.Text
	}

	switch n.Class {
	case roster.ClassMark:
		return t.mark.Render(n.FlatText())
	case roster.ClassBadge:
		text := n.FlatText()
		return t.badgeStyle(config.Global().StatusFor(text)).Render(text)
	case roster.ClassLink:
		return t.link.Render(n.FlatText())
	}

	var b strings.Builder
	for _, ch := range n.Children {
		b.WriteString(renderNode(ch, t))
	}
	return b.String()
}

// padDisplay pads or truncates a styled string to a display width
func padDisplay(s string, width int) string {
	w := ansi.StringWidth(s)
	if w > width {
		return ansi.Truncate(s, width-1, "…")
	}
	return s + strings.Repeat(" ", width-w)
}
