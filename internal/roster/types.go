package roster

import (
	"strconv"
	"strings"
)

// Cell holds one column's markup for a row. The pristine copy is cached
// lazily the first time the cell is restored or highlighted and is never
// overwritten afterwards; all highlighting is undone by restoring it.
type Cell struct {
	content  *Node
	pristine *Node
}

// NewCell wraps a markup tree as a cell
func NewCell(content *Node) *Cell {
	return &Cell{content: content}
}

// Content returns the current (possibly highlighted) markup
func (c *Cell) Content() *Node {
	c.ensurePristine()
	return c.content
}

// Restore rebuilds the cell content from the cached pristine copy
func (c *Cell) Restore() {
	c.ensurePristine()
	c.content = c.pristine.Clone()
}

func (c *Cell) ensurePristine() {
	if c.pristine == nil {
		c.pristine = c.content.Clone()
	}
}

// Pristine returns the cached original markup (read-only)
func (c *Cell) Pristine() *Node {
	c.ensurePristine()
	return c.pristine
}

// Entry is one roster row: ordered cells plus visibility state. The row
// itself is owned by the loader; the filter engine only mutates Hidden
// and the cells' highlight marks.
type Entry struct {
	Seq    int
	Name   string
	Phone  string
	Group  string // assigned caller; rows are grouped under it
	Cells  []*Cell
	Hidden bool

	statusCell int // index into Cells, -1 if the row has no status column
}

// NewEntry builds a row from canonical fields. Cells are laid out as
// sequence, name, phone (wa.me link), status (badge), remarks.
func NewEntry(seq int, name, phone, status, remarks, group string) *Entry {
	e := &Entry{
		Seq:        seq,
		Name:       name,
		Phone:      phone,
		Group:      group,
		statusCell: -1,
	}

	phoneCell := Span("")
	if phone != "" {
		phoneCell.Children = append(phoneCell.Children, Link(WhatsAppLink(phone), phone))
	}

	e.Cells = []*Cell{
		NewCell(Span("", Text(seqString(seq)))),
		NewCell(Span("", Text(name))),
		NewCell(phoneCell),
		NewCell(Span("", Badge(status))),
		NewCell(Span("", Text(remarks))),
	}
	e.statusCell = 3
	return e
}

// FlatText returns the row's concatenated cell text, cells separated by
// a single space
func (e *Entry) FlatText() string {
	parts := make([]string, 0, len(e.Cells))
	for _, c := range e.Cells {
		parts = append(parts, c.Content().FlatText())
	}
	return strings.Join(parts, " ")
}

// RestoreAll restores every cell to its pristine markup
func (e *Entry) RestoreAll() {
	for _, c := range e.Cells {
		c.Restore()
	}
}

// Badge returns the text of the row's status badge. The second return
// is false when the row has no badge at all; an empty string with true
// means the badge exists but is blank.
func (e *Entry) Badge() (string, bool) {
	if e.statusCell < 0 || e.statusCell >= len(e.Cells) {
		return "", false
	}
	badge := e.Cells[e.statusCell].Content().FindClass(ClassBadge)
	if badge == nil {
		return "", false
	}
	return badge.FlatText(), true
}

// WhatsAppLink builds a wa.me URL for a phone number, stripping
// everything but digits
func WhatsAppLink(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "https://wa.me/" + digits.String()
}

func seqString(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}
