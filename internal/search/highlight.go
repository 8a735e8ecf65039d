package search

import "callsheet/internal/roster"

// Highlight wraps every occurrence of the matcher's term found in the
// tree's text leaves in a mark span. Element nesting and attributes are
// left untouched; badge contents and existing marks are skipped.
//
// Highlighting is never applied incrementally: callers restore cells to
// pristine before every fresh pass, which makes restore-then-highlight
// reproducible regardless of how many passes came before.
func Highlight(n *roster.Node, m *Matcher) {
	if n == nil || m == nil || n.Kind != roster.SpanNode {
		return
	}
	if n.Class == roster.ClassBadge || n.Class == roster.ClassMark {
		return
	}

	var rebuilt []*roster.Node
	for _, child := range n.Children {
		if child.Kind == roster.TextNode {
			rebuilt = append(rebuilt, splitLeaf(child, m)...)
			continue
		}
		Highlight(child, m)
		rebuilt = append(rebuilt, child)
	}
	n.Children = rebuilt
}

// splitLeaf splits a text leaf around the matches, wrapping each match
// in a mark span. A leaf without matches is returned unchanged.
func splitLeaf(leaf *roster.Node, m *Matcher) []*roster.Node {
	matches := m.Find(leaf.Text)
	if len(matches) == 0 {
		return []*roster.Node{leaf}
	}

	var out []*roster.Node
	pos := 0
	for _, match := range matches {
		if match.Offset > pos {
			out = append(out, roster.Text(leaf.Text[pos:match.Offset]))
		}
		out = append(out, roster.Mark(leaf.Text[match.Offset:match.Offset+match.Length]))
		pos = match.Offset + match.Length
	}
	if pos < len(leaf.Text) {
		out = append(out, roster.Text(leaf.Text[pos:]))
	}
	return out
}
