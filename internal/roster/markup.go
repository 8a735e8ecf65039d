package roster

import "strings"

// NodeKind distinguishes text leaves from span elements
type NodeKind int

const (
	TextNode NodeKind = iota // plain text leaf, no children
	SpanNode                 // element with a class and children
)

// Span classes used by the loader and the highlighter
const (
	ClassBadge = "badge" // status badge; opaque to highlighting
	ClassLink  = "link"  // wa.me / tel: link
	ClassMark  = "mark"  // highlighted search match
)

// Node is a cell's markup tree. A cell root is always a SpanNode with an
// empty class; text leaves carry the visible characters.
type Node struct {
	Kind     NodeKind
	Text     string  // TextNode only
	Class    string  // SpanNode only
	Href     string  // link spans
	Children []*Node // SpanNode only
}

// Text returns a text leaf
func Text(s string) *Node {
	return &Node{Kind: TextNode, Text: s}
}

// Span returns a span element with the given class and children
func Span(class string, children ...*Node) *Node {
	return &Node{Kind: SpanNode, Class: class, Children: children}
}

// Link returns a link span wrapping the given text
func Link(href, text string) *Node {
	return &Node{Kind: SpanNode, Class: ClassLink, Href: href, Children: []*Node{Text(text)}}
}

// Badge returns a status badge span. Badge contents are never rewritten
// by the highlighter.
func Badge(text string) *Node {
	return &Node{Kind: SpanNode, Class: ClassBadge, Children: []*Node{Text(text)}}
}

// Mark returns a highlight span wrapping a matched substring
func Mark(text string) *Node {
	return &Node{Kind: SpanNode, Class: ClassMark, Children: []*Node{Text(text)}}
}

// Clone returns a deep copy sharing no nodes with the original
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{Kind: n.Kind, Text: n.Text, Class: n.Class, Href: n.Href}
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, ch := range n.Children {
			c.Children[i] = ch.Clone()
		}
	}
	return c
}

// FlatText returns the concatenated text content of the subtree, in
// document order, including badge and link contents
func (n *Node) FlatText() string {
	var b strings.Builder
	n.flatText(&b)
	return b.String()
}

func (n *Node) flatText(b *strings.Builder) {
	if n == nil {
		return
	}
	if n.Kind == TextNode {
		b.WriteString(n.Text)
		return
	}
	for _, ch := range n.Children {
		ch.flatText(b)
	}
}

// FindClass returns the first span with the given class in document
// order, or nil
func (n *Node) FindClass(class string) *Node {
	if n == nil {
		return nil
	}
	if n.Kind == SpanNode && n.Class == class {
		return n
	}
	for _, ch := range n.Children {
		if found := ch.FindClass(class); found != nil {
			return found
		}
	}
	return nil
}

// Equal reports whether two trees have identical structure and content
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Kind != o.Kind || n.Text != o.Text || n.Class != o.Class || n.Href != o.Href {
		return false
	}
	if len(n.Children) != len(o.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}
