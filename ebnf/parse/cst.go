// Package parse compiles EBNF grammars into combinator parsers that produce
// concrete syntax trees.
package parse

// Span is a half-open byte range [Start, End) in the source.
type Span struct {
	Start int
	End   int
}

// Node represents a node in the concrete syntax tree.
// Terminals carry the matched Text; interior nodes have Children.
type Node struct {
	Kind     string  // Production name, or the quoted literal for tokens
	Text     string  // Matched text (terminals only)
	Children []*Node // Child nodes (nil for terminals)
	Span     Span    // Source span covering this node
}

// IsTerminal returns true if this is a leaf node.
func (n *Node) IsTerminal() bool {
	return n.Children == nil
}

// AddChild appends a child node and updates the span.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	n.Children = append(n.Children, child)
	if len(n.Children) == 1 {
		n.Span.Start = child.Span.Start
	}
	n.Span.End = child.Span.End
}

// Find returns the first node of the given kind in depth-first order, or nil.
func (n *Node) Find(kind string) *Node {
	if n.Kind == kind {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(kind); found != nil {
			return found
		}
	}
	return nil
}

// NewTerminal creates a terminal node.
func NewTerminal(kind, text string, start int) *Node {
	return &Node{
		Kind: kind,
		Text: text,
		Span: Span{Start: start, End: start + len(text)},
	}
}

// NewNonTerminal creates a non-terminal node with no children yet.
func NewNonTerminal(kind string) *Node {
	return &Node{
		Kind:     kind,
		Children: make([]*Node, 0),
	}
}
