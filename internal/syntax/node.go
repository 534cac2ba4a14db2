// Package syntax defines the immutable expression/statement tree the
// condition rules operate on. Trees are produced by a front end (see
// gosyntax) and only read afterwards.
package syntax

// Node is a single node of a syntax tree.
// A Node never changes after construction and holds no back links,
// so a tree may be shared freely between goroutines.
type Node struct {
	kind     Kind
	line     int
	children []*Node
}

// NewNode creates a node of the given kind on the given 1-based line.
// Nil children are dropped.
func NewNode(kind Kind, line int, children ...*Node) *Node {
	n := &Node{kind: kind, line: line}
	if len(children) > 0 {
		n.children = make([]*Node, 0, len(children))
		for _, c := range children {
			if c != nil {
				n.children = append(n.children, c)
			}
		}
	}
	return n
}

// Leaf creates a node without children.
func Leaf(kind Kind, line int) *Node {
	return &Node{kind: kind, line: line}
}

func (n *Node) Kind() Kind { return n.kind }

func (n *Node) Line() int { return n.line }

// NumChildren returns the number of direct children.
func (n *Node) NumChildren() int { return len(n.children) }

// Child returns the i-th child or nil when out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children returns a copy of the direct children in source order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// FirstChild returns the first child or nil for a leaf.
func (n *Node) FirstChild() *Node { return n.Child(0) }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// FirstChildOfKind returns the first direct child with the given kind.
// It does not descend further.
func (n *Node) FirstChildOfKind(kind Kind) *Node {
	for _, c := range n.children {
		if c.kind == kind {
			return c
		}
	}
	return nil
}

// Walk visits n and its descendants depth first in source order.
// Returning false from fn skips the children of the current node.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.children {
		Walk(c, fn)
	}
}
