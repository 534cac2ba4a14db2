package syntax

import "strings"

// Sprint renders the tree rooted at n as KIND(child child ...).
// Lines are omitted. It is meant for tests and debugging output.
func Sprint(n *Node) string {
	var sb strings.Builder
	sprint(&sb, n)
	return sb.String()
}

func sprint(sb *strings.Builder, n *Node) {
	if n == nil {
		sb.WriteString("<nil>")
		return
	}
	sb.WriteString(n.kind.String())
	if len(n.children) == 0 {
		return
	}
	sb.WriteByte('(')
	for i, c := range n.children {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sprint(sb, c)
	}
	sb.WriteByte(')')
}
