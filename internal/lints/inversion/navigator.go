package inversion

import "github.com/gnolang/condlint/internal/syntax"

// LocateNegation returns the logical negation sitting directly under the
// condition's EXPR node, or nil. Negations nested deeper are not considered.
func LocateNegation(expr *syntax.Node) *syntax.Node {
	if expr == nil {
		return nil
	}
	return expr.FirstChildOfKind(syntax.LNot)
}

// operatorOf returns the operator wrapped by the negation: the sibling that
// follows the opening parenthesis in !(a op b).
func operatorOf(neg *syntax.Node) *syntax.Node {
	return neg.Child(1)
}
