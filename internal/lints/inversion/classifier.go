package inversion

import "github.com/gnolang/condlint/internal/syntax"

// IsAvoidable reports whether the negation neg is worth reporting under cfg.
func IsAvoidable(neg *syntax.Node, cfg Config) bool {
	return neg != nil && !IsSkippable(neg, cfg)
}

// IsSkippable reports whether the negated condition must be left alone.
//
// Negations of calls and other operators that carry no comparison or
// boolean combinator are always skipped. In strict mode a negation is also
// skipped when one of its operands is not a comparison.
func IsSkippable(neg *syntax.Node, cfg Config) bool {
	return (cfg.ApplyOnlyToRelationalOperands && !AllOperandsRelational(neg)) ||
		!ContainsRelationalOrConditionalOperand(neg)
}

// ContainsRelationalOrConditionalOperand reports whether any direct child of
// neg is a relational operator, && or ||.
func ContainsRelationalOrConditionalOperand(neg *syntax.Node) bool {
	for i := 0; i < neg.NumChildren(); i++ {
		if IsRelationalOrConditional(neg.Child(i).Kind()) {
			return true
		}
	}
	return false
}

// AllOperandsRelational reports whether every operand of the negated
// operator is a comparison. Only the operator and its direct children are
// inspected.
func AllOperandsRelational(neg *syntax.Node) bool {
	op := operatorOf(neg)
	if op == nil || IsRelational(op.Kind()) {
		return true
	}

	for i := 0; i < op.NumChildren(); i++ {
		operand := op.Child(i)
		if operand.Kind() == syntax.Ident || !isRelationalOperand(operand) {
			return false
		}
	}
	return true
}

// isRelationalOperand treats leaves (identifiers, literals, parentheses)
// and comparisons as relational.
func isRelationalOperand(n *syntax.Node) bool {
	return n.IsLeaf() || IsRelational(n.Kind())
}
