// Package inversion detects conditions that are negated as a whole and
// could be written without the negation, e.g.
//
//	if !(a >= 8 && b >= 5) { ... }
//
// is easier to read as
//
//	if a < 8 || b < 5 { ... }
//
// Negations of calls or type checks (!list.Empty()) are never reported.
// With ApplyOnlyToRelationalOperands set, a negation is reported only when
// every operand of the negated operator is a comparison.
package inversion

import (
	"fmt"

	"github.com/gnolang/condlint/internal/syntax"
)

// MsgKey identifies the message emitted for every finding.
const MsgKey = "avoid.condition.inversion"

// Config holds the rule options. It is read-only once a run starts.
type Config struct {
	// ApplyOnlyToRelationalOperands restricts findings to negations whose
	// operands are all comparisons.
	ApplyOnlyToRelationalOperands bool `yaml:"applyOnlyToRelationalOperands"`
}

// Finding is a single reported inversion.
type Finding struct {
	Line int
	Key  string
}

// ReportFunc receives findings from Check.Visit.
type ReportFunc func(line int, key string)

// Check visits statement nodes and reports avoidable inversions.
// It holds no mutable state and may be used from several goroutines.
type Check struct {
	cfg Config
}

func New(cfg Config) *Check {
	return &Check{cfg: cfg}
}

func (c *Check) Config() Config { return c.cfg }

// Tokens returns the node kinds Visit accepts.
func (c *Check) Tokens() []syntax.Kind {
	return []syntax.Kind{
		syntax.Return,
		syntax.If,
		syntax.While,
		syntax.Do,
		syntax.ForCondition,
	}
}

// Accepts reports whether kind is one of Tokens.
func (c *Check) Accepts(kind syntax.Kind) bool {
	switch kind {
	case syntax.Return, syntax.If, syntax.While, syntax.Do, syntax.ForCondition:
		return true
	}
	return false
}

// Visit examines a single statement node and calls report at most once.
// Visit panics when node's kind is not one of Tokens.
func (c *Check) Visit(node *syntax.Node, report ReportFunc) {
	expr := node.FirstChildOfKind(syntax.Expr)

	switch node.Kind() {
	case syntax.Return:
		if isEmptyReturn(node) {
			return
		}
	case syntax.If, syntax.While, syntax.Do:
	case syntax.ForCondition:
		if isEmptyForCondition(node) {
			return
		}
	default:
		panic(fmt.Sprintf("unexpected token type - %s", node.Kind()))
	}

	if neg := LocateNegation(expr); IsAvoidable(neg, c.cfg) {
		report(neg.Line(), MsgKey)
	}
}

// Findings visits every node of roots that Check accepts and collects the
// findings in visiting order.
func (c *Check) Findings(roots ...*syntax.Node) []Finding {
	var findings []Finding
	report := func(line int, key string) {
		findings = append(findings, Finding{Line: line, Key: key})
	}
	for _, root := range roots {
		syntax.Walk(root, func(n *syntax.Node) bool {
			if c.Accepts(n.Kind()) {
				c.Visit(n, report)
			}
			return true
		})
	}
	return findings
}

func isEmptyReturn(ret *syntax.Node) bool {
	return ret.FirstChildOfKind(syntax.Expr) == nil
}

func isEmptyForCondition(cond *syntax.Node) bool {
	return cond.FirstChild() == nil
}
