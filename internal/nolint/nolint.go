// Package nolint handles //nolint suppression comments.
//
//	//nolint                      suppress every rule
//	//nolint:rule-a,rule-b        suppress the listed rules
//
// A comment placed before the package clause covers the whole file. A
// comment trailing a statement covers that statement, and a comment on
// its own line covers the statement that starts on the next line.
package nolint

import (
	"errors"
	"go/ast"
	"go/token"
	"strings"
)

const prefix = "//nolint"

var (
	errNotNolint = errors.New("not a nolint comment")
	errNoRules   = errors.New("nolint comment has a colon but no rules")
)

// span is a line range covered by one comment.
type span struct {
	from, to int
	rules    map[string]struct{}
}

func (s span) covers(line int, rule string) bool {
	if line < s.from || line > s.to {
		return false
	}
	if len(s.rules) == 0 {
		return true
	}
	_, ok := s.rules[rule]
	return ok
}

// Manager answers whether an issue is suppressed.
type Manager struct {
	spans []span
}

// ParseComments collects the nolint comments of f.
func ParseComments(f *ast.File, fset *token.FileSet) *Manager {
	m := &Manager{}
	stmts := statementsByLine(f, fset)
	packageLine := fset.Position(f.Package).Line
	fileEnd := fset.Position(f.End()).Line

	for _, group := range f.Comments {
		for _, c := range group.List {
			rules, err := parseRules(c.Text)
			if err != nil {
				continue
			}
			pos := fset.Position(c.Slash)
			s := span{from: pos.Line, to: pos.Line, rules: rules}

			switch {
			case pos.Line < packageLine:
				s.from, s.to = 1, fileEnd
			case trails(stmts[pos.Line], fset, pos):
				s.to = fset.Position(stmts[pos.Line].End()).Line
				s.from = fset.Position(stmts[pos.Line].Pos()).Line
			case stmts[pos.Line+1] != nil:
				s.to = fset.Position(stmts[pos.Line+1].End()).Line
			}
			m.spans = append(m.spans, s)
		}
	}
	return m
}

// IsNolint reports whether rule is suppressed on line.
func (m *Manager) IsNolint(line int, rule string) bool {
	if m == nil {
		return false
	}
	for _, s := range m.spans {
		if s.covers(line, rule) {
			return true
		}
	}
	return false
}

func parseRules(text string) (map[string]struct{}, error) {
	rest, ok := strings.CutPrefix(text, prefix)
	if !ok {
		return nil, errNotNolint
	}
	rules := make(map[string]struct{})
	if rest == "" {
		return rules, nil
	}
	list, ok := strings.CutPrefix(rest, ":")
	if !ok {
		// e.g. //nolintfoo
		return nil, errNotNolint
	}
	for _, r := range strings.Split(list, ",") {
		if r = strings.TrimSpace(r); r != "" {
			rules[r] = struct{}{}
		}
	}
	if len(rules) == 0 {
		return nil, errNoRules
	}
	return rules, nil
}

// statementsByLine maps each line to the first statement or declaration
// starting on it.
func statementsByLine(f *ast.File, fset *token.FileSet) map[int]ast.Node {
	stmts := make(map[int]ast.Node)
	ast.Inspect(f, func(n ast.Node) bool {
		switch n.(type) {
		case ast.Stmt, ast.Decl:
			line := fset.Position(n.Pos()).Line
			if _, seen := stmts[line]; !seen {
				stmts[line] = n
			}
		}
		return true
	})
	return stmts
}

func trails(stmt ast.Node, fset *token.FileSet, comment token.Position) bool {
	return stmt != nil && comment.Offset > fset.Position(stmt.Pos()).Offset
}
