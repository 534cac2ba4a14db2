// Package analyzer exposes the condition inversion check as a
// golang.org/x/tools/go/analysis analyzer, so that it can run under
// go vet, gopls or any multichecker.
package analyzer

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/gnolang/condlint/internal/lints/inversion"
	"github.com/gnolang/condlint/internal/syntax"
	"github.com/gnolang/condlint/internal/syntax/gosyntax"
)

const (
	name    = "condinversion"
	doc     = "reports if, for and return conditions that are negated as a whole and read better without the negation"
	message = "avoid condition inversion"
)

// Analyzer runs with the lenient configuration unless -relational-only is set.
var Analyzer = New(inversion.Config{})

// New returns an analyzer starting from cfg. The relational-only flag
// of the returned analyzer overrides cfg.
func New(cfg inversion.Config) *analysis.Analyzer {
	r := &runner{cfg: cfg}
	a := &analysis.Analyzer{
		Name:     name,
		Doc:      doc,
		Run:      r.run,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}
	a.Flags.BoolVar(
		&r.cfg.ApplyOnlyToRelationalOperands,
		"relational-only",
		cfg.ApplyOnlyToRelationalOperands,
		"only report negations whose operands are all comparisons",
	)
	return a
}

type runner struct {
	cfg inversion.Config
}

func (r *runner) run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	check := inversion.New(r.cfg)
	b := gosyntax.NewBuilder(pass.Fset)

	nodeFilter := []ast.Node{
		(*ast.IfStmt)(nil),
		(*ast.ForStmt)(nil),
		(*ast.ReturnStmt)(nil),
	}
	insp.Preorder(nodeFilter, func(n ast.Node) {
		root := b.Stmt(n.(ast.Stmt))
		if root == nil {
			return
		}
		syntax.Walk(root, func(node *syntax.Node) bool {
			if !check.Accepts(node.Kind()) {
				return true
			}
			check.Visit(node, func(int, string) {
				neg := inversion.LocateNegation(node.FirstChildOfKind(syntax.Expr))
				if origin := b.Origin(neg); origin != nil {
					pass.Reportf(origin.Pos(), message)
				} else {
					pass.Reportf(n.Pos(), message)
				}
			})
			return true
		})
	})

	return nil, nil
}
