package gosyntax

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"

	"github.com/gnolang/condlint/internal/syntax"
)

// File holds the statement trees of one Go source file.
type File struct {
	Fset  *token.FileSet
	AST   *ast.File
	Roots []*syntax.Node

	builder *Builder
}

// Origin returns the ast node a negation or statement node was built from.
func (f *File) Origin(n *syntax.Node) ast.Node {
	return f.builder.Origin(n)
}

// Position returns the source range of the ast node n was built from.
// The second result is false when n has no recorded origin.
func (f *File) Position(n *syntax.Node) (start, end token.Position, ok bool) {
	origin := f.builder.Origin(n)
	if origin == nil {
		return start, end, false
	}
	return f.Fset.Position(origin.Pos()), f.Fset.Position(origin.End()), true
}

// ParseFile parses a Go file from disk, or from src when it is not nil.
func ParseFile(filename string, src []byte) (*File, error) {
	fset := token.NewFileSet()
	var source any
	if src != nil {
		source = src
	}
	node, err := parser.ParseFile(fset, filename, source, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", displayName(filename), err)
	}
	return Build(fset, node), nil
}

// Build converts every if, for and return statement of node.
// Roots are returned in source order. Statements nested in function
// literals inside a condition get roots of their own.
func Build(fset *token.FileSet, node *ast.File) *File {
	b := NewBuilder(fset)
	f := &File{Fset: fset, AST: node, builder: b}

	ast.Inspect(node, func(n ast.Node) bool {
		stmt, ok := n.(ast.Stmt)
		if !ok {
			return true
		}
		if root := b.Stmt(stmt); root != nil {
			f.Roots = append(f.Roots, root)
		}
		return true
	})
	return f
}

func displayName(filename string) string {
	if filename == "" {
		return "source"
	}
	return filename
}
