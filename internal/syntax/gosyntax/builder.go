// Package gosyntax builds syntax trees from Go source.
//
// The trees keep the token layout the condition rules expect:
// parentheses are kept as LPAREN/RPAREN leaves next to the nodes they
// enclose, every operator becomes a node holding its operands, and each
// condition is wrapped in an EXPR node.
//
//	if !(a != b) {}      IF(EXPR(LNOT(LPAREN NOT_EQUAL(IDENT IDENT) RPAREN)))
//	for !done {}         WHILE(EXPR(LNOT(IDENT)))
//	for i := 0; ; i++ {} FOR(FOR_INIT FOR_CONDITION FOR_ITERATOR)
package gosyntax

import (
	"go/ast"
	"go/token"

	"github.com/gnolang/condlint/internal/syntax"
)

var binaryKinds = map[token.Token]syntax.Kind{
	token.LAND:    syntax.LAnd,
	token.LOR:     syntax.LOr,
	token.EQL:     syntax.Equal,
	token.NEQ:     syntax.NotEqual,
	token.LSS:     syntax.LT,
	token.LEQ:     syntax.LE,
	token.GTR:     syntax.GT,
	token.GEQ:     syntax.GE,
	token.ADD:     syntax.Plus,
	token.SUB:     syntax.Minus,
	token.MUL:     syntax.Star,
	token.QUO:     syntax.Div,
	token.REM:     syntax.Mod,
	token.AND:     syntax.BAnd,
	token.OR:      syntax.BOr,
	token.XOR:     syntax.BXor,
	token.AND_NOT: syntax.BAndNot,
	token.SHL:     syntax.SL,
	token.SHR:     syntax.SR,
}

var unaryKinds = map[token.Token]syntax.Kind{
	token.NOT:   syntax.LNot,
	token.SUB:   syntax.UnaryMinus,
	token.ADD:   syntax.UnaryPlus,
	token.XOR:   syntax.BNot,
	token.TILDE: syntax.BNot,
	token.AND:   syntax.AddrOf,
	token.ARROW: syntax.Recv,
}

// Builder converts go/ast nodes into syntax nodes.
// A Builder remembers the ast node each negation and statement came from.
type Builder struct {
	fset    *token.FileSet
	origins map[*syntax.Node]ast.Node
}

func NewBuilder(fset *token.FileSet) *Builder {
	return &Builder{
		fset:    fset,
		origins: make(map[*syntax.Node]ast.Node),
	}
}

// Origin returns the ast node a negation or statement node was built from.
func (b *Builder) Origin(n *syntax.Node) ast.Node {
	return b.origins[n]
}

func (b *Builder) line(pos token.Pos) int {
	if !pos.IsValid() {
		return 0
	}
	return b.fset.Position(pos).Line
}

func (b *Builder) remember(n *syntax.Node, origin ast.Node) *syntax.Node {
	b.origins[n] = origin
	return n
}

// Stmt converts if, for and return statements. Other statements give nil.
func (b *Builder) Stmt(stmt ast.Stmt) *syntax.Node {
	switch s := stmt.(type) {
	case *ast.IfStmt:
		return b.remember(syntax.NewNode(syntax.If, b.line(s.If), b.Condition(s.Cond)), s)
	case *ast.ForStmt:
		return b.forStmt(s)
	case *ast.ReturnStmt:
		results := make([]*syntax.Node, 0, len(s.Results))
		for _, r := range s.Results {
			results = append(results, b.Condition(r))
		}
		return b.remember(syntax.NewNode(syntax.Return, b.line(s.Return), results...), s)
	}
	return nil
}

// a Go for loop with only a condition is the while loop of other languages.
func (b *Builder) forStmt(s *ast.ForStmt) *syntax.Node {
	line := b.line(s.For)
	if s.Init == nil && s.Post == nil && s.Cond != nil {
		return b.remember(syntax.NewNode(syntax.While, line, b.Condition(s.Cond)), s)
	}

	var cond *syntax.Node
	if s.Cond != nil {
		cond = syntax.NewNode(syntax.ForCondition, b.line(s.Cond.Pos()), b.Condition(s.Cond))
	} else {
		cond = syntax.Leaf(syntax.ForCondition, line)
	}
	b.remember(cond, s)

	return b.remember(syntax.NewNode(syntax.For, line,
		syntax.Leaf(syntax.ForInit, line),
		cond,
		syntax.Leaf(syntax.ForIterator, line),
	), s)
}

// Condition wraps the converted expression in an EXPR node.
func (b *Builder) Condition(e ast.Expr) *syntax.Node {
	if e == nil {
		return nil
	}
	return syntax.NewNode(syntax.Expr, b.line(e.Pos()), b.Expr(e)...)
}

// Expr converts an expression. A parenthesized expression yields the
// LPAREN, the inner nodes and the RPAREN as siblings.
func (b *Builder) Expr(e ast.Expr) []*syntax.Node {
	switch e := e.(type) {
	case nil:
		return nil
	case *ast.ParenExpr:
		out := []*syntax.Node{syntax.Leaf(syntax.LParen, b.line(e.Lparen))}
		out = append(out, b.Expr(e.X)...)
		return append(out, syntax.Leaf(syntax.RParen, b.line(e.Rparen)))
	case *ast.UnaryExpr:
		kind, ok := unaryKinds[e.Op]
		if !ok {
			return b.opaque(e)
		}
		n := syntax.NewNode(kind, b.line(e.OpPos), b.Expr(e.X)...)
		if kind == syntax.LNot {
			b.remember(n, e)
		}
		return one(n)
	case *ast.BinaryExpr:
		kind, ok := binaryKinds[e.Op]
		if !ok {
			return b.opaque(e)
		}
		operands := append(b.Expr(e.X), b.Expr(e.Y)...)
		return one(syntax.NewNode(kind, b.line(e.OpPos), operands...))
	case *ast.Ident:
		return one(syntax.Leaf(identKind(e.Name), b.line(e.NamePos)))
	case *ast.BasicLit:
		return one(syntax.Leaf(literalKind(e.Kind), b.line(e.ValuePos)))
	case *ast.SelectorExpr:
		children := append(b.Expr(e.X), syntax.Leaf(syntax.Ident, b.line(e.Sel.NamePos)))
		return one(syntax.NewNode(syntax.Dot, b.line(e.Sel.NamePos), children...))
	case *ast.CallExpr:
		var args []*syntax.Node
		for _, a := range e.Args {
			args = append(args, b.Expr(a)...)
		}
		children := append(b.Expr(e.Fun),
			syntax.NewNode(syntax.EList, b.line(e.Lparen), args...),
			syntax.Leaf(syntax.RParen, b.line(e.Rparen)),
		)
		return one(syntax.NewNode(syntax.MethodCall, b.line(e.Lparen), children...))
	case *ast.IndexExpr:
		children := append(b.Expr(e.X), b.Expr(e.Index)...)
		return one(syntax.NewNode(syntax.IndexOp, b.line(e.Lbrack), children...))
	case *ast.IndexListExpr:
		children := b.Expr(e.X)
		for _, idx := range e.Indices {
			children = append(children, b.Expr(idx)...)
		}
		return one(syntax.NewNode(syntax.IndexOp, b.line(e.Lbrack), children...))
	case *ast.SliceExpr:
		children := b.Expr(e.X)
		for _, idx := range []ast.Expr{e.Low, e.High, e.Max} {
			children = append(children, b.Expr(idx)...)
		}
		return one(syntax.NewNode(syntax.SliceOp, b.line(e.Lbrack), children...))
	case *ast.TypeAssertExpr:
		children := append(b.Expr(e.X), syntax.Leaf(syntax.TypeRef, b.line(e.Lparen)))
		return one(syntax.NewNode(syntax.TypeAssert, b.line(e.Lparen), children...))
	case *ast.StarExpr:
		return one(syntax.NewNode(syntax.Deref, b.line(e.Star), b.Expr(e.X)...))
	case *ast.CompositeLit:
		return one(syntax.Leaf(syntax.CompositeLit, b.line(e.Lbrace)))
	case *ast.FuncLit:
		return one(syntax.Leaf(syntax.FuncLit, b.line(e.Type.Func)))
	default:
		return b.opaque(e)
	}
}

// opaque stands in for type expressions and anything a condition cannot
// meaningfully hold.
func (b *Builder) opaque(e ast.Expr) []*syntax.Node {
	return one(syntax.Leaf(syntax.TypeRef, b.line(e.Pos())))
}

func one(n *syntax.Node) []*syntax.Node {
	return []*syntax.Node{n}
}

func identKind(name string) syntax.Kind {
	switch name {
	case "true":
		return syntax.LiteralTrue
	case "false":
		return syntax.LiteralFalse
	case "nil":
		return syntax.LiteralNil
	}
	return syntax.Ident
}

func literalKind(tok token.Token) syntax.Kind {
	switch tok {
	case token.INT:
		return syntax.NumInt
	case token.FLOAT:
		return syntax.NumFloat
	case token.IMAG:
		return syntax.NumImag
	case token.CHAR:
		return syntax.CharLiteral
	}
	return syntax.StringLiteral
}
