package gosyntax

import (
	"go/ast"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/condlint/internal/syntax"
)

func parse(t *testing.T, body string) *File {
	t.Helper()
	src := "package p\n\nfunc f() bool {\n" + body + "\n}\n"
	f, err := ParseFile("p.go", []byte(src))
	require.NoError(t, err)
	return f
}

func TestBuildShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "if with negated comparison",
			body: "if !(a != b) {}",
			want: []string{"LITERAL_IF(EXPR(LNOT(LPAREN NOT_EQUAL(IDENT IDENT) RPAREN)))"},
		},
		{
			name: "parenthesized operands",
			body: "if !((a >= 8) && (b >= 5)) {}",
			want: []string{
				"LITERAL_IF(EXPR(LNOT(LPAREN LAND(LPAREN GE(IDENT NUM_INT) RPAREN LPAREN GE(IDENT NUM_INT) RPAREN) RPAREN)))",
			},
		},
		{
			name: "method call",
			body: "if !list.Empty() {}",
			want: []string{"LITERAL_IF(EXPR(LNOT(METHOD_CALL(DOT(IDENT IDENT) ELIST RPAREN))))"},
		},
		{
			name: "call with arguments",
			body: "if !ok(x, 1) {}",
			want: []string{"LITERAL_IF(EXPR(LNOT(METHOD_CALL(IDENT ELIST(IDENT NUM_INT) RPAREN))))"},
		},
		{
			name: "condition only for loop",
			body: "for !done {}",
			want: []string{"LITERAL_WHILE(EXPR(LNOT(IDENT)))"},
		},
		{
			name: "three clause for loop",
			body: "for i := 0; !(i >= n); i++ {}",
			want: []string{"LITERAL_FOR(FOR_INIT FOR_CONDITION(EXPR(LNOT(LPAREN GE(IDENT IDENT) RPAREN))) FOR_ITERATOR)"},
		},
		{
			name: "infinite loop",
			body: "for {}",
			want: []string{"LITERAL_FOR(FOR_INIT FOR_CONDITION FOR_ITERATOR)"},
		},
		{
			name: "bare return",
			body: "return",
			want: []string{"LITERAL_RETURN"},
		},
		{
			name: "return of several results",
			body: "return !(a < b), nil",
			want: []string{"LITERAL_RETURN(EXPR(LNOT(LPAREN LT(IDENT IDENT) RPAREN)) EXPR(LITERAL_NIL))"},
		},
		{
			name: "literals and selectors",
			body: `return x.y == "s" || z[0] > 1.5 || true`,
			want: []string{
				"LITERAL_RETURN(EXPR(LOR(LOR(EQUAL(DOT(IDENT IDENT) STRING_LITERAL) GT(INDEX_OP(IDENT NUM_INT) NUM_FLOAT)) LITERAL_TRUE)))",
			},
		},
		{
			name: "unary and arithmetic",
			body: "return -a+*p < ^b",
			want: []string{"LITERAL_RETURN(EXPR(LT(PLUS(UNARY_MINUS(IDENT) DEREF(IDENT)) BNOT(IDENT))))"},
		},
		{
			name: "range and switch are ignored",
			body: "for range xs {}\nswitch {}",
			want: nil,
		},
		{
			name: "nested statements get their own roots",
			body: "if a {\n\tfor b {\n\t\treturn c\n\t}\n}",
			want: []string{
				"LITERAL_IF(EXPR(IDENT))",
				"LITERAL_WHILE(EXPR(IDENT))",
				"LITERAL_RETURN(EXPR(IDENT))",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := parse(t, tt.body)
			var got []string
			for _, r := range f.Roots {
				got = append(got, syntax.Sprint(r))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLinesFollowTokens(t *testing.T) {
	t.Parallel()
	f := parse(t, "if a &&\n\t!(b > c) {}\nif !(\n\td < e) {}")
	require.Len(t, f.Roots, 2)

	first := f.Roots[0]
	assert.Equal(t, 4, first.Line())
	land := first.FirstChildOfKind(syntax.Expr).FirstChild()
	require.Equal(t, syntax.LAnd, land.Kind())
	assert.Equal(t, 4, land.Line())
	assert.Equal(t, 5, land.Child(1).Line(), "negation keeps its own line")

	neg := f.Roots[1].FirstChildOfKind(syntax.Expr).FirstChildOfKind(syntax.LNot)
	require.NotNil(t, neg)
	assert.Equal(t, 6, neg.Line())
	assert.Equal(t, 7, neg.Child(1).Line())
}

func TestOriginAndPosition(t *testing.T) {
	t.Parallel()
	f := parse(t, "\tif !(a < b) {}")
	require.Len(t, f.Roots, 1)

	neg := f.Roots[0].FirstChildOfKind(syntax.Expr).FirstChildOfKind(syntax.LNot)
	require.NotNil(t, neg)

	origin, ok := f.Origin(neg).(*ast.UnaryExpr)
	require.True(t, ok)
	assert.Equal(t, "!", origin.Op.String())

	start, end, ok := f.Position(neg)
	require.True(t, ok)
	assert.Equal(t, 4, start.Line)
	assert.Equal(t, 5, start.Column)
	assert.Equal(t, 13, end.Column)

	_, _, ok = f.Position(neg.Child(0))
	assert.False(t, ok, "parentheses carry no origin")
}

func TestParseFileError(t *testing.T) {
	t.Parallel()
	_, err := ParseFile("broken.go", []byte("package p\nfunc {"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.go")
}
