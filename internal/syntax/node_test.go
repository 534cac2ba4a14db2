package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNodeDropsNilChildren(t *testing.T) {
	t.Parallel()
	n := NewNode(Expr, 3, nil, Leaf(Ident, 3), nil)
	require.Equal(t, 1, n.NumChildren())
	assert.Equal(t, Ident, n.FirstChild().Kind())
	assert.Equal(t, 3, n.Line())
}

func TestFirstChildOfKind(t *testing.T) {
	t.Parallel()
	inner := NewNode(LNot, 4, Leaf(Ident, 4))
	expr := NewNode(Expr, 4,
		Leaf(LParen, 4),
		NewNode(LAnd, 4, NewNode(LNot, 4, Leaf(Ident, 4))),
		inner,
		Leaf(RParen, 4),
	)

	assert.Same(t, inner, expr.FirstChildOfKind(LNot), "lookup must not descend into LAND")
	assert.Nil(t, expr.FirstChildOfKind(Return))
	assert.Nil(t, Leaf(Ident, 1).FirstChildOfKind(Ident))
}

func TestChildOutOfRange(t *testing.T) {
	t.Parallel()
	n := NewNode(LNot, 1, Leaf(LParen, 1))
	assert.Nil(t, n.Child(-1))
	assert.Nil(t, n.Child(1))
	assert.True(t, n.Child(0).IsLeaf())
}

func TestChildrenIsACopy(t *testing.T) {
	t.Parallel()
	n := NewNode(LAnd, 1, Leaf(Ident, 1), Leaf(Ident, 1))
	cs := n.Children()
	cs[0] = nil
	assert.NotNil(t, n.FirstChild())
}

func TestWalk(t *testing.T) {
	t.Parallel()
	tree := NewNode(If, 1,
		NewNode(Expr, 1, NewNode(LNot, 2, Leaf(Ident, 2))),
	)

	var kinds []Kind
	Walk(tree, func(n *Node) bool {
		kinds = append(kinds, n.Kind())
		return n.Kind() != LNot
	})
	assert.Equal(t, []Kind{If, Expr, LNot}, kinds)
}

func TestSprint(t *testing.T) {
	t.Parallel()
	n := NewNode(LNot, 1,
		Leaf(LParen, 1),
		NewNode(NotEqual, 1, Leaf(Ident, 1), Leaf(Ident, 1)),
		Leaf(RParen, 1),
	)
	assert.Equal(t, "LNOT(LPAREN NOT_EQUAL(IDENT IDENT) RPAREN)", Sprint(n))
	assert.Equal(t, "<nil>", Sprint(nil))
}

func TestKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "FOR_CONDITION", ForCondition.String())
	assert.Equal(t, "Kind(999)", Kind(999).String())
}
