package syntax

import "fmt"

// Kind is the tag of a syntax node.
type Kind int

const (
	Invalid Kind = iota

	// statements
	Return
	If
	While
	Do
	For
	ForInit
	ForCondition
	ForIterator
	Expr

	// logical
	LNot
	LOr
	LAnd

	// relational
	LT
	LE
	GT
	GE
	Equal
	NotEqual

	// arithmetic and bitwise
	Plus
	Minus
	Star
	Div
	Mod
	BAnd
	BOr
	BXor
	BAndNot
	SL
	SR

	// unary
	UnaryMinus
	UnaryPlus
	BNot
	Deref
	AddrOf
	Recv

	// primary expressions
	MethodCall
	EList
	Dot
	IndexOp
	SliceOp
	TypeAssert
	CompositeLit
	FuncLit

	// punctuation
	LParen
	RParen

	// leaves
	Ident
	LiteralTrue
	LiteralFalse
	LiteralNil
	NumInt
	NumFloat
	NumImag
	CharLiteral
	StringLiteral
	TypeRef
)

var kindNames = [...]string{
	Invalid:       "INVALID",
	Return:        "LITERAL_RETURN",
	If:            "LITERAL_IF",
	While:         "LITERAL_WHILE",
	Do:            "LITERAL_DO",
	For:           "LITERAL_FOR",
	ForInit:       "FOR_INIT",
	ForCondition:  "FOR_CONDITION",
	ForIterator:   "FOR_ITERATOR",
	Expr:          "EXPR",
	LNot:          "LNOT",
	LOr:           "LOR",
	LAnd:          "LAND",
	LT:            "LT",
	LE:            "LE",
	GT:            "GT",
	GE:            "GE",
	Equal:         "EQUAL",
	NotEqual:      "NOT_EQUAL",
	Plus:          "PLUS",
	Minus:         "MINUS",
	Star:          "STAR",
	Div:           "DIV",
	Mod:           "MOD",
	BAnd:          "BAND",
	BOr:           "BOR",
	BXor:          "BXOR",
	BAndNot:       "BAND_NOT",
	SL:            "SL",
	SR:            "SR",
	UnaryMinus:    "UNARY_MINUS",
	UnaryPlus:     "UNARY_PLUS",
	BNot:          "BNOT",
	Deref:         "DEREF",
	AddrOf:        "ADDR_OF",
	Recv:          "RECV",
	MethodCall:    "METHOD_CALL",
	EList:         "ELIST",
	Dot:           "DOT",
	IndexOp:       "INDEX_OP",
	SliceOp:       "SLICE_OP",
	TypeAssert:    "TYPE_ASSERT",
	CompositeLit:  "COMPOSITE_LIT",
	FuncLit:       "FUNC_LIT",
	LParen:        "LPAREN",
	RParen:        "RPAREN",
	Ident:         "IDENT",
	LiteralTrue:   "LITERAL_TRUE",
	LiteralFalse:  "LITERAL_FALSE",
	LiteralNil:    "LITERAL_NIL",
	NumInt:        "NUM_INT",
	NumFloat:      "NUM_FLOAT",
	NumImag:       "NUM_IMAG",
	CharLiteral:   "CHAR_LITERAL",
	StringLiteral: "STRING_LITERAL",
	TypeRef:       "TYPE",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}
