package inversion

import "github.com/gnolang/condlint/internal/syntax"

var relationalOperators = map[syntax.Kind]struct{}{
	syntax.LT:       {},
	syntax.LE:       {},
	syntax.GT:       {},
	syntax.GE:       {},
	syntax.Equal:    {},
	syntax.NotEqual: {},
}

var relationalOrConditionalOperators = func() map[syntax.Kind]struct{} {
	m := make(map[syntax.Kind]struct{}, len(relationalOperators)+2)
	for k := range relationalOperators {
		m[k] = struct{}{}
	}
	m[syntax.LOr] = struct{}{}
	m[syntax.LAnd] = struct{}{}
	return m
}()

// IsRelational reports whether kind is one of <, <=, >, >=, ==, !=.
func IsRelational(kind syntax.Kind) bool {
	_, ok := relationalOperators[kind]
	return ok
}

// IsRelationalOrConditional reports whether kind is relational, && or ||.
func IsRelationalOrConditional(kind syntax.Kind) bool {
	_, ok := relationalOrConditionalOperators[kind]
	return ok
}
