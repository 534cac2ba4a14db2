package lints

import (
	"go/token"

	"github.com/gnolang/condlint/internal/lints/inversion"
	"github.com/gnolang/condlint/internal/syntax"
	"github.com/gnolang/condlint/internal/syntax/gosyntax"
	tt "github.com/gnolang/condlint/internal/types"
)

const conditionInversionNote = "negate each comparison and swap && with || (and vice versa) instead of negating the whole condition"

// DetectConditionInversions reports negated conditions of if, for and
// return statements that can be written without the negation.
func DetectConditionInversions(
	filename string,
	file *gosyntax.File,
	check *inversion.Check,
	severity tt.Severity,
) []tt.Issue {
	var issues []tt.Issue
	for _, root := range file.Roots {
		syntax.Walk(root, func(n *syntax.Node) bool {
			if !check.Accepts(n.Kind()) {
				return true
			}
			check.Visit(n, func(line int, key string) {
				issues = append(issues, inversionIssue(filename, file, n, line, key, severity))
			})
			return true
		})
	}
	return issues
}

func inversionIssue(
	filename string,
	file *gosyntax.File,
	stmt *syntax.Node,
	line int,
	key string,
	severity tt.Severity,
) tt.Issue {
	neg := inversion.LocateNegation(stmt.FirstChildOfKind(syntax.Expr))
	start, end, ok := file.Position(neg)
	if !ok {
		start = token.Position{Line: line, Column: 1}
		end = start
	}
	start.Filename = filename
	end.Filename = filename

	return tt.Issue{
		Rule:     "avoid-condition-inversion",
		Category: "style",
		Filename: filename,
		Key:      key,
		Note:     conditionInversionNote,
		Start:    start,
		End:      end,
		Severity: severity,
	}
}
