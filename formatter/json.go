package formatter

import (
	"encoding/json"

	tt "github.com/gnolang/condlint/internal/types"
)

// GenerateJSON groups issues by file name and encodes them as JSON.
func GenerateJSON(issues []tt.Issue) ([]byte, error) {
	issuesByFile := make(map[string][]tt.Issue)
	for _, issue := range issues {
		issuesByFile[issue.Filename] = append(issuesByFile[issue.Filename], issue)
	}
	return json.Marshal(issuesByFile)
}
