// Package internal provides the lint engine behind condlint.
//
// Engine: parses Go (and Gno) sources into syntax trees, runs every enabled
// LintRule on them, drops issues suppressed by //nolint comments and
// resolves issue messages in the configured locale.
//
// LintRule: the contract for a rule. Rules are registered by name and can be
// configured with a severity and an options map.
//
// SourceCode: the lines of a source file, used when printing issues.
//
// Usage:
//
//	engine, err := internal.NewEngine(".", nil, "en")
//	if err != nil {
//	    // handle error
//	}
//
//	issues, err := engine.Run("path/to/file.go")
//	if err != nil {
//	    // handle error
//	}
//
//	for _, issue := range issues {
//	    fmt.Printf("%s:%d: %s\n", issue.Filename, issue.Start.Line, issue.Message)
//	}
package internal
