package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/gnolang/condlint/internal/messages"
	"github.com/gnolang/condlint/internal/nolint"
	"github.com/gnolang/condlint/internal/syntax/gosyntax"
	tt "github.com/gnolang/condlint/internal/types"
)

// Engine manages the linting process.
type Engine struct {
	rootDir      string
	ignoredRules map[string]bool
	ignoredPaths []string
	rules        map[string]LintRule
	messages     *messages.Bundle
}

// NewEngine creates a new lint engine with the default rules, adjusted by
// the rule section of the configuration.
func NewEngine(rootDir string, rules map[string]tt.ConfigRule, locale string) (*Engine, error) {
	engine := &Engine{
		rootDir:      rootDir,
		ignoredRules: make(map[string]bool),
		messages:     messages.New(locale),
	}
	if err := engine.applyRules(rules); err != nil {
		return nil, err
	}
	return engine, nil
}

type ruleConstructor func() LintRule

type ruleMap map[string]ruleConstructor

var allRuleConstructors = ruleMap{
	ConditionInversionRuleName: NewConditionInversionRule,
}

// DefaultRules returns a fresh instance of every known rule, sorted by name.
func DefaultRules() []LintRule {
	names := make([]string, 0, len(allRuleConstructors))
	for name := range allRuleConstructors {
		names = append(names, name)
	}
	sort.Strings(names)

	rules := make([]LintRule, 0, len(names))
	for _, name := range names {
		rules = append(rules, allRuleConstructors[name]())
	}
	return rules
}

func (e *Engine) applyRules(rules map[string]tt.ConfigRule) error {
	e.rules = make(map[string]LintRule, len(allRuleConstructors))
	for key, newRule := range allRuleConstructors {
		e.rules[key] = newRule()
	}

	for key, cfg := range rules {
		r, ok := e.rules[key]
		if !ok {
			return fmt.Errorf("unknown rule %q in configuration", key)
		}
		r.SetSeverity(cfg.Severity)
		r.Configure(cfg.Options)
		if cfg.Severity == tt.SeverityOff {
			e.IgnoreRule(key)
		}
	}
	return nil
}

// Rule returns the registered rule with the given name, or nil.
func (e *Engine) Rule(name string) LintRule {
	return e.rules[name]
}

// Run applies all lint rules to the given file and returns a slice of Issues.
func (e *Engine) Run(filename string) ([]tt.Issue, error) {
	if e.isIgnoredPath(filename) {
		return nil, nil
	}

	source, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return e.run(filename, source)
}

// RunSource applies all lint rules to the given source and returns a slice of Issues.
func (e *Engine) RunSource(source []byte) ([]tt.Issue, error) {
	return e.run("", source)
}

func (e *Engine) run(filename string, source []byte) ([]tt.Issue, error) {
	file, err := gosyntax.ParseFile(filename, source)
	if err != nil {
		return nil, err
	}
	nolintMgr := nolint.ParseComments(file.AST, file.Fset)

	var (
		g         errgroup.Group
		mu        sync.Mutex
		allIssues []tt.Issue
	)
	for _, rule := range e.rules {
		if e.ignoredRules[rule.Name()] {
			continue
		}
		g.Go(func() error {
			issues, err := rule.Check(filename, file)
			if err != nil {
				return fmt.Errorf("rule %s: %w", rule.Name(), err)
			}
			issues = e.filterNolintIssues(nolintMgr, issues)

			mu.Lock()
			allIssues = append(allIssues, issues...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range allIssues {
		if allIssues[i].Key != "" {
			allIssues[i].Message = e.messages.Text(allIssues[i].Key)
		}
	}
	sortIssues(allIssues)
	return allIssues, nil
}

func (e *Engine) IgnoreRule(rule string) {
	if e.ignoredRules == nil {
		e.ignoredRules = make(map[string]bool)
	}
	e.ignoredRules[rule] = true
}

// IgnorePath skips files matching path. The path is either a directory
// prefix or a filepath.Match pattern, relative to the engine's root.
func (e *Engine) IgnorePath(path string) {
	if path == "" {
		return
	}
	if !filepath.IsAbs(path) && e.rootDir != "" {
		path = filepath.Join(e.rootDir, path)
	}
	e.ignoredPaths = append(e.ignoredPaths, filepath.Clean(path))
}

func (e *Engine) isIgnoredPath(filename string) bool {
	clean := filepath.Clean(filename)
	for _, ignored := range e.ignoredPaths {
		if clean == ignored || strings.HasPrefix(clean, ignored+string(filepath.Separator)) {
			return true
		}
		if ok, _ := filepath.Match(ignored, clean); ok {
			return true
		}
	}
	return false
}

// filterNolintIssues filters issues based on nolint comments.
func (e *Engine) filterNolintIssues(mgr *nolint.Manager, issues []tt.Issue) []tt.Issue {
	filtered := issues[:0]
	for _, issue := range issues {
		if !mgr.IsNolint(issue.Start.Line, issue.Rule) {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}

func sortIssues(issues []tt.Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		a, b := issues[i], issues[j]
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Start.Line != b.Start.Line {
			return a.Start.Line < b.Start.Line
		}
		if a.Start.Column != b.Start.Column {
			return a.Start.Column < b.Start.Column
		}
		return a.Rule < b.Rule
	})
}
