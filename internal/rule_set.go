package internal

import (
	"github.com/gnolang/condlint/internal/lints"
	"github.com/gnolang/condlint/internal/lints/inversion"
	"github.com/gnolang/condlint/internal/syntax/gosyntax"
	tt "github.com/gnolang/condlint/internal/types"
)

// LintRule defines the interface for all lint rules.
type LintRule interface {
	// Check runs the lint rule on the given file and returns a slice of Issues.
	Check(filename string, file *gosyntax.File) ([]tt.Issue, error)

	// Name returns the name of the lint rule.
	Name() string

	// Description is a one line summary shown by `condlint rules`.
	Description() string

	Severity() tt.Severity
	SetSeverity(tt.Severity)

	// Configure applies the options section of the rule configuration.
	Configure(options map[string]any)

	// Options returns the current option values, keyed as in the
	// configuration file.
	Options() map[string]any
}

// -----------------------------------------------------------------------------

const (
	// ConditionInversionRuleName is the name the condition inversion
	// rule is configured and reported under.
	ConditionInversionRuleName = "avoid-condition-inversion"

	// OptionApplyOnlyToRelationalOperands is the configuration key of
	// the strict mode of avoid-condition-inversion.
	OptionApplyOnlyToRelationalOperands = "applyOnlyToRelationalOperands"
)

type ConditionInversionRule struct {
	severity tt.Severity
	check    *inversion.Check
}

func NewConditionInversionRule() LintRule {
	return &ConditionInversionRule{
		severity: tt.SeverityWarning,
		check:    inversion.New(inversion.Config{}),
	}
}

func (r *ConditionInversionRule) Check(filename string, file *gosyntax.File) ([]tt.Issue, error) {
	return lints.DetectConditionInversions(filename, file, r.check, r.severity), nil
}

func (r *ConditionInversionRule) Name() string {
	return ConditionInversionRuleName
}

func (r *ConditionInversionRule) Description() string {
	return "negated conditions that read better with the negation pushed into the comparisons"
}

func (r *ConditionInversionRule) Severity() tt.Severity {
	return r.severity
}

func (r *ConditionInversionRule) SetSeverity(severity tt.Severity) {
	r.severity = severity
}

func (r *ConditionInversionRule) Configure(options map[string]any) {
	cfg := r.check.Config()
	cfg.ApplyOnlyToRelationalOperands = tt.BoolOption(
		options,
		OptionApplyOnlyToRelationalOperands,
		cfg.ApplyOnlyToRelationalOperands,
	)
	r.check = inversion.New(cfg)
}

func (r *ConditionInversionRule) Options() map[string]any {
	return map[string]any{
		OptionApplyOnlyToRelationalOperands: r.RelationalOnly(),
	}
}

// RelationalOnly reports whether the strict mode is on.
func (r *ConditionInversionRule) RelationalOnly() bool {
	return r.check.Config().ApplyOnlyToRelationalOperands
}
