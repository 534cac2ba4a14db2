package lint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/condlint/internal"
	tt "github.com/gnolang/condlint/internal/types"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	config := DefaultConfig()

	assert.Equal(t, "condlint", config.Name)
	assert.Equal(t, "en", config.Locale)
	rule, ok := config.Rules[internal.ConditionInversionRuleName]
	require.True(t, ok)
	assert.Equal(t, tt.SeverityWarning, rule.Severity)
	assert.Equal(t, false, rule.Options[internal.OptionApplyOnlyToRelationalOperands])
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "condlint.yaml")
	content := `name: project
locale: de
rules:
  avoid-condition-inversion:
    severity: ERROR
    options:
      applyOnlyToRelationalOperands: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "project", config.Name)
	assert.Equal(t, "de", config.Locale)
	rule := config.Rules[internal.ConditionInversionRuleName]
	assert.Equal(t, tt.SeverityError, rule.Severity)
	assert.Equal(t, true, rule.Options[internal.OptionApplyOnlyToRelationalOperands])
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("rules: [unclosed"), 0o644))
	_, err = LoadConfig(invalid)
	assert.Error(t, err)

	badSeverity := filepath.Join(dir, "severity.yaml")
	require.NoError(t, os.WriteFile(badSeverity, []byte("rules:\n  avoid-condition-inversion:\n    severity: LOUD\n"), 0o644))
	_, err = LoadConfig(badSeverity)
	assert.ErrorContains(t, err, "LOUD")
}

func TestWriteConfigRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), DefaultConfigFile)

	require.NoError(t, WriteConfig(path, DefaultConfig()))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), loaded)
}

func TestNewRejectsUnknownRule(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  no-such-rule:\n    severity: ERROR\n"), 0o644))

	_, err := New(".", path, Overrides{})
	assert.ErrorContains(t, err, "no-such-rule")
}

func TestOverridesDoNotMutateConfig(t *testing.T) {
	t.Parallel()
	config := DefaultConfig()

	applied := config.apply(Overrides{Locale: "ru", RelationalOnly: true})

	assert.Equal(t, "ru", applied.Locale)
	assert.Equal(t, true, applied.Rules[internal.ConditionInversionRuleName].Options[internal.OptionApplyOnlyToRelationalOperands])
	assert.Equal(t, false, config.Rules[internal.ConditionInversionRuleName].Options[internal.OptionApplyOnlyToRelationalOperands])
}
