package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gnolang/condlint/internal"
	tt "github.com/gnolang/condlint/internal/types"
	"github.com/gnolang/condlint/lint"
)

const sampleSource = `package main

func f(a, b int) bool {
	if !(a >= b) {
		return true
	}
	return a == b
}
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.go")
	require.NoError(t, os.WriteFile(path, []byte(sampleSource), 0o644))
	return path
}

func newTestEngine(t *testing.T) *internal.Engine {
	t.Helper()
	engine, err := lint.New(".", "", lint.Overrides{Locale: "en"})
	require.NoError(t, err)
	return engine
}

func TestRunNormalLintProcessText(t *testing.T) {
	path := writeSample(t)
	var out bytes.Buffer

	err := runNormalLintProcess(context.Background(), zap.NewNop(), newTestEngine(t), []string{path}, &out, false, "")

	assert.ErrorIs(t, err, ErrIssuesFound)
	assert.Contains(t, out.String(), "warning: avoid-condition-inversion")
	assert.Contains(t, out.String(), path+":4:5")
	assert.Contains(t, out.String(), "= Condition inversion should be avoided.")
}

func TestRunNormalLintProcessJSON(t *testing.T) {
	path := writeSample(t)
	jsonPath := filepath.Join(t.TempDir(), "out.json")

	err := runNormalLintProcess(context.Background(), zap.NewNop(), newTestEngine(t), []string{path}, &bytes.Buffer{}, true, jsonPath)
	assert.ErrorIs(t, err, ErrIssuesFound)

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)

	var issuesByFile map[string][]tt.Issue
	require.NoError(t, json.Unmarshal(data, &issuesByFile))
	require.Len(t, issuesByFile[path], 1)
	assert.Equal(t, 4, issuesByFile[path][0].Start.Line)
}

func TestRunNormalLintProcessClean(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clean.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\n\nfunc f(a int) bool {\n\treturn a > 0\n}\n"), 0o644))
	var out bytes.Buffer

	err := runNormalLintProcess(context.Background(), zap.NewNop(), newTestEngine(t), []string{path}, &out, false, "")

	assert.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestRunNormalLintProcessNoPaths(t *testing.T) {
	err := runNormalLintProcess(context.Background(), zap.NewNop(), newTestEngine(t), nil, &bytes.Buffer{}, false, "")
	assert.ErrorIs(t, err, lint.ErrNoPaths)
}

func TestInitConfigurationFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")

	written, err := initConfigurationFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	config, err := lint.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, lint.DefaultConfig(), config)
}

func TestPrintRules(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printRules(&out, internal.DefaultRules()))

	assert.Contains(t, out.String(), "RULE")
	assert.Contains(t, out.String(), internal.ConditionInversionRuleName)
	assert.Contains(t, out.String(), "WARNING")
	assert.Contains(t, out.String(), "applyOnlyToRelationalOperands=false")
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{" a , b,,c ", []string{"a", "b", "c"}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, splitList(tc.in), tc.in)
	}
}

func TestExecuteLint(t *testing.T) {
	path := writeSample(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"lint", "--locale", "de", path})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		locale = ""
	})

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, ErrIssuesFound)
	assert.Contains(t, out.String(), "Die Invertierung der Bedingung sollte vermieden werden.")
}
