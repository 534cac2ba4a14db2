package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/gnolang/condlint/internal/lints/inversion"
)

func TestAnalyzer(t *testing.T) {
	testdata := analysistest.TestData()
	analysistest.Run(t, testdata, New(inversion.Config{}), "a")
}

func TestAnalyzerRelationalOnly(t *testing.T) {
	testdata := analysistest.TestData()
	analysistest.Run(t, testdata, New(inversion.Config{ApplyOnlyToRelationalOperands: true}), "b")
}

func TestAnalyzerRelationalOnlyFlag(t *testing.T) {
	a := New(inversion.Config{})
	require.NoError(t, a.Flags.Set("relational-only", "true"))

	testdata := analysistest.TestData()
	analysistest.Run(t, testdata, a, "b")
}

func TestAnalyzerDefinition(t *testing.T) {
	assert.Equal(t, "condinversion", Analyzer.Name)
	assert.NotEmpty(t, Analyzer.Doc)
	flag := Analyzer.Flags.Lookup("relational-only")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}
