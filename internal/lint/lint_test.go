package lint

import (
	"testing"

	"github.com/cmstoddard/quick-lint-js/internal/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kindsOf(diags []diag.Diagnostic) []diag.Kind {
	kinds := make([]diag.Kind, len(diags))
	for i, d := range diags {
		kinds[i] = d.Kind
	}
	return kinds
}

func TestRunReportsUseOfUndeclaredVariable(t *testing.T) {
	result := Run("<stdin>", "console.log(thisIsNotDeclared);\n", ParserOptions{}, DefaultAnalyzerOptions())
	assert.Contains(t, kindsOf(result.Diagnostics), diag.UseOfUndeclaredVariable)
}

func TestRunLetUsedBeforeDeclarationIsReported(t *testing.T) {
	result := Run("<stdin>", "console.log(x);\nlet x = 1;\n", ParserOptions{}, DefaultAnalyzerOptions())
	assert.Contains(t, kindsOf(result.Diagnostics), diag.VariableUsedBeforeDeclaration)
}

func TestRunWellFormedProgramHasNoDiagnostics(t *testing.T) {
	result := Run("<stdin>", "let x = 1;\nx = 2;\n", ParserOptions{}, DefaultAnalyzerOptions())
	assert.Empty(t, result.Diagnostics)
}

func TestRunTypeScriptInterfaceOutsideTypeScriptIsRejected(t *testing.T) {
	result := Run("<stdin>", "interface Foo {}\n", ParserOptions{TypeScript: false}, DefaultAnalyzerOptions())
	require.NotEmpty(t, result.Diagnostics)
}

func TestRunLocatorTranslatesOffsets(t *testing.T) {
	result := Run("<stdin>", "let x = 1;\nlet x = 2;\n", ParserOptions{}, DefaultAnalyzerOptions())
	require.NotEmpty(t, result.Diagnostics)
	pos := result.Locator.Position(result.Diagnostics[0].Primary().Begin)
	assert.Equal(t, 2, pos.Line)
}
