package render

import (
	"testing"

	"github.com/cmstoddard/quick-lint-js/internal/diag"
	"github.com/cmstoddard/quick-lint-js/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diagnosticAt(kind diag.Kind, begin, end uint32) diag.Diagnostic {
	return diag.Diagnostic{
		Kind:         kind,
		Labels:       []diag.Label{{Name: "name", Range: source.Range{Begin: begin, End: end}}},
		PrimaryLabel: 0,
	}
}

func TestOneComputesOneBasedLineAndColumn(t *testing.T) {
	buf := source.NewBuffer("input.js", "let x\nlet x\n")
	locator := source.NewLocator(buf)
	d := diagnosticAt(diag.RedeclarationOfVariable, 10, 11)

	r := One(d, "input.js", locator)

	assert.Equal(t, "input.js", r.Path)
	assert.Equal(t, 2, r.Line)
	assert.Equal(t, 5, r.Column)
	assert.Equal(t, "Diag_Redeclaration_Of_Variable", r.Kind)
	assert.Equal(t, diag.SeverityError, r.Severity)
	assert.NotEmpty(t, r.Message)
}

func TestAllPreservesOrder(t *testing.T) {
	buf := source.NewBuffer("input.js", "a b c")
	locator := source.NewLocator(buf)
	diags := []diag.Diagnostic{
		diagnosticAt(diag.UseOfUndeclaredVariable, 0, 1),
		diagnosticAt(diag.UseOfUndeclaredVariable, 2, 3),
	}

	rendered := All(diags, "input.js", locator)

	require.Len(t, rendered, 2)
	assert.Equal(t, 1, rendered[0].Column)
	assert.Equal(t, 3, rendered[1].Column)
}

func TestGNULikeFormatsSeverityAndKind(t *testing.T) {
	buf := source.NewBuffer("input.js", "x")
	locator := source.NewLocator(buf)
	d := diagnosticAt(diag.NewlineNotAllowedAfterInterfaceKeyword, 0, 1)
	out := GNULike(All([]diag.Diagnostic{d}, "input.js", locator))
	assert.Contains(t, out, "input.js:1:1: warning:")
	assert.Contains(t, out, "[Diag_Newline_Not_Allowed_After_Interface_Keyword]")
}

func TestVimQflistJSONShape(t *testing.T) {
	buf := source.NewBuffer("input.js", "x")
	locator := source.NewLocator(buf)
	d := diagnosticAt(diag.UseOfUndeclaredVariable, 0, 1)
	out, err := VimQflistJSON(All([]diag.Diagnostic{d}, "input.js", locator))
	require.NoError(t, err)
	assert.Contains(t, out, `"filename":"input.js"`)
	assert.Contains(t, out, `"type":"E"`)
}

func TestEmacsLispEscapesQuotes(t *testing.T) {
	buf := source.NewBuffer("input.js", "x")
	locator := source.NewLocator(buf)
	d := diagnosticAt(diag.UseOfUndeclaredVariable, 0, 1)
	out := EmacsLisp(All([]diag.Diagnostic{d}, "input.js", locator))
	assert.Contains(t, out, "(list \"input.js\" 1 1 'error")
}
