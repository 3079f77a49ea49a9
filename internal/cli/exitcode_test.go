package cli

import (
	"testing"

	"github.com/cmstoddard/quick-lint-js/internal/diag"
	"github.com/stretchr/testify/assert"
)

func TestExitCodeZeroWithNoDiagnostics(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil, nil))
}

func TestExitCodeZeroWithOnlyWarnings(t *testing.T) {
	diags := []diag.Diagnostic{{Kind: diag.NewlineNotAllowedAfterInterfaceKeyword}}
	assert.Equal(t, 0, ExitCode(diags, nil))
}

func TestExitCodeOneWithAnErrorAndNoExitFailOn(t *testing.T) {
	diags := []diag.Diagnostic{{Kind: diag.UseOfUndeclaredVariable}}
	assert.Equal(t, 1, ExitCode(diags, nil))
}

func TestExitCodeRespectsExitFailOnCategory(t *testing.T) {
	diags := []diag.Diagnostic{{Kind: diag.NewlineNotAllowedAfterInterfaceKeyword}}
	assert.Equal(t, 0, ExitCode(diags, []string{"error"}))
	assert.Equal(t, 1, ExitCode(diags, []string{"warning"}))
}

func TestExitCodeRespectsExitFailOnKindName(t *testing.T) {
	diags := []diag.Diagnostic{{Kind: diag.UseOfUndeclaredVariable}}
	assert.Equal(t, 1, ExitCode(diags, []string{"Use_Of_Undeclared_Variable"}))
	assert.Equal(t, 0, ExitCode(diags, []string{"Redeclaration_Of_Variable"}))
}
