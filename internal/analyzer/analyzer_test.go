package analyzer

import (
	"testing"

	"github.com/cmstoddard/quick-lint-js/internal/ast"
	"github.com/cmstoddard/quick-lint-js/internal/diag"
	"github.com/cmstoddard/quick-lint-js/internal/source"
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

func rangeAt(n uint32) source.Range { return source.Range{Begin: n, End: n + 1} }

type stubGlobals struct {
	declared map[string]bool
	writable map[string]bool
}

func (g stubGlobals) IsDeclared(name string) bool { return g.declared[name] }
func (g stubGlobals) IsWritable(name string) bool { return g.writable[name] }

func TestVarHoistsPastBlockScopeNoDiagnostic(t *testing.T) {
	diags := diag.NewCollector()
	a := New(diags, nil)

	a.VisitEnterFunctionScope(false, false)
	a.VisitEnterFunctionScopeBody()
	a.VisitEnterBlockScope()
	a.VisitVariableUse("x", rangeAt(1))
	a.VisitExitBlockScope()
	a.VisitVariableDeclaration("x", ast.Var, ast.FlagNone, rangeAt(5))
	a.VisitExitFunctionScope()
	a.VisitEndOfModule()

	assert.Empty(t, diags.Diagnostics)
}

func TestLetUsedBeforeDeclarationInSameScopeIsTDZViolation(t *testing.T) {
	diags := diag.NewCollector()
	a := New(diags, nil)

	a.VisitVariableUse("x", rangeAt(1))
	a.VisitVariableDeclaration("x", ast.Let, ast.FlagNone, rangeAt(5))
	a.VisitEndOfModule()

	require.Len(t, diags.Diagnostics, 1)
	assert.Equal(t, diag.VariableUsedBeforeDeclaration, diags.Diagnostics[0].Kind)
}

func TestLetUsedAfterDeclarationIsFine(t *testing.T) {
	diags := diag.NewCollector()
	a := New(diags, nil)

	a.VisitVariableDeclaration("x", ast.Let, ast.FlagNone, rangeAt(1))
	a.VisitVariableUse("x", rangeAt(5))
	a.VisitEndOfModule()

	assert.Empty(t, diags.Diagnostics)
}

func TestConstAssignmentBeforeDeclaration(t *testing.T) {
	diags := diag.NewCollector()
	a := New(diags, nil)

	a.VisitVariableAssignment("x", rangeAt(1))
	a.VisitVariableDeclaration("x", ast.Const, ast.FlagNone, rangeAt(5))
	a.VisitEndOfModule()

	require.Len(t, diags.Diagnostics, 1)
	assert.Equal(t, diag.AssignmentToConstVariableBeforeItsDeclaration, diags.Diagnostics[0].Kind)
}

func TestConstAssignmentAfterDeclaration(t *testing.T) {
	diags := diag.NewCollector()
	a := New(diags, nil)

	a.VisitVariableDeclaration("x", ast.Const, ast.FlagNone, rangeAt(1))
	a.VisitVariableAssignment("x", rangeAt(5))
	a.VisitEndOfModule()

	require.Len(t, diags.Diagnostics, 1)
	assert.Equal(t, diag.AssignmentToConstVariable, diags.Diagnostics[0].Kind)
}

func TestRedeclarationOfLetIsReported(t *testing.T) {
	diags := diag.NewCollector()
	a := New(diags, nil)

	a.VisitVariableDeclaration("x", ast.Let, ast.FlagNone, rangeAt(1))
	a.VisitVariableDeclaration("x", ast.Let, ast.FlagNone, rangeAt(5))
	a.VisitEndOfModule()

	require.Len(t, diags.Diagnostics, 1)
	assert.Equal(t, diag.RedeclarationOfVariable, diags.Diagnostics[0].Kind)
}

func TestVarRedeclarationIsAllowed(t *testing.T) {
	diags := diag.NewCollector()
	a := New(diags, nil)

	a.VisitVariableDeclaration("x", ast.Var, ast.FlagNone, rangeAt(1))
	a.VisitVariableDeclaration("x", ast.Var, ast.FlagNone, rangeAt(5))
	a.VisitEndOfModule()

	assert.Empty(t, diags.Diagnostics)
}

func TestInterfaceMergingIsAllowed(t *testing.T) {
	diags := diag.NewCollector()
	a := New(diags, nil)

	a.VisitVariableDeclaration("Foo", ast.Interface, ast.FlagNone, rangeAt(1))
	a.VisitVariableDeclaration("Foo", ast.Interface, ast.FlagNone, rangeAt(5))
	a.VisitEndOfModule()

	assert.Empty(t, diags.Diagnostics)
}

func TestUseEscapingToUndeclaredGlobalIsReported(t *testing.T) {
	diags := diag.NewCollector()
	a := New(diags, stubGlobals{declared: map[string]bool{}})

	a.VisitVariableUse("missing", rangeAt(1))
	a.VisitEndOfModule()

	require.Len(t, diags.Diagnostics, 1)
	assert.Equal(t, diag.UseOfUndeclaredVariable, diags.Diagnostics[0].Kind)
}

func TestUseResolvingAgainstDeclaredGlobalIsFine(t *testing.T) {
	diags := diag.NewCollector()
	a := New(diags, stubGlobals{declared: map[string]bool{"console": true}})

	a.VisitVariableUse("console", rangeAt(1))
	a.VisitEndOfModule()

	assert.Empty(t, diags.Diagnostics)
}

func TestAssignmentToReadonlyGlobalIsConstViolation(t *testing.T) {
	diags := diag.NewCollector()
	a := New(diags, stubGlobals{declared: map[string]bool{"Array": true}, writable: map[string]bool{}})

	a.VisitVariableAssignment("Array", rangeAt(1))
	a.VisitEndOfModule()

	require.Len(t, diags.Diagnostics, 1)
	assert.Equal(t, diag.AssignmentToConstVariable, diags.Diagnostics[0].Kind)
}

func TestDeclaringAwaitInsideAsyncFunctionIsReported(t *testing.T) {
	diags := diag.NewCollector()
	a := New(diags, nil)

	a.VisitEnterFunctionScope(true, false)
	a.VisitEnterFunctionScopeBody()
	a.VisitVariableDeclaration("await", ast.Let, ast.FlagNone, rangeAt(1))
	a.VisitExitFunctionScope()
	a.VisitEndOfModule()

	assert.Contains(t, kindsOf(diags.Diagnostics), diag.CannotDeclareAwaitInAsyncFunction)
}

func TestDeclaringYieldInsideGeneratorFunctionIsReported(t *testing.T) {
	diags := diag.NewCollector()
	a := New(diags, nil)

	a.VisitEnterFunctionScope(false, true)
	a.VisitEnterFunctionScopeBody()
	a.VisitVariableDeclaration("yield", ast.Let, ast.FlagNone, rangeAt(1))
	a.VisitExitFunctionScope()
	a.VisitEndOfModule()

	assert.Contains(t, kindsOf(diags.Diagnostics), diag.CannotDeclareYieldInGeneratorFunction)
}

func TestDeclareNamespacePropagatesDeclareFlagTransitively(t *testing.T) {
	diags := diag.NewCollector()
	a := New(diags, nil)

	// Simulates a `declare namespace` body where a name is used ahead of
	// its own declaration: ordinary `let` would be a TDZ violation, but
	// every declaration inside a declare scope inherits FlagDeclare
	// transitively, per spec.md §4.3, exempting it from the check.
	a.pushDeclareScope(ast.ScopeNamespace)
	a.VisitVariableUse("x", rangeAt(1))
	a.VisitVariableDeclaration("x", ast.Let, ast.FlagNone, rangeAt(10))
	a.popScope()
	a.VisitEndOfModule()

	assert.Empty(t, diags.Diagnostics)
}

func TestClassScopeExitPopsBothHeadAndBody(t *testing.T) {
	diags := diag.NewCollector()
	a := New(diags, nil)

	a.VisitEnterClassScope()
	a.VisitEnterClassScopeBody("C", true)
	a.VisitVariableUse("C", rangeAt(1))
	a.VisitExitClassScope()
	require.Len(t, a.scopes, 1)

	a.VisitEndOfModule()
	assert.Len(t, diags.Diagnostics, 1)
	assert.Equal(t, diag.UseOfUndeclaredVariable, diags.Diagnostics[0].Kind)
}
