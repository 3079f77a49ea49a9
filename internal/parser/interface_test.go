package parser

import (
	"testing"

	"github.com/cmstoddard/quick-lint-js/internal/ast"
	"github.com/cmstoddard/quick-lint-js/internal/diag"
	"github.com/cmstoddard/quick-lint-js/internal/lexer"
	"github.com/cmstoddard/quick-lint-js/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingVisitor captures the subset of visitor events the interface
// seed scenarios care about, without pulling in the variable analyzer.
type recordingVisitor struct {
	ast.NullVisitor
	events []string
}

func (v *recordingVisitor) VisitVariableDeclaration(name string, kind ast.DeclarationKind, flags ast.DeclarationFlags, rng source.Range) {
	v.events = append(v.events, "variable_declaration("+name+","+kind.String()+")")
}

func (v *recordingVisitor) VisitEnterInterfaceScope() {
	v.events = append(v.events, "enter_interface_scope")
}
func (v *recordingVisitor) VisitExitInterfaceScope() {
	v.events = append(v.events, "exit_interface_scope")
}

func (v *recordingVisitor) VisitPropertyDeclaration(name string, hasName bool) {
	if hasName {
		v.events = append(v.events, "property_declaration("+name+")")
	} else {
		v.events = append(v.events, "property_declaration()")
	}
}

// parseInterfaceSource parses text under opts and returns the recorded
// visitor events plus every diagnostic the parser emitted.
func parseInterfaceSource(t *testing.T, text string, opts Options) ([]string, []diag.Diagnostic) {
	t.Helper()
	buf := source.NewBuffer("<test>", text)
	diags := diag.NewCollector()
	arena := lexer.NewArena()
	visit := &recordingVisitor{}
	p := New(buf, diags, arena, visit, opts)
	p.ParseAndVisitModule()
	return visit.events, diags.Diagnostics
}

func kindsOf(diags []diag.Diagnostic) []diag.Kind {
	kinds := make([]diag.Kind, len(diags))
	for i, d := range diags {
		kinds[i] = d.Kind
	}
	return kinds
}

func labelNamed(t *testing.T, d diag.Diagnostic, name string) diag.Label {
	t.Helper()
	for _, l := range d.Labels {
		if l.Name == name {
			return l
		}
	}
	t.Fatalf("diagnostic %s has no label named %q", d.Kind, name)
	return diag.Label{}
}

// Scenario 1: an empty interface declares its name, enters and exits one
// interface scope, and reports nothing.
func TestEmptyInterface(t *testing.T) {
	events, diags := parseInterfaceSource(t, "interface I {}\n", Options{TypeScript: true})
	assert.Empty(t, diags)
	assert.Equal(t, []string{
		"variable_declaration(I,interface)",
		"enter_interface_scope",
		"exit_interface_scope",
	}, events)
}

// Scenario 2: the same input outside TypeScript mode is still parsed
// (same visit sequence), but is rejected as a grammar error.
func TestInterfaceOutsideTypeScriptIsRejected(t *testing.T) {
	text := "interface I {}\n"
	events, diags := parseInterfaceSource(t, text, Options{TypeScript: false})
	assert.Equal(t, []string{
		"variable_declaration(I,interface)",
		"enter_interface_scope",
		"exit_interface_scope",
	}, events)
	require.Len(t, diags, 1)
	assert.Equal(t, diag.TypeScriptInterfacesNotAllowedInJavaScript, diags[0].Kind)
	primary := diags[0].Primary()
	assert.Equal(t, text[:len(text)-1], text[primary.Begin:primary.End])
}

// Scenario 3: a static method in an interface is rejected as a static
// property, labeled on the `static` keyword.
func TestStaticMethodInInterface(t *testing.T) {
	text := "interface I { static m(); }\n"
	_, diags := parseInterfaceSource(t, text, Options{TypeScript: true})
	require.Len(t, diags, 1)
	d := diags[0]
	assert.Equal(t, diag.InterfacePropertiesCannotBeStatic, d.Kind)
	l := labelNamed(t, d, "static_keyword")
	assert.Equal(t, "static", text[l.Range.Begin:l.Range.End])
}

// Scenario 4: async + static + generator on one interface method must
// report all three violations exactly once, regardless of the order the
// modifiers were written in, and must parse as exactly one member.
func TestAsyncStaticGeneratorMethodInInterface(t *testing.T) {
	text := "interface I { async static *m(); }\n"
	events, diags := parseInterfaceSource(t, text, Options{TypeScript: true})

	assert.Equal(t, []string{
		"variable_declaration(I,interface)",
		"enter_interface_scope",
		"property_declaration(m)",
		"exit_interface_scope",
	}, events)

	require.ElementsMatch(t, []diag.Kind{
		diag.InterfaceMethodsCannotBeAsync,
		diag.InterfacePropertiesCannotBeStatic,
		diag.InterfaceMethodsCannotBeGenerators,
	}, kindsOf(diags))

	for _, d := range diags {
		switch d.Kind {
		case diag.InterfaceMethodsCannotBeAsync:
			l := labelNamed(t, d, "async_keyword")
			assert.Equal(t, "async", text[l.Range.Begin:l.Range.End])
		case diag.InterfacePropertiesCannotBeStatic:
			l := labelNamed(t, d, "static_keyword")
			assert.Equal(t, "static", text[l.Range.Begin:l.Range.End])
		case diag.InterfaceMethodsCannotBeGenerators:
			l := labelNamed(t, d, "star")
			assert.Equal(t, "*", text[l.Range.Begin:l.Range.End])
		}
	}
}

// The non-generator sibling from the same grounding table: async+static
// without a `*` reports only the async and static violations.
func TestAsyncStaticMethodInInterfaceWithoutGenerator(t *testing.T) {
	text := "interface I { async static method(); }\n"
	_, diags := parseInterfaceSource(t, text, Options{TypeScript: true})
	require.ElementsMatch(t, []diag.Kind{
		diag.InterfaceMethodsCannotBeAsync,
		diag.InterfacePropertiesCannotBeStatic,
	}, kindsOf(diags))
}

// Scenario 6: a newline between `interface` and its name is still parsed
// as an interface declaration, but warned about.
func TestNewlineAfterInterfaceKeyword(t *testing.T) {
	events, diags := parseInterfaceSource(t, "interface\nI {}\n", Options{TypeScript: true})
	require.Len(t, diags, 1)
	assert.Equal(t, diag.NewlineNotAllowedAfterInterfaceKeyword, diags[0].Kind)
	assert.Contains(t, events, "variable_declaration(I,interface)")
	assert.Contains(t, events, "enter_interface_scope")
	assert.Contains(t, events, "exit_interface_scope")
}

// Scenario 7: an interface body missing its closing brace is reported,
// labeled at the `{`, and the interface scope still balances at
// end-of-file.
func TestUnclosedInterfaceBlock(t *testing.T) {
	text := "interface I { "
	events, diags := parseInterfaceSource(t, text, Options{TypeScript: true})
	require.Len(t, diags, 1)
	assert.Equal(t, diag.UnclosedInterfaceBlock, diags[0].Kind)
	l := labelNamed(t, diags[0], "open_brace")
	assert.Equal(t, "{", text[l.Range.Begin:l.Range.End])
	require.Len(t, events, 3)
	assert.Equal(t, "enter_interface_scope", events[1])
	assert.Equal(t, "exit_interface_scope", events[2])
}

// Scenario 8: ASI applies between two method signatures on separate
// lines inside an interface body, with no diagnostics.
func TestASIInsideInterfaceBody(t *testing.T) {
	events, diags := parseInterfaceSource(t, "interface I {\n f()\n g() }\n", Options{TypeScript: true})
	assert.Empty(t, diags)
	assert.Equal(t, []string{
		"variable_declaration(I,interface)",
		"enter_interface_scope",
		"property_declaration(f)",
		"property_declaration(g)",
		"exit_interface_scope",
	}, events)
}
