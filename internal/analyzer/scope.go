package analyzer

import (
	"github.com/cmstoddard/quick-lint-js/internal/ast"
	"github.com/cmstoddard/quick-lint-js/internal/source"
)

// binding is one declared name within a single namespace of a single
// scope. seq orders it relative to the pendingUses recorded in the same
// scope, for the same-scope TDZ check spec.md §4.3 describes.
type binding struct {
	name  string
	kind  ast.DeclarationKind
	flags ast.DeclarationFlags
	rng   source.Range
	seq   int
}

// pendingUse is a use event not yet resolved to a binding. It is first
// checked against the scope it was recorded in (once that scope's own
// declarations are all known, at scope exit) and, failing that, against
// each enclosing scope outward to the module scope and finally the
// configured global set, per spec.md §4.3's resolution algorithm.
type pendingUse struct {
	name string
	kind ast.UseKind
	rng  source.Range
	seq  int
}

// scope is one entry on the analyzer's scope stack. Two parallel
// namespaces — value and type — mirror spec.md §4.3's note that
// `interface`/`type` only ever populate the type namespace while
// `var`/`let`/`const`/`function`/parameter only ever populate the value
// one; kinds like `class`, `enum`, `namespace`, and value+type imports
// populate both.
type scope struct {
	kind ast.ScopeKind

	valueBindings map[string]*binding
	typeBindings  map[string]*binding

	valueUses []pendingUse
	typeUses  []pendingUse

	// className records the class name VisitEnterClassScopeBody was
	// given; nothing in the analyzer reads it.
	className string

	declareDepth int // >0 if this scope or any enclosing scope
	// was entered via `declare`, enabling the
	// transitive-declare forward-reference rule spec.md §4.3 describes
	// for `declare namespace` bodies.

	// isAsyncFunction/isGeneratorFunction are set on ScopeFunction scopes
	// only, from VisitEnterFunctionScope's parameters, for the
	// Cannot_Declare_Await_In_Async_Function /
	// Cannot_Declare_Yield_In_Generator_Function checks.
	isAsyncFunction     bool
	isGeneratorFunction bool
}

func newScope(kind ast.ScopeKind, declareDepth int) *scope {
	return &scope{
		kind:          kind,
		valueBindings: make(map[string]*binding),
		typeBindings:  make(map[string]*binding),
		declareDepth:  declareDepth,
	}
}

func (s *scope) bindingsFor(kind ast.UseKind) map[string]*binding {
	if kind == ast.UseType {
		return s.typeBindings
	}
	return s.valueBindings
}

func (s *scope) usesFor(kind ast.UseKind) *[]pendingUse {
	if kind == ast.UseType {
		return &s.typeUses
	}
	return &s.valueUses
}
