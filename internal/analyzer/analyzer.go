// Package analyzer implements spec.md §4.3's variable analyzer: a
// single ast.Visitor that consumes the parser's event stream and
// maintains a stack of scopes, each with independent value and type
// namespaces, resolving every use against the narrowest scope that
// declares it and finally against a configured GlobalSet.
package analyzer

import (
	"github.com/cmstoddard/quick-lint-js/internal/ast"
	"github.com/cmstoddard/quick-lint-js/internal/diag"
	"github.com/cmstoddard/quick-lint-js/internal/source"
)

// Analyzer is an ast.Visitor; drive a parse with it (directly, or
// combined with another visitor via ast.MultiVisitor) and read
// diagnostics off the Collector given to New afterward.
type Analyzer struct {
	diags   *diag.Collector
	globals GlobalSet
	scopes  []*scope
	seq     int
}

var _ ast.Visitor = (*Analyzer)(nil)

// New constructs an Analyzer that reports into diags and, for names
// unresolved at module scope, consults globals (pass nil to report
// every escaping use as undeclared).
func New(diags *diag.Collector, globals GlobalSet) *Analyzer {
	if globals == nil {
		globals = emptyGlobalSet{}
	}
	a := &Analyzer{diags: diags, globals: globals}
	a.scopes = []*scope{newScope(ast.ScopeModule, 0)}
	return a
}

func (a *Analyzer) top() *scope { return a.scopes[len(a.scopes)-1] }

func (a *Analyzer) nextSeq() int {
	a.seq++
	return a.seq
}

// hoistTarget walks outward from the current scope to the nearest one
// that ast.ScopeKind.StopsHoisting, per spec.md §4.3's hoisting rule for
// `var`/`function`.
func (a *Analyzer) hoistTarget() *scope {
	for i := len(a.scopes) - 1; i >= 0; i-- {
		if i == 0 || a.scopes[i].kind.StopsHoisting() {
			return a.scopes[i]
		}
	}
	return a.scopes[0]
}

// enclosingFunctionScope walks outward to the nearest ScopeFunction,
// used only to resolve whether a declared `await`/`yield` name sits
// inside an async/generator function body.
func (a *Analyzer) enclosingFunctionScope() *scope {
	for i := len(a.scopes) - 1; i >= 0; i-- {
		if a.scopes[i].kind == ast.ScopeFunction {
			return a.scopes[i]
		}
	}
	return nil
}

func (a *Analyzer) pushScope(kind ast.ScopeKind) *scope {
	declareDepth := a.top().declareDepth
	s := newScope(kind, declareDepth)
	a.scopes = append(a.scopes, s)
	return s
}

// pushDeclareScope is used for the body of a namespace whose own
// declaration carries FlagDeclare (`declare namespace N`, `declare
// module N`) and for namespaces nested in such a body: every declaration
// made anywhere inside inherits FlagDeclare transitively, per spec.md
// §4.3. `declare module "x"` and `declare global` declare no name, so
// their bodies are entered as ordinary namespace scopes.
func (a *Analyzer) pushDeclareScope(kind ast.ScopeKind) *scope {
	s := newScope(kind, a.top().declareDepth+1)
	a.scopes = append(a.scopes, s)
	return s
}

func (a *Analyzer) popScope() {
	s := a.scopes[len(a.scopes)-1]
	a.scopes = a.scopes[:len(a.scopes)-1]
	a.resolveScopeExit(s)
}

// --- Declarations ---

func (a *Analyzer) VisitVariableDeclaration(name string, kind ast.DeclarationKind, flags ast.DeclarationFlags, rng source.Range) {
	seq := a.nextSeq()
	if a.top().declareDepth > 0 {
		flags |= ast.FlagDeclare
	}
	b := &binding{name: name, kind: kind, flags: flags, rng: rng, seq: seq}

	target := a.top()
	if kind.Hoists() {
		target = a.hoistTarget()
	}

	if kind.ValueNamespace() {
		a.declareInto(target.valueBindings, b)
	}
	if kind.TypeNamespace() {
		a.declareInto(target.typeBindings, b)
	}

	if fn := a.enclosingFunctionScope(); fn != nil && isValueBindingKind(kind) {
		if name == "await" && fn.isAsyncFunction {
			a.diags.Add(diag.CannotDeclareAwaitInAsyncFunction, diag.Label{Name: "name", Range: rng})
		}
		if name == "yield" && fn.isGeneratorFunction {
			a.diags.Add(diag.CannotDeclareYieldInGeneratorFunction, diag.Label{Name: "name", Range: rng})
		}
	}
}

func isValueBindingKind(kind ast.DeclarationKind) bool {
	switch kind {
	case ast.Var, ast.Let, ast.Const, ast.Parameter, ast.ArrowParameter, ast.CatchVariable:
		return true
	default:
		return false
	}
}

func (a *Analyzer) declareInto(ns map[string]*binding, b *binding) {
	if existing, ok := ns[b.name]; ok && !redeclarationAllowed(existing.kind, b.kind) {
		a.diags.Add(diag.RedeclarationOfVariable,
			diag.Label{Name: "redeclaration", Range: b.rng},
			diag.Label{Name: "original_declaration", Range: existing.rng})
	}
	ns[b.name] = b
}

// --- Uses ---

func (a *Analyzer) recordUse(name string, kind ast.UseKind, rng source.Range) {
	s := a.top()
	uses := s.usesFor(kind)
	*uses = append(*uses, pendingUse{name: name, kind: kind, rng: rng, seq: a.nextSeq()})
}

func (a *Analyzer) VisitVariableUse(name string, rng source.Range) {
	a.recordUse(name, ast.UseValue, rng)
}
func (a *Analyzer) VisitVariableTypeUse(name string, rng source.Range) {
	a.recordUse(name, ast.UseType, rng)
}
func (a *Analyzer) VisitVariableNamespaceUse(name string, rng source.Range) {
	a.recordUse(name, ast.UseNamespace, rng)
}
func (a *Analyzer) VisitVariableAssignment(name string, rng source.Range) {
	a.recordUse(name, ast.UseAssignment, rng)
}
func (a *Analyzer) VisitVariableDeleteUse(name string, rng source.Range) {
	a.recordUse(name, ast.UseDelete, rng)
}

// --- Scopes ---

func (a *Analyzer) VisitEnterBlockScope() { a.pushScope(ast.ScopeBlock) }
func (a *Analyzer) VisitExitBlockScope()  { a.popScope() }

func (a *Analyzer) VisitEnterFunctionScope(isAsync bool, isGenerator bool) {
	s := a.pushScope(ast.ScopeFunction)
	s.isAsyncFunction = isAsync
	s.isGeneratorFunction = isGenerator
}
func (a *Analyzer) VisitEnterFunctionScopeBody() {}
func (a *Analyzer) VisitExitFunctionScope()      { a.popScope() }

func (a *Analyzer) VisitEnterInterfaceScope() { a.pushScope(ast.ScopeInterface) }
func (a *Analyzer) VisitExitInterfaceScope()  { a.popScope() }

func (a *Analyzer) VisitEnterClassScope() { a.pushScope(ast.ScopeClass) }
func (a *Analyzer) VisitEnterClassScopeBody(name string, hasName bool) {
	s := a.pushScope(ast.ScopeClassBody)
	s.className = name
	_ = hasName
}
func (a *Analyzer) VisitExitClassScope() {
	a.popScope() // class body
	a.popScope() // class head (type parameters, heritage clauses)
}

func (a *Analyzer) VisitEnterNamespaceScope() {
	isDeclare := a.top().declareDepth > 0
	for _, b := range a.top().valueBindings {
		// The namespace's own declaration is the event just before this one.
		if b.seq == a.seq && b.kind == ast.Namespace && b.flags.Has(ast.FlagDeclare) {
			isDeclare = true
		}
	}
	if isDeclare {
		a.pushDeclareScope(ast.ScopeNamespace)
	} else {
		a.pushScope(ast.ScopeNamespace)
	}
}
func (a *Analyzer) VisitExitNamespaceScope() { a.popScope() }

func (a *Analyzer) VisitEnterIndexSignatureScope() { a.pushScope(ast.ScopeIndexSignature) }
func (a *Analyzer) VisitExitIndexSignatureScope()  { a.popScope() }

func (a *Analyzer) VisitEnterTypeScope() { a.pushScope(ast.ScopeType) }
func (a *Analyzer) VisitExitTypeScope()  { a.popScope() }

func (a *Analyzer) VisitPropertyDeclaration(name string, hasName bool) {
	// Property declarations never populate a scope's namespaces: a
	// class/object member name is not a bare identifier binding and
	// can't be referenced as one, per spec.md §3.
	_, _ = name, hasName
}

// VisitEndOfModule pops the module scope (and, defensively, anything
// left above it), resolving whatever is left pending against the
// configured GlobalSet.
func (a *Analyzer) VisitEndOfModule() {
	for len(a.scopes) > 0 {
		a.popScope()
	}
}
