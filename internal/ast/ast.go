// Package ast defines the closed visitor event vocabulary the parser
// drives and the variable analyzer consumes, per spec.md §3 and the
// design note in spec.md §9: no AST is ever materialized. This is the
// direct analogue of evanw/esbuild's internal/js_ast package, except
// esbuild's package holds a materialized tree of `Expr`/`Stmt` nodes
// while this one holds only the event shapes and the declaration/scope
// records those events populate.
package ast

import "github.com/cmstoddard/quick-lint-js/internal/source"

// DeclarationKind enumerates the `kind` carried by variable_declaration
// events, per spec.md §3.
type DeclarationKind uint8

const (
	Var DeclarationKind = iota
	Let
	Const
	FunctionDecl
	ClassDecl
	Parameter
	CatchVariable
	Import
	Interface
	TypeAlias
	Enum
	Namespace
	GenericParameter
	IndexSignatureParameter
	ArrowParameter
	FunctionTypeParameter
)

// String names a DeclarationKind for diagnostics/tests.
func (k DeclarationKind) String() string {
	switch k {
	case Var:
		return "var"
	case Let:
		return "let"
	case Const:
		return "const"
	case FunctionDecl:
		return "function"
	case ClassDecl:
		return "class"
	case Parameter:
		return "parameter"
	case CatchVariable:
		return "catch"
	case Import:
		return "import"
	case Interface:
		return "interface"
	case TypeAlias:
		return "type alias"
	case Enum:
		return "enum"
	case Namespace:
		return "namespace"
	case GenericParameter:
		return "generic parameter"
	case IndexSignatureParameter:
		return "index signature parameter"
	case ArrowParameter:
		return "arrow parameter"
	case FunctionTypeParameter:
		return "function type parameter"
	default:
		return "declaration"
	}
}

// ValueNamespace reports whether kind ever populates the value namespace.
func (k DeclarationKind) ValueNamespace() bool {
	switch k {
	case Interface, TypeAlias:
		return false
	default:
		return true
	}
}

// Hoists reports whether kind hoists to the nearest enclosing scope
// that ScopeKind.StopsHoisting, skipping over intervening block scopes.
func (k DeclarationKind) Hoists() bool {
	switch k {
	case Var, FunctionDecl:
		return true
	default:
		return false
	}
}

// TypeNamespace reports whether kind ever populates the type namespace.
func (k DeclarationKind) TypeNamespace() bool {
	switch k {
	case Interface, TypeAlias, ClassDecl, Enum, Namespace, Import, GenericParameter:
		return true
	default:
		return false
	}
}

// DeclarationFlags carries the TypeScript-specific modifiers spec.md §3
// attaches to variable_declaration events.
type DeclarationFlags uint8

const (
	FlagNone    DeclarationFlags = 0
	FlagDeclare DeclarationFlags = 1 << iota
	FlagExport
	FlagAmbient
)

func (f DeclarationFlags) Has(bit DeclarationFlags) bool { return f&bit != 0 }

// UseKind enumerates the namespace + mutation intent of a use event.
type UseKind uint8

const (
	UseValue UseKind = iota
	UseType
	UseNamespace
	UseAssignment
	UseDelete
)

// ScopeKind enumerates the scope record kinds of spec.md §3.
type ScopeKind uint8

const (
	ScopeBlock ScopeKind = iota
	ScopeFunction
	ScopeFunctionParameters
	ScopeClass
	ScopeClassBody
	ScopeInterface
	ScopeNamespace
	ScopeModule
	ScopeType
	ScopeIndexSignature
	ScopeWith
)

// StopsHoisting reports whether a var/function declaration made inside
// this scope kind hoists only up to here, never past it into an
// enclosing scope. Grounded on evanw/esbuild's ScopeKind.StopsHoisting
// (js_ast.go), which draws the same line at function and module/entry
// boundaries.
func (k ScopeKind) StopsHoisting() bool {
	switch k {
	case ScopeFunction, ScopeModule, ScopeNamespace:
		return true
	default:
		return false
	}
}

func (k ScopeKind) String() string {
	switch k {
	case ScopeBlock:
		return "block"
	case ScopeFunction:
		return "function"
	case ScopeFunctionParameters:
		return "function-parameter"
	case ScopeClass:
		return "class"
	case ScopeClassBody:
		return "class-body"
	case ScopeInterface:
		return "interface"
	case ScopeNamespace:
		return "namespace"
	case ScopeModule:
		return "module"
	case ScopeType:
		return "type"
	case ScopeIndexSignature:
		return "index-signature"
	case ScopeWith:
		return "with"
	default:
		return "scope"
	}
}

// Visitor is the fixed-vocabulary interface the parser drives directly,
// generalizing spec.md §9's note that a trait/interface with one method
// per event is an acceptable AST-free rendering of the visitor pattern.
// The variable analyzer is one implementation; internal/obslog's tracing
// visitor (print_parser_visits) is another, demonstrating the interface
// supports multiple independent consumers.
type Visitor interface {
	VisitVariableDeclaration(name string, kind DeclarationKind, flags DeclarationFlags, rng source.Range)
	VisitVariableUse(name string, rng source.Range)
	VisitVariableTypeUse(name string, rng source.Range)
	VisitVariableNamespaceUse(name string, rng source.Range)
	VisitVariableAssignment(name string, rng source.Range)
	VisitVariableDeleteUse(name string, rng source.Range)

	VisitEnterBlockScope()
	VisitExitBlockScope()

	VisitEnterFunctionScope(isAsync bool, isGenerator bool)
	VisitEnterFunctionScopeBody()
	VisitExitFunctionScope()

	VisitEnterInterfaceScope()
	VisitExitInterfaceScope()

	VisitEnterClassScope()
	VisitEnterClassScopeBody(name string, hasName bool)
	VisitExitClassScope()

	VisitEnterNamespaceScope()
	VisitExitNamespaceScope()

	VisitEnterIndexSignatureScope()
	VisitExitIndexSignatureScope()

	VisitEnterTypeScope()
	VisitExitTypeScope()

	VisitPropertyDeclaration(name string, hasName bool)

	VisitEndOfModule()
}

// NullVisitor implements Visitor with no-ops; embed it to implement only
// the events a particular consumer cares about (e.g. a future renderer
// that only wants end_of_module).
type NullVisitor struct{}

func (NullVisitor) VisitVariableDeclaration(string, DeclarationKind, DeclarationFlags, source.Range) {
}
func (NullVisitor) VisitVariableUse(string, source.Range)          {}
func (NullVisitor) VisitVariableTypeUse(string, source.Range)      {}
func (NullVisitor) VisitVariableNamespaceUse(string, source.Range) {}
func (NullVisitor) VisitVariableAssignment(string, source.Range)   {}
func (NullVisitor) VisitVariableDeleteUse(string, source.Range)    {}
func (NullVisitor) VisitEnterBlockScope()                          {}
func (NullVisitor) VisitExitBlockScope()                           {}
func (NullVisitor) VisitEnterFunctionScope(bool, bool)              {}
func (NullVisitor) VisitEnterFunctionScopeBody()                   {}
func (NullVisitor) VisitExitFunctionScope()                        {}
func (NullVisitor) VisitEnterInterfaceScope()                      {}
func (NullVisitor) VisitExitInterfaceScope()                       {}
func (NullVisitor) VisitEnterClassScope()                          {}
func (NullVisitor) VisitEnterClassScopeBody(string, bool)           {}
func (NullVisitor) VisitExitClassScope()                           {}
func (NullVisitor) VisitEnterNamespaceScope()                      {}
func (NullVisitor) VisitExitNamespaceScope()                       {}
func (NullVisitor) VisitEnterIndexSignatureScope()                 {}
func (NullVisitor) VisitExitIndexSignatureScope()                  {}
func (NullVisitor) VisitEnterTypeScope()                           {}
func (NullVisitor) VisitExitTypeScope()                            {}
func (NullVisitor) VisitPropertyDeclaration(string, bool)          {}
func (NullVisitor) VisitEndOfModule()                              {}

// MultiVisitor fans a single event stream out to several visitors, in
// order — used to drive both the variable analyzer and a tracing visitor
// from one parse.
type MultiVisitor []Visitor

func (m MultiVisitor) VisitVariableDeclaration(name string, kind DeclarationKind, flags DeclarationFlags, rng source.Range) {
	for _, v := range m {
		v.VisitVariableDeclaration(name, kind, flags, rng)
	}
}
func (m MultiVisitor) VisitVariableUse(name string, rng source.Range) {
	for _, v := range m {
		v.VisitVariableUse(name, rng)
	}
}
func (m MultiVisitor) VisitVariableTypeUse(name string, rng source.Range) {
	for _, v := range m {
		v.VisitVariableTypeUse(name, rng)
	}
}
func (m MultiVisitor) VisitVariableNamespaceUse(name string, rng source.Range) {
	for _, v := range m {
		v.VisitVariableNamespaceUse(name, rng)
	}
}
func (m MultiVisitor) VisitVariableAssignment(name string, rng source.Range) {
	for _, v := range m {
		v.VisitVariableAssignment(name, rng)
	}
}
func (m MultiVisitor) VisitVariableDeleteUse(name string, rng source.Range) {
	for _, v := range m {
		v.VisitVariableDeleteUse(name, rng)
	}
}
func (m MultiVisitor) VisitEnterBlockScope() {
	for _, v := range m {
		v.VisitEnterBlockScope()
	}
}
func (m MultiVisitor) VisitExitBlockScope() {
	for _, v := range m {
		v.VisitExitBlockScope()
	}
}
func (m MultiVisitor) VisitEnterFunctionScope(isAsync bool, isGenerator bool) {
	for _, v := range m {
		v.VisitEnterFunctionScope(isAsync, isGenerator)
	}
}
func (m MultiVisitor) VisitEnterFunctionScopeBody() {
	for _, v := range m {
		v.VisitEnterFunctionScopeBody()
	}
}
func (m MultiVisitor) VisitExitFunctionScope() {
	for _, v := range m {
		v.VisitExitFunctionScope()
	}
}
func (m MultiVisitor) VisitEnterInterfaceScope() {
	for _, v := range m {
		v.VisitEnterInterfaceScope()
	}
}
func (m MultiVisitor) VisitExitInterfaceScope() {
	for _, v := range m {
		v.VisitExitInterfaceScope()
	}
}
func (m MultiVisitor) VisitEnterClassScope() {
	for _, v := range m {
		v.VisitEnterClassScope()
	}
}
func (m MultiVisitor) VisitEnterClassScopeBody(name string, hasName bool) {
	for _, v := range m {
		v.VisitEnterClassScopeBody(name, hasName)
	}
}
func (m MultiVisitor) VisitExitClassScope() {
	for _, v := range m {
		v.VisitExitClassScope()
	}
}
func (m MultiVisitor) VisitEnterNamespaceScope() {
	for _, v := range m {
		v.VisitEnterNamespaceScope()
	}
}
func (m MultiVisitor) VisitExitNamespaceScope() {
	for _, v := range m {
		v.VisitExitNamespaceScope()
	}
}
func (m MultiVisitor) VisitEnterIndexSignatureScope() {
	for _, v := range m {
		v.VisitEnterIndexSignatureScope()
	}
}
func (m MultiVisitor) VisitExitIndexSignatureScope() {
	for _, v := range m {
		v.VisitExitIndexSignatureScope()
	}
}
func (m MultiVisitor) VisitEnterTypeScope() {
	for _, v := range m {
		v.VisitEnterTypeScope()
	}
}
func (m MultiVisitor) VisitExitTypeScope() {
	for _, v := range m {
		v.VisitExitTypeScope()
	}
}
func (m MultiVisitor) VisitPropertyDeclaration(name string, hasName bool) {
	for _, v := range m {
		v.VisitPropertyDeclaration(name, hasName)
	}
}
func (m MultiVisitor) VisitEndOfModule() {
	for _, v := range m {
		v.VisitEndOfModule()
	}
}

// RecordingVisitor appends a string per event, matching the
// "visit_variable_declaration" style names quick-lint-js's own
// Spy_Visitor test double uses, so Go tests can assert on visit
// sequences the same way the original test suite does.
type RecordingVisitor struct {
	Visits               []string
	Declarations         []Declaration
	Uses                 []Use
}

// Declaration records one observed variable_declaration event.
type Declaration struct {
	Name  string
	Kind  DeclarationKind
	Flags DeclarationFlags
	Range source.Range
}

// Use records one observed use-family event.
type Use struct {
	Name  string
	Kind  UseKind
	Range source.Range
}

func (r *RecordingVisitor) VisitVariableDeclaration(name string, kind DeclarationKind, flags DeclarationFlags, rng source.Range) {
	r.Visits = append(r.Visits, "visit_variable_declaration")
	r.Declarations = append(r.Declarations, Declaration{name, kind, flags, rng})
}
func (r *RecordingVisitor) VisitVariableUse(name string, rng source.Range) {
	r.Visits = append(r.Visits, "visit_variable_use")
	r.Uses = append(r.Uses, Use{name, UseValue, rng})
}
func (r *RecordingVisitor) VisitVariableTypeUse(name string, rng source.Range) {
	r.Visits = append(r.Visits, "visit_variable_type_use")
	r.Uses = append(r.Uses, Use{name, UseType, rng})
}
func (r *RecordingVisitor) VisitVariableNamespaceUse(name string, rng source.Range) {
	r.Visits = append(r.Visits, "visit_variable_namespace_use")
	r.Uses = append(r.Uses, Use{name, UseNamespace, rng})
}
func (r *RecordingVisitor) VisitVariableAssignment(name string, rng source.Range) {
	r.Visits = append(r.Visits, "visit_variable_assignment")
	r.Uses = append(r.Uses, Use{name, UseAssignment, rng})
}
func (r *RecordingVisitor) VisitVariableDeleteUse(name string, rng source.Range) {
	r.Visits = append(r.Visits, "visit_variable_delete_use")
	r.Uses = append(r.Uses, Use{name, UseDelete, rng})
}
func (r *RecordingVisitor) VisitEnterBlockScope() { r.Visits = append(r.Visits, "visit_enter_block_scope") }
func (r *RecordingVisitor) VisitExitBlockScope()  { r.Visits = append(r.Visits, "visit_exit_block_scope") }
func (r *RecordingVisitor) VisitEnterFunctionScope(isAsync bool, isGenerator bool) {
	r.Visits = append(r.Visits, "visit_enter_function_scope")
}
func (r *RecordingVisitor) VisitEnterFunctionScopeBody() {
	r.Visits = append(r.Visits, "visit_enter_function_scope_body")
}
func (r *RecordingVisitor) VisitExitFunctionScope() {
	r.Visits = append(r.Visits, "visit_exit_function_scope")
}
func (r *RecordingVisitor) VisitEnterInterfaceScope() {
	r.Visits = append(r.Visits, "visit_enter_interface_scope")
}
func (r *RecordingVisitor) VisitExitInterfaceScope() {
	r.Visits = append(r.Visits, "visit_exit_interface_scope")
}
func (r *RecordingVisitor) VisitEnterClassScope() { r.Visits = append(r.Visits, "visit_enter_class_scope") }
func (r *RecordingVisitor) VisitEnterClassScopeBody(name string, hasName bool) {
	r.Visits = append(r.Visits, "visit_enter_class_scope_body")
}
func (r *RecordingVisitor) VisitExitClassScope() { r.Visits = append(r.Visits, "visit_exit_class_scope") }
func (r *RecordingVisitor) VisitEnterNamespaceScope() {
	r.Visits = append(r.Visits, "visit_enter_namespace_scope")
}
func (r *RecordingVisitor) VisitExitNamespaceScope() {
	r.Visits = append(r.Visits, "visit_exit_namespace_scope")
}
func (r *RecordingVisitor) VisitEnterIndexSignatureScope() {
	r.Visits = append(r.Visits, "visit_enter_index_signature_scope")
}
func (r *RecordingVisitor) VisitExitIndexSignatureScope() {
	r.Visits = append(r.Visits, "visit_exit_index_signature_scope")
}
func (r *RecordingVisitor) VisitEnterTypeScope() { r.Visits = append(r.Visits, "visit_enter_type_scope") }
func (r *RecordingVisitor) VisitExitTypeScope()  { r.Visits = append(r.Visits, "visit_exit_type_scope") }
func (r *RecordingVisitor) VisitPropertyDeclaration(name string, hasName bool) {
	r.Visits = append(r.Visits, "visit_property_declaration")
}
func (r *RecordingVisitor) VisitEndOfModule() { r.Visits = append(r.Visits, "visit_end_of_module") }
