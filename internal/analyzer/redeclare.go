package analyzer

import "github.com/cmstoddard/quick-lint-js/internal/ast"

// redeclarationAllowed implements spec.md §4.3's "fixed table over
// declaration kinds": whether declaring incoming in a scope that
// already has existing in the same namespace is legal. Grounded on
// quick-lint-js's variable-analyzer redeclaration matrix (the set of
// `Variable_Kind` pairs `diagnostic_assignment_to_const_variable.h`'s
// sibling tests exercise), simplified to the pairs SPEC_FULL.md's
// analyzer actually needs to arbitrate.
func redeclarationAllowed(existing, incoming ast.DeclarationKind) bool {
	// var/function hoist together and may redeclare each other and
	// themselves any number of times.
	if isHoistedKind(existing) && isHoistedKind(incoming) {
		return true
	}

	// TypeScript declaration merging: repeated `interface`, repeated
	// `namespace`, and a `class`/`namespace` pair all legally share one
	// name.
	if existing == ast.Interface && incoming == ast.Interface {
		return true
	}
	if existing == ast.Namespace && incoming == ast.Namespace {
		return true
	}
	if isClassOrNamespace(existing) && isClassOrNamespace(incoming) && existing != incoming {
		return true
	}

	return false
}

func isHoistedKind(kind ast.DeclarationKind) bool {
	return kind == ast.Var || kind == ast.FunctionDecl
}

func isClassOrNamespace(kind ast.DeclarationKind) bool {
	return kind == ast.ClassDecl || kind == ast.Namespace
}
