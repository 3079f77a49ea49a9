package analyzer

import (
	"github.com/cmstoddard/quick-lint-js/internal/ast"
	"github.com/cmstoddard/quick-lint-js/internal/diag"
)

// resolveScopeExit implements spec.md §4.3's resolution algorithm for
// one popped scope: first try every pending use against that scope's
// own, now-complete set of bindings (applying the TDZ rule for
// block-scoped kinds used ahead of their declaration), then hand
// whatever's left to the new top of the stack — or, if none remains,
// to the configured GlobalSet.
func (a *Analyzer) resolveScopeExit(s *scope) {
	a.resolveUses(s, s.valueUses, ast.UseValue)
	a.resolveUses(s, s.typeUses, ast.UseType)
}

func (a *Analyzer) resolveUses(s *scope, uses []pendingUse, nsKind ast.UseKind) {
	bindings := s.bindingsFor(nsKind)
	var unresolved []pendingUse
	for _, use := range uses {
		b, ok := bindings[use.name]
		if !ok {
			unresolved = append(unresolved, use)
			continue
		}
		a.checkResolvedUse(b, use)
	}
	if len(unresolved) == 0 {
		return
	}
	if len(a.scopes) == 0 {
		a.resolveAgainstGlobals(unresolved)
		return
	}
	parent := a.top()
	parentUses := parent.usesFor(nsKind)
	*parentUses = append(*parentUses, unresolved...)
}

// checkResolvedUse emits the use-vs-declaration diagnostics that only
// make sense once a use has matched a binding in its own originating
// scope: TDZ violations for let/const/class used ahead of their
// textual declaration, and assignment-to-const.
func (a *Analyzer) checkResolvedUse(b *binding, use pendingUse) {
	isTDZKind := b.kind == ast.Let || b.kind == ast.Const || b.kind == ast.ClassDecl
	usedBeforeDeclared := isTDZKind && !b.flags.Has(ast.FlagDeclare) && use.seq < b.seq

	if use.kind == ast.UseAssignment && b.kind == ast.Const {
		if usedBeforeDeclared {
			a.diags.Add(diag.AssignmentToConstVariableBeforeItsDeclaration,
				diag.Label{Name: "assignment", Range: use.rng},
				diag.Label{Name: "declaration", Range: b.rng})
		} else {
			a.diags.Add(diag.AssignmentToConstVariable,
				diag.Label{Name: "assignment", Range: use.rng},
				diag.Label{Name: "declaration", Range: b.rng})
		}
		return
	}

	if usedBeforeDeclared {
		a.diags.Add(diag.VariableUsedBeforeDeclaration,
			diag.Label{Name: "use", Range: use.rng},
			diag.Label{Name: "declaration", Range: b.rng})
	}
}

func (a *Analyzer) resolveAgainstGlobals(uses []pendingUse) {
	for _, use := range uses {
		switch use.kind {
		case ast.UseAssignment:
			if !a.globals.IsDeclared(use.name) {
				a.diags.Add(diag.AssignmentToUndeclaredVariable, diag.Label{Name: "assignment", Range: use.rng})
			} else if !a.globals.IsWritable(use.name) {
				a.diags.Add(diag.AssignmentToConstVariable, diag.Label{Name: "assignment", Range: use.rng})
			}
		case ast.UseDelete:
			if !a.globals.IsDeclared(use.name) {
				a.diags.Add(diag.UseOfUndeclaredVariable, diag.Label{Name: "use", Range: use.rng})
			}
		default:
			if !a.globals.IsDeclared(use.name) {
				a.diags.Add(diag.UseOfUndeclaredVariable, diag.Label{Name: "use", Range: use.rng})
			}
		}
	}
}
