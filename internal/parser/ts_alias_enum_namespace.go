package parser

import (
	"github.com/cmstoddard/quick-lint-js/internal/ast"
	"github.com/cmstoddard/quick-lint-js/internal/diag"
	"github.com/cmstoddard/quick-lint-js/internal/source"
	"github.com/cmstoddard/quick-lint-js/internal/token"
)

// parseAndVisitTypeAlias parses `type Name<T> = Type;`, having already
// consumed the `type` contextual keyword and confirmed the next token is
// an identifier. A type alias only ever populates the type namespace,
// per ast.DeclarationKind.TypeNamespace.
func (p *Parser) parseAndVisitTypeAlias(opts stmtOpts) {
	if !p.options.TypeScript {
		p.diags.Add(diag.TypeScriptTypeAliasNotAllowedInJavaScript, p.label("type"))
	}
	name := p.lex.Identifier
	rng := p.rng()
	p.next()

	flags := ast.FlagNone
	if opts.isExport {
		flags |= ast.FlagExport
	}
	p.visit.VisitVariableDeclaration(name, ast.TypeAlias, flags, rng)

	p.visit.VisitEnterTypeScope()
	if p.tok() == token.LessThan {
		p.skipTypeScriptTypeParameters()
	}
	p.expect(token.Equals, "equals")
	p.skipTypeAnnotation()
	p.visit.VisitExitTypeScope()

	p.skipSemicolonOrASI(diag.MissingSemicolonAfterStatement, p.label("semicolon"))
}

// parseAndVisitEnum parses `[const] enum Name { A, B = 1, ... }`, having
// already consumed the `enum` keyword. flags carries FlagDeclare/FlagExport
// inherited from the caller (`declare enum`, `export enum`).
func (p *Parser) parseAndVisitEnum(opts stmtOpts, flags ast.DeclarationFlags) {
	if !p.options.TypeScript {
		p.diags.Add(diag.TypeScriptEnumNotAllowedInJavaScript, p.label("enum"))
	}
	if opts.isExport {
		flags |= ast.FlagExport
	}

	var name string
	var rng source.Range
	if p.tok() == token.Identifier || p.tok() == token.EscapedKeyword {
		name = p.lex.Identifier
		rng = p.rng()
		p.next()
	} else {
		p.diags.Add(diag.ExpectedIdentifier, p.label("enum_name"))
	}
	p.visit.VisitVariableDeclaration(name, ast.Enum, flags, rng)

	if !p.expect(token.OpenBrace, "open_brace") {
		return
	}
	for p.tok() != token.CloseBrace && p.tok() != token.EndOfFile {
		keyName, _, isIdentifierKey := p.parsePropertyKey()
		if isIdentifierKey {
			p.visit.VisitPropertyDeclaration(keyName, true)
		} else {
			p.visit.VisitPropertyDeclaration("", false)
		}
		if p.tok() == token.Equals {
			p.next()
			p.parseAndVisitExpression(precedenceAssignment)
		}
		if p.tok() == token.Comma {
			p.next()
		} else {
			break
		}
	}
	p.expect(token.CloseBrace, "close_brace")
}

// parseAndVisitNamespace parses `namespace Name { ... }` or
// `module "specifier" { ... }`/`module Name { ... }`, having already
// consumed the `namespace`/`module` keyword and confirmed a name follows.
// flags carries FlagDeclare when reached via `declare namespace`.
func (p *Parser) parseAndVisitNamespace(opts stmtOpts, flags ast.DeclarationFlags, isModuleKeyword bool) {
	if opts.isExport {
		flags |= ast.FlagExport
	}

	if p.tok() == token.StringLiteral {
		// Ambient module declaration: `declare module "some-module" { ... }`.
		p.next()
	} else {
		name := p.lex.Identifier
		rng := p.rng()
		p.next()
		for p.tok() == token.Dot {
			p.next()
			name = p.lex.Identifier
			rng = p.rng()
			p.next()
		}
		p.visit.VisitVariableDeclaration(name, ast.Namespace, flags, rng)
	}

	p.visit.VisitEnterNamespaceScope()
	if p.expect(token.OpenBrace, "open_brace") {
		for p.tok() != token.CloseBrace && p.tok() != token.EndOfFile {
			p.parseAndVisitStatement(stmtOpts{isModuleScope: true})
		}
		p.expect(token.CloseBrace, "close_brace")
	}
	p.visit.VisitExitNamespaceScope()

	_ = isModuleKeyword
}

// parseAndVisitDeclareStatement dispatches the statement that follows a
// `declare` contextual keyword, propagating ast.FlagDeclare into the
// variable, enum, function, class and namespace declarations it produces;
// interface and type-alias declarations are visited without the flag.
// Returns false (without consuming anything beyond
// what the caller already rewinds) if what follows isn't a recognized
// ambient declaration, so the caller can fall back to treating `declare`
// as a plain identifier expression.
func (p *Parser) parseAndVisitDeclareStatement(opts stmtOpts) bool {
	switch p.tok() {
	case token.Var:
		p.next()
		p.parseAndVisitAmbientVariableDeclaration(ast.Var, opts)
		return true
	case token.Const:
		save := p.lex.Save()
		p.next()
		if p.tok() == token.Enum && p.options.TypeScript {
			p.next()
			p.parseAndVisitEnum(opts, ast.FlagDeclare)
			return true
		}
		p.lex.Restore(save)
		p.next()
		p.parseAndVisitAmbientVariableDeclaration(ast.Const, opts)
		return true
	case token.Function:
		p.next()
		p.parseAndVisitFunction(funcOpts{isStatement: true, isExport: opts.isExport, isDeclare: true})
		return true
	case token.Class:
		p.next()
		p.parseAndVisitClass(classOpts{isStatement: true, isExport: opts.isExport, isDeclare: true})
		return true
	case token.Enum:
		if p.options.TypeScript {
			p.next()
			p.parseAndVisitEnum(opts, ast.FlagDeclare)
			return true
		}
	}

	if p.tok() != token.Identifier {
		return false
	}
	if p.lex.Identifier == "let" {
		p.next()
		p.parseAndVisitAmbientVariableDeclaration(ast.Let, opts)
		return true
	}

	switch p.lex.ContextualKeyword {
	case token.CKInterface:
		keywordRange := p.rng()
		p.next()
		p.parseAndVisitInterface(opts, keywordRange)
		return true
	case token.CKType:
		save := p.lex.Save()
		p.next()
		if p.tok() == token.Identifier {
			p.parseAndVisitTypeAlias(opts)
			return true
		}
		p.lex.Restore(save)
		return false
	case token.CKNamespace, token.CKModule:
		kw := p.lex.Identifier
		save := p.lex.Save()
		p.next()
		if p.tok() == token.Identifier || p.tok() == token.StringLiteral {
			p.parseAndVisitNamespace(opts, ast.FlagDeclare, kw == "module")
			return true
		}
		p.lex.Restore(save)
		return false
	case token.CKGlobal:
		p.next()
		p.visit.VisitEnterNamespaceScope()
		if p.expect(token.OpenBrace, "open_brace") {
			for p.tok() != token.CloseBrace && p.tok() != token.EndOfFile {
				p.parseAndVisitStatement(stmtOpts{isModuleScope: true})
			}
			p.expect(token.CloseBrace, "close_brace")
		}
		p.visit.VisitExitNamespaceScope()
		return true
	}

	// Ambient value declaration without var/let/const, e.g. the line
	// `declare function` overloads use between signatures, or a bare
	// `declare someGlobal: SomeType;`.
	name := p.lex.Identifier
	rng := p.rng()
	p.next()
	flags := ast.FlagDeclare
	if opts.isExport {
		flags |= ast.FlagExport
	}
	p.visit.VisitVariableDeclaration(name, ast.Var, flags, rng)
	if p.tok() == token.Colon {
		p.next()
		p.skipTypeAnnotation()
	}
	p.skipSemicolonOrASI(diag.MissingSemicolonAfterStatement, p.label("semicolon"))
	return true
}

// parseAndVisitAmbientVariableDeclaration parses the declarator list of a
// `declare var/let/const` statement: ambient declarations name bindings
// and their types but never carry initializers.
func (p *Parser) parseAndVisitAmbientVariableDeclaration(kind ast.DeclarationKind, opts stmtOpts) {
	for {
		name := p.lex.Identifier
		rng := p.rng()
		if p.tok() == token.Identifier || p.tok() == token.EscapedKeyword {
			p.next()
		} else {
			p.diags.Add(diag.ExpectedIdentifier, p.label("name"))
		}
		flags := ast.FlagDeclare
		if opts.isExport {
			flags |= ast.FlagExport
		}
		p.visit.VisitVariableDeclaration(name, kind, flags, rng)
		if p.tok() == token.Colon {
			p.next()
			p.skipTypeAnnotation()
		}
		if p.tok() != token.Comma {
			break
		}
		p.next()
	}
	p.skipSemicolonOrASI(diag.MissingSemicolonAfterStatement, p.label("semicolon"))
}
