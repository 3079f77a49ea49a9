package parser

import (
	"github.com/cmstoddard/quick-lint-js/internal/ast"
	"github.com/cmstoddard/quick-lint-js/internal/diag"
	"github.com/cmstoddard/quick-lint-js/internal/source"
	"github.com/cmstoddard/quick-lint-js/internal/token"
)

// funcOpts carries the context a function head/body is parsed under,
// mirroring esbuild's js_parser.fnOpts fields relevant to visitor events.
type funcOpts struct {
	isStatement  bool
	isExpression bool
	isMethod     bool
	isExport     bool
	isAsync      bool
	isGenerator  bool
	isDeclare    bool
	// nameOptional allows `export default function` to omit its name,
	// unlike an ordinary function statement, which requires one.
	nameOptional bool
}

// parseAndVisitFunction parses a function head (name, generator star,
// type parameters, parameter list, return type) and body, having already
// consumed the `function` keyword (or, for methods, the leading key).
// Grounded on evanw/esbuild's js_parser.parseFnStmt / parseFnExpr /
// parseParenExprOrArrowFnBody wherever they overlap.
func (p *Parser) parseAndVisitFunction(opts funcOpts) {
	isGenerator := opts.isGenerator
	if p.tok() == token.Asterisk {
		p.next()
		isGenerator = true
	}

	var name string
	var nameRange source.Range
	hasName := false
	if p.tok() == token.Identifier || p.tok() == token.EscapedKeyword {
		name = p.lex.Identifier
		nameRange = p.rng()
		hasName = true
		p.next()
	}

	if !hasName && opts.isStatement && !opts.nameOptional {
		p.diags.Add(diag.ExpectedIdentifier, p.label("function_name"))
	}

	if hasName && (opts.isStatement || opts.isExpression) {
		kind := ast.FunctionDecl
		flags := ast.FlagNone
		if opts.isExport {
			flags |= ast.FlagExport
		}
		if opts.isDeclare {
			flags |= ast.FlagDeclare
		}
		if opts.isStatement {
			p.visit.VisitVariableDeclaration(name, kind, flags, nameRange)
		}
	}

	savedAsync, savedGenerator := p.inAsync, p.inGenerator
	p.inAsync, p.inGenerator = opts.isAsync, isGenerator

	if p.options.TypeScript && p.tok() == token.LessThan {
		p.skipTypeScriptTypeParameters()
	}

	p.visit.VisitEnterFunctionScope(opts.isAsync, isGenerator)
	if hasName && opts.isExpression {
		// Function expressions' own name is visible only inside the body,
		// per the spec's function-expression-self-reference note.
		p.visit.VisitVariableDeclaration(name, ast.FunctionDecl, ast.FlagNone, nameRange)
	}
	p.parseAndVisitFunctionParameters()

	if p.tok() == token.Colon && p.options.TypeScript {
		p.next()
		p.skipTypeAnnotation()
	}

	if opts.isDeclare || p.options.TypeScriptDefinition {
		p.skipSemicolonOrASI(diag.MissingSemicolonAfterStatement, p.label("function"))
	} else {
		p.visit.VisitEnterFunctionScopeBody()
		p.parseAndVisitFunctionBody()
		p.visit.VisitExitFunctionScope()
	}

	p.inAsync, p.inGenerator = savedAsync, savedGenerator

	if hasName && opts.isExpression {
		// Nothing further: the declaration above already covered the
		// self-reference binding; no outer-scope declaration is visited
		// for function expressions.
	}
}

func (p *Parser) parseAndVisitFunctionParameters() {
	p.expect(token.OpenParen, "open_paren")
	for p.tok() != token.CloseParen && p.tok() != token.EndOfFile {
		p.parseAndVisitFunctionParameter()
		if p.tok() == token.Comma {
			p.next()
		} else {
			break
		}
	}
	p.expect(token.CloseParen, "close_paren")
}

func (p *Parser) parseAndVisitFunctionParameter() {
	// TypeScript accessibility/readonly modifiers on constructor
	// parameters (parameter properties) are accepted and their
	// declaration is still a plain Parameter use, per spec.md §4.3's
	// note that constructor-parameter properties are out of scope for
	// the analyzer's property tracking.
	for p.options.TypeScript && p.tok() == token.Identifier &&
		(p.isContextualKeyword(token.CKReadonly) || isAccessibilityModifierName(p.lex.Identifier)) {
		p.next()
	}
	if p.tok() == token.DotDotDot {
		p.next()
	}
	p.parseAndVisitBindingTarget(ast.Parameter, stmtOpts{})
	if p.tok() == token.Question && p.options.TypeScript {
		p.next()
	}
	if p.tok() == token.Colon && p.options.TypeScript {
		p.next()
		p.skipTypeAnnotation()
	}
	if p.tok() == token.Equals {
		p.next()
		p.parseAndVisitExpression(precedenceAssignment + 1)
	}
}

// isAccessibilityModifierName reports whether name is one of TypeScript's
// constructor-parameter-property modifiers. "public"/"private"/"protected"
// lex as plain identifiers (they're only reserved in strict mode), so they
// carry no contextual-keyword hint and must be matched by spelling.
func isAccessibilityModifierName(name string) bool {
	switch name {
	case "public", "private", "protected":
		return true
	}
	return false
}

func (p *Parser) parseAndVisitFunctionBody() {
	p.expect(token.OpenBrace, "open_brace")
	for p.tok() != token.CloseBrace && p.tok() != token.EndOfFile {
		p.parseAndVisitStatement(stmtOpts{})
	}
	p.expect(token.CloseBrace, "close_brace")
}
