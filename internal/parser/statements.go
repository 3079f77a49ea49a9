package parser

import (
	"github.com/cmstoddard/quick-lint-js/internal/ast"
	"github.com/cmstoddard/quick-lint-js/internal/diag"
	"github.com/cmstoddard/quick-lint-js/internal/token"
)

func (p *Parser) parseAndVisitStatement(opts stmtOpts) {
	switch p.tok() {
	case token.OpenBrace:
		p.parseAndVisitBlock()
		return

	case token.Var:
		p.next()
		p.parseAndVisitVariableDeclaration(ast.Var, opts)
		return
	case token.Const:
		if p.options.TypeScript {
			save := p.lex.Save()
			p.next()
			if p.tok() == token.Enum {
				p.next()
				p.parseAndVisitEnum(opts, ast.FlagNone)
				return
			}
			p.lex.Restore(save)
		}
		p.next()
		p.parseAndVisitVariableDeclaration(ast.Const, opts)
		return

	case token.Function:
		p.next()
		p.parseAndVisitFunction(funcOpts{isStatement: true, isExport: opts.isExport})
		return

	case token.Class:
		p.next()
		p.parseAndVisitClass(classOpts{isStatement: true, isExport: opts.isExport})
		return

	case token.Enum:
		if p.options.TypeScript {
			p.next()
			p.parseAndVisitEnum(opts, ast.FlagNone)
			return
		}

	case token.If:
		p.parseAndVisitIf()
		return
	case token.While:
		p.parseAndVisitWhile()
		return
	case token.Do:
		p.parseAndVisitDoWhile()
		return
	case token.For:
		p.parseAndVisitFor()
		return
	case token.Return:
		p.next()
		if p.tok() != token.Semicolon && p.tok() != token.CloseBrace && p.tok() != token.EndOfFile && !p.lex.HasNewlineBefore {
			p.parseAndVisitExpression(lowestPrecedence)
		}
		p.skipSemicolonOrASI(diag.MissingSemicolonAfterStatement, p.label("semicolon"))
		return
	case token.Throw:
		p.next()
		p.parseAndVisitExpression(lowestPrecedence)
		p.skipSemicolonOrASI(diag.MissingSemicolonAfterStatement, p.label("semicolon"))
		return
	case token.Break, token.Continue:
		p.next()
		if p.tok() == token.Identifier && !p.lex.HasNewlineBefore {
			p.next()
		}
		p.skipSemicolonOrASI(diag.MissingSemicolonAfterStatement, p.label("semicolon"))
		return
	case token.Try:
		p.parseAndVisitTry()
		return
	case token.Switch:
		p.parseAndVisitSwitch()
		return
	case token.Debugger:
		p.next()
		p.skipSemicolonOrASI(diag.MissingSemicolonAfterStatement, p.label("semicolon"))
		return
	case token.Semicolon:
		p.next()
		return
	case token.Import:
		p.parseAndVisitImport()
		return
	case token.Export:
		p.next()
		p.parseAndVisitExportedStatement(opts)
		return
	}

	// Contextual keywords governing TypeScript/`let`/`async` statements.
	if p.tok() == token.Identifier {
		switch p.lex.Identifier {
		case "let":
			save := p.lex.Save()
			p.next()
			if p.startsBindingPattern() {
				p.parseAndVisitVariableDeclaration(ast.Let, opts)
				return
			}
			p.lex.Restore(save)
		case "async":
			save := p.lex.Save()
			p.next()
			if !p.lex.HasNewlineBefore && p.tok() == token.Function {
				p.next()
				p.parseAndVisitFunction(funcOpts{isStatement: true, isAsync: true, isExport: opts.isExport})
				return
			}
			p.lex.Restore(save)
		}

		// `interface` is recognized even outside TypeScript mode:
		// parseAndVisitInterface itself reports
		// TypeScript_Interfaces_Not_Allowed_In_JavaScript in that case,
		// rather than leaving `interface I {}` to misparse as an
		// identifier expression followed by a stray block statement.
		if p.lex.ContextualKeyword == token.CKInterface {
			save := p.lex.Save()
			keywordRange := p.rng()
			p.next()
			if !p.lex.HasNewlineBefore {
				p.parseAndVisitInterface(opts, keywordRange)
				return
			}
			// Newline after `interface`: still an interface statement,
			// but flagged, per spec.md's interface table.
			p.parseAndVisitInterfaceNewlineCase(save, opts)
			return
		}

		if p.options.TypeScript {
			switch p.lex.ContextualKeyword {
			case token.CKType:
				save := p.lex.Save()
				p.next()
				if p.tok() == token.Identifier {
					p.parseAndVisitTypeAlias(opts)
					return
				}
				p.lex.Restore(save)
			case token.CKDeclare:
				save := p.lex.Save()
				p.next()
				if p.parseAndVisitDeclareStatement(opts) {
					return
				}
				p.lex.Restore(save)
			case token.CKNamespace, token.CKModule:
				save := p.lex.Save()
				kw := p.lex.Identifier
				p.next()
				if p.tok() == token.Identifier || p.tok() == token.StringLiteral {
					p.parseAndVisitNamespace(opts, ast.FlagNone, kw == "module")
					return
				}
				p.lex.Restore(save)
			}
		}
	}

	// Labeled statement: `identifier ':'`.
	if p.tok() == token.Identifier {
		save := p.lex.Save()
		name := p.lex.Identifier
		_ = name
		p.next()
		if p.tok() == token.Colon {
			p.next()
			p.parseAndVisitStatement(stmtOpts{})
			return
		}
		p.lex.Restore(save)
	}

	// Expression statement (the fallback production).
	p.parseAndVisitExpression(lowestPrecedence)
	p.skipSemicolonOrASI(diag.MissingSemicolonAfterStatement, p.label("semicolon"))
}

// startsBindingPattern decides, without consuming further, whether the
// current token can start a `let` binding (identifier or destructuring
// pattern) as opposed to `let` being used as a plain identifier
// expression.
func (p *Parser) startsBindingPattern() bool {
	switch p.tok() {
	case token.Identifier, token.OpenBrace, token.OpenBracket:
		return true
	}
	return false
}

func (p *Parser) parseAndVisitBlock() {
	p.expect(token.OpenBrace, "open_brace")
	p.visit.VisitEnterBlockScope()
	for p.tok() != token.CloseBrace && p.tok() != token.EndOfFile {
		p.parseAndVisitStatement(stmtOpts{})
	}
	p.expect(token.CloseBrace, "close_brace")
	p.visit.VisitExitBlockScope()
}

func (p *Parser) parseAndVisitVariableDeclaration(kind ast.DeclarationKind, opts stmtOpts) {
	for {
		p.parseAndVisitBindingWithOptionalInitializer(kind, opts)
		if p.tok() != token.Comma {
			break
		}
		p.next()
	}
	p.skipSemicolonOrASI(diag.MissingSemicolonAfterStatement, p.label("semicolon"))
}

func (p *Parser) parseAndVisitBindingWithOptionalInitializer(kind ast.DeclarationKind, opts stmtOpts) {
	p.parseAndVisitBindingTarget(kind, opts)
	if p.tok() == token.Equals {
		p.next()
		p.parseAndVisitExpression(precedenceAssignment + 1)
	}
}

// parseAndVisitBindingTarget parses an identifier, array pattern, or
// object pattern binding, emitting one variable_declaration per bound
// name (destructured names included), per spec.md's declaration event.
func (p *Parser) parseAndVisitBindingTarget(kind ast.DeclarationKind, opts stmtOpts) {
	switch p.tok() {
	case token.Identifier, token.EscapedKeyword:
		name := p.lex.Identifier
		rng := p.rng()
		p.next()
		flags := ast.FlagNone
		if opts.isExport {
			flags |= ast.FlagExport
		}
		p.visit.VisitVariableDeclaration(name, kind, flags, rng)
		if p.options.TypeScript && p.tok() == token.Exclamation {
			p.next()
		}
		if p.tok() == token.Colon {
			p.next()
			p.skipTypeAnnotation()
		}
	case token.OpenBracket:
		p.next()
		for p.tok() != token.CloseBracket && p.tok() != token.EndOfFile {
			if p.tok() == token.Comma {
				p.next()
				continue
			}
			if p.tok() == token.DotDotDot {
				p.next()
			}
			p.parseAndVisitBindingTarget(kind, opts)
			if p.tok() == token.Equals {
				p.next()
				p.parseAndVisitExpression(precedenceAssignment + 1)
			}
			if p.tok() == token.Comma {
				p.next()
			}
		}
		p.expect(token.CloseBracket, "close_bracket")
	case token.OpenBrace:
		p.next()
		for p.tok() != token.CloseBrace && p.tok() != token.EndOfFile {
			if p.tok() == token.DotDotDot {
				p.next()
				p.parseAndVisitBindingTarget(kind, opts)
			} else {
				p.parseAndVisitObjectBindingProperty(kind, opts)
			}
			if p.tok() == token.Comma {
				p.next()
			}
		}
		p.expect(token.CloseBrace, "close_brace")
	default:
		p.diags.Add(diag.ExpectedIdentifier, p.label("target"))
	}
}

func (p *Parser) parseAndVisitObjectBindingProperty(kind ast.DeclarationKind, opts stmtOpts) {
	if p.tok() == token.OpenBracket {
		p.next()
		p.parseAndVisitExpression(lowestPrecedence)
		p.expect(token.CloseBracket, "close_bracket")
		p.expect(token.Colon, "colon")
		p.parseAndVisitBindingTarget(kind, opts)
		return
	}
	p.next() // property key (identifier or literal)
	if p.tok() == token.Colon {
		p.next()
		p.parseAndVisitBindingTarget(kind, opts)
	}
	if p.tok() == token.Equals {
		p.next()
		p.parseAndVisitExpression(precedenceAssignment + 1)
	}
}

func (p *Parser) parseAndVisitIf() {
	p.next()
	if !p.expect(token.OpenParen, "open_paren") {
		return
	}
	p.parseAndVisitExpression(lowestPrecedence)
	p.expect(token.CloseParen, "close_paren")
	p.parseAndVisitStatement(stmtOpts{})
	if p.tok() == token.Else {
		p.next()
		p.parseAndVisitStatement(stmtOpts{})
	}
}

func (p *Parser) parseAndVisitWhile() {
	p.next()
	p.expect(token.OpenParen, "open_paren")
	p.parseAndVisitExpression(lowestPrecedence)
	p.expect(token.CloseParen, "close_paren")
	p.parseAndVisitStatement(stmtOpts{})
}

func (p *Parser) parseAndVisitDoWhile() {
	p.next()
	p.parseAndVisitStatement(stmtOpts{})
	p.expect(token.While, "while_keyword")
	p.expect(token.OpenParen, "open_paren")
	p.parseAndVisitExpression(lowestPrecedence)
	p.expect(token.CloseParen, "close_paren")
	p.skipSemicolonOrASI(diag.MissingSemicolonAfterStatement, p.label("semicolon"))
}

func (p *Parser) parseAndVisitFor() {
	p.next()
	p.expect(token.OpenParen, "open_paren")
	p.visit.VisitEnterBlockScope()

	switch p.tok() {
	case token.Var:
		p.next()
		p.parseAndVisitForHeadBinding(ast.Var)
	case token.Const:
		p.next()
		p.parseAndVisitForHeadBinding(ast.Const)
	case token.Semicolon:
		// no init
	default:
		if p.tok() == token.Identifier && p.lex.Identifier == "let" {
			save := p.lex.Save()
			p.next()
			if p.startsBindingPattern() {
				p.parseAndVisitForHeadBinding(ast.Let)
			} else {
				p.lex.Restore(save)
				p.parseAndVisitExpression(precedenceLowestForIn)
			}
		} else {
			p.parseAndVisitExpression(precedenceLowestForIn)
		}
	}

	if p.tok() == token.Semicolon {
		p.next()
		if p.tok() != token.Semicolon {
			p.parseAndVisitExpression(lowestPrecedence)
		}
		p.expect(token.Semicolon, "semicolon")
		if p.tok() != token.CloseParen {
			p.parseAndVisitExpression(lowestPrecedence)
		}
	} else if p.tok() == token.Identifier && (p.lex.ContextualKeyword == token.CKOf) {
		p.next()
		p.parseAndVisitExpression(precedenceAssignment)
	} else if p.tok() == token.In {
		p.next()
		p.parseAndVisitExpression(lowestPrecedence)
	}
	p.expect(token.CloseParen, "close_paren")
	p.parseAndVisitStatement(stmtOpts{})
	p.visit.VisitExitBlockScope()
}

func (p *Parser) parseAndVisitForHeadBinding(kind ast.DeclarationKind) {
	p.parseAndVisitBindingTarget(kind, stmtOpts{})
	if p.tok() == token.Equals {
		p.next()
		p.parseAndVisitExpression(precedenceAssignment + 1)
	}
	for p.tok() == token.Comma {
		p.next()
		p.parseAndVisitBindingTarget(kind, stmtOpts{})
		if p.tok() == token.Equals {
			p.next()
			p.parseAndVisitExpression(precedenceAssignment + 1)
		}
	}
}

func (p *Parser) parseAndVisitTry() {
	p.next()
	p.parseAndVisitBlock()
	if p.tok() == token.Catch {
		p.next()
		p.visit.VisitEnterBlockScope()
		if p.tok() == token.OpenParen {
			p.next()
			p.parseAndVisitBindingTarget(ast.CatchVariable, stmtOpts{})
			p.expect(token.CloseParen, "close_paren")
		}
		p.expect(token.OpenBrace, "open_brace")
		for p.tok() != token.CloseBrace && p.tok() != token.EndOfFile {
			p.parseAndVisitStatement(stmtOpts{})
		}
		p.expect(token.CloseBrace, "close_brace")
		p.visit.VisitExitBlockScope()
	}
	if p.tok() == token.Finally {
		p.next()
		p.parseAndVisitBlock()
	}
}

func (p *Parser) parseAndVisitSwitch() {
	p.next()
	p.expect(token.OpenParen, "open_paren")
	p.parseAndVisitExpression(lowestPrecedence)
	p.expect(token.CloseParen, "close_paren")
	p.expect(token.OpenBrace, "open_brace")
	p.visit.VisitEnterBlockScope()
	for p.tok() != token.CloseBrace && p.tok() != token.EndOfFile {
		switch p.tok() {
		case token.Case:
			p.next()
			p.parseAndVisitExpression(lowestPrecedence)
			p.expect(token.Colon, "colon")
		case token.Default:
			p.next()
			p.expect(token.Colon, "colon")
		default:
			p.parseAndVisitStatement(stmtOpts{})
		}
	}
	p.expect(token.CloseBrace, "close_brace")
	p.visit.VisitExitBlockScope()
}

func (p *Parser) parseAndVisitImport() {
	p.next()
	if p.tok() == token.StringLiteral {
		p.next()
		p.skipSemicolonOrASI(diag.MissingSemicolonAfterStatement, p.label("semicolon"))
		return
	}
	if p.tok() == token.Identifier {
		name := p.lex.Identifier
		rng := p.rng()
		p.next()
		p.visit.VisitVariableDeclaration(name, ast.Import, ast.FlagNone, rng)
		if p.tok() == token.Comma {
			p.next()
		}
	}
	if p.tok() == token.Asterisk {
		p.next()
		if p.tok() == token.Identifier && p.lex.ContextualKeyword == token.CKAs {
			p.next()
		}
		if p.tok() == token.Identifier {
			name := p.lex.Identifier
			rng := p.rng()
			p.next()
			p.visit.VisitVariableDeclaration(name, ast.Import, ast.FlagNone, rng)
		}
	} else if p.tok() == token.OpenBrace {
		p.next()
		for p.tok() != token.CloseBrace && p.tok() != token.EndOfFile {
			if p.tok() == token.Identifier && p.lex.Identifier == "type" {
				save := p.lex.Save()
				p.next()
				if p.tok() == token.CloseBrace || p.tok() == token.Comma {
					p.lex.Restore(save)
				}
			}
			if p.tok() == token.Identifier {
				name := p.lex.Identifier
				rng := p.rng()
				p.next()
				if p.tok() == token.Identifier && p.lex.ContextualKeyword == token.CKAs {
					p.next()
					name = p.lex.Identifier
					rng = p.rng()
					p.next()
				}
				p.visit.VisitVariableDeclaration(name, ast.Import, ast.FlagNone, rng)
			}
			if p.tok() == token.Comma {
				p.next()
			}
		}
		p.expect(token.CloseBrace, "close_brace")
	}
	if p.tok() == token.Identifier && p.lex.ContextualKeyword == token.CKFrom {
		p.next()
		p.expect(token.StringLiteral, "module_specifier")
	}
	p.skipSemicolonOrASI(diag.MissingSemicolonAfterStatement, p.label("semicolon"))
}

func (p *Parser) parseAndVisitExportedStatement(opts stmtOpts) {
	if p.tok() == token.Default {
		p.next()
		switch p.tok() {
		case token.Function:
			p.next()
			p.parseAndVisitFunction(funcOpts{isStatement: true, isExport: true, nameOptional: true})
		case token.Class:
			p.next()
			p.parseAndVisitClass(classOpts{isStatement: true, isExport: true, nameOptional: true})
		default:
			p.parseAndVisitExpression(precedenceAssignment)
			p.skipSemicolonOrASI(diag.MissingSemicolonAfterStatement, p.label("semicolon"))
		}
		return
	}
	if p.tok() == token.OpenBrace {
		p.next()
		for p.tok() != token.CloseBrace && p.tok() != token.EndOfFile {
			if p.tok() == token.Identifier {
				p.visit.VisitVariableUse(p.lex.Identifier, p.rng())
				p.next()
				if p.tok() == token.Identifier && p.lex.ContextualKeyword == token.CKAs {
					p.next()
					p.next()
				}
			}
			if p.tok() == token.Comma {
				p.next()
			}
		}
		p.expect(token.CloseBrace, "close_brace")
		if p.tok() == token.Identifier && p.lex.ContextualKeyword == token.CKFrom {
			p.next()
			p.expect(token.StringLiteral, "module_specifier")
		}
		p.skipSemicolonOrASI(diag.MissingSemicolonAfterStatement, p.label("semicolon"))
		return
	}
	if p.tok() == token.Asterisk {
		p.next()
		if p.tok() == token.Identifier && p.lex.ContextualKeyword == token.CKAs {
			p.next()
			p.next()
		}
		if p.tok() == token.Identifier && p.lex.ContextualKeyword == token.CKFrom {
			p.next()
			p.expect(token.StringLiteral, "module_specifier")
		}
		p.skipSemicolonOrASI(diag.MissingSemicolonAfterStatement, p.label("semicolon"))
		return
	}
	p.parseAndVisitStatement(stmtOpts{isModuleScope: opts.isModuleScope, isExport: true})
}
