package parser

import (
	"github.com/cmstoddard/quick-lint-js/internal/ast"
	"github.com/cmstoddard/quick-lint-js/internal/diag"
	"github.com/cmstoddard/quick-lint-js/internal/source"
	"github.com/cmstoddard/quick-lint-js/internal/token"
)

// classOpts mirrors funcOpts for class declarations/expressions.
type classOpts struct {
	isStatement  bool
	isExpression bool
	isExport     bool
	isDeclare    bool
	// nameOptional allows a class expression to omit its name, unlike a
	// class statement, which requires one.
	nameOptional bool
}

// parseAndVisitClass parses a class head (name, type parameters,
// extends/implements clauses) and body, having already consumed the
// `class` keyword. Grounded on evanw/esbuild's js_parser.parseClass,
// generalized to emit declaration/use events for every clause instead of
// building a Class AST node.
func (p *Parser) parseAndVisitClass(opts classOpts) {
	var name string
	var nameRange source.Range
	hasName := false
	if p.tok() == token.Identifier || p.tok() == token.EscapedKeyword {
		name = p.lex.Identifier
		nameRange = p.rng()
		hasName = true
		p.next()
	} else if opts.isStatement && !opts.nameOptional {
		p.diags.Add(diag.MissingNameInClassStatement, p.label("class"))
	}

	if hasName && (opts.isStatement || opts.isExport) {
		flags := ast.FlagNone
		if opts.isExport {
			flags |= ast.FlagExport
		}
		if opts.isDeclare {
			flags |= ast.FlagDeclare
		}
		p.visit.VisitVariableDeclaration(name, ast.ClassDecl, flags, nameRange)
	}

	if p.options.TypeScript && p.tok() == token.LessThan {
		p.skipTypeScriptTypeParameters()
	}

	p.visit.VisitEnterClassScope()

	extendsSeen := false
	for {
		switch {
		case p.tok() == token.Extends:
			if extendsSeen {
				p.diags.Add(diag.ClassesCannotHaveMultipleExtendsClauses, p.label("extends"))
			}
			extendsSeen = true
			p.next()
			p.parseAndVisitExpression(precedenceCall)
			if p.options.TypeScript && p.tok() == token.LessThan {
				p.skipTypeScriptTypeArguments()
			}
		case p.isContextualKeywordIdentifier("implements") && p.options.TypeScript:
			p.next()
			for {
				p.skipTypeAnnotation()
				if p.tok() != token.Comma {
					break
				}
				p.next()
			}
		default:
			goto doneHeritage
		}
	}
doneHeritage:

	p.visit.VisitEnterClassScopeBody(name, hasName)

	if !p.expect(token.OpenBrace, "open_brace") {
		p.visit.VisitExitClassScope()
		return
	}
	for p.tok() != token.CloseBrace && p.tok() != token.EndOfFile {
		if p.tok() == token.Semicolon {
			p.next()
			continue
		}
		p.parseAndVisitClassMember(opts)
	}
	if !p.expect(token.CloseBrace, "close_brace") {
		p.diags.Add(diag.UnclosedClassBlock, p.label("class"))
	}

	p.visit.VisitExitClassScope()
}

// isContextualKeywordIdentifier matches a plain-identifier keyword like
// "implements" that isn't in the ContextualKeyword table because it's
// already in StrictModeReservedWords; the lexer still lexes it as
// Identifier outside strict mode.
func (p *Parser) isContextualKeywordIdentifier(name string) bool {
	return p.tok() == token.Identifier && p.lex.Identifier == name
}

// parseAndVisitClassMember parses one class member: a field, method,
// getter/setter, static block, or index signature, handling every
// modifier combination from spec.md §4.2's class-member grammar.
func (p *Parser) parseAndVisitClassMember(opts classOpts) {
	_ = opts
	isStatic := false
	isAbstract := false
	isReadonly := false
	isAsync := false
	isGenerator := false
	accessibility := ""

	if p.isContextualKeywordIdentifier("static") {
		save := p.lex.Save()
		p.next()
		if p.tok() == token.OpenBrace {
			p.visit.VisitEnterBlockScope()
			p.next()
			for p.tok() != token.CloseBrace && p.tok() != token.EndOfFile {
				p.parseAndVisitStatement(stmtOpts{})
			}
			p.expect(token.CloseBrace, "close_brace")
			p.visit.VisitExitBlockScope()
			return
		}
		if p.tok() == token.OpenParen || p.tok() == token.Equals || p.tok() == token.Semicolon {
			p.lex.Restore(save)
		} else {
			isStatic = true
		}
	}

	for {
		switch {
		case p.options.TypeScript && p.isContextualKeywordIdentifier("abstract"):
			isAbstract = true
			p.next()
		case p.options.TypeScript && p.isContextualKeyword(token.CKReadonly):
			isReadonly = true
			p.next()
		case p.options.TypeScript && p.isContextualKeywordIdentifier("public"):
			accessibility = "public"
			p.next()
		case p.options.TypeScript && p.isContextualKeywordIdentifier("private"):
			accessibility = "private"
			p.next()
		case p.options.TypeScript && p.isContextualKeywordIdentifier("protected"):
			accessibility = "protected"
			p.next()
		case p.options.TypeScript && p.isContextualKeyword(token.CKOverride):
			p.next()
		case p.options.TypeScript && p.isContextualKeyword(token.CKAccessor):
			p.next()
		default:
			goto doneModifiers
		}
	}
doneModifiers:

	if p.isContextualKeyword(token.CKAsync) {
		save := p.lex.Save()
		p.next()
		if p.tok() == token.Colon || p.tok() == token.Equals || p.tok() == token.OpenParen ||
			p.tok() == token.Semicolon || p.lex.HasNewlineBefore {
			p.lex.Restore(save)
		} else {
			isAsync = true
		}
	}
	if p.tok() == token.Asterisk {
		isGenerator = true
		p.next()
	}

	isGetter, isSetter := false, false
	if p.isContextualKeyword(token.CKGet) || p.isContextualKeyword(token.CKSet) {
		isGet := p.isContextualKeyword(token.CKGet)
		save := p.lex.Save()
		p.next()
		if p.tok() == token.Colon || p.tok() == token.Equals || p.tok() == token.OpenParen ||
			p.tok() == token.Semicolon || p.tok() == token.CloseBrace {
			p.lex.Restore(save)
		} else if isGet {
			isGetter = true
		} else {
			isSetter = true
		}
	}

	keyName, keyRange, isIdentifierKey := p.parsePropertyKey()
	isOptional := false
	if p.tok() == token.Question && p.options.TypeScript {
		isOptional = true
		p.next()
	}
	isDefiniteAssignment := false
	if p.tok() == token.Exclamation && p.options.TypeScript {
		isDefiniteAssignment = true
		p.next()
	}

	_ = isOptional
	_ = accessibility
	_ = isDefiniteAssignment

	switch {
	case p.tok() == token.OpenParen:
		p.parseAndVisitFunction(funcOpts{isMethod: true, isAsync: isAsync, isGenerator: isGenerator})
	case p.options.TypeScript && p.tok() == token.LessThan:
		p.skipTypeScriptTypeParameters()
		p.parseAndVisitFunction(funcOpts{isMethod: true, isAsync: isAsync, isGenerator: isGenerator})
	default:
		if isIdentifierKey {
			p.visit.VisitPropertyDeclaration(keyName, true)
		} else {
			p.visit.VisitPropertyDeclaration("", false)
		}
		_ = keyRange
		if p.tok() == token.Colon && p.options.TypeScript {
			p.next()
			p.skipTypeAnnotation()
		}
		if p.tok() == token.Equals {
			p.next()
			p.parseAndVisitExpression(precedenceAssignment)
		}
		p.skipSemicolonOrASI(diag.MissingSemicolonAfterStatement, p.label("field"))
	}

	_ = isStatic
	_ = isAbstract
	_ = isReadonly
	_ = isGetter
	_ = isSetter
}
