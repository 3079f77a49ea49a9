package parser

import (
	"github.com/cmstoddard/quick-lint-js/internal/ast"
	"github.com/cmstoddard/quick-lint-js/internal/diag"
	"github.com/cmstoddard/quick-lint-js/internal/token"
)

// This file generalizes evanw/esbuild's internal/js_parser/ts_parser.go
// skipTypeScript* family. esbuild discards type syntax outright, since it
// only needs to strip types for output; this parser instead visits every
// named type reference as a variable_type_use event so the analyzer can
// resolve interfaces, type aliases, classes-as-types, and generic type
// parameters the same way it resolves value identifiers.

// skipTypeAnnotation parses a full type expression at the position right
// after a `:`/`extends`/`as`, emitting type-use events for every named
// reference. An `infer X` name is declared as a generic parameter in the
// current scope, and a mapped type's `[K in T]` key is declared inside
// an index-signature scope; conditional types open no scope of their own.
func (p *Parser) skipTypeAnnotation() {
	p.skipTypeScriptTypeWithPrecedence(0)
}

// skipTypeScriptTypeWithPrecedence walks one level of the type grammar:
// union/intersection, postfix array/optional, and primary types, in that
// precedence order, mirroring ts_parser.go's skipTypeScriptTypeInner /
// skipTypeScriptTypeSuffix split.
func (p *Parser) skipTypeScriptTypeWithPrecedence(minPrecedence int) {
	// Leading union/intersection operators (`| A | B`) are legal as the
	// very first token of a type.
	if p.tok() == token.Bar || p.tok() == token.Ampersand {
		p.next()
	}

	p.skipTypeScriptPrimaryType()

	for {
		switch p.tok() {
		case token.Bar, token.Ampersand:
			p.next()
			p.skipTypeScriptPrimaryType()
		case token.OpenBracket:
			// Array type `T[]` or indexed-access type `T[K]`.
			p.next()
			if p.tok() != token.CloseBracket {
				p.skipTypeAnnotation()
			}
			p.expect(token.CloseBracket, "close_bracket")
		case token.Exclamation:
			p.next()
		default:
			if p.tok() == token.Extends {
				p.next()
				p.skipTypeAnnotation()
				p.expect(token.Question, "question")
				p.skipTypeAnnotation()
				p.expect(token.Colon, "colon")
				p.skipTypeAnnotation()
				continue
			}
			return
		}
	}
}

func (p *Parser) skipTypeScriptPrimaryType() {
	switch p.tok() {
	case token.OpenParen:
		p.skipTypeScriptFunctionTypeOrParenthesized()
		return
	case token.New:
		p.next()
		p.skipTypeScriptFunctionTypeOrParenthesized()
		return
	case token.OpenBracket:
		// Tuple type.
		p.next()
		for p.tok() != token.CloseBracket && p.tok() != token.EndOfFile {
			if p.tok() == token.DotDotDot {
				p.next()
			}
			p.skipTypeAnnotation()
			if p.tok() == token.Question {
				p.next()
			}
			if p.tok() == token.Colon {
				p.next()
				p.skipTypeAnnotation()
			}
			if p.tok() == token.Comma {
				p.next()
			} else {
				break
			}
		}
		p.expect(token.CloseBracket, "close_bracket")
		return
	case token.OpenBrace:
		p.skipTypeScriptObjectType()
		return
	case token.Typeof:
		p.next()
		p.skipTypeScriptEntityName(false)
		return
	case token.StringLiteral, token.NumericLiteral, token.BigIntLiteral, token.True, token.False, token.Null, token.Void, token.This:
		p.next()
		return
	case token.Minus:
		p.next()
		p.next()
		return
	case token.DotDotDot:
		p.next()
		p.skipTypeAnnotation()
		return
	}

	if p.isContextualKeyword(token.CKKeyof) || p.isContextualKeyword(token.CKInfer) || p.isContextualKeyword(token.CKUnique) || p.isContextualKeyword(token.CKReadonly) {
		ck := p.lex.ContextualKeyword
		p.next()
		if ck == token.CKInfer && p.tok() == token.Identifier {
			p.visit.VisitVariableDeclaration(p.lex.Identifier, ast.GenericParameter, ast.FlagNone, p.rng())
			p.next()
			if p.tok() == token.Extends {
				p.next()
				p.skipTypeAnnotation()
			}
			return
		}
		p.skipTypeAnnotation()
		return
	}

	if p.tok() == token.Identifier || p.tok() == token.EscapedKeyword {
		p.skipTypeScriptEntityName(true)
		return
	}

	p.diags.Add(diag.ExpectedExpression, p.label("type"))
	if p.tok() != token.EndOfFile {
		p.next()
	}
}

// skipTypeScriptEntityName consumes a dotted name (`A.B.C`) and, when
// emitUse is set, visits the leading identifier as a type use — the
// dotted tail is a member of that type's namespace, not an independent
// reference. It then consumes an optional `<...>` type-argument list.
func (p *Parser) skipTypeScriptEntityName(emitUse bool) {
	name := p.lex.Identifier
	rng := p.rng()
	if emitUse && !token.TypeScriptBuiltinTypeKeywords[name] {
		p.visit.VisitVariableTypeUse(name, rng)
	}
	p.next()
	for p.tok() == token.Dot {
		p.next()
		p.next()
	}
	if p.tok() == token.LessThan {
		p.skipTypeScriptTypeArguments()
	}
}

func (p *Parser) skipTypeScriptFunctionTypeOrParenthesized() {
	p.expect(token.OpenParen, "open_paren")
	p.visit.VisitEnterFunctionScope(false, false)
	for p.tok() != token.CloseParen && p.tok() != token.EndOfFile {
		if p.tok() == token.DotDotDot {
			p.next()
		}
		if p.tok() == token.Identifier {
			p.next()
			if p.tok() == token.Question {
				p.next()
			}
			if p.tok() == token.Colon {
				p.next()
				p.skipTypeAnnotation()
			}
		} else {
			p.skipTypeAnnotation()
		}
		if p.tok() == token.Comma {
			p.next()
		} else {
			break
		}
	}
	p.expect(token.CloseParen, "close_paren")
	p.visit.VisitExitFunctionScope()
	if p.tok() == token.EqualsGreaterThan {
		p.next()
		p.skipTypeAnnotation()
	}
}

// skipTypeScriptObjectType parses `{ ... }` object/mapped type literals,
// visiting an index-signature scope for `[K in T]` mapped types and a
// type scope for the member list otherwise.
func (p *Parser) skipTypeScriptObjectType() {
	p.expect(token.OpenBrace, "open_brace")
	p.visit.VisitEnterTypeScope()
	for p.tok() != token.CloseBrace && p.tok() != token.EndOfFile {
		p.skipTypeScriptObjectTypeMember()
		if p.tok() == token.Comma || p.tok() == token.Semicolon {
			p.next()
		}
	}
	p.expect(token.CloseBrace, "close_brace")
	p.visit.VisitExitTypeScope()
}

func (p *Parser) skipTypeScriptObjectTypeMember() {
	for p.isContextualKeyword(token.CKReadonly) || p.tok() == token.Plus || p.tok() == token.Minus {
		p.next()
	}
	if p.tok() == token.OpenBracket {
		save := p.lex.Save()
		p.next()
		if p.tok() == token.Identifier {
			name := p.lex.Identifier
			rng := p.rng()
			p.next()
			if p.tok() == token.In {
				// Mapped type: `[K in T]`.
				p.next()
				p.visit.VisitEnterIndexSignatureScope()
				p.visit.VisitVariableDeclaration(name, ast.IndexSignatureParameter, ast.FlagNone, rng)
				p.skipTypeAnnotation()
				p.expect(token.CloseBracket, "close_bracket")
				if p.isContextualKeyword(token.CKAs) {
					p.next()
					p.skipTypeAnnotation()
				}
				if p.tok() == token.Question {
					p.next()
				}
				if p.tok() == token.Colon {
					p.next()
					p.skipTypeAnnotation()
				}
				p.visit.VisitExitIndexSignatureScope()
				return
			}
			if p.tok() == token.Colon {
				// Index signature: `[key: string]: T`.
				p.next()
				p.visit.VisitEnterIndexSignatureScope()
				p.visit.VisitVariableDeclaration(name, ast.IndexSignatureParameter, ast.FlagNone, rng)
				p.skipTypeAnnotation()
				p.expect(token.CloseBracket, "close_bracket")
				if p.tok() == token.Colon {
					p.next()
					p.skipTypeAnnotation()
				}
				p.visit.VisitExitIndexSignatureScope()
				return
			}
		}
		p.lex.Restore(save)
	}

	switch p.tok() {
	case token.OpenParen, token.LessThan:
		p.skipTypeScriptFunctionTypeOrParenthesized()
		return
	case token.New:
		p.next()
		p.skipTypeScriptFunctionTypeOrParenthesized()
		return
	}

	p.parsePropertyKey()
	if p.tok() == token.Question {
		p.next()
	}
	if p.tok() == token.OpenParen || p.tok() == token.LessThan {
		if p.tok() == token.LessThan {
			p.skipTypeScriptTypeParameters()
		}
		p.skipTypeScriptFunctionTypeOrParenthesized()
		return
	}
	if p.tok() == token.Colon {
		p.next()
		p.skipTypeAnnotation()
	}
}

// skipTypeScriptTypeParameters parses `<T, U extends V = Default, ...>`
// generic parameter lists, visiting each parameter as a declaration in
// the enclosing type scope.
func (p *Parser) skipTypeScriptTypeParameters() {
	p.expect(token.LessThan, "open_angle")
	for p.tok() != token.GreaterThan && p.tok() != token.EndOfFile {
		for p.tok() == token.In || p.isContextualKeyword(token.CKOut) || p.tok() == token.Const {
			p.next()
		}
		if p.tok() == token.Identifier || p.tok() == token.EscapedKeyword {
			p.visit.VisitVariableDeclaration(p.lex.Identifier, ast.GenericParameter, ast.FlagNone, p.rng())
			p.next()
		}
		if p.tok() == token.Extends {
			p.next()
			p.skipTypeAnnotation()
		}
		if p.tok() == token.Equals {
			p.next()
			p.skipTypeAnnotation()
		}
		if p.tok() == token.Comma {
			p.next()
		} else {
			break
		}
	}
	p.expectGreaterThan()
}

// skipTypeScriptTypeArguments parses `<T, U>` type-argument lists.
func (p *Parser) skipTypeScriptTypeArguments() {
	p.expect(token.LessThan, "open_angle")
	for p.tok() != token.GreaterThan && p.tok() != token.EndOfFile {
		p.skipTypeAnnotation()
		if p.tok() == token.Comma {
			p.next()
		} else {
			break
		}
	}
	p.expectGreaterThan()
}

// expectGreaterThan closes a `<...>` type parameter/argument list. The
// lexer never merges a `>` with a following `>`, so nested generics like
// `Array<Array<T>>` arrive as two separate single-character tokens and no
// splitting is needed here; see expressions.go's tryParseGreaterThanOperator
// for where the reverse problem (recombining `>` runs into shift
// operators) is resolved.
func (p *Parser) expectGreaterThan() {
	p.expect(token.GreaterThan, "close_angle")
}
