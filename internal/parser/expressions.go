package parser

import (
	"github.com/cmstoddard/quick-lint-js/internal/ast"
	"github.com/cmstoddard/quick-lint-js/internal/diag"
	"github.com/cmstoddard/quick-lint-js/internal/source"
	"github.com/cmstoddard/quick-lint-js/internal/token"
)

// Precedence follows spec.md §4.2's list exactly: comma, assignment,
// conditional, nullish, logical-or/and, bitwise or/xor/and, equality,
// relational (including `as`/`satisfies`/`in`/`instanceof`), shift,
// additive, multiplicative, exponentiation (right-assoc), unary, update,
// call/member/new, primary. Grounded on esbuild's js_ast.L precedence
// ladder, renamed to this package's own constants.
type precedence int

const (
	lowestPrecedence precedence = iota
	precedenceComma
	precedenceAssignment
	precedenceConditional
	precedenceNullish
	precedenceLogicalOr
	precedenceLogicalAnd
	precedenceBitwiseOr
	precedenceBitwiseXor
	precedenceBitwiseAnd
	precedenceEquality
	precedenceRelational
	precedenceShift
	precedenceAdditive
	precedenceMultiplicative
	precedenceExponentiation
	precedenceUnary
	precedencePostfix
	precedenceCall
	precedencePrimary

	// precedenceLowestForIn is used for the init-clause of classic
	// `for (;;)` loops and the LHS of `for-in`/`for-of`, where `in` must
	// not be parsed as the relational operator.
	precedenceLowestForIn = precedenceRelational
)

// parseAndVisitExpression parses an expression at minPrecedence and
// drives the appropriate use/assignment visitor events as it goes.
func (p *Parser) parseAndVisitExpression(minPrecedence precedence) {
	p.parsePrefix(minPrecedence)
	p.parseSuffix(minPrecedence)
	for minPrecedence <= precedenceComma && p.tok() == token.Comma {
		p.next()
		p.parsePrefix(precedenceAssignment)
		p.parseSuffix(precedenceAssignment)
	}
}

func (p *Parser) parsePrefix(minPrecedence precedence) {
	switch p.tok() {
	case token.NumericLiteral, token.StringLiteral, token.BigIntLiteral,
		token.True, token.False, token.Null, token.This, token.Super:
		p.next()

	case token.NoSubstitutionTemplateLiteral:
		p.next()

	case token.TemplateHead:
		p.parseAndVisitTemplate()

	case token.Slash, token.SlashEquals:
		p.lex.ReparseAsRegexp()
		p.next()

	case token.Identifier, token.EscapedKeyword:
		p.parseIdentifierExpression()

	case token.PrivateIdentifier:
		p.next()
		p.expect(token.In, "in_keyword")
		p.parseAndVisitExpression(precedenceShift)

	case token.OpenParen:
		p.parseParenthesizedOrArrow()

	case token.OpenBracket:
		p.parseArrayLiteral()

	case token.OpenBrace:
		p.parseObjectLiteral()

	case token.Function:
		p.next()
		p.parseAndVisitFunction(funcOpts{isExpression: true})

	case token.Class:
		p.next()
		p.parseAndVisitClass(classOpts{isExpression: true, nameOptional: true})

	case token.New:
		p.next()
		if p.tok() == token.Dot {
			p.next()
			p.next() // `target`
			return
		}
		p.parsePrefix(precedenceCall)
		p.parseSuffixMembersOnly()
		if p.tok() == token.OpenParen {
			p.parseCallArguments()
		}

	case token.Typeof, token.Void, token.Delete:
		isDelete := p.tok() == token.Delete
		p.next()
		if isDelete {
			p.parseDeleteOperand()
		} else {
			p.parseAndVisitExpression(precedenceUnary)
		}

	case token.Exclamation, token.Tilde, token.Plus, token.Minus:
		p.next()
		p.parseAndVisitExpression(precedenceUnary)

	case token.PlusPlus, token.MinusMinus:
		p.next()
		p.parseAndVisitExpression(precedenceUnary)

	case token.DotDotDot:
		p.next()
		p.parseAndVisitExpression(precedenceAssignment)

	case token.LessThan:
		if p.options.TypeScript && !p.options.JSX {
			p.parseTypeScriptTypeAssertion()
		} else {
			p.diags.Add(diag.ExpectedExpression, p.label("expression"))
			p.next()
		}

	default:
		if p.isContextualKeyword(token.CKAsync) {
			p.parseAsyncExpression()
			return
		}
		p.diags.Add(diag.ExpectedExpression, p.label("expression"))
		if p.tok() != token.EndOfFile {
			p.next()
		}
	}
}

func (p *Parser) parseDeleteOperand() {
	if p.tok() == token.Identifier {
		name := p.lex.Identifier
		rng := p.rng()
		save := p.lex.Save()
		p.next()
		if p.tok() == token.Dot || p.tok() == token.OpenBracket || p.tok() == token.OpenParen || p.tok() == token.QuestionDot {
			p.lex.Restore(save)
			p.parseAndVisitExpression(precedenceUnary)
			return
		}
		p.visit.VisitVariableDeleteUse(name, rng)
		p.diags.Add(diag.RedundantDeleteStatementOnVariable, p.labelAt("name", rng))
		return
	}
	p.parseAndVisitExpression(precedenceUnary)
}

func (p *Parser) parseIdentifierExpression() {
	name := p.lex.Identifier
	rng := p.rng()
	ck := p.lex.ContextualKeyword
	p.next()

	if ck == token.CKAsync && !p.lex.HasNewlineBefore {
		if p.tok() == token.Function {
			p.next()
			p.parseAndVisitFunction(funcOpts{isExpression: true, isAsync: true})
			return
		}
		if p.tok() == token.OpenParen || p.tok() == token.Identifier {
			if p.tryParseArrowFunction(true) {
				return
			}
		}
	}

	if p.tok() == token.EqualsGreaterThan {
		p.next()
		p.parseArrowBodyWithSingleParam(name, rng, false)
		return
	}

	p.visit.VisitVariableUse(name, rng)
}

// parseAsyncExpression handles `async` reached via the default branch
// (i.e. not immediately followed by an identifier token kind dispatch
// handled in parseIdentifierExpression, such as `async` alone).
func (p *Parser) parseAsyncExpression() {
	p.parseIdentifierExpression()
}

// tryParseArrowFunction implements spec.md's two-pass ambiguity
// resolution: speculatively parse a parenthesized parameter list, and if
// `=>` follows, commit; otherwise rewind and let the caller treat it as a
// plain parenthesized/call expression. Lexer checkpointing (token
// position + diagnostic watermark) makes this constant-time per spec.md
// §4.2 and §9.
func (p *Parser) tryParseArrowFunction(isAsync bool) bool {
	save := p.lex.Save()
	if p.tok() == token.Identifier {
		name := p.lex.Identifier
		rng := p.rng()
		p.next()
		if p.tok() == token.EqualsGreaterThan && !p.lex.HasNewlineBefore {
			p.next()
			p.parseArrowBodyWithSingleParam(name, rng, isAsync)
			return true
		}
		p.lex.Restore(save)
		return false
	}
	if p.tok() != token.OpenParen {
		return false
	}
	p.next()
	p.visit.VisitEnterFunctionScope(isAsync, false)
	ok := p.parseArrowParameterListTentative()
	if !ok || p.tok() != token.CloseParen {
		p.lex.Restore(save)
		return false
	}
	p.next()
	if p.tok() == token.Colon && p.options.TypeScript {
		p.next()
		p.skipTypeAnnotation()
	}
	if p.tok() != token.EqualsGreaterThan || p.lex.HasNewlineBefore {
		p.lex.Restore(save)
		return false
	}
	p.next()
	p.visit.VisitEnterFunctionScopeBody()
	p.parseArrowBody()
	p.visit.VisitExitFunctionScope()
	return true
}

func (p *Parser) parseArrowBodyWithSingleParam(name string, rng source.Range, isAsync bool) {
	p.visit.VisitEnterFunctionScope(isAsync, false)
	p.visit.VisitVariableDeclaration(name, ast.ArrowParameter, ast.FlagNone, rng)
	p.visit.VisitEnterFunctionScopeBody()
	p.parseArrowBody()
	p.visit.VisitExitFunctionScope()
}

func (p *Parser) parseArrowBody() {
	if p.tok() == token.OpenBrace {
		p.next()
		for p.tok() != token.CloseBrace && p.tok() != token.EndOfFile {
			p.parseAndVisitStatement(stmtOpts{})
		}
		p.expect(token.CloseBrace, "close_brace")
	} else {
		p.parseAndVisitExpression(precedenceAssignment)
	}
}

// parseArrowParameterListTentative consumes the inside of `(...)` as an
// arrow parameter list would look, declaring arrow-parameter bindings as
// it goes. It returns false if it encounters a token shape that cannot
// legally be an arrow parameter list, so the caller can rewind.
func (p *Parser) parseArrowParameterListTentative() bool {
	for p.tok() != token.CloseParen {
		if p.tok() == token.DotDotDot {
			p.next()
		}
		switch p.tok() {
		case token.Identifier, token.EscapedKeyword:
			rng := p.rng()
			name := p.lex.Identifier
			p.next()
			if p.tok() == token.Question && p.options.TypeScript {
				p.next()
			}
			if p.tok() == token.Colon && p.options.TypeScript {
				p.next()
				p.skipTypeAnnotation()
			}
			p.visit.VisitVariableDeclaration(name, ast.ArrowParameter, ast.FlagNone, rng)
			if p.tok() == token.Equals {
				p.next()
				p.parseAndVisitExpression(precedenceAssignment + 1)
			}
		case token.OpenBrace, token.OpenBracket:
			p.parseAndVisitBindingTarget(ast.ArrowParameter, stmtOpts{})
			if p.tok() == token.Equals {
				p.next()
				p.parseAndVisitExpression(precedenceAssignment + 1)
			}
		default:
			return false
		}
		if p.tok() == token.Comma {
			p.next()
		} else {
			break
		}
	}
	return true
}

func (p *Parser) parseParenthesizedOrArrow() {
	if p.tryParseArrowFunction(false) {
		return
	}
	p.next()
	p.parseAndVisitExpression(lowestPrecedence)
	p.expect(token.CloseParen, "close_paren")
}

func (p *Parser) parseArrayLiteral() {
	p.next()
	for p.tok() != token.CloseBracket && p.tok() != token.EndOfFile {
		if p.tok() == token.Comma {
			p.next()
			continue
		}
		p.parseAndVisitExpression(precedenceAssignment)
		if p.tok() == token.Comma {
			p.next()
		}
	}
	p.expect(token.CloseBracket, "close_bracket")
}

func (p *Parser) parseObjectLiteral() {
	p.next()
	for p.tok() != token.CloseBrace && p.tok() != token.EndOfFile {
		if p.tok() == token.DotDotDot {
			p.next()
			p.parseAndVisitExpression(precedenceAssignment)
		} else {
			p.parseObjectLiteralMember()
		}
		if p.tok() == token.Comma {
			p.next()
		}
	}
	p.expect(token.CloseBrace, "close_brace")
}

func (p *Parser) parseObjectLiteralMember() {
	if p.tok() == token.Asterisk {
		p.next()
	}
	if (p.isContextualKeyword(token.CKGet) || p.isContextualKeyword(token.CKSet)) {
		save := p.lex.Save()
		p.next()
		if p.tok() != token.Colon && p.tok() != token.Comma && p.tok() != token.CloseBrace && p.tok() != token.OpenParen {
			p.parsePropertyKey()
			p.parseAndVisitFunction(funcOpts{isMethod: true})
			return
		}
		p.lex.Restore(save)
	}
	if p.isContextualKeyword(token.CKAsync) {
		save := p.lex.Save()
		p.next()
		if !p.lex.HasNewlineBefore && p.tok() != token.Colon && p.tok() != token.Comma && p.tok() != token.CloseBrace {
			p.parsePropertyKey()
			if p.tok() == token.OpenParen {
				p.parseAndVisitFunction(funcOpts{isMethod: true, isAsync: true})
				return
			}
		}
		p.lex.Restore(save)
	}
	keyName, keyRange, isIdentifierKey := p.parsePropertyKey()
	switch p.tok() {
	case token.OpenParen:
		p.parseAndVisitFunction(funcOpts{isMethod: true})
	case token.Colon:
		p.next()
		p.parseAndVisitExpression(precedenceAssignment)
	case token.Equals:
		// Destructuring default-value shorthand reused as cover grammar.
		p.next()
		p.parseAndVisitExpression(precedenceAssignment)
	default:
		if isIdentifierKey {
			p.visit.VisitVariableUse(keyName, keyRange)
		}
	}
}

// parsePropertyKey consumes an object/class member key and returns its
// name, range, and whether it was a plain identifier (shorthand-eligible).
func (p *Parser) parsePropertyKey() (string, source.Range, bool) {
	switch p.tok() {
	case token.Identifier, token.EscapedKeyword:
		name := p.lex.Identifier
		rng := p.rng()
		p.next()
		return name, rng, true
	case token.StringLiteral, token.NumericLiteral:
		p.next()
		return "", source.Range{}, false
	case token.OpenBracket:
		p.next()
		p.parseAndVisitExpression(precedenceAssignment)
		p.expect(token.CloseBracket, "close_bracket")
		return "", source.Range{}, false
	case token.PrivateIdentifier:
		p.next()
		return "", source.Range{}, false
	default:
		p.diags.Add(diag.ExpectedIdentifier, p.label("property_key"))
		if p.tok() != token.EndOfFile {
			p.next()
		}
		return "", source.Range{}, false
	}
}

func (p *Parser) parseAndVisitTemplate() {
	p.next() // consumes the head; Next() already pointed at TemplateHead
	for {
		p.parseAndVisitExpression(lowestPrecedence)
		p.lex.ReparseTemplateContinuation()
		if p.tok() == token.TemplateTail {
			p.next()
			return
		}
		p.next()
	}
}

func (p *Parser) parseCallArguments() {
	p.expect(token.OpenParen, "open_paren")
	for p.tok() != token.CloseParen && p.tok() != token.EndOfFile {
		if p.tok() == token.DotDotDot {
			p.next()
		}
		p.parseAndVisitExpression(precedenceAssignment)
		if p.tok() == token.Comma {
			p.next()
		}
	}
	p.expect(token.CloseParen, "close_paren")
}

// parseSuffix parses postfix/infix operators at or above minPrecedence:
// member access, calls, update operators, binary/logical/relational
// operators (including TypeScript `as`/`satisfies`), the conditional
// operator, and assignment.
func (p *Parser) parseSuffix(minPrecedence precedence) {
	for {
		switch p.tok() {
		case token.Dot:
			p.next()
			p.next() // property name
		case token.QuestionDot:
			p.next()
			switch p.tok() {
			case token.OpenParen:
				p.parseCallArguments()
			case token.OpenBracket:
				p.next()
				p.parseAndVisitExpression(lowestPrecedence)
				p.expect(token.CloseBracket, "close_bracket")
			default:
				p.next()
			}
		case token.OpenBracket:
			p.next()
			p.parseAndVisitExpression(lowestPrecedence)
			p.expect(token.CloseBracket, "close_bracket")
		case token.OpenParen:
			if precedenceCall < minPrecedence {
				return
			}
			p.parseCallArguments()
		case token.NoSubstitutionTemplateLiteral:
			p.next()
		case token.TemplateHead:
			p.parseAndVisitTemplate()
		case token.PlusPlus, token.MinusMinus:
			if p.lex.HasNewlineBefore || precedencePostfix < minPrecedence {
				return
			}
			p.next()
		case token.Exclamation:
			if !p.options.TypeScript || p.lex.HasNewlineBefore {
				return
			}
			p.next() // non-null assertion
		case token.Question:
			if precedenceConditional < minPrecedence {
				return
			}
			p.next()
			p.parseAndVisitExpression(precedenceAssignment)
			p.expect(token.Colon, "colon")
			p.parseAndVisitExpression(precedenceAssignment)
		case token.Equals:
			if precedenceAssignment < minPrecedence {
				return
			}
			p.next()
			p.parseAndVisitExpression(precedenceAssignment)
		case token.GreaterThan:
			if !p.tryParseGreaterThanOperator(minPrecedence) {
				return
			}
		default:
			if p.tok().IsAssign() {
				if precedenceAssignment < minPrecedence {
					return
				}
				p.next()
				p.parseAndVisitExpression(precedenceAssignment)
				continue
			}
			if prec, ok := binaryPrecedence(p.tok()); ok {
				if prec < minPrecedence {
					return
				}
				p.next()
				nextMin := prec + 1
				if isRightAssociative(prec) {
					nextMin = prec
				}
				p.parseAndVisitExpression(nextMin)
				continue
			}
			if p.options.TypeScript && p.tok() == token.Identifier {
				if p.isContextualKeyword(token.CKAs) && precedenceRelational >= minPrecedence {
					p.next()
					if p.tok() == token.Const {
						p.next()
					} else {
						p.skipTypeAnnotation()
					}
					continue
				}
				if p.isContextualKeyword(token.CKSatisfies) && precedenceRelational >= minPrecedence {
					p.next()
					p.skipTypeAnnotation()
					continue
				}
			}
			return
		}
	}
}

// parseSuffixMembersOnly is used after `new Target` to parse only member
// access (not calls), since the immediately following `(...)` belongs to
// `new`, not to a nested call.
func (p *Parser) parseSuffixMembersOnly() {
	for {
		switch p.tok() {
		case token.Dot:
			p.next()
			p.next()
		case token.OpenBracket:
			p.next()
			p.parseAndVisitExpression(lowestPrecedence)
			p.expect(token.CloseBracket, "close_bracket")
		default:
			return
		}
	}
}

func binaryPrecedence(t token.Kind) (precedence, bool) {
	switch t {
	case token.BarBar:
		return precedenceLogicalOr, true
	case token.AmpersandAmpersand:
		return precedenceLogicalAnd, true
	case token.QuestionQuestion:
		return precedenceNullish, true
	case token.Bar:
		return precedenceBitwiseOr, true
	case token.Caret:
		return precedenceBitwiseXor, true
	case token.Ampersand:
		return precedenceBitwiseAnd, true
	case token.EqualsEquals, token.ExclamationEquals, token.EqualsEqualsEquals, token.ExclamationEqualsEquals:
		return precedenceEquality, true
	case token.LessThan, token.LessThanEquals, token.GreaterThanEquals, token.In, token.Instanceof:
		return precedenceRelational, true
	case token.LessThanLessThan:
		return precedenceShift, true
	case token.Plus, token.Minus:
		return precedenceAdditive, true
	case token.Asterisk, token.Slash, token.Percent:
		return precedenceMultiplicative, true
	case token.AsteriskAsterisk:
		return precedenceExponentiation, true
	}
	return 0, false
}

func isRightAssociative(prec precedence) bool {
	return prec == precedenceExponentiation
}

// tryParseGreaterThanOperator resolves a `>` token sitting at the current
// position into relational `>`, shift `>>`/`>>>`, or one of their
// assignment forms, by checking whether immediately-adjacent further `>`
// or `=` characters follow with no intervening whitespace. The lexer
// deliberately never merges a `>` with a following `>` (see
// ts_types.go's expectGreaterThan), so every multi-character `>`
// operator is reconstructed here instead. Returns false, leaving the
// lexer rewound to the lone `>`, when the resolved precedence is below
// minPrecedence.
func (p *Parser) tryParseGreaterThanOperator(minPrecedence precedence) bool {
	save := p.lex.Save()
	end := p.rng().End
	count := 1
	p.next()
	for count < 3 && p.tok() == token.GreaterThan && p.rng().Begin == end && !p.lex.HasNewlineBefore {
		end = p.rng().End
		count++
		p.next()
	}
	isAssign := false
	if p.tok() == token.GreaterThanEquals && p.rng().Begin == end && !p.lex.HasNewlineBefore {
		isAssign = true
		p.next()
	}

	prec := precedenceRelational
	if count >= 2 {
		prec = precedenceShift
	}
	if isAssign {
		prec = precedenceAssignment
	}
	if prec < minPrecedence {
		p.lex.Restore(save)
		return false
	}
	nextMin := prec + 1
	if isAssign {
		nextMin = precedenceAssignment
	}
	p.parseAndVisitExpression(nextMin)
	return true
}

// parseTypeScriptTypeAssertion parses the legacy `<T>expr` cast syntax,
// disabled when JSX is enabled (ambiguous with JSX elements), per
// spec.md's ambiguity-resolution note.
func (p *Parser) parseTypeScriptTypeAssertion() {
	p.next()
	p.skipTypeAnnotation()
	p.expect(token.GreaterThan, "close_angle")
	p.parseAndVisitExpression(precedenceUnary)
}
