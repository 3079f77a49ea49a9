package parser

import (
	"github.com/cmstoddard/quick-lint-js/internal/ast"
	"github.com/cmstoddard/quick-lint-js/internal/diag"
	"github.com/cmstoddard/quick-lint-js/internal/lexer"
	"github.com/cmstoddard/quick-lint-js/internal/source"
	"github.com/cmstoddard/quick-lint-js/internal/token"
)

// parseAndVisitInterface parses `interface Name<T> extends A, B { ... }`,
// having already consumed the `interface` keyword (with no newline
// immediately following it — see parseAndVisitInterfaceNewlineCase for
// the case that does have one). keywordRange is the `interface` token's
// own range, kept around so a rejected (non-TypeScript) interface can be
// labeled across its full span once the closing brace is known. Grounded
// on the member-by-member diagnostic table in the original project's
// test-parse-typescript-interface.cpp, generalized here into one
// event-emitting parse routine rather than a type-stripping skip.
func (p *Parser) parseAndVisitInterface(opts stmtOpts, keywordRange source.Range) {
	var name string
	var rng source.Range
	if p.tok() == token.Identifier || p.tok() == token.EscapedKeyword {
		name = p.lex.Identifier
		rng = p.rng()
		p.next()
	} else {
		p.diags.Add(diag.ExpectedIdentifier, p.label("interface_name"))
	}

	flags := ast.FlagNone
	if opts.isExport {
		flags |= ast.FlagExport
	}
	p.visit.VisitVariableDeclaration(name, ast.Interface, flags, rng)

	if p.tok() == token.LessThan {
		p.skipTypeScriptTypeParameters()
	}

	if p.tok() == token.Extends {
		p.next()
		for {
			p.skipTypeAnnotation()
			if p.tok() != token.Comma {
				break
			}
			p.next()
		}
	}

	p.visit.VisitEnterInterfaceScope()
	if p.tok() != token.OpenBrace {
		p.diags.Add(diag.MissingBodyForTypeScriptInterface, p.label("interface"))
		if !p.options.TypeScript {
			p.diags.Add(diag.TypeScriptInterfacesNotAllowedInJavaScript, diag.Label{Name: "interface", Range: keywordRange})
		}
		p.visit.VisitExitInterfaceScope()
		return
	}
	openBraceRange := p.rng()
	p.next()
	for p.tok() != token.CloseBrace && p.tok() != token.EndOfFile {
		if p.tok() == token.Semicolon {
			p.next()
			continue
		}
		p.parseAndVisitInterfaceMember()
	}
	endRange := openBraceRange
	if p.tok() == token.CloseBrace {
		endRange = p.rng()
		p.next()
	} else {
		p.diags.Add(diag.UnclosedInterfaceBlock, diag.Label{Name: "open_brace", Range: openBraceRange})
	}
	if !p.options.TypeScript {
		p.diags.Add(diag.TypeScriptInterfacesNotAllowedInJavaScript, diag.Label{Name: "interface", Range: keywordRange.Union(endRange)})
	}
	p.visit.VisitExitInterfaceScope()
}

// parseAndVisitInterfaceNewlineCase handles `interface\nName { ... }`:
// still a valid interface statement (ASI does not apply between a
// contextual keyword and its required name), but flagged, per the
// Newline_Not_Allowed_After_Interface_Keyword warning. save is the
// checkpoint taken immediately before the `interface` keyword was
// consumed, so its range can be used as the diagnostic's label.
func (p *Parser) parseAndVisitInterfaceNewlineCase(save lexer.Checkpoint, opts stmtOpts) {
	p.lex.Restore(save)
	keywordRange := p.rng()
	p.next()
	p.diags.Add(diag.NewlineNotAllowedAfterInterfaceKeyword, diag.Label{Name: "interface_keyword", Range: keywordRange})
	p.parseAndVisitInterface(opts, keywordRange)
}

// parseAndVisitInterfaceMember parses one interface member and emits
// every diagnostic from the modifier table: static/async/generator/
// accessibility modifiers are all rejected on interface members, since
// interfaces describe only shapes, not implementations.
func (p *Parser) parseAndVisitInterfaceMember() {
	isAbstract := false
	var abstractRange source.Range
	var accessibilityRange source.Range
	accessibilityKind := diag.Kind(-1)
	isStatic := false
	isReadonly := false
	isAsync := false
	var asyncRange source.Range
	isGenerator := false
	var generatorRange source.Range

	// Modifiers can appear in any order (`async static *m()`, `static
	// readonly x`, ...), so loop over them the way parseAndVisitClassMember
	// does, rather than checking each one only once up front: a single
	// linear static-then-async chain misses `static` once `async` has
	// already been consumed.
modifierLoop:
	for {
		switch {
		case !isStatic && p.isContextualKeywordIdentifier("static"):
			save := p.lex.Save()
			staticRange := p.rng()
			p.next()
			if p.tok() == token.OpenBrace {
				p.diags.Add(diag.TypeScriptInterfacesCannotContainStaticBlocks, diag.Label{Name: "static_keyword", Range: staticRange})
				p.next()
				depth := 1
				for depth > 0 && p.tok() != token.EndOfFile {
					if p.tok() == token.OpenBrace {
						depth++
					} else if p.tok() == token.CloseBrace {
						depth--
					}
					p.next()
				}
				return
			}
			p.diags.Add(diag.InterfacePropertiesCannotBeStatic, diag.Label{Name: "static_keyword", Range: staticRange})
			isStatic = true
			_ = save
		case p.isContextualKeywordIdentifier("abstract"):
			abstractRange = p.rng()
			isAbstract = true
			p.next()
		case accessibilityKind < 0 && p.tok() == token.Identifier && isAccessibilityModifierIdentifier(p.lex.Identifier):
			accessibilityKind = accessibilityDiagKindFor(p.lex.Identifier)
			accessibilityRange = p.rng()
			p.next()
		case p.isContextualKeyword(token.CKReadonly):
			save := p.lex.Save()
			p.next()
			if p.tok() == token.Colon || p.tok() == token.Question || p.tok() == token.OpenParen || p.tok() == token.Semicolon {
				p.lex.Restore(save)
				break modifierLoop
			}
			isReadonly = true
		case !isAsync && p.isContextualKeyword(token.CKAsync):
			save := p.lex.Save()
			asyncRangeCandidate := p.rng()
			p.next()
			if p.tok() == token.Colon || p.tok() == token.Question || p.tok() == token.OpenParen || p.tok() == token.Semicolon {
				p.lex.Restore(save)
				break modifierLoop
			}
			isAsync = true
			asyncRange = asyncRangeCandidate
		case !isGenerator && p.tok() == token.Asterisk:
			generatorRange = p.rng()
			isGenerator = true
			p.next()
		default:
			break modifierLoop
		}
	}

	if isAbstract {
		p.diags.Add(diag.AbstractPropertyNotAllowedInInterface, diag.Label{Name: "abstract_keyword", Range: abstractRange})
	}
	if accessibilityKind >= 0 {
		p.diags.Add(accessibilityKind, diag.Label{Name: "modifier", Range: accessibilityRange})
	}

	isGetter, isSetter := false, false
	if p.isContextualKeyword(token.CKGet) || p.isContextualKeyword(token.CKSet) {
		isGet := p.isContextualKeyword(token.CKGet)
		save := p.lex.Save()
		p.next()
		if p.tok() == token.Colon || p.tok() == token.Question || p.tok() == token.OpenParen || p.tok() == token.Semicolon || p.tok() == token.CloseBrace {
			p.lex.Restore(save)
		} else if isGet {
			isGetter = true
		} else {
			isSetter = true
		}
	}

	// Index signature: `[key: string]: Type` or the invalid
	// `[key: string](): Type` (a method-shaped index signature).
	if p.tok() == token.OpenBracket {
		p.parseAndVisitInterfaceIndexSignature()
		return
	}

	keyName, _, isIdentifierKey := p.parsePropertyKey()
	isOptional := false
	if p.tok() == token.Question {
		isOptional = true
		p.next()
	}
	_ = isOptional

	isAssignmentAsserted := false
	var assertRange source.Range
	if p.tok() == token.Exclamation {
		assertRange = p.rng()
		isAssignmentAsserted = true
		p.next()
	}

	if isIdentifierKey {
		p.visit.VisitPropertyDeclaration(keyName, true)
	} else {
		p.visit.VisitPropertyDeclaration("", false)
	}

	switch {
	case p.tok() == token.OpenParen || p.tok() == token.LessThan:
		if isAsync {
			p.diags.Add(diag.InterfaceMethodsCannotBeAsync, diag.Label{Name: "async_keyword", Range: asyncRange})
		}
		if isGenerator {
			p.diags.Add(diag.InterfaceMethodsCannotBeGenerators, diag.Label{Name: "star", Range: generatorRange})
		}
		if isAssignmentAsserted {
			p.diags.Add(diag.TypeScriptAssignmentAssertedFieldsNotAllowedInInterfaces, diag.Label{Name: "bang", Range: assertRange})
		}
		p.parseAndVisitInterfaceMethodSignature()

	default:
		_ = isGetter
		_ = isSetter
		if isAssignmentAsserted {
			p.diags.Add(diag.TypeScriptAssignmentAssertedFieldsNotAllowedInInterfaces, diag.Label{Name: "bang", Range: assertRange})
		}
		_ = isReadonly
		if p.tok() == token.Colon {
			p.next()
			p.skipTypeAnnotation()
		}
		if p.tok() == token.Equals {
			equalsRange := p.rng()
			p.next()
			p.parseAndVisitExpression(precedenceAssignment)
			p.diags.Add(diag.InterfaceFieldsCannotHaveInitializers, diag.Label{Name: "equals", Range: equalsRange})
		}
		p.skipSemicolonOrASI(diag.MissingSemicolonAfterField, p.label("field"))
	}
}

// isAccessibilityModifierIdentifier reports whether name is one of the
// three TypeScript accessibility keywords, none of which are allowed on
// an interface member.
func isAccessibilityModifierIdentifier(name string) bool {
	switch name {
	case "public", "private", "protected":
		return true
	default:
		return false
	}
}

// accessibilityDiagKindFor maps an accessibility keyword to the
// diagnostic reporting it on an interface member. Callers must only
// pass names for which isAccessibilityModifierIdentifier is true.
func accessibilityDiagKindFor(name string) diag.Kind {
	switch name {
	case "public":
		return diag.InterfacePropertiesCannotBePublic
	case "private":
		return diag.InterfacePropertiesCannotBePrivate
	default:
		return diag.InterfacePropertiesCannotBeProtected
	}
}

// parseAndVisitInterfaceMethodSignature parses a method/call-signature
// member: parameters, optional return type, and rejects a body or an
// arrow-style return-type separator, both illegal inside an interface.
func (p *Parser) parseAndVisitInterfaceMethodSignature() {
	if p.tok() == token.LessThan {
		p.skipTypeScriptTypeParameters()
	}
	p.visit.VisitEnterFunctionScope(false, false)
	p.parseAndVisitFunctionParameters()

	if p.tok() == token.EqualsGreaterThan {
		arrowRange := p.rng()
		p.diags.Add(diag.FunctionsOrMethodsShouldNotHaveArrowOperator, diag.Label{Name: "arrow", Range: arrowRange})
		p.next()
		p.skipTypeAnnotation()
	} else if p.tok() == token.Colon {
		p.next()
		p.skipTypeAnnotation()
	}
	p.visit.VisitExitFunctionScope()

	if p.tok() == token.OpenBrace {
		bodyRange := p.rng()
		p.diags.Add(diag.InterfaceMethodsCannotContainBodies, diag.Label{Name: "body_start", Range: bodyRange})
		p.next()
		depth := 1
		for depth > 0 && p.tok() != token.EndOfFile {
			if p.tok() == token.OpenBrace {
				depth++
			} else if p.tok() == token.CloseBrace {
				depth--
			}
			p.next()
		}
		return
	}
	p.skipSemicolonOrASI(diag.MissingSemicolonAfterInterfaceMethod, p.label("method"))
}

// parseAndVisitInterfaceIndexSignature parses `[key: KeyType]: ValueType`,
// diagnosing a missing key type and a method-shaped index signature
// (`[key: string](): T`), which TypeScript disallows.
func (p *Parser) parseAndVisitInterfaceIndexSignature() {
	p.next() // `[`
	p.visit.VisitEnterIndexSignatureScope()
	name := ""
	var rng source.Range
	if p.tok() == token.Identifier {
		name = p.lex.Identifier
		rng = p.rng()
		p.next()
	}
	if p.tok() == token.Colon {
		p.next()
		p.visit.VisitVariableDeclaration(name, ast.IndexSignatureParameter, ast.FlagNone, rng)
		p.skipTypeAnnotation()
	} else {
		p.diags.Add(diag.TypeScriptIndexSignatureNeedsType, p.label("index_signature"))
		p.visit.VisitVariableDeclaration(name, ast.IndexSignatureParameter, ast.FlagNone, rng)
	}
	p.expect(token.CloseBracket, "close_bracket")
	p.visit.VisitExitIndexSignatureScope()

	if p.tok() == token.OpenParen {
		p.diags.Add(diag.TypeScriptIndexSignatureCannotBeMethod, p.label("index_signature"))
		p.parseAndVisitFunctionParameters()
	}
	if p.tok() == token.Colon {
		p.next()
		p.skipTypeAnnotation()
	}
	p.skipSemicolonOrASI(diag.MissingSemicolonAfterIndexSignature, p.label("index_signature"))
}
