package render

import "github.com/cmstoddard/quick-lint-js/internal/diag"

// messageTemplates holds one human-readable sentence per diag.Kind.
// Grounded on the message strings quick-lint-js's own
// QLJS_DIAG_TYPE macro invocations attach to each diagnostic (one
// sentence per kind, no variable interpolation needed beyond what the
// labeled ranges already point at).
var messageTemplates = map[diag.Kind]string{
	diag.UnexpectedCharacter:             "unexpected character",
	diag.UnterminatedBlockComment:        "unclosed block comment",
	diag.UnterminatedString:              "unclosed string literal",
	diag.UnterminatedTemplate:            "unclosed template literal",
	diag.UnterminatedRegexp:              "unclosed regexp literal",
	diag.InvalidIdentifierEscape:         "invalid identifier escape sequence",
	diag.InvalidHexEscape:                "invalid hex escape sequence: \\x must be followed by 2 hex digits",
	diag.InvalidUnicodeEscape:            "invalid unicode escape sequence",
	diag.InvalidNumberAdjacentIdentifier: "invalid number literal: number literal cannot be immediately followed by an identifier",

	diag.MissingSemicolonAfterStatement:   "missing semicolon after statement",
	diag.MissingSemicolonAfterExpression:  "missing semicolon after expression",
	diag.UnexpectedToken:                  "unexpected token",
	diag.UnexpectedEOF:                    "unexpected end of file",
	diag.ExpectedExpression:               "expected expression",
	diag.ExpectedIdentifier:               "expected identifier",
	diag.ExpectedParenAfterIf:             "expected '(' after 'if'",
	diag.ExpectedParenAfterWhile:          "expected '(' after 'while'",
	diag.ExpectedParenAfterFor:            "expected '(' after 'for'",
	diag.InvalidLHSForAssignment:          "invalid expression left of assignment",
	diag.InvalidLHSForInLoop:              "invalid expression left of 'for-in' loop",
	diag.RedundantDeleteStatementOnVariable: "redundant 'delete' statement on variable",

	diag.MissingClassBody:                       "missing body for class",
	diag.UnclosedClassBlock:                     "unclosed class block; expected '}' by end of file",
	diag.ClassesCannotHaveMultipleExtendsClauses: "classes cannot have multiple 'extends' clauses",
	diag.MissingNameInClassStatement:             "missing name of class",
	diag.MissingNameOfClassMethod:                "missing name of class method",

	diag.TypeScriptInterfacesNotAllowedInJavaScript:              "TypeScript interfaces are not allowed in JavaScript code",
	diag.MissingBodyForTypeScriptInterface:                       "missing body for interface",
	diag.UnclosedInterfaceBlock:                                  "unclosed interface block; expected '}' by end of file",
	diag.NewlineNotAllowedAfterInterfaceKeyword:                  "newline is not allowed after 'interface'",
	diag.InterfacePropertiesCannotBeStatic:                       "interface properties cannot be 'static'",
	diag.InterfaceMethodsCannotBeAsync:                           "interface methods cannot be 'async'",
	diag.InterfaceMethodsCannotBeGenerators:                      "interface methods cannot be generators",
	diag.InterfacePropertiesCannotBePrivate:                      "interface properties cannot be 'private'",
	diag.InterfacePropertiesCannotBePublic:                       "interface properties cannot be 'public'",
	diag.InterfacePropertiesCannotBeProtected:                    "interface properties cannot be 'protected'",
	diag.AbstractPropertyNotAllowedInInterface:                   "'abstract' is not allowed on interface properties",
	diag.InterfaceFieldsCannotHaveInitializers:                   "interface fields cannot have initializers",
	diag.TypeScriptAssignmentAssertedFieldsNotAllowedInInterfaces: "assignment-asserted fields are not allowed in interfaces",
	diag.InterfaceMethodsCannotContainBodies:                     "interface methods cannot contain a body",
	diag.FunctionsOrMethodsShouldNotHaveArrowOperator:            "functions/methods should not have an arrow operator ('=>') before their return type",
	diag.MissingSemicolonAfterInterfaceMethod:                    "missing semicolon after interface method",
	diag.MissingSemicolonAfterField:                              "missing semicolon after field",
	diag.MissingSemicolonAfterIndexSignature:                     "missing semicolon after index signature",
	diag.TypeScriptInterfacesCannotContainStaticBlocks:           "interfaces cannot contain static blocks",
	diag.TypeScriptIndexSignatureNeedsType:                       "index signatures require a value type",
	diag.TypeScriptIndexSignatureCannotBeMethod:                  "index signatures cannot be methods",

	diag.TypeScriptTypeAliasNotAllowedInJavaScript: "TypeScript type aliases are not allowed in JavaScript code",
	diag.TypeScriptEnumNotAllowedInJavaScript:       "TypeScript enums are not allowed in JavaScript code",
	diag.TypeScriptNamespaceNotAllowedInJavaScript:  "TypeScript namespaces are not allowed in JavaScript code",
	diag.TypeScriptNamespacesAreNotSupported:        "TypeScript namespaces are not supported",

	diag.UseOfUndeclaredVariable:                      "use of undeclared variable",
	diag.AssignmentToUndeclaredVariable:                "assignment to undeclared variable",
	diag.AssignmentToConstVariable:                     "assignment to const variable",
	diag.AssignmentToConstVariableBeforeItsDeclaration: "assignment to const variable before its declaration",
	diag.VariableUsedBeforeDeclaration:                 "variable used before declaration",
	diag.RedeclarationOfVariable:                       "redeclaration of variable",
	diag.CannotDeclareAwaitInAsyncFunction:              "cannot declare 'await' inside async function",
	diag.CannotDeclareYieldInGeneratorFunction:          "cannot declare 'yield' inside generator function",
	diag.AssignmentToImmutableVariable:                  "assignment to immutable variable",
}

func message(d diag.Diagnostic) string {
	if msg, ok := messageTemplates[d.Kind]; ok {
		return msg
	}
	return d.Kind.String()
}
