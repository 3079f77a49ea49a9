// Package diag implements the diagnostic record shape and collector
// described in spec.md §3 and §4.4: a tagged Kind, one or more named
// source ranges, and an append-only collector supporting a watermark
// primitive for constant-time backtracking truncation. Grounded on
// evanw/esbuild's internal/logger.Msg/MsgLocation, generalized from a
// single location to the named multi-label shape spec.md requires.
package diag

import "github.com/cmstoddard/quick-lint-js/internal/source"

// Severity classifies a Kind as rendering at error or warning level. It is
// a property of the kind, per spec.md §7, never of the individual record.
type Severity uint8

const (
	SeverityError Severity = iota
	SeverityWarning
)

// Kind is the stable, testable diagnostic identity. Names intentionally
// mirror quick-lint-js's own `Diag_*` identifiers (see
// test-parse-typescript-interface.cpp) with the `Diag_` prefix dropped,
// since Go callers already qualify with the package name.
type Kind int

const (
	// Lexer-level.
	UnexpectedCharacter Kind = iota
	UnterminatedBlockComment
	UnterminatedString
	UnterminatedTemplate
	UnterminatedRegexp
	InvalidIdentifierEscape
	InvalidHexEscape
	InvalidUnicodeEscape
	InvalidNumberAdjacentIdentifier

	// General statement/expression grammar.
	MissingSemicolonAfterStatement
	MissingSemicolonAfterExpression
	UnexpectedToken
	UnexpectedEOF
	ExpectedExpression
	ExpectedIdentifier
	ExpectedParenAfterIf
	ExpectedParenAfterWhile
	ExpectedParenAfterFor
	InvalidLHSForAssignment
	InvalidLHSForInLoop
	RedundantDeleteStatementOnVariable

	// Class grammar.
	MissingClassBody
	UnclosedClassBlock
	ClassesCannotHaveMultipleExtendsClauses
	MissingNameInClassStatement
	MissingNameOfClassMethod

	// TypeScript interface grammar (spec.md §4.2 interface table).
	TypeScriptInterfacesNotAllowedInJavaScript
	MissingBodyForTypeScriptInterface
	UnclosedInterfaceBlock
	NewlineNotAllowedAfterInterfaceKeyword
	InterfacePropertiesCannotBeStatic
	InterfaceMethodsCannotBeAsync
	InterfaceMethodsCannotBeGenerators
	InterfacePropertiesCannotBePrivate
	InterfacePropertiesCannotBePublic
	InterfacePropertiesCannotBeProtected
	AbstractPropertyNotAllowedInInterface
	InterfaceFieldsCannotHaveInitializers
	TypeScriptAssignmentAssertedFieldsNotAllowedInInterfaces
	InterfaceMethodsCannotContainBodies
	FunctionsOrMethodsShouldNotHaveArrowOperator
	MissingSemicolonAfterInterfaceMethod
	MissingSemicolonAfterField
	MissingSemicolonAfterIndexSignature
	TypeScriptInterfacesCannotContainStaticBlocks
	TypeScriptIndexSignatureNeedsType
	TypeScriptIndexSignatureCannotBeMethod

	// TypeScript type-alias / enum / namespace grammar.
	TypeScriptTypeAliasNotAllowedInJavaScript
	TypeScriptEnumNotAllowedInJavaScript
	TypeScriptNamespaceNotAllowedInJavaScript
	TypeScriptNamespacesAreNotSupported

	// Variable analyzer (spec.md §4.3).
	UseOfUndeclaredVariable
	AssignmentToUndeclaredVariable
	AssignmentToConstVariable
	AssignmentToConstVariableBeforeItsDeclaration
	VariableUsedBeforeDeclaration
	RedeclarationOfVariable
	CannotDeclareAwaitInAsyncFunction
	CannotDeclareYieldInGeneratorFunction
	AssignmentToImmutableVariable

	kindCount
)

var severities = map[Kind]Severity{
	NewlineNotAllowedAfterInterfaceKeyword: SeverityWarning,
}

// Severity reports the rendering severity for k. Kinds default to error
// severity unless otherwise registered.
func (k Kind) Severity() Severity {
	if sev, ok := severities[k]; ok {
		return sev
	}
	return SeverityError
}

var kindNames = map[Kind]string{
	UnexpectedCharacter:              "Diag_Unexpected_Character",
	UnterminatedBlockComment:         "Diag_Unterminated_Block_Comment",
	UnterminatedString:               "Diag_Unterminated_String",
	UnterminatedTemplate:             "Diag_Unterminated_Template",
	UnterminatedRegexp:               "Diag_Unterminated_Regexp_Literal",
	InvalidIdentifierEscape:          "Diag_Invalid_Identifier_Escape",
	InvalidHexEscape:                 "Diag_Invalid_Hex_Escape",
	InvalidUnicodeEscape:             "Diag_Invalid_Unicode_Escape",
	InvalidNumberAdjacentIdentifier:  "Diag_Invalid_Number_Adjacent_Identifier",

	MissingSemicolonAfterStatement:   "Diag_Missing_Semicolon_After_Statement",
	MissingSemicolonAfterExpression:  "Diag_Missing_Semicolon_After_Expression",
	UnexpectedToken:                  "Diag_Unexpected_Token",
	UnexpectedEOF:                    "Diag_Unexpected_End_Of_File",
	ExpectedExpression:                "Diag_Expected_Expression",
	ExpectedIdentifier:               "Diag_Expected_Identifier",
	ExpectedParenAfterIf:             "Diag_Expected_Parenthesis_After_If",
	ExpectedParenAfterWhile:          "Diag_Expected_Parenthesis_After_While",
	ExpectedParenAfterFor:            "Diag_Expected_Parenthesis_After_For",
	InvalidLHSForAssignment:          "Diag_Invalid_Expression_Left_Of_Assignment",
	InvalidLHSForInLoop:              "Diag_Invalid_Expression_Left_Of_For_In_Loop",
	RedundantDeleteStatementOnVariable: "Diag_Redundant_Delete_Statement_On_Variable",

	MissingClassBody:                        "Diag_Missing_Class_Body",
	UnclosedClassBlock:                      "Diag_Unclosed_Class_Block",
	ClassesCannotHaveMultipleExtendsClauses:  "Diag_Classes_Cannot_Have_Multiple_Extends_Clauses",
	MissingNameInClassStatement:              "Diag_Missing_Name_In_Class_Statement",
	MissingNameOfClassMethod:                 "Diag_Missing_Name_Of_Class_Method",

	TypeScriptInterfacesNotAllowedInJavaScript:              "Diag_TypeScript_Interfaces_Not_Allowed_In_JavaScript",
	MissingBodyForTypeScriptInterface:                       "Diag_Missing_Body_For_TypeScript_Interface",
	UnclosedInterfaceBlock:                                  "Diag_Unclosed_Interface_Block",
	NewlineNotAllowedAfterInterfaceKeyword:                  "Diag_Newline_Not_Allowed_After_Interface_Keyword",
	InterfacePropertiesCannotBeStatic:                       "Diag_Interface_Properties_Cannot_Be_Static",
	InterfaceMethodsCannotBeAsync:                           "Diag_Interface_Methods_Cannot_Be_Async",
	InterfaceMethodsCannotBeGenerators:                      "Diag_Interface_Methods_Cannot_Be_Generators",
	InterfacePropertiesCannotBePrivate:                      "Diag_Interface_Properties_Cannot_Be_Private",
	InterfacePropertiesCannotBePublic:                       "Diag_Interface_Properties_Cannot_Be_Public",
	InterfacePropertiesCannotBeProtected:                    "Diag_Interface_Properties_Cannot_Be_Protected",
	AbstractPropertyNotAllowedInInterface:                   "Diag_Abstract_Property_Not_Allowed_In_Interface",
	InterfaceFieldsCannotHaveInitializers:                   "Diag_Interface_Fields_Cannot_Have_Initializers",
	TypeScriptAssignmentAssertedFieldsNotAllowedInInterfaces: "Diag_TypeScript_Assignment_Asserted_Fields_Not_Allowed_In_Interfaces",
	InterfaceMethodsCannotContainBodies:                     "Diag_Interface_Methods_Cannot_Contain_Bodies",
	FunctionsOrMethodsShouldNotHaveArrowOperator:            "Diag_Functions_Or_Methods_Should_Not_Have_Arrow_Operator",
	MissingSemicolonAfterInterfaceMethod:                    "Diag_Missing_Semicolon_After_Interface_Method",
	MissingSemicolonAfterField:                              "Diag_Missing_Semicolon_After_Field",
	MissingSemicolonAfterIndexSignature:                     "Diag_Missing_Semicolon_After_Index_Signature",
	TypeScriptInterfacesCannotContainStaticBlocks:           "Diag_TypeScript_Interfaces_Cannot_Contain_Static_Blocks",
	TypeScriptIndexSignatureNeedsType:                       "Diag_TypeScript_Index_Signature_Needs_Type",
	TypeScriptIndexSignatureCannotBeMethod:                  "Diag_TypeScript_Index_Signature_Cannot_Be_Method",

	TypeScriptTypeAliasNotAllowedInJavaScript: "Diag_TypeScript_Type_Alias_Not_Allowed_In_JavaScript",
	TypeScriptEnumNotAllowedInJavaScript:      "Diag_TypeScript_Enum_Not_Allowed_In_JavaScript",
	TypeScriptNamespaceNotAllowedInJavaScript: "Diag_TypeScript_Namespace_Not_Allowed_In_JavaScript",
	TypeScriptNamespacesAreNotSupported:       "Diag_TypeScript_Namespaces_Are_Not_Supported",

	UseOfUndeclaredVariable:                       "Diag_Use_Of_Undeclared_Variable",
	AssignmentToUndeclaredVariable:                 "Diag_Assignment_To_Undeclared_Variable",
	AssignmentToConstVariable:                      "Diag_Assignment_To_Const_Variable",
	AssignmentToConstVariableBeforeItsDeclaration:  "Diag_Assignment_To_Const_Variable_Before_Its_Declaration",
	VariableUsedBeforeDeclaration:                  "Diag_Variable_Used_Before_Declaration",
	RedeclarationOfVariable:                        "Diag_Redeclaration_Of_Variable",
	CannotDeclareAwaitInAsyncFunction:              "Diag_Cannot_Declare_Await_In_Async_Function",
	CannotDeclareYieldInGeneratorFunction:          "Diag_Cannot_Declare_Yield_In_Generator_Function",
	AssignmentToImmutableVariable:                  "Diag_Assignment_To_Immutable_Variable",
}

// String returns the stable wire name for k ("Diag_..."), the public
// contract with tests and renderers per spec.md §6.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Diag_Unknown"
}

// Label is a named offset within a diagnostic: e.g. "static_keyword",
// "equal", "body_start". The mapping from name to offset is part of the
// kind's schema; tests match on names, not positional order alone.
type Label struct {
	Name  string
	Range source.Range
}

// Diagnostic is one reported problem: a Kind plus its labeled ranges and
// an index into Labels identifying the primary (squiggle-underlined) one.
type Diagnostic struct {
	Kind         Kind
	Labels       []Label
	PrimaryLabel int
}

// Primary returns the diagnostic's primary labeled range.
func (d Diagnostic) Primary() source.Range {
	return d.Labels[d.PrimaryLabel].Range
}

// Collector is the append-only, insertion-ordered diagnostic sink
// described in spec.md §4.4, with a watermark/truncate pair the parser
// uses to discard tentative diagnostics queued during a speculative,
// later-rewound parse.
type Collector struct {
	Diagnostics []Diagnostic
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add appends a diagnostic whose primary label is its first label.
func (c *Collector) Add(kind Kind, labels ...Label) {
	c.Diagnostics = append(c.Diagnostics, Diagnostic{Kind: kind, Labels: labels, PrimaryLabel: 0})
}

// AddWithPrimary appends a diagnostic whose primary label is explicitly
// chosen (by index into labels), for kinds like
// Interface_Methods_Cannot_Be_Async where the squiggle belongs on a
// label other than the first one recorded.
func (c *Collector) AddWithPrimary(kind Kind, primary int, labels ...Label) {
	c.Diagnostics = append(c.Diagnostics, Diagnostic{Kind: kind, Labels: labels, PrimaryLabel: primary})
}

// Watermark returns the current diagnostic count, a constant-time
// snapshot for later Truncate.
func (c *Collector) Watermark() int { return len(c.Diagnostics) }

// Truncate discards every diagnostic added since the matching Watermark
// call, in constant time (a slice length reset).
func (c *Collector) Truncate(n int) { c.Diagnostics = c.Diagnostics[:n] }
