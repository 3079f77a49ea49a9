// Package parser implements the recursive-descent + Pratt expression
// parser of spec.md §4.2: it never materializes an AST, instead driving
// an ast.Visitor directly, mirroring the design note in spec.md §9.
// Statement dispatch and the expression precedence table are grounded on
// evanw/esbuild's internal/js_parser.parser; the TypeScript interface,
// type-alias, enum, and namespace grammar (internal/parser/ts_*.go) is
// grounded on the same file's internal/js_parser/ts_parser.go "skip"
// routines, turned into event-emitting "parse" routines so the variable
// analyzer sees every declaration and use a real TypeScript checker would.
package parser

import (
	"github.com/cmstoddard/quick-lint-js/internal/ast"
	"github.com/cmstoddard/quick-lint-js/internal/diag"
	"github.com/cmstoddard/quick-lint-js/internal/lexer"
	"github.com/cmstoddard/quick-lint-js/internal/source"
	"github.com/cmstoddard/quick-lint-js/internal/token"
)

// Options configures grammar selection, per spec.md §6.
type Options struct {
	TypeScript           bool
	JSX                  bool
	TypeScriptDefinition bool
	PrintParserVisits    bool
}

// Parser drives visitor events from source text. It is constructed fresh
// per parse and is not safe for concurrent use, per spec.md §5.
type Parser struct {
	lex     *lexer.Lexer
	diags   *diag.Collector
	arena   *lexer.Arena
	visit   ast.Visitor
	options Options
	buf     *source.Buffer

	// localTypeNames mirrors esbuild's js_parser.localTypeNames: it is
	// only used to help the expression parser decide whether a `<...>`
	// after an identifier is a generic type-argument list or a
	// less-than comparison. It does not feed the analyzer.
	localTypeNames map[string]bool

	// inAsync / inGenerator record whether the innermost function being
	// parsed is async / a generator. Nothing in the parser reads them:
	// the `await`/`yield` declaration diagnostics come from the analyzer,
	// which gets the same two flags from VisitEnterFunctionScope.
	inAsync     bool
	inGenerator bool
}

// New constructs a Parser over buf that will drive visit. diags and arena
// are shared with anything else consuming the same parse (typically
// lint.Run constructs them once and hands them to both the
// lexer and the Parser).
func New(buf *source.Buffer, diags *diag.Collector, arena *lexer.Arena, visit ast.Visitor, options Options) *Parser {
	return &Parser{
		lex:            lexer.New(buf, diags, arena),
		diags:          diags,
		arena:          arena,
		visit:          visit,
		options:        options,
		buf:            buf,
		localTypeNames: make(map[string]bool),
	}
}

func (p *Parser) tok() token.Kind { return p.lex.Token }
func (p *Parser) rng() source.Range { return p.lex.Range }
func (p *Parser) next() { p.lex.Next() }

func (p *Parser) isContextualKeyword(ck token.ContextualKeyword) bool {
	return p.lex.Token == token.Identifier && p.lex.ContextualKeyword == ck
}

// ParseAndVisitModule parses the whole buffer as a module (spec.md's
// top-level entry point) and emits end_of_module last.
func (p *Parser) ParseAndVisitModule() {
	for p.tok() != token.EndOfFile {
		p.parseAndVisitStatement(stmtOpts{isModuleScope: true})
	}
	p.visit.VisitEndOfModule()
}

// ParseAndVisitStatement parses exactly one top-level statement.
func (p *Parser) ParseAndVisitStatement() {
	p.parseAndVisitStatement(stmtOpts{isModuleScope: true})
}

type stmtOpts struct {
	isModuleScope bool
	isExport      bool
}

// label returns a diag.Label for the token the parser is currently
// sitting on, before consuming it.
func (p *Parser) label(name string) diag.Label {
	return diag.Label{Name: name, Range: p.rng()}
}

func (p *Parser) labelAt(name string, rng source.Range) diag.Label {
	return diag.Label{Name: name, Range: rng}
}

// expect consumes tok if it matches, else records an Unexpected_Token
// diagnostic and recovers without consuming (error recovery: the caller's
// nearest recovery set takes over), per spec.md §4.2.
func (p *Parser) expect(kind token.Kind, label string) bool {
	if p.tok() == kind {
		p.next()
		return true
	}
	p.diags.Add(diag.UnexpectedToken, p.label(label))
	return false
}

// skipSemicolonOrASI implements spec.md §4.2's ASI algorithm exactly.
func (p *Parser) skipSemicolonOrASI(missingKind diag.Kind, label diag.Label) {
	switch {
	case p.tok() == token.Semicolon:
		p.next()
	case p.lex.HasNewlineBefore, p.tok() == token.CloseBrace, p.tok() == token.EndOfFile:
		// insert
	default:
		p.diags.Add(missingKind, label)
	}
}
