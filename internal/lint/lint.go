// Package lint wires the lexer, parser, and variable analyzer into the
// one core entry point spec.md §6 describes: a function from source
// bytes plus options to a diagnostic list and a locator, with no
// throwing on malformed input — every detected problem becomes a
// diagnostic record instead. Grounded on evanw/esbuild's top-level
// api_impl.go, which plays the same "wire the pipeline, return records"
// role for its own parse+bundle entry points.
package lint

import (
	"github.com/cmstoddard/quick-lint-js/internal/analyzer"
	"github.com/cmstoddard/quick-lint-js/internal/ast"
	"github.com/cmstoddard/quick-lint-js/internal/diag"
	"github.com/cmstoddard/quick-lint-js/internal/lexer"
	"github.com/cmstoddard/quick-lint-js/internal/obslog"
	"github.com/cmstoddard/quick-lint-js/internal/parser"
	"github.com/cmstoddard/quick-lint-js/internal/source"
	"go.uber.org/zap"
)

// ParserOptions configures grammar selection, per spec.md §6.
type ParserOptions struct {
	TypeScript           bool
	TypeScriptDefinition bool
	JSX                  bool
	PrintParserVisits    bool
}

// AnalyzerOptions configures the variable analyzer, per spec.md §6.
type AnalyzerOptions struct {
	// AllowDeclareAcrossScopes mirrors spec.md §6's
	// allow_declare_across_scopes (default true in TypeScript). The
	// analyzer does not read this field: a `declare` binding is found by
	// uses in its own scope (before or after it) and in scopes nested in
	// it, and is never found by uses in an enclosing or sibling scope,
	// whatever the field holds.
	AllowDeclareAcrossScopes bool
	Globals                 analyzer.GlobalSet

	// TraceLogger receives a parser_visit debug line per visitor event
	// when ParserOptions.PrintParserVisits is set. Nil disables tracing
	// even if PrintParserVisits is set.
	TraceLogger *zap.SugaredLogger
}

// DefaultAnalyzerOptions returns spec.md §6's stated default: declare
// forward references allowed, no extra globals beyond what the caller
// assigns.
func DefaultAnalyzerOptions() AnalyzerOptions {
	return AnalyzerOptions{AllowDeclareAcrossScopes: true}
}

// Result is spec.md §6's core entry point's return value: the ordered
// diagnostic list plus a Locator able to translate any labeled range's
// byte offsets to (line, column) on demand.
type Result struct {
	Diagnostics []diag.Diagnostic
	Locator     *source.Locator
}

// Run parses path/text under parserOpts, analyzes the resulting event
// stream under analyzerOpts, and returns every diagnostic the lexer,
// parser, and analyzer produced, in stable insertion order.
func Run(path string, text string, parserOpts ParserOptions, analyzerOpts AnalyzerOptions) Result {
	buf := source.NewBuffer(path, text)
	diags := diag.NewCollector()
	arena := lexer.NewArena()

	av := analyzer.New(diags, analyzerOpts.Globals)

	var visit ast.Visitor = av
	if parserOpts.PrintParserVisits && analyzerOpts.TraceLogger != nil {
		visit = ast.MultiVisitor{av, obslog.NewTracingVisitor(analyzerOpts.TraceLogger)}
	}

	p := parser.New(buf, diags, arena, visit, parser.Options{
		TypeScript:           parserOpts.TypeScript,
		JSX:                  parserOpts.JSX,
		TypeScriptDefinition: parserOpts.TypeScriptDefinition,
		PrintParserVisits:    parserOpts.PrintParserVisits,
	})
	p.ParseAndVisitModule()

	return Result{
		Diagnostics: diags.Diagnostics,
		Locator:     source.NewLocator(buf),
	}
}
