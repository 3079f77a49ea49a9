package cli

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/cmstoddard/quick-lint-js/internal/diag"
	"github.com/cmstoddard/quick-lint-js/internal/globals"
	"github.com/cmstoddard/quick-lint-js/internal/lint"
	"github.com/cmstoddard/quick-lint-js/internal/obslog"
	"github.com/cmstoddard/quick-lint-js/internal/render"
	"go.uber.org/zap"
)

// fileResult is one file's outcome: its rendered diagnostics (for the
// chosen --output-format) plus the raw diag.Diagnostic list (for
// --exit-fail-on matching), in the order lint.Run produced them.
type fileResult struct {
	path        string
	rendered    []render.Rendered
	diagnostics []diag.Diagnostic
	readErr     error
}

func parserOptionsFor(lang Language) lint.ParserOptions {
	opts := lint.ParserOptions{}
	switch lang {
	case LanguageJavaScript, LanguageDefault:
	case LanguageJavaScriptJSX:
		opts.JSX = true
	case LanguageTypeScript:
		opts.TypeScript = true
	case LanguageTypeScriptDefinition:
		opts.TypeScript = true
		opts.TypeScriptDefinition = true
	case LanguageTypeScriptJSX:
		opts.TypeScript = true
		opts.JSX = true
	}
	return opts
}

// readSource reads f's bytes, from stdin if f.Stdin.
func readSource(f FileJob, stdin io.Reader) (string, error) {
	if f.Stdin {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading standard input: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", f.Path, err)
	}
	return string(b), nil
}

// globalsFor resolves the Global_Declared_Variable_Set for one file:
// the built-in default preset, optionally extended by a --config-file
// override. Grounded on spec.md §4.5/§6: config-file loading is a real
// collaborator, wired here rather than stubbed.
func globalsFor(f FileJob, logger *zap.SugaredLogger) *globals.Set {
	base := globals.Default()
	if !f.HasConfigFile {
		return base
	}
	overridden, err := globals.LoadOverrideFile(f.ConfigFile, base)
	if err != nil {
		logger.Warnw("config_file_load_failed", "path", f.ConfigFile, "error", err)
		return base
	}
	return overridden
}

// lintFile runs the full lexer/parser/analyzer pipeline over one file
// job and renders its diagnostics, per spec.md §5's "each call's
// arena, buffer, and diagnostic list stay call-local" resource rule —
// every field this function touches is local to its own goroutine.
func lintFile(f FileJob, traceLogger *zap.SugaredLogger, opLogger *zap.SugaredLogger, stdin io.Reader) fileResult {
	text, err := readSource(f, stdin)
	if err != nil {
		return fileResult{path: f.Path, readErr: err}
	}

	analyzerOpts := lint.AnalyzerOptions{
		AllowDeclareAcrossScopes: true,
		Globals:                  globalsFor(f, opLogger),
		TraceLogger:              traceLogger,
	}
	parserOpts := parserOptionsFor(f.Language)
	parserOpts.PrintParserVisits = traceLogger != nil

	result := lint.Run(f.Path, text, parserOpts, analyzerOpts)
	return fileResult{
		path:        f.Path,
		rendered:    render.All(result.Diagnostics, f.Path, result.Locator),
		diagnostics: result.Diagnostics,
	}
}

// Run is cmd/quick-lint-js's entry point: parse argv, lint every file
// job (one goroutine per file, per SPEC_FULL.md §5), print diagnostics
// in the requested format, and return the process exit code.
func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	parsed := Parse(argv)

	if parsed.Help {
		fmt.Fprint(stdout, usageText)
		return 0
	}
	if parsed.Version {
		fmt.Fprintln(stdout, versionText)
		return 0
	}

	opLogger, err := obslog.New(parsed.DebugApps || parsed.DebugParserVisits)
	if err != nil {
		fmt.Fprintf(stderr, "quick-lint-js: failed to initialize logging: %v\n", err)
		opLogger = obslog.Nop()
	}
	defer opLogger.Sync()

	for _, w := range parsed.Warnings {
		fmt.Fprintf(stderr, "quick-lint-js: warning: %s\n", w)
	}
	for _, u := range parsed.UnrecognizedOptions {
		fmt.Fprintf(stderr, "quick-lint-js: error: unrecognized option: %s%s\n", u.Flag, optionalSuffix(u.Value, u.Flag))
	}
	if parsed.HasMultipleStdin {
		fmt.Fprintln(stderr, "quick-lint-js: warning: --stdin given more than once")
	}

	if parsed.LSPServer {
		return runLSPServer(opLogger)
	}

	var traceLogger *zap.SugaredLogger
	if parsed.DebugParserVisits {
		traceLogger = opLogger
	}

	results := make([]fileResult, len(parsed.Files))
	var wg sync.WaitGroup
	for i, f := range parsed.Files {
		wg.Add(1)
		go func(i int, f FileJob) {
			defer wg.Done()
			results[i] = lintFile(f, traceLogger, opLogger, stdin)
		}(i, f)
	}
	wg.Wait()

	var allDiagnostics []diag.Diagnostic
	var allRendered []render.Rendered
	hadReadError := false
	for _, r := range results {
		if r.readErr != nil {
			fmt.Fprintf(stderr, "quick-lint-js: error: %v\n", r.readErr)
			hadReadError = true
			continue
		}
		allDiagnostics = append(allDiagnostics, r.diagnostics...)
		allRendered = append(allRendered, r.rendered...)
	}

	printRendered(stdout, parsed.OutputFormat, allRendered)

	exitCode := ExitCode(allDiagnostics, parsed.ExitFailOn)
	if hadReadError {
		return 1
	}
	return exitCode
}

func optionalSuffix(value, flag string) string {
	if value == "" || value == flag {
		return ""
	}
	return fmt.Sprintf(" (value: %s)", value)
}

func printRendered(w io.Writer, format OutputFormat, rendered []render.Rendered) {
	switch format {
	case OutputFormatVimQflistJSON:
		out, err := render.VimQflistJSON(rendered)
		if err != nil {
			fmt.Fprintf(w, "{\"qflist\":[]}")
			return
		}
		fmt.Fprintln(w, out)
	case OutputFormatEmacsLisp:
		fmt.Fprintln(w, render.EmacsLisp(rendered))
	default:
		fmt.Fprint(w, render.GNULike(rendered))
	}
}

const usageText = `usage: quick-lint-js [options] [file...]

quick-lint-js finds bugs in JavaScript and TypeScript programs.

options:
  --language=<id>               default, javascript, javascript-jsx,
                                 experimental-typescript,
                                 experimental-typescript-definition,
                                 experimental-typescript-jsx
  --config-file=<path>          load global-variable overrides
  --path-for-config-search=<path>
  --vim-file-bufnr=<int>
  --output-format=<fmt>         gnu-like, vim-qflist-json, emacs-lisp
  --exit-fail-on=<list>         comma-separated diagnostic kinds/categories
  --lsp-server, --lsp           run as an LSP server
  --snarky
  --debug-parser-visits
  --debug-apps
  --stdin, -                    read a file from standard input
  --help, -h
  --version, -v
`

const versionText = "quick-lint-js (Go reimplementation) 0.1.0"
