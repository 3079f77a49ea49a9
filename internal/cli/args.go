// Package cli implements the argument contract of spec.md §6's "CLI
// surface" collaborator: ordered, stateful scanning of positional file
// arguments interleaved with sticky and non-sticky per-file flags.
// pflag's global flag model has no notion of "this flag's value
// applies only to the next positional argument" or "sticky until
// overridden" — both of which the contract requires — so argument
// scanning is hand-rolled here; internal/cli/root.go wraps it in a
// thin cobra.Command shell for --help/usage text and process wiring.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// Language selects the grammar a file is parsed under, per spec.md §6.
type Language string

const (
	LanguageDefault                    Language = "default"
	LanguageJavaScript                 Language = "javascript"
	LanguageJavaScriptJSX              Language = "javascript-jsx"
	LanguageTypeScript                 Language = "experimental-typescript"
	LanguageTypeScriptDefinition       Language = "experimental-typescript-definition"
	LanguageTypeScriptJSX              Language = "experimental-typescript-jsx"
)

var validLanguages = map[Language]bool{
	LanguageDefault:              true,
	LanguageJavaScript:           true,
	LanguageJavaScriptJSX:        true,
	LanguageTypeScript:           true,
	LanguageTypeScriptDefinition: true,
	LanguageTypeScriptJSX:        true,
}

// OutputFormat selects a internal/render formatter.
type OutputFormat string

const (
	OutputFormatGNULike       OutputFormat = "gnu-like"
	OutputFormatVimQflistJSON OutputFormat = "vim-qflist-json"
	OutputFormatEmacsLisp     OutputFormat = "emacs-lisp"
)

var validOutputFormats = map[OutputFormat]bool{
	OutputFormatGNULike:       true,
	OutputFormatVimQflistJSON: true,
	OutputFormatEmacsLisp:     true,
}

// FileJob is one input to lint, with whatever per-file flags were in
// effect (sticky or not) when its positional argument was scanned.
type FileJob struct {
	Path                 string
	Stdin                bool
	Language             Language
	ConfigFile           string
	HasConfigFile        bool
	PathForConfigSearch  string
	HasPathForConfigSearch bool
	VimFileBufnr         int
	HasVimFileBufnr      bool
}

// UnrecognizedOption is one error_unrecognized_options entry: a flag
// that was present but whose value (or absence of one) was invalid.
type UnrecognizedOption struct {
	Flag  string
	Value string
}

// Parsed is the result of scanning argv per spec.md §6.
type Parsed struct {
	Files            []FileJob
	HasMultipleStdin bool

	OutputFormat    OutputFormat
	sawOutputFormat bool

	ExitFailOn    []string
	sawExitFailOn bool

	LSPServer bool

	Snarky            bool
	DebugParserVisits bool
	DebugApps         bool
	Help              bool
	Version           bool

	sawLanguageFlag bool
	sawConfigFlag   bool
	sawVimBufnrFlag bool

	Warnings             []string
	UnrecognizedOptions  []UnrecognizedOption
}

// abbreviates reports whether arg is a prefix of full longer than two
// bytes; whether the prefix also matches another flag is not checked.
// Per spec.md §6's "--debug-parser-visits (prefix-matched:
// --debug-p, --debug-parser-vis all match)".
func abbreviates(arg, full string) bool {
	return len(arg) > 2 && strings.HasPrefix(full, arg)
}

// splitFlag splits "--name=value" into ("--name", "value", true), or
// returns (arg, "", false) when arg carries no '='.
func splitFlag(arg string) (name, value string, hasValue bool) {
	if i := strings.IndexByte(arg, '='); i >= 0 {
		return arg[:i], arg[i+1:], true
	}
	return arg, "", false
}

// Parse scans argv (not including the program name) per spec.md §6's
// CLI surface contract.
func Parse(argv []string) *Parsed {
	p := &Parsed{OutputFormat: OutputFormatGNULike}

	var pendingLanguage *Language
	var pendingLanguageArg string
	var pendingPathForConfigSearch *string
	var pendingVimFileBufnr *int
	stickyConfigFile := ""
	hasStickyConfigFile := false

	flushPendingLanguage := func() {
		if pendingLanguage != nil {
			p.Warnings = append(p.Warnings, fmt.Sprintf(
				"flag '%s' should be followed by an input file name or --stdin", pendingLanguageArg))
			pendingLanguage = nil
		}
	}

	makeFile := func(path string, stdin bool) FileJob {
		f := FileJob{Path: path, Stdin: stdin, Language: LanguageDefault}
		if pendingLanguage != nil {
			f.Language = *pendingLanguage
			pendingLanguage = nil
		}
		if hasStickyConfigFile {
			f.ConfigFile = stickyConfigFile
			f.HasConfigFile = true
		}
		if pendingPathForConfigSearch != nil {
			f.PathForConfigSearch = *pendingPathForConfigSearch
			f.HasPathForConfigSearch = true
			pendingPathForConfigSearch = nil
		}
		if pendingVimFileBufnr != nil {
			f.VimFileBufnr = *pendingVimFileBufnr
			f.HasVimFileBufnr = true
			pendingVimFileBufnr = nil
		}
		return f
	}

	rawTerminated := false
	for i := 0; i < len(argv); i++ {
		arg := argv[i]

		if rawTerminated {
			p.Files = append(p.Files, makeFile(arg, false))
			continue
		}
		if arg == "--" {
			rawTerminated = true
			continue
		}
		if arg == "--stdin" {
			p.Files = append(p.Files, makeFile("<stdin>", true))
			continue
		}
		if arg == "-" {
			p.Files = append(p.Files, makeFile("-", true))
			continue
		}
		if !strings.HasPrefix(arg, "-") {
			p.Files = append(p.Files, makeFile(arg, false))
			continue
		}

		name, value, hasValue := splitFlag(arg)

		switch {
		case name == "--language":
			p.sawLanguageFlag = true
			if !hasValue {
				p.UnrecognizedOptions = append(p.UnrecognizedOptions, UnrecognizedOption{Flag: name, Value: name})
				continue
			}
			lang := Language(value)
			if !validLanguages[lang] {
				p.UnrecognizedOptions = append(p.UnrecognizedOptions, UnrecognizedOption{Flag: name, Value: value})
				continue
			}
			flushPendingLanguage()
			pendingLanguage = &lang
			pendingLanguageArg = arg

		case name == "--config-file":
			p.sawConfigFlag = true
			if !hasValue {
				p.UnrecognizedOptions = append(p.UnrecognizedOptions, UnrecognizedOption{Flag: name, Value: name})
				continue
			}
			stickyConfigFile = value
			hasStickyConfigFile = true

		case name == "--path-for-config-search":
			if !hasValue {
				p.UnrecognizedOptions = append(p.UnrecognizedOptions, UnrecognizedOption{Flag: name, Value: name})
				continue
			}
			v := value
			pendingPathForConfigSearch = &v

		case name == "--vim-file-bufnr":
			p.sawVimBufnrFlag = true
			if !hasValue {
				p.UnrecognizedOptions = append(p.UnrecognizedOptions, UnrecognizedOption{Flag: name, Value: name})
				continue
			}
			n, err := strconv.Atoi(value)
			if err != nil {
				p.UnrecognizedOptions = append(p.UnrecognizedOptions, UnrecognizedOption{Flag: name, Value: value})
				continue
			}
			pendingVimFileBufnr = &n

		case name == "--output-format":
			p.sawOutputFormat = true
			if !hasValue {
				p.UnrecognizedOptions = append(p.UnrecognizedOptions, UnrecognizedOption{Flag: name, Value: name})
				continue
			}
			fmtVal := OutputFormat(value)
			if !validOutputFormats[fmtVal] {
				p.UnrecognizedOptions = append(p.UnrecognizedOptions, UnrecognizedOption{Flag: name, Value: value})
				continue
			}
			p.OutputFormat = fmtVal

		case name == "--exit-fail-on":
			p.sawExitFailOn = true
			codes := splitNonEmpty(value)
			if !hasValue || len(codes) == 0 {
				p.UnrecognizedOptions = append(p.UnrecognizedOptions, UnrecognizedOption{Flag: name, Value: value})
				continue
			}
			p.ExitFailOn = append(p.ExitFailOn, codes...)

		case name == "--lsp-server" || name == "--lsp":
			p.LSPServer = true

		case name == "--snarky":
			p.Snarky = true

		case name == "--debug-apps":
			p.DebugApps = true

		case name == "--help" || name == "-h":
			p.Help = true

		case name == "--version" || name == "-v":
			p.Version = true

		case name == "--debug-parser-visits" || abbreviates(name, "--debug-parser-visits"):
			p.DebugParserVisits = true

		default:
			p.UnrecognizedOptions = append(p.UnrecognizedOptions, UnrecognizedOption{Flag: name, Value: ""})
		}
	}

	flushPendingLanguage()

	stdinCount := 0
	for _, f := range p.Files {
		if f.Stdin {
			stdinCount++
		}
	}
	p.HasMultipleStdin = stdinCount > 1

	if p.LSPServer {
		if len(p.Files) > 0 {
			p.Warnings = append(p.Warnings, "ignoring file arguments in --lsp-server mode")
		}
		if p.sawConfigFlag {
			p.Warnings = append(p.Warnings, "ignoring --config-file in --lsp-server mode")
		}
		if p.sawOutputFormat {
			p.Warnings = append(p.Warnings, "ignoring --output-format in --lsp-server mode")
		}
		if p.sawLanguageFlag {
			p.Warnings = append(p.Warnings, "ignoring --language in --lsp-server mode")
		}
		if p.sawExitFailOn {
			p.Warnings = append(p.Warnings, "ignoring --exit-fail-on in --lsp-server mode")
		}
		if p.sawVimBufnrFlag {
			p.Warnings = append(p.Warnings, "ignoring --vim-file-bufnr in --lsp-server mode")
		}
	}

	return p
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
