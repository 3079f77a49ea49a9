package render

import (
	"fmt"
	"strings"
)

// EmacsLisp formats rendered diagnostics as a single Emacs Lisp list
// of (list PATH LINE COLUMN TYPE MESSAGE) entries, for
// --output-format=emacs-lisp (quick-lint-js's flymake/flycheck
// integrations read this directly with `read`).
func EmacsLisp(rendered []Rendered) string {
	var b strings.Builder
	b.WriteString("(")
	for i, r := range rendered {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "(list %s %d %d %s %s)",
			emacsLispString(r.Path), r.Line, r.Column,
			emacsLispSymbol(severityWord(r.Severity)), emacsLispString(r.Message))
	}
	b.WriteString(")")
	return b.String()
}

func emacsLispString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

func emacsLispSymbol(s string) string {
	return "'" + s
}
