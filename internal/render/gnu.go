package render

import "fmt"

// GNULike formats each Rendered the way GCC/Clang format diagnostics:
// "path:line:col: severity: message [Kind]". This is quick-lint-js's
// default --output-format.
func GNULike(rendered []Rendered) string {
	out := ""
	for _, r := range rendered {
		out += fmt.Sprintf("%s:%d:%d: %s: %s [%s]\n",
			r.Path, r.Line, r.Column, severityWord(r.Severity), r.Message, r.Kind)
	}
	return out
}
