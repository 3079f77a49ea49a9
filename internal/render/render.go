// Package render turns diag.Diagnostic records into display-ready
// values for one of three output formats, per spec.md §1's "rendering"
// external collaborator and SPEC_FULL.md §4.6. Every function here is a
// pure function of its diagnostic and locator inputs, as spec.md
// requires: no I/O, no global state.
package render

import (
	"github.com/cmstoddard/quick-lint-js/internal/diag"
	"github.com/cmstoddard/quick-lint-js/internal/source"
)

// Rendered is one diagnostic translated to display coordinates: a
// (line, column) from the diagnostic's primary label, its severity, and
// a human-readable message, ready for any of the three renderers below.
type Rendered struct {
	Path     string
	Line     int
	Column   int
	Severity diag.Severity
	Kind     string
	Message  string
}

// One renders a single diagnostic. path is the display name to attach
// (a filename, or "<stdin>"); locator must have been built over the
// same buffer the diagnostic's ranges were recorded against.
func One(d diag.Diagnostic, path string, locator *source.Locator) Rendered {
	pos := locator.Position(d.Primary().Begin)
	return Rendered{
		Path:     path,
		Line:     pos.Line,
		Column:   pos.Column + 1, // spec.md/quick-lint-js columns are 1-based
		Severity: d.Kind.Severity(),
		Kind:     d.Kind.String(),
		Message:  message(d),
	}
}

// All renders every diagnostic in diags, preserving order.
func All(diags []diag.Diagnostic, path string, locator *source.Locator) []Rendered {
	out := make([]Rendered, len(diags))
	for i, d := range diags {
		out[i] = One(d, path, locator)
	}
	return out
}

func severityWord(sev diag.Severity) string {
	if sev == diag.SeverityWarning {
		return "warning"
	}
	return "error"
}
