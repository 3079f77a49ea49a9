package cli

import (
	"strings"

	"github.com/cmstoddard/quick-lint-js/internal/diag"
)

// matchesExitFailOn reports whether d matches one entry of exitFailOn.
// Entries are either a diagnostic Kind's wire name ("Diag_..."), the
// same name without the "Diag_" prefix, or a severity category
// ("error"/"warning"). quick-lint-js itself matches against a
// registry of stable "E0003"-style numeric codes; this package never
// grew that registry (diag.Kind carries no numeric code), so
// --exit-fail-on here only recognizes kind names and categories —
// recorded as an Open Question resolution in DESIGN.md.
func matchesExitFailOn(d diag.Diagnostic, exitFailOn []string) bool {
	name := d.Kind.String()
	bareName := strings.TrimPrefix(name, "Diag_")
	category := "error"
	if d.Kind.Severity() == diag.SeverityWarning {
		category = "warning"
	}
	for _, entry := range exitFailOn {
		if strings.EqualFold(entry, name) || strings.EqualFold(entry, bareName) || strings.EqualFold(entry, category) {
			return true
		}
	}
	return false
}

// ExitCode implements spec.md §6's rule: 0 on no diagnostics or only
// warnings (when exitFailOn is empty); 1 when any diagnostic matches
// exitFailOn, or (with no exitFailOn given) when any diagnostic is an
// error.
func ExitCode(allDiagnostics []diag.Diagnostic, exitFailOn []string) int {
	for _, d := range allDiagnostics {
		if len(exitFailOn) > 0 {
			if matchesExitFailOn(d, exitFailOn) {
				return 1
			}
			continue
		}
		if d.Kind.Severity() == diag.SeverityError {
			return 1
		}
	}
	return 0
}
