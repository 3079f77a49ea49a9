package render

import (
	"encoding/json"

	"github.com/cmstoddard/quick-lint-js/internal/diag"
)

// vimQuickfixEntry mirrors one entry of Vim's setqflist()-compatible
// quickfix list shape: {filename, lnum, col, type, text, nr}.
type vimQuickfixEntry struct {
	Filename string `json:"filename"`
	Lnum     int    `json:"lnum"`
	Col      int    `json:"col"`
	Type     string `json:"type"`
	Text     string `json:"text"`
	Nr       int    `json:"nr"`
}

type vimQuickfixDocument struct {
	Qflist []vimQuickfixEntry `json:"qflist"`
}

// VimQflistJSON formats rendered diagnostics as the JSON document
// quick-lint-js's --output-format=vim-qflist-json feeds to
// setqflist({mode: "r"}). Vim quickfix types are single characters:
// "E" for error, "W" for warning.
func VimQflistJSON(rendered []Rendered) (string, error) {
	entries := make([]vimQuickfixEntry, len(rendered))
	for i, r := range rendered {
		entries[i] = vimQuickfixEntry{
			Filename: r.Path,
			Lnum:     r.Line,
			Col:      r.Column,
			Type:     vimQuickfixType(r.Severity),
			Text:     r.Message,
			Nr:       -1,
		}
	}
	b, err := json.Marshal(vimQuickfixDocument{Qflist: entries})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func vimQuickfixType(sev diag.Severity) string {
	if sev == diag.SeverityWarning {
		return "W"
	}
	return "E"
}
