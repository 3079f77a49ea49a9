// Package lsp is the minimal stub SPEC_FULL.md §4.8 calls for: a
// Driver that feeds document text through lint.Run and remembers the
// resulting diagnostics, with no JSON-RPC framing or textDocument/*
// routing. spec.md §1 excludes the Language Server Protocol transport
// outright; this package exists only so internal/cli's --lsp-server
// branch has a real collaborator to construct, not to implement the
// protocol itself.
package lsp

import (
	"sync"

	"github.com/cmstoddard/quick-lint-js/internal/diag"
	"github.com/cmstoddard/quick-lint-js/internal/lint"
	"github.com/cmstoddard/quick-lint-js/internal/source"
)

// DocumentState is the last-known diagnostics for one open document.
type DocumentState struct {
	Diagnostics []diag.Diagnostic
	Locator     *source.Locator
}

// Driver tracks open documents by URI. It is safe for concurrent use
// from multiple OnDocumentChange calls, matching how a real JSON-RPC
// server would dispatch one goroutine per incoming notification.
type Driver struct {
	mu         sync.Mutex
	documents  map[string]DocumentState
	parserOpts lint.ParserOptions
	analyzerOpts lint.AnalyzerOptions
}

// NewDriver returns a Driver that lints every changed document under
// parserOpts/analyzerOpts.
func NewDriver(parserOpts lint.ParserOptions, analyzerOpts lint.AnalyzerOptions) *Driver {
	return &Driver{
		documents:    make(map[string]DocumentState),
		parserOpts:   parserOpts,
		analyzerOpts: analyzerOpts,
	}
}

// OnDocumentChange re-lints uri's full text and stores the resulting
// diagnostics, replacing whatever was stored for uri before.
func (d *Driver) OnDocumentChange(uri string, text string) DocumentState {
	result := lint.Run(uri, text, d.parserOpts, d.analyzerOpts)
	state := DocumentState{Diagnostics: result.Diagnostics, Locator: result.Locator}

	d.mu.Lock()
	d.documents[uri] = state
	d.mu.Unlock()

	return state
}

// OnDocumentClose drops uri's stored diagnostics.
func (d *Driver) OnDocumentClose(uri string) {
	d.mu.Lock()
	delete(d.documents, uri)
	d.mu.Unlock()
}

// Diagnostics returns the last-known diagnostics for uri, if any.
func (d *Driver) Diagnostics(uri string) (DocumentState, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	state, ok := d.documents[uri]
	return state, ok
}
