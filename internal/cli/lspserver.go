package cli

import (
	"github.com/cmstoddard/quick-lint-js/internal/lint"
	"github.com/cmstoddard/quick-lint-js/internal/lsp"
	"go.uber.org/zap"
)

// runLSPServer constructs the internal/lsp.Driver stub per
// SPEC_FULL.md §4.8. It deliberately does not read or write any
// JSON-RPC frames on stdio: spec.md §1 excludes the LSP transport, so
// there is nothing further to drive here until that scope is taken on.
func runLSPServer(logger *zap.SugaredLogger) int {
	driver := lsp.NewDriver(lint.ParserOptions{}, lint.DefaultAnalyzerOptions())
	_ = driver
	logger.Infow("lsp_server_stub_started", "note", "JSON-RPC transport not implemented")
	return 0
}
