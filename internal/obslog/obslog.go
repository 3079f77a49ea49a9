// Package obslog is the ambient, process-level logger: "file not
// found", "config parse error", the CLI driver and LSP stub's own
// operational concerns, distinct from the diagnostic records the core
// emits for problems in the program being linted (spec.md §7's error
// handling design describes that split explicitly). Built on
// go.uber.org/zap, sugared, matching how the pack's service-shaped
// examples construct their loggers.
package obslog

import "go.uber.org/zap"

// New returns a sugared zap logger configured for CLI/LSP use:
// human-readable console output, info level by default. verbose raises
// the level to debug, for --debug-apps and the --debug-parser-visits trace.
func New(verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// Nop returns a logger that discards everything. The CLI driver falls
// back to it when New fails.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
