package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCommand returns a thin cobra.Command wrapping Run. Flag
// parsing is disabled: spec.md §6's sticky/non-sticky, per-file,
// prefix-matched flag semantics have no pflag equivalent, so cobra is
// used only for process framing (argv[0] name, usage grouping under
// --help text written by hand) while Parse does the actual scanning
// over cmd.Flags().Args() (which, with parsing disabled, is just argv).
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "quick-lint-js [options] [file...]",
		Short:                 "Find bugs in JavaScript and TypeScript programs",
		DisableFlagParsing:    true,
		SilenceUsage:          true,
		SilenceErrors:         true,
		Args:                  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode := Run(args, os.Stdin, os.Stdout, os.Stderr)
			if exitCode != 0 {
				cmd.SilenceUsage = true
				return &exitError{code: exitCode}
			}
			return nil
		},
	}
	return cmd
}

// exitError carries a process exit code through cobra's error-return
// path; cmd/quick-lint-js/main.go unwraps it instead of printing it.
type exitError struct{ code int }

func (e *exitError) Error() string { return "" }

// ExitCodeOf extracts the exit code a NewRootCommand().Execute() error
// carries, defaulting to 1 for any other error.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	if ee, ok := err.(*exitError); ok {
		return ee.code
	}
	return 1
}
