// Command quick-lint-js lints JavaScript and TypeScript source files
// and prints diagnostics in one of three formats. See internal/cli for
// the full flag contract.
package main

import (
	"fmt"
	"os"

	"github.com/cmstoddard/quick-lint-js/internal/cli"
)

func main() {
	root := cli.NewRootCommand()
	err := root.Execute()
	if err != nil && err.Error() != "" {
		fmt.Fprintln(os.Stderr, "quick-lint-js:", err)
	}
	os.Exit(cli.ExitCodeOf(err))
}
