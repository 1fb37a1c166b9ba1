// Command gapidx is the CLI driver for the gapidx package (component
// C9): it builds an Index over a text file and answers gapped two-
// pattern queries read from stdin.
package main

import (
	"fmt"
	"os"

	"github.com/textidx/gapidx/cmd/gapidx/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gapidx:", err)
		os.Exit(1)
	}
}
