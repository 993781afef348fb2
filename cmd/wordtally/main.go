// Command wordtally counts words from standard input and answers lookups
// against the resulting tally.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/wordtally/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
