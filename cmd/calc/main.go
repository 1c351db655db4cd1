// Command calc evaluates integer assignment programs, from a file or
// interactively.
package main

import (
	"os"

	"github.com/ltungv/calc/cmd/calc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
