package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ltungv/calc/internal/format"
	"github.com/ltungv/calc/internal/watch"
)

var (
	runFormat string
	runWatch  bool
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a program and print the final bindings",
	Long: `Run a program and print the final value of every variable.

Formats:
  text  one "name = value" line per variable, in assignment order
  yaml  a mapping in assignment order
  toml  a table with sorted keys
  json  an object with sorted keys

With --watch the program is run again every time the file is saved, until
interrupted.`,
	Args: usageArgs(cobra.ExactArgs(1)),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runFormat, "format", "f", "", "output format: text, yaml, toml or json (default from config)")
	runCmd.Flags().BoolVarP(&runWatch, "watch", "w", false, "run again when the file changes")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	name := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		name = runFormat
	}
	f, err := format.ParseFormat(name)
	if err != nil {
		return usageError(err)
	}

	path := args[0]
	if !runWatch {
		return runFile(cmd, path, f)
	}
	if path == "-" {
		return usageError(errors.New("--watch needs a file, not standard input"))
	}

	runWatched(cmd, path, f)
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watch.File(ctx, path, logger, func() {
		logger.Info("file changed, running again", "path", path)
		fmt.Fprintln(cmd.OutOrStdout())
		runWatched(cmd, path, f)
	})
}

// runWatched runs the file once, errors are shown and otherwise ignored
func runWatched(cmd *cobra.Command, path string, f format.Format) {
	if err := runFile(cmd, path, f); err != nil {
		printError(cmd.ErrOrStderr(), err)
	}
}
