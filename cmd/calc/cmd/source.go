package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

// sourceFlag registers -e on commands that accept inline source
func sourceFlag(cmd *cobra.Command, expr *string) {
	cmd.Flags().StringVarP(expr, "expr", "e", "", "use the given source instead of a file")
	cmd.Args = usageArgs(cobra.MaximumNArgs(1))
}

// loadSource returns the inline source when given, the file content otherwise
func loadSource(cmd *cobra.Command, args []string, expr string) (string, error) {
	switch {
	case cmd.Flags().Changed("expr") && len(args) > 0:
		return "", usageError(errors.New("give either a file or -e, not both"))
	case cmd.Flags().Changed("expr"):
		return expr, nil
	case len(args) == 0:
		return "", usageError(errors.New("a file or -e is required"))
	}
	return readSource(cmd, args[0])
}
