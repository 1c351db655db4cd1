package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ltungv/calc/internal/calc"
)

var checkExpr string

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Report syntax errors and names used before assignment",
	Long: `Check a program without running it. Every read of a variable that no
earlier statement assigns is reported, not only the first one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := loadSource(cmd, args, checkExpr)
		if err != nil {
			return err
		}
		program, err := calc.Parse(source)
		if err != nil {
			return report(cmd.ErrOrStderr(), err)
		}

		unbound := calc.Resolve(program)
		if len(unbound) == 0 {
			return nil
		}
		reporter := calc.NewSimpleReporter(cmd.ErrOrStderr())
		for _, err := range unbound {
			reporter.Report(err)
		}
		return &exitError{
			code:     exitStatic,
			err:      fmt.Errorf("%d unbound name(s)", len(unbound)),
			reported: true,
		}
	},
}

func init() {
	sourceFlag(checkCmd, &checkExpr)
	rootCmd.AddCommand(checkCmd)
}
