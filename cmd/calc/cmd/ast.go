package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ltungv/calc/internal/ast"
	"github.com/ltungv/calc/internal/calc"
)

var astExpr string

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Print the syntax tree of a program",
	Long: `Print the syntax tree of a program as prefix expressions, one
statement per line.

  a = 1 + 2 * -b   -->   (= a (+ 1 (* 2 (- b))))`,
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := loadSource(cmd, args, astExpr)
		if err != nil {
			return err
		}
		program, err := calc.Parse(source)
		if err != nil {
			return report(cmd.ErrOrStderr(), err)
		}
		if len(program.Statements) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), ast.Print(program))
		}
		return nil
	},
}

func init() {
	sourceFlag(astCmd, &astExpr)
	rootCmd.AddCommand(astCmd)
}
