package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ltungv/calc/internal/calc"
)

var tokensExpr string

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the tokens of a program, one per line",
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := loadSource(cmd, args, tokensExpr)
		if err != nil {
			return err
		}
		toks, err := calc.NewLexer(source).Tokens()
		for _, tok := range toks {
			fmt.Fprintln(cmd.OutOrStdout(), tok)
		}
		if err != nil {
			return report(cmd.ErrOrStderr(), err)
		}
		return nil
	},
}

func init() {
	sourceFlag(tokensCmd, &tokensExpr)
	rootCmd.AddCommand(tokensCmd)
}
