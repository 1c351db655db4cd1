package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ltungv/calc/internal/repl"
	"github.com/ltungv/calc/internal/tui"
)

var (
	replTUI    bool
	replPrompt string
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Start an interactive session. Each line must be a single assignment,
its result is printed right away and variables are kept between lines.

  !q   quit
  !h   show help

An empty line repeats the previous one.`,
	Args: usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt := cfg.REPL.Prompt
		if cmd.Flags().Changed("prompt") {
			prompt = replPrompt
		}
		return runREPL(cmd, prompt, replTUI || cfg.REPL.TUI)
	},
}

func init() {
	replCmd.Flags().BoolVar(&replTUI, "tui", false, "use the full-screen interface")
	replCmd.Flags().StringVar(&replPrompt, "prompt", "", "prompt shown before each line (default from config)")
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, prompt string, fullScreen bool) error {
	styles := repl.PlainStyles()
	if cfg.REPL.Color {
		styles = repl.DefaultStyles()
	}
	session := repl.NewSession()

	if fullScreen {
		logger.Debug("starting full-screen session", "session", session.ID)
		return tui.Run(session, tui.Options{
			Prompt: prompt,
			Banner: cfg.REPL.Banner,
			Styles: styles,
			Plain:  !cfg.REPL.Color,
		})
	}
	return repl.Run(cmd.InOrStdin(), cmd.OutOrStdout(), session, repl.Options{
		Prompt: prompt,
		Banner: cfg.REPL.Banner,
		Styles: styles,
		Logger: logger,
	})
}
