package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ltungv/calc/internal/calc"
	"github.com/ltungv/calc/internal/config"
	"github.com/ltungv/calc/internal/format"
	"github.com/ltungv/calc/internal/logging"
)

var (
	cfgFile string
	verbose bool

	// Settings resolved before any command runs
	cfg    = config.Default()
	logger = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "calc [file]",
	Short: "Evaluate integer assignment programs",
	Long: `calc evaluates programs made of assignments over 64-bit integers.

  a = 1 + 2 * 3
  b = -a / 2

With a file argument the program is run and the final value of every
variable is printed, '-' reads the program from standard input. Without
arguments an interactive session is started.

Exit status:
  0   success
  1   I/O or configuration failure
  64  invalid usage
  65  lexical or syntax error
  70  undefined name or division by zero`,
	Args:              usageArgs(cobra.MaximumNArgs(1)),
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			f, err := format.ParseFormat(cfg.Output.Format)
			if err != nil {
				return usageError(err)
			}
			return runFile(cmd, args[0], f)
		}
		return runREPL(cmd, cfg.REPL.Prompt, cfg.REPL.TUI)
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the command line and prints errors that were not reported yet.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: calc.toml or ~/.config/calc/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(err)
	})
}

// setup loads the configuration and builds the logger
func setup(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path, _ = config.Discover(config.SearchPaths())
	}

	loaded := config.Default()
	if path != "" {
		var err error
		if loaded, err = config.Load(path); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if err := loaded.ApplyEnv(os.LookupEnv); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	cfg = loaded
	logger = logging.New(cmd.ErrOrStderr(), cfg.Log, verbose)
	if path != "" {
		logger.Debug("loaded config", "path", path)
	}
	return nil
}

// readSource reads a whole program, from standard input when path is "-"
func readSource(cmd *cobra.Command, path string) (string, error) {
	var (
		content []byte
		err     error
	)
	if path == "-" {
		content, err = io.ReadAll(cmd.InOrStdin())
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(content), nil
}

// runFile runs the program at path and prints its bindings
func runFile(cmd *cobra.Command, path string, f format.Format) error {
	source, err := readSource(cmd, path)
	if err != nil {
		return err
	}

	start := time.Now()
	program, err := calc.Parse(source)
	if err != nil {
		return report(cmd.ErrOrStderr(), err)
	}
	env := calc.NewEnvironment()
	if err := calc.Interpret(program, env); err != nil {
		return report(cmd.ErrOrStderr(), err)
	}
	logger.Debug("ran program",
		slog.String("path", path),
		slog.Int("statements", len(program.Statements)),
		slog.Duration("duration", time.Since(start)))

	return format.Encode(cmd.OutOrStdout(), env, f)
}
