package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ltungv/calc/internal/calc"
)

// Exit statuses, following sysexits.h
const (
	exitFailure = 1
	exitUsage   = 64
	exitStatic  = 65
	exitRuntime = 70
)

// exitError carries the process status for err. Reported errors have already
// been shown to the user.
type exitError struct {
	code     int
	err      error
	reported bool
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// ExitCode returns the process status for an error returned by Execute.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	return exitFailure
}

func usageError(err error) error {
	return &exitError{code: exitUsage, err: err}
}

// usageArgs turns argument validation failures into usage errors
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

// report shows a language error through a reporter and picks the status
// matching its kind.
func report(w io.Writer, err error) error {
	reporter := calc.NewSimpleReporter(w)
	reporter.Report(err)
	code := exitStatic
	if reporter.HadRuntimeError() {
		code = exitRuntime
	}
	return &exitError{code: code, err: err, reported: true}
}

func printError(w io.Writer, err error) {
	var exitErr *exitError
	if errors.As(err, &exitErr) && exitErr.reported {
		return
	}
	fmt.Fprintf(w, "calc: %v\n", err)
	if ExitCode(err) == exitUsage {
		fmt.Fprintln(w, "Run 'calc --help' for usage.")
	}
}
