package repl

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/ltungv/calc/internal/logging"
)

// Options control the line-mode loop.
type Options struct {
	Prompt string
	Banner bool
	Styles Styles
	Logger *slog.Logger
}

// Run reads lines from in and writes replies to out until the session quits
// or in is exhausted.
func Run(in io.Reader, out io.Writer, session *Session, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	logger = logger.With("session", session.ID)
	logger.Debug("repl session started")

	if opts.Banner {
		fmt.Fprintln(out, Banner)
	}

	s := bufio.NewScanner(in)
	s.Split(bufio.ScanLines)
	lines := 0
	for {
		fmt.Fprint(out, opts.Prompt)
		if !s.Scan() {
			break
		}
		lines++
		reply := session.Handle(s.Text())
		if reply.Quit {
			break
		}
		if reply.Err != nil {
			logger.Debug("line failed", "line", lines, "error", reply.Err)
		}
		if reply.Text != "" {
			fmt.Fprintln(out, opts.Styles.Render(reply))
		}
	}

	logger.Debug("repl session ended",
		"lines", lines,
		"variables", session.Environment().Len())
	return s.Err()
}
