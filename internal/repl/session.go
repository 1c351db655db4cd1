// Package repl implements the interactive read-eval-print loop. A Session
// owns the variable bindings and interprets one input line at a time, Run
// drives a session from a reader.
package repl

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ltungv/calc/internal/calc"
)

// Banner is printed when an interactive session starts.
const Banner = "Calc REPL: type '!q' to quit, type '!h' for help."

// HelpText is shown by the !h command.
const HelpText = `Enter one assignment per line, for example:
  a = 1 + 2 * 3
  b = -a / 2
Integers only, / rounds toward negative infinity.
An empty line repeats the previous one.
Commands:
  !q  quit
  !h  show this help`

// Reply is the outcome of one input line.
type Reply struct {
	// Text is what should be shown, empty when there is nothing to show.
	Text string
	// Err is set when Text is an error message.
	Err error
	// Info is set when Text is a message about the session itself.
	Info bool
	// Quit is set when the session should end.
	Quit bool
}

// Session keeps the bindings of an interactive session between lines.
type Session struct {
	ID   string
	env  *calc.Environment
	last string
}

func NewSession() *Session {
	return &Session{uuid.NewString(), calc.NewEnvironment(), ""}
}

// Environment returns the bindings of the session.
func (session *Session) Environment() *calc.Environment {
	return session.env
}

// Handle interprets one line. Blank lines repeat the previous non-blank
// line, lines starting with '!' are commands, anything else must be a single
// assignment.
func (session *Session) Handle(line string) Reply {
	if strings.TrimSpace(line) == "" {
		if session.last == "" {
			return Reply{}
		}
		line = session.last
	}
	session.last = line

	if cmd := strings.TrimSpace(line); strings.HasPrefix(cmd, "!") {
		switch cmd {
		case "!q":
			return Reply{Quit: true}
		case "!h":
			return Reply{Text: HelpText, Info: true}
		}
		return Reply{Text: fmt.Sprintf("unknown command: %s", cmd), Info: true}
	}

	name, value, err := session.Eval(line)
	if err != nil {
		return Reply{Text: err.Error(), Err: err}
	}
	return Reply{Text: fmt.Sprintf("%s = %d", name, value)}
}

// Eval parses exactly one assignment from line and executes it against the
// session bindings.
func (session *Session) Eval(line string) (string, int64, error) {
	lexer := calc.NewLexer(line)
	stmt, err := calc.ParseOne(lexer)
	if err != nil {
		return "", 0, err
	}
	if err := calc.NewParser(lexer).ExpectEnd(); err != nil {
		return "", 0, err
	}
	return calc.EvalAssign(stmt, session.env)
}
