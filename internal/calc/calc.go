package calc

import (
	"unicode"

	"github.com/ltungv/calc/internal/ast"
)

// Run parses and evaluates a whole program in a fresh environment and returns
// the final value of every assigned variable. The first lexing, syntax, name
// or arithmetic error aborts the run.
func Run(source string) (map[string]int64, error) {
	env, err := Execute(source)
	if err != nil {
		return nil, err
	}
	return env.Values(), nil
}

// Execute is Run but returns the environment itself, which remembers the
// order in which names were first assigned.
func Execute(source string) (*Environment, error) {
	program, err := Parse(source)
	if err != nil {
		return nil, err
	}
	env := NewEnvironment()
	if err := Interpret(program, env); err != nil {
		return nil, err
	}
	return env, nil
}

// Parse parses a whole program.
func Parse(source string) (*ast.Program, error) {
	return NewParser(NewLexer(source)).Parse()
}

// ParseOne parses exactly one assignment from the current state of the lexer.
func ParseOne(lexer *Lexer) (*ast.Assign, error) {
	return NewParser(lexer).ParseAssign()
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || isDigit(r)
}
