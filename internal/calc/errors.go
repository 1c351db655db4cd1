package calc

import (
	"fmt"

	"github.com/ltungv/calc/internal/token"
)

// LexError is returned when the lexer finds a character that does not start
// any token.
type LexError struct {
	Char   rune
	Offset int
}

func (err *LexError) Error() string {
	return fmt.Sprintf(
		"LexError: unexpected character %q at position %d",
		err.Char,
		err.Offset,
	)
}

// SyntaxError is returned when the token stream does not match the grammar.
// Token is the offending token, or the EOF marker when the input ended early.
type SyntaxError struct {
	Token   token.Token
	Message string
}

func NewSyntaxError(tok token.Token, message string) error {
	return &SyntaxError{tok, message}
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("SyntaxError: %s", err.Message)
}

// NameError is returned when an expression reads a variable that was never
// assigned.
type NameError struct {
	Name   string
	Offset int
}

func (err *NameError) Error() string {
	return fmt.Sprintf("NameError: name '%s' is not defined", err.Name)
}

// ArithmeticError is returned by integer division by zero.
type ArithmeticError struct {
	Offset  int
	Message string
}

func (err *ArithmeticError) Error() string {
	return fmt.Sprintf("ArithmeticError: %s", err.Message)
}
