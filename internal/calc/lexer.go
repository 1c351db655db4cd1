package calc

import (
	"unicode"

	"github.com/ltungv/calc/internal/token"
)

// Lexer turns the source into tokens on demand. The next unconsumed token is
// always computed ahead of time so the parser can look at it without
// consuming it. A lexer can only be read once, from the start.
type Lexer struct {
	source    []rune
	start     int
	current   int
	lookahead token.Token
	err       error
}

// NewLexer creates a lexer over the given source and scans its first token
func NewLexer(source string) *Lexer {
	lexer := new(Lexer)
	lexer.source = []rune(source)
	lexer.scan()
	return lexer
}

// Peek returns the next token without consuming it. The EOF token is returned
// once the source is exhausted.
func (lexer *Lexer) Peek() (token.Token, error) {
	return lexer.lookahead, lexer.err
}

// Next consumes and returns the next token. After a lexing error the lexer
// stays on the offending character and keeps returning the same error.
func (lexer *Lexer) Next() (token.Token, error) {
	tok, err := lexer.lookahead, lexer.err
	if err == nil && tok.Kind != token.EOF {
		lexer.scan()
	}
	return tok, err
}

// Tokens drains the lexer and returns every remaining token, EOF excluded.
func (lexer *Lexer) Tokens() ([]token.Token, error) {
	var toks []token.Token
	for {
		tok, err := lexer.Next()
		if err != nil {
			return toks, err
		}
		if tok.Kind == token.EOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// scan computes the lookahead starting from the current position
func (lexer *Lexer) scan() {
	for lexer.hasNext() && unicode.IsSpace(lexer.peek()) {
		lexer.advance()
	}
	lexer.start = lexer.current
	if !lexer.hasNext() {
		lexer.lookahead = token.EOFAt(lexer.current)
		return
	}

	switch r := lexer.advance(); {
	case isDigit(r):
		lexer.consumeWhile(isDigit)
		lexer.emit(token.Int)
	case unicode.IsLetter(r):
		lexer.consumeWhile(isAlphanumeric)
		lexer.emit(token.Id)
	case r == '+', r == '-', r == '*', r == '/':
		lexer.emit(token.Op)
	case r == '=':
		lexer.emit(token.Assign)
	case r == '(', r == ')':
		lexer.emit(token.Paren)
	default:
		lexer.current = lexer.start
		lexer.lookahead = token.Token{}
		lexer.err = &LexError{r, lexer.start}
	}
}

// emit sets the lookahead to the text from `start` to `current`
func (lexer *Lexer) emit(kind token.Kind) {
	text := string(lexer.source[lexer.start:lexer.current])
	lexer.lookahead = token.New(kind, text, lexer.start)
}

func (lexer *Lexer) consumeWhile(predicate func(rune) bool) {
	for lexer.hasNext() && predicate(lexer.peek()) {
		lexer.advance()
	}
}

// hasNext returns true if the lexer has not read past the source length
func (lexer *Lexer) hasNext() bool {
	return lexer.current < len(lexer.source)
}

// advance consumes and returns the rune at the current position
func (lexer *Lexer) advance() rune {
	r := lexer.source[lexer.current]
	lexer.current++
	return r
}

// peek returns the rune at the current position, but does not consume it
func (lexer *Lexer) peek() rune {
	return lexer.source[lexer.current]
}
