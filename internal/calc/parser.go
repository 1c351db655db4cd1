package calc

import (
	"fmt"
	"strconv"

	"github.com/ltungv/calc/internal/ast"
	"github.com/ltungv/calc/internal/token"
)

// Parser builds the syntax tree from the tokens of a lexer, following the
// grammar documented on the package. It stops at the first error and never
// returns a partial tree.
type Parser struct {
	lexer *Lexer
}

// NewParser creates a new parser reading from the given lexer
func NewParser(lexer *Lexer) *Parser {
	return &Parser{lexer}
}

// Parse consumes every remaining token.
//
// program --> assign* EOF ;
func (parser *Parser) Parse() (*ast.Program, error) {
	statements := make([]*ast.Assign, 0)
	for {
		tok, err := parser.lexer.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.EOF {
			return ast.NewProgram(statements), nil
		}
		stmt, err := parser.assign()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
}

// ParseAssign parses exactly one assignment, leaving the following tokens in
// the lexer.
func (parser *Parser) ParseAssign() (*ast.Assign, error) {
	return parser.assign()
}

// ExpectEnd fails unless every token has been consumed.
func (parser *Parser) ExpectEnd() error {
	tok, err := parser.lexer.Peek()
	if err != nil {
		return err
	}
	if tok.Kind != token.EOF {
		return NewSyntaxError(
			tok,
			fmt.Sprintf("expected end of input, got %s", describe(tok)),
		)
	}
	return nil
}

// assign --> IDENT "=" add ;
func (parser *Parser) assign() (*ast.Assign, error) {
	name, err := parser.expect(token.Id, "")
	if err != nil {
		return nil, err
	}
	if _, err := parser.expect(token.Assign, ""); err != nil {
		return nil, err
	}
	value, err := parser.add()
	if err != nil {
		return nil, err
	}
	return ast.NewAssign(ast.NewVar(name.Text, name.Offset), value), nil
}

// Creates a left-associative nested tree of binary operator nodes. Match a
// higher precedence rule `mul` if does not hit "+" or "-".
//
// add --> mul ( ( "+" | "-" ) mul )* ;
func (parser *Parser) add() (ast.Expr, error) {
	return parser.binary(parser.mul, "+", "-")
}

// mul --> unary ( ( "*" | "/" ) unary )* ;
func (parser *Parser) mul() (ast.Expr, error) {
	return parser.binary(parser.unary, "*", "/")
}

// binary folds operands parsed by next while the lookahead is one of ops
func (parser *Parser) binary(next func() (ast.Expr, error), ops ...string) (ast.Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok, err := parser.match(token.Op, ops...)
		if err != nil {
			return nil, err
		}
		if !ok {
			return expr, nil
		}
		right, err := next()
		if err != nil {
			return nil, err
		}
		op, ok := ast.BinaryOperatorFor(tok.Text)
		if !ok {
			panic(fmt.Sprintf("calc: unknown binary operator %q", tok.Text))
		}
		expr = ast.NewBinOp(expr, op, right, tok.Offset)
	}
}

// unary --> ( "+" | "-" ) unary
//         | term ;
func (parser *Parser) unary() (ast.Expr, error) {
	tok, ok, err := parser.match(token.Op, "+", "-")
	if err != nil {
		return nil, err
	}
	if !ok {
		return parser.term()
	}
	operand, err := parser.unary()
	if err != nil {
		return nil, err
	}
	op, ok := ast.UnaryOperatorFor(tok.Text)
	if !ok {
		panic(fmt.Sprintf("calc: unknown unary operator %q", tok.Text))
	}
	return ast.NewUnaryOp(op, operand), nil
}

// term --> INT | IDENT | "(" add ")" ;
func (parser *Parser) term() (ast.Expr, error) {
	tok, ok, err := parser.match(token.Int)
	if err != nil {
		return nil, err
	}
	if ok {
		value, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, NewSyntaxError(
				tok,
				fmt.Sprintf("integer literal %s is out of range", tok.Text),
			)
		}
		return ast.NewIntLit(value), nil
	}

	if tok, ok, err = parser.match(token.Id); err != nil {
		return nil, err
	} else if ok {
		return ast.NewVar(tok.Text, tok.Offset), nil
	}

	if _, ok, err = parser.match(token.Paren, "("); err != nil {
		return nil, err
	} else if ok {
		expr, err := parser.add()
		if err != nil {
			return nil, err
		}
		if _, err := parser.expect(token.Paren, ")"); err != nil {
			return nil, err
		}
		return expr, nil
	}

	tok, err = parser.lexer.Peek()
	if err != nil {
		return nil, err
	}
	return nil, NewSyntaxError(
		tok,
		fmt.Sprintf("expected int, id, or '(', got %s", describe(tok)),
	)
}

// match consumes the lookahead if it has the given kind and one of the given
// texts (any text when none is given).
func (parser *Parser) match(kind token.Kind, texts ...string) (token.Token, bool, error) {
	tok, err := parser.lexer.Peek()
	if err != nil {
		return token.Token{}, false, err
	}
	if tok.Kind != kind {
		return token.Token{}, false, nil
	}
	if len(texts) == 0 {
		return parser.consume()
	}
	for _, text := range texts {
		if tok.Text == text {
			return parser.consume()
		}
	}
	return token.Token{}, false, nil
}

// expect consumes the lookahead or fails with a syntax error describing what
// was expected.
func (parser *Parser) expect(kind token.Kind, text string) (token.Token, error) {
	tok, err := parser.lexer.Peek()
	if err != nil {
		return token.Token{}, err
	}
	want := kind.String()
	if text != "" {
		want = fmt.Sprintf("'%s'", text)
	}
	switch {
	case tok.Kind == token.EOF:
		return token.Token{}, NewSyntaxError(
			tok,
			fmt.Sprintf("expected %s but got end of input", want),
		)
	case tok.Kind != kind:
		return token.Token{}, NewSyntaxError(
			tok,
			fmt.Sprintf("expected %s, got %s %s", want, tok.Kind, describe(tok)),
		)
	case !tok.Is(kind, text):
		return token.Token{}, NewSyntaxError(
			tok,
			fmt.Sprintf("expected %s, got %s", want, describe(tok)),
		)
	}
	return parser.lexer.Next()
}

func (parser *Parser) consume() (token.Token, bool, error) {
	tok, err := parser.lexer.Next()
	if err != nil {
		return token.Token{}, false, err
	}
	return tok, true, nil
}

func describe(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of input"
	}
	return fmt.Sprintf("'%s'", tok.Text)
}
