package calc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltungv/calc/internal/ast"
	"github.com/ltungv/calc/internal/token"
)

func TestParseAssign(t *testing.T) {
	program, err := Parse("a = 1 + 2")

	require.NoError(t, err)
	assert.Equal(t, ast.NewProgram([]*ast.Assign{
		ast.NewAssign(
			ast.NewVar("a", 0),
			ast.NewBinOp(ast.NewIntLit(1), ast.Add, ast.NewIntLit(2), 6)),
	}), program)
}

func TestParseExpressions(t *testing.T) {
	testCases := []struct {
		src  string
		tree string
	}{
		{"a = 1", "(= a 1)"},
		{"a = b", "(= a b)"},
		{"a = (1)", "(= a 1)"},
		{"a = ((b))", "(= a b)"},
		{"a = 1 + 2 * 3", "(= a (+ 1 (* 2 3)))"},
		{"a = (1 + 2) * 3", "(= a (* (+ 1 2) 3))"},
		{"a = 10 - 3 - 2", "(= a (- (- 10 3) 2))"},
		{"a = 8 / 4 / 2", "(= a (/ (/ 8 4) 2))"},
		{"a = 2 * 3 / 4", "(= a (/ (* 2 3) 4))"},
		{"a = --5", "(= a (- (- 5)))"},
		{"a = +-+x", "(= a (+ (- (+ x))))"},
		{"a = -2 * -3", "(= a (* (- 2) (- 3)))"},
		{"a = 1 - -1", "(= a (- 1 (- 1)))"},
		{"a = -(1 + 2)", "(= a (- (+ 1 2)))"},
		{"ab1 = 1 - (1 / bc) + 2", "(= ab1 (+ (- 1 (/ 1 bc)) 2))"},
		{"a = 1 b = a", "(= a 1)\n(= b a)"},
		{"a=1\nb=2\nc=a+b", "(= a 1)\n(= b 2)\n(= c (+ a b))"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		program, err := Parse(tc.src)

		assert.NoError(err, tc.src)
		assert.Equal(tc.tree, ast.Print(program), tc.src)
	}
}

func TestParseUnaryChain(t *testing.T) {
	program, err := Parse("a = --5")

	require.NoError(t, err)
	require.Len(t, program.Statements, 1)
	assert.Equal(t,
		ast.NewUnaryOp(ast.Neg, ast.NewUnaryOp(ast.Neg, ast.NewIntLit(5))),
		program.Statements[0].Value)
}

func TestParseEmptyProgram(t *testing.T) {
	assert := assert.New(t)
	for _, src := range []string{"", "  \n "} {
		program, err := Parse(src)

		assert.NoError(err)
		assert.NotNil(program)
		assert.Empty(program.Statements)
	}
}

func TestParseWithErrors(t *testing.T) {
	testCases := []struct {
		src string
		tok token.Token
		msg string
	}{
		{"a = ", token.EOFAt(4),
			"expected int, id, or '(', got end of input"},
		{"a", token.EOFAt(1),
			"expected Assign but got end of input"},
		{"1 = 2", token.New(token.Int, "1", 0),
			"expected Id, got Int '1'"},
		{"a + 1", token.New(token.Op, "+", 2),
			"expected Assign, got Op '+'"},
		{"a = )", token.New(token.Paren, ")", 4),
			"expected int, id, or '(', got ')'"},
		{"a = (1 + 2", token.EOFAt(10),
			"expected ')' but got end of input"},
		{"a = (1 + 2(", token.New(token.Paren, "(", 10),
			"expected ')', got '('"},
		{"a = 1 +", token.EOFAt(7),
			"expected int, id, or '(', got end of input"},
		{"a = 1 2", token.New(token.Int, "2", 6),
			"expected Id, got Int '2'"},
		{"a = b = c", token.New(token.Assign, "=", 6),
			"expected Id, got Assign '='"},
		{"a = 99999999999999999999", token.New(token.Int, "99999999999999999999", 4),
			"integer literal 99999999999999999999 is out of range"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		program, err := Parse(tc.src)

		assert.Nil(program, tc.src)
		var syntaxErr *SyntaxError
		if assert.True(errors.As(err, &syntaxErr), tc.src) {
			assert.Equal(tc.tok, syntaxErr.Token, tc.src)
			assert.Equal(tc.msg, syntaxErr.Message, tc.src)
			assert.Equal("SyntaxError: "+tc.msg, syntaxErr.Error(), tc.src)
		}
	}
}

func TestParsePropagatesLexError(t *testing.T) {
	program, err := Parse("a = 1 + $")

	assert.Nil(t, program)
	assert.Equal(t, &LexError{'$', 8}, err)
}

func TestParseOne(t *testing.T) {
	assert := assert.New(t)
	lexer := NewLexer("a = 1 b = a * 2")

	stmt, err := ParseOne(lexer)
	assert.NoError(err)
	assert.Equal("(= a 1)", ast.Print(stmt))

	parser := NewParser(lexer)
	err = parser.ExpectEnd()
	var syntaxErr *SyntaxError
	assert.True(errors.As(err, &syntaxErr))
	assert.Equal(token.New(token.Id, "b", 6), syntaxErr.Token)
	assert.Equal("expected end of input, got 'b'", syntaxErr.Message)

	stmt, err = parser.ParseAssign()
	assert.NoError(err)
	assert.Equal("(= b (* a 2))", ast.Print(stmt))
	assert.NoError(parser.ExpectEnd())
}
