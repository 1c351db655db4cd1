package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintExpr(t *testing.T) {
	testCases := []struct {
		expr Expr
		str  string
	}{
		{NewIntLit(42), "42"},
		{NewIntLit(-3), "-3"},
		{NewVar("ab1", 0), "ab1"},
		{NewUnaryOp(Neg, NewIntLit(5)), "(- 5)"},
		{NewUnaryOp(Neg, NewUnaryOp(Neg, NewIntLit(5))), "(- (- 5))"},
		{NewUnaryOp(Pos, NewVar("x", 1)), "(+ x)"},
		{
			NewBinOp(
				NewIntLit(1),
				Add,
				NewBinOp(NewIntLit(2), Mul, NewIntLit(3), 0),
				0),
			"(+ 1 (* 2 3))",
		},
		{
			NewBinOp(
				NewBinOp(NewIntLit(10), Sub, NewIntLit(3), 0),
				Sub,
				NewIntLit(2),
				0),
			"(- (- 10 3) 2)",
		},
		{NewBinOp(NewVar("a", 0), Div, NewIntLit(2), 0), "(/ a 2)"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.str, Print(tc.expr))
	}
}

func TestPrintStatements(t *testing.T) {
	assert := assert.New(t)

	stmt := NewAssign(NewVar("a", 0), NewBinOp(NewIntLit(1), Add, NewIntLit(2), 6))
	assert.Equal("(= a (+ 1 2))", Print(stmt))

	program := NewProgram([]*Assign{
		stmt,
		NewAssign(NewVar("b", 10), NewUnaryOp(Neg, NewVar("a", 15))),
	})
	assert.Equal("(= a (+ 1 2))\n(= b (- a))", Print(program))
	assert.Equal("", Print(NewProgram(nil)))
}

func TestAcceptExprPanicsOnNil(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = AcceptExpr[string](nil, new(printer))
	})
}

func TestOperatorLookup(t *testing.T) {
	assert := assert.New(t)

	for _, op := range []BinaryOperator{Add, Sub, Mul, Div} {
		got, ok := BinaryOperatorFor(op.String())
		assert.True(ok)
		assert.Equal(op, got)
	}
	_, ok := BinaryOperatorFor("%")
	assert.False(ok)

	for _, op := range []UnaryOperator{Pos, Neg} {
		got, ok := UnaryOperatorFor(op.String())
		assert.True(ok)
		assert.Equal(op, got)
	}
	_, ok = UnaryOperatorFor("*")
	assert.False(ok)
	assert.Equal("?", BinaryOperator(9).String())
	assert.Equal("?", UnaryOperator(9).String())
}
