package calc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltungv/calc/internal/ast"
)

func TestEvalExpr(t *testing.T) {
	testCases := []struct {
		expr ast.Expr
		eval int64
	}{
		{ast.NewIntLit(3), 3},
		{ast.NewVar("x", 0), 10},
		{ast.NewUnaryOp(ast.Neg, ast.NewIntLit(3)), -3},
		{ast.NewUnaryOp(ast.Pos, ast.NewIntLit(3)), 3},
		{ast.NewUnaryOp(ast.Neg, ast.NewUnaryOp(ast.Neg, ast.NewIntLit(3))), 3},
		{ast.NewBinOp(ast.NewIntLit(2), ast.Add, ast.NewIntLit(3), 0), 5},
		{ast.NewBinOp(ast.NewIntLit(2), ast.Sub, ast.NewIntLit(3), 0), -1},
		{ast.NewBinOp(ast.NewVar("x", 0), ast.Mul, ast.NewIntLit(3), 0), 30},
		{ast.NewBinOp(ast.NewVar("x", 0), ast.Div, ast.NewIntLit(3), 0), 3},
	}

	env := NewEnvironment()
	env.Define("x", 10)

	assert := assert.New(t)
	for _, tc := range testCases {
		value, err := Eval(tc.expr, env)

		assert.NoError(err)
		assert.Equal(tc.eval, value, ast.Print(tc.expr))
	}
}

func TestFloorDivision(t *testing.T) {
	testCases := []struct {
		a, b, q int64
	}{
		{7, 2, 3},
		{-7, 2, -4},
		{7, -2, -4},
		{-7, -2, 3},
		{6, 3, 2},
		{-6, 3, -2},
		{0, 5, 0},
		{-1, 5, -1},
		{1, -5, -1},
		{math.MinInt64, 1, math.MinInt64},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.q, floorDiv(tc.a, tc.b), "%d / %d", tc.a, tc.b)
	}
}

func TestEvalAssign(t *testing.T) {
	assert := assert.New(t)
	env := NewEnvironment()

	name, value, err := EvalAssign(
		ast.NewAssign(ast.NewVar("a", 0), ast.NewIntLit(1)), env)
	assert.NoError(err)
	assert.Equal("a", name)
	assert.Equal(int64(1), value)

	// the right-hand side sees the previous binding
	name, value, err = EvalAssign(
		ast.NewAssign(
			ast.NewVar("a", 0),
			ast.NewBinOp(ast.NewVar("a", 4), ast.Add, ast.NewIntLit(1), 6)),
		env)
	assert.NoError(err)
	assert.Equal("a", name)
	assert.Equal(int64(2), value)
	assert.Equal(map[string]int64{"a": 2}, env.Values())
}

func TestEvalNameError(t *testing.T) {
	env := NewEnvironment()
	_, _, err := EvalAssign(
		ast.NewAssign(
			ast.NewVar("a", 0),
			ast.NewBinOp(ast.NewVar("b", 4), ast.Add, ast.NewIntLit(1), 6)),
		env)

	var nameErr *NameError
	require.True(t, errors.As(err, &nameErr))
	assert.Equal(t, &NameError{"b", 4}, nameErr)
	assert.Equal(t, "NameError: name 'b' is not defined", err.Error())
	assert.Zero(t, env.Len(), "a failed assignment binds nothing")
}

func TestEvalLeftOperandFirst(t *testing.T) {
	// both operands are unbound, the left one is reported
	_, err := Eval(
		ast.NewBinOp(ast.NewVar("x", 0), ast.Div, ast.NewVar("y", 4), 2),
		NewEnvironment())

	assert.Equal(t, &NameError{"x", 0}, err)
}

func TestEvalDivisionByZero(t *testing.T) {
	_, err := Eval(
		ast.NewBinOp(ast.NewIntLit(1), ast.Div, ast.NewIntLit(0), 6),
		NewEnvironment())

	var arithErr *ArithmeticError
	require.True(t, errors.As(err, &arithErr))
	assert.Equal(t, 6, arithErr.Offset)
	assert.Equal(t, "ArithmeticError: division by zero", err.Error())
}

func TestEvalUnknownOperatorPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = Eval(
			ast.NewBinOp(ast.NewIntLit(1), ast.BinaryOperator(42), ast.NewIntLit(1), 0),
			NewEnvironment())
	})
	assert.Panics(t, func() {
		_, _ = Eval(
			ast.NewUnaryOp(ast.UnaryOperator(42), ast.NewIntLit(1)),
			NewEnvironment())
	})
}

func TestInterpretStopsAtFirstError(t *testing.T) {
	program, err := Parse("a = 1 b = 1 / 0 c = 3")
	require.NoError(t, err)

	env := NewEnvironment()
	err = Interpret(program, env)

	var arithErr *ArithmeticError
	assert.True(t, errors.As(err, &arithErr))
	assert.Equal(t, []string{"a"}, env.Names())
}
