package calc

import (
	"fmt"

	"github.com/ltungv/calc/internal/ast"
)

// Interpret executes the statements of program in order against env and
// stops at the first error.
func Interpret(program *ast.Program, env *Environment) error {
	for _, stmt := range program.Statements {
		if _, _, err := EvalAssign(stmt, env); err != nil {
			return err
		}
	}
	return nil
}

// EvalAssign evaluates the right-hand side under the current bindings, then
// binds the target name to the result.
func EvalAssign(stmt *ast.Assign, env *Environment) (string, int64, error) {
	value, err := Eval(stmt.Value, env)
	if err != nil {
		return "", 0, err
	}
	env.Define(stmt.Target.Name, value)
	return stmt.Target.Name, value, nil
}

// Eval evaluates an expression. The environment is only read.
func Eval(expr ast.Expr, env *Environment) (int64, error) {
	return ast.AcceptExpr[int64](expr, &evaluator{env})
}

// evaluator implements ast.ExprVisitor
type evaluator struct {
	env *Environment
}

func (in *evaluator) VisitIntLit(expr *ast.IntLit) (int64, error) {
	return expr.Value, nil
}

func (in *evaluator) VisitVar(expr *ast.Var) (int64, error) {
	value, ok := in.env.Get(expr.Name)
	if !ok {
		return 0, &NameError{expr.Name, expr.Offset}
	}
	return value, nil
}

func (in *evaluator) VisitBinOp(expr *ast.BinOp) (int64, error) {
	lhs, err := ast.AcceptExpr[int64](expr.Left, in)
	if err != nil {
		return 0, err
	}
	rhs, err := ast.AcceptExpr[int64](expr.Right, in)
	if err != nil {
		return 0, err
	}

	switch expr.Op {
	case ast.Add:
		return lhs + rhs, nil
	case ast.Sub:
		return lhs - rhs, nil
	case ast.Mul:
		return lhs * rhs, nil
	case ast.Div:
		if rhs == 0 {
			return 0, &ArithmeticError{expr.Offset, "division by zero"}
		}
		return floorDiv(lhs, rhs), nil
	}
	panic(fmt.Sprintf("calc: unknown binary operator %d", int(expr.Op)))
}

func (in *evaluator) VisitUnaryOp(expr *ast.UnaryOp) (int64, error) {
	operand, err := ast.AcceptExpr[int64](expr.Operand, in)
	if err != nil {
		return 0, err
	}

	switch expr.Op {
	case ast.Pos:
		return operand, nil
	case ast.Neg:
		return -operand, nil
	}
	panic(fmt.Sprintf("calc: unknown unary operator %d", int(expr.Op)))
}

// floorDiv rounds the quotient toward negative infinity, Go's / truncates
// toward zero.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
