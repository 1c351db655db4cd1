package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders a node as a parenthesized prefix expression, one line per
// statement for programs.
//
//	a = 1 + 2 * -b   -->   (= a (+ 1 (* 2 (- b))))
func Print(node Node) string {
	printer := new(printer)
	switch node := node.(type) {
	case *Program:
		lines := make([]string, 0, len(node.Statements))
		for _, stmt := range node.Statements {
			lines = append(lines, printer.assign(stmt))
		}
		return strings.Join(lines, "\n")
	case *Assign:
		return printer.assign(node)
	case Expr:
		return printer.expr(node)
	}
	panic(fmt.Sprintf("ast: unknown node %T", node))
}

type printer struct{}

func (printer *printer) assign(stmt *Assign) string {
	return fmt.Sprintf("(= %s %s)", stmt.Target.Name, printer.expr(stmt.Value))
}

func (printer *printer) expr(expr Expr) string {
	// printing never fails
	s, _ := AcceptExpr[string](expr, printer)
	return s
}

func (printer *printer) VisitIntLit(expr *IntLit) (string, error) {
	return strconv.FormatInt(expr.Value, 10), nil
}

func (printer *printer) VisitVar(expr *Var) (string, error) {
	return expr.Name, nil
}

func (printer *printer) VisitBinOp(expr *BinOp) (string, error) {
	return fmt.Sprintf(
		"(%s %s %s)",
		expr.Op,
		printer.expr(expr.Left),
		printer.expr(expr.Right),
	), nil
}

func (printer *printer) VisitUnaryOp(expr *UnaryOp) (string, error) {
	return fmt.Sprintf("(%s %s)", expr.Op, printer.expr(expr.Operand)), nil
}
