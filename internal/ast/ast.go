// Package ast defines the syntax tree produced by the parser. The set of node
// types is closed: only this package can implement Node and Expr.
package ast

//go:generate go run ../cmd/ast_codegen .

// Node is implemented by every syntax tree node.
type Node interface {
	node()
}

// Program is the root of a parsed source, it owns its statements.
type Program struct {
	Statements []*Assign
}

func NewProgram(statements []*Assign) *Program {
	return &Program{statements}
}

// Assign binds the value of an expression to a variable name.
type Assign struct {
	Target *Var
	Value  Expr
}

func NewAssign(target *Var, value Expr) *Assign {
	return &Assign{target, value}
}

func (*Program) node() {}
func (*Assign) node()  {}

// BinaryOperator is the operator of a BinOp
type BinaryOperator int

const (
	Add BinaryOperator = iota
	Sub
	Mul
	Div
)

// BinaryOperatorFor returns the operator spelled by text.
func BinaryOperatorFor(text string) (BinaryOperator, bool) {
	switch text {
	case "+":
		return Add, true
	case "-":
		return Sub, true
	case "*":
		return Mul, true
	case "/":
		return Div, true
	}
	return 0, false
}

func (op BinaryOperator) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	}
	return "?"
}

// UnaryOperator is the operator of a UnaryOp
type UnaryOperator int

const (
	Pos UnaryOperator = iota
	Neg
)

// UnaryOperatorFor returns the prefix operator spelled by text.
func UnaryOperatorFor(text string) (UnaryOperator, bool) {
	switch text {
	case "+":
		return Pos, true
	case "-":
		return Neg, true
	}
	return 0, false
}

func (op UnaryOperator) String() string {
	switch op {
	case Pos:
		return "+"
	case Neg:
		return "-"
	}
	return "?"
}
