package calc

import "github.com/ltungv/calc/internal/ast"

// Resolver walks a program without evaluating it and collects every read of
// a variable that no earlier statement assigns. A statement's own target is
// bound only after its right-hand side.
type Resolver struct {
	defined map[string]bool
	errors  []*NameError
}

func NewResolver() *Resolver {
	return &Resolver{make(map[string]bool), nil}
}

// Resolve returns the unbound references of program in source order.
func Resolve(program *ast.Program) []*NameError {
	return NewResolver().Resolve(program)
}

func (resolver *Resolver) Resolve(program *ast.Program) []*NameError {
	for _, stmt := range program.Statements {
		resolver.resolveExpr(stmt.Value)
		resolver.defined[stmt.Target.Name] = true
	}
	return resolver.errors
}

func (resolver *Resolver) resolveExpr(expr ast.Expr) {
	// the resolver visitor never fails
	_, _ = ast.AcceptExpr[struct{}](expr, resolver)
}

func (resolver *Resolver) VisitIntLit(expr *ast.IntLit) (struct{}, error) {
	return struct{}{}, nil
}

func (resolver *Resolver) VisitVar(expr *ast.Var) (struct{}, error) {
	if !resolver.defined[expr.Name] {
		resolver.errors = append(resolver.errors, &NameError{expr.Name, expr.Offset})
	}
	return struct{}{}, nil
}

func (resolver *Resolver) VisitBinOp(expr *ast.BinOp) (struct{}, error) {
	resolver.resolveExpr(expr.Left)
	resolver.resolveExpr(expr.Right)
	return struct{}{}, nil
}

func (resolver *Resolver) VisitUnaryOp(expr *ast.UnaryOp) (struct{}, error) {
	resolver.resolveExpr(expr.Operand)
	return struct{}{}, nil
}
