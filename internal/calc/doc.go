/*
Package calc implements the calculator language: a lexer, a recursive-descent
parser and a tree-walking evaluator over int64 values.

Grammar

	program --> assign* EOF ;
	assign  --> IDENT "=" add ;
	add     --> mul ( ( "+" | "-" ) mul )* ;
	mul     --> unary ( ( "*" | "/" ) unary )* ;
	unary   --> ( "+" | "-" ) unary
	          | term ;
	term    --> INT | IDENT | "(" add ")" ;

Binary operators are left-associative, unary operators nest to the right so
"--1" is a negation of a negation. Division rounds toward negative infinity:
-7 / 2 is -4.

Errors are returned as *LexError, *SyntaxError, *NameError or
*ArithmeticError and are never recovered from.
*/
package calc
