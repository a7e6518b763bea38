package main

type Stmt interface{}

type DeclStmt struct {
	Name     Token
	DeclType Token
}

type AssignStmt struct {
	Name  Token
	Value Expr
}

type OutputStmt struct {
	Value Expr
}

type IfStmt struct {
	Left     Expr
	Operator Token
	Right    Expr
	Body     Stmt
}

// Expr is a flat left-to-right chain of terms: HL's only binary
// arithmetic operators are `+` and `-`, so there is no precedence and
// no nesting. Terms holds one more element than Operators.
type Expr struct {
	Terms     []Token
	Operators []Token
}
