package main

import (
	"fmt"
	"io"
)

type execState int

const (
	stateExpectStatement execState = iota
	stateInDeclaration
	stateInAssignment
	stateInOutput
	stateInConditionalGuard
	stateInConditionalBody
	stateDone
)

func NewExecutor(tokens []Token, env *Environment, reporter *Reporter, stdOut io.Writer) *Executor {
	return &Executor{tokens: tokens, env: env, reporter: reporter, stdOut: stdOut}
}

// Executor runs the token stream one statement at a time. Each
// statement is parsed in full, then executed; a diagnostic abandons
// only the current statement and execution resumes at the next ';'.
type Executor struct {
	tokens   []Token
	current  int
	state    execState
	env      *Environment
	reporter *Reporter
	stdOut   io.Writer
}

func (x *Executor) Execute() {
	for x.state != stateDone {
		switch x.state {
		case stateExpectStatement:
			x.dispatch()
		case stateInDeclaration:
			x.finish(x.declaration())
		case stateInAssignment:
			x.finish(x.assignment())
		case stateInOutput:
			x.finish(x.output())
		case stateInConditionalGuard:
			x.finish(x.conditional())
		}
	}
}

func (x *Executor) dispatch() {
	switch {
	case x.isAtEnd():
		x.state = stateDone
	case x.check(TokenIdentifier) && x.checkNext(TokenColon):
		x.state = stateInDeclaration
	case x.check(TokenIdentifier) && x.checkNext(TokenAssign):
		x.state = stateInAssignment
	case x.check(TokenOutput):
		x.state = stateInOutput
	case x.check(TokenIf):
		x.state = stateInConditionalGuard
	case x.check(TokenIdentifier):
		x.reporter.report(CategorySyntax, x.peek().Start, "expect ':' or ':=' after '%s'", x.peek().Lexeme)
		x.synchronize()
	default:
		x.reporter.report(CategorySyntax, x.peek().Start, "expect statement, but got %s", x.describe(x.peek()))
		x.synchronize()
	}
}

// finish applies the recovery transition: a syntax diagnostic means the
// statement's tokens were not fully consumed, so skip to the next
// boundary. Type and runtime diagnostics surface after the parse, with
// the cursor already past the ';'.
func (x *Executor) finish(err error) {
	if err != nil {
		x.reporter.add(err)
		if diagnostic, ok := err.(Diagnostic); ok && diagnostic.Category == CategorySyntax {
			x.synchronize()
		}
	}
	x.state = stateExpectStatement
}

func (x *Executor) declaration() error {
	stmt, err := x.parseDeclaration()
	if err != nil {
		return err
	}
	return x.run(stmt)
}

func (x *Executor) assignment() error {
	stmt, err := x.parseAssignment()
	if err != nil {
		return err
	}
	return x.run(stmt)
}

func (x *Executor) output() error {
	stmt, err := x.parseOutput()
	if err != nil {
		return err
	}
	return x.run(stmt)
}

func (x *Executor) conditional() error {
	stmt, err := x.parseConditional()
	if err != nil {
		return err
	}
	return x.run(stmt)
}

func (x *Executor) parseConditional() (Stmt, error) {
	if _, err := x.consume(TokenIf, "expect 'if'"); err != nil {
		return nil, err
	}
	if _, err := x.consume(TokenLeftParen, "expect '(' after 'if'"); err != nil {
		return nil, err
	}
	left, err := x.expression()
	if err != nil {
		return nil, err
	}
	operator, err := x.comparisonOperator()
	if err != nil {
		return nil, err
	}
	right, err := x.expression()
	if err != nil {
		return nil, err
	}
	if _, err := x.consume(TokenRightParen, "expect ')' after condition"); err != nil {
		return nil, err
	}

	x.state = stateInConditionalBody
	body, err := x.bodyStatement()
	if err != nil {
		return nil, err
	}
	return IfStmt{Left: left, Operator: operator, Right: right, Body: body}, nil
}

// bodyStatement parses the single statement guarded by a conditional
// without executing it. Another conditional is not a valid body.
func (x *Executor) bodyStatement() (Stmt, error) {
	switch {
	case x.check(TokenIf):
		return nil, errorAt(CategorySyntax, x.peek().Start, "'if' cannot be the body of another 'if'")
	case x.check(TokenIdentifier) && x.checkNext(TokenColon):
		return x.parseDeclaration()
	case x.check(TokenIdentifier) && x.checkNext(TokenAssign):
		return x.parseAssignment()
	case x.check(TokenOutput):
		return x.parseOutput()
	default:
		return nil, errorAt(CategorySyntax, x.peek().Start, "expect statement, but got %s", x.describe(x.peek()))
	}
}

func (x *Executor) parseDeclaration() (Stmt, error) {
	name, err := x.consume(TokenIdentifier, "expect variable name")
	if err != nil {
		return nil, err
	}
	if _, err := x.consume(TokenColon, "expect ':' after variable name"); err != nil {
		return nil, err
	}
	if !x.match(TokenInteger, TokenDouble) {
		return nil, errorAt(CategorySyntax, x.peek().Start, "expect type name after ':', but got %s", x.describe(x.peek()))
	}
	declType := x.previous()
	if _, err := x.consume(TokenSemicolon, "expect ';' after declaration"); err != nil {
		return nil, err
	}
	return DeclStmt{Name: name, DeclType: declType}, nil
}

func (x *Executor) parseAssignment() (Stmt, error) {
	name, err := x.consume(TokenIdentifier, "expect variable name")
	if err != nil {
		return nil, err
	}
	if _, err := x.consume(TokenAssign, "expect ':=' after variable name"); err != nil {
		return nil, err
	}
	value, err := x.expression()
	if err != nil {
		return nil, err
	}
	if _, err := x.consume(TokenSemicolon, "expect ';' after assignment"); err != nil {
		return nil, err
	}
	return AssignStmt{Name: name, Value: value}, nil
}

func (x *Executor) parseOutput() (Stmt, error) {
	if _, err := x.consume(TokenOutput, "expect 'output'"); err != nil {
		return nil, err
	}
	if _, err := x.consume(TokenShift, "expect '<<' after 'output'"); err != nil {
		return nil, err
	}
	value, err := x.expression()
	if err != nil {
		return nil, err
	}
	if _, err := x.consume(TokenSemicolon, "expect ';' after output statement"); err != nil {
		return nil, err
	}
	return OutputStmt{Value: value}, nil
}

func (x *Executor) expression() (Expr, error) {
	var expr Expr
	term, err := x.term()
	if err != nil {
		return Expr{}, err
	}
	expr.Terms = append(expr.Terms, term)

	for x.match(TokenPlus, TokenMinus) {
		expr.Operators = append(expr.Operators, x.previous())
		term, err := x.term()
		if err != nil {
			return Expr{}, err
		}
		expr.Terms = append(expr.Terms, term)
	}
	return expr, nil
}

func (x *Executor) term() (Token, error) {
	if x.match(TokenIdentifier, TokenIntegerLiteral, TokenDoubleLiteral) {
		return x.previous(), nil
	}
	return Token{}, errorAt(CategorySyntax, x.peek().Start, "expect expression, but got %s", x.describe(x.peek()))
}

func (x *Executor) comparisonOperator() (Token, error) {
	if x.match(TokenLess, TokenGreater, TokenEqualEqual, TokenBangEqual) {
		return x.previous(), nil
	}
	return Token{}, errorAt(CategorySyntax, x.peek().Start, "expect comparison operator in condition, but got %s", x.describe(x.peek()))
}

func (x *Executor) run(stmt Stmt) error {
	switch stmt := stmt.(type) {
	case DeclStmt:
		return x.env.Declare(stmt.Name.Lexeme, stmt.DeclType.Type, stmt.Name.Start)
	case AssignStmt:
		value, err := x.eval(stmt.Value)
		if err != nil {
			return err
		}
		return x.env.Assign(stmt.Name.Lexeme, value, stmt.Name.Start)
	case OutputStmt:
		value, err := x.eval(stmt.Value)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(x.stdOut, value)
		return nil
	case IfStmt:
		leftValue, err := x.eval(stmt.Left)
		if err != nil {
			return err
		}
		rightValue, err := x.eval(stmt.Right)
		if err != nil {
			return err
		}
		// a false guard discards the already-parsed body without
		// executing it and without diagnostics of its own
		if compareValues(stmt.Operator.Type, leftValue, rightValue) {
			return x.run(stmt.Body)
		}
		return nil
	default:
		return errorAt(CategoryRuntime, 0, "unexpected statement type: %T", stmt)
	}
}

// eval folds the term chain left to right. The result stays an integer
// until a double operand appears, then the whole chain promotes.
func (x *Executor) eval(expr Expr) (Value, error) {
	value, err := x.operand(expr.Terms[0])
	if err != nil {
		return nil, err
	}
	for i, operator := range expr.Operators {
		right, err := x.operand(expr.Terms[i+1])
		if err != nil {
			return nil, err
		}
		switch operator.Type {
		case TokenPlus:
			value = addValues(value, right)
		case TokenMinus:
			value = subtractValues(value, right)
		}
	}
	return value, nil
}

func (x *Executor) operand(term Token) (Value, error) {
	if term.Type == TokenIdentifier {
		return x.env.Read(term.Lexeme, term.Start)
	}
	return term.Literal, nil
}

func (x *Executor) synchronize() {
	for !x.isAtEnd() {
		if x.advance().Type == TokenSemicolon {
			return
		}
	}
}

func (x *Executor) consume(tokenType TokenType, message string) (Token, error) {
	if x.check(tokenType) {
		return x.advance(), nil
	}
	return Token{}, errorAt(CategorySyntax, x.peek().Start, "%s, but got %s", message, x.describe(x.peek()))
}

func (x *Executor) describe(token Token) string {
	if token.Type == TokenEof {
		return "end of input"
	}
	return "'" + token.Lexeme + "'"
}

func (x *Executor) match(types ...TokenType) bool {
	for _, tokenType := range types {
		if x.check(tokenType) {
			x.advance()
			return true
		}
	}
	return false
}

func (x *Executor) check(tokenType TokenType) bool {
	if x.isAtEnd() {
		return false
	}
	return x.peek().Type == tokenType
}

func (x *Executor) checkNext(tokenType TokenType) bool {
	if x.isAtEnd() {
		return false
	}
	return x.tokens[x.current+1].Type == tokenType
}

func (x *Executor) advance() Token {
	if !x.isAtEnd() {
		x.current++
	}
	return x.previous()
}

func (x *Executor) isAtEnd() bool {
	return x.peek().Type == TokenEof
}

func (x *Executor) peek() Token {
	return x.tokens[x.current]
}

func (x *Executor) previous() Token {
	return x.tokens[x.current-1]
}
