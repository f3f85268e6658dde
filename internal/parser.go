package internal

import (
	"fmt"
	"strconv"
)

// parser stores parser data
type parser struct {
	current int
	tokens  []Token

	state *interpreterState
}

// Operators accepted between two terms. STAR, SLASH and PERCENT are lexed
// but intentionally absent: the grammar has a single precedence tier and
// a multiplicative operator ends the expression where it appears.
var binaryOperators = []TokenType{
	PLUS,
	MINUS,
	EQUAL_EQUAL,
	BANG_EQUAL,
	LESS,
	LESS_EQUAL,
	GREATER,
	GREATER_EQUAL,
}

func newParser(state *interpreterState, tokens []Token) *parser {
	return &parser{
		tokens: tokens,
		state:  state,
	}
}

func (p *parser) parse() []Stmt {
	stmts := make([]Stmt, 0)
	for !p.isAtEnd() {
		stmts = append(stmts, p.statement())
	}
	return stmts
}

func (p *parser) statement() Stmt {
	if p.match(LET) {
		name := p.consume(IDENTIFIER)
		return p.assignment(name)
	}
	if p.match(PRINT) {
		return p.printStmt()
	}
	if p.match(IF) {
		return p.ifStmt()
	}
	if p.match(WHILE) {
		return p.while()
	}
	if p.match(IDENTIFIER) {
		// Reassignment produces the same node as a declaration
		return p.assignment(p.previous())
	}
	p.unexpected()
	return nil
}

func (p *parser) assignment(name *Token) Stmt {
	p.consume(EQUAL)
	value := p.expression()
	p.consume(SEMICOLON)
	return &LetStmt{
		Name:  name,
		Value: value,
	}
}

func (p *parser) printStmt() Stmt {
	keyword := p.previous()
	p.consume(LEFT_PAREN)
	value := p.expression()
	p.consume(RIGHT_PAREN)
	p.consume(SEMICOLON)
	return &PrintStmt{
		Keyword: keyword,
		Value:   value,
	}
}

func (p *parser) ifStmt() Stmt {
	st := &IfStmt{
		Keyword:    p.previous(),
		ElseBranch: make([]Stmt, 0),
	}

	st.Condition = p.condition()
	st.ThenBranch = p.block()

	if p.match(ELSE) {
		st.ElseBranch = p.block()
	}

	return st
}

func (p *parser) while() Stmt {
	keyword := p.previous()
	cond := p.condition()
	body := p.block()
	return &WhileStmt{
		Keyword:   keyword,
		Condition: cond,
		Body:      body,
	}
}

func (p *parser) condition() Expr {
	p.consume(LEFT_PAREN)
	cond := p.expression()
	p.consume(RIGHT_PAREN)
	return cond
}

func (p *parser) block() []Stmt {
	p.consume(LEFT_CURLY_BRACE)
	stmts := make([]Stmt, 0)
	for !p.check(RIGHT_CURLY_BRACE) && !p.isAtEnd() {
		stmts = append(stmts, p.statement())
	}
	p.consume(RIGHT_CURLY_BRACE)
	return stmts
}

func (p *parser) expression() Expr {
	expr := p.term()
	for p.match(binaryOperators...) {
		operator := p.previous()
		right := p.term()
		expr = &BinaryExpr{
			Left:     expr,
			Operator: operator,
			Right:    right,
		}
	}
	return expr
}

func (p *parser) term() Expr {
	if p.match(INTEGER) {
		tk := p.previous()
		value, err := strconv.ParseInt(tk.Lexeme, 10, 64)
		if err != nil {
			p.state.fatalError(ParseFault, errIntegerRange, tk.Line, tk.Lexeme)
		}
		return &IntegerExpr{Token: tk, Value: value}
	}
	if p.match(STRING) {
		tk := p.previous()
		return &StringExpr{Token: tk, Value: tk.Lexeme}
	}
	if p.match(IDENTIFIER) {
		return &VariableExpr{Name: p.previous()}
	}
	if p.match(LEFT_PAREN) {
		expr := p.expression()
		p.consume(RIGHT_PAREN)
		return expr
	}
	p.unexpected()
	return nil
}

func (p *parser) consume(kind TokenType) *Token {
	if p.check(kind) {
		return p.advance()
	}
	current := p.peek()
	p.state.fatalError(
		ParseFault,
		errUnexpectedToken,
		current.Line,
		fmt.Sprintf("expected %s, found %s", kind, current.Kind),
	)
	return nil
}

func (p *parser) unexpected() {
	current := p.peek()
	p.state.fatalError(ParseFault, errUnexpectedToken, current.Line, current.Kind.String())
}

func (p *parser) match(kinds ...TokenType) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(kind TokenType) bool {
	return p.peek().Kind == kind
}

func (p *parser) advance() *Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) isAtEnd() bool {
	return p.peek().Kind == EOF
}

// peek returns the lookahead token. Running off the end of a slice that
// lacks a trailing EOF yields a synthetic one.
func (p *parser) peek() *Token {
	if p.current < len(p.tokens) {
		return &p.tokens[p.current]
	}
	line := 0
	if len(p.tokens) > 0 {
		line = p.tokens[len(p.tokens)-1].Line
	}
	return &Token{Kind: EOF, Line: line}
}

func (p *parser) previous() *Token {
	return &p.tokens[p.current-1]
}
