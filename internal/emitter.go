package internal

import (
	"fmt"
	"strconv"
	"strings"
)

// Every variable is emitted with this prefix so no source name can collide
// with a C keyword, a macro or main.
const varPrefix = "v_"

// emitter lowers a program to a single C translation unit. Variables are
// long long, the C counterpart of the interpreter's 64-bit integers; there
// is no representation for text-valued variables.
type emitter struct {
	state *interpreterState

	lines       []string
	hoisted     []string
	indentLevel int
	bound       map[string]bool
	declared    map[string]bool
}

func newEmitter(state *interpreterState) *emitter {
	return &emitter{
		state:       state,
		indentLevel: 1,
		bound:       make(map[string]bool),
		declared:    make(map[string]bool),
	}
}

func (g *emitter) generate(stmts []Stmt) string {
	collectBound(stmts, g.bound)
	g.block(stmts)

	out := []string{
		"#include <stdio.h>",
		"int main() {",
	}
	for _, name := range g.hoisted {
		out = append(out, g.indent(1)+"long long "+varPrefix+name+" = 0;")
	}
	out = append(out, g.lines...)
	out = append(out, g.indent(1)+"return 0;", "}")
	return strings.Join(out, "\n") + "\n"
}

func (g *emitter) indent(level int) string {
	return strings.Repeat("    ", level)
}

func (g *emitter) emit(line string) {
	g.lines = append(g.lines, g.indent(g.indentLevel)+line)
}

func (g *emitter) block(stmts []Stmt) {
	for _, s := range stmts {
		s.accept(g)
	}
}

func (g *emitter) nested(stmts []Stmt) {
	g.indentLevel++
	g.block(stmts)
	g.indentLevel--
}

func (g *emitter) lower(expr Expr) string {
	return expr.accept(g).(string)
}

// condition lowers expr without the redundant outer parentheses of a
// binary expression
func (g *emitter) condition(expr Expr) string {
	lowered := g.lower(expr)
	if _, ok := expr.(*BinaryExpr); ok {
		return lowered[1 : len(lowered)-1]
	}
	return lowered
}

// hoist declares name at the top of main
func (g *emitter) hoist(name string) {
	g.declared[name] = true
	g.hoisted = append(g.hoisted, name)
}

// visitLetStmt declares a name the first time it is bound. A first binding
// inside an if or while body is declared at the top of main instead, so
// the name stays visible to the statements after that block.
func (g *emitter) visitLetStmt(stmt *LetStmt) R {
	name := stmt.Name.Lexeme
	if isStringValued(stmt.Value) {
		g.state.fatalError(CodegenFault, errStringVariable, stmt.Name.Line, name)
	}

	value := g.lower(stmt.Value)

	switch {
	case g.declared[name]:
		g.emit(varPrefix + name + " = " + value + ";")
	case g.indentLevel == 1:
		g.declared[name] = true
		g.emit("long long " + varPrefix + name + " = " + value + ";")
	default:
		g.hoist(name)
		g.emit(varPrefix + name + " = " + value + ";")
	}
	return nil
}

func (g *emitter) visitPrintStmt(stmt *PrintStmt) R {
	if !isStringValued(stmt.Value) {
		g.emit(fmt.Sprintf(`printf("%%lld\n", (long long)%s);`, g.lower(stmt.Value)))
		return nil
	}
	for _, leaf := range flatten(stmt.Value) {
		if text, ok := leaf.(*StringExpr); ok {
			g.emit(fmt.Sprintf(`printf("%%s", %s);`, quoteC(text.Value)))
		} else {
			g.emit(fmt.Sprintf(`printf("%%lld", (long long)%s);`, g.lower(leaf)))
		}
	}
	g.emit(`printf("\n");`)
	return nil
}

func (g *emitter) visitIfStmt(stmt *IfStmt) R {
	g.emit("if (" + g.condition(stmt.Condition) + ") {")
	g.nested(stmt.ThenBranch)
	if len(stmt.ElseBranch) > 0 {
		g.emit("} else {")
		g.nested(stmt.ElseBranch)
	}
	g.emit("}")
	return nil
}

func (g *emitter) visitWhileStmt(stmt *WhileStmt) R {
	g.emit("while (" + g.condition(stmt.Condition) + ") {")
	g.nested(stmt.Body)
	g.emit("}")
	return nil
}

func (g *emitter) visitIntegerExpr(expr *IntegerExpr) R {
	return strconv.FormatInt(expr.Value, 10)
}

func (g *emitter) visitStringExpr(expr *StringExpr) R {
	g.state.fatalError(CodegenFault, errStringOperand, expr.Token.Line, strconv.Quote(expr.Value))
	return nil
}

// visitVariableExpr accepts a name bound anywhere in the program. A loop
// may read a name before the statement that binds it, so a read ahead of
// the first binding declares the name at the top of main.
func (g *emitter) visitVariableExpr(expr *VariableExpr) R {
	name := expr.Name.Lexeme
	if !g.bound[name] {
		g.state.fatalError(NameFault, errUndefinedVar, expr.Name.Line, name)
	}
	if !g.declared[name] {
		g.hoist(name)
	}
	return varPrefix + name
}

// visitBinaryExpr writes the operator as C infix. For / and % this means
// C's truncating division and remainder, which differ from the
// interpreter's floor semantics when an operand is negative. The parser
// never produces these operators, and the difference is left as is.
func (g *emitter) visitBinaryExpr(expr *BinaryExpr) R {
	left := g.lower(expr.Left)
	right := g.lower(expr.Right)
	return "(" + left + " " + expr.Operator.Lexeme + " " + right + ")"
}

// collectBound adds every name bound by a let or assignment in stmts,
// nested blocks included
func collectBound(stmts []Stmt, bound map[string]bool) {
	for _, st := range stmts {
		switch s := st.(type) {
		case *LetStmt:
			bound[s.Name.Lexeme] = true
		case *IfStmt:
			collectBound(s.ThenBranch, bound)
			collectBound(s.ElseBranch, bound)
		case *WhileStmt:
			collectBound(s.Body, bound)
		}
	}
}

// isStringValued reports whether expr is a string literal or reaches one
// through +
func isStringValued(expr Expr) bool {
	switch e := expr.(type) {
	case *StringExpr:
		return true
	case *BinaryExpr:
		return e.Operator.Kind == PLUS && (isStringValued(e.Left) || isStringValued(e.Right))
	}
	return false
}

// flatten splits a string-valued + tree into its pieces, left to right.
// Integer-only subtrees stay whole: (1 + 2) + "a" prints "3a".
func flatten(expr Expr) []Expr {
	if b, ok := expr.(*BinaryExpr); ok && isStringValued(b) {
		return append(flatten(b.Left), flatten(b.Right)...)
	}
	return []Expr{expr}
}

// quoteC renders s as a C string literal that reproduces its bytes exactly
func quoteC(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '?':
			// keeps "??=" and friends from being read as trigraphs
			b.WriteString(`\?`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if c < 0x20 || c >= 0x7f {
				fmt.Fprintf(&b, `\%03o`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
