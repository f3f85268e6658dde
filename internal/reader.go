package internal

import (
	"fmt"
	"strconv"
	"strings"
)

//R generic type
type R interface{}

//PrintTree renders a program as one s-expression per statement
func PrintTree(stmts []Stmt) string {
	out := ""
	for _, stmt := range stmts {
		out += stmt.accept(stringVisitor{}).(string) + "\n"
	}
	return out
}

type stringVisitor struct{}

func (v stringVisitor) block(stmts []Stmt) string {
	parts := make([]string, len(stmts))
	for i, st := range stmts {
		parts[i] = st.accept(v).(string)
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (v stringVisitor) visitLetStmt(stmt *LetStmt) R {
	return fmt.Sprintf("(let %s %v)", stmt.Name.Lexeme, stmt.Value.accept(v))
}

func (v stringVisitor) visitPrintStmt(stmt *PrintStmt) R {
	return fmt.Sprintf("(print %v)", stmt.Value.accept(v))
}

func (v stringVisitor) visitIfStmt(stmt *IfStmt) R {
	return fmt.Sprintf(
		"(if %v %s %s)",
		stmt.Condition.accept(v),
		v.block(stmt.ThenBranch),
		v.block(stmt.ElseBranch),
	)
}

func (v stringVisitor) visitWhileStmt(stmt *WhileStmt) R {
	return fmt.Sprintf("(while %v %s)", stmt.Condition.accept(v), v.block(stmt.Body))
}

func (v stringVisitor) visitIntegerExpr(expr *IntegerExpr) R {
	return strconv.FormatInt(expr.Value, 10)
}

func (v stringVisitor) visitStringExpr(expr *StringExpr) R {
	return strconv.Quote(expr.Value)
}

func (v stringVisitor) visitVariableExpr(expr *VariableExpr) R {
	return expr.Name.Lexeme
}

func (v stringVisitor) visitBinaryExpr(expr *BinaryExpr) R {
	return fmt.Sprintf("(%s %v %v)", expr.Operator.Lexeme, expr.Left.accept(v), expr.Right.accept(v))
}
