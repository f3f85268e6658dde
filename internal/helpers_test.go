package internal

import (
	"errors"
	"fmt"
	"strconv"
	"testing"
)

type testPrinter struct {
	printed string
}

func (t *testPrinter) Println(a ...interface{}) (n int, err error) {
	for i, e := range a {
		if i != 0 {
			t.printed += " "
		}
		t.printed += fmt.Sprintf("%v", e)
	}
	t.printed += "\n"
	return 0, nil
}

func (t *testPrinter) Equals(p string) bool {
	if t.printed == p+"\n" {
		t.Reset()
		return true
	}
	return false
}

func (t *testPrinter) Reset() {
	t.printed = ""
}

// failingPrinter rejects every write
type failingPrinter struct{}

func (failingPrinter) Println(a ...interface{}) (n int, err error) {
	return 0, errors.New("sink closed")
}

// checkFault asserts err is an *Error of the given kind wrapping target
func checkFault(t *testing.T, err error, kind Fault, target error) *Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s fault %q, got no error", kind, target)
	}
	var fault *Error
	if !errors.As(err, &fault) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if fault.Kind != kind {
		t.Errorf("expected %s fault, got %s: %v", kind, fault.Kind, err)
	}
	if !errors.Is(err, target) {
		t.Errorf("expected %q, got %v", target, err)
	}
	return fault
}

// Builders for hand-made syntax trees, used where the parser cannot
// produce the program under test.

func num(v int64) Expr {
	return &IntegerExpr{Token: &Token{Kind: INTEGER, Lexeme: strconv.FormatInt(v, 10), Line: 1}, Value: v}
}

func str(s string) Expr {
	return &StringExpr{Token: &Token{Kind: STRING, Lexeme: s, Line: 1}, Value: s}
}

func variable(name string) Expr {
	return &VariableExpr{Name: &Token{Kind: IDENTIFIER, Lexeme: name, Line: 1}}
}

var operatorLexemes = map[TokenType]string{
	PLUS:          "+",
	MINUS:         "-",
	STAR:          "*",
	SLASH:         "/",
	PERCENT:       "%",
	EQUAL:         "=",
	EQUAL_EQUAL:   "==",
	BANG_EQUAL:    "!=",
	LESS:          "<",
	LESS_EQUAL:    "<=",
	GREATER:       ">",
	GREATER_EQUAL: ">=",
}

func binary(left Expr, op TokenType, right Expr) Expr {
	return &BinaryExpr{
		Left:     left,
		Operator: &Token{Kind: op, Lexeme: operatorLexemes[op], Line: 1},
		Right:    right,
	}
}

func let(name string, value Expr) Stmt {
	return &LetStmt{Name: &Token{Kind: IDENTIFIER, Lexeme: name, Line: 1}, Value: value}
}

func printOf(value Expr) Stmt {
	return &PrintStmt{Keyword: &Token{Kind: PRINT, Lexeme: "print", Line: 1}, Value: value}
}

func parseSource(t *testing.T, source string) []Stmt {
	t.Helper()
	tokens, err := Lex(source)
	if err != nil {
		t.Fatalf("lex %q: %v", source, err)
	}
	stmts, err := Parse(tokens)
	if err != nil {
		t.Fatalf("parse %q: %v", source, err)
	}
	return stmts
}
