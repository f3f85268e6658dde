package internal

import (
	"github.com/sirupsen/logrus"
)

// IPrinter printer interface. Every Print statement results in exactly one
// Println call carrying the printed text.
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
}

// Lex scans source into tokens terminated by an EOF token
func Lex(source string) (tokens []Token, err error) {
	state := newInterpreterState()
	defer state.recoverFault(&err)
	return state.lex(source), nil
}

// Parse builds the statements of a program from its tokens
func Parse(tokens []Token) (stmts []Stmt, err error) {
	state := newInterpreterState()
	defer state.recoverFault(&err)
	return state.parse(tokens), nil
}

// Interpret executes stmts against a fresh environment. Output written
// before a fault stays written.
func Interpret(stmts []Stmt, p IPrinter) (err error) {
	state := newInterpreterState()
	defer state.recoverFault(&err)
	state.interpret(stmts, p)
	return nil
}

// Emit generates a C program equivalent to stmts. On error the returned
// text is empty.
func Emit(stmts []Stmt) (out string, err error) {
	state := newInterpreterState()
	defer state.recoverFault(&err)
	return state.emit(stmts), nil
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(source string, p IPrinter) (err error) {
	state := newInterpreterState()
	defer state.recoverFault(&err)
	state.interpret(state.parse(state.lex(source)), p)
	return nil
}

// EmitSource lexes and parses source and returns the generated C program
func EmitSource(source string) (out string, err error) {
	state := newInterpreterState()
	defer state.recoverFault(&err)
	return state.emit(state.parse(state.lex(source))), nil
}

func (s *interpreterState) lex(source string) []Token {
	s.source = source
	s.tokens = newLexer(s, source).scan()
	s.logger.WithFields(logrus.Fields{
		"stage":  "lex",
		"tokens": len(s.tokens),
	}).Debug("source scanned")
	return s.tokens
}

func (s *interpreterState) parse(tokens []Token) []Stmt {
	s.stmts = newParser(s, tokens).parse()
	s.logger.WithFields(logrus.Fields{
		"stage":      "parse",
		"statements": len(s.stmts),
	}).Debug("program parsed")
	return s.stmts
}

func (s *interpreterState) interpret(stmts []Stmt, p IPrinter) {
	ex := newExec(s, p)
	ex.interpret(stmts)
	s.logger.WithFields(logrus.Fields{
		"stage":     "interpret",
		"variables": len(ex.env.values),
	}).Debug("program finished")
}

func (s *interpreterState) emit(stmts []Stmt) string {
	out := newEmitter(s).generate(stmts)
	s.logger.WithFields(logrus.Fields{
		"stage": "emit",
		"bytes": len(out),
	}).Debug("c source generated")
	return out
}
