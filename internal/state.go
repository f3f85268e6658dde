package internal

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Fault tells which stage of the pipeline rejected the program
type Fault int

const (
	LexFault Fault = iota
	ParseFault
	NameFault
	RuntimeFault
	CodegenFault
)

func (f Fault) String() string {
	switch f {
	case LexFault:
		return "lex"
	case ParseFault:
		return "parse"
	case NameFault:
		return "name"
	case RuntimeFault:
		return "runtime"
	case CodegenFault:
		return "codegen"
	}
	return "unknown"
}

// Error is returned by every stage of the pipeline. Err is one of the
// sentinel errors below, so callers can match it with errors.Is.
type Error struct {
	Kind   Fault
	Line   int
	Err    error
	Detail string
}

func (e *Error) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s error on line %d: %s", e.Kind, e.Line, msg)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// interpreterState stores the state of one pipeline run
type interpreterState struct {
	source string
	tokens []Token
	stmts  []Stmt
	logger logrus.FieldLogger
}

// newInterpreterState logs through the standard logrus logger, which the
// driver configures
func newInterpreterState() *interpreterState {
	return &interpreterState{logger: logrus.StandardLogger()}
}

// fatalError aborts the current stage. The panic is turned back into an
// error by recoverFault at the stage boundary.
func (s *interpreterState) fatalError(kind Fault, err error, line int, detail string) {
	panic(&Error{
		Kind:   kind,
		Line:   line,
		Err:    err,
		Detail: detail,
	})
}

func (s *interpreterState) recoverFault(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	fault, ok := r.(*Error)
	if !ok {
		panic(r)
	}
	s.logger.WithFields(logrus.Fields{
		"kind": fault.Kind.String(),
		"line": fault.Line,
	}).Debug(fault.Err.Error())
	*errp = fault
}

// Lexer errors
var errUnexpectedChar = errors.New("unexpected character")
var errUnterminatedString = errors.New("unterminated string")

// Parser errors
var errUnexpectedToken = errors.New("unexpected token")
var errIntegerRange = errors.New("integer literal out of range")

// Runtime errors
var errUndefinedVar = errors.New("undefined variable")
var errDivisionByZero = errors.New("division by zero")
var errUnknownOp = errors.New("unknown operator")
var errOnlyIntegers = errors.New("operands must be integers")
var errMixedComparison = errors.New("operands must be two integers or two strings")
var errConditionType = errors.New("condition must be an integer")
var errOutput = errors.New("cannot write output")

// Codegen errors
var errStringVariable = errors.New("string-valued variable unsupported")
var errStringOperand = errors.New("string operand unsupported")
