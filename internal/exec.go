package internal

type exec struct {
	state   *interpreterState
	env     *env
	printer IPrinter
}

func newExec(state *interpreterState, printer IPrinter) *exec {
	return &exec{
		state:   state,
		env:     newEnv(state),
		printer: printer,
	}
}

func (e *exec) interpret(stmts []Stmt) {
	e.executeBlock(stmts)
}

func (e *exec) executeBlock(stmts []Stmt) {
	for _, s := range stmts {
		s.accept(e)
	}
}

func (e *exec) evaluate(expr Expr) value {
	return expr.accept(e).(value)
}

func (e *exec) visitLetStmt(stmt *LetStmt) R {
	e.env.define(stmt.Name.Lexeme, e.evaluate(stmt.Value))
	return nil
}

func (e *exec) visitPrintStmt(stmt *PrintStmt) R {
	val := e.evaluate(stmt.Value)
	if _, err := e.printer.Println(val.String()); err != nil {
		e.state.fatalError(RuntimeFault, errOutput, stmt.Keyword.Line, err.Error())
	}
	return nil
}

func (e *exec) visitIfStmt(stmt *IfStmt) R {
	if e.truthy(e.evaluate(stmt.Condition), stmt.Keyword) {
		e.executeBlock(stmt.ThenBranch)
	} else {
		e.executeBlock(stmt.ElseBranch)
	}
	return nil
}

func (e *exec) visitWhileStmt(stmt *WhileStmt) R {
	for e.truthy(e.evaluate(stmt.Condition), stmt.Keyword) {
		e.executeBlock(stmt.Body)
	}
	return nil
}

func (e *exec) visitIntegerExpr(expr *IntegerExpr) R {
	return intValue(expr.Value)
}

func (e *exec) visitStringExpr(expr *StringExpr) R {
	return textValue(expr.Value)
}

func (e *exec) visitVariableExpr(expr *VariableExpr) R {
	return e.env.get(expr.Name)
}

// visitBinaryExpr always evaluates both operands, left first
func (e *exec) visitBinaryExpr(expr *BinaryExpr) R {
	left := e.evaluate(expr.Left)
	right := e.evaluate(expr.Right)

	apply, ok := operators[expr.Operator.Kind]
	if !ok {
		e.state.fatalError(RuntimeFault, errUnknownOp, expr.Operator.Line, expr.Operator.Lexeme)
	}

	result, err := apply(left, right)
	if err == errDivisionByZero {
		e.state.fatalError(RuntimeFault, err, expr.Operator.Line, "")
	}
	if err != nil {
		e.state.fatalError(RuntimeFault, err, expr.Operator.Line, expr.Operator.Lexeme)
	}
	return result
}

// truthy accepts only integers: zero is false, anything else is true
func (e *exec) truthy(val value, keyword *Token) bool {
	if n, ok := val.(intValue); ok {
		return n != 0
	}
	e.state.fatalError(RuntimeFault, errConditionType, keyword.Line, keyword.Lexeme)
	return false
}
