package internal

// env is the single global namespace of one run
type env struct {
	state *interpreterState

	values map[string]value
}

func newEnv(state *interpreterState) *env {
	return &env{
		state:  state,
		values: make(map[string]value),
	}
}

func (e *env) get(name *Token) value {
	if value, ok := e.values[name.Lexeme]; ok {
		return value
	}
	e.state.fatalError(NameFault, errUndefinedVar, name.Line, name.Lexeme)
	return nil
}

// define binds or rebinds name; declaration and reassignment are the same
func (e *env) define(name string, v value) {
	e.values[name] = v
}
