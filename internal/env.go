package internal

type env struct {
	state *interpreterState

	enclosing *env
	values    map[string]Value
}

func newEnv(state *interpreterState, enclosing *env) *env {
	return &env{
		state:     state,
		enclosing: enclosing,
		values:    make(map[string]Value),
	}
}

// child returns a fresh frame enclosed by the receiver. Frames are
// shared by pointer: a closure capturing one keeps the whole chain
// alive and sees later assignments through it.
func (e *env) child() *env {
	return newEnv(e.state, e)
}

func (e *env) get(name string) Value {
	if value, ok := e.values[name]; ok {
		return value
	}
	if e.enclosing != nil {
		return e.enclosing.get(name)
	}
	e.state.runtimeErr(ErrUndefinedVar, name)
	return nil
}

// define creates a binding in this frame, shadowing any outer binding
// of the same name. It never touches an enclosing frame.
func (e *env) define(name string, value Value) {
	e.values[name] = value
}

// assign mutates the binding in the frame where name was defined.
// Assigning a name no enclosing frame defines is an error, not an
// implicit define.
func (e *env) assign(name string, value Value) {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return
	}
	if e.enclosing != nil {
		e.enclosing.assign(name, value)
		return
	}
	e.state.runtimeErr(ErrUndefinedVar, name)
}
