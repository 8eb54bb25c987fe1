package internal

import "fmt"

// FunctionValue is a closure: a function body paired with the
// environment in effect at its declaration site. The environment is
// held by reference, so mutations made after capture are visible on
// the next call.
type FunctionValue struct {
	Name   string
	Params []string
	Body   Expr

	closure *env
}

func (*FunctionValue) value() {}

func (f *FunctionValue) String() string {
	return fmt.Sprintf("<fn %s>", f.Name)
}

func (f *FunctionValue) arity() int {
	return len(f.Params)
}

// call binds the arguments in a fresh frame under the closure. Each
// invocation gets its own parameter cells, which is what makes
// re-entrant and recursive calls independent of each other.
func (f *FunctionValue) call(e *exec, arguments []Value) Value {
	frame := f.closure.child()
	for i := range f.Params {
		frame.define(f.Params[i], arguments[i])
	}

	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = frame

	return e.evaluate(f.Body)
}
