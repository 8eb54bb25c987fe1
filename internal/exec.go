package internal

import "fmt"

// maxEvalDepth bounds the evaluation recursion. Go cannot recover a
// real stack overflow, so a runaway recursive program is cut off by
// this counter and reported as ErrStackOverflow instead.
const maxEvalDepth = 1 << 14

type exec struct {
	state  *interpreterState
	tracer Tracer

	env *env

	steps int
	depth int
}

// evaluate reduces expr to a Value in the current environment. Every
// invocation takes one step index, assigned on entry in pre-order; the
// trace event for the node is emitted once its value exists. Tracing
// is observational only and never changes evaluation order or results.
func (e *exec) evaluate(expr Expr) Value {
	if e.depth >= maxEvalDepth {
		e.state.runtimeErr(ErrStackOverflow, describe(expr))
	}
	step := e.steps
	e.steps++
	e.depth++
	value := expr.accept(e).(Value)
	e.depth--
	e.tracer.Step(step, describe(expr), value)
	return value
}

func (e *exec) visitIntExpr(expr *IntExpr) R {
	return IntValue{Value: expr.Value}
}

func (e *exec) visitBoolExpr(expr *BoolExpr) R {
	return BoolValue{Value: expr.Value}
}

// visitBinaryExpr evaluates left then right, strictly, in the same
// environment. Integer division truncates toward zero (Go's int64
// division), also for negative operands.
func (e *exec) visitBinaryExpr(expr *BinaryExpr) R {
	left := e.evaluate(expr.Left)
	right := e.evaluate(expr.Right)
	if expr.Op == OpEqual {
		return e.equals(left, right)
	}
	leftNum, rightNum := e.getInts(left, right)
	switch expr.Op {
	case OpAdd:
		return IntValue{Value: leftNum + rightNum}
	case OpSub:
		return IntValue{Value: leftNum - rightNum}
	case OpMul:
		return IntValue{Value: leftNum * rightNum}
	case OpDiv:
		if rightNum == 0 {
			e.state.runtimeErr(ErrDivisionByZero, describe(expr))
		}
		return IntValue{Value: leftNum / rightNum}
	}
	e.state.runtimeErr(ErrTypeMismatch, "unknown operator "+expr.Op.String())
	return nil
}

// equals compares two values of the same kind. Mismatched kinds are an
// error rather than false. Two function values never compare equal.
func (e *exec) equals(left, right Value) Value {
	if kindOf(left) != kindOf(right) {
		e.state.runtimeErr(ErrTypeMismatch, mismatch(kindOf(left), right))
	}
	switch l := left.(type) {
	case IntValue:
		return BoolValue{Value: l.Value == right.(IntValue).Value}
	case BoolValue:
		return BoolValue{Value: l.Value == right.(BoolValue).Value}
	}
	return BoolValue{Value: false}
}

func (e *exec) getInts(left, right Value) (int64, int64) {
	leftNum, ok := left.(IntValue)
	if !ok {
		e.state.runtimeErr(ErrTypeMismatch, mismatch("INT", left))
	}
	rightNum, ok := right.(IntValue)
	if !ok {
		e.state.runtimeErr(ErrTypeMismatch, mismatch("INT", right))
	}
	return leftNum.Value, rightNum.Value
}

func mismatch(expected string, found Value) string {
	return fmt.Sprintf("expected %s, found %s", expected, kindOf(found))
}

func (e *exec) visitIfExpr(expr *IfExpr) R {
	condition := e.evaluate(expr.Condition)
	conditionBool, ok := condition.(BoolValue)
	if !ok {
		e.state.runtimeErr(ErrTypeMismatch, mismatch("BOOL", condition))
	}
	if conditionBool.Value {
		return e.evaluate(expr.Then)
	}
	return e.evaluate(expr.Else)
}

func (e *exec) visitVariableExpr(expr *VariableExpr) R {
	return e.env.get(expr.Name)
}

func (e *exec) visitAssignExpr(expr *AssignExpr) R {
	value := e.evaluate(expr.Value)
	e.env.assign(expr.Name, value)
	return value
}

func (e *exec) visitLetExpr(expr *LetExpr) R {
	bound := e.evaluate(expr.Value)
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = e.env.child()
	e.env.define(expr.Name, bound)
	return e.evaluate(expr.Body)
}

// visitFnExpr declares a function. The closure frame holds the
// function itself, so the body can call it recursively; Rest runs in
// that same frame.
func (e *exec) visitFnExpr(expr *FnExpr) R {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	closure := e.env.child()
	fn := &FunctionValue{
		Name:    expr.Name,
		Params:  expr.Params,
		Body:    expr.Body,
		closure: closure,
	}
	closure.define(expr.Name, fn)
	e.env = closure
	return e.evaluate(expr.Rest)
}

// visitCallExpr evaluates arguments in the caller's environment, then
// runs the body in a frame enclosed by the function's captured
// environment. Lexical scoping, not dynamic.
func (e *exec) visitCallExpr(expr *CallExpr) R {
	callee := e.env.get(expr.Name)
	fn, isFn := callee.(*FunctionValue)
	if !isFn {
		e.state.runtimeErr(ErrOnlyFunction, expr.Name)
	}
	if len(expr.Arguments) != fn.arity() {
		e.state.runtimeErr(ErrInvalidNumberArguments, fmt.Sprintf(
			"%s takes %d, got %d", expr.Name, fn.arity(), len(expr.Arguments)))
	}
	arguments := make([]Value, len(expr.Arguments))
	for i := range expr.Arguments {
		arguments[i] = e.evaluate(expr.Arguments[i])
	}
	return fn.call(e, arguments)
}
