package internal

import (
	"errors"
	"testing"
)

func newTestEnv() *env {
	return newEnv(&interpreterState{logger: testLogger()}, nil)
}

// catchRuntimeErr runs f and returns the RuntimeError it panicked
// with, or nil if it returned normally.
func catchRuntimeErr(f func()) (err *RuntimeError) {
	defer func() {
		if r := recover(); r != nil {
			err = r.(*RuntimeError)
		}
	}()
	f()
	return nil
}

func TestEnvDefineAndGet(t *testing.T) {
	root := newTestEnv()
	root.define("x", IntValue{Value: 1})
	if got := root.get("x").(IntValue).Value; got != 1 {
		t.Errorf("x should be 1, got %d", got)
	}
}

func TestEnvGetWalksToEnclosingFrames(t *testing.T) {
	root := newTestEnv()
	root.define("x", IntValue{Value: 1})
	inner := root.child().child()
	if got := inner.get("x").(IntValue).Value; got != 1 {
		t.Errorf("x should be visible from nested frames, got %d", got)
	}
}

func TestEnvDefineShadowsWithoutOverwriting(t *testing.T) {
	root := newTestEnv()
	root.define("x", IntValue{Value: 1})
	inner := root.child()
	inner.define("x", IntValue{Value: 2})

	if got := inner.get("x").(IntValue).Value; got != 2 {
		t.Errorf("inner x should be 2, got %d", got)
	}
	if got := root.get("x").(IntValue).Value; got != 1 {
		t.Errorf("outer x should still be 1, got %d", got)
	}
}

func TestEnvAssignMutatesDefiningFrame(t *testing.T) {
	root := newTestEnv()
	root.define("x", IntValue{Value: 1})
	inner := root.child()
	inner.assign("x", IntValue{Value: 5})

	if got := root.get("x").(IntValue).Value; got != 5 {
		t.Errorf("assign should reach the defining frame, got %d", got)
	}
	if _, ok := inner.values["x"]; ok {
		t.Error("assign should not create a binding in the inner frame")
	}
}

func TestEnvAssignPrefersInnermostBinding(t *testing.T) {
	root := newTestEnv()
	root.define("x", IntValue{Value: 1})
	inner := root.child()
	inner.define("x", IntValue{Value: 2})
	inner.assign("x", IntValue{Value: 3})

	if got := inner.get("x").(IntValue).Value; got != 3 {
		t.Errorf("inner x should be 3, got %d", got)
	}
	if got := root.get("x").(IntValue).Value; got != 1 {
		t.Errorf("outer x should still be 1, got %d", got)
	}
}

func TestEnvUndefinedNames(t *testing.T) {
	root := newTestEnv()

	err := catchRuntimeErr(func() { root.get("z") })
	if err == nil || !errors.Is(err, ErrUndefinedVar) {
		t.Errorf("get of undefined name should raise ErrUndefinedVar, got %v", err)
	}

	err = catchRuntimeErr(func() { root.child().assign("z", IntValue{Value: 1}) })
	if err == nil || !errors.Is(err, ErrUndefinedVar) {
		t.Errorf("assign of undefined name should raise ErrUndefinedVar, got %v", err)
	}
}
