package internal

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Runtime errors
var ErrUndefinedVar = errors.New("undefined variable")
var ErrTypeMismatch = errors.New("type mismatch")
var ErrDivisionByZero = errors.New("division by zero")
var ErrOnlyFunction = errors.New("can only call functions")
var ErrInvalidNumberArguments = errors.New("wrong number of arguments")
var ErrStackOverflow = errors.New("max evaluation depth exceeded")

// RuntimeError is a fatal evaluation error. It wraps one of the
// sentinel errors above, so errors.Is works against them.
type RuntimeError struct {
	err    error
	detail string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s", e.err, e.detail)
}

func (e *RuntimeError) Unwrap() error {
	return e.err
}

// interpreterState stores the state of a single evaluation run
type interpreterState struct {
	logger       *logrus.Logger
	runtimeError *RuntimeError
}

// runtimeErr aborts the run. The panic unwinds every evaluation frame
// and is recovered at the RunProgram boundary; nothing catches it in
// between, so no partial result can escape.
func (s *interpreterState) runtimeErr(err error, detail string) {
	s.runtimeError = &RuntimeError{
		err:    err,
		detail: detail,
	}
	s.logger.WithField("detail", detail).Error(err)
	panic(s.runtimeError)
}
