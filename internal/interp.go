package internal

import "github.com/sirupsen/logrus"

// RunProgram evaluates program in a fresh root environment with a
// fresh step counter, so independent runs never observe each other.
// A nil tracer disables tracing.
func RunProgram(program Expr, tracer Tracer) (Value, error) {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return RunProgramWithLogger(program, tracer, logger)
}

// RunProgramWithLogger is RunProgram with a caller-supplied logger.
func RunProgramWithLogger(program Expr, tracer Tracer, logger *logrus.Logger) (value Value, err error) {
	if tracer == nil {
		tracer = nopTracer{}
	}
	state := &interpreterState{logger: logger}
	e := &exec{
		state:  state,
		tracer: tracer,
		env:    newEnv(state, nil),
	}

	defer func() {
		if r := recover(); r != nil {
			if state.runtimeError == nil {
				panic(r)
			}
			value = nil
			err = state.runtimeError
		}
	}()

	return e.evaluate(program), nil
}
