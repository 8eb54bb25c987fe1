package internal

import "github.com/sirupsen/logrus"

// Tracer observes evaluation. Step is called once per evaluate
// invocation with the step index, a one-node description and the
// node's value. Implementations must not assume call order matches
// index order: indices are assigned on entry, events fire when the
// value exists, so subexpressions report before their parents.
type Tracer interface {
	Step(index int, description string, value Value)
}

type nopTracer struct{}

func (nopTracer) Step(index int, description string, value Value) {}

// NewLogTracer returns a Tracer that emits one structured debug entry
// per evaluation step.
func NewLogTracer(logger *logrus.Logger) Tracer {
	return &logTracer{logger: logger}
}

type logTracer struct {
	logger *logrus.Logger
}

func (t *logTracer) Step(index int, description string, value Value) {
	t.logger.WithFields(logrus.Fields{
		"pc":    index,
		"expr":  description,
		"value": value.String(),
	}).Debug("step")
}
