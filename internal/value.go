package internal

import "fmt"

// Value is a runtime result. The set is sealed by the unexported
// marker method: IntValue, BoolValue and FunctionValue are the only
// implementations.
type Value interface {
	value()
	String() string
}

// IntValue is an integer result.
type IntValue struct {
	Value int64
}

func (IntValue) value() {}

func (v IntValue) String() string {
	return fmt.Sprintf("%d", v.Value)
}

// BoolValue is a boolean result.
type BoolValue struct {
	Value bool
}

func (BoolValue) value() {}

func (v BoolValue) String() string {
	return fmt.Sprintf("%t", v.Value)
}

func kindOf(v Value) string {
	switch v.(type) {
	case IntValue:
		return "INT"
	case BoolValue:
		return "BOOL"
	case *FunctionValue:
		return "FUNC"
	}
	return "UNKNOWN"
}
