package calc

import "fmt"

// Operator is a binary arithmetic operator queued between two operands.
type Operator string

const (
	OpNone     Operator = ""
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "*"
	OpDivide   Operator = "/"
)

// Known reports whether op is one of the four arithmetic operators.
func (op Operator) Known() bool {
	switch op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	default:
		return false
	}
}

// Apply combines left and right. Division follows IEEE-754, so dividing by
// zero yields ±Inf or NaN rather than an error.
func (op Operator) Apply(left, right float64) (float64, error) {
	switch op {
	case OpAdd:
		return left + right, nil
	case OpSubtract:
		return left - right, nil
	case OpMultiply:
		return left * right, nil
	case OpDivide:
		return left / right, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownOperator, string(op))
	}
}

func (op Operator) String() string {
	if op == OpNone {
		return "none"
	}
	return string(op)
}
