package calc

import (
	"errors"
	"fmt"
)

var (
	// ErrNothingPending is returned by Evaluate when no operator and left
	// operand are queued.
	ErrNothingPending = errors.New("calc: no pending operation")
	// ErrUnknownOperator is returned by Evaluate when the queued operator is
	// not one of + - * /.
	ErrUnknownOperator = errors.New("calc: unknown operator")
)

// EvalError reports an operand that could not be parsed as a number.
type EvalError struct {
	Operand string
	Err     error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("calc: parse operand %q: %v", e.Operand, e.Err)
}

func (e *EvalError) Unwrap() error { return e.Err }
