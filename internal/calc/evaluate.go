package calc

import "strconv"

// Evaluate combines the pending operand, the display and the pending
// operator. On success the result becomes the display and the pending
// operand and operator are cleared. On failure s is returned unchanged
// together with the reason.
func Evaluate(s State) (State, error) {
	if !s.HasPending() {
		return s, ErrNothingPending
	}
	left, err := parseOperand(s.Pending)
	if err != nil {
		return s, err
	}
	right, err := parseOperand(s.Display)
	if err != nil {
		return s, err
	}
	result, err := s.Operator.Apply(left, right)
	if err != nil {
		return s, err
	}
	return State{Display: FormatNumber(result)}, nil
}

func parseOperand(v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, &EvalError{Operand: v, Err: err}
	}
	return f, nil
}
