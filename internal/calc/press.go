package calc

import (
	"strconv"
	"strings"
)

// Press applies one button label to s and returns the resulting state.
//
// Failures are silent: an evaluation that cannot run leaves the state as it
// was. Use Step to observe the reason.
func Press(s State, label string) State {
	next, _ := Step(s, label)
	return next
}

// Step is Press that also returns the evaluation error, if "=" was pressed
// and the evaluation did not run. The returned state is always the one Press
// would return.
func Step(s State, label string) (State, error) {
	switch {
	case label == "":
		return s, nil
	case IsInput(label):
		return appendInput(s, label), nil
	case label == LabelClear:
		return New(), nil
	case label == LabelEquals:
		next, err := Evaluate(s)
		if err != nil {
			return s, err
		}
		return next, nil
	case label == LabelNegate:
		return negate(s), nil
	case label == LabelPercent:
		return percent(s), nil
	default:
		// Operator symbols and any unrecognized label queue an operation.
		return State{
			Display:  initialDisplay,
			Pending:  s.Display,
			Operator: Operator(label),
		}, nil
	}
}

// Replay presses each label in order starting from s.
func Replay(s State, labels ...string) State {
	for _, l := range labels {
		s = Press(s, l)
	}
	return s
}

func appendInput(s State, label string) State {
	if label == LabelDecimal && strings.Contains(s.Display, LabelDecimal) {
		return s
	}
	if s.Display == initialDisplay {
		s.Display = label
	} else {
		s.Display += label
	}
	return s
}

func negate(s State) State {
	switch {
	case s.Display == initialDisplay:
	case strings.HasPrefix(s.Display, "-"):
		s.Display = strings.TrimPrefix(s.Display, "-")
	default:
		s.Display = "-" + s.Display
	}
	return s
}

func percent(s State) State {
	v, err := strconv.ParseFloat(s.Display, 64)
	if err != nil {
		return s
	}
	s.Display = FormatNumber(v / 100)
	return s
}
