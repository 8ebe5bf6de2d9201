// Package calc implements the keypad calculator as a pure reducer.
//
// All state lives in a State value. Press takes the current state and a
// button label and returns the next state; nothing in this package performs
// I/O or keeps package-level mutable state, so every behavior can be tested
// by replaying labels.
package calc

// Button labels with behavior beyond "append" or "set operator".
const (
	LabelClear   = "AC"
	LabelEquals  = "="
	LabelNegate  = "+/-"
	LabelPercent = "%"
	LabelDecimal = "."
)

// initialDisplay is shown after start and after AC.
const initialDisplay = "0"

// State is the complete calculator state.
type State struct {
	Display  string   // operand being typed, or the last result
	Pending  string   // left-hand operand captured by an operator; "" when none
	Operator Operator // queued operator; OpNone when none
}

// New returns the start-up state: display "0", nothing pending.
func New() State {
	return State{Display: initialDisplay}
}

// HasPending reports whether "=" would run an evaluation.
func (s State) HasPending() bool {
	return s.Operator != OpNone && s.Pending != ""
}

// IsDigit reports whether label is a single decimal digit.
func IsDigit(label string) bool {
	return len(label) == 1 && label[0] >= '0' && label[0] <= '9'
}

// IsInput reports whether label is typed into the display (a digit or the
// decimal point) rather than acting as a command.
func IsInput(label string) bool {
	return IsDigit(label) || label == LabelDecimal
}
