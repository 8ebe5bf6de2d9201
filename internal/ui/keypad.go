package ui

import "calcui/internal/calc"

// Rows is the keypad, top to bottom. The last row is short; its "=" key is
// drawn double width so every row spans the same columns.
var Rows = [][]string{
	{calc.LabelClear, calc.LabelNegate, calc.LabelPercent, "/"},
	{"7", "8", "9", "*"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"0", calc.LabelDecimal, calc.LabelEquals},
}

// IsOperatorKey reports whether label is drawn in the accent color: every
// key that is not typed into the display.
func IsOperatorKey(label string) bool {
	return !calc.IsInput(label)
}

// keySpan is the number of grid columns a key occupies.
func keySpan(label string) int {
	if label == calc.LabelEquals {
		return 2
	}
	return 1
}
