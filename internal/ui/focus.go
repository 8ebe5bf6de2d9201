package ui

// Focus is the keyboard-selected key on the keypad.
type Focus struct {
	Row int
	Col int
}

// Label returns the focused key's label.
func (f Focus) Label() string {
	f = f.clamp()
	return Rows[f.Row][f.Col]
}

// Move shifts focus by the given rows and columns. Focus stops at the grid
// edges. Moving vertically into a shorter row lands on its last key.
func (f Focus) Move(dRow, dCol int) Focus {
	f.Row += dRow
	f.Col += dCol
	return f.clamp()
}

// FocusOn returns the focus for label, or false if no key has that label.
func FocusOn(label string) (Focus, bool) {
	for r, row := range Rows {
		for c, l := range row {
			if l == label {
				return Focus{Row: r, Col: c}, true
			}
		}
	}
	return Focus{}, false
}

func (f Focus) clamp() Focus {
	if f.Row < 0 {
		f.Row = 0
	}
	if f.Row >= len(Rows) {
		f.Row = len(Rows) - 1
	}
	if f.Col < 0 {
		f.Col = 0
	}
	if last := len(Rows[f.Row]) - 1; f.Col > last {
		f.Col = last
	}
	return f
}
