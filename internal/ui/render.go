package ui

import (
	"strings"

	"calcui/internal/calc"
	"calcui/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

// RenderInput is everything the calculator screen depends on.
type RenderInput struct {
	State     calc.State
	Theme     ThemeMode
	Focus     Focus
	ShowFocus bool   // draw the focus border (hidden until the keyboard navigates)
	Status    string // transient message under the keypad
}

// Render draws the calculator. It is a pure function of in; the cell
// positions of its controls are described by DefaultLayout.
func Render(in RenderInput) string {
	st := NewStyles(in.Theme)

	lines := make([]string, 0, len(Rows)+3)
	lines = append(lines, st.Header.Render(headerText(in.State, in.Theme)))
	lines = append(lines, st.Display.Render(fitDisplay(in.State.Display)))
	for r, row := range Rows {
		keys := make([]string, len(row))
		for c, label := range row {
			focused := in.ShowFocus && in.Focus.Row == r && in.Focus.Col == c
			keys[c] = st.Key(label, focused, in.Theme).Render(label)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, keys...))
	}
	if in.Status != "" {
		lines = append(lines, st.Status.Render(textutil.TruncateLeft(in.Status, panelWidth)))
	}
	return st.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// headerText puts the pending operation on the left and the theme control
// on the right.
func headerText(s calc.State, mode ThemeMode) string {
	toggle := mode.ToggleLabel()
	var pending string
	if s.HasPending() {
		pending = s.Pending + " " + string(s.Operator)
	}
	pending = textutil.TruncateLeft(pending, panelWidth-len(toggle)-1)
	return textutil.PadRightVisual(pending, panelWidth-len(toggle)) + toggle
}

// fitDisplay keeps the display on one line inside the result box.
func fitDisplay(v string) string {
	return textutil.TruncateLeft(strings.TrimSpace(v), panelWidth-2)
}
