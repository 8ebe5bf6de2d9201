package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// ColorAccent is the operator key color shared by both palettes.
const ColorAccent = "#FF9500"

// Styles contains the lipgloss styles for one theme. Build with NewStyles.
type Styles struct {
	// Frame around the whole calculator (background + padding)
	Frame lipgloss.Style

	Header  lipgloss.Style // theme toggle line
	Display lipgloss.Style // result box

	// Keys
	Digit    lipgloss.Style
	Operator lipgloss.Style
	Equals   lipgloss.Style

	Hint   lipgloss.Style
	Status lipgloss.Style
}

// NewStyles builds the styles for mode.
func NewStyles(mode ThemeMode) Styles {
	p := mode.Palette()
	bg := lipgloss.Color(p.Background)
	key := lipgloss.NewStyle().
		Width(keyInnerWidth).
		Align(lipgloss.Center).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Background)).
		BorderBackground(bg)
	return Styles{
		Frame: lipgloss.NewStyle().
			Background(bg).
			Padding(framePadY, framePadX),
		Header: lipgloss.NewStyle().
			Width(panelWidth).
			Align(lipgloss.Right).
			Foreground(lipgloss.Color(p.Muted)).
			Background(bg),
		Display: lipgloss.NewStyle().
			Width(panelWidth-2).
			Align(lipgloss.Right).
			Bold(true).
			Foreground(lipgloss.Color(p.Text)).
			Background(bg).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Button)).
			BorderBackground(bg),
		Digit: key.
			Foreground(lipgloss.Color(p.Text)).
			Background(lipgloss.Color(p.Button)),
		Operator: key.
			Foreground(lipgloss.Color(p.Text)).
			Background(lipgloss.Color(p.Accent)),
		Equals: key.
			Width(equalsInnerWidth).
			Foreground(lipgloss.Color(p.Text)).
			Background(lipgloss.Color(p.Accent)),
		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Accent)).
			Italic(true),
	}
}

// Key returns the style for label, with a visible border when focused.
func (s Styles) Key(label string, focused bool, mode ThemeMode) lipgloss.Style {
	var st lipgloss.Style
	switch {
	case label == "=":
		st = s.Equals
	case IsOperatorKey(label):
		st = s.Operator
	default:
		st = s.Digit
	}
	if focused {
		st = st.BorderForeground(lipgloss.Color(mode.Palette().Focus))
	}
	return st
}
