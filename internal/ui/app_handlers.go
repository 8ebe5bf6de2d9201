package ui

import (
	"calcui/internal/calc"
	"calcui/internal/logger"

	tea "github.com/charmbracelet/bubbletea"
)

// directKeys maps keys that press a keypad button of the same meaning.
var directKeys = map[string]string{
	"0": "0", "1": "1", "2": "2", "3": "3", "4": "4",
	"5": "5", "6": "6", "7": "7", "8": "8", "9": "9",
	".": calc.LabelDecimal,
	"+": "+", "-": "-", "*": "*", "/": "/",
	"=":      calc.LabelEquals,
	"%":      calc.LabelPercent,
	"n":      calc.LabelNegate,
	"esc":    calc.LabelClear,
	"c":      calc.LabelClear,
	"delete": calc.LabelClear,
}

// handleKey handles keys the keybind registry did not consume.
func (a *AppModel) handleKey(msg tea.KeyMsg) {
	s := msg.String()
	switch s {
	case "up", "k":
		a.moveFocus(-1, 0)
	case "down", "j":
		a.moveFocus(1, 0)
	case "left", "h":
		a.moveFocus(0, -1)
	case "right", "l":
		a.moveFocus(0, 1)
	case "enter":
		if a.ShowFocus {
			a.press(a.Focus.Label())
		} else {
			a.press(calc.LabelEquals)
		}
	default:
		if label, ok := directKeys[s]; ok {
			a.press(label)
		}
	}
}

// moveFocus shows the focus border on first use, then moves it.
func (a *AppModel) moveFocus(dRow, dCol int) {
	if !a.ShowFocus {
		a.ShowFocus = true
		return
	}
	a.Focus = a.Focus.Move(dRow, dCol)
}

// handleMouse presses the clicked key or toggles the theme.
func (a *AppModel) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	if a.Layout.ThemeToggleAt(msg.X, msg.Y, a.Theme) {
		a.toggleTheme()
		return
	}
	if f, ok := a.Layout.KeyAt(msg.X, msg.Y); ok {
		a.Focus = f
		a.press(f.Label())
	}
}

func (a *AppModel) copyDisplay() tea.Cmd {
	value := a.Calc.Display
	write := a.Clipboard
	return func() tea.Msg {
		if write == nil {
			return clipboardResultMsg{Value: value, Err: errNoClipboard}
		}
		return clipboardResultMsg{Value: value, Err: write(value)}
	}
}

func (a *AppModel) handleClipboardResult(msg clipboardResultMsg) {
	if msg.Err != nil {
		logger.Warn("copy to clipboard failed", "err", msg.Err)
		a.Status = "copy failed: " + msg.Err.Error()
		return
	}
	a.Status = "copied " + msg.Value
}
