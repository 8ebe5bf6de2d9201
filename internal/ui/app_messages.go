package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// PressMsg presses a keypad button.
type PressMsg struct {
	Label string
}

// ToggleThemeMsg switches between the dark and light palettes.
type ToggleThemeMsg struct{}

// ToggleHelpMsg switches between the short and full key help.
type ToggleHelpMsg struct{}

// CopyDisplayMsg copies the display value to the clipboard.
type CopyDisplayMsg struct{}

// clipboardResultMsg reports the outcome of a CopyDisplayMsg.
type clipboardResultMsg struct {
	Value string
	Err   error
}

var errNoClipboard = errors.New("no clipboard available")

// sendMsg returns a command that emits msg.
func sendMsg(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
