package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient help bar shown after SPC.
// When the handler is mid-sequence (e.g. "SPC x"), it shows next-level hints.
func RenderKeybindHelp(keyHandler *KeyHandler, mode ThemeMode) string {
	if keyHandler == nil || !keyHandler.LeaderWaiting {
		return ""
	}
	bindings := leaderBindings(keyHandler)
	if len(bindings) <= 1 {
		return ""
	}

	p := mode.Palette()
	helpContent := newHelpModel(mode).ShortHelpView(bindings)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Accent)).
		Padding(0, 1)
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Muted))

	return boxStyle.Render(labelStyle.Render(keyHandler.CurrentSeq()) + " " + helpContent)
}

// RenderHelp draws the calculator key help, short or full.
func RenderHelp(km KeyMap, full bool, width int, mode ThemeMode) string {
	h := newHelpModel(mode)
	h.ShowAll = full
	h.Width = width
	return lipgloss.NewStyle().PaddingLeft(framePadX).Render(h.View(km))
}

func newHelpModel(mode ThemeMode) help.Model {
	p := mode.Palette()
	h := help.New()
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Accent)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Muted))
	h.Styles.ShortKey = keyStyle
	h.Styles.ShortDesc = descStyle
	h.Styles.ShortSeparator = descStyle
	h.Styles.FullKey = keyStyle
	h.Styles.FullDesc = descStyle
	h.Styles.FullSeparator = descStyle
	return h
}
