package ui

import (
	"fmt"
	"strings"
)

// ThemeMode selects the dark or light palette. It never affects calculator state.
type ThemeMode bool

const (
	ThemeDark  ThemeMode = true
	ThemeLight ThemeMode = false
)

// Toggle returns the other mode.
func (m ThemeMode) Toggle() ThemeMode {
	return !m
}

func (m ThemeMode) String() string {
	if m == ThemeDark {
		return "dark"
	}
	return "light"
}

// ParseThemeMode accepts "dark" or "light" (case-insensitive).
func ParseThemeMode(s string) (ThemeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return ThemeDark, nil
	case "light":
		return ThemeLight, nil
	default:
		return ThemeDark, fmt.Errorf("unknown theme %q (want dark or light)", s)
	}
}

// Palette holds the colors for one ThemeMode.
type Palette struct {
	Background string
	Text       string
	Button     string
	Accent     string // operator and equals keys
	Focus      string // border of the focused key
	Muted      string // hints and status line
}

var (
	darkPalette = Palette{
		Background: "#1E1E1E",
		Text:       "#FFFFFF",
		Button:     "#333333",
		Accent:     ColorAccent,
		Focus:      "#FFFFFF",
		Muted:      "#8A8A8A",
	}
	lightPalette = Palette{
		Background: "#FFFFFF",
		Text:       "#000000",
		Button:     "#E0E0E0",
		Accent:     ColorAccent,
		Focus:      "#000000",
		Muted:      "#6B6B6B",
	}
)

// Palette returns the colors for m.
func (m ThemeMode) Palette() Palette {
	if m == ThemeDark {
		return darkPalette
	}
	return lightPalette
}

// ToggleLabel is the header control that switches to the other mode.
func (m ThemeMode) ToggleLabel() string {
	return "[ " + m.Toggle().String() + " ]"
}
