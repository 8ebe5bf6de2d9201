// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateLeft shortens s to at most maxWidth columns by dropping runes from
// the front and prefixing an ellipsis. Numbers keep their least significant
// digits visible while being typed.
func TruncateLeft(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	available := maxWidth - VisualWidth(TruncateEllipsis)
	if available <= 0 {
		return TruncateEllipsis
	}

	runes := []rune(s)
	start := len(runes)
	width := 0
	for start > 0 {
		w := runewidth.RuneWidth(runes[start-1])
		if width+w > available {
			break
		}
		width += w
		start--
	}
	return TruncateEllipsis + string(runes[start:])
}

// PadRightVisual pads s with spaces to targetWidth columns. Wider strings
// are returned unchanged.
func PadRightVisual(s string, targetWidth int) string {
	if w := VisualWidth(s); w < targetWidth {
		return s + runewidth.FillRight("", targetWidth-w)
	}
	return s
}
