package ui

// Geometry shared by Render and the mouse hit test. Every key is a bordered
// box keyInnerWidth columns wide and one text line tall.
const (
	keyInnerWidth    = 7
	keyOuterWidth    = keyInnerWidth + 2
	keyHeight        = 3
	equalsInnerWidth = 2*keyOuterWidth - 2
	gridColumns      = 4
	panelWidth       = gridColumns * keyOuterWidth

	framePadX = 2
	framePadY = 1

	headerRow  = 0
	displayTop = 1
	keypadTop  = displayTop + 3
)

// Layout maps terminal cells to the controls drawn by Render.
type Layout struct {
	// OriginX and OriginY are the top-left cell of the calculator panel,
	// inside the frame padding.
	OriginX int
	OriginY int
}

// DefaultLayout is the layout Render produces when drawn at the top-left
// corner of the screen.
func DefaultLayout() Layout {
	return Layout{OriginX: framePadX, OriginY: framePadY}
}

// KeyAt returns the key under cell (x, y).
func (l Layout) KeyAt(x, y int) (Focus, bool) {
	x -= l.OriginX
	y -= l.OriginY + keypadTop
	if x < 0 || y < 0 || x >= panelWidth {
		return Focus{}, false
	}
	row := y / keyHeight
	if row >= len(Rows) {
		return Focus{}, false
	}
	for col, label := range Rows[row] {
		w := keySpan(label) * keyOuterWidth
		if x < w {
			return Focus{Row: row, Col: col}, true
		}
		x -= w
	}
	return Focus{}, false
}

// ThemeToggleAt reports whether (x, y) is on the header's theme control,
// which is right-aligned and labeled by mode.ToggleLabel.
func (l Layout) ThemeToggleAt(x, y int, mode ThemeMode) bool {
	if y != l.OriginY+headerRow {
		return false
	}
	end := l.OriginX + panelWidth
	start := end - len(mode.ToggleLabel())
	return x >= start && x < end
}
