package ui

import (
	"bytes"
	"errors"
	"testing"

	"calcui/internal/calc"
	"calcui/internal/logger"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(opts ...Option) (*AppModel, tea.Model) {
	a := NewAppModel(append([]Option{WithClipboard(nil)}, opts...)...)
	return a, a.AsTeaModel()
}

// send delivers msg, then runs any returned command and delivers its
// message, until no command is left. Quit is reported instead of delivered.
func send(t *testing.T, m tea.Model, msg tea.Msg) (quit bool) {
	t.Helper()
	for i := 0; msg != nil && i < 10; i++ {
		_, cmd := m.Update(msg)
		if cmd == nil {
			return false
		}
		msg = cmd()
		if _, ok := msg.(tea.QuitMsg); ok {
			return true
		}
	}
	return false
}

func typeKeys(t *testing.T, m tea.Model, keys ...string) {
	t.Helper()
	for _, k := range keys {
		send(t, m, keyMsg(k))
	}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestApp_InitialState(t *testing.T) {
	a, _ := newTestApp()
	assert.Equal(t, calc.New(), a.Calc)
	assert.Equal(t, ThemeDark, a.Theme)
	assert.False(t, a.ShowFocus)
}

func TestApp_WithTheme(t *testing.T) {
	a, _ := newTestApp(WithTheme(ThemeLight))
	assert.Equal(t, ThemeLight, a.Theme)
}

func TestApp_TypedExpression(t *testing.T) {
	tests := []struct {
		keys []string
		want string
	}{
		{[]string{"5", "+", "3", "="}, "8"},
		{[]string{"5", "+", "3", "enter"}, "8"},
		{[]string{"6", "/", "0", "="}, "Infinity"},
		{[]string{"9", "n"}, "-9"},
		{[]string{"5", "0", "%"}, "0.5"},
		{[]string{"1", ".", ".", "5"}, "1.5"},
		{[]string{"7", "*", "6", "esc"}, "0"},
		{[]string{"7", "c"}, "0"},
		{[]string{"7", "delete"}, "0"},
	}
	for _, tt := range tests {
		a, m := newTestApp()
		typeKeys(t, m, tt.keys...)
		assert.Equal(t, tt.want, a.Calc.Display, "keys %v", tt.keys)
	}
}

func TestApp_ClearResetsPending(t *testing.T) {
	a, m := newTestApp()
	typeKeys(t, m, "7", "*", "6", "esc")
	assert.Equal(t, calc.New(), a.Calc)
}

func TestApp_PressMsg(t *testing.T) {
	a, m := newTestApp()
	for _, l := range []string{"1", "2", "+", "3", "="} {
		send(t, m, PressMsg{Label: l})
	}
	assert.Equal(t, "15", a.Calc.Display)
}

func TestApp_ThemeToggleLeavesCalculatorAlone(t *testing.T) {
	a, m := newTestApp()
	typeKeys(t, m, "4", "+", "2")
	before := a.Calc

	typeKeys(t, m, "t")
	assert.Equal(t, ThemeLight, a.Theme)
	assert.Equal(t, before, a.Calc)

	typeKeys(t, m, " ", "t")
	assert.Equal(t, ThemeDark, a.Theme, "SPC t toggles back")
	assert.Equal(t, before, a.Calc)
}

func TestApp_LeaderClear(t *testing.T) {
	a, m := newTestApp()
	typeKeys(t, m, "4", "+", "2", " ", "c")
	assert.Equal(t, calc.New(), a.Calc)
}

func TestApp_LeaderConsumesKeypadKeys(t *testing.T) {
	a, m := newTestApp()
	typeKeys(t, m, " ", "5")
	assert.Equal(t, "0", a.Calc.Display)
	assert.False(t, a.KeyHandler.LeaderWaiting)
}

func TestApp_FocusNavigation(t *testing.T) {
	a, m := newTestApp()

	typeKeys(t, m, "down")
	assert.True(t, a.ShowFocus)
	assert.Equal(t, Focus{}, a.Focus, "first arrow only reveals focus")

	typeKeys(t, m, "down", "right", "enter")
	assert.Equal(t, "8", a.Calc.Display)

	typeKeys(t, m, "j", "j", "j", "l", "l", "enter")
	assert.Equal(t, "=", a.Focus.Label())
	assert.Equal(t, "8", a.Calc.Display, "= with nothing pending is a no-op")
}

func TestApp_MouseClickPressesKey(t *testing.T) {
	a, m := newTestApp()
	l := a.Layout
	top := l.OriginY + keypadTop

	send(t, m, click(l.OriginX+1, top+keyHeight+1))              // 7
	send(t, m, click(l.OriginX+3*keyOuterWidth, top+3*keyHeight)) // +
	send(t, m, click(l.OriginX, top+4*keyHeight))                 // 0
	send(t, m, click(l.OriginX+panelWidth-1, top+4*keyHeight))    // =
	assert.Equal(t, "7", a.Calc.Display)

	send(t, m, tea.MouseMsg{X: l.OriginX, Y: top, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Equal(t, "7", a.Calc.Display, "release events are ignored")
}

func TestApp_MouseClickTogglesTheme(t *testing.T) {
	a, m := newTestApp()
	l := a.Layout
	send(t, m, click(l.OriginX+panelWidth-2, l.OriginY))
	assert.Equal(t, ThemeLight, a.Theme)
}

func TestApp_CopyDisplay(t *testing.T) {
	var copied string
	a, m := newTestApp(WithClipboard(func(s string) error {
		copied = s
		return nil
	}))
	typeKeys(t, m, "4", "2", " ", "y")
	assert.Equal(t, "42", copied)
	assert.Equal(t, "copied 42", a.Status)

	typeKeys(t, m, "1")
	assert.Empty(t, a.Status, "status clears on the next press")
}

func TestApp_CopyDisplayFailure(t *testing.T) {
	a, m := newTestApp(WithClipboard(func(string) error {
		return errors.New("no display")
	}))
	send(t, m, CopyDisplayMsg{})
	assert.Equal(t, "copy failed: no display", a.Status)
	assert.Equal(t, "0", a.Calc.Display)

	b, m2 := newTestApp()
	send(t, m2, CopyDisplayMsg{})
	assert.Contains(t, b.Status, errNoClipboard.Error())
}

func TestApp_Quit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		_, m := newTestApp()
		assert.True(t, send(t, m, keyMsg(k)), k)
	}
	_, m := newTestApp()
	typeKeys(t, m, " ")
	assert.True(t, send(t, m, keyMsg("q")), "SPC q")
}

func TestApp_HelpToggle(t *testing.T) {
	a, m := newTestApp()
	short := m.View()
	typeKeys(t, m, "?")
	assert.True(t, a.ShowHelp)
	assert.NotEqual(t, short, m.View())
	assert.Contains(t, m.View(), "negate")
}

func TestApp_ViewShowsLeaderHints(t *testing.T) {
	_, m := newTestApp()
	typeKeys(t, m, " ")
	v := m.View()
	assert.Contains(t, v, "Copy result")
	assert.Contains(t, v, "cancel")
}

func TestApp_EvaluationIsLogged(t *testing.T) {
	prev := logger.Logger
	t.Cleanup(func() { logger.Logger = prev })
	require.NoError(t, logger.Configure("debug", ""))
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	_, m := newTestApp()
	typeKeys(t, m, "=")
	assert.Contains(t, buf.String(), "evaluation skipped")

	typeKeys(t, m, "2", "*", "3", "=")
	assert.Contains(t, buf.String(), "evaluated")
	assert.Contains(t, buf.String(), "result=6")
}
