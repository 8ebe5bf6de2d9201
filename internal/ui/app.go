package ui

import (
	"context"
	"strings"

	"calcui/internal/calc"
	"calcui/internal/logger"
	"calcui/internal/trace"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel is the root model: calculator state plus everything needed to
// draw it and route input to calc.Press.
type AppModel struct {
	Calc      calc.State
	Theme     ThemeMode
	Focus     Focus
	ShowFocus bool // set once the keyboard moves focus
	ShowHelp  bool // full key help instead of the short bar
	Status    string
	Width     int
	Height    int

	Layout     Layout
	KeyHandler *KeyHandler
	Clipboard  ClipboardWriter

	ctx context.Context
}

// ClipboardWriter stores text on the system clipboard.
type ClipboardWriter func(string) error

// Option configures NewAppModel.
type Option func(*AppModel)

// WithTheme sets the initial theme.
func WithTheme(mode ThemeMode) Option {
	return func(a *AppModel) { a.Theme = mode }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(w ClipboardWriter) Option {
	return func(a *AppModel) { a.Clipboard = w }
}

// WithContext sets the parent context of evaluation spans.
func WithContext(ctx context.Context) Option {
	return func(a *AppModel) { a.ctx = ctx }
}

// NewAppModel creates the root application model in its start-up state.
func NewAppModel(opts ...Option) *AppModel {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("?", sendMsg(ToggleHelpMsg{}), "Help")
	reg.BindWithDesc("t", sendMsg(ToggleThemeMsg{}), "Theme")
	reg.BindWithDesc("SPC t", sendMsg(ToggleThemeMsg{}), "Theme")
	reg.BindWithDesc("SPC y", sendMsg(CopyDisplayMsg{}), "Copy result")
	reg.BindWithDesc("SPC c", sendMsg(PressMsg{Label: calc.LabelClear}), "Clear")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")

	a := &AppModel{
		Calc:       calc.New(),
		Theme:      ThemeDark,
		Layout:     DefaultLayout(),
		KeyHandler: NewKeyHandler(reg),
		Clipboard:  clipboard.WriteAll,
		ctx:        context.Background(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PressMsg:
		a.press(msg.Label)
	case ToggleThemeMsg:
		a.toggleTheme()
	case ToggleHelpMsg:
		a.ShowHelp = !a.ShowHelp
	case CopyDisplayMsg:
		return a, a.copyDisplay()
	case clipboardResultMsg:
		a.handleClipboardResult(msg)
	case tea.WindowSizeMsg:
		a.Width = msg.Width
		a.Height = msg.Height
	case tea.MouseMsg:
		a.handleMouse(msg)
	case tea.KeyMsg:
		if a.KeyHandler != nil {
			if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
				return a, cmd
			}
		}
		a.handleKey(msg)
	}
	return a, nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	b.WriteString(Render(RenderInput{
		State:     a.Calc,
		Theme:     a.Theme,
		Focus:     a.Focus,
		ShowFocus: a.ShowFocus,
		Status:    a.Status,
	}))
	b.WriteString("\n")
	if leader := RenderKeybindHelp(a.KeyHandler, a.Theme); leader != "" {
		b.WriteString(leader)
	} else {
		b.WriteString(RenderHelp(NewKeyMap(a.KeyHandler), a.ShowHelp, a.Width, a.Theme))
	}
	return b.String()
}

// press runs label through the calculator. "=" is traced and logged.
func (a *AppModel) press(label string) {
	a.Status = ""
	if label != calc.LabelEquals {
		a.Calc = calc.Press(a.Calc, label)
		return
	}

	ctx := a.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	before := a.Calc
	_, span := trace.StartEvaluation(ctx, before)
	next, err := calc.Step(before, label)
	trace.EndEvaluation(span, next, err)
	if err != nil {
		logger.Debug("evaluation skipped", "err", err, "pending", before.Pending, "operator", before.Operator, "display", before.Display)
	} else {
		logger.Debug("evaluated", "left", before.Pending, "operator", before.Operator, "right", before.Display, "result", next.Display)
	}
	a.Calc = next
}

func (a *AppModel) toggleTheme() {
	a.Theme = a.Theme.Toggle()
	logger.Debug("theme toggled", "mode", a.Theme)
}
