package calc

import (
	"github.com/vovakirdan/minis/internal/core"
	"github.com/vovakirdan/minis/internal/registry"
)

// Keypad rows, top to bottom
var keypad = [][]string{
	{"7", "8", "9", "/"},
	{"4", "5", "6", "*"},
	{"1", "2", "3", "-"},
	{"0", ".", "=", "+"},
	{"C", "(", ")"},
}

const (
	keyW    = 7
	keyH    = 3
	keyGap  = 1
	padCols = 4
	padTop  = 3
)

// button is a keypad key and where it is drawn.
type button struct {
	label string
	rect  core.Rect
}

// layout places the display and the keypad, centered horizontally.
func layout(screenW int) (core.Rect, []button) {
	width := padCols*keyW + (padCols-1)*keyGap
	left := core.Max((screenW-width)/2, 0)

	display := core.NewRect(left, padTop, width, 3)

	var buttons []button
	top := display.Bottom() + 1
	for row, keys := range keypad {
		for col, label := range keys {
			buttons = append(buttons, button{
				label: label,
				rect:  core.NewRect(left+col*(keyW+keyGap), top+row*keyH, keyW, keyH),
			})
		}
	}
	return display, buttons
}

// App is the calculator program.
type App struct {
	calc    Calculator
	runtime core.RuntimeConfig
	pressed string // Last key pressed, highlighted on the keypad
}

// New creates a calculator with an empty display.
func New() *App {
	return &App{runtime: core.DefaultConfig()}
}

// ID returns the unique identifier for this program.
func (a *App) ID() string {
	return "calc"
}

// Title returns the display name for this program.
func (a *App) Title() string {
	return "Calculator"
}

// Reset clears the calculator.
func (a *App) Reset(cfg core.RuntimeConfig) {
	a.runtime = cfg
	a.calc.Clear()
	a.pressed = ""
}

// Resize adapts the keypad layout to a new screen size.
func (a *App) Resize(width, height int) {
	a.runtime.ScreenW = width
	a.runtime.ScreenH = height
}

// Step applies typed characters, editing actions and keypad clicks.
func (a *App) Step(in core.InputFrame, dt float64) core.StepResult {
	for _, r := range in.Text {
		switch r {
		case 'c', 'C':
			a.Press("C")
		case '=':
			a.Press("=")
		default:
			if isExprRune(r) {
				a.Press(string(r))
			}
		}
	}

	if in.Has(core.ActionConfirm) {
		a.Press("=")
	}
	if in.Has(core.ActionClear) {
		a.Press("C")
	}
	if in.Has(core.ActionErase) {
		a.calc.Backspace()
		a.pressed = ""
	}

	if len(in.Clicks) > 0 {
		_, buttons := layout(a.runtime.ScreenW)
		for _, c := range in.Clicks {
			for _, b := range buttons {
				if b.rect.Contains(c.X, c.Y) {
					a.Press(b.label)
					break
				}
			}
		}
	}

	return core.StepResult{State: a.State()}
}

func isExprRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.' || r == '+' || r == '-' ||
		r == '*' || r == '/' || r == '(' || r == ')'
}

// Press handles one keypad key.
func (a *App) Press(label string) {
	a.pressed = label
	switch label {
	case "C":
		a.calc.Clear()
	case "=":
		a.calc.Calculate()
	default:
		a.calc.Append(label)
	}
}

// Calculator returns the underlying calculator state.
func (a *App) Calculator() *Calculator {
	return &a.calc
}

// State reports a calculator as never scored and never over.
func (a *App) State() core.GameState {
	return core.GameState{}
}

// Render draws the display and keypad.
func (a *App) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextCenteredColored(1, "CALCULATOR", core.ColorBrightCyan)

	display, buttons := layout(dst.Width())
	dst.DrawBoxColored(display, core.ColorGray)

	text := []rune(a.calc.Display())
	inner := display.W - 2
	if len(text) > inner {
		text = text[len(text)-inner:]
	}
	color := core.ColorBrightWhite
	if a.calc.Err() != nil {
		color = core.ColorBrightRed
	}
	dst.DrawTextColored(display.Right()-1-len(text), display.Y+1, string(text), color)

	for _, b := range buttons {
		border := core.ColorGray
		label := core.ColorWhite
		switch {
		case b.label == a.pressed:
			border, label = core.ColorBrightYellow, core.ColorBrightYellow
		case b.label == "=" || b.label == "C":
			label = core.ColorBrightGreen
		case isOperator(b.label):
			label = core.ColorCyan
		}
		dst.DrawBoxColored(b.rect, border)
		cx, cy := b.rect.Center()
		dst.DrawTextColored(cx, cy, b.label, label)
	}

	dst.DrawTextCenteredColored(dst.Height()-1, "Type or click  |  Enter/=: evaluate  |  c: clear  |  Backspace: erase", core.ColorGray)
}

func isOperator(label string) bool {
	switch label {
	case "+", "-", "*", "/", "(", ")":
		return true
	}
	return false
}

// Register the program with the registry
func init() {
	registry.Register("calc", func() registry.Game {
		return New()
	})
}
