package calc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/minis/internal/core"
)

func TestCalculatorEvaluates(t *testing.T) {
	var c Calculator
	c.Append("2")
	c.Append("+")
	c.Append("2")
	assert.Equal(t, "2+2", c.Display())

	c.Calculate()
	assert.Equal(t, "4", c.Display())
	assert.Equal(t, "4", c.Buffer())
	assert.NoError(t, c.Err())

	// Typing continues from the result
	c.Append("*3")
	c.Calculate()
	assert.Equal(t, "12", c.Display())
}

func TestCalculatorContinuesFromExponentResult(t *testing.T) {
	var c Calculator
	c.Append("1000000000000*1000000000")
	c.Calculate()
	require.Equal(t, "1e+21", c.Buffer())

	c.Append("+1")
	c.Calculate()
	assert.NoError(t, c.Err())
	assert.Equal(t, "1e+21", c.Display())

	c.Clear()
	c.Append("1/10000000")
	c.Calculate()
	require.Equal(t, "1e-7", c.Buffer())

	c.Append("+0")
	c.Calculate()
	assert.NoError(t, c.Err())
	assert.Equal(t, "1e-7", c.Display())
}

func TestCalculatorErrorResetsBuffer(t *testing.T) {
	var c Calculator
	c.Append("2+")
	c.Calculate()

	assert.Equal(t, ErrorText, c.Display())
	assert.Empty(t, c.Buffer())
	assert.ErrorIs(t, c.Err(), ErrSyntax)

	c.Append("5")
	assert.Equal(t, "5", c.Display())
	assert.NoError(t, c.Err())
}

func TestCalculatorEmptyAndDivisionByZero(t *testing.T) {
	var c Calculator
	c.Calculate()
	assert.Equal(t, ErrorText, c.Display())
	assert.ErrorIs(t, c.Err(), ErrEmpty)

	c.Append("1/0")
	c.Calculate()
	assert.Equal(t, ErrorText, c.Display())
	assert.ErrorIs(t, c.Err(), ErrDivisionByZero)
}

func TestCalculatorClearAndBackspace(t *testing.T) {
	var c Calculator
	c.Append("12+3")
	c.Backspace()
	assert.Equal(t, "12+", c.Display())

	c.Clear()
	assert.Empty(t, c.Display())
	assert.Empty(t, c.Buffer())

	c.Backspace()
	assert.Empty(t, c.Buffer())
}

func typed(s string) core.InputFrame {
	in := core.NewInputFrame()
	in.Text = []rune(s)
	return in
}

func TestAppTyping(t *testing.T) {
	a := New()
	a.Reset(core.DefaultConfig())

	a.Step(typed("7*(1+2) x"), 0)
	assert.Equal(t, "7*(1+2)", a.Calculator().Buffer(), "letters and spaces are ignored")

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	a.Step(in, 0)
	assert.Equal(t, "21", a.Calculator().Display())

	a.Step(typed("c"), 0)
	assert.Empty(t, a.Calculator().Display())

	a.Step(typed("9-4="), 0)
	assert.Equal(t, "5", a.Calculator().Display())

	in = core.NewInputFrame()
	in.Set(core.ActionErase)
	a.Step(in, 0)
	assert.Empty(t, a.Calculator().Buffer())

	a.Step(typed("88"), 0)
	in = core.NewInputFrame()
	in.Set(core.ActionClear)
	a.Step(in, 0)
	assert.Empty(t, a.Calculator().Buffer())
}

func TestAppKeypadClicks(t *testing.T) {
	a := New()
	a.Reset(core.DefaultConfig())

	_, buttons := layout(80)
	at := func(label string) core.Point {
		for _, b := range buttons {
			if b.label == label {
				x, y := b.rect.Center()
				return core.Point{X: x, Y: y}
			}
		}
		t.Fatalf("no key %q", label)
		return core.Point{}
	}

	in := core.NewInputFrame()
	in.Clicks = []core.Point{at("1"), at("."), at("5"), at("*"), at("4"), at("=")}
	a.Step(in, 0)
	assert.Equal(t, "6", a.Calculator().Display())

	in = core.NewInputFrame()
	in.Clicks = []core.Point{at("C"), {X: 0, Y: 0}}
	a.Step(in, 0)
	assert.Empty(t, a.Calculator().Display())
}

func TestKeypadLayout(t *testing.T) {
	display, buttons := layout(80)
	require.Len(t, buttons, 19)

	for i, b := range buttons {
		assert.False(t, b.rect.Intersects(display), "key %q overlaps the display", b.label)
		assert.LessOrEqual(t, b.rect.Bottom(), 23, "key %q below the help line", b.label)
		for _, o := range buttons[i+1:] {
			assert.False(t, b.rect.Intersects(o.rect), "keys %q and %q overlap", b.label, o.label)
		}
	}
}

func TestAppRender(t *testing.T) {
	a := New()
	a.Reset(core.DefaultConfig())
	screen := core.NewScreen(80, 24)

	a.Step(typed("2+"), 0)
	a.Press("=")
	a.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "CALCULATOR")
	assert.Contains(t, out, ErrorText)
	for _, row := range keypad {
		for _, label := range row {
			assert.Contains(t, out, label)
		}
	}

	// Long input keeps its tail visible
	a.Press("C")
	a.Step(typed(strings.Repeat("1", 40)+"+2"), 0)
	a.Render(screen)
	assert.Contains(t, screen.String(), "111+2")
}

func TestAppIsNeverScored(t *testing.T) {
	a := New()
	a.Reset(core.DefaultConfig())
	a.Step(typed("1+1="), 0)

	state := a.State()
	assert.False(t, state.GameOver)
	assert.False(t, state.Active)
	assert.Zero(t, state.Score)
}
