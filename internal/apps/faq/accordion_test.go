package faq

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/minis/internal/config"
	"github.com/vovakirdan/minis/internal/core"
)

func testItems() []config.FAQItem {
	return []config.FAQItem{
		{ID: "a", Question: "First?", Answer: "One."},
		{ID: "b", Question: "Second?", Answer: "Two."},
		{ID: "c", Question: "Third?", Answer: "Three."},
	}
}

func openCount(a *Accordion) int {
	n := 0
	for _, it := range a.Items() {
		if a.IsOpen(it.ID) {
			n++
		}
	}
	return n
}

func TestToggleOpensAndCloses(t *testing.T) {
	a := NewAccordion(testItems())
	assert.Equal(t, 0, openCount(a))

	require.True(t, a.Toggle("a"))
	assert.True(t, a.IsOpen("a"))

	require.True(t, a.Toggle("a"))
	assert.False(t, a.IsOpen("a"), "toggling the open item closes it")
	_, ok := a.OpenID()
	assert.False(t, ok)
}

func TestOpeningClosesPrevious(t *testing.T) {
	a := NewAccordion(testItems())

	a.Toggle("a")
	a.Toggle("c")

	assert.False(t, a.IsOpen("a"))
	assert.True(t, a.IsOpen("c"))
	id, ok := a.OpenID()
	assert.True(t, ok)
	assert.Equal(t, "c", id)
	assert.Equal(t, 2, a.OpenIndex())
}

func TestAtMostOneOpen(t *testing.T) {
	a := NewAccordion(testItems())
	ids := []string{"a", "b", "c", "missing"}
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 500; i++ {
		a.Toggle(ids[rng.Intn(len(ids))])
		require.LessOrEqual(t, openCount(a), 1)
	}
}

func TestToggleUnknownID(t *testing.T) {
	a := NewAccordion(testItems())
	a.Toggle("b")

	assert.False(t, a.Toggle("nope"))
	assert.True(t, a.IsOpen("b"), "unknown ids leave state alone")
	assert.False(t, a.IsOpen("nope"))
}

func TestMissingIDsUsePosition(t *testing.T) {
	a := NewAccordion([]config.FAQItem{{Question: "x"}, {Question: "y"}})
	assert.Equal(t, "0", a.Items()[0].ID)
	assert.True(t, a.Toggle("1"))
	assert.Equal(t, 1, a.OpenIndex())
}

func newTestApp() *App {
	app := NewWithConfig(config.FAQConfig{Title: "FAQ", Items: testItems()})
	app.Reset(core.DefaultConfig())
	return app
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestAppKeyboard(t *testing.T) {
	app := newTestApp()

	app.Step(press(core.ActionDown), 0)
	assert.Equal(t, 1, app.Focus())

	app.Step(press(core.ActionConfirm), 0)
	assert.True(t, app.Accordion().IsOpen("b"))

	app.Step(press(core.ActionUp), 0)
	app.Step(press(core.ActionUp), 0)
	assert.Equal(t, 2, app.Focus(), "focus wraps around")

	app.Step(press(core.ActionFire), 0)
	assert.True(t, app.Accordion().IsOpen("c"))
	assert.False(t, app.Accordion().IsOpen("b"))
}

func TestAppStepsOncePerKeyEvent(t *testing.T) {
	app := newTestApp()

	// Quick taps arrive as a press followed by latched repeats
	in := core.NewInputFrame()
	in.Set(core.ActionDown)
	in.Keys = append(in.Keys, core.ActionDown)
	app.Step(in, 0)

	assert.Equal(t, 2, app.Focus())
}

func TestAppClickTogglesQuestion(t *testing.T) {
	app := newTestApp()

	click := func(y int) {
		in := core.NewInputFrame()
		in.Clicks = []core.Point{{X: 5, Y: y}}
		app.Step(in, 0)
	}

	// Rows: 3 "First?", 4 "Second?", 5 "Third?"
	click(4)
	assert.True(t, app.Accordion().IsOpen("b"))
	assert.Equal(t, 1, app.Focus())

	// With "b" open its answer sits on row 5 and "Third?" moves to row 7
	click(5)
	assert.True(t, app.Accordion().IsOpen("b"), "clicking an answer does nothing")

	click(7)
	assert.True(t, app.Accordion().IsOpen("c"))

	click(1)
	assert.True(t, app.Accordion().IsOpen("c"), "clicks above the list are ignored")
}

func TestAppRenderWrapsAnswer(t *testing.T) {
	long := strings.Repeat("lorem ipsum ", 20)
	app := NewWithConfig(config.FAQConfig{
		Title: "Help",
		Items: []config.FAQItem{{ID: "x", Question: "Why?", Answer: long}},
	})
	app.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 24})
	app.Accordion().Toggle("x")

	screen := core.NewScreen(40, 24)
	app.Render(screen)

	assert.Contains(t, screen.Row(1), "Help")
	assert.Contains(t, screen.Row(3), "[-] Why?")
	assert.Contains(t, screen.Row(4), "lorem")
	assert.Contains(t, screen.Row(5), "lorem", "long answers continue on the next row")
}

func TestAppScrollsToFocus(t *testing.T) {
	var items []config.FAQItem
	for i := 0; i < 30; i++ {
		items = append(items, config.FAQItem{Question: "Q"})
	}
	app := NewWithConfig(config.FAQConfig{Items: items})
	app.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 10})

	for i := 0; i < 12; i++ {
		app.Step(press(core.ActionDown), 0)
	}
	assert.Equal(t, 12, app.Focus())

	screen := core.NewScreen(80, 10)
	app.Render(screen)
	assert.Contains(t, screen.String(), ">", "focused row is on screen")
}

func TestDefaultContentLoads(t *testing.T) {
	cfg := config.DefaultFAQConfig()
	app := NewWithConfig(cfg)
	assert.Equal(t, len(cfg.Items), app.Accordion().Len())
}
