package faq

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/minis/internal/config"
	"github.com/vovakirdan/minis/internal/core"
	"github.com/vovakirdan/minis/internal/registry"
)

var configPath string

// SetConfigPath sets a custom FAQ content file for new instances.
func SetConfigPath(path string) {
	configPath = path
}

const (
	listTop      = 3
	answerIndent = 4
	closedMarker = '+'
	openMarker   = '-'
)

// line is one rendered row of the list.
type line struct {
	text     string
	item     int
	question bool
}

// App is the FAQ accordion program.
type App struct {
	title   string
	acc     *Accordion
	focus   int
	scroll  int
	runtime core.RuntimeConfig
}

// New creates the FAQ from the loaded content.
func New() *App {
	cfg, err := config.LoadFAQ(configPath)
	if err != nil {
		log.Warn("faq content unusable, using defaults", "error", err)
		cfg = config.DefaultFAQConfig()
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates the FAQ from explicit content.
func NewWithConfig(cfg config.FAQConfig) *App {
	return &App{
		title:   cfg.Title,
		acc:     NewAccordion(cfg.Items),
		runtime: core.DefaultConfig(),
	}
}

// ID returns the unique identifier for this program.
func (a *App) ID() string {
	return "faq"
}

// Title returns the display name for this program.
func (a *App) Title() string {
	return "FAQ"
}

// Reset collapses every answer and focuses the first question.
func (a *App) Reset(cfg core.RuntimeConfig) {
	a.runtime = cfg
	a.acc.CloseAll()
	a.focus = 0
	a.scroll = 0
}

// Resize re-wraps answers for the new width.
func (a *App) Resize(width, height int) {
	a.runtime.ScreenW = width
	a.runtime.ScreenH = height
}

// Accordion returns the underlying accordion.
func (a *App) Accordion() *Accordion {
	return a.acc
}

// Focus returns the focused item's position.
func (a *App) Focus() int {
	return a.focus
}

// Step moves focus and toggles items from keys and clicks.
func (a *App) Step(in core.InputFrame, dt float64) core.StepResult {
	n := a.acc.Len()
	if n == 0 {
		return core.StepResult{}
	}

	// Every key event counts, so quick taps and autorepeat both move focus
	for _, act := range in.Keys {
		switch act {
		case core.ActionUp:
			a.focus = (a.focus - 1 + n) % n
		case core.ActionDown:
			a.focus = (a.focus + 1) % n
		case core.ActionConfirm, core.ActionFire:
			a.acc.ToggleAt(a.focus)
		}
	}

	if len(in.Clicks) > 0 {
		lines := a.lines(a.runtime.ScreenW)
		for _, c := range in.Clicks {
			row := c.Y - listTop + a.scroll
			if c.Y < listTop || row < 0 || row >= len(lines) || !lines[row].question {
				continue
			}
			a.focus = lines[row].item
			a.acc.ToggleAt(a.focus)
		}
	}

	a.keepFocusVisible()
	return core.StepResult{}
}

// lines lays out questions and the expanded answer for a screen width.
func (a *App) lines(width int) []line {
	wrapAt := core.Max(width-answerIndent-2, 10)

	var out []line
	for i, it := range a.acc.Items() {
		marker := closedMarker
		if a.acc.OpenIndex() == i {
			marker = openMarker
		}
		out = append(out, line{text: "[" + string(marker) + "] " + it.Question, item: i, question: true})

		if a.acc.OpenIndex() != i {
			continue
		}
		for _, l := range strings.Split(ansi.Wrap(it.Answer, wrapAt, ""), "\n") {
			out = append(out, line{text: strings.Repeat(" ", answerIndent) + strings.TrimRight(l, " "), item: i})
		}
		out = append(out, line{item: i})
	}
	return out
}

// keepFocusVisible scrolls so the focused question is on screen.
func (a *App) keepFocusVisible() {
	visible := core.Max(a.runtime.ScreenH-listTop-1, 1)
	lines := a.lines(a.runtime.ScreenW)

	row := 0
	for i, l := range lines {
		if l.question && l.item == a.focus {
			row = i
			break
		}
	}

	switch {
	case row < a.scroll:
		a.scroll = row
	case row >= a.scroll+visible:
		a.scroll = row - visible + 1
	}
}

// State reports the FAQ as never scored and never over.
func (a *App) State() core.GameState {
	return core.GameState{}
}

// Render draws the title and the question list.
func (a *App) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextCenteredColored(1, a.title, core.ColorBrightCyan)

	lines := a.lines(dst.Width())
	for y := listTop; y < dst.Height()-1; y++ {
		i := y - listTop + a.scroll
		if i >= len(lines) {
			break
		}
		l := lines[i]

		color := core.ColorWhite
		switch {
		case l.question && l.item == a.focus:
			color = core.ColorBrightYellow
			dst.SetColored(0, y, '>', color)
		case l.question:
			color = core.ColorBrightWhite
		}
		dst.DrawTextColored(2, y, l.text, color)
	}

	dst.DrawTextCenteredColored(dst.Height()-1, "Up/Down: move  |  Enter/Space/click: toggle  |  B: menu", core.ColorGray)
}

// Register the program with the registry
func init() {
	registry.Register("faq", func() registry.Game {
		return New()
	})
}
