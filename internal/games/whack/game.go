// Package whack implements whack-a-mole: moles pop up in a grid of holes and
// the player hits them with the number keys or the mouse before a 30 second
// round runs out.
package whack

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/minis/internal/config"
	"github.com/vovakirdan/minis/internal/core"
	"github.com/vovakirdan/minis/internal/registry"
)

// Mode is the game's lifecycle state.
type Mode string

const (
	ModeIdle    Mode = "idle"
	ModePlaying Mode = "playing"
	ModePaused  Mode = "paused"
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom config file path for new games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for new games.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// Game implements whack-a-mole.
type Game struct {
	cfg      config.WhackConfig
	runtime  core.RuntimeConfig
	rng      *rand.Rand
	mode     Mode
	round    Round
	finished bool
	best     int
	scores   core.HighScoreStore
}

// New creates a new game with the loaded configuration.
func New() *Game {
	cfg, err := config.LoadWhack(configPath)
	if err != nil {
		log.Warn("whack config unusable, using defaults", "error", err)
		cfg = config.DefaultWhackConfig()
	}
	if difficultyPreset != "" {
		config.ApplyWhackPreset(&cfg, difficultyPreset)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.WhackConfig) *Game {
	return &Game{
		cfg:     cfg,
		runtime: core.DefaultConfig(),
		rng:     rand.New(rand.NewSource(1)),
		mode:    ModeIdle,
		round:   Round{Active: NoHole, Last: NoHole, Badges: make([]Badge, cfg.Holes)},
		scores:  &core.MemoryHighScore{},
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "whack"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Whack-a-Mole"
}

// BindHighScore attaches the best-score store and reads it once.
func (g *Game) BindHighScore(store core.HighScoreStore) {
	if store == nil {
		return
	}
	g.scores = store
	g.best = store.Read()
}

// Reset returns the game to the idle screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.mode = ModeIdle
	g.round = Round{Active: NoHole, Last: NoHole, Badges: make([]Badge, g.cfg.Holes)}
	g.finished = false
}

// Resize adapts the hole layout to a new screen size.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
}

// Step advances the game by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	switch g.mode {
	case ModeIdle:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
			g.Start()
		}

	case ModePaused:
		if in.Has(core.ActionPause) || in.Has(core.ActionConfirm) {
			g.mode = ModePlaying
		}

	case ModePlaying:
		if in.Has(core.ActionPause) {
			g.mode = ModePaused
			break
		}

		for _, hole := range g.targets(in) {
			g.round.Whack(hole, g.cfg, g.rng)
		}
		if g.round.Advance(dt, g.cfg, g.rng) {
			g.finish()
		}
	}

	return core.StepResult{State: g.State()}
}

// targets collects the holes hit by typed digits and clicks, in order.
func (g *Game) targets(in core.InputFrame) []int {
	var holes []int
	for _, r := range in.Text {
		if h, ok := KeyHole(r, g.cfg.Holes); ok {
			holes = append(holes, h)
		}
	}

	if len(in.Clicks) > 0 {
		rects := layout(g.runtime.ScreenW, g.runtime.ScreenH, g.cfg.Holes)
		for _, c := range in.Clicks {
			for i, r := range rects {
				if r.Contains(c.X, c.Y) {
					holes = append(holes, i)
					break
				}
			}
		}
	}
	return holes
}

// KeyHole maps a digit key to a hole. With nine holes the digits follow the
// numeric keypad: 7 8 9 on the top row, 1 2 3 on the bottom.
func KeyHole(r rune, holes int) (int, bool) {
	if r < '1' || r > '9' {
		return 0, false
	}
	d := int(r - '1')
	if holes == 9 {
		row := 2 - d/3
		return row*3 + d%3, true
	}
	if d >= holes {
		return 0, false
	}
	return d, true
}

// Start begins a new round unless one is already running.
func (g *Game) Start() {
	if g.mode != ModeIdle {
		return
	}
	g.round = NewRound(g.cfg, g.rng)
	g.mode = ModePlaying
	g.finished = false
}

func (g *Game) finish() {
	g.mode = ModeIdle
	g.finished = true

	previous := g.best
	g.best = core.RecordHighScore(g.scores, g.best, g.round.Score)

	log.Info("whack round ended",
		"score", g.round.Score,
		"best_streak", g.round.BestStreak,
		"best", g.best,
		"new_best", g.best > previous,
	)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.round.Score,
		GameOver: g.finished,
		Paused:   g.mode == ModePaused,
		Active:   g.mode != ModeIdle,
	}
}

// Round returns a copy of the current round.
func (g *Game) Round() Round {
	r := g.round
	r.Badges = append([]Badge(nil), g.round.Badges...)
	return r
}

// Mode returns the game's lifecycle state.
func (g *Game) Mode() Mode {
	return g.mode
}

// Best returns the best score known to the game.
func (g *Game) Best() int {
	return g.best
}

// Register the game with the registry
func init() {
	registry.Register("whack", func() registry.Game {
		return New()
	})
}
