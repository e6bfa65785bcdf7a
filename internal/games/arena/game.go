// Package arena implements a top-down shooter: the player moves around a
// walled field, aims with the pointer and shoots enemies that spawn on the
// field's edge and chase the player.
package arena

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/minis/internal/config"
	"github.com/vovakirdan/minis/internal/core"
	"github.com/vovakirdan/minis/internal/registry"
)

// Mode is the controller's lifecycle state.
type Mode string

const (
	ModeIdle    Mode = "idle"    // Title screen, or final score after a session
	ModePlaying Mode = "playing" // A session is running
	ModePaused  Mode = "paused"  // A session is frozen
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

// Game owns at most one session and the best score.
type Game struct {
	cfg      config.ArenaConfig
	runtime  core.RuntimeConfig
	rng      *rand.Rand
	mode     Mode
	session  Session
	finished bool // Last session ended and no new one has started
	best     int
	scores   core.HighScoreStore
}

// New creates a new arena game with the loaded configuration.
func New() *Game {
	cfg, err := config.LoadArena(configPath)
	if err != nil {
		log.Warn("arena config unusable, using defaults", "error", err)
		cfg = config.DefaultArenaConfig()
	}
	if difficultyPreset != "" {
		config.ApplyArenaPreset(&cfg, difficultyPreset)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.ArenaConfig) *Game {
	return &Game{
		cfg:     cfg,
		runtime: core.DefaultConfig(),
		rng:     rand.New(rand.NewSource(1)),
		mode:    ModeIdle,
		scores:  &core.MemoryHighScore{},
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "arena"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Arena Shooter"
}

// BindHighScore attaches the best-score store and reads it once.
func (g *Game) BindHighScore(store core.HighScoreStore) {
	if store == nil {
		return
	}
	g.scores = store
	g.best = store.Read()
}

// Reset returns the game to the idle title screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.mode = ModeIdle
	g.session = Session{}
	g.finished = false
}

// Resize adapts the view to a new screen size without touching the session.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
}

// Step advances the game by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	switch g.mode {
	case ModeIdle:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) || len(in.Clicks) > 0 {
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

		var ev Events
		g.session, ev = g.session.Step(g.controls(in), dt, g.rng, g.cfg)
		if ev.Ended {
			g.finish()
		}
	}

	return core.StepResult{State: g.State()}
}

// Start begins a new session. It is a no-op while a session is running,
// so at most one session is ever active.
func (g *Game) Start() {
	if g.mode != ModeIdle {
		return
	}
	g.session = NewSession(g.cfg)
	g.mode = ModePlaying
	g.finished = false
}

// finish ends the running session and records the best score.
func (g *Game) finish() {
	g.mode = ModeIdle
	g.finished = true

	previous := g.best
	g.best = core.RecordHighScore(g.scores, g.best, g.session.Score)

	log.Info("arena session ended",
		"score", g.session.Score,
		"best", g.best,
		"new_best", g.best > previous,
		"elapsed", g.session.Elapsed,
	)
}

// controls converts the input snapshot to simulation controls.
func (g *Game) controls(in core.InputFrame) Controls {
	ctl := Controls{
		Up:    in.IsHeld(core.ActionUp),
		Down:  in.IsHeld(core.ActionDown),
		Left:  in.IsHeld(core.ActionLeft),
		Right: in.IsHeld(core.ActionRight),
		Shoot: in.IsHeld(core.ActionFire) || in.Pointer.Down,
	}
	if in.Pointer.Valid {
		ctl.Aim = g.view().ToWorld(in.Pointer.Point)
		ctl.HasAim = true
	}
	return ctl
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score,
		GameOver: g.finished,
		Paused:   g.mode == ModePaused,
		Active:   g.mode != ModeIdle,
	}
}

// Session returns a copy of the current session.
func (g *Game) Session() Session {
	return g.session
}

// Mode returns the controller's lifecycle state.
func (g *Game) Mode() Mode {
	return g.mode
}

// Best returns the best score known to the game.
func (g *Game) Best() int {
	return g.best
}

// Register the game with the registry
func init() {
	registry.Register("arena", func() registry.Game {
		return New()
	})
}
