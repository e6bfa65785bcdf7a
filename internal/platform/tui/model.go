package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/minis/internal/core"
	"github.com/vovakirdan/minis/internal/registry"
	"github.com/vovakirdan/minis/internal/storage"
)

// Model is the Bubble Tea model for running one program.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keys      *KeyMapper
	input     *core.InputAdapter
	latch     *KeyLatch
	timer     *core.FrameTimer
	gameState core.GameState
	sessionID string
	quitting  bool
	restart   bool // R pressed; applied on the next tick
	now       func() time.Time
}

// NewModel creates a new Bubble Tea model for the given program. A nil
// store keeps best scores in memory for this run only.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if binder, ok := game.(registry.HighScoreBinder); ok {
		binder.BindHighScore(highScoreStore(store, game.ID()))
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
		input:  core.NewInputAdapter(),
		latch:  NewKeyLatch(DefaultHoldTimeout),
		timer:  core.NewFrameTimer(core.DefaultMaxDelta),
		now:    time.Now,
	}
}

func highScoreStore(store *storage.Store, gameID string) core.HighScoreStore {
	if store == nil {
		return &core.MemoryHighScore{}
	}
	return storage.NewHighScoreSlot(store, storage.HighScoreKey(gameID))
}

// Init initializes the model and starts the program.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit, action == core.ActionBack:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.restart = true
			return m, nil
		}

	case Holdable(action):
		m.latch.KeyDown(m.input, action, m.now())

	case action != core.ActionNone:
		m.input.Press(action)
	}

	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			m.input.Type(r)
		}
	}
	return m, nil
}

// handleMouse tracks the cursor and the primary button.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.input.PointerDown(msg.X, msg.Y)
		} else {
			m.input.PointerMove(msg.X, msg.Y)
		}
	case tea.MouseActionRelease:
		m.input.PointerUp(msg.X, msg.Y)
	case tea.MouseActionMotion:
		m.input.PointerMove(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Programs that can resize keep their state; others restart unless a
	// final score is on screen.
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick runs one frame with the real elapsed time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.restart {
		m.restart = false
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.sessionID = ""
		m.input.Reset()
		m.latch.Reset()
		m.timer.Reset()
		return m, tickCmd(m.config.TickRate)
	}

	m.latch.Expire(m.input, now)
	dt := m.timer.Advance(now)

	prev := m.gameState
	result := m.game.Step(m.input.Frame(), dt)
	m.gameState = result.State

	if m.gameState.Active && !prev.Active {
		m.sessionID = uuid.NewString()
		log.Info("session started", "program", m.game.ID(), "session", m.sessionID)
	}
	if m.gameState.GameOver && !prev.GameOver {
		m.saveScore()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore appends the finished session to the score history once.
func (m *Model) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.sessionID, m.gameState.Score); err != nil {
		log.Warn("could not save score", "program", m.game.ID(), "session", m.sessionID, "error", err)
		return
	}
	log.Info("score saved", "program", m.game.ID(), "session", m.sessionID, "score", m.gameState.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".minis", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		log.Warn("screenshot not written", "path", path, "error", err)
		return
	}
	log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.config.ScreenW < MinWidth || m.config.ScreenH < MinHeight {
		return RenderTooSmall(m.config.ScreenW, m.config.ScreenH)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// SessionID returns the identifier of the current or last session.
func (m Model) SessionID() string {
	return m.sessionID
}

// State returns the program state as of the last frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Cursor position without a button held
	)

	_, err := p.Run()
	return err
}
