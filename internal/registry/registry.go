// Package registry provides a global registry for program factories.
// Programs register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/minis/internal/core"
)

// Game is the interface every program (game or app) implements.
// Programs contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing and terminal output.
type Game interface {
	// ID returns a unique identifier (e.g., "arena", "calc").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the program.
	// Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the program by dt elapsed seconds using the input
	// snapshot for this frame.
	Step(in core.InputFrame, dt float64) core.StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current state (score, game over, paused).
	State() core.GameState
}

// Resizer is implemented by programs that adapt to a new screen size
// without losing their state. Programs that do not implement it are Reset.
type Resizer interface {
	Resize(width, height int)
}

// HighScoreBinder is implemented by programs that keep a persisted best
// score. The platform binds the store once, before the first Reset.
type HighScoreBinder interface {
	BindHighScore(store core.HighScoreStore)
}

// GameInfo contains metadata about a registered program.
type GameInfo struct {
	ID     string
	Title  string
	Scored bool // true for programs that keep a best score
}

// Factory is a function that creates a new instance of a program.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a program factory to the registry.
// Typically called from a program's init() function.
// Panics if a program with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Probe a temporary instance for metadata
	g := f()
	_, scored := g.(HighScoreBinder)
	infos[id] = GameInfo{ID: id, Title: g.Title(), Scored: scored}
}

// List returns information about all registered programs, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new program by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a program with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
