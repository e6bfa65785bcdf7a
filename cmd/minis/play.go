package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/minis/internal/apps/faq"
	"github.com/vovakirdan/minis/internal/config"
	"github.com/vovakirdan/minis/internal/core"
	"github.com/vovakirdan/minis/internal/games/arena"
	"github.com/vovakirdan/minis/internal/games/whack"
	"github.com/vovakirdan/minis/internal/platform/tui"
	"github.com/vovakirdan/minis/internal/registry"
	"github.com/vovakirdan/minis/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <id>",
	Short: "Run a program",
	Long: `Start the specified program.

Controls:
  WASD/Arrows  - Move (arena), navigate (faq)
  Mouse        - Aim (arena), click holes, keys and questions
  Space        - Shoot (arena), toggle (faq)
  Enter        - Start a round, evaluate, toggle
  1-9          - Whack a hole
  P            - Pause
  R            - Restart (after game over)
  Esc/Q        - Quit

Difficulty options (arena, whack):
  easy   - Gentler starting parameters
  normal - The configured values
  hard   - Harsher starting parameters
  fixed  - Exactly what the config file says

Examples:
  minis play arena
  minis play arena --difficulty hard
  minis play whack --config ./my-whack.yaml
  minis play faq --config ./my-faq.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom program config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown program %q (run 'minis list' to see available programs)", gameID)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	configureProgram(gameID, flagConfig, preset)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating program: %w", err)
	}

	store := openStore()
	defer closeStore(store)

	if err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}

// configureProgram hands the config path and difficulty to the program's
// package before an instance is created.
func configureProgram(gameID, configPath string, preset config.DifficultyPreset) {
	switch gameID {
	case "arena":
		arena.SetConfigPath(configPath)
		arena.SetDifficultyPreset(string(preset))
	case "whack":
		whack.SetConfigPath(configPath)
		whack.SetDifficultyPreset(string(preset))
	case "faq":
		faq.SetConfigPath(configPath)
	}
}

// hasDifficulty reports whether the program accepts a difficulty preset.
func hasDifficulty(gameID string) bool {
	return gameID == "arena" || gameID == "whack"
}

// runtimeConfig builds the runtime config from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. Programs still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		log.Warn("could not close scores database", "error", err)
	}
}
