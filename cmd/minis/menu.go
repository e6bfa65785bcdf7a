package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/minis/internal/config"
	"github.com/vovakirdan/minis/internal/platform/tui"
	"github.com/vovakirdan/minis/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start minis with a program picker menu",
	Long: `Start minis in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a program.
Arena and whack-a-mole ask for a difficulty first.
When a program exits, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select program
  Tab          - Score history
  Q/Esc        - Quit

Examples:
  minis menu
  minis menu --fps 30
  minis menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	defer closeStore(store)

	cfg := runtimeConfig()
	preset := config.DifficultyNormal

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		gameID := menuResult.GameID
		if gameID == "" {
			return nil
		}

		if hasDifficulty(gameID) {
			title := gameID
			if g, err := registry.Create(gameID); err == nil {
				title = g.Title()
			}
			chosen, selErr := tui.RunDifficultySelector(title, preset, cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				continue
			}
			if chosen == "" {
				continue
			}
			preset = chosen
		}
		configureProgram(gameID, "", preset)

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating program: %v\n", err)
			continue
		}

		// Fresh seed for each run unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		log.Debug("starting program from menu", "program", gameID, "difficulty", preset)
		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		}
	}
}
