package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minis/internal/registry"
	"github.com/vovakirdan/minis/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <id>",
	Short: "Show score history for a game",
	Long: `Display the top scores, play statistics and the best score for the
specified game.

Examples:
  minis scores arena
  minis scores whack --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func scoredInfo(gameID string) (registry.GameInfo, error) {
	for _, info := range registry.List() {
		if info.ID != gameID {
			continue
		}
		if !info.Scored {
			return info, fmt.Errorf("%s does not keep scores", info.Title)
		}
		return info, nil
	}
	return registry.GameInfo{}, fmt.Errorf("unknown program %q (run 'minis list' to see available programs)", gameID)
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]

	info, err := scoredInfo(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer closeStore(store)

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'minis play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-16s  %s\n", "Rank", "Score", "Date", "Session")
	fmt.Printf("  %-4s  %-10s  %-16s  %s\n", "----", "-----", "----", "-------")

	for i, entry := range scores {
		session := entry.SessionID
		if len(session) > 8 {
			session = session[:8]
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-16s  %s\n", i+1, entry.Score, dateStr, session)
	}

	fmt.Println()
	if stats, err := store.GameStats(gameID); err == nil {
		fmt.Printf("Games: %d  Avg: %.1f  Last played: %s\n",
			stats.GamesCount, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	best := storage.NewHighScoreSlot(store, storage.HighScoreKey(gameID)).Read()
	fmt.Printf("Best: %d\n", best)
	return nil
}
