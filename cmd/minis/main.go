// minis is a collection of small terminal programs: an arena shooter,
// whack-a-mole, a calculator and an FAQ accordion.
//
// Usage:
//
//	minis list              - List available programs
//	minis play <id>         - Run a program
//	minis menu              - Start menu to pick programs interactively
//	minis scores <id>       - Show score history for a game
//	minis calc "<expr>"     - Evaluate an expression and print the result
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.minis/scores.db)
//	--log-file <path>     - Log destination (default: ~/.minis/minis.log)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import programs to register them
	_ "github.com/vovakirdan/minis/internal/apps/calc"
	_ "github.com/vovakirdan/minis/internal/apps/faq"
	_ "github.com/vovakirdan/minis/internal/games/arena"
	_ "github.com/vovakirdan/minis/internal/games/whack"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	err := rootCmd.Execute()
	closeLogging()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minis",
	Short: "Minis - small programs for your terminal",
	Long: `Minis bundles a few small terminal programs behind one launcher.

Available commands:
  list     - Show all available programs
  play     - Run a specific program directly
  menu     - Interactive program picker
  scores   - View score history
  calc     - Evaluate an expression without the UI

Examples:
  minis list
  minis play arena
  minis play whack --difficulty hard
  minis menu
  minis scores arena
  minis calc "(1+2)*3"`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return setupLogging(flagLogFile, flagLogLevel)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.minis/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.minis/minis.log", "Log file path (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(calcCmd)
}
