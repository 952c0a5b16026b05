// golf is a terminal mini-golf simulator: simulated or keyboard-aimed
// players play an 18-hole course, with scores kept in a local database.
//
// Usage:
//
//	golf list                - List available modes
//	golf play <mode>         - Play a round
//	golf menu                - Pick modes interactively
//	golf simulate            - Play AI rounds headless and print statistics
//	golf serve               - Start SSH server for remote play
//	golf scores [mode]       - Show the leaderboard
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible rounds
//	--db <path>          - Set database path (default: ~/.golf/scores.db)
//	--config <path>      - Use a custom golf.yaml
//	--difficulty <name>  - Difficulty preset: easy, normal, hard
//	--players <a,b,...>  - Starting players
//	--course <layout>    - Course layout: template, grid, random
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-golf/internal/games/minigolf"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagPlayers    []string
	flagCourse     string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "golf",
	Short: "TUI Golf - Mini golf in your terminal",
	Long: `TUI Golf simulates rounds of mini golf on an 18-hole course.

Simulated players with different styles plan their own shots, or you
aim and shoot yourself. Finished rounds are saved to a leaderboard.

Available commands:
  list      - Show all modes
  play      - Play a round in a specific mode
  menu      - Interactive mode picker
  simulate  - Play AI rounds without a terminal UI
  serve     - Start SSH server for remote play
  scores    - View the leaderboard

Examples:
  golf list
  golf play golf --players Ann,Bob,Cy
  golf play golf_physics --course random
  golf simulate --rounds 50
  golf serve --ssh :2222
  golf scores golf`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return applyGameFlags()
	},
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.golf/scores.db", "Path to rounds database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom golf config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringSliceVar(&flagPlayers, "players", nil, "Starting players (comma separated)")
	pf.StringVar(&flagCourse, "course", "", "Course layout: template, grid, random")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
