package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-golf/internal/platform/tui"
	"github.com/vovakirdan/tui-golf/internal/registry"
	"github.com/vovakirdan/tui-golf/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresCard  bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the leaderboard",
	Long: `Display the lowest finished totals, for one mode or all of them.

Examples:
  golf scores
  golf scores golf --limit 20
  golf scores golf_physics --card   # scorecard of the latest round
  golf scores golf --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagScoresCard, "card", false, "Print the scorecard of the latest round")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the stored rounds of the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID, title := "", "All modes"
	if len(args) == 1 {
		gameID = args[0]
		info, ok := registry.Info(gameID)
		if !ok {
			return fmt.Errorf("unknown mode %q (run 'golf list' to see available modes)", gameID)
		}
		title = info.Title
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if gameID == "" {
			return fmt.Errorf("--clear needs a mode")
		}
		if err := store.ClearRounds(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared rounds for %s\n", title)
		return nil
	}

	if flagScoresCard {
		return printLatestCard(store, gameID)
	}

	entries, err := store.Leaderboard(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Leaderboard - %s\n", title)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No rounds recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-12s  %5s  %6s  %s\n", "Rank", "Player", "Style", "Total", "To par", "Date")
	fmt.Printf("  %-4s  %-12s  %-12s  %5s  %6s  %s\n", "----", "------", "-----", "-----", "------", "----")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-12s  %-12s  %5d  %6s  %s\n",
			i+1, e.Name, e.Style, e.Total, tui.FormatToPar(e.ToPar), e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if gameID != "" {
		if stats, err := store.GetGameStats(gameID); err == nil && stats.Rounds > 0 {
			fmt.Println()
			fmt.Printf("Rounds: %d  Best winning total: %d  Average: %.1f\n", stats.Rounds, stats.BestTotal, stats.AvgTotal)
		}
	}
	return nil
}

func printLatestCard(store *storage.Store, gameID string) error {
	rounds, err := store.RecentRounds(gameID, 1)
	if err != nil {
		return err
	}
	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		return nil
	}
	r := rounds[0]
	fmt.Printf("%s  %s course  seed %d  %s\n", r.GameID, r.Layout, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Println(tui.RenderScorecard(r.Summary()))
	return nil
}
