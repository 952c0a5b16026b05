package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-golf/internal/games/minigolf"
	"github.com/vovakirdan/tui-golf/internal/golf"
	"github.com/vovakirdan/tui-golf/internal/platform/tui"
	"github.com/vovakirdan/tui-golf/internal/storage"
)

var (
	flagSimRounds  int
	flagSimVariant string
	flagSimSave    bool
	flagSimCards   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play AI rounds without a terminal UI",
	Long: `Play rounds with simulated players back to back and print statistics
of the winning totals. Round i uses seed+i, so runs are reproducible
with --seed.

Examples:
  golf simulate
  golf simulate --rounds 100 --players Ann,Bob,Cy,Dee
  golf simulate --variant physics --course random --seed 42
  golf simulate --rounds 5 --cards --save`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimRounds, "rounds", 10, "Number of rounds to play")
	simulateCmd.Flags().StringVar(&flagSimVariant, "variant", "instant", "Shot model: instant or physics")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Save every round to the database")
	simulateCmd.Flags().BoolVar(&flagSimCards, "cards", false, "Print the scorecard of every round")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "golf-sim")
	if err != nil {
		return err
	}
	if flagSimRounds <= 0 {
		return fmt.Errorf("--rounds must be positive, got %d", flagSimRounds)
	}
	variant, err := golf.ParseVariant(flagSimVariant)
	if err != nil {
		return err
	}
	cfg, err := minigolf.LoadConfig()
	if err != nil {
		return err
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gameID := minigolf.IDAuto
	if variant == golf.VariantPhysics {
		gameID = minigolf.IDPhysics
	}

	logger.Info("simulating", "rounds", flagSimRounds, "variant", variant, "layout", cfg.Course.Layout,
		"players", len(cfg.Players.Names), "seed", seed)

	start := time.Now()
	rounds, err := minigolf.Simulate(cfg, variant, flagSimRounds, seed)
	if errors.Is(err, minigolf.ErrNoPlayers) {
		return fmt.Errorf("%w (use --players)", err)
	}
	if err != nil {
		return err
	}
	logger.Debug("simulation done", "elapsed", time.Since(start))

	var store *storage.Store
	if flagSimSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	for _, r := range rounds {
		w, _ := r.Summary.Winner()
		logger.Debug("round", "seed", r.Seed, "winner", w.Name, "total", w.Total, "ticks", r.Summary.Ticks)
		if flagSimCards {
			fmt.Printf("Seed %d\n%s\n\n", r.Seed, tui.RenderScorecard(r.Summary))
		}
		if store != nil {
			if _, err := store.SaveSummary(gameID, cfg.Course.Layout, r.Seed, r.Summary); err != nil {
				logger.Warn("could not save round", "seed", r.Seed, "error", err)
			}
		}
	}

	printStats(minigolf.Summarize(rounds), rounds[0].Summary.TotalPar)
	return nil
}

func printStats(st minigolf.SimStats, totalPar int) {
	fmt.Printf("Rounds: %d  Course par: %d\n", st.Rounds, totalPar)
	if st.Rounds == 0 {
		return
	}
	fmt.Printf("Winning total  mean %.1f  sd %.1f  best %.0f  median %.0f  worst %.0f\n",
		st.Mean, st.StdDev, st.Best, st.Median, st.Worst)
	fmt.Println()

	names := make([]string, 0, len(st.Wins))
	for name := range st.Wins {
		names = append(names, name)
	}
	// Most wins first, then by name
	slices.SortFunc(names, func(a, b string) int {
		if d := st.Wins[b] - st.Wins[a]; d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})

	fmt.Printf("  %-12s  %4s  %5s\n", "Player", "Wins", "Share")
	for _, name := range names {
		fmt.Printf("  %-12s  %4d  %4.0f%%\n", name, st.Wins[name], 100*float64(st.Wins[name])/float64(st.Rounds))
	}
}
