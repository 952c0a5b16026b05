package minigolf

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/tui-golf/internal/config"
	"github.com/vovakirdan/tui-golf/internal/golf"
)

// MaxSimTicks bounds a headless round. Mercy rules end every hole long
// before this on any sane configuration.
const MaxSimTicks = 2_000_000

var (
	// ErrUnfinished is returned when a headless round hits MaxSimTicks.
	ErrUnfinished = errors.New("minigolf: round did not finish")
	// ErrNoPlayers is returned when there is nobody to simulate.
	ErrNoPlayers = errors.New("minigolf: no players configured")
)

// SimRound is one headless round.
type SimRound struct {
	Seed    int64
	Summary golf.Summary
}

// SimStats aggregates the winning totals of a batch of rounds.
type SimStats struct {
	Rounds int
	Mean   float64
	StdDev float64
	Best   float64
	Median float64
	Worst  float64
	Wins   map[string]int // by player name
}

// Simulate plays rounds AI-controlled rounds back to back without pauses.
// Round i uses seed+i, so a batch is reproducible.
func Simulate(cfg config.GolfConfig, variant golf.Variant, rounds int, seed int64) ([]SimRound, error) {
	if len(cfg.Players.Names) == 0 {
		return nil, ErrNoPlayers
	}
	cfg.Turn.DelayMS = 0
	out := make([]SimRound, 0, rounds)
	for i := range rounds {
		s, err := NewSession(cfg, variant, golf.ControlAI, seed+int64(i), 60)
		if err != nil {
			return out, err
		}
		if !s.RunToEnd(MaxSimTicks) {
			return out, fmt.Errorf("%w: seed %d", ErrUnfinished, seed+int64(i))
		}
		out = append(out, SimRound{Seed: seed + int64(i), Summary: s.Summary()})
	}
	return out, nil
}

// Summarize computes statistics over the winners of the given rounds.
// Rounds without a winner are skipped.
func Summarize(rounds []SimRound) SimStats {
	st := SimStats{Wins: make(map[string]int)}
	totals := make([]float64, 0, len(rounds))
	for _, r := range rounds {
		w, ok := r.Summary.Winner()
		if !ok {
			continue
		}
		totals = append(totals, float64(w.Total))
		st.Wins[w.Name]++
	}
	st.Rounds = len(totals)
	if st.Rounds == 0 {
		return st
	}

	slices.Sort(totals)
	st.Mean = stat.Mean(totals, nil)
	if st.Rounds > 1 {
		st.StdDev = stat.StdDev(totals, nil)
	}
	st.Best = totals[0]
	st.Worst = totals[len(totals)-1]
	st.Median = stat.Quantile(0.5, stat.Empirical, totals, nil)
	return st
}
