package minigolf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-golf/internal/config"
	"github.com/vovakirdan/tui-golf/internal/golf"
)

func simConfig() config.GolfConfig {
	cfg := config.DefaultGolfConfig()
	cfg.Players.Names = []string{"Ace", "Birdie", "Chip"}
	return cfg
}

func TestSimulateFinishesRounds(t *testing.T) {
	rounds, err := Simulate(simConfig(), golf.VariantInstant, 3, 10)
	require.NoError(t, err)
	require.Len(t, rounds, 3)

	for i, r := range rounds {
		assert.Equal(t, int64(10+i), r.Seed)
		assert.True(t, r.Summary.Over)
		w, ok := r.Summary.Winner()
		require.True(t, ok)
		assert.Positive(t, w.Total)
		for _, p := range r.Summary.Players {
			assert.True(t, p.Finished)
			assert.GreaterOrEqual(t, p.Total, w.Total)
		}
	}
}

func TestSimulateDeterministic(t *testing.T) {
	a, err := Simulate(simConfig(), golf.VariantInstant, 2, 99)
	require.NoError(t, err)
	b, err := Simulate(simConfig(), golf.VariantInstant, 2, 99)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSimulatePhysics(t *testing.T) {
	rounds, err := Simulate(simConfig(), golf.VariantPhysics, 1, 5)
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.Equal(t, golf.VariantPhysics, rounds[0].Summary.Variant)
	assert.True(t, rounds[0].Summary.Over)
}

func TestSimulateBadCourse(t *testing.T) {
	cfg := simConfig()
	cfg.Course.Layout = "spiral"
	_, err := Simulate(cfg, golf.VariantInstant, 1, 1)
	assert.Error(t, err)
}

func TestSimulateNoPlayers(t *testing.T) {
	cfg := simConfig()
	cfg.Players.Names = nil
	rounds, err := Simulate(cfg, golf.VariantInstant, 2, 1)
	assert.ErrorIs(t, err, ErrNoPlayers)
	assert.Empty(t, rounds)
}

func TestSummarize(t *testing.T) {
	round := func(name string, total int) SimRound {
		return SimRound{Summary: golf.Summary{Players: []golf.PlayerSummary{
			{Name: name, Total: total, Winner: true},
			{Name: "Other", Total: total + 5},
		}}}
	}
	rounds := []SimRound{
		round("Ace", 60),
		round("Birdie", 54),
		round("Ace", 66),
		{Summary: golf.Summary{Players: []golf.PlayerSummary{{Name: "Nobody", Total: 90}}}},
	}

	st := Summarize(rounds)
	assert.Equal(t, 3, st.Rounds)
	assert.InDelta(t, 60.0, st.Mean, 1e-9)
	assert.InDelta(t, 6.0, st.StdDev, 1e-9)
	assert.Equal(t, 54.0, st.Best)
	assert.Equal(t, 66.0, st.Worst)
	assert.Equal(t, 60.0, st.Median)
	assert.Equal(t, map[string]int{"Ace": 2, "Birdie": 1}, st.Wins)
}

func TestSummarizeEmpty(t *testing.T) {
	st := Summarize(nil)
	assert.Zero(t, st.Rounds)
	assert.Zero(t, st.Mean)
	assert.Empty(t, st.Wins)
}
