package golf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// courseWithFirstHole returns the blank course with hole 0 rebuilt.
func courseWithFirstHole(t *testing.T, tee, cup Vec, par int, obstacles ...Obstacle) *Course {
	t.Helper()
	c := DefaultCourse()
	require.NoError(t, c.MoveTee(0, tee))
	require.NoError(t, c.MoveCup(0, cup))
	require.NoError(t, c.SetPar(0, par))
	c.Holes[0].Obstacles = obstacles
	return c
}

func TestApplyShotHolesOut(t *testing.T) {
	c := courseWithFirstHole(t, V(0, 0), V(100, 0), 3)
	p := NewPlayer(1, "Ann", c)
	bounds := Bounds{Width: 1000, Height: 1000}

	res := ApplyShot(p, c.Holes[0], Shot{Angle: 0, Power: 0.5}, DefaultRules(), bounds)

	assert.Equal(t, OutcomeHoled, res.Outcome)
	assert.Equal(t, V(100, 0), res.Landing)
	assert.Equal(t, 1, res.Strokes)
	assert.Equal(t, 1, p.Strokes[0])
	assert.Equal(t, 1, p.Total)
	assert.Equal(t, 1, p.CurrentHole)
	assert.False(t, res.Finished)
}

func TestApplyShotCaptureRadiusInclusive(t *testing.T) {
	c := courseWithFirstHole(t, V(0, 0), V(115, 0), 3)
	p := NewPlayer(1, "Ann", c)

	res := ApplyShot(p, c.Holes[0], Shot{Angle: 0, Power: 0.5}, DefaultRules(), Bounds{Width: 1000, Height: 1000})
	assert.Equal(t, OutcomeHoled, res.Outcome)
}

func TestApplyShotClampsToBounds(t *testing.T) {
	c := courseWithFirstHole(t, V(60, 500), V(900, 500), 4)
	p := NewPlayer(1, "Ann", c)
	bounds := c.Bounds(50)

	res := ApplyShot(p, c.Holes[0], Shot{Angle: 3.14159, Power: 1}, DefaultRules(), bounds)

	assert.Equal(t, OutcomeLie, res.Outcome)
	assert.InDelta(t, 50, res.Landing.X, 1e-9)
	assert.Equal(t, res.Landing, p.Positions[0])
	assert.Equal(t, 0, p.CurrentHole)
}

func TestApplyShotMercyAdvancesOnce(t *testing.T) {
	c := courseWithFirstHole(t, V(500, 500), V(1500, 500), 4)
	p := NewPlayer(1, "Ann", c)
	away := Shot{Angle: 3.14159, Power: 0.2}
	rules := DefaultRules()

	for i := 1; i < 7; i++ {
		res := ApplyShot(p, c.Holes[0], away, rules, c.Bounds(rules.Margin))
		require.Equal(t, OutcomeLie, res.Outcome, "stroke %d", i)
	}
	res := ApplyShot(p, c.Holes[0], away, rules, c.Bounds(rules.Margin))
	assert.Equal(t, OutcomeAbandoned, res.Outcome)
	assert.Equal(t, 7, res.Strokes)
	assert.Equal(t, 1, p.CurrentHole)
	assert.Equal(t, 7, p.Total)
	// Hole 2 starts fresh.
	assert.Equal(t, 0, p.Strokes[1])
}

func TestApplyShotCaptureBeatsMercy(t *testing.T) {
	c := courseWithFirstHole(t, V(0, 0), V(100, 0), 4)
	p := NewPlayer(1, "Ann", c)
	p.Strokes[0] = 6
	p.Total = 6

	res := ApplyShot(p, c.Holes[0], Shot{Angle: 0, Power: 0.5}, DefaultRules(), Bounds{Width: 1000, Height: 1000})
	assert.Equal(t, OutcomeHoled, res.Outcome)
	assert.Equal(t, 7, p.Strokes[0])
	assert.Equal(t, 1, p.CurrentHole)
}

func TestApplyShotFinishedPlayerSkipped(t *testing.T) {
	c := DefaultCourse()
	p := NewPlayer(1, "Ann", c)
	p.CurrentHole = HoleCount
	p.Total = 80

	res := ApplyShot(p, c.Holes[HoleCount-1], Shot{Power: 1}, DefaultRules(), c.Bounds(50))
	assert.Equal(t, OutcomeSkipped, res.Outcome)
	assert.Equal(t, 80, p.Total)
	assert.Equal(t, HoleCount, p.CurrentHole)
}

func TestApplyShotLastHoleFinishes(t *testing.T) {
	c := DefaultCourse()
	last := HoleCount - 1
	require.NoError(t, c.MoveTee(last, V(500, 500)))
	require.NoError(t, c.MoveCup(last, V(600, 500)))
	p := NewPlayer(1, "Ann", c)
	p.CurrentHole = last

	res := ApplyShot(p, c.Holes[last], Shot{Angle: 0, Power: 0.5}, DefaultRules(), c.Bounds(50))
	assert.Equal(t, OutcomeHoled, res.Outcome)
	assert.True(t, res.Finished)
	assert.True(t, p.Finished())
	assert.Equal(t, V(600, 500), p.Position())
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "plain", raw: "Ann", want: "Ann"},
		{name: "trimmed", raw: "  Bob  ", want: "Bob"},
		{name: "twelve runes", raw: "Åsa-Åsa-Åsa-", want: "Åsa-Åsa-Åsa-"},
		{name: "empty", raw: "", wantErr: ErrEmptyName},
		{name: "blank", raw: "   ", wantErr: ErrEmptyName},
		{name: "too long", raw: "ThirteenChars", wantErr: ErrNameTooLong},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateName(tc.raw)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
