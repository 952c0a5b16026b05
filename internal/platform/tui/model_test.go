package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-golf/internal/core"
	"github.com/vovakirdan/tui-golf/internal/golf"
	"github.com/vovakirdan/tui-golf/internal/registry"
	"github.com/vovakirdan/tui-golf/internal/storage"
)

// stubGame finishes its round after a fixed number of steps.
type stubGame struct {
	steps   int
	overAt  int
	paused  bool
	resets  int
	lastIn  core.InputFrame
	screenW int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.steps = 0
	g.resets++
	g.screenW = cfg.ScreenW
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.lastIn = in.Clone()
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionRestart) && g.over() {
		g.steps = 0
		return core.StepResult{State: g.State()}
	}
	g.steps++
	res := core.StepResult{State: g.State()}
	if g.steps == g.overAt {
		res.Notices = []core.Notice{{Text: "Game Over!"}}
	}
	return res
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "stub course")
}

func (g *stubGame) over() bool { return g.steps >= g.overAt }

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: 60, GameOver: g.over(), Paused: g.paused}
}

func (g *stubGame) Summary() golf.Summary {
	strokes := make([]int, golf.HoleCount)
	for i := range strokes {
		strokes[i] = 3
	}
	return golf.Summary{
		TotalPar: 72,
		Over:     g.over(),
		Players: []golf.PlayerSummary{
			{ID: 1, Name: "Ace", Style: "Balanced", Strokes: strokes, Total: 54, ToPar: -18, Finished: true, Winner: true},
		},
	}
}

func (g *stubGame) Layout() string { return "template" }
func (g *stubGame) Seed() int64    { return 7 }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "rounds.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func TestModelSavesRoundOnce(t *testing.T) {
	store := openStore(t)
	game := &stubGame{overAt: 3}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1})
	m.Init()

	for range 6 {
		m = update(t, m, TickMsg{})
	}

	rounds, err := store.RecentRounds("stub", 10)
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.Equal(t, "template", rounds[0].Layout)
	assert.Equal(t, int64(7), rounds[0].Seed)
	assert.Equal(t, "Ace", rounds[0].Winner)
	assert.Equal(t, 54, rounds[0].WinnerTotal)

	// A restarted round is saved again when it ends.
	m = update(t, m, runeKey('r'))
	for range 6 {
		m = update(t, m, TickMsg{})
	}
	rounds, err = store.RecentRounds("stub", 10)
	require.NoError(t, err)
	assert.Len(t, rounds, 2)
}

func TestModelWithoutStore(t *testing.T) {
	game := &stubGame{overAt: 1}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1})
	m.Init()

	m = update(t, m, TickMsg{})
	assert.True(t, m.gameState.GameOver)
	assert.True(t, m.roundSaved)
}

func TestModelForwardsInput(t *testing.T) {
	game := &stubGame{overAt: 100}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1})
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg{})

	assert.True(t, game.lastIn.Has(core.ActionLeft))
	assert.Equal(t, core.Pointer{X: 3, Y: 4, Valid: true}, game.lastIn.Click)

	// Input is consumed by the tick.
	update(t, m, TickMsg{})
	assert.False(t, game.lastIn.Has(core.ActionLeft))
	assert.False(t, game.lastIn.Click.Valid)
}

func TestModelResizeKeepsRound(t *testing.T) {
	game := &stubGame{overAt: 100}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1})
	m.Init()
	m = update(t, m, TickMsg{})

	m = update(t, m, tea.WindowSizeMsg{Width: 90, Height: 30})
	assert.Equal(t, 1, game.resets)
	assert.Equal(t, 1, game.steps)
	assert.Equal(t, 90, m.screen.Width())
	assert.Contains(t, m.View(), "stub course")
}

func TestModelBackOnlyWhenOverOrPaused(t *testing.T) {
	game := &stubGame{overAt: 100}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1})
	m.Init()
	m = update(t, m, TickMsg{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.BackToMenu(), "back is ignored mid-round")
	m = update(t, m, TickMsg{})

	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg{})
	require.True(t, m.gameState.Paused)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.BackToMenu())
	assert.Empty(t, m.View())
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{overAt: 100}, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1})
	next, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.True(t, next.(Model).IsQuitting())
}

func TestSessionModelFlow(t *testing.T) {
	if !registry.Exists("stub") {
		registry.Register("stub", func() registry.Game { return &stubGame{overAt: 1} })
	}

	store := openStore(t)
	var s tea.Model = NewSessionModel(store, core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 60}, nil)

	// Pick the stub variant.
	menu := s.(SessionModel).menu
	for i, item := range menu.items {
		if item.GameID == "stub" {
			menu.cursor = i
		}
	}
	sm := s.(SessionModel)
	sm.menu = menu
	s, _ = sm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenGame, s.(SessionModel).screen)

	s, _ = s.Update(TickMsg{})
	assert.True(t, s.(SessionModel).game.gameState.GameOver)

	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, s.(SessionModel).screen)
	assert.Contains(t, s.View(), "M I N I   G O L F")

	// Leaderboard and back.
	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, screenScores, s.(SessionModel).screen)
	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, s.(SessionModel).screen)

	_, cmd := s.Update(runeKey('q'))
	assert.NotNil(t, cmd)
}

func TestRenderScorecard(t *testing.T) {
	sum := (&stubGame{overAt: 1, steps: 1}).Summary()
	sum.Par = make([]int, golf.HoleCount)
	for i := range sum.Par {
		sum.Par[i] = 4
	}

	out := RenderScorecard(sum)
	assert.Contains(t, out, "Ace *")
	assert.Contains(t, out, "72")
	assert.Contains(t, out, "-18")
	assert.Equal(t, 1, strings.Count(out, "Player"))
}

func TestFormatToPar(t *testing.T) {
	assert.Equal(t, "E", FormatToPar(0))
	assert.Equal(t, "+3", FormatToPar(3))
	assert.Equal(t, "-2", FormatToPar(-2))
}
