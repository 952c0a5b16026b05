package minigolf

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-golf/internal/config"
	"github.com/vovakirdan/tui-golf/internal/core"
	"github.com/vovakirdan/tui-golf/internal/golf"
	"github.com/vovakirdan/tui-golf/internal/registry"
)

const (
	testW = 100
	testH = 30
)

// useConfig points the package at a temporary config file and restores the
// CLI overrides afterwards.
func useConfig(t *testing.T, yaml string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "golf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	SetConfigPath(path)
	t.Cleanup(func() {
		SetConfigPath("")
		SetPlayers(nil)
		SetCourseLayout("")
		SetDifficultyPreset("")
	})
}

const fastConfig = `
turn: {delay_ms: 0, manual_delay_ms: 0}
players: {names: [Ace, Birdie]}
`

func startGame(t *testing.T, g *Game, seed int64) {
	t.Helper()
	g.Reset(core.RuntimeConfig{ScreenW: testW, ScreenH: testH, TickRate: 60, Seed: seed})
	require.NoError(t, g.err)
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func testBoard() core.Rect {
	board, _ := core.NewRect(0, 1, testW, testH-2).SplitRight(SidebarWidth)
	return board
}

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{IDAuto, IDManual, IDPhysics} {
		assert.True(t, registry.Exists(id), id)
	}

	g, err := registry.Create(IDPhysics)
	require.NoError(t, err)
	mg, ok := g.(*Game)
	require.True(t, ok)
	assert.Equal(t, golf.VariantPhysics, mg.variant)
	assert.Equal(t, golf.ControlManual, mg.control)

	info, ok := registry.Info(IDAuto)
	require.True(t, ok)
	assert.NotEmpty(t, info.Description)
}

func TestBuildCourseLayouts(t *testing.T) {
	tpl, err := BuildCourse(config.CourseConfig{Layout: config.LayoutTemplate}, 1)
	require.NoError(t, err)
	assert.Equal(t, golf.TemplateCourse().TotalPar(), tpl.TotalPar())

	grid, err := BuildCourse(config.CourseConfig{Layout: config.LayoutGrid}, 1)
	require.NoError(t, err)
	assert.Equal(t, golf.HoleCount*golf.DefaultPar, grid.TotalPar())

	a, err := BuildCourse(config.CourseConfig{Layout: config.LayoutRandom}, 42)
	require.NoError(t, err)
	b, err := BuildCourse(config.CourseConfig{Layout: config.LayoutRandom}, 42)
	require.NoError(t, err)
	assert.Equal(t, a.Holes, b.Holes, "random layout must follow the seed")

	_, err = BuildCourse(config.CourseConfig{Layout: "spiral"}, 1)
	assert.Error(t, err)
}

func TestBuildCourseOverrides(t *testing.T) {
	cc := config.CourseConfig{
		Layout: config.LayoutGrid,
		Holes: []config.HoleOverride{{
			Hole:           3,
			Par:            5,
			Tee:            &config.Point{X: 100, Y: 100},
			Cup:            &config.Point{X: 400, Y: 100},
			Fairway:        string(golf.PresetDoglegLeft),
			ClearObstacles: true,
			Obstacles: []config.ObstacleConfig{
				{Kind: "water", X: 250, Y: 100},
				{Kind: "rock", X: 300, Y: 150},
			},
		}},
	}
	c, err := BuildCourse(cc, 1)
	require.NoError(t, err)

	h := c.Holes[2]
	assert.Equal(t, 5, h.Par)
	assert.Equal(t, golf.V(100, 100), h.Tee)
	assert.Equal(t, golf.V(400, 100), h.Cup)
	require.Len(t, h.Obstacles, 2)
	assert.Equal(t, golf.KindWater, h.Obstacles[0].Kind)
	assert.Equal(t, golf.V(250, 100), h.Obstacles[0].Center())
	require.NotEmpty(t, h.Fairway)
	assert.Equal(t, h.Tee, h.Fairway[0], "fairway follows the moved tee")
	assert.Equal(t, h.Cup, h.Fairway[len(h.Fairway)-1])

	// Other holes are untouched.
	assert.Equal(t, golf.DefaultPar, c.Holes[0].Par)
}

func TestBuildCourseDesignerEdits(t *testing.T) {
	template := golf.TemplateCourse()
	target := template.Holes[1].Obstacles[0]
	left := len(template.Holes[1].Obstacles) - 1

	cc := config.CourseConfig{
		Layout: config.LayoutTemplate,
		Holes: []config.HoleOverride{
			{Hole: 1, Fairway: string(golf.PresetSCurve)},
			{Hole: 1, Fairway: config.FairwayNone},
			{
				Hole:              2,
				RemoveObstaclesAt: []config.Point{{X: target.Center().X, Y: target.Center().Y}},
			},
			{
				Hole: 4,
				Drag: []config.Drag{
					{From: config.Point{X: template.Holes[3].Tee.X + 5, Y: template.Holes[3].Tee.Y}, To: config.Point{X: 20, Y: 20}},
					{From: config.Point{X: template.Holes[3].Cup.X, Y: template.Holes[3].Cup.Y}, To: config.Point{X: 40, Y: 300}},
				},
			},
		},
	}
	c, err := BuildCourse(cc, 1)
	require.NoError(t, err)

	assert.Empty(t, c.Holes[0].Fairway)
	assert.Len(t, c.Holes[1].Obstacles, left)
	assert.NotContains(t, c.Holes[1].Obstacles, target)
	assert.Equal(t, golf.V(20, 20), c.Holes[3].Tee)
	assert.Equal(t, golf.V(40, 300), c.Holes[3].Cup)
}

func TestBuildCourseOverrideErrors(t *testing.T) {
	tests := []struct {
		name string
		o    config.HoleOverride
	}{
		{"hole out of range", config.HoleOverride{Hole: 19}},
		{"bad kind", config.HoleOverride{Hole: 1, Obstacles: []config.ObstacleConfig{{Kind: "lava"}}}},
		{"bad fairway", config.HoleOverride{Hole: 1, Fairway: "zigzag"}},
		{"drag from nowhere", config.HoleOverride{Hole: 1, Drag: []config.Drag{{From: config.Point{X: -500, Y: -500}}}}},
		{"remove nothing", config.HoleOverride{Hole: 1, RemoveObstaclesAt: []config.Point{{X: -500, Y: -500}}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildCourse(config.CourseConfig{Holes: []config.HoleOverride{tc.o}}, 1)
			assert.Error(t, err)
		})
	}
}

func TestSessionConfigFor(t *testing.T) {
	cfg := config.DefaultGolfConfig()
	cfg.Turn.ManualDelayMS = 500

	auto := SessionConfigFor(cfg, golf.VariantInstant, golf.ControlAI, 60)
	assert.Equal(t, 120, auto.TurnDelayTicks)
	require.Len(t, auto.Planner.ProbeOffsets, 4)
	assert.InDelta(t, -math.Pi/3, auto.Planner.ProbeOffsets[0], 1e-12)
	assert.InDelta(t, math.Pi/6, auto.Planner.ProbeOffsets[2], 1e-12)
	assert.Equal(t, cfg.Rules.MaxShotDistance, auto.Planner.MaxShotDistance)
	assert.Equal(t, 15.0, auto.Rules.CaptureRadius)
	assert.Equal(t, 0.98, auto.Physics.Friction)

	manual := SessionConfigFor(cfg, golf.VariantPhysics, golf.ControlManual, 60)
	assert.Equal(t, 30, manual.TurnDelayTicks)
	assert.Equal(t, golf.VariantPhysics, manual.Variant)
}

func TestNewSessionRegistersPlayers(t *testing.T) {
	cfg := config.DefaultGolfConfig()
	s, err := NewSession(cfg, golf.VariantInstant, golf.ControlAI, 3, 60)
	require.NoError(t, err)
	require.Len(t, s.Players(), 3)
	assert.True(t, s.Active())
	assert.Equal(t, "Ace", s.Current().Name)

	cfg.Players.Names = []string{"   "}
	_, err = NewSession(cfg, golf.VariantInstant, golf.ControlAI, 3, 60)
	assert.ErrorIs(t, err, golf.ErrEmptyName)
}

func TestLoadConfigOverrides(t *testing.T) {
	useConfig(t, fastConfig)
	SetPlayers([]string{"Zed"})
	SetCourseLayout(config.LayoutGrid)
	SetDifficultyPreset("hard")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"Zed"}, cfg.Players.Names)
	assert.Equal(t, config.LayoutGrid, cfg.Course.Layout)
	assert.Equal(t, 10.0, cfg.Rules.CaptureRadius)

	SetCourseLayout("spiral")
	_, err = LoadConfig()
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestAutoRoundCompletes(t *testing.T) {
	useConfig(t, fastConfig)
	g := New()
	startGame(t, g, 11)

	var notices []core.Notice
	for i := 0; i < 5000 && !g.State().GameOver; i++ {
		res := g.Step(core.NewInputFrame())
		notices = append(notices, res.Notices...)
	}

	state := g.State()
	require.True(t, state.GameOver, "round should finish")
	sum := g.Summary()
	w, ok := sum.Winner()
	require.True(t, ok)
	assert.Equal(t, w.Total, state.Score)
	assert.Equal(t, config.LayoutTemplate, g.Layout())
	assert.Equal(t, int64(11), g.Seed())

	require.NotEmpty(t, notices)
	assert.Contains(t, notices[len(notices)-1].Text, "Game Over!")
}

func TestAutoRoundDeterministic(t *testing.T) {
	useConfig(t, fastConfig)
	a, b := New(), New()
	startGame(t, a, 99)
	startGame(t, b, 99)

	for i := 0; i < 300; i++ {
		a.Step(core.NewInputFrame())
		b.Step(core.NewInputFrame())
	}
	sa, sb := a.Snapshot(), b.Snapshot()
	assert.Equal(t, sa.Hash(), sb.Hash())
}

func TestRestartAfterGameOver(t *testing.T) {
	useConfig(t, fastConfig)
	g := New()
	startGame(t, g, 5)

	// Restart is ignored mid-round.
	g.Step(press(core.ActionRestart))
	assert.Equal(t, int64(5), g.Seed())

	require.True(t, g.Session().RunToEnd(10000))
	g.Step(press(core.ActionRestart))
	assert.Equal(t, int64(6), g.Seed())
	assert.False(t, g.State().GameOver)
	assert.Len(t, g.Session().Players(), 2)
}

func TestManualAimAndShoot(t *testing.T) {
	useConfig(t, fastConfig)
	g := NewManual()
	startGame(t, g, 1)

	angle, power := g.Session().AimAngle()
	g.Step(press(core.ActionRight, core.ActionUp))
	gotAngle, gotPower := g.Session().AimAngle()
	assert.InDelta(t, angle+AimStep, gotAngle, 1e-12)
	assert.InDelta(t, power+PowerStep, gotPower, 1e-12)

	g.Step(press(core.ActionLeft, core.ActionDown))
	gotAngle, gotPower = g.Session().AimAngle()
	assert.InDelta(t, angle, gotAngle, 1e-12)
	assert.InDelta(t, power, gotPower, 1e-12)

	ace := g.Session().Current()
	g.Step(press(core.ActionShoot))
	assert.Equal(t, 1, ace.Total)
	assert.Equal(t, "Birdie", g.Session().Current().Name, "turn passes with no delay")
	assert.NoError(t, g.err)
}

func TestManualIgnoresAIShots(t *testing.T) {
	useConfig(t, fastConfig)
	g := NewManual()
	startGame(t, g, 1)

	for i := 0; i < 100; i++ {
		g.Step(core.NewInputFrame())
	}
	for _, p := range g.Session().Players() {
		assert.Zero(t, p.Total)
	}
}

func TestClickAimsAtCourse(t *testing.T) {
	useConfig(t, fastConfig)
	g := NewManual()
	startGame(t, g, 1)

	cam := g.Camera()
	target := cam.ScreenToWorld(CellToView(testBoard(), 10, 5))
	from := g.Session().Current().Position()

	in := core.NewInputFrame()
	in.SetClick(10, 5)
	g.Step(in)

	angle, _ := g.Session().AimAngle()
	assert.InDelta(t, golf.Bearing(from, target), angle, 1e-9)
}

func TestClickOutsideBoardIgnored(t *testing.T) {
	useConfig(t, fastConfig)
	g := NewManual()
	startGame(t, g, 1)

	before, _ := g.Session().AimAngle()
	in := core.NewInputFrame()
	in.SetClick(testW-2, 5) // sidebar
	g.Step(in)
	after, _ := g.Session().AimAngle()
	assert.Equal(t, before, after)
}

func TestPhysicsShotRolls(t *testing.T) {
	useConfig(t, fastConfig)
	g := NewPhysics()
	startGame(t, g, 1)

	ace := g.Session().Current()
	g.Step(press(core.ActionShoot))
	assert.Equal(t, golf.PhaseRolling, g.Session().Phase())
	assert.Equal(t, 1, ace.Total, "stroke is charged at launch")

	for i := 0; i < 2000 && g.Session().Phase() == golf.PhaseRolling; i++ {
		g.Step(core.NewInputFrame())
	}
	assert.NotEqual(t, golf.PhaseRolling, g.Session().Phase())
}

func TestPauseFreezesSession(t *testing.T) {
	useConfig(t, fastConfig)
	g := New()
	startGame(t, g, 1)

	g.Step(press(core.ActionPause))
	require.True(t, g.State().Paused)
	tick := g.Session().Tick()
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, tick, g.Session().Tick())

	g.Step(press(core.ActionPause))
	assert.False(t, g.State().Paused)
	assert.Greater(t, g.Session().Tick(), tick)
}

func TestRosterKeys(t *testing.T) {
	useConfig(t, fastConfig)
	g := NewManual()
	startGame(t, g, 1)

	res := g.Step(press(core.ActionAddPlayer))
	require.Len(t, g.Session().Players(), 3)
	assert.Equal(t, "Player 3", g.Session().Players()[2].Name)
	require.NotEmpty(t, res.Notices)
	assert.Contains(t, res.Notices[0].Text, "joined")

	g.Step(press(core.ActionRemovePlayer))
	require.Len(t, g.Session().Players(), 2)
	assert.Equal(t, "Birdie", g.Session().Players()[0].Name)
	assert.Equal(t, "Birdie", g.Session().Current().Name)
}

func TestCameraControls(t *testing.T) {
	useConfig(t, fastConfig)
	g := NewManual()
	startGame(t, g, 1)

	fitted := g.Camera()
	g.Step(press(core.ActionZoomIn))
	assert.InDelta(t, fitted.Scale*1.25, g.Camera().Scale, 1e-9)
	assert.False(t, g.follow)

	// With follow off, Center returns to the hole; pressing again shows the whole course.
	g.Step(press(core.ActionCenter))
	assert.True(t, g.follow)
	assert.InDelta(t, fitted.Scale, g.Camera().Scale, 1e-9)

	g.Step(press(core.ActionCenter))
	assert.False(t, g.follow)
	assert.Less(t, g.Camera().Scale, fitted.Scale)

	before := g.Camera()
	g.Step(press(core.ActionPanRight))
	assert.NotEqual(t, before.PanX, g.Camera().PanX)
}

func TestRenderShowsHole(t *testing.T) {
	useConfig(t, fastConfig)
	g := NewManual()
	startGame(t, g, 1)
	g.Step(core.NewInputFrame())

	scr := core.NewScreen(testW, testH)
	g.Render(scr)

	assert.Contains(t, scr.Row(0), "Hole 1/18")
	assert.Contains(t, scr.Row(0), "Power")
	assert.Contains(t, scr.Row(1), "SCORECARD")
	assert.Contains(t, scr.Row(3), "Ace")

	out := scr.String()
	assert.Contains(t, out, string(CupChar))
	assert.Contains(t, out, string(ActiveChar))
	assert.Contains(t, out, string(AimChar))

	// The current player's ball is drawn in the player's color.
	found := false
	for y := 0; y < testH && !found; y++ {
		for x := 0; x < testW; x++ {
			c := scr.GetCell(x, y)
			if c.Rune == ActiveChar {
				assert.Equal(t, core.PlayerColor(0), c.Color)
				found = true
				break
			}
		}
	}
	assert.True(t, found)
}

func TestRenderTooSmall(t *testing.T) {
	useConfig(t, fastConfig)
	g := New()
	startGame(t, g, 1)

	scr := core.NewScreen(20, 6)
	g.Render(scr)
	assert.Contains(t, scr.String(), "Window too small")

	// Narrow screens drop the sidebar but still draw the course.
	scr = core.NewScreen(50, 20)
	g.Render(scr)
	out := scr.String()
	assert.NotContains(t, out, "SCORECARD")
	assert.Contains(t, out, string(CupChar))
}

func TestRenderShowsConfigError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: testW, ScreenH: testH, Seed: 1})
	require.Error(t, g.err)

	scr := core.NewScreen(testW, testH)
	g.Render(scr)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(scr.Row(testH-1)), "Error:"))
	assert.Len(t, g.Session().Players(), 3, "falls back to the default players")
}

func TestKindGlyphsDistinct(t *testing.T) {
	seen := map[rune]golf.ObstacleKind{}
	for _, k := range golf.Kinds {
		r, c := KindGlyph(k)
		assert.NotEqual(t, core.ColorDefault, c, k)
		if other, dup := seen[r]; dup {
			t.Errorf("%s and %s share glyph %q", k, other, r)
		}
		seen[r] = k
	}
}

func TestNoticesFor(t *testing.T) {
	assert.Nil(t, noticesFor(nil))
	got := noticesFor([]golf.Event{
		{Message: "a", Severity: golf.SeverityInfo},
		{Message: "b", Severity: golf.SeverityWarning},
	})
	assert.Equal(t, []core.Notice{{Text: "a"}, {Text: "b", Warning: true}}, got)
}

func TestSegmentDist(t *testing.T) {
	a, b := golf.V(0, 0), golf.V(10, 0)
	assert.InDelta(t, 5, segmentDist(golf.V(5, 5), a, b), 1e-12)
	assert.InDelta(t, 5, segmentDist(golf.V(-3, 4), a, b), 1e-12)
	assert.InDelta(t, 2, segmentDist(golf.V(0, 2), a, a), 1e-9)
	assert.True(t, nearPath(golf.V(5, 20), []golf.Vec{a, b}, 30))
	assert.False(t, nearPath(golf.V(5, 40), []golf.Vec{a, b}, 30))
}
