// Package minigolf hosts golf sessions on the terminal platform. It adapts a
// golf.Session to registry.Game for the auto-play, manual and physics
// variants and draws frames onto a core.Screen.
package minigolf

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-golf/internal/config"
	"github.com/vovakirdan/tui-golf/internal/core"
	"github.com/vovakirdan/tui-golf/internal/golf"
	"github.com/vovakirdan/tui-golf/internal/registry"
)

// Registered variant IDs.
const (
	IDAuto    = "golf"
	IDManual  = "golf_manual"
	IDPhysics = "golf_physics"
)

// Layout constants in cells.
const (
	SidebarWidth = 30
	sidebarMinW  = 70 // screens narrower than this drop the sidebar
	minScreenW   = 30
	minScreenH   = 10
)

// Manual control steps per key press.
const (
	AimStep   = math.Pi / 60 // 3 degrees
	PowerStep = 0.05
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// playerNames overrides the configured player list when non-empty
var playerNames []string

// courseLayout overrides the configured layout when non-empty
var courseLayout string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetPlayers replaces the configured starting players.
func SetPlayers(names []string) {
	playerNames = append([]string(nil), names...)
}

// SetCourseLayout replaces the configured course layout.
func SetCourseLayout(layout string) {
	courseLayout = layout
}

// LoadConfig loads the configuration with the CLI overrides applied.
func LoadConfig() (config.GolfConfig, error) {
	cfg, err := config.LoadGolf(configPath)
	if err != nil {
		return config.GolfConfig{}, err
	}
	if difficultyPreset != "" {
		config.ApplyGolfPreset(&cfg, difficultyPreset)
	}
	if len(playerNames) > 0 {
		cfg.Players.Names = append([]string(nil), playerNames...)
	}
	if courseLayout != "" {
		cfg.Course.Layout = courseLayout
	}
	return cfg, cfg.Validate()
}

// Game implements registry.Game over a golf.Session.
type Game struct {
	id          string
	title       string
	description string
	variant     golf.Variant
	control     golf.Control

	runtime core.RuntimeConfig
	cfg     config.GolfConfig
	session *golf.Session
	err     error // setup failure shown instead of the course

	camera      golf.Camera
	board       core.Rect
	sidebar     core.Rect
	follow      bool // refit the camera when the turn moves to another hole
	framedHole  int
	framedActor int

	paused   bool
	tooSmall bool
}

// New creates the auto-play variant: simulated players, instant shots.
func New() *Game {
	return &Game{
		id:          IDAuto,
		title:       "Mini Golf",
		description: "Simulated players play 18 holes automatically",
		variant:     golf.VariantInstant,
		control:     golf.ControlAI,
	}
}

// NewManual creates the keyboard-aimed instant variant.
func NewManual() *Game {
	return &Game{
		id:          IDManual,
		title:       "Mini Golf (Manual)",
		description: "Aim and set power yourself, shots land instantly",
		variant:     golf.VariantInstant,
		control:     golf.ControlManual,
	}
}

// NewPhysics creates the keyboard-aimed rolling-ball variant.
func NewPhysics() *Game {
	return &Game{
		id:          IDPhysics,
		title:       "Mini Golf (Physics)",
		description: "Aim and shoot a rolling ball that bounces off obstacles",
		variant:     golf.VariantPhysics,
		control:     golf.ControlManual,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return g.id }

// Title returns the display name for this game.
func (g *Game) Title() string { return g.title }

// Description returns a one-line summary for menus.
func (g *Game) Description() string { return g.description }

// Reset loads the configuration and starts a new round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime
	g.paused = false
	g.err = nil

	cfg, err := LoadConfig()
	if err != nil {
		cfg = config.DefaultGolfConfig()
		g.err = err
	}
	g.cfg = cfg

	g.session, err = NewSession(cfg, g.variant, g.control, runtime.Seed, runtime.TickRate)
	if err != nil {
		g.err = err
		// Fall back to the stock course so the screen still has something to show.
		g.session = golf.NewSession(golf.TemplateCourse(), SessionConfigFor(cfg, g.variant, g.control, runtime.TickRate), runtime.Seed)
	}

	g.camera = CameraFor(cfg.Camera)
	g.follow = true
	g.framedHole = -1
	g.framedActor = -1
	g.resize(runtime.ScreenW, runtime.ScreenH)
}

// resize recomputes the layout and reframes the camera.
func (g *Game) resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.tooSmall = w < minScreenW || h < minScreenH

	body := core.NewRect(0, 1, w, h-2) // status row on top, message row below
	if w >= sidebarMinW {
		g.board, g.sidebar = body.SplitRight(SidebarWidth)
	} else {
		g.board, g.sidebar = body, core.Rect{}
	}
	g.framedHole = -1
	g.frameCamera()
}

func (g *Game) view() golf.Vec { return BoardView(g.board) }

func (g *Game) courseSize() golf.Vec {
	c := g.session.Course()
	return golf.V(c.Width, c.Height)
}

// frameCamera fits the current player's hole when the turn has moved.
func (g *Game) frameCamera() {
	if g.board.Empty() || !g.follow {
		return
	}
	hole, actor := 0, 0
	if p := g.session.Current(); p != nil {
		hole = min(p.CurrentHole, golf.HoleCount-1)
		actor = p.ID
	}
	if hole == g.framedHole && actor == g.framedActor {
		return
	}
	h, err := g.session.Course().Hole(hole)
	if err != nil {
		return
	}
	g.camera.Fit(golf.HoleBounds(*h), g.view(), g.courseSize())
	g.framedHole, g.framedActor = hole, actor
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.session.Over() {
		rt := g.runtime
		rt.Seed++
		g.Reset(rt)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.handleCamera(in)
	g.handleRoster(in)
	if g.control == golf.ControlManual {
		g.handleAim(in)
	}

	g.session.Step()
	g.frameCamera()

	return core.StepResult{State: g.State(), Notices: noticesFor(g.session.DrainEvents())}
}

func (g *Game) handleCamera(in core.InputFrame) {
	view, course := g.view(), g.courseSize()
	mid := golf.V(view.X/2, view.Y/2)
	step := g.cfg.Camera.PanStep

	switch {
	case in.Has(core.ActionZoomIn):
		g.camera.ZoomAt(mid, g.cfg.Camera.ZoomStep, view, course)
		g.follow = false
	case in.Has(core.ActionZoomOut):
		g.camera.ZoomAt(mid, 1/g.cfg.Camera.ZoomStep, view, course)
		g.follow = false
	case in.Has(core.ActionCenter):
		// Toggles between the whole course and following the play.
		if g.follow {
			g.camera.Center(view, course)
			g.follow = false
		} else {
			g.follow = true
			g.framedHole = -1
			g.frameCamera()
		}
	}

	var dx, dy float64
	if in.Has(core.ActionPanLeft) {
		dx += step
	}
	if in.Has(core.ActionPanRight) {
		dx -= step
	}
	if in.Has(core.ActionPanUp) {
		dy += step
	}
	if in.Has(core.ActionPanDown) {
		dy -= step
	}
	if dx != 0 || dy != 0 {
		g.camera.Pan(dx, dy)
		g.camera.Constrain(view, course)
		g.follow = false
	}
}

func (g *Game) handleRoster(in core.InputFrame) {
	if in.Has(core.ActionAddPlayer) {
		name := fmt.Sprintf("Player %d", len(g.session.Players())+1)
		// Invalid names are reported through the session's events.
		g.session.AddPlayer(name) //nolint:errcheck // surfaced as an InvalidInput event
	}
	if in.Has(core.ActionRemovePlayer) {
		if p := g.session.Current(); p != nil {
			g.session.RemovePlayer(p.ID) //nolint:errcheck // id comes from the session
		}
	}
}

func (g *Game) handleAim(in core.InputFrame) {
	if in.Click.Valid && g.board.Contains(in.Click.X, in.Click.Y) {
		g.session.AimAt(g.camera.ScreenToWorld(CellToView(g.board, in.Click.X, in.Click.Y)))
	}
	if in.Has(core.ActionLeft) {
		g.session.Aim(-AimStep)
	}
	if in.Has(core.ActionRight) {
		g.session.Aim(AimStep)
	}
	if in.Has(core.ActionUp) {
		g.session.AdjustPower(PowerStep)
	}
	if in.Has(core.ActionDown) {
		g.session.AdjustPower(-PowerStep)
	}
	if in.Has(core.ActionShoot) {
		if err := g.session.Shoot(); err != nil && !errors.Is(err, golf.ErrNotReady) {
			g.err = err
		}
	}
}

// noticesFor turns session events into platform notices.
func noticesFor(events []golf.Event) []core.Notice {
	if len(events) == 0 {
		return nil
	}
	out := make([]core.Notice, 0, len(events))
	for _, e := range events {
		out = append(out, core.Notice{Text: e.Message, Warning: e.Severity == golf.SeverityWarning})
	}
	return out
}

// Render draws the current session.
func (g *Game) Render(dst *core.Screen) {
	if dst.Width() != g.runtime.ScreenW || dst.Height() != g.runtime.ScreenH {
		g.resize(dst.Width(), dst.Height())
	}
	dst.Clear()

	if g.tooSmall {
		cy := dst.Height() / 2
		dst.DrawTextCentered(cy-1, "Window too small")
		dst.DrawTextCentered(cy, "Resize to continue")
		return
	}

	r := NewScreenRenderer(dst, &g.camera, g.board, g.sidebar)
	r.paused = g.paused
	g.session.Render(r)

	if g.err != nil {
		dst.DrawTextColor(1, dst.Height()-1, "Error: "+g.err.Error(), core.ColorBrightRed)
	}
}

// State returns the current game state. Score is the leader's total strokes.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	score := 0
	if leader := golf.PickWinner(g.session.Players()); leader != nil {
		score = leader.Total
	}
	return core.GameState{
		Score:    score,
		GameOver: g.session.Over(),
		Paused:   g.paused,
	}
}

// Session exposes the running session.
func (g *Game) Session() *golf.Session { return g.session }

// Summary returns the scorecard of the running round.
func (g *Game) Summary() golf.Summary { return g.session.Summary() }

// Layout returns the course layout the round was built from.
func (g *Game) Layout() string { return g.cfg.Course.Layout }

// Seed returns the seed of the running round.
func (g *Game) Seed() int64 { return g.runtime.Seed }

// Camera returns the current view transform.
func (g *Game) Camera() golf.Camera { return g.camera }

// Snapshot captures the session state for determinism checks.
func (g *Game) Snapshot() golf.Snapshot { return g.session.Snapshot() }

func init() {
	registry.Register(IDAuto, func() registry.Game {
		return New()
	})
	registry.Register(IDManual, func() registry.Game {
		return NewManual()
	})
	registry.Register(IDPhysics, func() registry.Game {
		return NewPhysics()
	})
}
