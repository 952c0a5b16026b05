package minigolf

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-golf/internal/config"
	"github.com/vovakirdan/tui-golf/internal/golf"
)

// ErrNothingThere is returned when a drag or removal point hits nothing.
var ErrNothingThere = errors.New("minigolf: nothing to edit at point")

// BuildCourse lays out the configured course and applies the hole overrides
// in order. Random layouts draw from seed.
func BuildCourse(cc config.CourseConfig, seed int64) (*golf.Course, error) {
	var c *golf.Course
	switch cc.Layout {
	case config.LayoutGrid:
		c = golf.DefaultCourse()
	case config.LayoutRandom:
		c = golf.GenerateCourse(rand.New(rand.NewSource(seed)))
	case config.LayoutTemplate, "":
		c = golf.TemplateCourse()
	default:
		return nil, fmt.Errorf("minigolf: unknown layout %q", cc.Layout)
	}

	for _, o := range cc.Holes {
		if err := applyOverride(c, o); err != nil {
			return nil, fmt.Errorf("minigolf: hole %d: %w", o.Hole, err)
		}
	}
	return c, nil
}

func applyOverride(c *golf.Course, o config.HoleOverride) error {
	i := o.Hole - 1
	if _, err := c.Hole(i); err != nil {
		return err
	}
	if o.Par > 0 {
		if err := c.SetPar(i, o.Par); err != nil {
			return err
		}
	}
	if o.Tee != nil {
		if err := c.MoveTee(i, golf.V(o.Tee.X, o.Tee.Y)); err != nil {
			return err
		}
	}
	if o.Cup != nil {
		if err := c.MoveCup(i, golf.V(o.Cup.X, o.Cup.Y)); err != nil {
			return err
		}
	}
	for _, d := range o.Drag {
		from, to := golf.V(d.From.X, d.From.Y), golf.V(d.To.X, d.To.Y)
		var err error
		switch c.GrabAt(i, from) {
		case golf.GrabTee:
			err = c.MoveTee(i, to)
		case golf.GrabCup:
			err = c.MoveCup(i, to)
		default:
			err = fmt.Errorf("%w: drag from (%g, %g)", ErrNothingThere, from.X, from.Y)
		}
		if err != nil {
			return err
		}
	}
	if o.ClearObstacles {
		if err := c.ClearObstacles(i); err != nil {
			return err
		}
	}
	for _, pt := range o.RemoveObstaclesAt {
		removed, err := c.RemoveObstacleAt(i, golf.V(pt.X, pt.Y))
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("%w: no obstacle at (%g, %g)", ErrNothingThere, pt.X, pt.Y)
		}
	}
	for _, oc := range o.Obstacles {
		kind, err := golf.ParseKind(oc.Kind)
		if err != nil {
			return err
		}
		if err := c.AddObstacle(i, golf.V(oc.X, oc.Y), kind); err != nil {
			return err
		}
	}
	// Fairway last so presets follow a moved tee or cup.
	switch o.Fairway {
	case "":
	case config.FairwayNone:
		if err := c.ClearFairway(i); err != nil {
			return err
		}
	default:
		if err := c.ApplyFairwayPreset(i, golf.FairwayPreset(o.Fairway)); err != nil {
			return err
		}
	}
	return nil
}

// SessionConfigFor converts the file configuration into session policies.
func SessionConfigFor(cfg config.GolfConfig, variant golf.Variant, control golf.Control, tickRate int) golf.SessionConfig {
	offsets := make([]float64, len(cfg.Planner.ProbeOffsetsDeg))
	for i, d := range cfg.Planner.ProbeOffsetsDeg {
		offsets[i] = d * math.Pi / 180
	}

	delayMS := cfg.Turn.DelayMS
	if control == golf.ControlManual {
		delayMS = cfg.Turn.ManualDelayMS
	}

	return golf.SessionConfig{
		Variant: variant,
		Control: control,
		Rules: golf.Rules{
			CaptureRadius:   cfg.Rules.CaptureRadius,
			MercyStrokes:    cfg.Rules.MercyStrokes,
			Margin:          cfg.Rules.Margin,
			MaxShotDistance: cfg.Rules.MaxShotDistance,
		},
		Planner: golf.PlannerConfig{
			SampleSteps:         cfg.Planner.SampleSteps,
			ProbeDistance:       cfg.Planner.ProbeDistance,
			ProbeOffsets:        offsets,
			MaxShotDistance:     cfg.Rules.MaxShotDistance,
			AngleSpreadDeg:      cfg.Planner.AngleSpreadDeg,
			PowerSpread:         cfg.Planner.PowerSpread,
			MinPower:            cfg.Planner.MinPower,
			MaxPower:            cfg.Planner.MaxPower,
			AggressionThreshold: cfg.Planner.AggressionThreshold,
			AggressionDistance:  cfg.Planner.AggressionDistance,
			AggressionBoost:     cfg.Planner.AggressionBoost,
		},
		Physics: golf.PhysicsConfig{
			Friction:    cfg.Physics.Friction,
			Restitution: cfg.Physics.Restitution,
			StopEpsilon: cfg.Physics.StopEpsilon,
			CupRadius:   cfg.Physics.CupRadius,
			LaunchSpeed: cfg.Physics.LaunchSpeed,
			MaxFrames:   cfg.Physics.MaxFrames,
		},
		TurnDelayTicks: config.DelayTicks(delayMS, tickRate),
	}
}

// CameraFor returns an unzoomed camera with the configured limits.
func CameraFor(cc config.CameraConfig) golf.Camera {
	cam := golf.DefaultCamera()
	cam.MinScale = cc.MinScale
	cam.MaxScale = cc.MaxScale
	cam.Margin = cc.Margin
	return cam
}

// NewSession builds the configured course and a session on it with the
// given players already registered. Used by headless runs.
func NewSession(cfg config.GolfConfig, variant golf.Variant, control golf.Control, seed int64, tickRate int) (*golf.Session, error) {
	course, err := BuildCourse(cfg.Course, seed)
	if err != nil {
		return nil, err
	}
	s := golf.NewSession(course, SessionConfigFor(cfg, variant, control, tickRate), seed)
	for _, name := range cfg.Players.Names {
		if _, err := s.AddPlayer(name); err != nil {
			return nil, fmt.Errorf("minigolf: player %q: %w", name, err)
		}
	}
	return s, nil
}
