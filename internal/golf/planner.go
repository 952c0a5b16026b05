package golf

import (
	"math"
	"math/rand"
)

// PlannerConfig tunes shot planning.
type PlannerConfig struct {
	SampleSteps         int
	ProbeDistance       float64
	ProbeOffsets        []float64 // radians, tried in order
	MaxShotDistance     float64
	AngleSpreadDeg      float64 // full spread at accuracy 0
	PowerSpread         float64
	MinPower            float64
	MaxPower            float64
	AggressionThreshold float64
	AggressionDistance  float64
	AggressionBoost     float64
}

// DefaultPlannerConfig returns the stock planner tuning.
func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		SampleSteps:         DefaultSampleSteps,
		ProbeDistance:       150,
		ProbeOffsets:        []float64{-math.Pi / 3, -math.Pi / 6, math.Pi / 6, math.Pi / 3},
		MaxShotDistance:     200,
		AngleSpreadDeg:      50,
		PowerSpread:         0.3,
		MinPower:            0.2,
		MaxPower:            1.0,
		AggressionThreshold: 0.7,
		AggressionDistance:  150,
		AggressionBoost:     1.2,
	}
}

// Shot is a resolved intent: where the player aimed, the launch angle after
// skill noise, and power in [MinPower, MaxPower].
type Shot struct {
	Aim     Vec
	Angle   float64
	Power   float64
	Avoided bool // aim was moved off the direct line to dodge an obstacle
}

// Planner chooses simulated shots.
type Planner struct {
	cfg PlannerConfig
}

// NewPlanner creates a planner. A zero config means DefaultPlannerConfig.
// Otherwise non-positive sampling, probe, distance, power and aggression
// fields take their defaults. Zero spreads mean perfect aim and are kept;
// negative ones are defaulted.
func NewPlanner(cfg PlannerConfig) *Planner {
	def := DefaultPlannerConfig()
	if cfg.isZero() {
		return &Planner{cfg: def}
	}
	if cfg.SampleSteps <= 0 {
		cfg.SampleSteps = def.SampleSteps
	}
	if cfg.ProbeDistance <= 0 {
		cfg.ProbeDistance = def.ProbeDistance
	}
	if len(cfg.ProbeOffsets) == 0 {
		cfg.ProbeOffsets = def.ProbeOffsets
	}
	if cfg.MaxShotDistance <= 0 {
		cfg.MaxShotDistance = def.MaxShotDistance
	}
	if cfg.AngleSpreadDeg < 0 {
		cfg.AngleSpreadDeg = def.AngleSpreadDeg
	}
	if cfg.PowerSpread < 0 {
		cfg.PowerSpread = def.PowerSpread
	}
	if cfg.MinPower <= 0 {
		cfg.MinPower = def.MinPower
	}
	if cfg.MaxPower <= 0 || cfg.MaxPower < cfg.MinPower {
		cfg.MaxPower = def.MaxPower
	}
	if cfg.AggressionThreshold <= 0 {
		cfg.AggressionThreshold = def.AggressionThreshold
	}
	if cfg.AggressionDistance <= 0 {
		cfg.AggressionDistance = def.AggressionDistance
	}
	if cfg.AggressionBoost <= 0 {
		cfg.AggressionBoost = def.AggressionBoost
	}
	return &Planner{cfg: cfg}
}

func (c PlannerConfig) isZero() bool {
	return c.SampleSteps == 0 && c.ProbeDistance == 0 && len(c.ProbeOffsets) == 0 &&
		c.MaxShotDistance == 0 && c.AngleSpreadDeg == 0 && c.PowerSpread == 0 &&
		c.MinPower == 0 && c.MaxPower == 0 && c.AggressionThreshold == 0 &&
		c.AggressionDistance == 0 && c.AggressionBoost == 0
}

// Config returns the effective configuration.
func (p *Planner) Config() PlannerConfig {
	return p.cfg
}

// ChooseAim returns the point to aim at from `from` toward target. When the
// sampled direct line is clear the target itself is returned.
func (p *Planner) ChooseAim(from, target Vec, obstacles []Obstacle) (Vec, bool) {
	if !SegmentBlocked(from, target, obstacles, p.cfg.SampleSteps) {
		return target, false
	}

	base := Bearing(from, target)
	for _, off := range p.cfg.ProbeOffsets {
		probe := Toward(from, base+off, p.cfg.ProbeDistance)
		if !SegmentBlocked(from, probe, obstacles, p.cfg.SampleSteps) {
			return probe, true
		}
	}

	// Nothing clear; lay up halfway even if that is still blocked.
	return Toward(from, base, Dist(from, target)*0.5), true
}

// Plan picks an aim point and perturbs angle and power by the player's skill.
// rng supplies the noise; two draws are consumed per call.
func (p *Planner) Plan(rng *rand.Rand, from, target Vec, obstacles []Obstacle, skill SkillProfile) Shot {
	aim, avoided := p.ChooseAim(from, target, obstacles)
	d := Dist(from, aim)

	miss := 1 - clampF(skill.Accuracy, 0, 1)
	angleNoise := (rng.Float64() - 0.5) * miss * p.cfg.AngleSpreadDeg * math.Pi / 180
	powerNoise := (rng.Float64() - 0.5) * miss * p.cfg.PowerSpread

	power := math.Min(d/p.cfg.MaxShotDistance, 1)*clampF(skill.Power, 0, 1) + powerNoise
	power = clampF(power, p.cfg.MinPower, p.cfg.MaxPower)
	if skill.Aggression > p.cfg.AggressionThreshold && d > p.cfg.AggressionDistance {
		power = math.Min(p.cfg.MaxPower, power*p.cfg.AggressionBoost)
	}

	return Shot{
		Aim:     aim,
		Angle:   Bearing(from, aim) + angleNoise,
		Power:   clampF(power, p.cfg.MinPower, p.cfg.MaxPower),
		Avoided: avoided,
	}
}
