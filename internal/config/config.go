// Package config provides YAML-based configuration loading and difficulty
// presets for the golf simulator.
package config

// GolfConfig contains all tunables for a round of golf.
type GolfConfig struct {
	Course  CourseConfig  `yaml:"course"`
	Rules   RulesConfig   `yaml:"rules"`
	Planner PlannerConfig `yaml:"planner"`
	Physics PhysicsConfig `yaml:"physics"`
	Camera  CameraConfig  `yaml:"camera"`
	Turn    TurnConfig    `yaml:"turn"`
	Players PlayersConfig `yaml:"players"`
}

// Course layouts.
const (
	LayoutTemplate = "template" // six templates on a 6x3 grid
	LayoutGrid     = "grid"     // blank par-4 designer grid
	LayoutRandom   = "random"   // generated non-overlapping layout
)

// CourseConfig selects and edits the course.
type CourseConfig struct {
	Layout string         `yaml:"layout"`
	Holes  []HoleOverride `yaml:"holes"`
}

// FairwayNone in HoleOverride.Fairway removes a designed fairway.
const FairwayNone = "none"

// HoleOverride applies designer edits to one hole after the layout is built.
type HoleOverride struct {
	Hole              int              `yaml:"hole"` // 1-based
	Par               int              `yaml:"par"`
	Tee               *Point           `yaml:"tee"`
	Cup               *Point           `yaml:"cup"`
	Drag              []Drag           `yaml:"drag"`
	Fairway           string           `yaml:"fairway"` // preset name or "none"
	ClearObstacles    bool             `yaml:"clear_obstacles"`
	RemoveObstaclesAt []Point          `yaml:"remove_obstacles_at"`
	Obstacles         []ObstacleConfig `yaml:"obstacles"`
}

// Drag moves whichever of tee or cup lies near From to To.
type Drag struct {
	From Point `yaml:"from"`
	To   Point `yaml:"to"`
}

// Point is a course coordinate.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ObstacleConfig places a designer-sized obstacle centred on (X, Y).
type ObstacleConfig struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// RulesConfig holds the scoring constants.
type RulesConfig struct {
	CaptureRadius   float64 `yaml:"capture_radius"`
	MercyStrokes    int     `yaml:"mercy_strokes"`
	Margin          float64 `yaml:"margin"`
	MaxShotDistance float64 `yaml:"max_shot_distance"`
}

// PlannerConfig tunes simulated shots.
type PlannerConfig struct {
	SampleSteps         int       `yaml:"sample_steps"`
	ProbeDistance       float64   `yaml:"probe_distance"`
	ProbeOffsetsDeg     []float64 `yaml:"probe_offsets_deg"`
	AngleSpreadDeg      float64   `yaml:"angle_spread_deg"`
	PowerSpread         float64   `yaml:"power_spread"`
	MinPower            float64   `yaml:"min_power"`
	MaxPower            float64   `yaml:"max_power"`
	AggressionThreshold float64   `yaml:"aggression_threshold"`
	AggressionDistance  float64   `yaml:"aggression_distance"`
	AggressionBoost     float64   `yaml:"aggression_boost"`
}

// PhysicsConfig tunes the rolling-ball variant.
type PhysicsConfig struct {
	Friction    float64 `yaml:"friction"`
	Restitution float64 `yaml:"restitution"`
	StopEpsilon float64 `yaml:"stop_epsilon"`
	CupRadius   float64 `yaml:"cup_radius"`
	LaunchSpeed float64 `yaml:"launch_speed"`
	MaxFrames   int     `yaml:"max_frames"`
}

// CameraConfig sets the view limits and keyboard step sizes.
type CameraConfig struct {
	MinScale float64 `yaml:"min_scale"`
	MaxScale float64 `yaml:"max_scale"`
	Margin   float64 `yaml:"margin"`
	ZoomStep float64 `yaml:"zoom_step"` // factor per key press
	PanStep  float64 `yaml:"pan_step"`  // view pixels per key press
}

// TurnConfig sets the pause between shots.
type TurnConfig struct {
	DelayMS       int `yaml:"delay_ms"`        // auto-play
	ManualDelayMS int `yaml:"manual_delay_ms"` // keyboard play
}

// PlayersConfig lists players added when a round starts.
type PlayersConfig struct {
	Names []string `yaml:"names"`
}

// DelayTicks converts a millisecond delay to ticks at the given rate.
func DelayTicks(ms, tickRate int) int {
	if ms <= 0 || tickRate <= 0 {
		return 0
	}
	return (ms*tickRate + 999) / 1000
}
