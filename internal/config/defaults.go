package config

import (
	_ "embed"
)

//go:embed defaults/golf.yaml
var defaultGolfYAML []byte

// DefaultGolfConfig returns the built-in configuration.
func DefaultGolfConfig() GolfConfig {
	return GolfConfig{
		Course: CourseConfig{
			Layout: LayoutTemplate,
		},
		Rules: RulesConfig{
			CaptureRadius:   15,
			MercyStrokes:    3,
			Margin:          50,
			MaxShotDistance: 200,
		},
		Planner: PlannerConfig{
			SampleSteps:         20,
			ProbeDistance:       150,
			ProbeOffsetsDeg:     []float64{-60, -30, 30, 60},
			AngleSpreadDeg:      50,
			PowerSpread:         0.3,
			MinPower:            0.2,
			MaxPower:            1.0,
			AggressionThreshold: 0.7,
			AggressionDistance:  150,
			AggressionBoost:     1.2,
		},
		Physics: PhysicsConfig{
			Friction:    0.98,
			Restitution: 0.8,
			StopEpsilon: 0.1,
			CupRadius:   15,
			LaunchSpeed: 4.2,
			MaxFrames:   10000,
		},
		Camera: CameraConfig{
			MinScale: 0.2,
			MaxScale: 5,
			Margin:   300,
			ZoomStep: 1.25,
			PanStep:  40,
		},
		Turn: TurnConfig{
			DelayMS:       2000,
			ManualDelayMS: 0,
		},
		Players: PlayersConfig{
			Names: []string{"Ace", "Birdie", "Bogey"},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultGolfYAML
}
