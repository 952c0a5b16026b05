package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// configFile is the file name looked up in each search directory.
const configFile = "golf.yaml"

// LoadGolf loads the golf configuration.
// Search order: customPath -> ~/.golf/configs/golf.yaml -> ./configs/golf.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadGolf(customPath string) (GolfConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GolfConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseGolf(data)
		if err != nil {
			return GolfConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseGolf(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := ParseGolf(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseGolf(defaultGolfYAML)
	if err != nil {
		return DefaultGolfConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseGolf decodes YAML over the defaults and validates the result.
func ParseGolf(data []byte) (GolfConfig, error) {
	cfg := DefaultGolfConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GolfConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return GolfConfig{}, err
	}
	return cfg, nil
}

// Validate checks values the simulation cannot run with.
func (c GolfConfig) Validate() error {
	switch c.Course.Layout {
	case LayoutTemplate, LayoutGrid, LayoutRandom:
	default:
		return fmt.Errorf("%w: course.layout %q", ErrInvalid, c.Course.Layout)
	}
	for _, h := range c.Course.Holes {
		if h.Hole < 1 || h.Hole > 18 {
			return fmt.Errorf("%w: course.holes hole %d", ErrInvalid, h.Hole)
		}
		if h.Par < 0 {
			return fmt.Errorf("%w: course.holes[%d].par %d", ErrInvalid, h.Hole, h.Par)
		}
	}
	if c.Rules.CaptureRadius <= 0 {
		return fmt.Errorf("%w: rules.capture_radius must be positive", ErrInvalid)
	}
	if c.Rules.MercyStrokes < 0 {
		return fmt.Errorf("%w: rules.mercy_strokes must not be negative", ErrInvalid)
	}
	if c.Rules.MaxShotDistance <= 0 {
		return fmt.Errorf("%w: rules.max_shot_distance must be positive", ErrInvalid)
	}
	if c.Planner.MinPower <= 0 || c.Planner.MaxPower < c.Planner.MinPower || c.Planner.MaxPower > 1 {
		return fmt.Errorf("%w: planner power range [%g, %g]", ErrInvalid, c.Planner.MinPower, c.Planner.MaxPower)
	}
	if c.Planner.SampleSteps <= 0 || c.Planner.ProbeDistance <= 0 {
		return fmt.Errorf("%w: planner.sample_steps and planner.probe_distance must be positive", ErrInvalid)
	}
	if c.Planner.AngleSpreadDeg < 0 || c.Planner.PowerSpread < 0 {
		return fmt.Errorf("%w: planner spreads must not be negative", ErrInvalid)
	}
	if c.Planner.AggressionThreshold <= 0 || c.Planner.AggressionThreshold > 1 {
		return fmt.Errorf("%w: planner.aggression_threshold %g not in (0, 1]", ErrInvalid, c.Planner.AggressionThreshold)
	}
	if c.Planner.AggressionDistance <= 0 || c.Planner.AggressionBoost <= 0 {
		return fmt.Errorf("%w: planner aggression distance and boost must be positive", ErrInvalid)
	}
	if c.Physics.Friction <= 0 || c.Physics.Friction >= 1 {
		return fmt.Errorf("%w: physics.friction %g not in (0, 1)", ErrInvalid, c.Physics.Friction)
	}
	if c.Camera.MinScale <= 0 || c.Camera.MaxScale < c.Camera.MinScale {
		return fmt.Errorf("%w: camera scale range [%g, %g]", ErrInvalid, c.Camera.MinScale, c.Camera.MaxScale)
	}
	if c.Turn.DelayMS < 0 || c.Turn.ManualDelayMS < 0 {
		return fmt.Errorf("%w: turn delays must not be negative", ErrInvalid)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".golf", "configs", filename)
}
