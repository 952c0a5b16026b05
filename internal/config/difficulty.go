package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty resolves a preset name. The empty string means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	}
	return "", fmt.Errorf("%w: difficulty %q (want easy, normal or hard)", ErrInvalid, s)
}

// ApplyGolfPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyGolfPreset(cfg *GolfConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.CaptureRadius = 25
		cfg.Rules.MercyStrokes = 4
		cfg.Physics.CupRadius = 25
		cfg.Planner.AngleSpreadDeg = 30
		cfg.Planner.PowerSpread = 0.2
	case DifficultyHard:
		cfg.Rules.CaptureRadius = 10
		cfg.Rules.MercyStrokes = 2
		cfg.Physics.CupRadius = 10
		cfg.Planner.AngleSpreadDeg = 70
		cfg.Planner.PowerSpread = 0.4
	}
}
