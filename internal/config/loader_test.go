package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := ParseGolf(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}
	def := DefaultGolfConfig()

	if cfg.Rules != def.Rules {
		t.Errorf("rules = %+v, expected %+v", cfg.Rules, def.Rules)
	}
	if cfg.Physics != def.Physics {
		t.Errorf("physics = %+v, expected %+v", cfg.Physics, def.Physics)
	}
	if cfg.Camera != def.Camera {
		t.Errorf("camera = %+v, expected %+v", cfg.Camera, def.Camera)
	}
	if len(cfg.Planner.ProbeOffsetsDeg) != 4 || cfg.Planner.ProbeOffsetsDeg[0] != -60 {
		t.Errorf("probe offsets = %v", cfg.Planner.ProbeOffsetsDeg)
	}
	if cfg.Course.Layout != LayoutTemplate {
		t.Errorf("layout = %q", cfg.Course.Layout)
	}
}

func TestLoadGolfCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "golf.yaml")
	data := []byte(`
course:
  layout: random
  holes:
    - hole: 2
      par: 5
      tee: {x: 10, y: 20}
      obstacles:
        - {kind: water, x: 100, y: 100}
rules:
  mercy_strokes: 5
players:
  names: [Zed]
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGolf(path)
	if err != nil {
		t.Fatalf("LoadGolf() error = %v", err)
	}
	if cfg.Course.Layout != LayoutRandom {
		t.Errorf("layout = %q, expected random", cfg.Course.Layout)
	}
	if cfg.Rules.MercyStrokes != 5 {
		t.Errorf("mercy = %d, expected 5", cfg.Rules.MercyStrokes)
	}
	// Untouched fields keep their defaults.
	if cfg.Rules.CaptureRadius != 15 {
		t.Errorf("capture radius = %g, expected default 15", cfg.Rules.CaptureRadius)
	}
	if len(cfg.Course.Holes) != 1 || cfg.Course.Holes[0].Tee == nil || cfg.Course.Holes[0].Tee.Y != 20 {
		t.Errorf("hole overrides = %+v", cfg.Course.Holes)
	}
	if cfg.Course.Holes[0].Cup != nil {
		t.Error("unset cup override should stay nil")
	}
	if len(cfg.Players.Names) != 1 || cfg.Players.Names[0] != "Zed" {
		t.Errorf("players = %v", cfg.Players.Names)
	}
}

func TestLoadGolfErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadGolf(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "rules: [1, 2"},
		{"bad layout", "course: {layout: spiral}"},
		{"bad hole", "course: {holes: [{hole: 19}]}"},
		{"power range", "planner: {min_power: 0.9, max_power: 0.5}"},
		{"sample steps", "planner: {sample_steps: 0}"},
		{"aggression threshold", "planner: {aggression_threshold: 0}"},
		{"aggression distance", "planner: {aggression_distance: 0}"},
		{"negative spread", "planner: {angle_spread_deg: -5}"},
		{"friction", "physics: {friction: 1.5}"},
		{"negative delay", "turn: {delay_ms: -1}"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadGolf(path); err == nil {
				t.Errorf("LoadGolf(%q) should fail", tc.yaml)
			}
		})
	}
}

func TestLoadGolfFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadGolf("")
	if err != nil {
		t.Fatalf("LoadGolf() error = %v", err)
	}
	if cfg.Turn.DelayMS != 2000 {
		t.Errorf("delay = %d, expected embedded 2000", cfg.Turn.DelayMS)
	}
}

func TestLoadGolfLocalDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "golf.yaml"), []byte("turn: {delay_ms: 500}"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGolf("")
	if err != nil {
		t.Fatalf("LoadGolf() error = %v", err)
	}
	if cfg.Turn.DelayMS != 500 {
		t.Errorf("delay = %d, expected 500 from ./configs", cfg.Turn.DelayMS)
	}
}

func TestApplyGolfPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		capture float64
		mercy   int
	}{
		{DifficultyEasy, 25, 4},
		{DifficultyNormal, 15, 3},
		{DifficultyHard, 10, 2},
	}
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultGolfConfig()
			ApplyGolfPreset(&cfg, tc.preset)
			if cfg.Rules.CaptureRadius != tc.capture || cfg.Rules.MercyStrokes != tc.mercy {
				t.Errorf("rules = %+v, expected capture %g mercy %d", cfg.Rules, tc.capture, tc.mercy)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	if p, err := ParseDifficulty(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParseDifficulty(\"\") = %q, %v", p, err)
	}
	if p, err := ParseDifficulty("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParseDifficulty(hard) = %q, %v", p, err)
	}
	if _, err := ParseDifficulty("insane"); err == nil {
		t.Error("unknown difficulty should fail")
	}
}

func TestDelayTicks(t *testing.T) {
	tests := []struct {
		ms, rate, want int
	}{
		{2000, 60, 120},
		{0, 60, 0},
		{10, 60, 1},
		{500, 0, 0},
	}
	for _, tc := range tests {
		if got := DelayTicks(tc.ms, tc.rate); got != tc.want {
			t.Errorf("DelayTicks(%d, %d) = %d, expected %d", tc.ms, tc.rate, got, tc.want)
		}
	}
}
