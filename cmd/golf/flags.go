package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-golf/internal/config"
	"github.com/vovakirdan/tui-golf/internal/core"
	"github.com/vovakirdan/tui-golf/internal/games/minigolf"
)

// applyGameFlags hands the shared flags to the golf package before any
// game is created.
func applyGameFlags() error {
	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		return err
	}
	switch flagCourse {
	case "", config.LayoutTemplate, config.LayoutGrid, config.LayoutRandom:
	default:
		return fmt.Errorf("unknown course layout %q", flagCourse)
	}
	if _, err := log.ParseLevel(flagLogLevel); err != nil {
		return err
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	minigolf.SetConfigPath(flagConfig)
	minigolf.SetDifficultyPreset(flagDifficulty)
	minigolf.SetPlayers(flagPlayers)
	minigolf.SetCourseLayout(flagCourse)
	return nil
}

// newLogger builds the command logger. Interactive commands own the
// terminal, so they pass a file or io.Discard instead of stderr.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// tuiLogger logs to ~/.golf/golf.log while the terminal UI is running.
func tuiLogger() (*log.Logger, func()) {
	path := expandHome("~/.golf/golf.log")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(filepath.Dir(path), 0o755)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		l, _ := newLogger(io.Discard, "golf") //nolint:errcheck // level validated in PersistentPreRunE
		return l, func() {}
	}
	l, _ := newLogger(f, "golf") //nolint:errcheck // level validated in PersistentPreRunE
	return l, func() { f.Close() }
}

func expandHome(path string) string {
	if len(path) > 1 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return home + path[1:]
		}
	}
	return path
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
