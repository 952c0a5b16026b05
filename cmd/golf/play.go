package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-golf/internal/games/minigolf"
	"github.com/vovakirdan/tui-golf/internal/platform/tui"
	"github.com/vovakirdan/tui-golf/internal/registry"
	"github.com/vovakirdan/tui-golf/internal/storage"
)

var flagPickCourse bool

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a round",
	Long: `Start a round in the specified mode.

Controls:
  Left/Right, A/D   - Aim (manual modes)
  Up/Down, W/S      - Shot power (manual modes)
  Space             - Shoot (manual modes)
  Mouse click       - Aim at a point on the course
  +/-, wheel        - Zoom
  Shift+Arrows, HJKL - Pan
  C                 - Whole course / follow play
  N / X             - Add player / remove current player
  P                 - Pause
  R                 - New round (after the round is over)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Examples:
  golf play golf
  golf play golf --players Ann,Bob --course random
  golf play golf_manual --difficulty easy
  golf play golf_physics --pick-course
  golf play golf --config ./my-golf.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPickCourse, "pick-course", false, "Choose the course layout before the round starts")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'golf list' to see available modes)", gameID)
	}

	// Fail before taking over the terminal when the config is broken
	if _, err := minigolf.LoadConfig(); err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	cfg := runtimeConfig(width, height)

	if flagPickCourse {
		opt, updated, err := tui.RunCourseSelector(cfg)
		if err != nil {
			return err
		}
		if opt == nil {
			return nil
		}
		cfg = updated
		minigolf.SetCourseLayout(opt.Layout)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger, closeLog := tuiLogger()
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open rounds database", "error", err)
		// Continue without storage - the round still plays
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, store, cfg, logger)
}
