package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-golf/internal/games/minigolf"
	"github.com/vovakirdan/tui-golf/internal/platform/tui"
	"github.com/vovakirdan/tui-golf/internal/registry"
	"github.com/vovakirdan/tui-golf/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Pick a mode, then a course layout. After a round you return to the
menu to play again. Tab opens the leaderboard.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Leaderboard
  Esc/B        - Back (in-game: when paused or the round is over)
  Q            - Quit

Examples:
  golf menu
  golf menu --fps 30
  golf menu --players Ann,Bob --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog := tuiLogger()
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open rounds database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	cfg := runtimeConfig(width, height)

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		if menuResult.GameID == "" {
			return nil
		}

		opt, updated, err := tui.RunCourseSelector(cfg)
		if err != nil {
			return err
		}
		cfg = updated
		if opt == nil {
			continue // Back to menu
		}
		minigolf.SetCourseLayout(opt.Layout)

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "error", err)
			continue
		}

		// Fresh seed for each round unless one was pinned
		round := cfg
		if round.Seed == 0 {
			round.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, round, logger); err != nil {
			logger.Error("round failed", "game", menuResult.GameID, "error", err)
		}
	}
}
