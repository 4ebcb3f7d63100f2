package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexarcade/internal/platform/tui"
	"github.com/vovakirdan/hexarcade/internal/registry"
	"github.com/vovakirdan/hexarcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game and Tab to
open the scoreboard. After a game ends, you return to the menu.

Examples:
  hexarcade menu
  hexarcade menu --fps 60
  hexarcade menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	gameLogger, err := interactiveLogger()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("running scoreboard: %w", err)
			}
			if !goBack {
				return nil
			}

		default:
			game, err := registry.Create(result.GameID)
			if err != nil {
				return fmt.Errorf("creating game: %w", err)
			}
			if err := tui.Run(game, store, cfg, gameLogger); err != nil {
				return fmt.Errorf("running game: %w", err)
			}
		}
	}
}
