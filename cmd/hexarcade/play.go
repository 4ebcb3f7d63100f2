package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hexarcade/internal/core"
	"github.com/vovakirdan/hexarcade/internal/platform/tui"
	"github.com/vovakirdan/hexarcade/internal/registry"
	"github.com/vovakirdan/hexarcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (hexmatch if omitted).

Controls:
  Arrows/WASD  - Move the selection
  Mouse click  - Select the three tiles around the pointer;
                 click the selection again to rotate it
  E/Space      - Rotate clockwise
  Z/X          - Rotate counter-clockwise
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Four colours, bombs start with more time
  normal - Five colours
  hard   - Six colours
  fixed  - No progression, bombs keep their configured pace

Examples:
  hexarcade play
  hexarcade play hexmatch_zen
  hexarcade play --difficulty hard
  hexarcade play --config ./my-hexmatch.yaml --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "hexmatch"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'hexarcade list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	gameLogger, err := interactiveLogger()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, runtimeConfig(), gameLogger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// runtimeConfig builds the game runtime config from the terminal size and
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
