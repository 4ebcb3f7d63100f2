// hexarcade is a terminal hexagon match game with local and SSH play.
//
// Usage:
//
//	hexarcade list              - List available games
//	hexarcade play [game]       - Play a game (default: hexmatch)
//	hexarcade menu              - Pick games interactively
//	hexarcade serve             - Start SSH server for remote play
//	hexarcade scores [game]     - Show high scores and session stats
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.hexarcade/scores.db)
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Where interactive commands write logs
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexarcade/internal/games/hexmatch"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

// logger is configured from the flags before any command runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "hexarcade",
})

// logCloser closes the log file opened for interactive commands.
var logCloser io.Closer

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexarcade",
	Short: "Hex Arcade - rotate hexagons into colour matches in your terminal",
	Long: `Hex Arcade is a terminal hexagon match game.

Rotate groups of three touching hexagons until three or more of one colour
touch, clear them, and keep the bombs from counting down to zero.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and session statistics

Examples:
  hexarcade play
  hexarcade play hexmatch_zen
  hexarcade play --difficulty hard --seed 42
  hexarcade serve --ssh :2222
  hexarcade scores hexmatch`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.hexarcade/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file for play and menu (default: discard)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup applies the global flags shared by every command.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}

	hexmatch.SetConfigPath(flagConfig)
	hexmatch.SetDifficultyPreset(flagDifficulty)
	return nil
}

// interactiveLogger returns the logger for commands that own the terminal.
// Writing to stderr would tear the alternate screen, so logs go to
// --log-file or nowhere.
func interactiveLogger() (*log.Logger, error) {
	if flagLogFile == "" {
		l := logger.WithPrefix("hexarcade")
		l.SetOutput(io.Discard)
		return l, nil
	}

	path := flagLogFile
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("cannot create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logCloser = f

	l := logger.WithPrefix("hexarcade")
	l.SetOutput(f)
	return l, nil
}
