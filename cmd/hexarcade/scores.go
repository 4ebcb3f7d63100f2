package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexarcade/internal/registry"
	"github.com/vovakirdan/hexarcade/internal/storage"
)

var (
	flagScoresLimit    int
	flagScoresSessions bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top high scores and session statistics for a game
(hexmatch if omitted).

Examples:
  hexarcade scores
  hexarcade scores hexmatch_zen --limit 20
  hexarcade scores --sessions`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresSessions, "sessions", false, "Also list recent sessions")
}

func runScores(cmd *cobra.Command, args []string) error {
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

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'hexarcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)

	reasons, err := store.EndReasonCounts(gameID)
	if err != nil {
		return fmt.Errorf("retrieving sessions: %w", err)
	}
	if len(reasons) > 0 {
		keys := make([]string, 0, len(reasons))
		for k := range reasons {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprint(out, "Endings:")
		for _, k := range keys {
			fmt.Fprintf(out, "  %s=%d", k, reasons[k])
		}
		fmt.Fprintln(out)
	}

	if flagScoresSessions {
		return printSessions(cmd, store, gameID)
	}
	return nil
}

func printSessions(cmd *cobra.Command, store *storage.Store, gameID string) error {
	sessions, err := store.RecentSessions(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving sessions: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Recent sessions:")
	fmt.Fprintf(out, "  %-8s  %-7s  %-5s  %-5s  %-9s  %s\n", "Session", "Score", "Moves", "Bombs", "Ending", "Length")
	for _, s := range sessions {
		fmt.Fprintf(out, "  %-8s  %-7d  %-5d  %-5d  %-9s  %s\n",
			s.SessionID[:8], s.Score, s.Moves, s.BombsSpawned, s.EndReason, s.Duration.Round(time.Second))
	}
	return nil
}
