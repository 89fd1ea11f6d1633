package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samdwyer/doom/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best finished games",
	Long: `Display the best recorded games, richest first and then deepest.

Examples:
  doom scores
  doom scores --limit 20`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", storage.DefaultLimit, "Number of games to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.ScoreDB)
	if err != nil {
		return err
	}
	defer store.Close()

	scores, err := store.TopScores(cmd.Context(), flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Top Rogueists")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No games recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-12s  %-6s  %-5s  %-5s  %-12s  %s\n", "Rank", "Name", "Gold", "Level", "Max", "Result", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %-6s  %-5s  %-5s  %-12s  %s\n", "----", "----", "----", "-----", "---", "------", "----")
	for i, e := range scores {
		result := e.Outcome
		if e.Cause != "" {
			result = e.Cause
		}
		fmt.Fprintf(out, "  %-4d  %-12s  %-6d  %-5d  %-5d  %-12s  %s\n",
			i+1, e.Name, e.Gold, e.Depth, e.MaxDepth, result, e.EndedAt.Format("2006-01-02 15:04"))
	}

	total, err := store.Count(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Games recorded: %d\n", total)
	return nil
}
