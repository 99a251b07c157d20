package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/tablegrab/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent extraction runs",
	Long: `History lists recent extraction runs recorded in the local run-history
database, newest first.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 0, "maximum number of runs to list (default 20)")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := history.Open(historyConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Recent(limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	for _, run := range runs {
		fmt.Fprintf(out, "%s  %-40s pages=%s tables=%d rows=%d -> %s\n",
			run.StartedAt.Format("2006-01-02 15:04"),
			run.SourceURL, run.Pages, run.Tables, run.Rows, run.OutputPath)
	}
	return nil
}
