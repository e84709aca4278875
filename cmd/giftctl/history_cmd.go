package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osdfir/giftctl/pkg/history"
	"github.com/osdfir/giftctl/pkg/tui"
)

// newHistoryCmd creates the history subcommand
func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show recorded install runs",
		Long:  `Show the install runs recorded on this machine, most recent last.`,
		RunE:  runHistory,
	}
}

// runHistory prints the recorded install runs.
func runHistory(_ *cobra.Command, _ []string) error {
	store, err := history.NewStore()
	if err != nil {
		return err
	}

	records, err := store.Load()
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No install runs recorded.")
		return nil
	}

	for _, r := range records {
		categories := "runtime"
		if len(r.Categories) > 0 {
			parts := make([]string, len(r.Categories))
			for i, c := range r.Categories {
				parts[i] = string(c)
			}
			categories = "runtime+" + strings.Join(parts, "+")
		}

		outcome := tui.SuccessStyle.Render(string(r.Outcome))
		if r.Outcome == history.OutcomeFailure {
			outcome = tui.ErrorStyle.Render(string(r.Outcome))
		}

		fmt.Printf("%s  %-28s %4d packages  %s\n",
			r.Time.Format("2006-01-02 15:04:05"), categories, r.Packages, outcome)
		if r.Error != "" {
			fmt.Printf("    %s\n", tui.SubtitleStyle.Render(r.Error))
		}
	}

	return nil
}
