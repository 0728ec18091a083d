// ABOUTME: CLI command for listing past workouts.
// ABOUTME: Most recent first, with per-workout totals.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"ls", "log"},
	Short:   "List past workouts",
	Long: `List completed workouts, most recent first.

OUTPUT FORMAT:

  Each line shows: ID  DATE  WORKOUT  DURATION  SETS  REPS  VOLUME

EXAMPLES:

  gohard history          # Show the last 20 workouts
  gohard history -n 50    # Show the last 50`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := store.Load()
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No workouts recorded yet. Start one with: gohard start <template>")
			return nil
		}
		// Non-positive limits (pflag accepts them) mean "show everything".
		if historyLimit > 0 && len(entries) > historyLimit {
			entries = entries[:historyLimit]
		}

		faint := color.New(color.Faint)
		for _, e := range entries {
			fmt.Printf("%s %s %s %s  %d sets  %d reps  %.1f t\n",
				faint.Sprint(idPrefix(e.ID)),
				faint.Sprint(e.Date.Format("2006-01-02 15:04")),
				padRight(e.SessionName, 18),
				fmt.Sprintf("%d min", e.Duration/60),
				e.TotalSets,
				e.TotalReps,
				e.TotalWeight/1000)
		}
		return nil
	},
}

// idPrefix shortens an entry id for display. Imported histories may carry
// ids shorter than the usual UUID.
func idPrefix(s string) string {
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "max number of results")
	rootCmd.AddCommand(historyCmd)
}
