// ABOUTME: CLI command for the training dashboard.
// ABOUTME: Lifetime totals, day streak, and the premium banner.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/flittly/gohard/internal/history"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime stats and streak",
	Long: `Show the training dashboard: total workouts, total sets, lifetime
volume in tonnes, and the current consecutive-day streak.

The streak counts back from today and survives a single missed day;
a gap of two or more days resets it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := store.Load()
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		agg := history.Aggregate(entries)
		streak := history.Streak(entries, time.Now())

		bold := color.New(color.Bold)
		fmt.Printf("Workouts  %s\n", bold.Sprintf("%d", agg.Workouts))
		fmt.Printf("Sets      %s\n", bold.Sprintf("%d", agg.TotalSets))
		fmt.Printf("Volume    %s\n", bold.Sprintf("%.1f t", agg.VolumeTons))
		fmt.Printf("Streak    %s\n", bold.Sprintf("%d days", streak))

		faint := color.New(color.Faint)
		fmt.Println()
		fmt.Println(faint.Sprint("GoHard Premium, unlimited plans and advanced analysis:"))
		fmt.Println(faint.Sprint(premiumURL))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
