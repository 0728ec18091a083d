// ABOUTME: History list operations: append, streak, lifetime aggregates.
// ABOUTME: Pure functions over []HistoryEntry; no storage concerns here.
package history

import (
	"sort"
	"time"

	"github.com/flittly/gohard/internal/models"
)

// Append prepends entry so the list stays most-recent-first for display.
// The input slice is not modified.
func Append(entries []models.HistoryEntry, entry models.HistoryEntry) []models.HistoryEntry {
	out := make([]models.HistoryEntry, 0, len(entries)+1)
	out = append(out, entry)
	return append(out, entries...)
}

// Streak counts consecutive training days backward from now, allowing at
// most one missed calendar day between entries. Entries are re-sorted by
// date descending before the walk; time of day is ignored. Multiple entries
// on the same day each count +1, matching the historical behavior.
func Streak(entries []models.HistoryEntry, now time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	sorted := make([]models.HistoryEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	streak := 0
	lastDate := midnight(now)
	for _, e := range sorted {
		entryDate := midnight(e.Date)
		diffDays := int(lastDate.Sub(entryDate).Hours() / 24)
		if diffDays > 1 {
			break
		}
		streak++
		lastDate = entryDate
	}
	return streak
}

// midnight truncates t to the start of its calendar day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Stats holds lifetime aggregates over the whole history.
type Stats struct {
	Workouts   int     `json:"workouts"`
	TotalSets  int     `json:"totalSets"`
	VolumeTons float64 `json:"volumeTons"` // Σ totalWeight / 1000
}

// Aggregate reduces the history into lifetime stats. Pure and idempotent.
func Aggregate(entries []models.HistoryEntry) Stats {
	s := Stats{Workouts: len(entries)}
	var volume float64
	for _, e := range entries {
		s.TotalSets += e.TotalSets
		volume += e.TotalWeight
	}
	s.VolumeTons = volume / 1000
	return s
}
