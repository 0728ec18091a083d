// ABOUTME: Export renderers for the history list.
// ABOUTME: Supports JSON (backup), YAML, and Markdown table formats.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/flittly/gohard/internal/models"
)

// ExportData wraps the history list with export metadata.
type ExportData struct {
	ExportedAt time.Time             `json:"exported_at" yaml:"exported_at"`
	Entries    []models.HistoryEntry `json:"entries" yaml:"entries"`
}

// exportEntry flattens a HistoryEntry for the YAML renderer.
type exportEntry struct {
	ID          string  `yaml:"id"`
	SessionID   string  `yaml:"session_id"`
	SessionName string  `yaml:"session_name"`
	Date        string  `yaml:"date"`
	Duration    int     `yaml:"duration_seconds"`
	TotalSets   int     `yaml:"total_sets"`
	TotalReps   int     `yaml:"total_reps"`
	TotalWeight float64 `yaml:"total_weight"`
}

// ExportJSON renders the full history as indented JSON, suitable for backup.
func ExportJSON(entries []models.HistoryEntry) ([]byte, error) {
	data := ExportData{ExportedAt: time.Now(), Entries: entries}
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return out, nil
}

// ImportJSON parses a JSON export back into a history list.
func ImportJSON(data []byte) ([]models.HistoryEntry, error) {
	var ex ExportData
	if err := json.Unmarshal(data, &ex); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}
	return ex.Entries, nil
}

// ExportYAML renders the history as human-readable YAML.
func ExportYAML(entries []models.HistoryEntry) ([]byte, error) {
	flat := make([]exportEntry, len(entries))
	for i, e := range entries {
		flat[i] = exportEntry{
			ID:          e.ID,
			SessionID:   e.SessionID,
			SessionName: e.SessionName,
			Date:        e.Date.Format(time.RFC3339),
			Duration:    e.Duration,
			TotalSets:   e.TotalSets,
			TotalReps:   e.TotalReps,
			TotalWeight: e.TotalWeight,
		}
	}
	out, err := yaml.Marshal(map[string]any{
		"exported_at": time.Now().Format(time.RFC3339),
		"workouts":    flat,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return out, nil
}

// ExportMarkdown renders the history as a Markdown table for sharing.
func ExportMarkdown(entries []models.HistoryEntry) string {
	var b strings.Builder
	b.WriteString("# Workout History\n\n")
	if len(entries) == 0 {
		b.WriteString("No workouts recorded.\n")
		return b.String()
	}

	b.WriteString("| Date | Workout | Duration | Sets | Reps | Volume (t) |\n")
	b.WriteString("|------|---------|----------|------|------|------------|\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "| %s | %s | %d min | %d | %d | %.1f |\n",
			e.Date.Format("2006-01-02"),
			e.SessionName,
			e.Duration/60,
			e.TotalSets,
			e.TotalReps,
			e.TotalWeight/1000)
	}
	return b.String()
}
