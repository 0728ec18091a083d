// ABOUTME: Tests for CLI helpers and the live session loop.
// ABOUTME: Drives runSession with scripted input against a temp store.
package main

import (
	"strings"
	"testing"
	"time"

	"github.com/flittly/gohard/internal/catalog"
	"github.com/flittly/gohard/internal/models"
	"github.com/flittly/gohard/internal/session"
	"github.com/flittly/gohard/internal/storage"
)

// useTempStore points the global store at a temp-dir Badger database.
func useTempStore(t *testing.T) *storage.BadgerStore {
	t.Helper()

	s, err := storage.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	old := store
	store = s
	t.Cleanup(func() {
		store = old
		_ = s.Close()
	})
	return s
}

func mustTemplate(t *testing.T, idOrName string) models.WorkoutTemplate {
	t.Helper()
	tpl, err := catalog.Get(idOrName)
	if err != nil {
		t.Fatalf("Get(%q) failed: %v", idOrName, err)
	}
	return tpl
}

func TestRunSessionFinish(t *testing.T) {
	s := useTempStore(t)

	// One set of the first exercise: 11 reps at 5 kg, completed.
	script := "r- 1 1\nw+ 1 1\nw+ 1 1\nx 1 1\nfinish\n"

	if err := runSession(strings.NewReader(script), mustTemplate(t, "Leg Day")); err != nil {
		t.Fatalf("runSession failed: %v", err)
	}

	entries, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len = %d, want 1 entry", len(entries))
	}

	e := entries[0]
	if e.SessionName != "Leg Day" {
		t.Errorf("SessionName = %s, want Leg Day", e.SessionName)
	}
	if e.TotalSets != 15 {
		t.Errorf("TotalSets = %d, want 15", e.TotalSets)
	}
	if e.TotalReps != 11 {
		t.Errorf("TotalReps = %d, want 11 (one completed set)", e.TotalReps)
	}
	if e.TotalWeight != 55 {
		t.Errorf("TotalWeight = %v, want 55 (11 reps x 5 kg)", e.TotalWeight)
	}
}

func TestRunSessionFinishRequiresCompletedSet(t *testing.T) {
	s := useTempStore(t)

	// finish is refused with nothing completed; cancel instead.
	script := "finish\ncancel\ny\n"
	if err := runSession(strings.NewReader(script), mustTemplate(t, "1")); err != nil {
		t.Fatalf("runSession failed: %v", err)
	}

	entries, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("len = %d, want 0 after cancel", len(entries))
	}
}

func TestRunSessionCancelDeclined(t *testing.T) {
	s := useTempStore(t)

	// Declining the confirmation keeps the session alive; EOF then discards.
	script := "x 1 1\ncancel\nn\n"
	if err := runSession(strings.NewReader(script), mustTemplate(t, "2")); err != nil {
		t.Fatalf("runSession failed: %v", err)
	}

	entries, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("len = %d, want 0 after discard", len(entries))
	}
}

func TestApplySetCommandBadInput(t *testing.T) {
	sess := session.Start(mustTemplate(t, "1"))

	tests := []struct {
		name   string
		fields []string
	}{
		{"missing args", []string{"r+"}},
		{"exercise out of range", []string{"r+", "9", "1"}},
		{"set out of range", []string{"x", "1", "7"}},
		{"non-numeric", []string{"w+", "one", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := applySetCommand(sess, tt.fields); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestHistoryCommandLimits(t *testing.T) {
	s := useTempStore(t)

	seed := []models.HistoryEntry{
		{ID: "aaaaaaaa-1111", SessionName: "Leg Day", Date: time.Now(), Duration: 1800},
		{ID: "bbbbbbbb-2222", SessionName: "Back & Biceps", Date: time.Now().AddDate(0, 0, -1), Duration: 2400},
	}
	if err := s.Save(seed); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	tests := []struct {
		name  string
		limit int
	}{
		{"default", 20},
		{"smaller than history", 1},
		{"zero shows all", 0},
		{"negative shows all", -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := historyLimit
			historyLimit = tt.limit
			defer func() { historyLimit = old }()

			if err := historyCmd.RunE(historyCmd, nil); err != nil {
				t.Errorf("history with limit %d failed: %v", tt.limit, err)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Errorf("padRight = %q", got)
	}
	if got := padRight("abcde", 4); got != "abcde" {
		t.Errorf("padRight = %q", got)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{61, "01:01"},
		{2700, "45:00"},
	}
	for _, tt := range tests {
		if got := formatClock(tt.seconds); got != tt.want {
			t.Errorf("formatClock(%d) = %s, want %s", tt.seconds, got, tt.want)
		}
	}
}
