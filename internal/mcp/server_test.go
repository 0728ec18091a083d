// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers, and resource handlers.
package mcp

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/flittly/gohard/internal/models"
	"github.com/flittly/gohard/internal/storage"
)

// setupTestStore opens a history store in a temp directory.
func setupTestStore(t *testing.T) *storage.BadgerStore {
	t.Helper()

	store, err := storage.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestNewServer(t *testing.T) {
	store := setupTestStore(t)

	// Registers every tool and resource; schema inference over the tool
	// input structs runs here, so a bad struct tag would panic this test.
	server := NewServer(store)

	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.store == nil {
		t.Error("Expected non-nil store")
	}
}

func TestHandleListTemplates(t *testing.T) {
	server := NewServer(setupTestStore(t))

	_, out, err := server.handleListTemplates(context.Background(), nil, struct{}{})
	if err != nil {
		t.Fatalf("handleListTemplates failed: %v", err)
	}

	templates, ok := out.([]models.WorkoutTemplate)
	if !ok {
		t.Fatalf("unexpected output type %T", out)
	}
	if len(templates) != 4 {
		t.Errorf("len = %d, want 4", len(templates))
	}
}

func TestHandleLogWorkout(t *testing.T) {
	store := setupTestStore(t)
	server := NewServer(store)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   logWorkoutInput
		wantErr bool
	}{
		{
			name: "full leg day",
			input: logWorkoutInput{
				Template:        "Leg Day",
				DurationMinutes: 45,
				Reps:            10,
				Weight:          60,
			},
		},
		{
			name: "partial completion",
			input: logWorkoutInput{
				Template:      "1",
				CompletedSets: 4,
				Weight:        40,
			},
		},
		{
			name:    "unknown template",
			input:   logWorkoutInput{Template: "swimming"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, err := server.handleLogWorkout(ctx, nil, tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("handleLogWorkout failed: %v", err)
			}
			if out.EntryID == "" {
				t.Error("expected entry id in output")
			}
		})
	}

	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2 logged workouts", len(entries))
	}

	// Most recent first: the partial chest workout.
	if entries[0].SessionName != "Chest & Triceps" {
		t.Errorf("entry 0 = %s, want Chest & Triceps", entries[0].SessionName)
	}
	if entries[0].TotalSets != 15 {
		t.Errorf("TotalSets = %d, want 15 (all sets count)", entries[0].TotalSets)
	}
	if entries[0].TotalReps != 4*12 {
		t.Errorf("TotalReps = %d, want 48 (4 completed sets, default reps)", entries[0].TotalReps)
	}

	if entries[1].SessionName != "Leg Day" {
		t.Errorf("entry 1 = %s, want Leg Day", entries[1].SessionName)
	}
	if entries[1].Duration != 45*60 {
		t.Errorf("Duration = %d, want 2700", entries[1].Duration)
	}
	if entries[1].TotalReps != 15*10 {
		t.Errorf("TotalReps = %d, want 150", entries[1].TotalReps)
	}
}

func TestHandleGetStats(t *testing.T) {
	store := setupTestStore(t)
	server := NewServer(store)

	seed := []models.HistoryEntry{
		{ID: "a", SessionName: "Leg Day", Date: time.Now(), TotalSets: 6, TotalWeight: 1500},
		{ID: "b", SessionName: "Back & Biceps", Date: time.Now().AddDate(0, 0, -1), TotalSets: 9, TotalWeight: 500},
	}
	if err := store.Save(seed); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	_, out, err := server.handleGetStats(context.Background(), nil, struct{}{})
	if err != nil {
		t.Fatalf("handleGetStats failed: %v", err)
	}

	if out.Workouts != 2 || out.TotalSets != 15 {
		t.Errorf("stats = %+v, want 2 workouts, 15 sets", out)
	}
	if out.VolumeTons != 2.0 {
		t.Errorf("VolumeTons = %v, want 2.0", out.VolumeTons)
	}
	if out.Streak != 2 {
		t.Errorf("Streak = %d, want 2", out.Streak)
	}
}

func TestHandleListHistoryEmpty(t *testing.T) {
	server := NewServer(setupTestStore(t))

	_, out, err := server.handleListHistory(context.Background(), nil, listHistoryInput{})
	if err != nil {
		t.Fatalf("handleListHistory failed: %v", err)
	}

	msg, ok := out.(map[string]interface{})
	if !ok || msg["message"] == "" {
		t.Errorf("expected empty-history message, got %#v", out)
	}
}

func TestHandleSummaryResource(t *testing.T) {
	store := setupTestStore(t)
	server := NewServer(store)

	seed := []models.HistoryEntry{
		{ID: "a", SessionName: "Leg Day", Date: time.Now(), TotalSets: 6, TotalWeight: 1500},
	}
	if err := store.Save(seed); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	res, err := server.handleSummaryResource(context.Background(), nil)
	if err != nil {
		t.Fatalf("handleSummaryResource failed: %v", err)
	}
	if len(res.Contents) != 1 {
		t.Fatalf("len(Contents) = %d, want 1", len(res.Contents))
	}

	text := res.Contents[0].Text
	for _, want := range []string{`"streak_days": 1`, `"workouts": 1`, "Leg Day"} {
		if !strings.Contains(text, want) {
			t.Errorf("summary missing %q:\n%s", want, text)
		}
	}
}
