// ABOUTME: MCP tool implementations for the workout tracker.
// ABOUTME: Exposes templates, history, stats, and workout logging.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/flittly/gohard/internal/catalog"
	"github.com/flittly/gohard/internal/history"
	"github.com/flittly/gohard/internal/models"
	"github.com/flittly/gohard/internal/session"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_templates",
		Description: "List the built-in workout templates with their exercises",
	}, s.handleListTemplates)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_history",
		Description: "List completed workouts, most recent first",
	}, s.handleListHistory)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Get lifetime workout stats and the current day streak",
	}, s.handleGetStats)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Record a completed workout from a template",
	}, s.handleLogWorkout)
}

// Tool input/output types

type listHistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type statsOutput struct {
	Workouts   int     `json:"workouts"`
	TotalSets  int     `json:"total_sets"`
	VolumeTons float64 `json:"volume_tons"`
	Streak     int     `json:"streak_days"`
}

type logWorkoutInput struct {
	Template        string  `json:"template" jsonschema:"Template id or name (e.g. 1 or Leg Day)"`
	DurationMinutes int     `json:"duration_minutes,omitempty" jsonschema:"How long the workout took"`
	Reps            int     `json:"reps,omitempty" jsonschema:"Reps per completed set (default 12)"`
	Weight          float64 `json:"weight,omitempty" jsonschema:"Weight in kg per completed set"`
	CompletedSets   int     `json:"completed_sets,omitempty" jsonschema:"How many sets were completed (default all)"`
}

type logWorkoutOutput struct {
	EntryID     string  `json:"entry_id"`
	Workout     string  `json:"workout"`
	TotalSets   int     `json:"total_sets"`
	TotalReps   int     `json:"total_reps"`
	TotalWeight float64 `json:"total_weight"`
	Message     string  `json:"message"`
}

// Tool handlers

func (s *Server) handleListTemplates(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	return nil, catalog.Templates(), nil
}

func (s *Server) handleListHistory(ctx context.Context, req *mcp.CallToolRequest, input listHistoryInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	entries, err := s.store.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load history: %w", err)
	}

	if len(entries) == 0 {
		return nil, map[string]interface{}{"message": "No workouts recorded yet."}, nil
	}
	if len(entries) > input.Limit {
		entries = entries[:input.Limit]
	}
	return nil, entries, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, statsOutput, error) {
	entries, err := s.store.Load()
	if err != nil {
		return nil, statsOutput{}, fmt.Errorf("failed to load history: %w", err)
	}

	agg := history.Aggregate(entries)
	return nil, statsOutput{
		Workouts:   agg.Workouts,
		TotalSets:  agg.TotalSets,
		VolumeTons: agg.VolumeTons,
		Streak:     history.Streak(entries, time.Now()),
	}, nil
}

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, logWorkoutOutput, error) {
	tpl, err := catalog.Get(input.Template)
	if err != nil {
		return nil, logWorkoutOutput{}, err
	}

	reps := input.Reps
	if reps <= 0 {
		reps = session.DefaultReps
	}

	sess := session.Start(tpl)
	remaining := input.CompletedSets
	if remaining <= 0 {
		remaining = sess.TotalSets()
	}
	for _, ex := range sess.Exercises {
		for _, st := range ex.Sets {
			if remaining == 0 {
				break
			}
			sess = session.UpdateSet(sess, ex.ID, st.ID, models.Set{
				ID:        st.ID,
				Reps:      reps,
				Weight:    input.Weight,
				Completed: true,
			})
			remaining--
		}
	}

	_, entry := session.Finish(sess, input.DurationMinutes*60)

	entries, err := s.store.Load()
	if err != nil {
		return nil, logWorkoutOutput{}, fmt.Errorf("failed to load history: %w", err)
	}
	if err := s.store.Save(history.Append(entries, entry)); err != nil {
		return nil, logWorkoutOutput{}, fmt.Errorf("failed to save history: %w", err)
	}

	return nil, logWorkoutOutput{
		EntryID:     entry.ID,
		Workout:     entry.SessionName,
		TotalSets:   entry.TotalSets,
		TotalReps:   entry.TotalReps,
		TotalWeight: entry.TotalWeight,
		Message: fmt.Sprintf("Logged %s: %d sets, %d reps, %.1f kg volume",
			entry.SessionName, entry.TotalSets, entry.TotalReps, entry.TotalWeight),
	}, nil
}
