// ABOUTME: MCP resource implementations for the workout tracker.
// ABOUTME: Provides gohard://templates, gohard://history, gohard://summary.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/flittly/gohard/internal/catalog"
	"github.com/flittly/gohard/internal/history"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "gohard://templates",
		Name:        "Workout Templates",
		Description: "The built-in workout template catalog",
		MIMEType:    "application/json",
	}, s.handleTemplatesResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "gohard://history",
		Name:        "Workout History",
		Description: "All completed workouts, most recent first",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "gohard://summary",
		Name:        "Training Summary",
		Description: "Lifetime stats, day streak, and the last few workouts",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleTemplatesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource("gohard://templates", catalog.Templates())
}

func (s *Server) handleHistoryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	entries, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return jsonResource("gohard://history", entries)
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	entries, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	recent := entries
	if len(recent) > 5 {
		recent = recent[:5]
	}

	result := map[string]interface{}{
		"generated_at":    time.Now().Format(time.RFC3339),
		"stats":           history.Aggregate(entries),
		"streak_days":     history.Streak(entries, time.Now()),
		"recent_workouts": recent,
	}
	return jsonResource("gohard://summary", result)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
