// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs the stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/flittly/gohard/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "gohard": {
        "command": "gohard",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  list_templates   List the built-in workout templates
  list_history     List completed workouts
  get_stats        Lifetime stats and the current day streak
  log_workout      Record a completed workout from a template

AVAILABLE RESOURCES:

  gohard://templates   The template catalog
  gohard://history     All completed workouts
  gohard://summary     Stats, streak, and recent workouts`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server := mcp.NewServer(store)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
