// ABOUTME: Root Cobra command for gohard CLI.
// ABOUTME: Handles history store lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flittly/gohard/internal/config"
	"github.com/flittly/gohard/internal/storage"
)

// premiumURL is the opaque checkout link surfaced by the stats banner.
const premiumURL = "https://link.infinitepay.io/infinit-flittly/VC1DLUMtUg-6jVwwLB84j-14,90"

var (
	store storage.Store
)

var rootCmd = &cobra.Command{
	Use:   "gohard",
	Short: "Workout tracker with templates, live sessions, and streaks",
	Long: `GoHard is a CLI workout tracker. Pick a template, run through a live
logging session, and build a training streak.

QUICK START:

  $ gohard templates              # See the built-in workout templates
  $ gohard start "Leg Day"        # Run a live session (sets, reps, weight)
  $ gohard history                # Past workouts, most recent first
  $ gohard stats                  # Lifetime totals and your day streak

LIVE SESSIONS:

  During a session every exercise starts with 3 sets of 12 reps at 0 kg.
  Bump reps and weight per set, mark sets done, and finish when at least
  one set is completed. Cancelling discards the session entirely.

MCP INTEGRATION:

  Run 'gohard mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants.

DATA STORAGE:

  History is stored locally at ~/.local/share/gohard (override the data
  directory in ~/.config/gohard/config.json).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that never touch the store skip opening it.
		switch cmd.Name() {
		case "templates", "help", "version", "completion":
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		store, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open history store: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}
