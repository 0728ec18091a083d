// ABOUTME: CLI commands for exporting and importing workout history.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/flittly/gohard/internal/storage"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export workout history",
	Long: `Export workout history in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Markdown table (for documentation/sharing)

EXAMPLES:

  gohard export json                 # Export all history as JSON
  gohard export json -o backup.json  # Save to file
  gohard export markdown             # Shareable table`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := store.Load()
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		var data []byte
		switch args[0] {
		case "json":
			data, err = storage.ExportJSON(entries)
		case "yaml":
			data, err = storage.ExportYAML(entries)
		case "markdown":
			data = []byte(storage.ExportMarkdown(entries))
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", args[0])
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import workout history from JSON",
	Long: `Import workout history from a JSON backup file.

The imported list replaces the stored history entirely, matching the
store's whole-collection write contract.

EXAMPLES:

  gohard import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		entries, err := storage.ImportJSON(data)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		if err := store.Save(entries); err != nil {
			return fmt.Errorf("failed to save history: %w", err)
		}

		color.Green("✓ Imported %d workouts", len(entries))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
