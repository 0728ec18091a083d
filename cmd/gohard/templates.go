// ABOUTME: CLI command for listing the workout template catalog.
// ABOUTME: Read-only; templates are compiled in.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/flittly/gohard/internal/catalog"
)

var templatesCmd = &cobra.Command{
	Use:     "templates",
	Aliases: []string{"t"},
	Short:   "List workout templates",
	Long: `List the built-in workout templates.

Each template is a fixed list of exercises. Start one with:

  gohard start <id-or-name>`,
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		bold := color.New(color.Bold)

		for _, tpl := range catalog.Templates() {
			fmt.Printf("%s %s %s\n",
				faint.Sprint(tpl.ID),
				bold.Sprint(tpl.Name),
				faint.Sprint(tpl.Color))
			for _, ex := range tpl.Exercises {
				fmt.Printf("    %s %s\n", padRight(ex.Name, 22), faint.Sprint(ex.Category))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
