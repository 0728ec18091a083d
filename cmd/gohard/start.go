// ABOUTME: CLI command for running a live workout session.
// ABOUTME: Interactive loop over the session engine with a 1s elapsed clock.
package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/flittly/gohard/internal/catalog"
	"github.com/flittly/gohard/internal/history"
	"github.com/flittly/gohard/internal/models"
	"github.com/flittly/gohard/internal/session"
)

var startCmd = &cobra.Command{
	Use:   "start <template>",
	Short: "Start a live workout session",
	Long: `Start a live logging session from a template.

Every exercise begins with 3 sets of 12 reps at 0 kg. During the session:

  r+ <ex> <set>     add a rep            r- <ex> <set>     drop a rep
  w+ <ex> <set>     add 2.5 kg           w- <ex> <set>     drop 2.5 kg
  x <ex> <set>      toggle set done      note <ex> <text>  set exercise note
  show              reprint the session  finish            save and exit
  cancel            discard the session

Exercises and sets are addressed by their printed numbers, e.g. "x 2 1"
marks the first set of the second exercise as done. Finishing requires at
least one completed set; cancelling asks for confirmation.

Examples:
  gohard start 3
  gohard start "Leg Day"
  gohard start chest`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tpl, err := catalog.Get(args[0])
		if err != nil {
			return err
		}
		return runSession(cmd.InOrStdin(), tpl)
	},
}

// runSession owns the single active session and its clock. The clock is
// stopped exactly once no matter how the session ends.
func runSession(in io.Reader, tpl models.WorkoutTemplate) error {
	sess := session.Start(tpl)
	clock := session.NewClock()
	defer clock.Stop()

	color.New(color.Bold).Printf("%s\n", sess.Name)
	printSession(sess, clock.Elapsed())
	fmt.Println(`Type "help" for session commands.`)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			// EOF discards the session, same as cancel.
			fmt.Println("\nSession discarded.")
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "r+", "r-", "w+", "w-", "x":
			updated, err := applySetCommand(sess, fields)
			if err != nil {
				color.Yellow("%v", err)
				continue
			}
			sess = updated
			printProgress(sess, clock.Elapsed())

		case "note":
			if len(fields) < 3 {
				color.Yellow("usage: note <exercise> <text>")
				continue
			}
			ex, err := exerciseAt(sess, fields[1])
			if err != nil {
				color.Yellow("%v", err)
				continue
			}
			sess = session.UpdateNotes(sess, ex.ID, strings.Join(fields[2:], " "))

		case "show", "s":
			printSession(sess, clock.Elapsed())

		case "finish", "f":
			if sess.CompletedSets() == 0 {
				color.Yellow("Complete at least one set before finishing.")
				continue
			}
			elapsed := clock.Elapsed()
			clock.Stop()
			return finishSession(sess, elapsed)

		case "cancel", "q":
			fmt.Print("Discard this session? [y/N] ")
			if !scanner.Scan() || !strings.EqualFold(strings.TrimSpace(scanner.Text()), "y") {
				continue
			}
			clock.Stop()
			fmt.Println("Session discarded.")
			return nil

		case "help", "h", "?":
			printSessionHelp()

		default:
			color.Yellow("unknown command: %s (try \"help\")", fields[0])
		}
	}
}

// applySetCommand resolves "<cmd> <exercise> <set>" against the session and
// returns the updated session value.
func applySetCommand(sess models.Session, fields []string) (models.Session, error) {
	if len(fields) != 3 {
		return sess, fmt.Errorf("usage: %s <exercise> <set>", fields[0])
	}
	ex, err := exerciseAt(sess, fields[1])
	if err != nil {
		return sess, err
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil || n < 1 || n > len(ex.Sets) {
		return sess, fmt.Errorf("no set %s in exercise %s", fields[2], ex.Name)
	}
	set := ex.Sets[n-1]

	switch fields[0] {
	case "r+":
		set = set.AddReps(1)
	case "r-":
		set = set.AddReps(-1)
	case "w+":
		set = set.AddWeight(models.WeightStep)
	case "w-":
		set = set.AddWeight(-models.WeightStep)
	case "x":
		set = set.ToggleCompleted()
	}
	return session.UpdateSet(sess, ex.ID, set.ID, set), nil
}

// exerciseAt resolves a 1-based exercise index from user input.
func exerciseAt(sess models.Session, arg string) (models.Exercise, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(sess.Exercises) {
		return models.Exercise{}, fmt.Errorf("no exercise %s in this session", arg)
	}
	return sess.Exercises[n-1], nil
}

// finishSession persists the finished session's history entry and prints a
// summary with the updated streak.
func finishSession(sess models.Session, elapsedSeconds int) error {
	done, entry := session.Finish(sess, elapsedSeconds)

	entries, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	entries = history.Append(entries, entry)
	if err := store.Save(entries); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}

	color.Green("✓ Finished %s in %s", done.Name, formatClock(elapsedSeconds))
	fmt.Printf("  Sets: %d/%d completed\n", done.CompletedSets(), done.TotalSets())
	fmt.Printf("  Reps: %d\n", entry.TotalReps)
	fmt.Printf("  Volume: %.1f kg\n", entry.TotalWeight)
	fmt.Printf("  Streak: %d days\n", history.Streak(entries, time.Now()))
	return nil
}

func printSession(sess models.Session, elapsedSeconds int) {
	faint := color.New(color.Faint)
	check := color.New(color.FgGreen)

	printProgress(sess, elapsedSeconds)
	for i, ex := range sess.Exercises {
		fmt.Printf("%d. %s %s\n", i+1, ex.Name, faint.Sprintf("(%d/%d sets)", ex.CompletedSets(), len(ex.Sets)))
		if ex.Notes != "" {
			fmt.Printf("   %s\n", faint.Sprint(ex.Notes))
		}
		for j, set := range ex.Sets {
			mark := faint.Sprint("·")
			if set.Completed {
				mark = check.Sprint("✓")
			}
			fmt.Printf("   %s set %d: %d reps × %.1f kg\n", mark, j+1, set.Reps, set.Weight)
		}
	}
}

func printProgress(sess models.Session, elapsedSeconds int) {
	const width = 20
	pct := session.Progress(sess)
	filled := int(pct / 100 * width)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	fmt.Printf("[%s] %3.0f%%  %d/%d sets  %s\n",
		bar, pct, sess.CompletedSets(), sess.TotalSets(), formatClock(elapsedSeconds))
}

func printSessionHelp() {
	fmt.Println(`  r+ <ex> <set>   add a rep            r- <ex> <set>   drop a rep
  w+ <ex> <set>   add 2.5 kg           w- <ex> <set>   drop 2.5 kg
  x <ex> <set>    toggle set done      note <ex> <text> set exercise note
  show            reprint the session  finish           save and exit
  cancel          discard the session`)
}

// formatClock renders elapsed seconds as mm:ss.
func formatClock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func init() {
	rootCmd.AddCommand(startCmd)
}
