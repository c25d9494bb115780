// ABOUTME: CLI command for the weekly reflection.
// ABOUTME: Shows each day's energy and completions plus week-level averages.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/spoons/internal/models"
	"github.com/harperreed/spoons/internal/views"
)

var weekJSON bool

var weekCmd = &cobra.Command{
	Use:     "week [date]",
	Aliases: []string{"w"},
	Short:   "Weekly summary of energy and completed tasks",
	Long: `Summarize the Sunday-to-Saturday week containing date (default today).

Average energy is taken over the days you checked in; days without a
check-in are skipped rather than counted as zero.

EXAMPLES:

  spoons week
  spoons week 2024-02-14
  spoons week --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		ref := now()
		if len(args) == 1 {
			t, err := models.ParseDate(args[0])
			if err != nil {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", args[0])
			}
			ref = t
		}

		summary := views.Summarize(views.BuildWeek(ref, gw.CheckIns(), gw.Tasks()))

		if weekJSON {
			data, err := json.MarshalIndent(summary, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		color.New(color.Bold).Fprintf(out, "Week of %s to %s\n", summary.Start, summary.End)
		for _, d := range summary.Days {
			energy := faint.Sprint("-")
			if d.Energy != "" {
				energy = d.Energy.Label()
			}
			fmt.Fprintf(out, "  %s %s %s %d/%d done\n",
				padRight(d.Weekday[:3], 4),
				faint.Sprint(d.Date),
				padRight(energy, 9),
				d.Completed, d.Total)
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  Average energy:  %s\n", summary.AverageEnergyLabel)
		fmt.Fprintf(out, "  Tasks completed: %d\n", summary.TotalCompleted)
		fmt.Fprintf(out, "  Completion rate: %d%%\n", summary.CompletionRate)
		return nil
	},
}

func init() {
	weekCmd.Flags().BoolVar(&weekJSON, "json", false, "print the summary as JSON")
	rootCmd.AddCommand(weekCmd)
}
