// ABOUTME: CLI command rendering the due-date calendar.
// ABOUTME: Prints a Sunday-first month grid and the tasks due on the selected day.
package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/spoons/internal/models"
	"github.com/harperreed/spoons/internal/views"
)

var (
	calendarDay   string
	calendarShift int
)

var calendarCmd = &cobra.Command{
	Use:     "calendar [YYYY-MM]",
	Aliases: []string{"cal"},
	Short:   "Show the month calendar of due dates",
	Long: `Show a month grid. Days with tasks due are marked with *, today is
highlighted, and the tasks due on the selected day are listed underneath.

EXAMPLES:

  spoons calendar                    # this month, today selected
  spoons calendar 2024-02 --day 2024-02-20
  spoons calendar --shift 1          # next month`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		today := now()
		todayDate := models.FormatDate(today)

		year, month := today.Year(), today.Month()
		if len(args) == 1 {
			t, err := time.Parse("2006-01", args[0])
			if err != nil {
				return fmt.Errorf("invalid month: %s (use YYYY-MM)", args[0])
			}
			year, month = t.Year(), t.Month()
		}

		selected := todayDate
		if calendarDay != "" {
			if !models.IsDate(calendarDay) {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", calendarDay)
			}
			selected = calendarDay
		}

		tasks := gw.TasksWithDueDates()
		cal := views.BuildCalendar(year, month, todayDate, selected, tasks)
		if calendarShift != 0 {
			year, month = cal.Shift(calendarShift)
			cal = views.BuildCalendar(year, month, todayDate, selected, tasks)
		}

		renderCalendar(out, cal)

		due := views.FilterByDueDate(tasks, selected)
		fmt.Fprintln(out)
		if len(due) == 0 {
			fmt.Fprintf(out, "Nothing due %s.\n", selected)
			return nil
		}
		color.New(color.Bold).Fprintf(out, "Due %s\n", selected)
		for _, t := range due {
			printTaskLine(out, t)
		}
		return nil
	},
}

func renderCalendar(w io.Writer, cal views.Calendar) {
	color.New(color.Bold).Fprintf(w, "%s\n", cal.Title())
	fmt.Fprintln(w, " Su  Mo  Tu  We  Th  Fr  Sa")

	for i, week := range cal.Weeks {
		var b strings.Builder
		if i == 0 {
			b.WriteString(strings.Repeat("    ", cal.LeadingBlanks))
		}
		for _, c := range week {
			mark := " "
			if c.HasTasks {
				mark = "*"
			}
			cell := fmt.Sprintf("%3d%s", c.Day, mark)
			switch {
			case c.IsSelected:
				cell = color.New(color.ReverseVideo).Sprint(cell)
			case c.IsToday:
				cell = color.New(color.FgCyan, color.Bold).Sprint(cell)
			}
			b.WriteString(cell)
		}
		fmt.Fprintln(w, b.String())
	}
}

func init() {
	calendarCmd.Flags().StringVarP(&calendarDay, "day", "d", "", "selected day (YYYY-MM-DD, default today)")
	calendarCmd.Flags().IntVar(&calendarShift, "shift", 0, "move this many months forward (or back if negative)")
	rootCmd.AddCommand(calendarCmd)
}
