// ABOUTME: CLI commands for energy-tagged tasks.
// ABOUTME: Supports add, list (grouped and filtered), done, edit, show, and rm.
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/spoons/internal/models"
	"github.com/harperreed/spoons/internal/views"
)

var (
	taskEnergy   string
	taskPriority string
	taskCategory string
	taskBucket   string
	taskDate     string
	taskDue      string
	taskNotes    string
	taskTitle    string

	taskListDate   string
	taskListAll    bool
	taskListBucket string
	taskListFit    bool
)

var taskCmd = &cobra.Command{
	Use:     "task",
	Aliases: []string{"t"},
	Short:   "Manage tasks",
	Long: `Tasks carry an energy cost, a priority, a category and a bucket.

PRIORITIES:

  must-do, can-wait, optional

BUCKETS:

  admin-mode, medium-energy, heavy-energy, for-others, for-myself, just-for-fun

Tasks are referred to by ID; the 8-character prefix shown by 'spoons task list'
is enough as long as it is unique.`,
}

var taskAddCmd = &cobra.Command{
	Use:     "add <title>",
	Aliases: []string{"a"},
	Short:   "Add a task",
	Long: `Add a task for today (or --date).

Defaults: moderate energy, can-wait, general. When --bucket is not given and
you have checked in today, the bucket follows your energy (low days land in
admin-mode, high days in heavy-energy); otherwise medium-energy.

EXAMPLES:

  spoons task add "Call pharmacy" --energy low --priority must-do
  spoons task add Laundry -e moderate -b for-myself --due 2024-02-20
  spoons task add "School form" -c kid-related --notes "sign page 2"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		today := now()

		date := taskDate
		if date == "" {
			date = models.FormatDate(today)
		}

		t := models.NewTask(strings.Join(args, " "), date)
		if c := gw.TodayCheckIn(today); c != nil {
			t.WithBucket(c.EnergyLevel.SuggestedBucket())
		}
		if taskEnergy != "" {
			e, err := models.ParseEnergyLevel(taskEnergy)
			if err != nil {
				return err
			}
			t.WithEnergyCost(e)
		}
		if taskPriority != "" {
			p, err := models.ParsePriority(taskPriority)
			if err != nil {
				return err
			}
			t.WithPriority(p)
		}
		if taskCategory != "" {
			c, err := knownCategory(taskCategory)
			if err != nil {
				return err
			}
			t.WithCategory(c)
		}
		if taskBucket != "" {
			b, err := parseStorableBucket(taskBucket)
			if err != nil {
				return err
			}
			t.WithBucket(b)
		}
		t.WithDueDate(taskDue).WithNotes(taskNotes)

		if err := models.Validate(t); err != nil {
			return err
		}
		if err := gw.AddTask(*t); err != nil {
			warnWrite(out, "task", err)
			return nil
		}

		success(out, "Added task")
		printTaskLine(out, *t)
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List tasks grouped by must-do, other and completed",
	Long: `List today's tasks (or --date, or --all), grouped into Must Do, Other and Completed.

FILTERS:

  --fit       hide tasks that cost more energy than today's check-in
  --bucket    only tasks in one bucket (or "all")

EXAMPLES:

  spoons task list
  spoons task list --fit
  spoons task list --all --bucket admin-mode`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		today := now()

		tasks := gw.Tasks()
		if !taskListAll {
			date := taskListDate
			if date == "" {
				date = models.FormatDate(today)
			}
			tasks = views.FilterByDate(tasks, date)
		}

		if taskListFit {
			c := gw.TodayCheckIn(today)
			if c == nil {
				warn(out, "No check-in today, showing every task. %s", models.NoCheckInMessage)
			} else {
				tasks = views.FilterByEnergy(tasks, c.EnergyLevel)
				fmt.Fprintln(out, faint.Sprintf("Energy today: %s", c.EnergyLevel.Label()))
			}
		}
		if taskListBucket != "" {
			b, err := models.ParseBucket(taskListBucket)
			if err != nil {
				return err
			}
			tasks = views.FilterByBucket(tasks, b)
		}

		groups := views.Partition(tasks)
		if groups.Len() == 0 {
			fmt.Fprintln(out, "No tasks found.")
			return nil
		}

		printGroup(out, "Must Do", groups.MustDo)
		printGroup(out, "Other", groups.Other)
		printGroup(out, "Completed", groups.Completed)
		return nil
	},
}

var taskDoneCmd = &cobra.Command{
	Use:     "done <id>",
	Aliases: []string{"toggle"},
	Short:   "Toggle a task between done and not done",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		current, err := gw.GetTask(args[0])
		if err != nil {
			return err
		}
		t, err := gw.ToggleTask(current.ID)
		if err != nil {
			warnWrite(out, "task", err)
			return nil
		}
		if t == nil {
			return fmt.Errorf("task not found: %s", args[0])
		}

		if t.Completed {
			success(out, "Done: %s", t.Title)
		} else {
			warn(out, "Not done: %s", t.Title)
		}
		return nil
	},
}

var taskEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change fields of a task",
	Long: `Change any subset of a task's fields. Only the flags you pass are changed.

EXAMPLES:

  spoons task edit 3f2a --priority must-do
  spoons task edit 3f2a --due ""          # take it off the calendar
  spoons task edit 3f2a --title "Call the pharmacy" --energy very-low`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		current, err := gw.GetTask(args[0])
		if err != nil {
			return err
		}

		patch, err := taskPatchFromFlags(cmd)
		if err != nil {
			return err
		}
		if patch.IsEmpty() {
			return fmt.Errorf("nothing to change: pass at least one flag")
		}

		if err := gw.UpdateTask(current.ID, *patch); err != nil {
			warnWrite(out, "task", err)
			return nil
		}

		updated, err := gw.GetTask(current.ID)
		if err != nil {
			return err
		}
		success(out, "Updated task")
		printTaskLine(out, *updated)
		return nil
	},
}

var taskShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show every field of a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		t, err := gw.GetTask(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%s\n", color.New(color.Bold).Sprint(t.Title))
		fmt.Fprintf(out, "  ID:        %s\n", t.ID)
		fmt.Fprintf(out, "  Date:      %s\n", t.Date)
		if t.HasDueDate() {
			fmt.Fprintf(out, "  Due:       %s\n", t.DueDate)
		}
		fmt.Fprintf(out, "  Energy:    %s\n", t.EnergyCost.Label())
		fmt.Fprintf(out, "  Priority:  %s\n", t.Priority.Label())
		fmt.Fprintf(out, "  Category:  %s\n", t.Category.Label())
		fmt.Fprintf(out, "  Bucket:    %s\n", t.Bucket.Label())
		fmt.Fprintf(out, "  Completed: %t\n", t.Completed)
		if t.Notes != "" {
			fmt.Fprintf(out, "  Notes:     %s\n", t.Notes)
		}
		return nil
	},
}

var taskRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete", "del"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		t, err := gw.GetTask(args[0])
		if err != nil {
			return err
		}
		if err := gw.DeleteTask(t.ID); err != nil {
			warnWrite(out, "tasks", err)
			return nil
		}

		warn(out, "Deleted %s", t.Title)
		return nil
	},
}

// taskPatchFromFlags builds a patch from the edit flags the user actually set.
func taskPatchFromFlags(cmd *cobra.Command) (*models.TaskPatch, error) {
	flags := cmd.Flags()
	patch := &models.TaskPatch{}

	if flags.Changed("title") {
		if strings.TrimSpace(taskTitle) == "" {
			return nil, fmt.Errorf("title cannot be blank")
		}
		patch.Title = &taskTitle
	}
	if flags.Changed("energy") {
		e, err := models.ParseEnergyLevel(taskEnergy)
		if err != nil {
			return nil, err
		}
		patch.EnergyCost = &e
	}
	if flags.Changed("priority") {
		p, err := models.ParsePriority(taskPriority)
		if err != nil {
			return nil, err
		}
		patch.Priority = &p
	}
	if flags.Changed("category") {
		c, err := knownCategory(taskCategory)
		if err != nil {
			return nil, err
		}
		patch.Category = &c
	}
	if flags.Changed("bucket") {
		b, err := parseStorableBucket(taskBucket)
		if err != nil {
			return nil, err
		}
		patch.Bucket = &b
	}
	if flags.Changed("date") {
		if !models.IsDate(taskDate) {
			return nil, fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", taskDate)
		}
		patch.Date = &taskDate
	}
	if flags.Changed("due") {
		if taskDue != "" && !models.IsDate(taskDue) {
			return nil, fmt.Errorf("invalid due date: %s (use YYYY-MM-DD)", taskDue)
		}
		patch.DueDate = &taskDue
	}
	if flags.Changed("notes") {
		patch.Notes = &taskNotes
	}
	return patch, nil
}

// knownCategory accepts built-in and previously added custom categories.
func knownCategory(name string) (models.Category, error) {
	for _, c := range gw.AllCategories() {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category: %s (add it with 'spoons category add %s')", name, name)
}

func parseStorableBucket(s string) (models.Bucket, error) {
	b := models.Bucket(s)
	if !b.IsValid() {
		return "", fmt.Errorf("unknown bucket: %s", s)
	}
	return b, nil
}

func printGroup(w io.Writer, title string, tasks []models.Task) {
	if len(tasks) == 0 {
		return
	}
	color.New(color.Bold).Fprintf(w, "%s (%d)\n", title, len(tasks))
	for _, t := range tasks {
		printTaskLine(w, t)
	}
	fmt.Fprintln(w)
}

func printTaskLine(w io.Writer, t models.Task) {
	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}
	due := ""
	if t.HasDueDate() {
		due = faint.Sprintf(" due %s", t.DueDate)
	}
	fmt.Fprintf(w, "  %s %s %s %s%s\n",
		faint.Sprint(shortID(t.ID)),
		check,
		padRight(t.Title, 28),
		faint.Sprintf("%s · %s · %s", t.EnergyCost.Label(), t.Category.Label(), t.Bucket.Label()),
		due)
}

func init() {
	for _, c := range []*cobra.Command{taskAddCmd, taskEditCmd} {
		c.Flags().StringVarP(&taskEnergy, "energy", "e", "", "energy cost: very-low, low, moderate, high")
		c.Flags().StringVarP(&taskPriority, "priority", "p", "", "must-do, can-wait or optional")
		c.Flags().StringVarP(&taskCategory, "category", "c", "", "category name")
		c.Flags().StringVarP(&taskBucket, "bucket", "b", "", "bucket")
		c.Flags().StringVar(&taskDate, "date", "", "day the task belongs to (YYYY-MM-DD)")
		c.Flags().StringVar(&taskDue, "due", "", "calendar due date (YYYY-MM-DD)")
		c.Flags().StringVar(&taskNotes, "notes", "", "notes")
	}
	taskEditCmd.Flags().StringVar(&taskTitle, "title", "", "new title")

	taskListCmd.Flags().StringVar(&taskListDate, "date", "", "day to list (YYYY-MM-DD, default today)")
	taskListCmd.Flags().BoolVarP(&taskListAll, "all", "a", false, "list tasks from every day")
	taskListCmd.Flags().StringVarP(&taskListBucket, "bucket", "b", "", "only this bucket (or all)")
	taskListCmd.Flags().BoolVarP(&taskListFit, "fit", "f", false, "only tasks today's energy allows")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskEditCmd)
	taskCmd.AddCommand(taskShowCmd)
	taskCmd.AddCommand(taskRmCmd)
	rootCmd.AddCommand(taskCmd)
}
