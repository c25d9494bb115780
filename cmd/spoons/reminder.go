// ABOUTME: CLI commands for self-care reminders.
// ABOUTME: Built-in reminders can be toggled and completed but not deleted.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harperreed/spoons/internal/gateway"
	"github.com/harperreed/spoons/internal/models"
)

var reminderCmd = &cobra.Command{
	Use:     "reminder",
	Aliases: []string{"r"},
	Short:   "Manage self-care reminders",
	Long: `Gentle self-care nudges. Five come built in:

  1 Drink water   2 Take medication   3 Rest break
  4 Breathing exercise               5 Gentle movement

Add your own with 'spoons reminder add'. Marking a reminder done records the
time, so 'spoons reminder list' shows what you've already done today.`,
}

var reminderListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List reminders and whether each was done today",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		today := now()

		for _, r := range gw.Reminders() {
			state := "[ ]"
			if r.CompletedOn(today) {
				state = "[x]"
			}
			title := r.Title
			if !r.Enabled {
				title = faint.Sprintf("%s (off)", r.Title)
			}
			fmt.Fprintf(out, "  %s %s %s\n", faint.Sprint(padRight(shortID(r.ID), 8)), state, title)
		}
		return nil
	},
}

var reminderToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Turn a reminder on or off",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		current, err := gw.GetReminder(args[0])
		if err != nil {
			return err
		}
		r, err := gw.ToggleReminder(current.ID)
		if err != nil {
			warnWrite(out, "reminder", err)
			return nil
		}
		if r == nil {
			return fmt.Errorf("reminder not found: %s", args[0])
		}

		if r.Enabled {
			success(out, "%s on", r.Title)
		} else {
			warn(out, "%s off", r.Title)
		}
		return nil
	},
}

var reminderDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a reminder done for now",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		current, err := gw.GetReminder(args[0])
		if err != nil {
			return err
		}
		r, err := gw.CompleteReminder(current.ID, now())
		if err != nil {
			warnWrite(out, "reminder", err)
			return nil
		}
		if r == nil {
			return fmt.Errorf("reminder not found: %s", args[0])
		}

		success(out, "%s done", r.Title)
		return nil
	},
}

var reminderAddCmd = &cobra.Command{
	Use:     "add <title>",
	Aliases: []string{"a"},
	Short:   "Add a custom reminder",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		r := models.NewCustomReminder(strings.Join(args, " "))
		if err := models.Validate(r); err != nil {
			return err
		}
		if err := gw.AddReminder(*r); err != nil {
			warnWrite(out, "reminder", err)
			return nil
		}

		success(out, "Added reminder %s", r.Title)
		fmt.Fprintf(out, "  %s\n", faint.Sprint(shortID(r.ID)))
		return nil
	},
}

var reminderRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete", "del"},
	Short:   "Delete a custom reminder",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		r, err := gw.GetReminder(args[0])
		if err != nil {
			return err
		}
		err = gw.DeleteReminder(r.ID)
		if errors.Is(err, gateway.ErrDefaultReminder) {
			return fmt.Errorf("%q is built in; turn it off with 'spoons reminder toggle %s'", r.Title, r.ID)
		}
		if err != nil {
			warnWrite(out, "reminders", err)
			return nil
		}

		warn(out, "Deleted reminder %s", r.Title)
		return nil
	},
}

func init() {
	reminderCmd.AddCommand(reminderListCmd)
	reminderCmd.AddCommand(reminderToggleCmd)
	reminderCmd.AddCommand(reminderDoneCmd)
	reminderCmd.AddCommand(reminderAddCmd)
	reminderCmd.AddCommand(reminderRmCmd)
	rootCmd.AddCommand(reminderCmd)
}
