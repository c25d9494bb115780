// ABOUTME: CLI commands for task categories.
// ABOUTME: Lists built-in and custom categories and adds new custom ones.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harperreed/spoons/internal/models"
)

var categoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"cat"},
	Short:   "Manage task categories",
}

var categoryListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List categories, built-in first",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, c := range gw.AllCategories() {
			kind := "custom"
			if c.IsDefault() {
				kind = "built-in"
			}
			fmt.Fprintf(out, "  %s %s\n", padRight(string(c), 16), faint.Sprint(kind))
		}
		return nil
	},
}

var categoryAddCmd = &cobra.Command{
	Use:     "add <name>",
	Aliases: []string{"a"},
	Short:   "Add a custom category",
	Long: `Add a custom category. Names are compared exactly, so "Work" and "work"
are different categories.

EXAMPLES:

  spoons category add garden
  spoons category add "doctor visits"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		name := models.Category(strings.Join(args, " "))
		if err := models.ValidateCategory(name); err != nil {
			return err
		}

		added, err := gw.AddCustomCategory(name)
		if err != nil {
			warnWrite(out, "category", err)
			return nil
		}
		if !added {
			fmt.Fprintf(out, "Category %q already exists.\n", name)
			return nil
		}

		success(out, "Added category %s", name)
		return nil
	},
}

func init() {
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryAddCmd)
	rootCmd.AddCommand(categoryCmd)
}
