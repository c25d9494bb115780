// ABOUTME: CLI commands for exporting and importing spoons data.
// ABOUTME: Supports JSON, YAML, and Markdown export; imports JSON backups.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harperreed/spoons/internal/gateway"
	"github.com/harperreed/spoons/internal/models"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export all data",
	Long: `Export check-ins, tasks, reminders and custom categories.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Markdown tables (for sharing with a doctor or therapist)

EXAMPLES:

  spoons export json                  # Export all data as JSON
  spoons export json -o backup.json   # Save to file
  spoons export markdown -o week.md`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		at := now()

		var data []byte
		var err error
		switch args[0] {
		case "json":
			data, err = gw.ExportJSON(at)
		case "yaml":
			data, err = gw.ExportYAML(at)
		case "markdown", "md":
			data = []byte(gw.ExportMarkdown(at))
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
			success(out, "Exported to %s", exportOutput)
			return nil
		}

		fmt.Fprintln(out, string(data))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data from a JSON export",
	Long: `Import data from a JSON file written by 'spoons export json'.

Records are merged: a check-in replaces the one for the same day, tasks and
reminders replace those with the same ID, and custom categories are added if
missing. Importing the same file twice changes nothing.

EXAMPLES:

  spoons import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		var backup gateway.ExportData
		if err := json.Unmarshal(data, &backup); err != nil {
			return fmt.Errorf("import failed: unmarshal JSON: %w", err)
		}
		if err := validateImport(&backup); err != nil {
			return fmt.Errorf("import failed, nothing was imported: %w", err)
		}

		summary, err := gw.Import(&backup)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		success(out, "Imported from %s", args[0])
		fmt.Fprintf(out, "  Check-ins:  %d\n", summary.CheckIns)
		fmt.Fprintf(out, "  Tasks:      %d\n", summary.Tasks)
		fmt.Fprintf(out, "  Reminders:  %d\n", summary.Reminders)
		fmt.Fprintf(out, "  Categories: %d new\n", summary.Categories)
		return nil
	},
}

// validateImport checks every record of a backup the way the add commands
// do. Check-ins are keyed by date, so their id is taken from it first.
func validateImport(data *gateway.ExportData) error {
	for i := range data.CheckIns {
		c := &data.CheckIns[i]
		c.ID = c.Date
		if err := models.Validate(c); err != nil {
			return fmt.Errorf("check-in %d: %w", i, err)
		}
	}
	for i := range data.Tasks {
		if err := models.Validate(&data.Tasks[i]); err != nil {
			return fmt.Errorf("task %d: %w", i, err)
		}
	}
	for i := range data.Reminders {
		if err := models.Validate(&data.Reminders[i]); err != nil {
			return fmt.Errorf("reminder %d: %w", i, err)
		}
	}
	for i, c := range data.CustomCategories {
		if err := models.ValidateCategory(c); err != nil {
			return fmt.Errorf("category %d: %w", i, err)
		}
	}
	return nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
