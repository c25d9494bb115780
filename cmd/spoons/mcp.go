// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio MCP server over the configured store.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/spoons/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout and uses the same storage backend
as the CLI.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "spoons": {
        "command": "spoons",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_checkin        Log a day's energy, mood and symptoms
  get_checkin        Get the check-in for a day
  add_task           Create a task
  list_tasks         List tasks grouped, filtered by date, bucket or energy
  update_task        Change fields of a task
  toggle_task        Mark a task done or not done
  delete_task        Delete a task
  list_reminders     List reminders and today's status
  toggle_reminder    Enable or disable a reminder
  complete_reminder  Mark a reminder done
  add_reminder       Add a custom reminder
  delete_reminder    Delete a custom reminder
  list_categories    List task categories
  add_category       Add a custom category
  get_calendar       Month grid of due dates
  weekly_summary     Weekly energy and completion summary

AVAILABLE RESOURCES:

  spoons://today       Today's check-in, tasks and reminders
  spoons://week        This week's summary
  spoons://categories  Task categories`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(gw)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)
		go func() {
			select {
			case <-sigChan:
				cancel()
			case <-ctx.Done():
			}
		}()

		logger.Info("serving MCP on stdio")
		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
