// ABOUTME: CLI commands for the Charm sync backend.
// ABOUTME: Supports link, unlink, status, now, and reset operations.
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/spoons/internal/charm"
	"github.com/harperreed/spoons/internal/config"
)

var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"s"},
	Short:   "Sync data across devices with Charm",
	Long: `Sync spoons data across devices using Charm Cloud.

Sync applies when the backend is "charm". Data is E2E encrypted with your SSH
key before upload. Each collection is synced whole; when two devices change
the same collection, the last one to sync wins.

GETTING STARTED:

  1. Switch the backend:   ~/.config/spoons/config.json  {"backend": "charm"}
  2. Link your device:     spoons sync link
  3. Check sync status:    spoons sync status

COMMANDS:

  link        Link this device to your Charm account
  unlink      Disconnect this device from Charm
  status      Show sync status and account info
  now         Sync immediately
  reset       Reset local data and restore from cloud (destructive)

Data syncs automatically after each change.`,
}

func openCharm() (*charm.Client, error) {
	client, err := charm.InitClient(cfg.GetCharmHost())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize charm client: %w", err)
	}
	return client, nil
}

func runCharmCLI(args ...string) error {
	charmCmd := exec.Command("charm", args...)
	charmCmd.Stdin = os.Stdin
	charmCmd.Stdout = os.Stdout
	charmCmd.Stderr = os.Stderr
	charmCmd.Env = append(os.Environ(), "CHARM_HOST="+cfg.GetCharmHost())
	return charmCmd.Run()
}

var syncLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link this device to Charm",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if err := runCharmCLI("link"); err != nil {
			return fmt.Errorf("failed to link: %w\n\nMake sure 'charm' CLI is installed: go install github.com/charmbracelet/charm@latest", err)
		}
		success(out, "Device linked to Charm")

		client, err := openCharm()
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.Sync(); err != nil {
			warn(out, "Initial sync failed: %v", err)
		} else {
			success(out, "Initial sync complete")
		}
		return nil
	},
}

var syncUnlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Disconnect from Charm",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runCharmCLI("unlink"); err != nil {
			return fmt.Errorf("failed to unlink: %w", err)
		}
		success(cmd.OutOrStdout(), "Device unlinked from Charm")
		fmt.Fprintln(cmd.OutOrStdout(), "Your local data is preserved.")
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if cfg.GetBackend() != config.BackendCharm {
			warn(out, "Backend is %s; sync only applies to the charm backend", cfg.GetBackend())
		}

		client, err := openCharm()
		if err != nil {
			return err
		}
		defer client.Close()

		id, err := client.ID()
		if err != nil {
			warn(out, "Not linked to Charm")
			fmt.Fprintln(out, "\nRun 'spoons sync link' to connect to Charm.")
			return nil
		}

		fmt.Fprintln(out, "Charm ID:", id)
		fmt.Fprintln(out, "Server:  ", client.Host())
		if client.IsReadOnly() {
			warn(out, "Read-only: another spoons process holds the database")
		}

		keys, err := client.Keys()
		if err != nil {
			return fmt.Errorf("failed to list keys: %w", err)
		}
		color.New(color.FgGreen).Fprintln(out, "✓ Connected to Charm")
		fmt.Fprintf(out, "  Collections: %s\n", strings.Join(keys, ", "))
		return nil
	},
}

var syncNowCmd = &cobra.Command{
	Use:   "now",
	Short: "Sync immediately",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := openCharm()
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.Sync(); err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		success(cmd.OutOrStdout(), "Synced with %s", client.Host())
		return nil
	},
}

var syncResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset local data and restore from cloud",
	Long: `Delete all local data and restore from Charm Cloud.

This is a destructive operation. All local data will be lost and restored from cloud.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "This will DELETE all local spoons data and restore from cloud.")
		fmt.Fprint(out, "Continue? [y/N]: ")
		reader := bufio.NewReader(cmd.InOrStdin())
		response, _ := reader.ReadString('\n')
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(out, "Canceled.")
			return nil
		}

		client, err := openCharm()
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.Reset(); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		success(out, "Local data reset and restored from cloud")
		return nil
	},
}

func init() {
	syncCmd.AddCommand(syncLinkCmd)
	syncCmd.AddCommand(syncUnlinkCmd)
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncNowCmd)
	syncCmd.AddCommand(syncResetCmd)
	rootCmd.AddCommand(syncCmd)
}
