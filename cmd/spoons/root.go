// ABOUTME: Root Cobra command for the spoons CLI.
// ABOUTME: Loads config and opens the store and gateway via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/spoons/internal/config"
	"github.com/harperreed/spoons/internal/gateway"
	"github.com/harperreed/spoons/internal/storage"
)

var (
	cfg    *config.Config
	logger *log.Logger
	store  storage.Store
	gw     *gateway.Gateway

	flagBackend  string
	flagDataDir  string
	flagLogLevel string

	// now is read once per command and passed down to views and the gateway.
	now = time.Now
)

// Commands (and command groups) that never open the configured store.
// migrate and sync open their own.
var storeless = map[string]bool{
	"help":          true,
	"install-skill": true,
	"completion":    true,
	"migrate":       true,
	"sync":          true,
}

func needsStore(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if storeless[c.Name()] {
			return false
		}
	}
	return true
}

var rootCmd = &cobra.Command{
	Use:   "spoons",
	Short: "Energy-aware task and wellness tracker",
	Long: `Spoons is a CLI for planning your day around the energy you actually have.

WHAT IT TRACKS:

  Check-ins   one per day: energy (very-low, low, moderate, high), mood, symptoms
  Tasks       tagged with energy cost, priority, category and bucket
  Calendar    tasks with a due date, laid out by month
  Reminders   self-care nudges (water, medication, rest, breathing, movement)

QUICK START:

  $ spoons checkin add low --mood tired --symptom fatigue
  $ spoons task add "Call pharmacy" --energy low --priority must-do
  $ spoons task list --fit             # only tasks today's energy allows
  $ spoons task done 3f2a              # toggle by ID prefix
  $ spoons week                        # weekly reflection

STORAGE:

  Data lives in a local badger database under ~/.local/share/spoons/ by
  default. Choose another backend with --backend or in
  ~/.config/spoons/config.json:

    badger   embedded key-value store (default)
    sqlite   single-file SQLite database (spoons.db)
    charm    Charm KV with end-to-end encrypted cloud sync
    memory   throwaway, for trying things out

  Every setting can also come from SPOONS_BACKEND, SPOONS_DATA_DIR,
  SPOONS_LOG_LEVEL and SPOONS_CHARM_HOST.

MCP INTEGRATION:

  Run 'spoons mcp' to start the Model Context Protocol server:

  {
    "mcpServers": {
      "spoons": { "command": "spoons", "args": ["mcp"] }
    }
  }`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		if !needsStore(cmd) {
			return nil
		}
		return openGateway()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeGateway()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: badger, sqlite, charm or memory")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default ~/.local/share/spoons)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn or error")
}

// loadConfig reads the config file and environment, then applies flags.
func loadConfig(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if flagBackend != "" {
		cfg.Backend = flagBackend
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	logger, err = cfg.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	return nil
}

func openGateway() error {
	var err error
	store, err = cfg.OpenStore()
	if err != nil {
		return err
	}
	logger.Debug("opened store", "backend", cfg.GetBackend(), "data_dir", cfg.GetDataDir())
	gw = gateway.New(store, logger)
	return nil
}

func closeGateway() error {
	if store == nil {
		return nil
	}
	err := store.Close()
	store, gw = nil, nil
	return err
}

// Output helpers shared by all commands.

var faint = color.New(color.Faint)

func success(w io.Writer, format string, a ...any) {
	color.New(color.FgGreen).Fprintf(w, "✓ "+format+"\n", a...)
}

func warn(w io.Writer, format string, a ...any) {
	color.New(color.FgYellow).Fprintf(w, "⚠ "+format+"\n", a...)
}

// warnWrite reports a failed save. The gateway already logged it; the
// command still succeeds, matching the app's keep-going behavior.
func warnWrite(w io.Writer, what string, err error) {
	warn(w, "Could not save %s: %v", what, err)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
