// ABOUTME: CLI command for moving data between storage backends.
// ABOUTME: Copies every collection from one backend to another.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harperreed/spoons/internal/config"
	"github.com/harperreed/spoons/internal/storage"
)

var (
	migrateFrom   string
	migrateTo     string
	migrateDryRun bool
	migrateForce  bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy data from one storage backend to another",
	Long: `Copy check-ins, tasks, reminders and custom categories between backends.

The destination defaults to the configured backend. If the destination
already holds spoons data the migration stops unless --force is given, in
which case the destination's collections are overwritten.

USAGE:

  spoons migrate --from sqlite --dry-run    # Preview what would be copied
  spoons migrate --from sqlite              # Copy into the configured backend
  spoons migrate --from badger --to charm   # Move local data to Charm sync

AFTER MIGRATION:

  Point your config at the new backend:
    ~/.config/spoons/config.json  {"backend": "charm"}`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		to := migrateTo
		if to == "" {
			to = cfg.GetBackend()
		}
		if migrateFrom == to {
			return fmt.Errorf("source and destination are both %s", to)
		}

		ok, err := sourceExists(cfg, migrateFrom)
		if err != nil {
			return err
		}
		if !ok {
			warn(out, "No %s data found, nothing to migrate", migrateFrom)
			return nil
		}

		src, err := cfg.OpenBackend(migrateFrom)
		if err != nil {
			return err
		}
		defer src.Close()

		if migrateDryRun {
			warn(out, "Dry run mode - no changes will be made")
			return previewMigration(cmd, src)
		}

		dst, err := cfg.OpenBackend(to)
		if err != nil {
			return err
		}
		defer dst.Close()

		if !migrateForce {
			has, err := hasData(dst)
			if err != nil {
				return err
			}
			if has {
				return fmt.Errorf("%s already holds spoons data (use --force to overwrite)", to)
			}
		}

		summary, err := storage.MigrateData(src, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		success(out, "Migrated %s → %s", migrateFrom, to)
		fmt.Fprintf(out, "  Collections: %d\n", summary.Keys)
		fmt.Fprintf(out, "  Empty:       %d\n", summary.Skipped)
		fmt.Fprintf(out, "  Bytes:       %d\n", summary.Bytes)
		return nil
	},
}

// sourceExists avoids creating an empty on-disk store just to read from it.
func sourceExists(c *config.Config, backend string) (bool, error) {
	switch backend {
	case config.BackendBadger:
		return storage.IsDirNonEmpty(c.StorePath(backend))
	case config.BackendSQLite:
		_, err := os.Stat(c.StorePath(backend))
		if os.IsNotExist(err) {
			return false, nil
		}
		return err == nil, err
	}
	return true, nil
}

func hasData(s storage.Store) (bool, error) {
	for _, key := range storage.AllKeys {
		_, err := s.Get(key)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("read %s: %w", key, err)
		}
		return true, nil
	}
	return false, nil
}

func previewMigration(cmd *cobra.Command, src storage.Store) error {
	out := cmd.OutOrStdout()
	for _, key := range storage.AllKeys {
		value, err := src.Get(key)
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Fprintf(out, "  %s %s\n", padRight(key, 20), faint.Sprint("(empty)"))
			continue
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", key, err)
		}
		fmt.Fprintf(out, "  %s %d bytes\n", padRight(key, 20), len(value))
	}
	return nil
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFrom, "from", "", "source backend: badger, sqlite or charm")
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "destination backend (default: configured backend)")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	migrateCmd.Flags().BoolVar(&migrateForce, "force", false, "overwrite a destination that already has data")
	_ = migrateCmd.MarkFlagRequired("from")
	rootCmd.AddCommand(migrateCmd)
}
