// ABOUTME: CLI command for moving the history log between backends.
// ABOUTME: Copies the log from the configured backend to another one.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/harperreed/medcalc/internal/config"
	"github.com/harperreed/medcalc/internal/storage"
	"github.com/spf13/cobra"
)

var (
	migrateTo     string
	migrateDryRun bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate --to <backend>",
	Short: "Copy the history log to another backend",
	Long: `Copy the history log from the current backend to another one.

BACKENDS:

  sqlite   ~/.local/share/medcalc/medcalc.db (default)
  badger   ~/.local/share/medcalc/badger/
  charm    Charm Cloud KV, E2E encrypted with your SSH key

IMPORTANT:

  - The destination must not already hold calculations
  - The source is left untouched
  - Run with --dry-run first to see what would be migrated

USAGE:

  medcalc migrate --to badger --dry-run
  medcalc migrate --to badger
  medcalc config set backend badger   # then switch over`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if migrateTo == cfg.GetBackend() {
			return fmt.Errorf("already using the %s backend", migrateTo)
		}

		dstCfg := *cfg
		if err := dstCfg.Set("backend", migrateTo); err != nil {
			return err
		}

		if migrateDryRun {
			yellow.Fprintln(out, "Dry run mode - no changes will be made")
			fmt.Fprintf(out, "Would copy %d calculations from %s to %s\n", history.Len(), cfg.GetBackend(), migrateTo)
			if migrateTo == config.BackendBadger {
				dir := filepath.Join(dstCfg.GetDataDir(), "badger")
				if nonEmpty, err := storage.IsDirNonEmpty(dir); err == nil && nonEmpty {
					yellow.Fprintf(out, "Note: %s already has data\n", dir)
				}
			}
			return nil
		}

		dst, err := dstCfg.OpenStorage()
		if err != nil {
			return err
		}
		defer dst.Close()

		summary, err := storage.MigrateHistory(kvStore, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		green.Fprintf(out, "✓ Migrated %d calculations to %s\n", summary.Records, migrateTo)
		fmt.Fprintf(out, "  Switch with: medcalc config set backend %s\n", migrateTo)
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "destination backend: sqlite, badger, or charm")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	_ = migrateCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(migrateCmd)
}
