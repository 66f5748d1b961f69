// ABOUTME: CLI commands for Charm-based sync of the history log.
// ABOUTME: Supports link, unlink, status, now, repair, reset, and wipe operations.
package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/charmbracelet/charm/kv"
	"github.com/harperreed/medcalc/internal/charm"
	"github.com/harperreed/medcalc/internal/config"
	"github.com/harperreed/medcalc/internal/storage"
	"github.com/spf13/cobra"
)

var syncRepairForce bool

var syncCmd = &cobra.Command{
	Use:         "sync",
	Aliases:     []string{"s"},
	Short:       "Sync the history log across devices",
	Annotations: map[string]string{skipStorage: "true"},
	Long: `Sync the history log across devices using Charm Cloud.

Sync applies to the charm backend only:

  medcalc config set backend charm

Your data is E2E encrypted with your SSH key before upload.

COMMANDS:

  link        Link this device to your Charm account
  unlink      Disconnect this device from Charm
  status      Show sync status and account info
  now         Pull and push changes immediately
  repair      Repair local database corruption
  reset       Reset local data and restore from cloud (destructive)
  wipe        Delete cloud and local data (destructive)

With the charm backend, every saved calculation syncs automatically.`,
}

var syncLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link this device to Charm",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runCharmCLI(cmd, "link"); err != nil {
			return fmt.Errorf("failed to link: %w\n\nMake sure 'charm' CLI is installed: go install github.com/charmbracelet/charm@latest", err)
		}
		out := cmd.OutOrStdout()
		green.Fprintln(out, "\n✓ Device linked to Charm")

		client, err := charm.InitClient()
		if err != nil {
			yellow.Fprintf(out, "⚠ Initial sync skipped: %v\n", err)
			return nil
		}
		defer client.Close()
		if err := client.Sync(); err != nil {
			yellow.Fprintf(out, "⚠ Initial sync failed: %v\n", err)
			return nil
		}
		green.Fprintln(out, "✓ Initial sync complete")
		return nil
	},
}

var syncUnlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Disconnect from Charm",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runCharmCLI(cmd, "unlink"); err != nil {
			return fmt.Errorf("failed to unlink: %w", err)
		}
		green.Fprintln(cmd.OutOrStdout(), "✓ Device unlinked from Charm")
		fmt.Fprintln(cmd.OutOrStdout(), "Your local history is preserved.")
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		c, err := loadConfig()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Backend: %s\n", c.GetBackend())
		if c.GetBackend() != config.BackendCharm {
			fmt.Fprintln(out, "\nSync is off. Enable it with 'medcalc config set backend charm'.")
			return nil
		}

		client, err := charm.InitClient()
		if err != nil {
			yellow.Fprintf(out, "Charm client not available: %v\n", err)
			return nil
		}
		defer client.Close()

		id, err := client.ID()
		if err != nil {
			yellow.Fprintln(out, "Not linked to Charm")
			fmt.Fprintln(out, "\nRun 'medcalc sync link' to connect to Charm.")
			return nil
		}

		h := storage.OpenHistory(client, storage.WithLogger(logger))
		fmt.Fprintln(out, "Charm ID:", id)
		fmt.Fprintln(out, "Server:", charm.Host)
		if client.IsReadOnly() {
			yellow.Fprintln(out, "Read-only: another process holds the database")
		}
		green.Fprintln(out, "✓ Connected to Charm")
		fmt.Fprintf(out, "  Calculations: %d\n", h.Len())
		return nil
	},
}

var syncNowCmd = &cobra.Command{
	Use:   "now",
	Short: "Sync immediately",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charm.InitClient()
		if err != nil {
			return fmt.Errorf("failed to open charm: %w", err)
		}
		defer client.Close()
		if err := client.Sync(); err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		green.Fprintln(cmd.OutOrStdout(), "✓ Synced with Charm Cloud")
		return nil
	},
}

var syncRepairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Repair database corruption",
	Long: `Repair the local Charm database by checkpointing WAL, removing SHM files,
checking integrity, and vacuuming.

Run with --force to attempt recovery even if integrity checks fail.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Repairing medcalc database...")
		result, err := kv.Repair(charm.DBName, syncRepairForce)

		if result.WalCheckpointed {
			green.Fprintln(out, "  ✓ WAL checkpointed")
		}
		if result.ShmRemoved {
			green.Fprintln(out, "  ✓ SHM file removed")
		}
		if result.IntegrityOK {
			green.Fprintln(out, "  ✓ Integrity check passed")
		} else {
			yellow.Fprintln(out, "  ✗ Integrity check failed")
		}
		if result.Vacuumed {
			green.Fprintln(out, "  ✓ Database vacuumed")
		}

		if err != nil {
			if !syncRepairForce {
				yellow.Fprintln(out, "\nRun with --force to attempt recovery.")
			}
			return fmt.Errorf("repair failed: %w", err)
		}
		green.Fprintln(out, "\n✓ Repair complete")
		return nil
	},
}

var syncResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset local data and restore from cloud",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "This will DELETE the local history and restore it from cloud.")
		if !confirm(cmd.InOrStdin(), out, "Continue? [y/N]: ", "y", "yes") {
			fmt.Fprintln(out, "Canceled.")
			return nil
		}

		client, err := charm.InitClient()
		if err != nil {
			return fmt.Errorf("failed to open charm: %w", err)
		}
		defer client.Close()
		if err := client.Reset(); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		green.Fprintln(out, "✓ Local data reset and restored from cloud")
		return nil
	},
}

var syncWipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete all cloud and local data",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "This will PERMANENTLY DELETE all cloud backups and the local history.")
		if !confirm(cmd.InOrStdin(), out, "Type 'wipe' to confirm: ", "wipe") {
			fmt.Fprintln(out, "Canceled.")
			return nil
		}

		result, err := kv.Wipe(charm.DBName)
		if err != nil {
			return fmt.Errorf("wipe failed: %w", err)
		}
		green.Fprintln(out, "✓ Data wiped successfully")
		fmt.Fprintf(out, "  Cloud backups deleted: %d\n", result.CloudBackupsDeleted)
		fmt.Fprintf(out, "  Local files deleted: %d\n", result.LocalFilesDeleted)
		return nil
	},
}

// runCharmCLI hands the terminal to the charm binary.
func runCharmCLI(cmd *cobra.Command, arg string) error {
	c := exec.Command("charm", arg)
	c.Stdin = os.Stdin
	c.Stdout = cmd.OutOrStdout()
	c.Stderr = cmd.ErrOrStderr()
	return c.Run()
}

func init() {
	syncRepairCmd.Flags().BoolVar(&syncRepairForce, "force", false, "attempt recovery even if integrity checks fail")

	syncCmd.AddCommand(syncLinkCmd, syncUnlinkCmd, syncStatusCmd, syncNowCmd,
		syncRepairCmd, syncResetCmd, syncWipeCmd)
	rootCmd.AddCommand(syncCmd)
}
