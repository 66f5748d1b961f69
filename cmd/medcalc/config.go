// ABOUTME: CLI commands for viewing and changing medcalc configuration.
// ABOUTME: Reads and writes ~/.config/medcalc/config.json.
package main

import (
	"fmt"

	"github.com/harperreed/medcalc/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:         "config",
	Short:       "Show or change configuration",
	Annotations: map[string]string{skipStorage: "true"},
	Long: `Show or change medcalc configuration.

KEYS:

  backend        sqlite (default), badger, or charm
  data_dir       data directory (default ~/.local/share/medcalc)
  locale         chart label locale, e.g. ru-RU (default), en-US, de-DE
  chart_window   results per chart (default 10)

EXAMPLES:

  medcalc config show
  medcalc config set backend badger
  medcalc config set locale en-US
  medcalc config path`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, key := range config.Keys {
			v, err := c.Get(key)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s\n", padRight(key, 14), v)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := c.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := c.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		green.Fprintf(cmd.OutOrStdout(), "✓ %s = %s\n", args[0], args[1])
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigPath())
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}
