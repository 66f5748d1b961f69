// ABOUTME: Root Cobra command for medcalc CLI.
// ABOUTME: Loads config and opens the history store via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/harperreed/medcalc/internal/config"
	"github.com/harperreed/medcalc/internal/storage"
	"github.com/spf13/cobra"
)

// skipStorage marks commands that run without opening the history store.
const skipStorage = "skip-storage"

var (
	cfg     *config.Config
	kvStore storage.KV
	history *storage.History
	logger  *log.Logger

	backendFlag string
	dataDirFlag string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "medcalc",
	Short: "Health calculators with a local history",
	Long: `Medcalc computes everyday health metrics and keeps the last 100 results.

CALCULATORS:

  bmi           body-mass index from height (cm) and weight (kg)
  calories      basal metabolic rate and daily needs (Mifflin-St Jeor)
  pressure      blood-pressure category from systolic/diastolic
  sugar         blood-glucose category (fasting or after a meal)
  cholesterol   lipid panel narrative (total, optional LDL/HDL)
  dosage        pediatric single dose by weight (not saved)

QUICK START:

  $ medcalc bmi 175 70                     # BMI 22.9 (Normal)
  $ medcalc calories 70 175 30 --sex male  # BMR and activity tiers
  $ medcalc pressure 125 78                # Elevated
  $ medcalc sugar 6.1 --context fasting    # Prediabetes
  $ medcalc cholesterol 5.5 --ldl 3 --hdl 1.2
  $ medcalc dosage 15 paracetamol          # 150 mg
  $ medcalc history                        # Recent calculations
  $ medcalc chart bmi                      # Trend of the last 10 BMI results

STORAGE:

  Results are kept newest first; the oldest is dropped after 100.
  Backends: sqlite (default), badger, or charm (synced via Charm Cloud).

  $ medcalc config set backend badger
  $ medcalc --data-dir /tmp/medcalc history

MCP INTEGRATION:

  Run 'medcalc mcp' to start the Model Context Protocol server:

  {
    "mcpServers": {
      "medcalc": { "command": "medcalc", "args": ["mcp"] }
    }
  }`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := log.WarnLevel
		if verbose {
			level = log.DebugLevel
		}
		logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
			Level:  level,
			Prefix: "medcalc",
		})

		// Skip storage for commands that don't need it
		if !needsStorage(cmd) {
			return nil
		}

		var err error
		cfg, err = loadConfig()
		if err != nil {
			return err
		}

		kvStore, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		history = storage.OpenHistory(kvStore, storage.WithLogger(logger))
		logger.Debug("history loaded", "backend", cfg.GetBackend(), "records", history.Len())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStorage()
	},
}

// closeStorage releases the backend. It is also registered as a finalizer
// so failed commands release it too.
func closeStorage() error {
	history = nil
	if kvStore != nil {
		err := kvStore.Close()
		kvStore = nil
		return err
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	c, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if backendFlag != "" {
		c.Backend = backendFlag
	}
	if dataDirFlag != "" {
		c.DataDir = dataDirFlag
	}
	return c, nil
}

func needsStorage(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "version", "completion":
		return false
	}
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipStorage] == "true" {
			return false
		}
	}
	return true
}

func init() {
	cobra.OnFinalize(func() { _ = closeStorage() })

	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "storage backend: sqlite, badger, or charm")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "data directory (default ~/.local/share/medcalc)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
}
