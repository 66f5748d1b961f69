// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/medcalc/internal/mcp"
	"github.com/harperreed/medcalc/internal/series"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to run the calculators and read your
history through a standardized protocol. The server communicates via
stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "medcalc": {
        "command": "medcalc",
        "args": ["mcp"]
      }
    }
  }

  On macOS, the config is at:
    ~/Library/Application Support/Claude/claude_desktop_config.json

AVAILABLE TOOLS:

  calculate_bmi          Body-mass index (saved)
  calculate_calories     BMR and daily needs (saved)
  classify_pressure      Blood-pressure category (saved)
  classify_sugar         Blood-glucose category (saved)
  classify_cholesterol   Lipid panel narrative (saved)
  calculate_dosage       Pediatric dose lookup (not saved)
  list_history           Saved calculations, newest first
  clear_history          Delete every saved calculation
  get_series             Recent chart series for one kind

AVAILABLE RESOURCES:

  medcalc://history      Full history in export format
  medcalc://charts       Recent series for every chart`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ex := series.NewExtractor(history, series.WithLocale(cfg.GetLocale()))
		server, err := mcp.NewServer(history,
			mcp.WithLogger(logger),
			mcp.WithExtractor(ex),
			mcp.WithWindow(cfg.GetChartWindow()),
		)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
