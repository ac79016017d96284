// Wificard prints WiFi login cards.
//
// A card carries a QR code that phones scan to join the network, plus the
// network name, password (or EAP identity) written out for people. Cards are
// edited in an interactive terminal form, or built directly from flags for
// scripting: encode the QR payload, validate settings, print a sheet of
// cards, or export the QR code as SVG or PNG.
//
// Usage:
//
//	wificard [command] [flags]
//
// Running without arguments launches the interactive form.
// See 'wificard --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackie264/wificard/internal/logging"
	"github.com/jackie264/wificard/internal/version"
)

func main() {
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logging.Sync()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wificard",
	Short: "WiFi login card printer",
	Long: `Print a simple card with your WiFi login details. Tape it to the fridge,
keep it in your wallet, etc.

The card shows a QR code that phones scan to join the network, and the
network name and password written out. Your WiFi information never leaves
this machine.

If no command is specified, the interactive form will launch automatically.`,
	Version: version.Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Silent unless WIFICARD_LOG_LEVEL is set; --log-level and .env are
		// applied once the configuration is loaded
		_ = logging.InitializeFromEnv()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run wizard when no subcommand provided
		return runWizard(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	// main prints the error once
	rootCmd.SilenceErrors = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "wificard %s\n", version.Full())
	},
}
