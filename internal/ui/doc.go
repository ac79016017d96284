// Package ui provides terminal output components for the wificard CLI.
//
// These components use Lipgloss to render polished, non-interactive output
// for the scripting commands (print, export, validate). The interactive form
// lives in internal/wizard/tui.
//
// # Components
//
//   - Header: command banner showing the operation and its parameters
//   - Result: success, failure or warning boxes with ordered details
//   - Confirm: a yes/no prompt, used before overwriting exported images
//   - Printer: writes the above to an io.Writer at a fixed width
//
// Example:
//
//	p := ui.NewPrinter(cmd.OutOrStdout())
//	p.PrintHeader("Export", "wificard export",
//	    ui.Param{Key: "Network", Value: s.Summary()},
//	)
//	p.PrintSuccess("Image saved", ui.Param{Key: "Path", Value: path})
//
// # Logging Integration
//
// Logging is controlled via WIFICARD_LOG_LEVEL and goes to stderr, so it
// never interleaves with the boxes rendered here.
package ui
