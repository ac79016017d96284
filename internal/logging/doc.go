// Package logging provides structured logging for wificard.
//
// This package wraps a global zap logger with convenience functions for the
// few events worth recording: payloads being built, the print gate, print
// runs and image exports.
//
// # Log Levels
//
//   - Debug: payload rebuilds (one per edit)
//   - Info: validation outcomes, print runs, exports
//   - Warn: recoverable problems (unreadable preset, unknown language)
//   - Error: failed exports
//
// # Secrets
//
// Passwords never reach the log. The helpers take lengths instead:
//
//	logging.LogPayloadBuilt(s.SSID, string(s.EncryptionMode), len(s.Password), len(payload))
//
// # Configuration
//
// Logging is silent unless a level is given, either through --log-level or
// the WIFICARD_LOG_LEVEL environment variable:
//
//	if err := logging.Initialize(level); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Output Format
//
// Logs go to stderr in console format so stdout stays clean for payloads
// and JSON output:
//
//	2026-03-02T10:30:45.123Z  INFO  Image exported  {"path": "Home.svg", "format": "svg", "bytes": 1843}
package logging
