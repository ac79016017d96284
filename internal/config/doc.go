// Package config resolves the run configuration for wificard.
//
// Configuration comes from, in increasing priority:
//
//  1. Built-in defaults (WPA, SVG images, en-US, current directory)
//  2. A YAML preset file: --config, WIFICARD_CONFIG, or preset.yaml in the
//     config directory
//  3. Environment variables, optionally from a .env file
//  4. Command-line flags, applied by cmd/wificard
//
// # Config Directory
//
//   - Linux: $XDG_CONFIG_HOME/wificard or ~/.config/wificard
//   - macOS: ~/.config/wificard
//   - Windows: %LOCALAPPDATA%\wificard
//
// # Preset Format
//
//	version: 1
//	language: de-DE
//	output_dir: ./cards
//	image_size: 300
//	card:
//	  ssid: "Guest"
//	  encryption_mode: WPA
//	  password: "correct horse"
//	  hide_tip: true
//
// Presets are only ever read. Keep the file private if it holds a password.
package config
