package config

import (
	"github.com/jackie264/wificard/internal/i18n"
	"github.com/jackie264/wificard/internal/qr"
	"github.com/jackie264/wificard/internal/wifi"
)

// PresetVersion is the only preset file version understood.
const PresetVersion = 1

// Preset is the YAML preset file. Every field is optional; absent fields
// keep their defaults.
//
//	version: 1
//	language: fr-FR
//	output_dir: ./cards
//	card:
//	  ssid: Home
//	  encryption_mode: WPA
//	  hide_tip: true
type Preset struct {
	Version   int            `yaml:"version"`
	Language  string         `yaml:"language,omitempty"`   // Card and form language (e.g., "de-DE")
	OutputDir string         `yaml:"output_dir,omitempty"` // Where exported images go
	ImageSize int            `yaml:"image_size,omitempty"` // Exported image edge length in pixels
	Card      *wifi.Settings `yaml:"card,omitempty"`       // Initial card settings
}

// Config is the resolved run configuration.
// It is read-only once loaded; nothing is ever written back.
type Config struct {
	Settings   wifi.Settings // Initial card settings
	Language   string        // Resolved language ID
	OutputDir  string        // Export directory
	ImageSize  int           // Export image size in pixels
	LogLevel   string        // zap level name, empty means silent
	PresetPath string        // Preset file that was applied, empty if none
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() *Config {
	return &Config{
		Settings:  wifi.DefaultSettings(),
		Language:  i18n.DefaultLanguage,
		OutputDir: ".",
		ImageSize: qr.DefaultSize,
	}
}
