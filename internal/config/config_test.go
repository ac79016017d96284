package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/jackie264/wificard/internal/wifi"
)

// isolate points every source Load reads at an empty temp location
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	for _, key := range []string{EnvConfig, EnvLang, EnvOutputDir, EnvImageSize, EnvLogLevel} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "wificard") {
		t.Errorf("GetConfigDir() = %v, should contain 'wificard'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("macOS config dir should contain '.config', got: %v", configDir)
		}
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetPresetPath(t *testing.T) {
	presetPath, err := GetPresetPath()
	if err != nil {
		t.Fatalf("GetPresetPath() error = %v", err)
	}

	if filepath.Base(presetPath) != "preset.yaml" {
		t.Errorf("GetPresetPath() should end with 'preset.yaml', got: %v", presetPath)
	}
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Settings.EncryptionMode != wifi.EncryptionWPA {
		t.Errorf("EncryptionMode = %v, want WPA", cfg.Settings.EncryptionMode)
	}
	if !cfg.Settings.SVGImage {
		t.Error("SVGImage should default to true")
	}
	if cfg.Language != "en-US" {
		t.Errorf("Language = %v, want en-US", cfg.Language)
	}
	if cfg.OutputDir != "." {
		t.Errorf("OutputDir = %v, want .", cfg.OutputDir)
	}
}

func TestLoadWithoutSources(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.PresetPath != "" {
		t.Errorf("PresetPath = %q, want empty", cfg.PresetPath)
	}
	if cfg.Settings != wifi.DefaultSettings() {
		t.Errorf("Settings = %+v, want defaults", cfg.Settings)
	}
}

func TestLoadPresetFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "guest.yaml")
	writeFile(t, path, `version: 1
language: de
output_dir: cards
image_size: 300
card:
  ssid: "Guest;Net"
  password: "correct horse"
  encryption_mode: wpa2
  hide_tip: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.PresetPath != path {
		t.Errorf("PresetPath = %q, want %q", cfg.PresetPath, path)
	}
	if cfg.Settings.SSID != "Guest;Net" {
		t.Errorf("SSID = %q", cfg.Settings.SSID)
	}
	if cfg.Settings.EncryptionMode != wifi.EncryptionWPA {
		t.Errorf("EncryptionMode = %q, want WPA", cfg.Settings.EncryptionMode)
	}
	if !cfg.Settings.HideTip {
		t.Error("HideTip should be true")
	}
	if !cfg.Settings.SVGImage {
		t.Error("SVGImage should keep its default when absent from the preset")
	}
	if cfg.Language != "de-DE" {
		t.Errorf("Language = %q, want de-DE", cfg.Language)
	}
	if cfg.OutputDir != "cards" || cfg.ImageSize != 300 {
		t.Errorf("OutputDir = %q, ImageSize = %d", cfg.OutputDir, cfg.ImageSize)
	}
}

func TestLoadDefaultPresetLocation(t *testing.T) {
	dir := isolate(t)
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux")
	}
	writeFile(t, filepath.Join(dir, "xdg", "wificard", "preset.yaml"), "version: 1\ncard:\n  ssid: Office\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Settings.SSID != "Office" {
		t.Errorf("SSID = %q, want Office", cfg.Settings.SSID)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		preset string
	}{
		{"Wrong version", "version: 2\n"},
		{"Missing version", "language: fr-FR\n"},
		{"Malformed YAML", "version: [1\n"},
		{"Unknown encryption", "version: 1\ncard:\n  encryption_mode: rot13\n"},
		{"Unknown EAP method", "version: 1\ncard:\n  eap_method: TLS\n"},
		{"SSID too long", "version: 1\ncard:\n  ssid: \"" + strings.Repeat("x", 33) + "\"\n"},
		{"Negative image size", "version: 1\nimage_size: -5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			path := filepath.Join(dir, "preset.yaml")
			writeFile(t, path, tt.preset)

			if _, err := Load(path); err == nil {
				t.Error("Load() expected error")
			}
		})
	}
}

func TestLoadMissingExplicitPreset(t *testing.T) {
	dir := isolate(t)

	if _, err := Load(filepath.Join(dir, "nope.yaml")); err == nil {
		t.Error("Load() should fail for a named preset that does not exist")
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "preset.yaml")
	writeFile(t, path, "version: 1\nlanguage: fr-FR\noutput_dir: from-preset\n")

	t.Setenv(EnvConfig, path)
	t.Setenv(EnvOutputDir, "from-env")
	t.Setenv(EnvImageSize, "512")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Language != "fr-FR" {
		t.Errorf("Language = %q, want fr-FR from preset", cfg.Language)
	}
	if cfg.OutputDir != "from-env" {
		t.Errorf("OutputDir = %q, want from-env", cfg.OutputDir)
	}
	if cfg.ImageSize != 512 {
		t.Errorf("ImageSize = %d, want 512", cfg.ImageSize)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "WIFICARD_LANG=he-IL\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Language != "he-IL" {
		t.Errorf("Language = %q, want he-IL from .env", cfg.Language)
	}
}

func TestLoadInvalidImageSizeEnv(t *testing.T) {
	isolate(t)
	t.Setenv(EnvImageSize, "huge")

	if _, err := Load(""); err == nil {
		t.Error("Load() should reject a non-numeric image size")
	}
}

func TestNormalizeOpenNetworkDropsPassword(t *testing.T) {
	cfg := Defaults()
	cfg.Settings.EncryptionMode = "open"
	cfg.Settings.Password = "leftover"

	if err := cfg.Normalize(); err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if cfg.Settings.EncryptionMode != wifi.EncryptionNone {
		t.Errorf("EncryptionMode = %q, want None", cfg.Settings.EncryptionMode)
	}
	if cfg.Settings.Password != "" {
		t.Errorf("Password = %q, want empty", cfg.Settings.Password)
	}
}
