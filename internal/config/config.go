package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/jackie264/wificard/internal/i18n"
	"github.com/jackie264/wificard/internal/logging"
	"github.com/jackie264/wificard/internal/wifi"
)

// Environment variables read by Load
const (
	EnvConfig    = "WIFICARD_CONFIG"
	EnvLang      = "WIFICARD_LANG"
	EnvOutputDir = "WIFICARD_OUTPUT_DIR"
	EnvImageSize = "WIFICARD_IMAGE_SIZE"
	EnvLogLevel  = logging.LogLevelEnvVar
)

// Load builds the run configuration. Sources are applied in order, later ones
// winning: defaults, the preset file, then environment variables (a .env file
// in the working directory is loaded first if present). Command-line flags
// are applied on top by the caller.
//
// presetPath selects the preset file; when empty WIFICARD_CONFIG is used, and
// failing that the default preset location if a file exists there. An
// explicitly named preset that does not exist is an error.
func Load(presetPath string) (*Config, error) {
	// Load .env file if it exists (don't error if missing)
	_ = godotenv.Load()

	cfg := Defaults()

	explicit := true
	if presetPath == "" {
		presetPath = getEnv(EnvConfig, "")
	}
	if presetPath == "" {
		explicit = false
		if p, err := GetPresetPath(); err == nil {
			presetPath = p
		}
	}

	if presetPath != "" {
		if err := cfg.applyPresetFile(presetPath, explicit); err != nil {
			return nil, err
		}
	}

	cfg.Language = getEnv(EnvLang, cfg.Language)
	cfg.OutputDir = getEnv(EnvOutputDir, cfg.OutputDir)
	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)
	if v := getEnv(EnvImageSize, ""); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size <= 0 {
			return nil, fmt.Errorf("%s must be a positive integer, got %q", EnvImageSize, v)
		}
		cfg.ImageSize = size
	}

	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyPresetFile(path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read preset file: %w", err)
	}

	if err := c.ApplyPreset(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	c.PresetPath = path

	logging.Info("Preset loaded", zap.String("path", path))
	return nil
}

// ApplyPreset merges a YAML preset document into c.
func (c *Config) ApplyPreset(data []byte) error {
	// Decode the card over the current settings so absent keys keep them
	card := c.Settings
	preset := Preset{Card: &card}

	if err := yaml.Unmarshal(data, &preset); err != nil {
		return fmt.Errorf("failed to parse preset: %w", err)
	}
	if preset.Version != PresetVersion {
		return fmt.Errorf("unsupported preset version: %d (expected %d)", preset.Version, PresetVersion)
	}

	if preset.Card != nil {
		c.Settings = *preset.Card
	}
	if preset.Language != "" {
		c.Language = preset.Language
	}
	if preset.OutputDir != "" {
		c.OutputDir = preset.OutputDir
	}
	if preset.ImageSize < 0 {
		return fmt.Errorf("image_size must be positive, got %d", preset.ImageSize)
	}
	if preset.ImageSize > 0 {
		c.ImageSize = preset.ImageSize
	}
	return nil
}

// Normalize canonicalizes the encryption mode, EAP method and language, and
// enforces the form's input limits.
func (c *Config) Normalize() error {
	if c.Settings.EncryptionMode != "" {
		mode, err := wifi.ParseEncryptionMode(string(c.Settings.EncryptionMode))
		if err != nil {
			return err
		}
		c.Settings.EncryptionMode = mode
	}
	if c.Settings.EAPMethod != "" {
		method, err := wifi.ParseEAPMethod(string(c.Settings.EAPMethod))
		if err != nil {
			return err
		}
		c.Settings.EAPMethod = method
	}
	if c.Settings.EncryptionMode == wifi.EncryptionNone {
		c.Settings.Password = ""
	}
	if err := c.Settings.CheckLimits(); err != nil {
		return err
	}

	resolved := i18n.Resolve(c.Language)
	if !strings.EqualFold(resolved, c.Language) {
		logging.Warn("Language not bundled, using closest match",
			zap.String("requested", c.Language),
			zap.String("using", resolved),
		)
	}
	c.Language = resolved
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
