package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jackie264/wificard/internal/config"
	"github.com/jackie264/wificard/internal/logging"
	"github.com/jackie264/wificard/internal/wifi"
)

// Card and configuration flags, shared by every command
var (
	networkSSID     string
	networkPassword string
	encryptionMode  string
	eapMethod       string
	eapIdentity     string
	hidePassword    bool
	hiddenSSID      bool
	portrait        bool
	additionalCards int
	hideTip         bool
	svgImage        bool

	language   string
	presetPath string
	outputDir  string
	imageSize  int
	logLevel   string
)

func init() {
	flags := rootCmd.PersistentFlags()

	flags.StringVar(&networkSSID, "ssid", "", "Network name")
	flags.StringVar(&networkPassword, "password", "", "Network password")
	flags.StringVarP(&encryptionMode, "encryption", "e", "", "Encryption mode (WPA, WEP, WPA2-EAP, None)")
	flags.StringVar(&eapMethod, "eap-method", "", "EAP method for WPA2-EAP (PWD)")
	flags.StringVar(&eapIdentity, "eap-identity", "", "EAP identity (username) for WPA2-EAP")
	flags.BoolVar(&hidePassword, "hide-password", false, "Leave the password off the printed card")
	flags.BoolVar(&hiddenSSID, "hidden-ssid", false, "Mark the network as hidden")
	flags.BoolVar(&portrait, "portrait", false, "Stack the QR code above the login details")
	flags.IntVar(&additionalCards, "additional-cards", 0, "Extra copies on the print sheet")
	flags.BoolVar(&hideTip, "hide-tip", false, "Hide the scanning tip")
	flags.BoolVar(&svgImage, "svg", true, "Save images as SVG instead of PNG")

	flags.StringVarP(&language, "lang", "l", "", "Card language (e.g. en-US, de-DE, ar)")
	flags.StringVar(&presetPath, "config", "", "Preset file (default: <config dir>/wificard/preset.yaml)")
	flags.StringVarP(&outputDir, "output", "o", "", "Directory for exported images")
	flags.IntVar(&imageSize, "size", 0, "Exported image size in pixels")
	flags.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); logs go to stderr")
}

// loadConfig resolves the run configuration: defaults, preset, environment,
// then any flag the user actually set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(presetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}

	if cfg.LogLevel != "" {
		if err := logging.Initialize(cfg.LogLevel); err != nil {
			return nil, err
		}
	}

	logging.Debug("Configuration loaded",
		zap.String("preset", cfg.PresetPath),
		zap.String("language", cfg.Language),
		zap.String("output_dir", cfg.OutputDir),
		zap.Int("image_size", cfg.ImageSize),
	)
	return cfg, nil
}

// applyFlags overrides cfg with the flags that were set on the command line.
// Unset flags never override the preset.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	s := &cfg.Settings

	if flags.Changed("ssid") {
		s.SSID = networkSSID
	}
	if flags.Changed("password") {
		s.Password = networkPassword
	}
	if flags.Changed("encryption") {
		s.EncryptionMode = wifi.EncryptionMode(encryptionMode)
	}
	if flags.Changed("eap-method") {
		s.EAPMethod = wifi.EAPMethod(eapMethod)
	}
	if flags.Changed("eap-identity") {
		s.EAPIdentity = eapIdentity
	}
	if flags.Changed("hide-password") {
		s.HidePassword = hidePassword
	}
	if flags.Changed("hidden-ssid") {
		s.HiddenSSID = hiddenSSID
	}
	if flags.Changed("portrait") {
		s.Portrait = portrait
	}
	if flags.Changed("additional-cards") {
		if additionalCards < 0 {
			return wifi.NewInputError(fmt.Sprintf("--additional-cards must not be negative, got %d", additionalCards))
		}
		s.AdditionalCards = additionalCards
	}
	if flags.Changed("hide-tip") {
		s.HideTip = hideTip
	}
	if flags.Changed("svg") {
		s.SVGImage = svgImage
	}

	if flags.Changed("lang") {
		cfg.Language = language
	}
	if flags.Changed("output") {
		cfg.OutputDir = outputDir
	}
	if flags.Changed("size") {
		if imageSize <= 0 {
			return wifi.NewInputError(fmt.Sprintf("--size must be positive, got %d", imageSize))
		}
		cfg.ImageSize = imageSize
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	return cfg.Normalize()
}
