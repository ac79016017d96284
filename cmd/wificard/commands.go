package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jackie264/wificard/internal/card"
	"github.com/jackie264/wificard/internal/config"
	"github.com/jackie264/wificard/internal/i18n"
	"github.com/jackie264/wificard/internal/logging"
	"github.com/jackie264/wificard/internal/qr"
	"github.com/jackie264/wificard/internal/ui"
	"github.com/jackie264/wificard/internal/wifi"
	"github.com/jackie264/wificard/internal/wizard/tui"
)

// Command-specific flags
var (
	showQR         bool
	exportFormat   string
	exportAll      bool
	force          bool
	outputFormat   string
	revealPassword bool
)

func init() {
	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(languagesCmd)
}

// wizardCmd launches the interactive form
var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Edit a card interactively",
	Long: `Launch the interactive card editor.

The form shows a live preview of the card and its QR code. Printing checks
the settings first and shows any problem next to the field; a valid card
opens the print sheet, which is written to stdout when you confirm.

This is the default command.`,
	Example: `  # Start with an empty card
  wificard

  # Start from flags
  wificard wizard --ssid Home --encryption WPA

  # Start in German
  wificard --lang de-DE`,
	RunE: runWizard,
}

func runWizard(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	if !ui.IsTerminal() {
		return errors.New("the interactive form needs a terminal; use encode, print or export for scripting")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	app := tui.NewAppModel(tui.Options{
		Settings: cfg.Settings,
		Lang:     cfg.Language,
		Exporter: qr.NewExporter(cfg.OutputDir, cfg.ImageSize),
	})

	final, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("wizard error: %w", err)
	}

	result, ok := final.(tui.AppModel)
	if !ok {
		return nil
	}
	if _, printed := result.PrintJob(); printed {
		fmt.Fprint(cmd.OutOrStdout(), result.Sheet())
	}
	return nil
}

// encodeCmd prints the QR payload
var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Print the QR code payload",
	Long: `Print the WIFI: payload that the card's QR code encodes.

The payload is built from whatever is set, without validation, exactly like
the live preview in the form.`,
	Example: `  wificard encode --ssid Home --password 'secret;123'
  wificard encode --ssid Cafe --encryption None --qr`,
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().BoolVar(&showQR, "qr", false, "Also draw the QR code in the terminal")
}

func runEncode(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	s := cfg.Settings
	payload := wifi.Encode(s)
	logging.LogPayloadBuilt(s.SSID, string(s.EncryptionMode), utf8.RuneCountInString(s.Password), len(payload))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, payload)

	if showQR {
		code, err := qr.New(payload)
		if err != nil {
			return fmt.Errorf("failed to build QR code: %w", err)
		}
		fmt.Fprintln(out)
		fmt.Fprint(out, code.Terminal())
	}
	return nil
}

// validateCmd runs the print checks without printing
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that a card can be printed",
	Long: `Run the same checks the print button runs:

  - the network name must not be empty
  - WPA passwords need at least 8 characters, WEP at least 5
  - WPA2-EAP needs an identity and a password

Exits non-zero when a check fails.`,
	Example: `  wificard validate --ssid Home --password short
  wificard validate --config office.yaml`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	s := cfg.Settings

	if err := checkPrintable(p, cfg, s); err != nil {
		return err
	}

	p.PrintSuccess("Ready to print",
		ui.Param{Key: "Network", Value: s.Summary()},
		ui.Param{Key: "Copies", Value: strconv.Itoa(s.Copies())},
	)
	return nil
}

// printCmd renders the print sheet
var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print a sheet of cards",
	Long: `Validate the card and write the print sheet to stdout: the document title
followed by the card repeated once plus --additional-cards times.`,
	Example: `  wificard print --ssid Home --password secret123 --additional-cards 3
  wificard print --ssid Corp --encryption WPA2-EAP --eap-identity alice --password x --lang fr-FR`,
	RunE: runPrint,
}

func runPrint(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	editor := wifi.NewEditor(cfg.Settings)

	job, ok := editor.Print()
	if !ok {
		if err := checkPrintable(p, cfg, editor.Settings()); err != nil {
			return err
		}
		return errors.New("card failed validation")
	}
	logging.LogPrint(job.Title, job.Copies)

	sheet, err := card.RenderSheet(job, cfg.Language, nil)
	if err != nil {
		return fmt.Errorf("failed to render print sheet: %w", err)
	}
	p.Print(sheet)
	return nil
}

// checkPrintable reports the first failing print check as a failure box and
// returns it
func checkPrintable(p *ui.Printer, cfg *config.Config, s wifi.Settings) error {
	verr := wifi.ValidateErr(s)
	if verr == nil {
		logging.LogValidation("", "")
		return nil
	}
	logging.LogValidation(string(verr.Field), string(verr.MessageKey))

	message := i18n.Default().Lookup(cfg.Language, string(verr.MessageKey))
	p.PrintError("Validation failed", errors.New(message), wifi.GetTroubleshootingHint(verr))
	return verr
}

// exportCmd saves the QR code as an image
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Save the QR code as an image",
	Long: `Save the card's QR code as SVG or PNG.

The file is named after the network (wifi-qrcode when there is no name) and
written to --output. The format follows --svg unless --format or --all is
given. Existing files are only replaced after confirmation, or with --force.`,
	Example: `  wificard export --ssid Home --password secret123
  wificard export --ssid Home --password secret123 --format png --size 600
  wificard export --ssid Home --password secret123 --all -o ./cards`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Image format (svg, png)")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Export every format")
	exportCmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files without asking")
}

func runExport(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	formats, err := exportFormats(cfg.Settings.SVGImage, exportFormat, exportAll)
	if err != nil {
		return err
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	s := cfg.Settings

	p.PrintHeader("Export QR Code", "wificard export",
		ui.Param{Key: "Network", Value: s.Summary()},
		ui.Param{Key: "Formats", Value: joinFormats(formats)},
		ui.Param{Key: "Size", Value: fmt.Sprintf("%dpx", cfg.ImageSize)},
		ui.Param{Key: "Directory", Value: cfg.OutputDir},
	)

	if !force {
		for _, f := range formats {
			path := filepath.Join(cfg.OutputDir, qr.FileName(s.SSID, f))
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if !ui.ConfirmOverwrite(cmd.InOrStdin(), cmd.OutOrStdout(), path) {
				return nil
			}
		}
	}

	exporter := qr.NewExporter(cfg.OutputDir, cfg.ImageSize)
	paths, err := exporter.ExportAll(cmd.Context(), wifi.Encode(s), s.SSID, formats)
	if err != nil {
		p.PrintError("Export failed", err,
			fmt.Sprintf("Check that %s is writable", cfg.OutputDir),
			"Choose another directory with --output",
		)
		return fmt.Errorf("export failed: %w", err)
	}

	details := make([]ui.Param, 0, len(paths))
	for i, path := range paths {
		details = append(details, ui.Param{Key: strings.ToUpper(string(formats[i])), Value: path})
	}
	p.PrintSuccess("Image saved", details...)
	return nil
}

// exportFormats picks the formats to write: all of them, the one named by
// --format, or the card's SVG preference
func exportFormats(svg bool, name string, all bool) ([]qr.Format, error) {
	if all {
		return qr.Formats, nil
	}
	if name != "" {
		f, err := qr.ParseFormat(name)
		if err != nil {
			return nil, wifi.NewInputError(err.Error())
		}
		return []qr.Format{f}, nil
	}
	return []qr.Format{qr.FormatFor(svg)}, nil
}

func joinFormats(formats []qr.Format) string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = strings.ToUpper(string(f))
	}
	return strings.Join(names, ", ")
}

// parseCmd reads a payload back
var parseCmd = &cobra.Command{
	Use:   "parse <payload|->",
	Short: "Decode a WIFI: payload",
	Long: `Decode a WIFI: payload the way a phone's scanner reads it.

Pass the payload as an argument, or "-" to read it from stdin.`,
	Example: `  wificard parse 'WIFI:S:Home;T:WPA;P:secret123;;'
  wificard encode --ssid Home --password secret123 | wificard parse - --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, json)")
	parseCmd.Flags().BoolVar(&revealPassword, "reveal", false, "Show the password instead of asterisks")
}

func runParse(cmd *cobra.Command, args []string) error {
	raw, err := readPayloadArg(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	parsed, err := wifi.Parse(raw)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	s := parsed.Settings()
	out := cmd.OutOrStdout()

	switch outputFormat {
	case "compact":
		fmt.Fprintln(out, s.Summary())
	case "json":
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "detailed":
		fallthrough
	default:
		fmt.Fprint(out, s.FormatNetwork(revealPassword))
		for _, k := range slices.Sorted(maps.Keys(parsed.Unknown)) {
			fmt.Fprintf(out, "Unknown %s:   %s\n", k, parsed.Unknown[k])
		}
	}
	return nil
}

// readPayloadArg returns arg, or stdin's first line when arg is "-"
func readPayloadArg(arg string, in io.Reader) (string, error) {
	if arg != "-" {
		return arg, nil
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read payload from stdin: %w", err)
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimRight(line, "\r"), nil
}

// showCmd displays the effective settings
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective card settings",
	Long: `Display the settings a command would use after applying the preset file,
environment variables and flags.`,
	Example: `  wificard show
  wificard show --config office.yaml --reveal`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&revealPassword, "reveal", false, "Show the password instead of asterisks")
}

func runShow(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	preset := cfg.PresetPath
	if preset == "" {
		preset = "(none)"
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader("Card Settings", "wificard show",
		ui.Param{Key: "Preset", Value: preset},
		ui.Param{Key: "Language", Value: i18n.TranslationFor(cfg.Language).Name},
		ui.Param{Key: "Output", Value: cfg.OutputDir},
		ui.Param{Key: "Image size", Value: fmt.Sprintf("%dpx", cfg.ImageSize)},
	)
	p.Print(cfg.Settings.FormatDetailed(revealPassword))
	return nil
}

// languagesCmd lists the bundled translations
var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List card languages",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, t := range i18n.Translations {
			marker := " "
			if t.ID == cfg.Language {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %-6s %-3s %s\n", marker, t.ID, i18n.Direction(t.ID), t.Name)
		}
		return nil
	},
}
