package card

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jackie264/wificard/internal/i18n"
	"github.com/jackie264/wificard/internal/qr"
	"github.com/jackie264/wificard/internal/wifi"
)

// Options controls how a card is drawn.
type Options struct {
	Lang      string         // Language for labels and messages
	Localizer wifi.Localizer // Message source, i18n.Default() when nil
	Errors    wifi.FieldErrors
	// ShowErrors draws Errors under their fields. Printed copies never show
	// errors.
	ShowErrors bool
}

func (o Options) localizer() wifi.Localizer {
	if o.Localizer == nil {
		return i18n.Default()
	}
	return o.Localizer
}

// Row is one labelled line on the card.
type Row struct {
	Field wifi.Field // Empty for rows that cannot carry an error
	Key   string     // Message key of the label
	Value string
}

// Rows returns the labelled rows a card shows for s, in display order. The
// EAP rows only appear for WPA2-EAP; the password row is dropped when the
// password is hidden or the network is open.
func Rows(s wifi.Settings) []Row {
	rows := []Row{{Field: wifi.FieldSSID, Key: "wifi.name", Value: s.SSID}}

	if s.IsEnterprise() {
		rows = append(rows,
			Row{Key: "wifi.encryption.eapMethod", Value: string(s.EAPMethod)},
			Row{Field: wifi.FieldEAPIdentity, Key: "wifi.identity", Value: s.EAPIdentity},
		)
	}
	if s.ShowsPassword() {
		rows = append(rows, Row{Field: wifi.FieldPassword, Key: "wifi.password", Value: s.Password})
	}
	return rows
}

// Render draws one card for s.
func Render(s wifi.Settings, opts Options) (string, error) {
	code, err := qr.New(wifi.Encode(s))
	if err != nil {
		return "", fmt.Errorf("failed to render card QR code: %w", err)
	}

	loc := opts.localizer()
	rtl := i18n.Direction(opts.Lang) == i18n.RTL
	align := lipgloss.Left
	if rtl {
		align = lipgloss.Right
	}

	title := TitleStyle.Render(loc.Lookup(opts.Lang, "wifi.login"))
	qrBlock := QRStyle.Render(code.Terminal())
	fields := renderFields(s, opts, loc, align)

	var body string
	switch {
	case s.Portrait:
		body = lipgloss.JoinVertical(lipgloss.Center, qrBlock, "", fields)
	case rtl:
		body = lipgloss.JoinHorizontal(lipgloss.Top, fields, "  ", qrBlock)
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top, qrBlock, "  ", fields)
	}

	parts := []string{title, "", body}
	if !s.HideTip {
		tipWidth := lipgloss.Width(body)
		parts = append(parts, "", TipStyle.Width(tipWidth).Align(align).Render(loc.Lookup(opts.Lang, "wifi.tip")))
	}

	content := lipgloss.JoinVertical(align, parts...)
	return CardStyle.Render(content), nil
}

func renderFields(s wifi.Settings, opts Options, loc wifi.Localizer, align lipgloss.Position) string {
	var lines []string
	for _, row := range Rows(s) {
		lines = append(lines, LabelStyle.Render(loc.Lookup(opts.Lang, row.Key)))
		lines = append(lines, ValueStyle.Render(valueOrBlank(row.Value)))

		if opts.ShowErrors && row.Field != "" {
			if key := opts.Errors.Get(row.Field); key != "" {
				lines = append(lines, ErrorStyle.Render(loc.Lookup(opts.Lang, string(key))))
			}
		}
		lines = append(lines, "")
	}
	return lipgloss.JoinVertical(align, strings.TrimSuffix(strings.Join(lines, "\n"), "\n"))
}

// valueOrBlank keeps an empty value visible as a line to write on.
func valueOrBlank(v string) string {
	if v == "" {
		return strings.Repeat("_", 16)
	}
	return v
}

// RenderSheet draws the print sheet for an approved job: the document title
// followed by job.Copies identical cards. Copies never carry errors.
func RenderSheet(job wifi.PrintJob, lang string, loc wifi.Localizer) (string, error) {
	single, err := Render(job.Settings, Options{Lang: lang, Localizer: loc})
	if err != nil {
		return "", err
	}

	copies := job.Copies
	if copies < 1 {
		copies = 1
	}

	var b strings.Builder
	b.WriteString(SheetTitleStyle.Render(job.Title))
	b.WriteString("\n\n")
	for i := 0; i < copies; i++ {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(single)
		b.WriteString("\n")
	}
	return b.String(), nil
}
