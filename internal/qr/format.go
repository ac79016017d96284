package qr

import (
	"fmt"
	"strings"
)

// Format is an exported image format.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// Formats lists the supported formats.
var Formats = []Format{FormatSVG, FormatPNG}

// DefaultFileStem names artifacts for networks without an SSID.
const DefaultFileStem = "wifi-qrcode"

// ParseFormat accepts "svg" or "png", case-insensitively, with or without a
// leading dot.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "svg":
		return FormatSVG, nil
	case "png":
		return FormatPNG, nil
	}
	return "", fmt.Errorf("unsupported image format %q (use svg or png)", s)
}

// FormatFor returns the format a card's SVGImage preference selects.
func FormatFor(svgImage bool) Format {
	if svgImage {
		return FormatSVG
	}
	return FormatPNG
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	default:
		return "application/octet-stream"
	}
}

// FileName returns "<ssid>.<ext>", or "wifi-qrcode.<ext>" when the SSID is
// empty. Path separators in the SSID are replaced so the name always stays
// in the export directory.
func FileName(ssid string, f Format) string {
	stem := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return '_'
		}
		return r
	}, ssid)

	stem = strings.TrimSpace(stem)
	if stem == "" || stem == "." || stem == ".." {
		stem = DefaultFileStem
	}
	return stem + f.Ext()
}
