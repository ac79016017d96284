// Package qr renders WiFi payloads as QR codes.
//
// Encoding is done by github.com/skip2/go-qrcode at the lowest error
// correction level. A Code can be drawn three ways: as an SVG document, as a
// PNG image, or as half-block text for terminals.
//
// Exported files are named after the network (FileName) and written through
// a temporary file that is always cleaned up:
//
//	exp := qr.NewExporter(outDir, qr.DefaultSize)
//	path, err := exp.Export(ctx, wifi.Encode(s), s.SSID, qr.FormatFor(s.SVGImage))
package qr
