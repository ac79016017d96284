package qr

import (
	"errors"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the default image edge length in pixels.
const DefaultSize = 150

// RecoveryLevel is the error correction level used for every code. WiFi
// payloads are short, so the lowest level keeps the modules large.
const RecoveryLevel = qrcode.Low

// terminalMargin is the quiet zone, in modules, kept around terminal output.
const terminalMargin = 2

// ErrEmptyPayload is returned when there is nothing to encode.
var ErrEmptyPayload = errors.New("empty QR payload")

// Code is an encoded QR symbol ready to render.
type Code struct {
	qr *qrcode.QRCode
}

// New encodes payload.
func New(payload string) (*Code, error) {
	if payload == "" {
		return nil, ErrEmptyPayload
	}

	q, err := qrcode.New(payload, RecoveryLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return &Code{qr: q}, nil
}

// Modules returns the module matrix including the quiet zone. true is dark.
func (c *Code) Modules() [][]bool {
	return c.qr.Bitmap()
}

// Render produces the image bytes for format.
func (c *Code) Render(f Format, size int) ([]byte, error) {
	switch f {
	case FormatSVG:
		return c.SVG(size), nil
	case FormatPNG:
		return c.PNG(size)
	default:
		return nil, fmt.Errorf("unsupported image format %q", f)
	}
}

// PNG renders a size×size raster image.
func (c *Code) PNG(size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	data, err := c.qr.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("failed to render PNG: %w", err)
	}
	return data, nil
}

// SVG renders a vector image. Each row of dark modules becomes horizontal
// runs in a single path.
func (c *Code) SVG(size int) []byte {
	if size <= 0 {
		size = DefaultSize
	}
	bitmap := c.Modules()
	n := len(bitmap)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`, size, size, n, n)
	b.WriteString("\n")
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="#FFFFFF"/>`, n, n)
	b.WriteString("\n")
	b.WriteString(`<path fill="#000000" d="`)
	for y, row := range bitmap {
		for x := 0; x < len(row); {
			if !row[x] {
				x++
				continue
			}
			start := x
			for x < len(row) && row[x] {
				x++
			}
			fmt.Fprintf(&b, "M%d %dh%dv1h-%dz", start, y, x-start, x-start)
		}
	}
	b.WriteString(`"/>`)
	b.WriteString("\n</svg>\n")

	return []byte(b.String())
}

// Terminal renders the code with half-block characters, two module rows per
// text line. Dark modules are drawn as ink, so the result must be shown dark
// on light to scan.
func (c *Code) Terminal() string {
	bitmap := crop(c.Modules(), terminalMargin)

	var b strings.Builder
	for y := 0; y < len(bitmap); y += 2 {
		top := bitmap[y]
		var bottom []bool
		if y+1 < len(bitmap) {
			bottom = bitmap[y+1]
		}
		for x := range top {
			lower := bottom != nil && bottom[x]
			switch {
			case top[x] && lower:
				b.WriteRune('█')
			case top[x]:
				b.WriteRune('▀')
			case lower:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if y+2 < len(bitmap) {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// crop trims the matrix to the bounding box of its dark modules plus margin
// light modules on every side.
func crop(bitmap [][]bool, margin int) [][]bool {
	minX, minY, maxX, maxY := -1, -1, -1, -1
	for y, row := range bitmap {
		for x, dark := range row {
			if !dark {
				continue
			}
			if minX < 0 || x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if minY < 0 {
				minY = y
			}
			maxY = y
		}
	}
	if minX < 0 {
		return bitmap
	}

	width := maxX - minX + 1 + 2*margin
	height := maxY - minY + 1 + 2*margin
	out := make([][]bool, height)
	for y := range out {
		out[y] = make([]bool, width)
		srcY := minY - margin + y
		if srcY < minY || srcY > maxY {
			continue
		}
		for x := range out[y] {
			srcX := minX - margin + x
			if srcX >= minX && srcX <= maxX {
				out[y][x] = bitmap[srcY][srcX]
			}
		}
	}
	return out
}
