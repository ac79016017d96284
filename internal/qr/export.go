package qr

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jackie264/wificard/internal/logging"
)

// Exporter writes QR images to a directory.
type Exporter struct {
	Dir  string // Destination directory, "" means the working directory
	Size int    // Image edge length in pixels, <= 0 means DefaultSize
}

// NewExporter creates an exporter writing into dir.
func NewExporter(dir string, size int) *Exporter {
	return &Exporter{Dir: dir, Size: size}
}

// Export renders payload in format and writes it as FileName(ssid, format).
// The image is written to a temporary file in the same directory and renamed
// into place; the temporary file is removed on every path.
func (e *Exporter) Export(ctx context.Context, payload, ssid string, format Format) (path string, err error) {
	dir := e.Dir
	if dir == "" {
		dir = "."
	}
	path = filepath.Join(dir, FileName(ssid, format))

	size := 0
	defer func() {
		logging.LogExport(path, string(format), size, err)
	}()

	code, err := New(payload)
	if err != nil {
		return path, err
	}
	data, err := code.Render(format, e.Size)
	if err != nil {
		return path, err
	}

	if err := ctx.Err(); err != nil {
		return path, err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return path, fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".wificard-*.tmp")
	if err != nil {
		return path, fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if rmErr := os.Remove(tmpPath); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			logging.Warn("Failed to remove temporary file", zap.String("path", tmpPath), zap.Error(rmErr))
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return path, fmt.Errorf("failed to write image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return path, fmt.Errorf("failed to write image: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return path, fmt.Errorf("failed to set image permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return path, fmt.Errorf("failed to save image: %w", err)
	}

	size = len(data)
	return path, nil
}

// ExportAll writes one file per distinct format concurrently. Paths are
// returned in the order of formats with duplicates removed. The first failure
// cancels the remaining writes.
func (e *Exporter) ExportAll(ctx context.Context, payload, ssid string, formats []Format) ([]string, error) {
	seen := make(map[Format]bool, len(formats))
	var unique []Format
	for _, f := range formats {
		if !seen[f] {
			seen[f] = true
			unique = append(unique, f)
		}
	}

	paths := make([]string, len(unique))
	g, ctx := errgroup.WithContext(ctx)
	for i, f := range unique {
		g.Go(func() error {
			path, err := e.Export(ctx, payload, ssid, f)
			if err != nil {
				return fmt.Errorf("%s export: %w", f, err)
			}
			paths[i] = path
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
