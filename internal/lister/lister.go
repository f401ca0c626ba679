// Package lister finds the tags available in a directory.
//
// The tagging filesystem exposes the tags usable below a directory as the
// entries of its listing directory: "<dir>/<marker>", e.g. "/photos/%".
// FS reads that directory.
package lister

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FS lists available tags from the listing directory on disk.
type FS struct {
	Marker string
}

// New returns a lister for the given marker.
func New(marker string) *FS {
	return &FS{Marker: marker}
}

// Dir returns the listing directory for dir.
func (l *FS) Dir(dir string) string {
	return filepath.Join(dir, l.Marker)
}

// Available returns the tag names offered in dir, in directory order
// (sorted by name). Hidden entries are skipped. A missing listing directory
// is an error wrapping fs.ErrNotExist.
func (l *FS) Available(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(l.Dir(dir))
	if err != nil {
		return nil, fmt.Errorf("listing tags of %s: %w", dir, err)
	}

	tags := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		tags = append(tags, e.Name())
	}
	return tags, nil
}
