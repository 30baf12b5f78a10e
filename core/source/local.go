package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// Local reads raw dataset files from a directory on disk.
type Local struct {
	Dir string
}

// List returns the regular files in the directory, sorted by name.
// Subdirectories are not descended into; raw drops are flat.
func (l *Local) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read raw dir %s: %w", l.Dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Open opens one raw file for reading.
func (l *Local) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(l.Dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to open raw file %s: %w", name, err)
	}
	return f, nil
}
