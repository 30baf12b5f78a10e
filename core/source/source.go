package source

import (
	"context"
	"fmt"
	"io"
)

// Source abstracts where raw dataset files live. The ingestion service only
// needs to enumerate file names and open them one at a time.
type Source interface {
	// List returns the file names available in the source, sorted.
	List(ctx context.Context) ([]string, error)
	// Open returns a reader for one file.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// New builds a Source from configuration. The local backend is the default;
// the s3 backend reads raw files from an object-storage bucket.
func New(cfg Config) (Source, error) {
	switch cfg.Backend {
	case "", "local":
		return &Local{Dir: cfg.Dir}, nil
	case "s3":
		client, err := NewClient(cfg)
		if err != nil {
			return nil, err
		}
		return &Bucket{Client: client, Name: cfg.Bucket, Prefix: cfg.Prefix}, nil
	default:
		return nil, fmt.Errorf("unsupported source backend: %s", cfg.Backend)
	}
}
