package storage

import (
	"context"
	"io"
)

// Archive persists generated report files so past exports can be retrieved
// without re-running the aggregation.
type Archive interface {
	// Save writes the file and returns the stored path.
	Save(ctx context.Context, path string, data []byte) (string, error)

	// Open retrieves a previously archived file.
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Exists reports whether the path has been archived.
	Exists(ctx context.Context, path string) (bool, error)
}
