package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalArchive stores files under a base directory on the local filesystem.
type LocalArchive struct {
	basePath string
}

func NewLocalArchive(basePath string) (*LocalArchive, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}
	return &LocalArchive{basePath: basePath}, nil
}

// resolve joins the path under basePath and rejects directory traversal.
func (a *LocalArchive) resolve(path string) (string, error) {
	cleanPath := filepath.Clean(path)
	fullPath := filepath.Join(a.basePath, cleanPath)
	if !strings.HasPrefix(fullPath, a.basePath) {
		return "", fmt.Errorf("invalid archive path: %s", path)
	}
	return fullPath, nil
}

func (a *LocalArchive) Save(ctx context.Context, path string, data []byte) (string, error) {
	fullPath, err := a.resolve(path)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create archive subdirectory: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write archive file: %w", err)
	}

	return filepath.Clean(path), nil
}

func (a *LocalArchive) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	fullPath, err := a.resolve(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive file: %w", err)
	}
	return f, nil
}

func (a *LocalArchive) Exists(ctx context.Context, path string) (bool, error) {
	fullPath, err := a.resolve(path)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(fullPath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
