package filemanager

import (
	"context"
	"os"

	"github.com/steelcutops/systoolkit/common"
)

// DirOperations represents operations that can be performed on directories.
type DirOperations interface {
	CreateDirectory(ctx context.Context, path string) error
	DeleteDirectory(ctx context.Context, path string) error
	ListDirectory(ctx context.Context, path string) ([]string, error)
}

// CreateDirectory creates path and any missing parents. An existing
// directory is not an error.
func (f *LocalFileManager) CreateDirectory(ctx context.Context, path string) error {
	f.log().Debug("Creating directory", "path", path)
	return common.Classify("mkdir", path, os.MkdirAll(path, 0o755))
}

// DeleteDirectory removes path and everything below it.
func (f *LocalFileManager) DeleteDirectory(ctx context.Context, path string) error {
	f.log().Debug("Deleting directory", "path", path)
	return common.Classify("rmdir", path, os.RemoveAll(path))
}

// ListDirectory returns the entry names of path in lexical order.
func (f *LocalFileManager) ListDirectory(ctx context.Context, path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, common.Classify("list", path, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	f.log().Debug("Listed directory", "path", path, "entries", len(names))
	return names, nil
}
