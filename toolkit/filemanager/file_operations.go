package filemanager

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/steelcutops/systoolkit/common"
)

// FileOperations represents operations that can be performed on files.
type FileOperations interface {
	Exists(ctx context.Context, path string) bool
	CopyFile(ctx context.Context, sourcePath, destPath string) error
	DeleteFile(ctx context.Context, path string) error
	GetFileAttributes(ctx context.Context, path string) (File, error)
}

// Exists reports whether anything lives at path, file or directory.
func (f *LocalFileManager) Exists(ctx context.Context, path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// CopyFile copies the contents, permission bits and modification time of
// sourcePath. When destPath is an existing directory the copy is placed
// inside it under the source's base name. The copy is not atomic.
func (f *LocalFileManager) CopyFile(ctx context.Context, sourcePath, destPath string) error {
	info, err := os.Stat(sourcePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return common.NewOpError("copy", sourcePath, common.ErrNotFound, ErrSourceNotFound)
		}
		return common.Classify("copy", sourcePath, err)
	}
	if info.IsDir() {
		return common.NewOpError("copy", sourcePath, common.ErrUnexpected, errors.New("source is a directory"))
	}

	if dst, err := os.Stat(destPath); err == nil && dst.IsDir() {
		destPath = filepath.Join(destPath, filepath.Base(sourcePath))
	}
	if dst, err := os.Stat(destPath); err == nil && os.SameFile(info, dst) {
		return common.NewOpError("copy", destPath, common.ErrUnexpected, errors.New("source and destination are the same file"))
	}

	f.log().Debug("Copying file", "source", sourcePath, "destination", destPath, "size", info.Size())
	if err := copyContents(sourcePath, destPath, info.Mode().Perm()); err != nil {
		return common.Classify("copy", destPath, err)
	}
	if err := os.Chmod(destPath, info.Mode().Perm()); err != nil {
		return common.Classify("copy", destPath, err)
	}
	return common.Classify("copy", destPath, os.Chtimes(destPath, info.ModTime(), info.ModTime()))
}

func copyContents(sourcePath, destPath string, perm fs.FileMode) error {
	src, err := os.Open(sourcePath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

// DeleteFile removes a single file.
func (f *LocalFileManager) DeleteFile(ctx context.Context, path string) error {
	return common.Classify("delete", path, os.Remove(path))
}

func (f *LocalFileManager) GetFileAttributes(ctx context.Context, path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return File{}, common.Classify("stat", path, err)
	}
	return File{
		Path:     path,
		Size:     info.Size(),
		Mode:     info.Mode(),
		Modified: info.ModTime(),
		IsDir:    info.IsDir(),
	}, nil
}
