package filemanager

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/steelcutops/systoolkit/logger"
)

// ErrSourceNotFound marks a copy whose source path does not exist.
var ErrSourceNotFound = errors.New("source file not found")

// FileManager encompasses operations on both files and directories.
type FileManager interface {
	FileOperations
	DirOperations
	DiskOperations
}

// File describes basic file attributes.
type File struct {
	Path     string
	Size     int64 // bytes
	Mode     os.FileMode
	Modified time.Time
	IsDir    bool
}

// DiskUsage is a snapshot of the filesystem holding Path.
type DiskUsage struct {
	Path       string `json:"path"`
	Filesystem string `json:"filesystem,omitempty"`
	Total      uint64 `json:"total"`
	Used       uint64 `json:"used"`
	Free       uint64 `json:"free"`
}

// UsedPercent derives the used share of the volume as Used/(Used+Free),
// the df definition. Blocks reserved for root are left out.
func (d DiskUsage) UsedPercent() float64 {
	if d.Used+d.Free == 0 {
		return 0
	}
	return float64(d.Used) / float64(d.Used+d.Free) * 100
}

// DiskOperations reports filesystem statistics.
type DiskOperations interface {
	DiskUsage(ctx context.Context, path string) (DiskUsage, error)
}

// LocalFileManager works directly against the local filesystem.
type LocalFileManager struct {
	Logger logger.Logger

	// usage is swapped in tests; nil means gopsutil.
	usage usageFunc
}

func NewFileManager(l logger.Logger) *LocalFileManager {
	return &LocalFileManager{Logger: l}
}

func (f *LocalFileManager) log() logger.Logger {
	return logger.OrDiscard(f.Logger)
}
